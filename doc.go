/*
Copyright © 2026 the Tracer authors.
This file is part of Tracer.

Tracer is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Tracer is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Tracer.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package tracer traces shortest paths along the linework of vector
// layers. It builds a planar graph from the layers' features, where
// graph edges are polylines and vertices are polyline endpoints, and
// answers shortest-path queries between arbitrary planar points: query
// points that fall in the interior of an edge are temporarily grafted
// into the graph for the duration of the query.
//
// The graph is built lazily on the first query and discarded whenever
// the configuration or any underlying layer changes. All operations are
// planar (x, y) and run synchronously on the caller's goroutine.
package tracer
