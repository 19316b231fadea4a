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

// Package lineop holds the planar polyline operations used by the tracing
// engine: extraction of linework from arbitrary geometries, point-to-polyline
// projection, polyline splitting, lateral offsetting, and noding.
//
// All operations are two-dimensional and work directly on
// github.com/ctessum/geom types.
package lineop

import (
	"math"

	"github.com/ctessum/geom"
)

func pointDistance(a, b geom.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// closestOnSegment returns the point on the segment from a to b that is
// nearest to p.
func closestOnSegment(p, a, b geom.Point) geom.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	if t <= 0 {
		return a
	} else if t >= 1 {
		return b
	}
	return geom.Point{X: a.X + t*dx, Y: a.Y + t*dy}
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
