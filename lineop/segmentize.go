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

package lineop

import "github.com/ctessum/geom"

// Segmentize extracts the linework from g as a set of polylines.
// Polygon and MultiPolygon rings become closed linestrings, and
// geometry collections are processed recursively. Point-like and nil
// geometries contribute nothing.
func Segmentize(g geom.Geom) []geom.LineString {
	var out []geom.LineString
	switch t := g.(type) {
	case geom.LineString:
		if len(t) >= 2 {
			l := make(geom.LineString, len(t))
			copy(l, t)
			out = append(out, l)
		}
	case geom.MultiLineString:
		for _, l := range t {
			out = append(out, Segmentize(l)...)
		}
	case geom.Polygon:
		for _, ring := range t {
			out = append(out, closeRing(ring)...)
		}
	case geom.MultiPolygon:
		for _, p := range t {
			out = append(out, Segmentize(p)...)
		}
	case geom.GeometryCollection:
		for _, g2 := range t {
			out = append(out, Segmentize(g2)...)
		}
	}
	return out
}

// closeRing converts a polygon ring to a closed linestring, appending the
// first point at the end if the ring is not already closed.
func closeRing(ring []geom.Point) []geom.LineString {
	if len(ring) < 2 {
		return nil
	}
	l := make(geom.LineString, len(ring), len(ring)+1)
	copy(l, ring)
	if l[0] != l[len(l)-1] {
		l = append(l, l[0])
	}
	if len(l) < 2 {
		return nil
	}
	return []geom.LineString{l}
}
