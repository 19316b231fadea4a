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

import (
	"math"

	"github.com/ctessum/geom"
)

// ClosestSegment projects pt onto each segment of l and returns the nearest
// point on the polyline, the index of the polyline vertex immediately
// following it, and the distance from pt. When two segments are equally
// near, the earlier segment wins. A polyline with fewer than two points
// yields vertexAfter -1 and an infinite distance.
func ClosestSegment(l geom.LineString, pt geom.Point) (closest geom.Point, vertexAfter int, dist float64) {
	vertexAfter = -1
	dist = math.Inf(1)
	for i := 0; i < len(l)-1; i++ {
		c := closestOnSegment(pt, l[i], l[i+1])
		if d := pointDistance(pt, c); d < dist {
			closest = c
			vertexAfter = i + 1
			dist = d
		}
	}
	return closest, vertexAfter, dist
}
