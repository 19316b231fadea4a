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

// SplitAt splits l at pt, where vertexAfter is the index of the polyline
// vertex immediately following pt (as reported by ClosestSegment). Both
// halves share pt as the split endpoint; the intermediate vertices of l
// are preserved on the correct side. If pt coincides with the vertex on
// either side of the split the duplicate is dropped, so each half always
// has distinct consecutive points at the joint.
func SplitAt(l geom.LineString, pt geom.Point, vertexAfter int) (before, after geom.LineString) {
	if vertexAfter < 1 {
		vertexAfter = 1
	} else if vertexAfter > len(l)-1 {
		vertexAfter = len(l) - 1
	}

	before = make(geom.LineString, 0, vertexAfter+1)
	before = append(before, l[:vertexAfter]...)
	if before[len(before)-1] != pt {
		before = append(before, pt)
	}

	after = make(geom.LineString, 0, len(l)-vertexAfter+1)
	if l[vertexAfter] != pt {
		after = append(after, pt)
	}
	after = append(after, l[vertexAfter:]...)

	return before, after
}
