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
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

const nodeEps = 1e-9

// Node splits the polylines of mls at each of their mutual intersections,
// so that in the result polylines meet only at endpoints. Pairs of
// polylines that cross at the interior of either are both cut at the
// crossing; T-junctions cut only the polyline whose interior is touched.
// Collinear overlaps are left as they are. Non-finite input coordinates
// are rejected with an error.
func Node(mls geom.MultiLineString) (geom.MultiLineString, error) {
	lines := make([]geom.LineString, 0, len(mls))
	for _, l := range mls {
		l = dropRepeated(l)
		if len(l) < 2 {
			continue
		}
		for _, p := range l {
			if !finite(p) {
				return nil, fmt.Errorf("lineop: non-finite coordinate in noding input")
			}
		}
		lines = append(lines, l)
	}

	cum := make([][]float64, len(lines))
	for i, l := range lines {
		seg := make([]float64, len(l)-1)
		for k := 0; k < len(l)-1; k++ {
			seg[k] = pointDistance(l[k], l[k+1])
		}
		c := make([]float64, len(seg))
		floats.CumSum(c, seg)
		cum[i] = c
	}

	cuts := make([][]float64, len(lines))
	for i := 0; i < len(lines); i++ {
		for j := i; j < len(lines); j++ {
			for ki := 0; ki < len(lines[i])-1; ki++ {
				for kj := 0; kj < len(lines[j])-1; kj++ {
					if i == j && kj <= ki+1 {
						continue // identical or adjacent segments
					}
					t, s, ok := segmentIntersection(
						lines[i][ki], lines[i][ki+1],
						lines[j][kj], lines[j][kj+1])
					if !ok {
						continue
					}
					addCut(cuts, cum, i, ki, t)
					addCut(cuts, cum, j, kj, s)
				}
			}
		}
	}

	var out geom.MultiLineString
	for i, l := range lines {
		if len(cuts[i]) == 0 {
			out = append(out, l)
			continue
		}
		sort.Float64s(cuts[i])
		out = append(out, splitAtDistances(l, cum[i], cuts[i])...)
	}
	return out, nil
}

// addCut records a cut on line i at parameter t along segment k, unless
// the cut falls on one of the line's endpoints.
func addCut(cuts [][]float64, cum [][]float64, i, k int, t float64) {
	segStart := 0.
	if k > 0 {
		segStart = cum[i][k-1]
	}
	d := segStart + t*(cum[i][k]-segStart)
	total := cum[i][len(cum[i])-1]
	eps := nodeEps * math.Max(1, total)
	if d < eps || d > total-eps {
		return
	}
	cuts[i] = append(cuts[i], d)
}

// segmentIntersection intersects the segments (a1, a2) and (b1, b2),
// returning the parameters of the intersection point along each segment.
// Parallel (including collinear) segment pairs report no intersection.
func segmentIntersection(a1, a2, b1, b2 geom.Point) (t, s float64, ok bool) {
	d1x := a2.X - a1.X
	d1y := a2.Y - a1.Y
	d2x := b2.X - b1.X
	d2y := b2.Y - b1.Y
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	t = ((b1.X-a1.X)*d2y - (b1.Y-a1.Y)*d2x) / denom
	s = ((b1.X-a1.X)*d1y - (b1.Y-a1.Y)*d1x) / denom
	if t < -nodeEps || t > 1+nodeEps || s < -nodeEps || s > 1+nodeEps {
		return 0, 0, false
	}
	return t, s, true
}

// splitAtDistances cuts l at the given (sorted) distances along its
// length, returning the pieces. Cuts within tolerance of each other, or
// of the line's endpoints, produce a single split.
func splitAtDistances(l geom.LineString, cum []float64, cuts []float64) []geom.LineString {
	total := cum[len(cum)-1]
	eps := nodeEps * math.Max(1, total)

	var pieces []geom.LineString
	cur := geom.LineString{l[0]}
	ci := 0
	for i := 1; i < len(l); i++ {
		segStart := 0.
		if i >= 2 {
			segStart = cum[i-2]
		}
		vEnd := cum[i-1]
		lastCut := segStart
		for ci < len(cuts) && cuts[ci] < vEnd-eps {
			d := cuts[ci]
			ci++
			if d < lastCut+eps {
				continue // coincides with the previous split point
			}
			lastCut = d
			frac := (d - segStart) / (vEnd - segStart)
			p := geom.Point{
				X: l[i-1].X + frac*(l[i].X-l[i-1].X),
				Y: l[i-1].Y + frac*(l[i].Y-l[i-1].Y),
			}
			cur = append(cur, p)
			pieces = append(pieces, cur)
			cur = geom.LineString{p}
		}
		cur = append(cur, l[i])
		// cuts landing exactly on an interior vertex
		for ci < len(cuts) && cuts[ci] <= vEnd+eps {
			ci++
			if i < len(l)-1 && len(cur) >= 2 {
				pieces = append(pieces, cur)
				cur = geom.LineString{l[i]}
			}
		}
	}
	if len(cur) >= 2 {
		pieces = append(pieces, cur)
	}
	return pieces
}
