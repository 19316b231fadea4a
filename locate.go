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

package tracer

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/tracer/lineop"
)

// Epsilon is the default tolerance for matching query points to graph
// vertices and edges.
const Epsilon = 1e-6

func pointsClose(a, b geom.Point, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func pointDistance(a, b geom.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// pointToVertex returns the index of the first vertex within epsilon of
// pt, or -1.
func (g *graph) pointToVertex(pt geom.Point, epsilon float64) int {
	for i := range g.v {
		if pointsClose(g.v[i].pt, pt, epsilon) {
			return i
		}
	}
	return -1
}

// pointToEdge returns the lowest-indexed active edge passing through pt
// (within epsilon), together with the index of the edge polyline vertex
// immediately following the hit point. It returns (-1, 0) when no
// active edge contains pt.
func (g *graph) pointToEdge(pt geom.Point, epsilon float64) (eIdx, lineVertexAfter int) {
	best, bestAfter := -1, 0

	searchBox := &geom.Bounds{
		Min: geom.Point{X: pt.X - epsilon, Y: pt.Y - epsilon},
		Max: geom.Point{X: pt.X + epsilon, Y: pt.Y + epsilon},
	}
	for _, item := range g.edgeTree.SearchIntersect(searchBox) {
		r := item.(*edgeRef)
		if !g.active(r.idx) {
			continue
		}
		if best != -1 && r.idx > best {
			continue
		}
		if _, after, dist := lineop.ClosestSegment(g.e[r.idx].coords, pt); dist < epsilon {
			best, bestAfter = r.idx, after
		}
	}
	if best != -1 {
		return best, bestAfter
	}

	// edges appended by grafting during the current query are not in
	// the spatial index
	for i := g.staticEdges; i < len(g.e); i++ {
		if !g.active(i) {
			continue
		}
		if _, after, dist := lineop.ClosestSegment(g.e[i].coords, pt); dist < epsilon {
			return i, after
		}
	}
	return -1, 0
}
