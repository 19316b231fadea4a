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
	"github.com/ctessum/geom"
	"github.com/spatialmodel/tracer/lineop"
)

// joinVertexToGraph grafts pt into the graph by splitting the edge it
// lies on: the edge is deactivated and replaced by a new vertex at pt
// with a split half on each side. It returns the new vertex index, or
// -1 if pt is not on any active edge. The surgery is undone by reset.
func (g *graph) joinVertexToGraph(pt geom.Point, epsilon float64) int {
	eIdx, lineVertexAfter := g.pointToEdge(pt, epsilon)
	if eIdx == -1 {
		return -1
	}

	e := g.e[eIdx]
	out1, out2 := lineop.SplitAt(e.coords, pt, lineVertexAfter)

	vIdx := len(g.v)
	e1Idx := len(g.e)
	e2Idx := e1Idx + 1

	g.v = append(g.v, vertex{pt: pt, edges: []int{e1Idx, e2Idx}})
	g.e = append(g.e,
		edge{v1: e.v1, v2: vIdx, coords: out1},
		edge{v1: vIdx, v2: e.v2, coords: out2})

	replaceEdgeIndex(g.v[e.v1].edges, eIdx, e1Idx)
	replaceEdgeIndex(g.v[e.v2].edges, eIdx, e2Idx)
	g.inactiveEdges[eIdx] = struct{}{}
	g.joinedVertices++

	return vIdx
}

// replaceEdgeIndex swaps the first occurrence of old for new. For a
// loop edge both endpoint lists are the same slice; calling this twice
// replaces the two occurrences in order.
func replaceEdgeIndex(edges []int, old, new int) {
	for i, e := range edges {
		if e == old {
			edges[i] = new
			return
		}
	}
}

// pointInGraph resolves pt to a graph vertex, reusing an existing vertex
// when one is within epsilon and grafting pt onto an edge otherwise. It
// returns -1 if pt is neither near a vertex nor on any active edge.
func (g *graph) pointInGraph(pt geom.Point, epsilon float64) int {
	if v := g.pointToVertex(pt, epsilon); v != -1 {
		return v
	}
	return g.joinVertexToGraph(pt, epsilon)
}

// reset removes the vertices and edges added by grafting and
// reactivates the edges they replaced, restoring the graph to its state
// before the query.
func (g *graph) reset() {
	g.v = g.v[:len(g.v)-g.joinedVertices]
	g.e = g.e[:len(g.e)-2*g.joinedVertices]
	g.joinedVertices = 0

	for eIdx := range g.inactiveEdges {
		if eIdx >= len(g.e) {
			// a split half that was itself split; gone with the
			// truncation
			continue
		}
		e := &g.e[eIdx]
		restoreVertex(g, e.v1, eIdx)
		restoreVertex(g, e.v2, eIdx)
	}
	g.inactiveEdges = make(map[int]struct{})
}

// restoreVertex drops the stale edge indices that the truncation left in
// the vertex's adjacency list and relinks the reactivated edge.
func restoreVertex(g *graph, vIdx, eIdx int) {
	v := &g.v[vIdx]
	kept := v.edges[:0]
	for _, x := range v.edges {
		if x < len(g.e) {
			kept = append(kept, x)
		}
	}
	v.edges = append(kept, eIdx)
}
