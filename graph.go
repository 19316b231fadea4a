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
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/geom/proj"
)

// edge is a bidirectional graph edge. The polyline coords includes both
// endpoints, and its first point always coincides with the location of
// vertex v1.
type edge struct {
	v1, v2 int
	coords geom.LineString
}

func (e *edge) otherVertex(v0 int) int {
	if e.v1 == v0 {
		return e.v2
	}
	return e.v1
}

func (e *edge) weight() float64 { return e.coords.Length() }

type vertex struct {
	pt geom.Point
	// indices of adjacent edges
	edges []int
}

// graph is a planar graph over polyline edges, with bookkeeping for the
// temporary modifications made while answering a query.
type graph struct {
	v []vertex
	e []edge

	// temporarily deactivated edges
	inactiveEdges map[int]struct{}
	// number of temporarily added vertices; each came with two extra
	// edges
	joinedVertices int

	// spatial index over the edges present at construction time.
	// Edges appended during a query are not in the tree and are
	// scanned separately.
	edgeTree    *rtree.Rtree
	staticEdges int
}

// edgeRef is the rtree entry for one edge.
type edgeRef struct {
	idx int
	b   *geom.Bounds
}

func (r *edgeRef) Bounds() *geom.Bounds { return r.b }

func (r *edgeRef) Len() int { return r.b.Len() }

func (r *edgeRef) Points() func() geom.Point { return r.b.Points() }

func (r *edgeRef) Similar(g geom.Geom, tolerance float64) bool { return r.b.Similar(g, tolerance) }

func (r *edgeRef) Transform(t proj.Transformer) (geom.Geom, error) { return r.b.Transform(t) }

// newGraph builds a graph from linework. Each input polyline becomes one
// edge; endpoints are deduplicated into shared vertices by exact
// equality. Polylines with fewer than two points are skipped.
func newGraph(mls geom.MultiLineString) *graph {
	g := &graph{inactiveEdges: make(map[int]struct{})}

	point2vertex := make(map[geom.Point]int)
	getVertex := func(pt geom.Point) int {
		if v, ok := point2vertex[pt]; ok {
			return v
		}
		v := len(g.v)
		g.v = append(g.v, vertex{pt: pt})
		point2vertex[pt] = v
		return v
	}

	for _, line := range mls {
		if len(line) < 2 {
			continue
		}
		v1 := getVertex(line[0])
		v2 := getVertex(line[len(line)-1])

		coords := make(geom.LineString, len(line))
		copy(coords, line)
		g.e = append(g.e, edge{v1: v1, v2: v2, coords: coords})

		eIdx := len(g.e) - 1
		g.v[v1].edges = append(g.v[v1].edges, eIdx)
		g.v[v2].edges = append(g.v[v2].edges, eIdx)
	}

	g.edgeTree = rtree.NewTree(25, 50)
	for i := range g.e {
		g.edgeTree.Insert(&edgeRef{idx: i, b: g.e[i].coords.Bounds()})
	}
	g.staticEdges = len(g.e)

	return g
}

func (g *graph) active(eIdx int) bool {
	_, off := g.inactiveEdges[eIdx]
	return !off
}
