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
	"container/heap"
	"math"

	"github.com/ctessum/geom"
)

// queueItem is one entry of the Dijkstra priority queue.
type queueItem struct {
	vertex int
	dist   float64
}

type priorityQueue []queueItem

func (q priorityQueue) Len() int            { return len(q) }
func (q priorityQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q priorityQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *priorityQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// shortestPath runs Dijkstra's algorithm between two graph vertices and
// returns the traversed polyline, oriented from v1 to v2. It returns
// nil when either vertex is -1 or no route connects them. Entries
// superseded in the queue are discarded lazily when dequeued.
func (g *graph) shortestPath(v1, v2 int) geom.LineString {
	if v1 == -1 || v2 == -1 {
		return nil
	}

	// cumulative distance to each vertex
	dist := make([]float64, len(g.v))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[v1] = 0

	// vertices whose shortest distance is final
	final := make([]bool, len(g.v))

	// the edge by which each vertex is cheapest reached
	via := make([]int, len(g.v))
	for i := range via {
		via[i] = -1
	}

	q := &priorityQueue{{vertex: v1, dist: 0}}
	u := -1
	for q.Len() > 0 {
		u = heap.Pop(q).(queueItem).vertex
		if u == v2 {
			break // no shorter path can remain
		}
		if final[u] {
			continue // stale queue entry
		}
		for _, eIdx := range g.v[u].edges {
			if !g.active(eIdx) {
				continue
			}
			e := &g.e[eIdx]
			v := e.otherVertex(u)
			w := e.weight()
			if !final[v] && dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
				via[v] = eIdx
				heap.Push(q, queueItem{vertex: v, dist: dist[v]})
			}
		}
		final[u] = true
	}

	if u != v2 {
		return nil
	}

	// walk the predecessor edges from v2 back to v1, stitching their
	// polylines together
	var points geom.LineString
	for via[u] != -1 {
		e := &g.e[via[u]]
		edgePoints := make(geom.LineString, len(e.coords))
		copy(edgePoints, e.coords)
		if edgePoints[0] != g.v[u].pt {
			reverseLine(edgePoints)
		}
		if len(points) > 0 {
			points = points[:len(points)-1] // shared with the next edge
		}
		points = append(points, edgePoints...)
		u = e.otherVertex(u)
	}
	reverseLine(points)
	return points
}

func reverseLine(l geom.LineString) {
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
}
