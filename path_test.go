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
	"testing"

	"github.com/ctessum/geom"
)

func TestShortestPathCross(t *testing.T) {
	// pre-noded cross: four segments sharing (5, 0)
	g := newGraph(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 5, Y: 0}},
		{{X: 5, Y: 0}, {X: 10, Y: 0}},
		{{X: 5, Y: -5}, {X: 5, Y: 0}},
		{{X: 5, Y: 0}, {X: 5, Y: 5}},
	})
	v1 := g.pointToVertex(geom.Point{X: 0, Y: 0}, Epsilon)
	v2 := g.pointToVertex(geom.Point{X: 5, Y: 5}, Epsilon)

	points := g.shortestPath(v1, v2)
	want := geom.LineString{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}
	if !points.Similar(want, testTolerance) {
		t.Errorf("path = %v, want %v", points, want)
	}
	if different(points.Length(), 10, testTolerance) {
		t.Errorf("path length = %g, want 10", points.Length())
	}
}

func TestShortestPathDetour(t *testing.T) {
	// a direct edge and a longer detour between the same endpoints
	g := newGraph(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}},
	})
	points := g.shortestPath(0, 1)
	if different(points.Length(), 10, testTolerance) {
		t.Errorf("path length = %g, want the direct edge (10)", points.Length())
	}
	if len(points) != 2 {
		t.Errorf("path = %v, want the direct edge", points)
	}
}

func TestShortestPathMultiEdge(t *testing.T) {
	// parallel edges of different lengths between the same vertices
	g := newGraph(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}},
	})
	points := g.shortestPath(0, 1)
	if different(points.Length(), 10, testTolerance) {
		t.Errorf("path length = %g, want 10", points.Length())
	}
}

func TestShortestPathDisconnected(t *testing.T) {
	g := newGraph(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 5, Y: 5}, {X: 6, Y: 5}},
	})
	if points := g.shortestPath(0, 2); len(points) != 0 {
		t.Errorf("disconnected path = %v, want empty", points)
	}
}

func TestShortestPathInvalidInput(t *testing.T) {
	g := newGraph(geom.MultiLineString{{{X: 0, Y: 0}, {X: 1, Y: 0}}})
	if points := g.shortestPath(-1, 0); points != nil {
		t.Errorf("v1 = -1: got %v", points)
	}
	if points := g.shortestPath(0, -1); points != nil {
		t.Errorf("v2 = -1: got %v", points)
	}
}

func TestShortestPathIgnoresInactive(t *testing.T) {
	g := newGraph(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}},
	})
	// with the direct edge marked inactive the detour wins
	g.inactiveEdges[0] = struct{}{}
	points := g.shortestPath(0, 1)
	if different(points.Length(), 30, testTolerance) {
		t.Errorf("path length = %g, want the detour (30)", points.Length())
	}
}

func TestShortestPathZeroLengthLoop(t *testing.T) {
	// a zero-length polyline produces a zero-weight loop that must not
	// confuse the search
	g := newGraph(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
	})
	points := g.shortestPath(0, 1)
	if different(points.Length(), 10, testTolerance) {
		t.Errorf("path length = %g, want 10", points.Length())
	}
}

func TestShortestPathOrientation(t *testing.T) {
	// edge polylines are reoriented so the stitched path runs from
	// source to target regardless of how the linework was digitized
	g := newGraph(geom.MultiLineString{
		{{X: 5, Y: 0}, {X: 0, Y: 0}},  // digitized backwards
		{{X: 5, Y: 0}, {X: 10, Y: 0}},
	})
	v1 := g.pointToVertex(geom.Point{X: 0, Y: 0}, Epsilon)
	v2 := g.pointToVertex(geom.Point{X: 10, Y: 0}, Epsilon)
	points := g.shortestPath(v1, v2)
	want := geom.LineString{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	if !points.Similar(want, testTolerance) {
		t.Errorf("path = %v, want %v", points, want)
	}
}

func TestShortestPathSameVertex(t *testing.T) {
	// a query from a vertex to itself has no predecessor edges and
	// yields the empty polyline
	g := newGraph(geom.MultiLineString{{{X: 0, Y: 0}, {X: 1, Y: 0}}})
	if points := g.shortestPath(0, 0); len(points) != 0 {
		t.Errorf("same-vertex path = %v, want empty", points)
	}
}
