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
	"reflect"
	"testing"

	"github.com/ctessum/geom"
)

const testTolerance = 1e-9

func different(a, b, tolerance float64) bool {
	if math.Abs(a) < tolerance {
		return math.Abs(a-b) > tolerance
	}
	return math.Abs((a-b)/a) > tolerance
}

func TestSegmentize(t *testing.T) {
	line := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}
	multi := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 2, Y: 2}, {X: 3, Y: 3}},
	}
	poly := geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}

	if got := Segmentize(line); len(got) != 1 || !reflect.DeepEqual(got[0], line) {
		t.Errorf("linestring: got %v", got)
	}
	if got := Segmentize(multi); len(got) != 2 {
		t.Errorf("multilinestring: expected 2 lines, got %d", len(got))
	}
	got := Segmentize(poly)
	if len(got) != 1 {
		t.Fatalf("polygon: expected 1 ring, got %d", len(got))
	}
	ring := got[0]
	if ring[0] != ring[len(ring)-1] {
		t.Errorf("polygon ring not closed: %v", ring)
	}
	if len(ring) != 4 {
		t.Errorf("polygon ring: expected 4 points, got %d", len(ring))
	}
	if got := Segmentize(geom.Point{X: 1, Y: 1}); len(got) != 0 {
		t.Errorf("point: expected no linework, got %v", got)
	}
	if got := Segmentize(nil); len(got) != 0 {
		t.Errorf("nil: expected no linework, got %v", got)
	}
	gc := geom.GeometryCollection{line, poly}
	if got := Segmentize(gc); len(got) != 2 {
		t.Errorf("collection: expected 2 lines, got %d", len(got))
	}
}

func TestClosestSegment(t *testing.T) {
	l := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	tests := []struct {
		pt          geom.Point
		closest     geom.Point
		vertexAfter int
		dist        float64
	}{
		{geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 0}, 1, 0},
		{geom.Point{X: 5, Y: 2}, geom.Point{X: 5, Y: 0}, 1, 2},
		{geom.Point{X: 10, Y: 5}, geom.Point{X: 10, Y: 5}, 2, 0},
		{geom.Point{X: 12, Y: 5}, geom.Point{X: 10, Y: 5}, 2, 2},
		{geom.Point{X: -3, Y: 4}, geom.Point{X: 0, Y: 0}, 1, 5},
		{geom.Point{X: 10, Y: 0}, geom.Point{X: 10, Y: 0}, 1, 0}, // shared vertex: earlier segment wins
	}
	for _, test := range tests {
		closest, after, dist := ClosestSegment(l, test.pt)
		if different(dist, test.dist, testTolerance) {
			t.Errorf("pt %v: dist %g, want %g", test.pt, dist, test.dist)
		}
		if after != test.vertexAfter {
			t.Errorf("pt %v: vertexAfter %d, want %d", test.pt, after, test.vertexAfter)
		}
		if different(closest.X, test.closest.X, testTolerance) ||
			different(closest.Y, test.closest.Y, testTolerance) {
			t.Errorf("pt %v: closest %v, want %v", test.pt, closest, test.closest)
		}
	}

	if _, after, dist := ClosestSegment(geom.LineString{{X: 1, Y: 1}}, geom.Point{}); after != -1 || !math.IsInf(dist, 1) {
		t.Errorf("degenerate polyline: got vertexAfter %d, dist %g", after, dist)
	}
}

func TestSplitAt(t *testing.T) {
	l := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	// mid-segment split
	before, after := SplitAt(l, geom.Point{X: 5, Y: 0}, 1)
	wantBefore := geom.LineString{{X: 0, Y: 0}, {X: 5, Y: 0}}
	wantAfter := geom.LineString{{X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	if !reflect.DeepEqual(before, wantBefore) {
		t.Errorf("before = %v, want %v", before, wantBefore)
	}
	if !reflect.DeepEqual(after, wantAfter) {
		t.Errorf("after = %v, want %v", after, wantAfter)
	}

	// split exactly on an interior vertex: no duplicated points
	before, after = SplitAt(l, geom.Point{X: 10, Y: 0}, 1)
	if !reflect.DeepEqual(before, geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}) {
		t.Errorf("vertex split before = %v", before)
	}
	if !reflect.DeepEqual(after, geom.LineString{{X: 10, Y: 0}, {X: 10, Y: 10}}) {
		t.Errorf("vertex split after = %v", after)
	}

	// both halves share the split point and preserve total length
	before, after = SplitAt(l, geom.Point{X: 10, Y: 3}, 2)
	if before[len(before)-1] != after[0] {
		t.Errorf("halves do not share the split point: %v, %v", before, after)
	}
	if different(before.Length()+after.Length(), l.Length(), testTolerance) {
		t.Errorf("length not preserved: %g + %g != %g",
			before.Length(), after.Length(), l.Length())
	}
}

func TestOffsetCurve(t *testing.T) {
	l := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}

	left, err := OffsetCurve(l, 1, 8, JoinRound, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := geom.LineString{{X: 0, Y: 1}, {X: 10, Y: 1}}
	if !left.Similar(want, testTolerance) {
		t.Errorf("left offset = %v, want %v", left, want)
	}

	right, err := OffsetCurve(l, -1, 8, JoinRound, 2)
	if err != nil {
		t.Fatal(err)
	}
	want = geom.LineString{{X: 0, Y: -1}, {X: 10, Y: -1}}
	if !right.Similar(want, testTolerance) {
		t.Errorf("right offset = %v, want %v", right, want)
	}

	if _, err := OffsetCurve(geom.LineString{{X: 1, Y: 1}}, 1, 8, JoinRound, 2); err == nil {
		t.Error("expected error for degenerate input")
	}
}

func TestOffsetCurveJoins(t *testing.T) {
	// right-angle turn; offsetting to the outer (left) side exercises
	// the join styles.
	l := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: -10}}

	miter, err := OffsetCurve(l, 1, 8, JoinMiter, 4)
	if err != nil {
		t.Fatal(err)
	}
	// miter join meets at the corner intersection
	foundCorner := false
	for _, p := range miter {
		if !different(p.X, 11, testTolerance) && !different(p.Y, 1, testTolerance) {
			foundCorner = true
		}
	}
	if !foundCorner {
		t.Errorf("miter offset missing corner point (11 1): %v", miter)
	}

	// a tight miter limit falls back to bevel
	bevelled, err := OffsetCurve(l, 1, 8, JoinMiter, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(bevelled) != 4 {
		t.Errorf("bevel fallback: expected 4 points, got %v", bevelled)
	}

	round, err := OffsetCurve(l, 1, 8, JoinRound, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(round) <= len(bevelled) {
		t.Errorf("round join should add arc points: %v", round)
	}
	// all arc points stay at the offset radius from the corner
	for _, p := range round[1 : len(round)-1] {
		d := math.Hypot(p.X-10, p.Y-0)
		if different(d, 1, 1e-6) {
			t.Errorf("round join point %v is %g from the corner, want 1", p, d)
		}
	}

	// inner side of the turn gets trimmed to the segment intersection
	inner, err := OffsetCurve(l, -1, 8, JoinRound, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := geom.LineString{{X: 0, Y: -1}, {X: 9, Y: -1}, {X: 9, Y: -10}}
	if !inner.Similar(want, testTolerance) {
		t.Errorf("inner offset = %v, want %v", inner, want)
	}
}

func TestNode(t *testing.T) {
	// two lines crossing at (5, 0)
	mls := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 5, Y: -5}, {X: 5, Y: 5}},
	}
	noded, err := Node(mls)
	if err != nil {
		t.Fatal(err)
	}
	if len(noded) != 4 {
		t.Fatalf("expected 4 noded lines, got %d: %v", len(noded), noded)
	}
	if different(noded.Length(), mls.Length(), testTolerance) {
		t.Errorf("noding changed total length: %g != %g", noded.Length(), mls.Length())
	}
	// every piece must have the crossing as an endpoint
	for _, l := range noded {
		first, last := l[0], l[len(l)-1]
		hit := (first.X == 5 && first.Y == 0) || (last.X == 5 && last.Y == 0)
		if !hit {
			t.Errorf("piece %v does not end at the crossing", l)
		}
	}
}

func TestNodeTJunction(t *testing.T) {
	// the second line ends on the interior of the first: only the first
	// is cut.
	mls := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 5, Y: 5}, {X: 5, Y: 0}},
	}
	noded, err := Node(mls)
	if err != nil {
		t.Fatal(err)
	}
	if len(noded) != 3 {
		t.Fatalf("expected 3 noded lines, got %d: %v", len(noded), noded)
	}
}

func TestNodeNoIntersections(t *testing.T) {
	mls := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 5, Y: 5}, {X: 6, Y: 5}},
	}
	noded, err := Node(mls)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(noded, mls) {
		t.Errorf("disjoint input should be unchanged: %v", noded)
	}
}

func TestNodeSharedEndpoint(t *testing.T) {
	// lines already meeting at endpoints must not be cut
	mls := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 5, Y: 0}},
		{{X: 5, Y: 0}, {X: 5, Y: 5}},
	}
	noded, err := Node(mls)
	if err != nil {
		t.Fatal(err)
	}
	if len(noded) != 2 {
		t.Errorf("pre-noded input should be unchanged, got %v", noded)
	}
}

func TestNodeNonFinite(t *testing.T) {
	mls := geom.MultiLineString{
		{{X: 0, Y: 0}, {X: math.NaN(), Y: 0}},
	}
	if _, err := Node(mls); err == nil {
		t.Error("expected error for non-finite input")
	}
}
