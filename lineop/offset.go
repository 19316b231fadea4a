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

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// JoinStyle selects how OffsetCurve connects consecutive offset segments
// at outer corners.
type JoinStyle int

const (
	JoinMiter JoinStyle = iota
	JoinBevel
	JoinRound
)

func (j JoinStyle) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinBevel:
		return "bevel"
	case JoinRound:
		return "round"
	}
	return fmt.Sprintf("JoinStyle(%d)", int(j))
}

// ParseJoinStyle converts a join style name to a JoinStyle.
func ParseJoinStyle(s string) (JoinStyle, error) {
	switch s {
	case "miter":
		return JoinMiter, nil
	case "bevel":
		return JoinBevel, nil
	case "round":
		return JoinRound, nil
	}
	return JoinMiter, fmt.Errorf("lineop: invalid join style %q", s)
}

// OffsetCurve returns a polyline laterally offset from l by distance.
// Positive distances offset to the left of the direction of travel,
// negative to the right. Outer corners are connected according to
// joinStyle; quadSegments sets the number of arc segments per quarter
// circle for round joins, and a miter join whose length would exceed
// miterLimit times the offset distance falls back to a bevel.
func OffsetCurve(l geom.LineString, distance float64, quadSegments int, joinStyle JoinStyle, miterLimit float64) (geom.LineString, error) {
	pts := dropRepeated(l)
	if len(pts) < 2 {
		return nil, fmt.Errorf("lineop: cannot offset a polyline with fewer than two distinct points")
	}
	for _, p := range pts {
		if !finite(p) {
			return nil, fmt.Errorf("lineop: non-finite coordinate in offset input")
		}
	}
	if distance == 0 {
		out := make(geom.LineString, len(pts))
		copy(out, pts)
		return out, nil
	}
	if quadSegments < 1 {
		quadSegments = 1
	}

	// Offset every segment by distance along its left normal.
	n := len(pts) - 1
	starts := make([]geom.Point, n)
	ends := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		dx := pts[i+1].X - pts[i].X
		dy := pts[i+1].Y - pts[i].Y
		length := math.Hypot(dx, dy)
		nx := -dy / length * distance
		ny := dx / length * distance
		starts[i] = geom.Point{X: pts[i].X + nx, Y: pts[i].Y + ny}
		ends[i] = geom.Point{X: pts[i+1].X + nx, Y: pts[i+1].Y + ny}
	}

	out := geom.LineString{starts[0]}
	for i := 1; i < n; i++ {
		prevEnd := ends[i-1]
		nextStart := starts[i]
		cross := (pts[i].X-pts[i-1].X)*(pts[i+1].Y-pts[i].Y) -
			(pts[i].Y-pts[i-1].Y)*(pts[i+1].X-pts[i].X)
		switch {
		case math.Abs(cross) < 1e-12:
			// collinear; the offset segments already share an endpoint
			out = appendPoint(out, prevEnd)
		case cross*distance > 0:
			// inner corner: trim the overlapping offset segments
			if m, ok := lineIntersection(starts[i-1], ends[i-1], starts[i], ends[i]); ok {
				out = appendPoint(out, m)
			} else {
				out = appendPoint(out, prevEnd)
				out = appendPoint(out, nextStart)
			}
		default:
			out = joinCorner(out, pts[i], starts[i-1], ends[i-1], starts[i], ends[i],
				distance, quadSegments, joinStyle, miterLimit)
		}
	}
	out = appendPoint(out, ends[n-1])

	if len(out) < 2 {
		return nil, fmt.Errorf("lineop: offset curve collapsed")
	}
	return out, nil
}

// joinCorner connects the offset segments (a1, a2) and (b1, b2) around
// the outer side of the original vertex c.
func joinCorner(out geom.LineString, c, a1, a2, b1, b2 geom.Point,
	distance float64, quadSegments int, joinStyle JoinStyle, miterLimit float64) geom.LineString {

	if joinStyle == JoinMiter {
		if m, ok := lineIntersection(a1, a2, b1, b2); ok {
			if pointDistance(c, m) <= miterLimit*math.Abs(distance) {
				return appendPoint(out, m)
			}
		}
		joinStyle = JoinBevel
	}

	out = appendPoint(out, a2)
	if joinStyle == JoinRound {
		radius := math.Abs(distance)
		start := math.Atan2(a2.Y-c.Y, a2.X-c.X)
		end := math.Atan2(b1.Y-c.Y, b1.X-c.X)
		delta := end - start
		for delta > math.Pi {
			delta -= 2 * math.Pi
		}
		for delta < -math.Pi {
			delta += 2 * math.Pi
		}
		steps := int(math.Ceil(math.Abs(delta) / (math.Pi / 2) * float64(quadSegments)))
		if steps > 1 {
			angles := make([]float64, steps+1)
			floats.Span(angles, start, start+delta)
			for _, a := range angles[1:steps] {
				out = appendPoint(out, geom.Point{
					X: c.X + radius*math.Cos(a),
					Y: c.Y + radius*math.Sin(a),
				})
			}
		}
	}
	return appendPoint(out, b1)
}

// lineIntersection intersects the infinite lines through (p1, p2) and
// (p3, p4). ok is false for parallel lines.
func lineIntersection(p1, p2, p3, p4 geom.Point) (geom.Point, bool) {
	d1x := p2.X - p1.X
	d1y := p2.Y - p1.Y
	d2x := p4.X - p3.X
	d2y := p4.Y - p3.Y
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return geom.Point{}, false
	}
	t := ((p3.X-p1.X)*d2y - (p3.Y-p1.Y)*d2x) / denom
	return geom.Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}

func appendPoint(l geom.LineString, p geom.Point) geom.LineString {
	if len(l) > 0 {
		last := l[len(l)-1]
		if math.Abs(last.X-p.X) < 1e-12 && math.Abs(last.Y-p.Y) < 1e-12 {
			return l
		}
	}
	return append(l, p)
}

func dropRepeated(l geom.LineString) geom.LineString {
	var out geom.LineString
	for _, p := range l {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}
