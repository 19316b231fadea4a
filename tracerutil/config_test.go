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

package tracerutil

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
)

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("1.5, -2")
	if err != nil {
		t.Fatal(err)
	}
	if p.X != 1.5 || p.Y != -2 {
		t.Errorf("got %v", p)
	}
	for _, bad := range []string{"", "1", "1,2,3", "a,b"} {
		if _, err := ParsePoint(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseExtent(t *testing.T) {
	b, err := ParseExtent("0,0,10,20")
	if err != nil {
		t.Fatal(err)
	}
	if b.Min.X != 0 || b.Max.X != 10 || b.Max.Y != 20 {
		t.Errorf("got %v", b)
	}

	b, err = ParseExtent("")
	if err != nil {
		t.Fatal(err)
	}
	if b != nil {
		t.Errorf("empty extent: got %v", b)
	}

	for _, bad := range []string{"0,0,10", "10,0,0,20", "a,b,c,d"} {
		if _, err := ParseExtent(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestWritePath(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePath(&buf, geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, `"LineString"`) {
		t.Errorf("output is not GeoJSON: %s", got)
	}
}

type traceLine struct {
	geom.MultiLineString
	Name string
}

func TestNewTracer(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "lines.shp")
	e, err := shp.NewEncoder(fname, traceLine{})
	if err != nil {
		t.Fatal(err)
	}
	lines := []traceLine{
		{MultiLineString: geom.MultiLineString{{{X: 0, Y: 0}, {X: 10, Y: 0}}}, Name: "a"},
		{MultiLineString: geom.MultiLineString{{{X: 5, Y: -5}, {X: 5, Y: 5}}}, Name: "b"},
	}
	for _, l := range lines {
		if err := e.Encode(l); err != nil {
			t.Fatal(err)
		}
	}
	e.Close()

	Cfg.Set("layers", []string{fname})
	Cfg.Set("noding", true)
	defer func() {
		Cfg.Set("layers", []string{})
		Cfg.Set("noding", false)
	}()

	tr, err := NewTracer(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	path, err := tr.FindShortestPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(path.Length()-10) > 1e-9 {
		t.Errorf("path length = %g, want 10", path.Length())
	}
}

func TestNewTracerNoLayers(t *testing.T) {
	if _, err := NewTracer(Cfg); err == nil {
		t.Error("expected error with no layers configured")
	}
}

func TestOptionDefaults(t *testing.T) {
	if got := Cfg.GetString("joinstyle"); got != "miter" {
		t.Errorf("joinstyle default = %q", got)
	}
	if got := Cfg.GetFloat64("miterlimit"); got != 2 {
		t.Errorf("miterlimit default = %g", got)
	}
	if got := Cfg.GetInt("offsetsegments"); got != 8 {
		t.Errorf("offsetsegments default = %d", got)
	}
	if Cfg.GetBool("noding") {
		t.Error("noding should default to off")
	}
}
