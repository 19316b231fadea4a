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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/proj"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/spatialmodel/tracer"
	"github.com/spatialmodel/tracer/lineop"
	"github.com/spatialmodel/tracer/vector"
)

// NewTracer builds a Tracer from the configuration in cfg, opening the
// configured shapefile layers.
func NewTracer(cfg *viper.Viper) (*tracer.Tracer, error) {
	paths := cfg.GetStringSlice("layers")
	if len(paths) == 0 {
		return nil, fmt.Errorf("tracer: no layers configured; set the layers option")
	}

	var renderer vector.Renderer
	if filter := cfg.GetString("filter"); filter != "" {
		r, err := vector.NewExpressionRenderer(filter)
		if err != nil {
			return nil, fmt.Errorf("tracer: compiling filter: %v", err)
		}
		renderer = r
	}

	var layers []*vector.Layer
	for _, path := range paths {
		path = os.ExpandEnv(path)
		src, err := vector.NewShapefileSource(path)
		if err != nil {
			return nil, fmt.Errorf("tracer: opening layer %s: %v", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), ".shp")
		layer := vector.NewLayer(name, src)
		if renderer != nil {
			layer.SetRenderer(renderer)
		}
		layers = append(layers, layer)
	}

	t := tracer.New()
	t.SetLayers(layers)

	if prj := cfg.GetString("crs"); prj != "" {
		sr, err := proj.Parse(prj)
		if err != nil {
			return nil, fmt.Errorf("tracer: parsing crs: %v", err)
		}
		t.SetDestinationSR(sr)
	}

	extent, err := ParseExtent(cfg.GetString("extent"))
	if err != nil {
		return nil, fmt.Errorf("tracer: parsing extent: %v", err)
	}
	t.SetExtent(extent)

	t.SetMaxFeatureCount(cfg.GetInt("maxfeatures"))
	t.SetNoding(cfg.GetBool("noding"))
	if renderer != nil {
		t.SetRenderContext(&vector.RenderContext{})
	}

	t.SetOffset(cfg.GetFloat64("offset"))
	joinStyle, err := lineop.ParseJoinStyle(cfg.GetString("joinstyle"))
	if err != nil {
		return nil, err
	}
	t.SetOffsetParameters(cfg.GetInt("offsetsegments"), joinStyle,
		cfg.GetFloat64("miterlimit"))

	return t, nil
}

// ParsePoint parses a point given as "x,y".
func ParsePoint(s string) (geom.Point, error) {
	vals, err := splitFloats(s, 2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: vals[0], Y: vals[1]}, nil
}

// ParseExtent parses a bounding rectangle given as "xmin,ymin,xmax,ymax".
// An empty string means no extent and returns nil.
func ParseExtent(s string) (*geom.Bounds, error) {
	if s == "" {
		return nil, nil
	}
	vals, err := splitFloats(s, 4)
	if err != nil {
		return nil, err
	}
	if vals[0] > vals[2] || vals[1] > vals[3] {
		return nil, fmt.Errorf("tracer: extent %q has min > max", s)
	}
	return &geom.Bounds{
		Min: geom.Point{X: vals[0], Y: vals[1]},
		Max: geom.Point{X: vals[2], Y: vals[3]},
	}, nil
}

func splitFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("tracer: expected %d comma-separated values in %q", n, s)
	}
	vals := make([]float64, n)
	for i, f := range fields {
		v, err := cast.ToFloat64E(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("tracer: parsing %q: %v", s, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// WritePath writes a traced path to w as GeoJSON.
func WritePath(w io.Writer, path geom.LineString) error {
	b, err := geojson.Encode(path)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
