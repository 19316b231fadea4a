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

package vector

import (
	"os"
	"strings"

	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"
)

// ShapefileSource reads features from an ESRI shapefile. The decoder is
// forward-only, so every ReadFeatures call reopens the file.
type ShapefileSource struct {
	filename string
}

// NewShapefileSource creates a source for the given shapefile, checking
// that the file can be opened.
func NewShapefileSource(filename string) (*ShapefileSource, error) {
	d, err := shp.NewDecoder(filename)
	if err != nil {
		return nil, err
	}
	d.Close()
	return &ShapefileSource{filename: filename}, nil
}

// SR returns the spatial reference from the shapefile's .prj file, or
// nil if there is none.
func (s *ShapefileSource) SR() (*proj.SR, error) {
	prj := strings.TrimSuffix(s.filename, ".shp") + ".prj"
	if _, err := os.Stat(prj); os.IsNotExist(err) {
		return nil, nil
	}
	d, err := shp.NewDecoder(s.filename)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.SR()
}

func (s *ShapefileSource) ReadFeatures(fields ...string) ([]Feature, error) {
	d, err := shp.NewDecoder(s.filename)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	var out []Feature
	for {
		g, attrs, more := d.DecodeRowFields(fields...)
		if !more {
			break
		}
		f := Feature{ID: int64(len(out)), Geom: g}
		if len(fields) > 0 {
			// DBF character fields are padded with trailing spaces
			for k, v := range attrs {
				attrs[k] = strings.TrimRight(v, " ")
			}
			f.Fields = attrs
		}
		out = append(out, f)
	}
	if err := d.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ShapefileSource) Close() error { return nil }
