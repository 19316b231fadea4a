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

// Package vector holds vector-feature data sources and the layer
// abstraction the tracing engine consumes: feature iteration with
// spatial-reference transformation and extent filtering, renderer-based
// visibility filtering, and synchronous mutation signals.
package vector

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// Feature is a single vector feature: a geometry plus string attribute
// values keyed by field name.
type Feature struct {
	ID     int64
	Geom   geom.Geom
	Fields map[string]string
}

// Source supplies features to a Layer.
type Source interface {
	// SR returns the source's native spatial reference, or nil if it
	// is unknown.
	SR() (*proj.SR, error)

	// ReadFeatures returns all features in the source, populating only
	// the named attribute columns. With no fields, attributes are
	// omitted.
	ReadFeatures(fields ...string) ([]Feature, error)

	Close() error
}

// Editor is implemented by sources that support feature editing.
type Editor interface {
	AddFeature(f Feature) (int64, error)
	DeleteFeature(id int64) error
	SetGeometry(id int64, g geom.Geom) error
	SetField(id int64, field, value string) error
}

// Request describes which features to fetch from a layer and in what
// form.
type Request struct {
	// Bounds filters out features whose bounding box does not overlap
	// this rectangle (interpreted in the requested spatial reference).
	// The geometry itself is not tested against the rectangle. Nil
	// means no spatial filter.
	Bounds *geom.Bounds

	// SR is the spatial reference to transform feature geometry to.
	// Nil leaves geometries in the source's native reference.
	SR *proj.SR

	// Fields lists the attribute columns to fetch. Ignored when
	// NoAttributes is set.
	Fields []string

	// NoAttributes requests geometry only.
	NoAttributes bool
}
