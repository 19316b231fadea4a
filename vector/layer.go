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
	"fmt"

	"github.com/ctessum/geom"
)

// EventKind identifies a layer mutation signal.
type EventKind int

const (
	FeatureAdded EventKind = iota
	FeatureDeleted
	GeometryChanged
	AttributeValueChanged
	DataChanged
	StyleChanged
	Destroyed
)

// Event is delivered synchronously to layer subscribers on the goroutine
// performing the mutation.
type Event struct {
	Kind      EventKind
	Layer     *Layer
	FeatureID int64
	Field     string
}

// Layer wraps a feature Source with an optional Renderer and a
// subscriber registry for mutation signals.
type Layer struct {
	name     string
	src      Source
	renderer Renderer

	subs    map[int]func(Event)
	nextSub int

	destroyed bool
}

// NewLayer creates a layer reading from src.
func NewLayer(name string, src Source) *Layer {
	return &Layer{name: name, src: src, subs: make(map[int]func(Event))}
}

func (l *Layer) Name() string { return l.name }

func (l *Layer) Renderer() Renderer { return l.renderer }

// SetRenderer replaces the layer's renderer and signals a style change.
func (l *Layer) SetRenderer(r Renderer) {
	l.renderer = r
	l.emit(Event{Kind: StyleChanged, Layer: l})
}

// Subscribe registers fn to receive this layer's mutation signals and
// returns a handle for Unsubscribe.
func (l *Layer) Subscribe(fn func(Event)) int {
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	return id
}

func (l *Layer) Unsubscribe(id int) {
	delete(l.subs, id)
}

func (l *Layer) emit(ev Event) {
	for _, fn := range l.subs {
		fn(ev)
	}
}

// Features fetches the layer's features according to req, transforming
// geometries to the requested spatial reference and dropping features
// outside the requested bounds.
func (l *Layer) Features(req *Request) ([]Feature, error) {
	if l.destroyed {
		return nil, fmt.Errorf("vector: layer %s is destroyed", l.name)
	}
	var fields []string
	if !req.NoAttributes {
		fields = req.Fields
	}
	features, err := l.src.ReadFeatures(fields...)
	if err != nil {
		return nil, err
	}

	var transform func(geom.Geom) (geom.Geom, error)
	if req.SR != nil {
		srcSR, err := l.src.SR()
		if err != nil {
			return nil, err
		}
		if srcSR != nil {
			tr, err := srcSR.NewTransform(req.SR)
			if err != nil {
				return nil, err
			}
			transform = func(g geom.Geom) (geom.Geom, error) {
				return g.Transform(tr)
			}
		}
	}

	out := features[:0]
	for _, f := range features {
		if f.Geom != nil {
			if transform != nil {
				g, err := transform(f.Geom)
				if err != nil {
					return nil, err
				}
				f.Geom = g
			}
			if req.Bounds != nil && !req.Bounds.Overlaps(f.Geom.Bounds()) {
				continue
			}
		}
		out = append(out, f)
	}
	return out, nil
}

func (l *Layer) editor() (Editor, error) {
	e, ok := l.src.(Editor)
	if !ok {
		return nil, fmt.Errorf("vector: layer %s is not editable", l.name)
	}
	return e, nil
}

// AddFeature adds a feature to an editable layer and signals the
// addition.
func (l *Layer) AddFeature(f Feature) (int64, error) {
	e, err := l.editor()
	if err != nil {
		return 0, err
	}
	id, err := e.AddFeature(f)
	if err != nil {
		return 0, err
	}
	l.emit(Event{Kind: FeatureAdded, Layer: l, FeatureID: id})
	return id, nil
}

// DeleteFeature deletes a feature from an editable layer and signals the
// deletion.
func (l *Layer) DeleteFeature(id int64) error {
	e, err := l.editor()
	if err != nil {
		return err
	}
	if err := e.DeleteFeature(id); err != nil {
		return err
	}
	l.emit(Event{Kind: FeatureDeleted, Layer: l, FeatureID: id})
	return nil
}

// SetGeometry changes a feature's geometry on an editable layer and
// signals the change.
func (l *Layer) SetGeometry(id int64, g geom.Geom) error {
	e, err := l.editor()
	if err != nil {
		return err
	}
	if err := e.SetGeometry(id, g); err != nil {
		return err
	}
	l.emit(Event{Kind: GeometryChanged, Layer: l, FeatureID: id})
	return nil
}

// SetField changes a feature attribute on an editable layer and signals
// the change.
func (l *Layer) SetField(id int64, field, value string) error {
	e, err := l.editor()
	if err != nil {
		return err
	}
	if err := e.SetField(id, field, value); err != nil {
		return err
	}
	l.emit(Event{Kind: AttributeValueChanged, Layer: l, FeatureID: id, Field: field})
	return nil
}

// NotifyDataChanged signals a bulk data change (reload, reprojection).
func (l *Layer) NotifyDataChanged() {
	l.emit(Event{Kind: DataChanged, Layer: l})
}

// NotifyStyleChanged signals a change to the layer's symbology.
func (l *Layer) NotifyStyleChanged() {
	l.emit(Event{Kind: StyleChanged, Layer: l})
}

// Destroy closes the underlying source and signals destruction. Further
// feature reads fail.
func (l *Layer) Destroy() error {
	if l.destroyed {
		return nil
	}
	l.destroyed = true
	err := l.src.Close()
	l.emit(Event{Kind: Destroyed, Layer: l})
	return err
}
