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
	"github.com/ctessum/geom/proj"
)

// MemorySource is an editable in-memory feature source.
type MemorySource struct {
	sr       *proj.SR
	features []Feature
	index    map[int64]int
	nextID   int64
}

// NewMemorySource creates an empty in-memory source with the given
// spatial reference (which may be nil).
func NewMemorySource(sr *proj.SR) *MemorySource {
	return &MemorySource{sr: sr, index: make(map[int64]int)}
}

func (s *MemorySource) SR() (*proj.SR, error) { return s.sr, nil }

func (s *MemorySource) ReadFeatures(fields ...string) ([]Feature, error) {
	out := make([]Feature, len(s.features))
	for i, f := range s.features {
		out[i] = Feature{ID: f.ID, Geom: f.Geom}
		if len(fields) > 0 {
			out[i].Fields = make(map[string]string)
			for _, name := range fields {
				if v, ok := f.Fields[name]; ok {
					out[i].Fields[name] = v
				}
			}
		}
	}
	return out, nil
}

func (s *MemorySource) Close() error { return nil }

// AddFeature adds f and returns the ID assigned to it.
func (s *MemorySource) AddFeature(f Feature) (int64, error) {
	f.ID = s.nextID
	s.nextID++
	if f.Fields == nil {
		f.Fields = make(map[string]string)
	}
	s.index[f.ID] = len(s.features)
	s.features = append(s.features, f)
	return f.ID, nil
}

func (s *MemorySource) DeleteFeature(id int64) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("vector: no feature with ID %d", id)
	}
	s.features = append(s.features[:i], s.features[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.features); j++ {
		s.index[s.features[j].ID] = j
	}
	return nil
}

func (s *MemorySource) SetGeometry(id int64, g geom.Geom) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("vector: no feature with ID %d", id)
	}
	s.features[i].Geom = g
	return nil
}

func (s *MemorySource) SetField(id int64, field, value string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("vector: no feature with ID %d", id)
	}
	s.features[i].Fields[field] = value
	return nil
}
