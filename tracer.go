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
	"errors"
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"

	"github.com/spatialmodel/tracer/lineop"
	"github.com/spatialmodel/tracer/vector"
)

// Version gives the version number of this version of Tracer.
const Version = "0.1.0"

// Errors returned by FindShortestPath. A nil error means a path was
// found.
var (
	// ErrTooManyFeatures means graph initialization was aborted
	// because the configured feature cap was reached.
	ErrTooManyFeatures = errors.New("tracer: maximum feature count reached")

	// ErrPoint1 means the start point is neither near a graph vertex
	// nor on any edge.
	ErrPoint1 = errors.New("tracer: start point cannot be joined to the graph")

	// ErrPoint2 means the end point is neither near a graph vertex nor
	// on any edge.
	ErrPoint2 = errors.New("tracer: end point cannot be joined to the graph")

	// ErrNoPath means both points are on the graph but no route
	// connects them.
	ErrNoPath = errors.New("tracer: no path between the given points")
)

// Tracer answers shortest-path queries over the linework of a set of
// vector layers. The zero value is not usable; use New.
//
// A Tracer instance and its layers must be used from a single
// goroutine: queries, configuration changes, and layer mutations all
// share the cached graph.
type Tracer struct {
	layers []*vector.Layer
	subs   map[*vector.Layer]int

	destSR        *proj.SR
	extent        *geom.Bounds
	renderContext *vector.RenderContext

	// feature count at which graph construction fails; 0 means no
	// limit
	maxFeatureCount int

	epsilon float64

	offset           float64
	offsetSegments   int
	offsetJoinStyle  lineop.JoinStyle
	offsetMiterLimit float64

	noding                bool
	snapInvisibleFeatures bool

	graph              *graph
	hasTopologyProblem bool
}

// New creates a Tracer with no layers configured.
func New() *Tracer {
	return &Tracer{
		subs:             make(map[*vector.Layer]int),
		epsilon:          Epsilon,
		offsetSegments:   8,
		offsetJoinStyle:  lineop.JoinMiter,
		offsetMiterLimit: 2,
	}
}

// Layers returns the layers currently used for tracing.
func (t *Tracer) Layers() []*vector.Layer { return t.layers }

// SetLayers sets the layers used for tracing and discards the graph.
// The tracer subscribes to the layers' mutation signals so that any
// upstream change also discards the graph. Setting the same list of
// layers again is a no-op and keeps the graph.
func (t *Tracer) SetLayers(layers []*vector.Layer) {
	if layersEqual(t.layers, layers) {
		return
	}

	for _, l := range t.layers {
		l.Unsubscribe(t.subs[l])
		delete(t.subs, l)
	}

	t.layers = append([]*vector.Layer(nil), layers...)

	for _, l := range t.layers {
		t.subs[l] = l.Subscribe(t.onLayerEvent)
	}

	t.invalidateGraph()
}

func (t *Tracer) onLayerEvent(ev vector.Event) {
	if ev.Kind == vector.Destroyed {
		t.dropLayer(ev.Layer)
	}
	t.invalidateGraph()
}

// dropLayer removes a destroyed layer from the configured list.
func (t *Tracer) dropLayer(layer *vector.Layer) {
	kept := t.layers[:0]
	for _, l := range t.layers {
		if l != layer {
			kept = append(kept, l)
		}
	}
	t.layers = kept
	if id, ok := t.subs[layer]; ok {
		layer.Unsubscribe(id)
		delete(t.subs, layer)
	}
}

// SetDestinationSR sets the spatial reference that layer features are
// transformed to before graph construction, and discards the graph.
func (t *Tracer) SetDestinationSR(sr *proj.SR) {
	t.destSR = sr
	t.invalidateGraph()
}

// SetExtent restricts graph construction to the features intersecting
// extent (interpreted in the destination spatial reference), and
// discards the graph. A nil extent means no restriction. Setting an
// extent equal to the current one is a no-op and keeps the graph.
func (t *Tracer) SetExtent(extent *geom.Bounds) {
	if boundsEqual(t.extent, extent) {
		return
	}
	t.extent = extent
	t.invalidateGraph()
}

// SetRenderContext sets the map state used to filter invisible features
// out of the graph, and discards the graph. With a nil context no
// visibility filtering happens.
func (t *Tracer) SetRenderContext(ctx *vector.RenderContext) {
	t.renderContext = ctx
	t.invalidateGraph()
}

// SetMaxFeatureCount caps the number of features the graph may be built
// from: construction fails with ErrTooManyFeatures as soon as the count
// of features read reaches n, so at most n-1 features are accepted. 0
// means unlimited. The graph is discarded.
func (t *Tracer) SetMaxFeatureCount(n int) {
	t.maxFeatureCount = n
	t.invalidateGraph()
}

// SetNoding controls whether the linework is noded (split at mutual
// intersections) before graph construction. Noding is off by default:
// data that is known to be noded beforehand traces correctly without
// it. The graph is discarded.
func (t *Tracer) SetNoding(enable bool) {
	t.noding = enable
	t.invalidateGraph()
}

// SetSnapInvisibleFeatures controls whether features hidden by the
// render context still take part in tracing. The graph is discarded.
func (t *Tracer) SetSnapInvisibleFeatures(enable bool) {
	t.snapInvisibleFeatures = enable
	t.invalidateGraph()
}

// Offset returns the lateral offset applied to traced paths.
func (t *Tracer) Offset() float64 { return t.offset }

// SetOffset sets the lateral offset applied to traced paths. Positive
// values offset to the left of the direction of travel. The graph is
// kept.
func (t *Tracer) SetOffset(offset float64) {
	t.offset = offset
}

// OffsetParameters returns the parameters used to build offset curves.
func (t *Tracer) OffsetParameters() (quadSegments int, joinStyle lineop.JoinStyle, miterLimit float64) {
	return t.offsetSegments, t.offsetJoinStyle, t.offsetMiterLimit
}

// SetOffsetParameters sets the parameters used to build offset curves.
// The graph is kept.
func (t *Tracer) SetOffsetParameters(quadSegments int, joinStyle lineop.JoinStyle, miterLimit float64) {
	t.offsetSegments = quadSegments
	t.offsetJoinStyle = joinStyle
	t.offsetMiterLimit = miterLimit
}

// HasTopologyProblem reports whether noding the linework failed during
// the last graph construction, in which case tracing continues on the
// un-noded input and may miss intersections.
func (t *Tracer) HasTopologyProblem() bool { return t.hasTopologyProblem }

// invalidateGraph discards the cached graph so the next query rebuilds
// it.
func (t *Tracer) invalidateGraph() {
	t.graph = nil
}

// Init builds the graph if it does not exist yet. Queries call it
// implicitly; callers may invoke it up front to control when the build
// cost is paid.
func (t *Tracer) Init() error {
	if t.graph != nil {
		return nil
	}
	return t.initGraph()
}

func (t *Tracer) initGraph() error {
	t.hasTopologyProblem = false

	var mpl geom.MultiLineString
	featuresCounted := 0
	for _, l := range t.layers {
		req := &vector.Request{SR: t.destSR, Bounds: t.extent, NoAttributes: true}

		var renderer vector.Renderer
		if !t.snapInvisibleFeatures && t.renderContext != nil && l.Renderer() != nil {
			renderer = l.Renderer()
			req.NoAttributes = false
			req.Fields = renderer.UsedFields()
		}

		features, err := l.Features(req)
		if err != nil {
			return fmt.Errorf("tracer: reading features from layer %s: %v", l.Name(), err)
		}
		for i := range features {
			f := &features[i]
			if f.Geom == nil {
				continue
			}
			if renderer != nil && !renderer.WillRenderFeature(f, t.renderContext) {
				continue
			}
			mpl = append(mpl, lineop.Segmentize(f.Geom)...)

			featuresCounted++
			if t.maxFeatureCount != 0 && featuresCounted >= t.maxFeatureCount {
				return ErrTooManyFeatures
			}
		}
	}

	if t.noding {
		if noded, err := lineop.Node(mpl); err != nil {
			// not a fatal problem; the linework just may be
			// missing some intersections
			t.hasTopologyProblem = true
		} else {
			mpl = noded
		}
	}

	t.graph = newGraph(mpl)
	return nil
}

// FindShortestPath returns the shortest route along the layers'
// linework between p1 and p2. The points may be graph vertices or lie
// anywhere on an edge. When a nonzero offset is configured, the
// returned polyline is the offset curve of the traced route.
func (t *Tracer) FindShortestPath(p1, p2 geom.Point) (geom.LineString, error) {
	if err := t.Init(); err != nil {
		return nil, err
	}

	v1 := t.graph.pointInGraph(p1, t.epsilon)
	if v1 == -1 {
		return nil, ErrPoint1
	}
	v2 := t.graph.pointInGraph(p2, t.epsilon)
	if v2 == -1 {
		t.graph.reset() // p1 may have been grafted
		return nil, ErrPoint2
	}

	points := t.graph.shortestPath(v1, v2)
	t.graph.reset()

	if len(points) > 0 && t.offset != 0 {
		offsetCurve, err := lineop.OffsetCurve(points, t.offset,
			t.offsetSegments, t.offsetJoinStyle, t.offsetMiterLimit)
		if err == nil && len(offsetCurve) >= 2 {
			points = offsetCurve
			// the resulting curve is sometimes reversed (with
			// negative offsets)
			res1 := points[0]
			res2 := points[len(points)-1]
			diffNormal := pointDistance(res1, p1) + pointDistance(res2, p2)
			diffReversed := pointDistance(res1, p2) + pointDistance(res2, p1)
			if diffReversed < diffNormal {
				reverseLine(points)
			}
		}
	}

	if len(points) == 0 {
		return nil, ErrNoPath
	}
	return points, nil
}

// IsPointSnapped reports whether pt would be accepted as a tracing
// endpoint: it is within epsilon of a graph vertex or lies on an edge.
// The graph is not modified.
func (t *Tracer) IsPointSnapped(pt geom.Point) bool {
	if err := t.Init(); err != nil {
		return false
	}
	if t.graph.pointToVertex(pt, t.epsilon) != -1 {
		return true
	}
	e, _ := t.graph.pointToEdge(pt, t.epsilon)
	return e != -1
}

func layersEqual(a, b []*vector.Layer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func boundsEqual(a, b *geom.Bounds) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Min == b.Min && a.Max == b.Max
}
