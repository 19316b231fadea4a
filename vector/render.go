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
	"strconv"

	"github.com/Knetic/govaluate"
)

// RenderContext carries the map state a Renderer needs to decide
// feature visibility.
type RenderContext struct {
	// ScaleDenominator is the denominator of the current map scale
	// (e.g. 25000 for 1:25000). Zero means no scale is known.
	ScaleDenominator float64
}

// Renderer decides which features of a layer are visible.
type Renderer interface {
	// WillRenderFeature reports whether f would be drawn under ctx.
	WillRenderFeature(f *Feature, ctx *RenderContext) bool

	// UsedFields lists the attribute columns the renderer evaluates.
	UsedFields() []string
}

// ExpressionRenderer filters features with a govaluate expression over
// their attribute values, optionally restricted to a visible scale
// range. Attribute values that parse as numbers are passed to the
// expression as float64, others as strings.
type ExpressionRenderer struct {
	expr *govaluate.EvaluableExpression

	// MinScale and MaxScale bound the visible range of scale
	// denominators; zero means unbounded on that side.
	MinScale, MaxScale float64
}

// NewExpressionRenderer compiles filter into a renderer. An empty filter
// renders every feature (subject to the scale range).
func NewExpressionRenderer(filter string) (*ExpressionRenderer, error) {
	r := &ExpressionRenderer{}
	if filter != "" {
		expr, err := govaluate.NewEvaluableExpression(filter)
		if err != nil {
			return nil, err
		}
		r.expr = expr
	}
	return r, nil
}

func (r *ExpressionRenderer) UsedFields() []string {
	if r.expr == nil {
		return nil
	}
	return r.expr.Vars()
}

func (r *ExpressionRenderer) WillRenderFeature(f *Feature, ctx *RenderContext) bool {
	if ctx != nil && ctx.ScaleDenominator != 0 {
		if r.MinScale != 0 && ctx.ScaleDenominator < r.MinScale {
			return false
		}
		if r.MaxScale != 0 && ctx.ScaleDenominator > r.MaxScale {
			return false
		}
	}
	if r.expr == nil {
		return true
	}
	params := make(map[string]interface{}, len(f.Fields))
	for k, v := range f.Fields {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			params[k] = x
		} else {
			params[k] = v
		}
	}
	result, err := r.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}
