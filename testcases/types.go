// seehuhn.de/go/chartgeom - geometry helpers for chart rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"fmt"
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chartgeom/felton"
	"seehuhn.de/go/chartgeom/poisson"
	"seehuhn.de/go/chartgeom/scale"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Width  int       // canvas width in pixels
	Height int       // canvas height in pixels
	Geom   Geometry  // what to draw
	Op     Operation // fill or stroke
}

// Geometry describes how the path of a test case is generated.
type Geometry interface {
	isGeometry()
}

// Scatter places dots on a blue-noise point set.
type Scatter struct {
	Radius float64 // minimum distance between dot centres
	Dot    float64 // radius of each dot
	Seed   uint64  // seed for the point sampler
}

func (Scatter) isGeometry() {}

// Chart draws a Felton chart of a time series.
type Chart struct {
	Data   []Sample
	Closed bool // area instead of line
}

func (Chart) isGeometry() {}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill operation, using the nonzero winding rule.
type Fill struct{}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width float64                // line width (>0)
	Cap   graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join  graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
}

func (Stroke) isOperation() {}

// chartMargin is the distance in pixels between a chart and the canvas edge.
const chartMargin = 4

// Path generates the geometry of the test case in pixel coordinates,
// with the origin in the top-left corner and y pointing down.
func (tc TestCase) Path() (*path.Data, error) {
	var p *path.Data
	var err error
	switch g := tc.Geom.(type) {
	case Scatter:
		p, err = g.path(tc.Width, tc.Height)
	case Chart:
		p, err = g.path(tc.Width, tc.Height)
	default:
		err = fmt.Errorf("unknown geometry %T", tc.Geom)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	return p, nil
}

// Points returns the dot centres of a scatter case, or the vertices of a
// chart case.
func (tc TestCase) Points() ([]vec.Vec2, error) {
	switch g := tc.Geom.(type) {
	case Scatter:
		return g.points(tc.Width, tc.Height)
	case Chart:
		return g.points(tc.Width, tc.Height)
	}
	return nil, fmt.Errorf("%s: unknown geometry %T", tc.Name, tc.Geom)
}

func (s Scatter) points(width, height int) ([]vec.Vec2, error) {
	src := rand.New(rand.NewPCG(s.Seed, s.Seed))
	return poisson.Sample(float64(width), float64(height), s.Radius, src)
}

func (s Scatter) path(width, height int) (*path.Data, error) {
	pts, err := s.points(width, height)
	if err != nil {
		return nil, err
	}
	p := &path.Data{}
	for _, c := range pts {
		addCircle(p, c, s.Dot)
	}
	return p, nil
}

func (c Chart) points(width, height int) ([]vec.Vec2, error) {
	first, last := scale.TimeExtent(c.Data, sampleDate)
	_, hi := scale.Extent(c.Data, sampleValue)
	x := scale.Time(first, last, chartMargin, float64(width)-chartMargin)
	y := scale.Linear(0, max(hi, 0), float64(height)-chartMargin, chartMargin)

	if c.Closed {
		return felton.ClosedPolygon(c.Data, x, sampleDate, y, sampleValue)
	}
	return felton.Line(c.Data, x, sampleDate, y, sampleValue)
}

func (c Chart) path(width, height int) (*path.Data, error) {
	pts, err := c.points(width, height)
	if err != nil {
		return nil, err
	}
	return felton.Path(pts, c.Closed), nil
}

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// addCircle appends an approximate circle, made of four cubic Bézier
// curves, as a new closed subpath.
func addCircle(p *path.Data, c vec.Vec2, r float64) {
	k := r * kappa
	p.MoveTo(pt(c.X+r, c.Y)).
		CubeTo(pt(c.X+r, c.Y-k), pt(c.X+k, c.Y-r), pt(c.X, c.Y-r)).
		CubeTo(pt(c.X-k, c.Y-r), pt(c.X-r, c.Y-k), pt(c.X-r, c.Y)).
		CubeTo(pt(c.X-r, c.Y+k), pt(c.X-k, c.Y+r), pt(c.X, c.Y+r)).
		CubeTo(pt(c.X+k, c.Y+r), pt(c.X+r, c.Y+k), pt(c.X+r, c.Y)).
		Close()
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
