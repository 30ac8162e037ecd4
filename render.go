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

// Package chartgeom renders the chart geometry test cases into coverage
// buffers.
//
// The geometry itself comes from the sub-packages: [poisson] places
// blue-noise dots and [felton] builds stepped chart outlines. This package
// turns the resulting paths into anti-aliased 8-bit coverage, using
// golang.org/x/image/vector for scan conversion.
//
// [poisson]: seehuhn.de/go/chartgeom/poisson
// [felton]: seehuhn.de/go/chartgeom/felton
package chartgeom

//go:generate go run ./testcases/export -out testdata/testcases.json

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/vector"

	"seehuhn.de/go/chartgeom/testcases"
)

// errShortBuffer indicates an output buffer too small for the canvas.
var errShortBuffer = errors.New("chartgeom: buffer too small")

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	if width <= 0 || height <= 0 || stride < width || len(buf) < (height-1)*stride+width {
		return fmt.Errorf("%s: %dx%d with stride %d in %d bytes: %w",
			tc.Name, width, height, stride, len(buf), errShortBuffer)
	}

	p, err := tc.Path()
	if err != nil {
		return err
	}

	r := vector.NewRasterizer(width, height)
	switch op := tc.Op.(type) {
	case testcases.Fill:
		fillPath(r, p)
	case testcases.Stroke:
		if op.Width <= 0 {
			return fmt.Errorf("%s: invalid line width %g", tc.Name, op.Width)
		}
		s := stroker{r: r, hw: op.Width / 2, cap: op.Cap, join: op.Join}
		s.strokePath(p)
	default:
		return fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
	}

	// The rasterizer's fast path writes rows back to back, so padded
	// buffers go through a temporary image.
	if stride == width {
		dst := &image.Alpha{
			Pix:    buf[:width*height],
			Stride: width,
			Rect:   image.Rect(0, 0, width, height),
		}
		r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
		return nil
	}
	tmp := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(tmp, tmp.Bounds(), image.Opaque, image.Point{})
	for y := range height {
		copy(buf[y*stride:y*stride+width], tmp.Pix[y*width:(y+1)*width])
	}
	return nil
}
