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

// Package felton builds the stepped connector paths used by Felton charts.
//
// A Felton chart shows one value per period as a short horizontal segment.
// Consecutive segments are joined by steep connectors, which leaves a small
// visual gap at every period boundary. [Line] returns the open polyline,
// [ClosedPolygon] the same outline closed against the zero baseline, ready to
// be filled.
//
// Records are never inspected directly. The caller supplies an accessor and
// a scale for each axis; the accessor extracts a domain value from a record
// and the scale maps that value to a pixel coordinate. Scales are assumed to
// be monotonic.
package felton

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ConnectorFraction is the horizontal extent of a connector on each side of
// a period boundary, as a fraction of the width of the first period.
const ConnectorFraction = 0.05

// Line returns the stepped polyline for data.
//
// The first and last records map to single points. Every interior record i
// contributes two points: one slightly left of its x position at the height
// of record i-1, and one slightly right of it at its own height. For n
// records the result has 2 + 2(n-2) points.
//
// data must have at least two records, since the first two determine the
// connector width.
func Line[R, X any](data []R, xScale func(X) float64, xValue func(R) X, yScale func(float64) float64, yValue func(R) float64) ([]vec.Vec2, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%d records: %w", len(data), ErrTooFewRecords)
	}
	if xScale == nil || xValue == nil || yScale == nil || yValue == nil {
		return nil, ErrNilFunc
	}

	n := len(data)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, rec := range data {
		xs[i] = xScale(xValue(rec))
		ys[i] = yScale(yValue(rec))
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, fmt.Errorf("record %d maps to (%g, %g): %w", i, xs[i], ys[i], ErrNonFinite)
		}
	}

	cw := (xs[1] - xs[0]) * ConnectorFraction

	res := make([]vec.Vec2, 0, 2*n-2)
	res = append(res, vec.Vec2{X: xs[0], Y: ys[0]})
	for i := 1; i < n-1; i++ {
		res = append(res,
			vec.Vec2{X: xs[i] - cw, Y: ys[i-1]},
			vec.Vec2{X: xs[i] + cw, Y: ys[i]})
	}
	res = append(res, vec.Vec2{X: xs[n-1], Y: ys[n-1]})
	return res, nil
}

// ClosedPolygon returns the outline of the area between the stepped line
// and the y=0 baseline.
//
// The ring starts on the baseline below the first record, follows the
// output of [Line], drops to the baseline below the last record and returns
// to its starting point. The first and last vertices are identical, and the
// result has three points more than the corresponding line.
func ClosedPolygon[R, X any](data []R, xScale func(X) float64, xValue func(R) X, yScale func(float64) float64, yValue func(R) float64) ([]vec.Vec2, error) {
	line, err := Line(data, xScale, xValue, yScale, yValue)
	if err != nil {
		return nil, err
	}

	base := yScale(0)
	if !isFinite(base) {
		return nil, fmt.Errorf("baseline maps to %g: %w", base, ErrNonFinite)
	}
	first := vec.Vec2{X: line[0].X, Y: base}
	last := vec.Vec2{X: line[len(line)-1].X, Y: base}

	res := make([]vec.Vec2, 0, len(line)+3)
	res = append(res, first)
	res = append(res, line...)
	res = append(res, last, first)
	return res, nil
}

// Path converts a point sequence into path data.
// If closed is set, the subpath is closed after the last point.
// An empty point sequence gives an empty path.
func Path(pts []vec.Vec2, closed bool) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	if closed {
		p.Close()
	}
	return p
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
