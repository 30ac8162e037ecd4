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

// Package scale provides the mapping functions used to turn data values
// into pixel coordinates.
package scale

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
)

// Linear returns the affine map taking d0 to r0 and d1 to r1.
// If the domain is degenerate, every value maps to the middle of the range.
func Linear(d0, d1, r0, r1 float64) func(float64) float64 {
	if d0 == d1 {
		mid := (r0 + r1) / 2
		return func(float64) float64 { return mid }
	}
	var norm plot.Normalizer = plot.LinearScale{}
	return func(x float64) float64 {
		return r0 + norm.Normalize(d0, d1, x)*(r1-r0)
	}
}

// Time returns the affine map taking t0 to r0 and t1 to r1.
// Times are measured in seconds relative to t0, so that sub-second
// differences survive over long domains.
func Time(t0, t1 time.Time, r0, r1 float64) func(time.Time) float64 {
	f := Linear(0, t1.Sub(t0).Seconds(), r0, r1)
	return func(t time.Time) float64 {
		return f(t.Sub(t0).Seconds())
	}
}

// Extent returns the smallest and largest value of f over data.
// NaN values are ignored. If no other values remain, both results are NaN.
func Extent[R any](data []R, f func(R) float64) (lo, hi float64) {
	if len(data) == 0 {
		return math.NaN(), math.NaN()
	}
	vals := make([]float64, len(data))
	for i, rec := range data {
		vals[i] = f(rec)
	}
	return floats.Min(vals), floats.Max(vals)
}
// TimeExtent returns the earliest and latest time of f over data.
// For empty data, both results are the zero time.
func TimeExtent[R any](data []R, f func(R) time.Time) (first, last time.Time) {
	if len(data) == 0 {
		return time.Time{}, time.Time{}
	}
	first = f(data[0])
	last = first
	for _, rec := range data[1:] {
		t := f(rec)
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	return first, last
}
