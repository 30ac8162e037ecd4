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

package felton

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

type record struct {
	t, v float64
}

func recT(r record) float64 { return r.t }
func recV(r record) float64 { return r.v }
func times10(x float64) float64 { return x * 10 }
func flipped(y float64) float64 { return 100 - y*10 }
func identity(x float64) float64 { return x }
func nanScale(float64) float64 { return math.NaN() }
func dateX(d time.Time) float64 { return float64(d.Unix()) / 86400 }
func dayValue(r dayRecord) float64 { return r.count }
func dayDate(r dayRecord) time.Time { return r.day }

type dayRecord struct {
	day   time.Time
	count float64
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestLineExample(t *testing.T) {
	data := []record{{0, 1}, {1, 3}, {2, 2}}
	got, err := Line(data, times10, recT, times10, recV)
	if err != nil {
		t.Fatal(err)
	}

	const cw = 0.5
	want := []vec.Vec2{
		{X: 0, Y: 10},
		{X: 10 - cw, Y: 10},
		{X: 10 + cw, Y: 30},
		{X: 20, Y: 20},
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("Line() mismatch (-want +got):\n%s", d)
	}
}

func TestLineTwoRecords(t *testing.T) {
	data := []record{{3, 4}, {5, 6}}
	got, err := Line(data, identity, recT, identity, recV)
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{{X: 3, Y: 4}, {X: 5, Y: 6}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Line() mismatch (-want +got):\n%s", d)
	}
}

func TestLineLength(t *testing.T) {
	for n := 2; n <= 12; n++ {
		data := make([]record, n)
		for i := range data {
			data[i] = record{t: float64(i), v: float64(i * i % 7)}
		}

		line, err := Line(data, times10, recT, flipped, recV)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if want := 2 + 2*(n-2); len(line) != want {
			t.Errorf("n=%d: Line() has %d points, want %d", n, len(line), want)
		}

		poly, err := ClosedPolygon(data, times10, recT, flipped, recV)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if want := 2 + 2*(n-2) + 3; len(poly) != want {
			t.Errorf("n=%d: ClosedPolygon() has %d points, want %d", n, len(poly), want)
		}
	}
}

// TestLineSteps checks the shape of every interior step: the arriving point
// keeps the previous height, the leaving point takes the current one, and
// both sit one connector width away from the record's x position.
func TestLineSteps(t *testing.T) {
	data := []record{{0, 5}, {2, 1}, {4, 7}, {6, 3}, {8, 3}}
	line, err := Line(data, times10, recT, flipped, recV)
	if err != nil {
		t.Fatal(err)
	}

	cw := (times10(2) - times10(0)) * ConnectorFraction
	for i := 1; i < len(data)-1; i++ {
		arrive, leave := line[2*i-1], line[2*i]
		x := times10(data[i].t)
		if math.Abs(arrive.X-(x-cw)) > 1e-9 || arrive.Y != flipped(data[i-1].v) {
			t.Errorf("record %d: arriving point %v", i, arrive)
		}
		if math.Abs(leave.X-(x+cw)) > 1e-9 || leave.Y != flipped(data[i].v) {
			t.Errorf("record %d: leaving point %v", i, leave)
		}
	}
}

func TestLineTimeAxis(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	data := []dayRecord{
		{start, 4},
		{start.AddDate(0, 0, 1), 8},
		{start.AddDate(0, 0, 2), 2},
	}
	x0 := dateX(start)
	xScale := func(d time.Time) float64 { return (dateX(d) - x0) * 100 }

	got, err := Line(data, xScale, dayDate, identity, dayValue)
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{{X: 0, Y: 4}, {X: 95, Y: 4}, {X: 105, Y: 8}, {X: 200, Y: 2}}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("Line() mismatch (-want +got):\n%s", d)
	}
}

func TestClosedPolygon(t *testing.T) {
	data := []record{{0, 1}, {1, 3}, {2, 2}}
	got, err := ClosedPolygon(data, times10, recT, flipped, recV)
	if err != nil {
		t.Fatal(err)
	}

	base := flipped(0)
	want := []vec.Vec2{
		{X: 0, Y: base},
		{X: 0, Y: 90},
		{X: 9.5, Y: 90},
		{X: 10.5, Y: 70},
		{X: 20, Y: 80},
		{X: 20, Y: base},
		{X: 0, Y: base},
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("ClosedPolygon() mismatch (-want +got):\n%s", d)
	}

	first, last := got[0], got[len(got)-1]
	if first != last {
		t.Errorf("ring not closed: first %v, last %v", first, last)
	}
	if first.Y != base || last.Y != base {
		t.Errorf("ring endpoints not on baseline %g: %v, %v", base, first, last)
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		data []record
		y    func(float64) float64
		err  error
	}{
		{"Nil", nil, identity, ErrTooFewRecords},
		{"Empty", []record{}, identity, ErrTooFewRecords},
		{"One", []record{{0, 1}}, identity, ErrTooFewRecords},
		{"NilScale", []record{{0, 1}, {1, 2}}, nil, ErrNilFunc},
		{"NaN", []record{{0, 1}, {1, 2}}, nanScale, ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Line(tc.data, identity, recT, tc.y, recV)
			if !errors.Is(err, tc.err) {
				t.Errorf("Line() error = %v, want %v", err, tc.err)
			}
			_, err = ClosedPolygon(tc.data, identity, recT, tc.y, recV)
			if !errors.Is(err, tc.err) {
				t.Errorf("ClosedPolygon() error = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestClosedPolygonBaseline(t *testing.T) {
	// Only the baseline is infinite, the line itself is fine.
	y := func(v float64) float64 {
		if v == 0 {
			return math.Inf(1)
		}
		return v
	}
	_, err := ClosedPolygon([]record{{0, 1}, {1, 2}}, identity, recT, y, recV)
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("ClosedPolygon() error = %v, want %v", err, ErrNonFinite)
	}
}

func TestPath(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	open := Path(pts, false)
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}
	if d := cmp.Diff(wantCmds, open.Cmds); d != "" {
		t.Errorf("open path commands (-want +got):\n%s", d)
	}
	if d := cmp.Diff(pts, open.Coords); d != "" {
		t.Errorf("open path coordinates (-want +got):\n%s", d)
	}

	closed := Path(pts, true)
	wantCmds = append(wantCmds, path.CmdClose)
	if d := cmp.Diff(wantCmds, closed.Cmds); d != "" {
		t.Errorf("closed path commands (-want +got):\n%s", d)
	}

	if empty := Path(nil, true); len(empty.Cmds) != 0 {
		t.Errorf("Path(nil) has %d commands", len(empty.Cmds))
	}
}
