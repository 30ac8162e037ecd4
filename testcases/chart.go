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

import "seehuhn.de/go/pdf/graphics"

var lineCases = []TestCase{
	{
		Name:   "monthly",
		Width:  160,
		Height: 64,
		Geom:   Chart{Data: monthly},
		Op: Stroke{
			Width: 2,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinMiter,
		},
	},
	{
		Name:   "monthly_round",
		Width:  160,
		Height: 64,
		Geom:   Chart{Data: monthly},
		Op: Stroke{
			Width: 4,
			Cap:   graphics.LineCapRound,
			Join:  graphics.LineJoinRound,
		},
	},
	{
		Name:   "weekly",
		Width:  120,
		Height: 64,
		Geom:   Chart{Data: weekly},
		Op: Stroke{
			Width: 2,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinBevel,
		},
	},
	{
		Name:   "pair",
		Width:  64,
		Height: 64,
		Geom:   Chart{Data: pair},
		Op: Stroke{
			Width: 3,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinMiter,
		},
	},
}

var areaCases = []TestCase{
	{
		Name:   "monthly",
		Width:  160,
		Height: 64,
		Geom:   Chart{Data: monthly, Closed: true},
		Op:     Fill{},
	},
	{
		Name:   "weekly",
		Width:  120,
		Height: 64,
		Geom:   Chart{Data: weekly, Closed: true},
		Op:     Fill{},
	},
	{
		Name:   "pair",
		Width:  64,
		Height: 64,
		Geom:   Chart{Data: pair, Closed: true},
		Op:     Fill{},
	},
}
