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

var scatterCases = []TestCase{
	{
		Name:   "sparse",
		Width:  64,
		Height: 64,
		Geom:   Scatter{Radius: 12, Dot: 2, Seed: 1},
		Op:     Fill{},
	},
	{
		Name:   "dense",
		Width:  128,
		Height: 96,
		Geom:   Scatter{Radius: 6, Dot: 1.5, Seed: 2},
		Op:     Fill{},
	},
	{
		Name:   "wide",
		Width:  200,
		Height: 40,
		Geom:   Scatter{Radius: 9, Dot: 3, Seed: 3},
		Op:     Fill{},
	},
	{
		Name:   "tiny",
		Width:  8,
		Height: 8,
		Geom:   Scatter{Radius: 20, Dot: 2, Seed: 4},
		Op:     Fill{},
	},
}
