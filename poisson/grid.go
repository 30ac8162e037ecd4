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

package poisson

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Grid is a uniform background grid used to answer proximity queries in
// constant expected time. The cell size is radius/√2, so that every cell
// can hold at most one point of a valid sample set.
//
// Cells do not store points directly. Instead they hold an index into a
// point slice owned by the caller, offset by one so that the zero value
// marks an empty cell.
type Grid struct {
	cellSize float64
	radius2  float64
	cols     int
	rows     int
	cells    []int32
}

// NewGrid returns an empty grid covering [0,width) × [0,height).
// Width, height and radius must be positive and finite, and the grid must
// not need more than MaxCells cells.
func NewGrid(width, height, radius float64) (*Grid, error) {
	if !isPositive(width) || !isPositive(height) {
		return nil, fmt.Errorf("%gx%g: %w", width, height, ErrInvalidDimensions)
	}
	if !isPositive(radius) {
		return nil, fmt.Errorf("radius %g: %w", radius, ErrInvalidRadius)
	}

	cellSize := radius * math.Sqrt2 / 2
	fcols := math.Ceil(width / cellSize)
	frows := math.Ceil(height / cellSize)
	if n := fcols * frows; n > MaxCells {
		return nil, fmt.Errorf("%gx%g with radius %g needs %g cells: %w",
			width, height, radius, n, ErrGridTooLarge)
	}

	cols, rows := int(fcols), int(frows)
	return &Grid{
		cellSize: cellSize,
		radius2:  radius * radius,
		cols:     cols,
		rows:     rows,
		cells:    make([]int32, cols*rows),
	}, nil
}

// CellSize returns the side length of a grid cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Size returns the number of grid columns and rows.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Cell returns the column and row of the cell owning p.
// Points outside the grid are clamped to the nearest border cell.
func (g *Grid) Cell(p vec.Vec2) (i, j int) {
	i = clamp(int(p.X/g.cellSize), 0, g.cols-1)
	j = clamp(int(p.Y/g.cellSize), 0, g.rows-1)
	return i, j
}

// Insert records that the point with index id lives at p.
// A point already stored in the same cell is overwritten.
func (g *Grid) Insert(p vec.Vec2, id int32) {
	i, j := g.Cell(p)
	g.cells[j*g.cols+i] = id + 1
}

// At returns the index stored in cell (i, j), and false if the cell is empty.
func (g *Grid) At(i, j int) (int32, bool) {
	if i < 0 || i >= g.cols || j < 0 || j >= g.rows {
		return 0, false
	}
	id := g.cells[j*g.cols+i]
	return id - 1, id != 0
}

// IsFar reports whether no point in the 5×5 cell neighbourhood of p lies
// closer than the grid radius. Indices stored in the grid refer to points.
//
// Points at exactly the radius are considered far.
func (g *Grid) IsFar(p vec.Vec2, points []vec.Vec2) bool {
	i, j := g.Cell(p)
	i0, i1 := max(i-2, 0), min(i+3, g.cols)
	j0, j1 := max(j-2, 0), min(j+3, g.rows)

	for jj := j0; jj < j1; jj++ {
		row := g.cells[jj*g.cols : (jj+1)*g.cols]
		for ii := i0; ii < i1; ii++ {
			id := row[ii]
			if id == 0 {
				continue
			}
			d := points[id-1].Sub(p)
			if d.X*d.X+d.Y*d.Y < g.radius2 {
				return false
			}
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
