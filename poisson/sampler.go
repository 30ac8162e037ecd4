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

// Package poisson generates blue-noise point sets using Bridson's
// Poisson-disc sampling algorithm.
//
// A Sampler places points inside the rectangle [0,width) × [0,height) such
// that no two points are closer than a given radius. New candidates are
// thrown around previously accepted points, and a background Grid keeps the
// proximity test local.
package poisson

import (
	"iter"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultAttempts is the number of candidates tried around an active point
// before it is retired.
const DefaultAttempts = 30

// MaxCells bounds the size of the background grid.
const MaxCells = 1 << 26

// Source is a source of uniformly distributed numbers in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both implement Source.
type Source interface {
	Float64() float64
}

// Sampler produces a Poisson-disc point set one point at a time.
//
// A Sampler is not safe for concurrent use.
type Sampler struct {
	// Attempts is the number of candidates generated around an active point
	// before the point is removed from the frontier. Values below 1 are
	// treated as 1.
	Attempts int

	width, height float64
	radius        float64
	radius2       float64

	src    Source
	grid   *Grid
	points []vec.Vec2 // accepted points, in order of acceptance
	active []int32    // frontier: indices into points
}

// New returns a sampler for the rectangle [0,width) × [0,height) with
// minimum point distance radius.
//
// If src is nil, the sampler uses its own randomly seeded generator.
func New(width, height, radius float64, src Source) (*Sampler, error) {
	grid, err := NewGrid(width, height, radius)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Sampler{
		Attempts: DefaultAttempts,
		width:    width,
		height:   height,
		radius:   radius,
		radius2:  radius * radius,
		src:      src,
		grid:     grid,
	}, nil
}

// Sample draws a complete point set for the given rectangle and radius.
func Sample(width, height, radius float64, src Source) ([]vec.Vec2, error) {
	s, err := New(width, height, radius, src)
	if err != nil {
		return nil, err
	}
	for range s.All() {
	}
	return s.points, nil
}

// Next returns the next accepted point. Once no more points can be placed,
// Next returns false, and keeps doing so on subsequent calls.
func (s *Sampler) Next() (vec.Vec2, bool) {
	if len(s.points) == 0 {
		p := vec.Vec2{
			X: s.src.Float64() * s.width,
			Y: s.src.Float64() * s.height,
		}
		return s.accept(p), true
	}

	attempts := max(s.Attempts, 1)
	for len(s.active) > 0 {
		k := int(s.src.Float64() * float64(len(s.active)))
		k = min(k, len(s.active)-1)
		centre := s.points[s.active[k]]

		for range attempts {
			// Sampling r² uniformly on [r², 4r²] spreads candidates evenly
			// over the area of the annulus.
			a := 2 * math.Pi * s.src.Float64()
			r := math.Sqrt(s.src.Float64()*3*s.radius2 + s.radius2)
			c := vec.Vec2{
				X: centre.X + r*math.Cos(a),
				Y: centre.Y + r*math.Sin(a),
			}
			if s.inside(c) && s.grid.IsFar(c, s.points) {
				return s.accept(c), true
			}
		}

		last := len(s.active) - 1
		s.active[k] = s.active[last]
		s.active = s.active[:last]
	}
	return vec.Vec2{}, false
}

// All returns an iterator over the remaining points of the sampler.
func (s *Sampler) All() iter.Seq[vec.Vec2] {
	return func(yield func(vec.Vec2) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Points returns the points accepted so far.
// The slice is owned by the sampler and must not be modified.
func (s *Sampler) Points() []vec.Vec2 {
	return s.points
}

// Len returns the number of points accepted so far.
func (s *Sampler) Len() int {
	return len(s.points)
}

// Active returns the number of points still used to spawn candidates.
func (s *Sampler) Active() int {
	return len(s.active)
}

// Radius returns the minimum distance between points.
func (s *Sampler) Radius() float64 {
	return s.radius
}

// Bounds returns the sampling rectangle.
func (s *Sampler) Bounds() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: s.width, URy: s.height}
}

func (s *Sampler) inside(p vec.Vec2) bool {
	return p.X >= 0 && p.X < s.width && p.Y >= 0 && p.Y < s.height
}

func (s *Sampler) accept(p vec.Vec2) vec.Vec2 {
	id := int32(len(s.points))
	s.points = append(s.points, p)
	s.active = append(s.active, id)
	s.grid.Insert(p, id)
	return p
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
