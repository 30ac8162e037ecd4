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

package chartgeom

import (
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Default values for stroking parameters.
const (
	defaultFlatness   = 0.25 // curve approximation tolerance in pixels
	defaultMiterLimit = 10.0 // PDF default
)

// circleKappa is the control point distance for approximating a quarter
// circle with a cubic Bézier curve.
const circleKappa = 0.5522847498

// fillPath adds all subpaths of p to the rasterizer. Open subpaths are
// closed implicitly.
func fillPath(r *vector.Rasterizer, p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := p.Coords[k]
			r.MoveTo(float32(c.X), float32(c.Y))
			k++
		case path.CmdLineTo:
			c := p.Coords[k]
			r.LineTo(float32(c.X), float32(c.Y))
			k++
		case path.CmdQuadTo:
			c1, c2 := p.Coords[k], p.Coords[k+1]
			r.QuadTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y))
			k += 2
		case path.CmdCubeTo:
			c1, c2, c3 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			r.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(c3.X), float32(c3.Y))
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// stroker converts path outlines into filled polygons.
//
// The rasterizer accumulates signed area, so that overlapping pieces of
// opposite orientation would cancel. Every piece is therefore emitted with
// positive orientation.
type stroker struct {
	r    *vector.Rasterizer
	hw   float64 // half the line width
	cap  graphics.LineCapStyle
	join graphics.LineJoinStyle

	pts []vec.Vec2 // vertices of the current subpath
}

// strokePath strokes every subpath of p. Curves are flattened first.
func (s *stroker) strokePath(p *path.Data) {
	s.pts = s.pts[:0]
	var current vec.Vec2

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			s.flush(false)
			current = p.Coords[k]
			s.pts = append(s.pts, current)
			k++
		case path.CmdLineTo:
			s.resume(current)
			current = p.Coords[k]
			s.pts = append(s.pts, current)
			k++
		case path.CmdQuadTo:
			s.resume(current)
			flattenQuadratic(current, p.Coords[k], p.Coords[k+1], s.add)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			s.resume(current)
			flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], s.add)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if len(s.pts) > 0 {
				current = s.pts[0]
			}
			s.flush(true)
		}
	}
	s.flush(false)
}

// resume starts a new subpath at the current point, if drawing continues
// after a ClosePath without a MoveTo.
func (s *stroker) resume(current vec.Vec2) {
	if len(s.pts) == 0 {
		s.pts = append(s.pts, current)
	}
}

func (s *stroker) add(_, to vec.Vec2) {
	s.pts = append(s.pts, to)
}

// flush strokes the collected subpath and clears it.
func (s *stroker) flush(closed bool) {
	pts := dedup(s.pts)
	defer func() { s.pts = s.pts[:0] }()

	if closed && len(pts) > 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		// A degenerate subpath only shows with round caps.
		if s.cap == graphics.LineCapRound {
			s.disc(pts[0])
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		s.segment(pts[i], pts[(i+1)%n])
	}

	if closed {
		for i := range n {
			s.joinAt(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
		return
	}
	for i := 1; i < n-1; i++ {
		s.joinAt(pts[i-1], pts[i], pts[i+1])
	}
	s.capAt(pts[0], pts[1])
	s.capAt(pts[n-1], pts[n-2])
}

// segment emits the rectangle covering the straight segment from a to b.
func (s *stroker) segment(a, b vec.Vec2) {
	n := normal(a, b).Mul(s.hw)
	s.polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// joinAt fills the gap between the segments (a, v) and (v, b).
func (s *stroker) joinAt(a, v, b vec.Vec2) {
	d0 := unit(v.Sub(a))
	d1 := unit(b.Sub(v))
	cross := d0.X*d1.Y - d0.Y*d1.X
	if math.Abs(cross) < 1e-12 && d0.Dot(d1) > 0 {
		return // collinear
	}

	if s.join == graphics.LineJoinRound {
		s.disc(v)
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := vec.Vec2{X: -d0.Y, Y: d0.X}.Mul(side)
	n1 := vec.Vec2{X: -d1.Y, Y: d1.X}.Mul(side)
	p0 := v.Add(n0.Mul(s.hw))
	p1 := v.Add(n1.Mul(s.hw))

	if s.join == graphics.LineJoinMiter {
		// The miter tip lies along the bisector of the two normals.
		m := n0.Add(n1)
		denom := 1 + n0.Dot(n1)
		if denom > 1e-12 {
			m = m.Mul(1 / denom)
			// |m| is the ratio of miter length to line width.
			if m.Length() <= defaultMiterLimit {
				s.polygon(v, p0, v.Add(m.Mul(s.hw)), p1)
				return
			}
		}
	}
	s.polygon(v, p0, p1)
}

// capAt adds the line cap at end point p of the segment from q to p.
func (s *stroker) capAt(p, q vec.Vec2) {
	switch s.cap {
	case graphics.LineCapRound:
		s.disc(p)
	case graphics.LineCapSquare:
		d := unit(p.Sub(q)).Mul(s.hw)
		s.segment(p, p.Add(d))
	}
}

// disc emits a circle of radius hw around c.
func (s *stroker) disc(c vec.Vec2) {
	k := s.hw * circleKappa
	r := s.hw
	s.r.MoveTo(f32(c.X+r, c.Y))
	s.r.CubeTo(f32x3(c.X+r, c.Y+k, c.X+k, c.Y+r, c.X, c.Y+r))
	s.r.CubeTo(f32x3(c.X-k, c.Y+r, c.X-r, c.Y+k, c.X-r, c.Y))
	s.r.CubeTo(f32x3(c.X-r, c.Y-k, c.X-k, c.Y-r, c.X, c.Y-r))
	s.r.CubeTo(f32x3(c.X+k, c.Y-r, c.X+r, c.Y-k, c.X+r, c.Y))
	s.r.ClosePath()
}

// polygon emits a closed polygon, reversing it if needed to give it
// positive orientation.
func (s *stroker) polygon(pts ...vec.Vec2) {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	s.r.MoveTo(f32(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		s.r.LineTo(f32(p.X, p.Y))
	}
	s.r.ClosePath()
}

// signedArea returns the shoelace area of a polygon. It is positive for
// polygons which run clockwise on screen, where y points down.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if d := e.Length(); d > defaultFlatness {
		n = int(math.Ceil(math.Sqrt(d / defaultFlatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * defaultFlatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// dedup removes consecutive duplicate points, in place.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// normal returns the unit normal of the direction from a to b.
func normal(a, b vec.Vec2) vec.Vec2 {
	d := unit(b.Sub(a))
	return vec.Vec2{X: -d.Y, Y: d.X}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

func f32(x, y float64) (float32, float32) {
	return float32(x), float32(y)
}

func f32x3(a, b, c, d, e, f float64) (float32, float32, float32, float32, float32, float32) {
	return float32(a), float32(b), float32(c), float32(d), float32(e), float32(f)
}
