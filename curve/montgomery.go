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

// Montgomery is the curve By^2 = x^3 + Ax^2 + x over F_p, valid when
// B(A^2-4) != 0.
type Montgomery struct {
	A, B *math.Int
	F    *math.Field
}

// NewMontgomery validates B(A^2-4) != 0 and returns the curve.
func NewMontgomery(a, b *math.Int, f *math.Field) (*Montgomery, error) {
	disc := f.Mul(b, f.Sub(f.Mul(a, a), math.FOUR))
	if disc.Equals(math.ZERO) {
		return nil, eccerr.New(eccerr.ErrInvalidParameters, "invalid Montgomery params a=%v b=%v", a, b)
	}
	return &Montgomery{A: a, B: b, F: f}, nil
}

// Neutral returns the point at infinity.
func (c *Montgomery) Neutral() *Point {
	return &Point{Inf: true}
}

// PointOnCurve checks B*y^2 = x^3 + A*x^2 + x.
func (c *Montgomery) PointOnCurve(p *Point) bool {
	if p.Inf {
		return true
	}
	f := c.F
	lhs := f.Mul(c.B, f.Mul(p.Y, p.Y))
	rhs := f.Add(f.Add(f.Mul(f.Mul(p.X, p.X), p.X), f.Mul(c.A, f.Mul(p.X, p.X))), p.X)
	return f.Normalize(f.Sub(lhs, rhs)).Equals(math.ZERO)
}

// Invert returns -P.
func (c *Montgomery) Invert(p *Point) *Point {
	if p.Inf {
		return c.Neutral()
	}
	return NewPoint(p.X, c.F.Sub(math.ZERO, p.Y))
}

// GetY returns the (0, 1 or 2) points on the curve for a given x.
func (c *Montgomery) GetY(x *math.Int) ([]*Point, error) {
	f := c.F
	bnum := f.Normalize(f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(c.A, f.Mul(x, x))), x))
	yy, err := f.Div(bnum, c.B)
	if err != nil {
		return nil, err
	}
	roots, err := math.SqrtModP(yy, f.P)
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

// GetX is unsupported: the curve equation is cubic in x for a fixed y,
// and this toolkit's non-goals explicitly exclude recovering a full
// Montgomery point from one coordinate (see scheme.Curve25519.DecodePublic).
func (c *Montgomery) GetX(y *math.Int) ([]*Point, error) {
	return nil, eccerr.New(eccerr.ErrUnsupported, "get_x not supported on Montgomery curves")
}

// Add computes P+Q with the standard Montgomery affine law.
func (c *Montgomery) Add(p, q *Point) *Point {
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
	f := c.F
	dy := f.Sub(q.Y, p.Y)
	dx := f.Sub(q.X, p.X)
	t1, _ := f.Div(f.Mul(c.B, f.Mul(dy, dy)), f.Mul(dx, dx))
	x3 := f.Sub(f.Sub(f.Sub(t1, c.A), p.X), q.X)
	num2 := f.Mul(f.Add(f.Add(p.X, p.X), f.Add(q.X, c.A)), dy)
	t2, _ := f.Div(num2, dx)
	t3, _ := f.Div(f.Mul(c.B, f.Mul(f.Mul(dy, dy), dy)), f.Mul(f.Mul(dx, dx), dx))
	y3 := f.Sub(f.Sub(t2, t3), p.Y)
	return NewPoint(f.Normalize(x3), f.Normalize(y3))
}

// Double computes 2P with the standard Montgomery affine law.
func (c *Montgomery) Double(p *Point) *Point {
	if p.Inf || p.Y.Sign() == 0 {
		return c.Neutral()
	}
	f := c.F
	num := f.Add(f.Add(f.Mul(math.THREE, f.Mul(p.X, p.X)), f.Mul(math.TWO, f.Mul(c.A, p.X))), math.ONE)
	den := f.Mul(math.TWO, f.Mul(c.B, p.Y))
	t1, _ := f.Div(f.Mul(c.B, f.Mul(num, num)), f.Mul(den, den))
	x3 := f.Sub(f.Sub(f.Sub(t1, c.A), p.X), p.X)
	num2 := f.Mul(f.Add(f.Add(p.X, p.X), f.Add(p.X, c.A)), num)
	t2, _ := f.Div(num2, den)
	t3, _ := f.Div(f.Mul(c.B, f.Mul(f.Mul(num, num), num)), f.Mul(f.Mul(den, den), den))
	y3 := f.Sub(f.Sub(t2, t3), p.Y)
	return NewPoint(f.Normalize(x3), f.Normalize(y3))
}

// AffineToXZ lifts the affine x-coordinate to a Montgomery x-only point.
func (c *Montgomery) AffineToXZ(p *Point) *XZPoint {
	if p.Inf {
		return &XZPoint{X: math.ONE, Z: math.ZERO}
	}
	return &XZPoint{X: p.X, Z: math.ONE}
}

// NeutralXZ returns the x-only representation of the point at infinity.
func (c *Montgomery) NeutralXZ() *XZPoint {
	return &XZPoint{X: math.ONE, Z: math.ZERO}
}

// XZToAffine recovers the affine point from an x-only point, picking the
// smaller canonical y root of GetY(x/Z) (the implementation's fixed,
// documented tie-break for the otherwise-arbitrary square-root choice).
func (c *Montgomery) XZToAffine(p *XZPoint) (*Point, error) {
	if p.Z.Equals(math.ZERO) {
		return c.Neutral(), nil
	}
	x, err := c.F.Div(p.X, p.Z)
	if err != nil {
		return nil, err
	}
	ys, err := c.GetY(x)
	if err != nil {
		return nil, err
	}
	if len(ys) == 0 {
		return nil, eccerr.New(eccerr.ErrNotOnCurve, "no y for x=%v", x)
	}
	best := ys[0]
	for _, cand := range ys[1:] {
		if cand.Y.Cmp(best.Y) < 0 {
			best = cand
		}
	}
	return best, nil
}

// DoubleXZ doubles an x-only point.
//
//	X3 = (X1^2-Z1^2)^2
//	Z3 = 4*X1*Z1*(X1^2+A*X1*Z1+Z1^2)
func (c *Montgomery) DoubleXZ(p *XZPoint) *XZPoint {
	f := c.F
	xx := f.Mul(p.X, p.X)
	zz := f.Mul(p.Z, p.Z)
	x3 := f.Mul(f.Sub(xx, zz), f.Sub(xx, zz))
	inner := f.Add(f.Add(xx, f.Mul(c.A, f.Mul(p.X, p.Z))), zz)
	z3 := f.Mul(math.FOUR, f.Mul(f.Mul(p.X, p.Z), inner))
	return &XZPoint{X: f.Normalize(x3), Z: f.Normalize(z3)}
}

// DiffAdd computes P+Q from x-only points P, Q and their known
// difference D=P-Q ("dadd-1987-m-3"; resolves the undefined third point
// in the reference source, see Open Question (b)).
func (c *Montgomery) DiffAdd(p, q, d *XZPoint) *XZPoint {
	f := c.F
	t1 := f.Mul(f.Sub(p.X, p.Z), f.Add(q.X, q.Z))
	t2 := f.Mul(f.Add(p.X, p.Z), f.Sub(q.X, q.Z))
	sum := f.Add(t1, t2)
	diff := f.Sub(t1, t2)
	x3 := f.Mul(d.Z, f.Mul(sum, sum))
	z3 := f.Mul(d.X, f.Mul(diff, diff))
	return &XZPoint{X: f.Normalize(x3), Z: f.Normalize(z3)}
}

// ToShortWeierstrass returns the isomorphic short Weierstrass curve and
// the forward/inverse point maps, via x=Bu-A/3, y=Bv.
func (c *Montgomery) ToShortWeierstrass() (*ShortWeierstrass, func(*Point) (*Point, error), func(*Point) (*Point, error), error) {
	f := c.F
	b2, err := f.Inv(f.Mul(math.THREE, f.Mul(c.B, c.B)))
	if err != nil {
		return nil, nil, nil, err
	}
	a := f.Mul(f.Sub(math.THREE, f.Mul(c.A, c.A)), b2)
	b3, err := f.Inv(f.Mul(math.NewInt(27), f.Mul(f.Mul(c.B, c.B), c.B)))
	if err != nil {
		return nil, nil, nil, err
	}
	b := f.Mul(f.Sub(f.Mul(math.TWO, f.Mul(f.Mul(c.A, c.A), c.A)), f.Mul(math.NewInt(9), c.A)), b3)
	sw, err := NewShortWeierstrass(a, b, f)
	if err != nil {
		return nil, nil, nil, err
	}
	a3, err := f.Div(c.A, math.THREE)
	if err != nil {
		return nil, nil, nil, err
	}
	toSW := func(p *Point) (*Point, error) {
		if p.Inf {
			return sw.Neutral(), nil
		}
		xu, err := f.Div(f.Add(p.X, a3), c.B)
		if err != nil {
			return nil, err
		}
		yv, err := f.Div(p.Y, c.B)
		if err != nil {
			return nil, err
		}
		return NewPoint(f.Normalize(xu), f.Normalize(yv)), nil
	}
	toM := func(p *Point) (*Point, error) {
		if p.Inf {
			return c.Neutral(), nil
		}
		x := f.Sub(f.Mul(p.X, c.B), a3)
		y := f.Mul(p.Y, c.B)
		return NewPoint(f.Normalize(x), f.Normalize(y)), nil
	}
	return sw, toSW, toM, nil
}
