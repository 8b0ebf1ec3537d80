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

// TwistedEdwards is the curve ax^2 + y^2 = 1 + dx^2y^2 over F_p.
type TwistedEdwards struct {
	A, D *math.Int
	F    *math.Field
}

// NewTwistedEdwards validates a*d*(a-d) != 0 and returns the curve
// ax^2+y^2=1+dx^2y^2.
func NewTwistedEdwards(a, d *math.Int, f *math.Field) (*TwistedEdwards, error) {
	if f.Mul(f.Mul(a, d), f.Sub(a, d)).Equals(math.ZERO) {
		return nil, eccerr.New(eccerr.ErrInvalidParameters, "invalid twisted Edwards params a=%v d=%v", a, d)
	}
	return &TwistedEdwards{A: a, D: d, F: f}, nil
}

// Neutral returns the affine neutral point (0, 1).
func (c *TwistedEdwards) Neutral() *Point {
	return NewPoint(math.ZERO, math.ONE)
}

// PointOnCurve checks ax^2+y^2 = 1+dx^2y^2.
func (c *TwistedEdwards) PointOnCurve(p *Point) bool {
	f := c.F
	xx := f.Mul(p.X, p.X)
	yy := f.Mul(p.Y, p.Y)
	lhs := f.Add(f.Mul(c.A, xx), yy)
	rhs := f.Add(math.ONE, f.Mul(c.D, f.Mul(xx, yy)))
	return f.Normalize(f.Sub(lhs, rhs)).Equals(math.ZERO)
}

// Invert returns -P = (-x, y).
func (c *TwistedEdwards) Invert(p *Point) *Point {
	return NewPoint(c.F.Sub(math.ZERO, p.X), p.Y)
}

// GetX recovers the x-coordinates for a given y: ax^2+y^2=1+dx^2y^2
// rearranges to x^2(a-dy^2) = 1-y^2.
func (c *TwistedEdwards) GetX(y *math.Int) ([]*Point, error) {
	f := c.F
	yy := f.Mul(y, y)
	top, err1 := math.SqrtModP(f.Normalize(f.Sub(math.ONE, yy)), f.P)
	bottom, err2 := math.SqrtModP(f.Normalize(f.Sub(c.A, f.Mul(c.D, yy))), f.P)
	if err1 != nil || err2 != nil {
		return nil, eccerr.New(eccerr.ErrNotOnCurve, "no x for y=%v", y)
	}
	// x^2 can be a square while 1-y^2 and a-dy^2 are both non-squares, so
	// the root of the whole quotient is tried as a candidate too.
	if q, err := f.Div(f.Sub(math.ONE, yy), f.Sub(c.A, f.Mul(c.D, yy))); err == nil {
		if roots, _ := math.SqrtModP(q, f.P); len(roots) > 0 {
			top = append(top, roots...)
			bottom = append(bottom, math.ONE)
		}
	}
	seen := make(map[string]*Point)
	for _, t := range top {
		for _, b := range bottom {
			x, err := f.Div(t, b)
			if err != nil {
				continue
			}
			p := NewPoint(f.Normalize(x), y)
			if c.PointOnCurve(p) {
				seen[p.String()] = p
			}
			np := NewPoint(f.Normalize(f.Sub(math.ZERO, x)), y)
			if c.PointOnCurve(np) {
				seen[np.String()] = np
			}
		}
	}
	var result []*Point
	for _, p := range seen {
		result = append(result, p)
	}
	return result, nil
}

// GetY is unsupported, matching the reference source which only
// recovers x from y for this curve family.
func (c *TwistedEdwards) GetY(x *math.Int) ([]*Point, error) {
	return nil, eccerr.New(eccerr.ErrUnsupported, "get_y not supported on twisted Edwards curves")
}

// Add computes P+Q with the twisted Edwards addition law.
func (c *TwistedEdwards) Add(p, q *Point) *Point {
	f := c.F
	cross := f.Mul(c.D, f.Mul(f.Mul(p.X, q.X), f.Mul(p.Y, q.Y)))
	xnum := f.Add(f.Mul(p.X, q.Y), f.Mul(p.Y, q.X))
	x3, _ := f.Div(xnum, f.Add(math.ONE, cross))
	ynum := f.Sub(f.Mul(p.Y, q.Y), f.Mul(c.A, f.Mul(p.X, q.X)))
	y3, _ := f.Div(ynum, f.Sub(math.ONE, cross))
	return NewPoint(f.Normalize(x3), f.Normalize(y3))
}

// Double computes 2P via Add(P, P), matching the reference source.
func (c *TwistedEdwards) Double(p *Point) *Point {
	return c.Add(p, p)
}

// NeutralProjective returns the projective neutral point (0,1,1).
func (c *TwistedEdwards) NeutralProjective() *ProjPoint {
	return &ProjPoint{X: math.ZERO, Y: math.ONE, Z: math.ONE}
}

// AffineToProjective lifts an affine point to projective coordinates.
func (c *TwistedEdwards) AffineToProjective(p *Point) *ProjPoint {
	return &ProjPoint{X: p.X, Y: p.Y, Z: math.ONE}
}

// ProjectiveToAffine recovers the affine point from (X,Y,Z).
func (c *TwistedEdwards) ProjectiveToAffine(p *ProjPoint) *Point {
	x, _ := c.F.Div(p.X, p.Z)
	y, _ := c.F.Div(p.Y, p.Z)
	return NewPoint(x, y)
}

// AddProjective adds two projective points using "add-2008-bbjlp".
func (c *TwistedEdwards) AddProjective(p, q *ProjPoint) *ProjPoint {
	f := c.F
	a := f.Mul(p.Z, q.Z)
	b := f.Mul(a, a)
	cc := f.Mul(p.X, q.X)
	d := f.Mul(p.Y, q.Y)
	e := f.Mul(c.D, f.Mul(cc, d))
	ff := f.Sub(b, e)
	g := f.Add(b, e)
	x3 := f.Mul(a, f.Mul(ff, f.Sub(f.Sub(f.Mul(f.Add(p.X, p.Y), f.Add(q.X, q.Y)), cc), d)))
	y3 := f.Mul(a, f.Mul(g, f.Sub(d, f.Mul(c.A, cc))))
	z3 := f.Mul(ff, g)
	return &ProjPoint{X: f.Normalize(x3), Y: f.Normalize(y3), Z: f.Normalize(z3)}
}

// DoubleProjective doubles a projective point using "dbl-2008-bbjlp".
func (c *TwistedEdwards) DoubleProjective(p *ProjPoint) *ProjPoint {
	f := c.F
	b := f.Mul(f.Add(p.X, p.Y), f.Add(p.X, p.Y))
	cc := f.Mul(p.X, p.X)
	d := f.Mul(p.Y, p.Y)
	e := f.Mul(c.A, cc)
	ff := f.Add(e, d)
	h := f.Mul(p.Z, p.Z)
	j := f.Sub(ff, f.Mul(math.TWO, h))
	x3 := f.Mul(f.Sub(f.Sub(b, cc), d), j)
	y3 := f.Mul(ff, f.Sub(e, d))
	z3 := f.Mul(ff, j)
	return &ProjPoint{X: f.Normalize(x3), Y: f.Normalize(y3), Z: f.Normalize(z3)}
}

// ToMontgomery returns the isomorphic Montgomery curve and the
// forward/inverse point maps, via A=2(a+d)/(a-d), B=4/(a-d).
func (c *TwistedEdwards) ToMontgomery() (*Montgomery, func(*Point) (*Point, error), func(*Point) (*Point, error), error) {
	f := c.F
	amd := f.Sub(c.A, c.D)
	a, err := f.Div(f.Mul(math.TWO, f.Add(c.A, c.D)), amd)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := f.Div(math.FOUR, amd)
	if err != nil {
		return nil, nil, nil, err
	}
	mc, err := NewMontgomery(a, b, f)
	if err != nil {
		return nil, nil, nil, err
	}
	toM := func(p *Point) (*Point, error) {
		xp, err := f.Div(f.Add(math.ONE, p.Y), f.Sub(math.ONE, p.Y))
		if err != nil {
			return nil, err
		}
		yp, err := f.Div(xp, p.X)
		if err != nil {
			return nil, err
		}
		return NewPoint(f.Normalize(xp), f.Normalize(yp)), nil
	}
	toE := func(p *Point) (*Point, error) {
		if p.Y.Equals(math.ZERO) || f.Add(p.X, math.ONE).Equals(math.ZERO) {
			return nil, eccerr.New(eccerr.ErrInvalidParameters, "invalid Montgomery->twisted Edwards conversion")
		}
		x, err := f.Div(p.X, p.Y)
		if err != nil {
			return nil, err
		}
		y, err := f.Div(f.Sub(p.X, math.ONE), f.Add(p.X, math.ONE))
		if err != nil {
			return nil, err
		}
		return NewPoint(f.Normalize(x), f.Normalize(y)), nil
	}
	return mc, toM, toE, nil
}
