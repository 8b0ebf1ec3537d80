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
	"github.com/bfix/goecc/internal/elog"
	"github.com/bfix/goecc/math"
)

// Edwards is the curve x^2 + y^2 = 1 + dx^2y^2 over F_p (c is fixed at 1),
// valid when d(1-d) != 0. SafeCurves additionally requires d to not be a
// square for the curve to be complete; NewEdwards only warns on that, it
// does not reject the curve.
type Edwards struct {
	D *math.Int
	F *math.Field
}

// NewEdwards validates d(1-d) != 0 and returns the curve, logging a
// warning through internal/elog if d is a square mod p (incomplete
// curve: some chords have no well-defined sum).
func NewEdwards(d *math.Int, f *math.Field) (*Edwards, error) {
	if f.Mul(d, f.Sub(math.ONE, d)).Equals(math.ZERO) {
		return nil, eccerr.New(eccerr.ErrInvalidParameters, "invalid Edwards params d=%v", d)
	}
	if roots, err := math.SqrtModP(d, f.P); err == nil && len(roots) > 0 {
		elog.Printf(elog.WARN, "Edwards curve with d=%v is not complete (d is a square mod p)", d)
	}
	return &Edwards{D: d, F: f}, nil
}

// Neutral returns the affine neutral point (0, 1).
func (c *Edwards) Neutral() *Point {
	return NewPoint(math.ZERO, math.ONE)
}

// PointOnCurve checks x^2+y^2 = 1+dx^2y^2.
func (c *Edwards) PointOnCurve(p *Point) bool {
	f := c.F
	xx := f.Mul(p.X, p.X)
	yy := f.Mul(p.Y, p.Y)
	lhs := f.Add(xx, yy)
	rhs := f.Add(math.ONE, f.Mul(c.D, f.Mul(xx, yy)))
	return f.Normalize(f.Sub(lhs, rhs)).Equals(math.ZERO)
}

// Invert returns -P = (-x, y).
func (c *Edwards) Invert(p *Point) *Point {
	return NewPoint(c.F.Sub(math.ZERO, p.X), p.Y)
}

// GetX recovers the (0, 1 or 2) x-coordinates for a given y, filtering
// spurious roots from pairing every candidate numerator with every
// candidate denominator (HACK from the reference source: picking the
// right square root directly instead of brute forcing it). The root of
// the whole quotient (y^2-1)/(dy^2-1) is one more candidate, for the
// case where numerator and denominator are both non-squares.
func (c *Edwards) GetX(y *math.Int) ([]*Point, error) {
	f := c.F
	yy := f.Mul(y, y)
	top1, err1 := math.SqrtModP(f.Normalize(f.Sub(yy, math.ONE)), f.P)
	top2, err2 := math.SqrtModP(f.Normalize(f.Sub(math.ZERO, f.Sub(yy, math.ONE))), f.P)
	bottom1, err3 := math.SqrtModP(f.Normalize(f.Sub(f.Mul(c.D, yy), math.ONE)), f.P)
	bottom2, err4 := math.SqrtModP(f.Normalize(f.Sub(math.ZERO, f.Sub(f.Mul(c.D, yy), math.ONE))), f.P)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil, eccerr.New(eccerr.ErrNotOnCurve, "no x for y=%v", y)
	}
	top := append(top1, top2...)
	bottom := append(bottom1, bottom2...)
	if q, err := f.Div(f.Sub(yy, math.ONE), f.Sub(f.Mul(c.D, yy), math.ONE)); err == nil {
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
			np := NewPoint(f.Sub(math.ZERO, x), y)
			np.X = f.Normalize(np.X)
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

// GetY is unsupported: x and y play symmetric roles in the curve
// equation and this toolkit only needs to recover x from y (see GetX),
// matching what the reference source implements.
func (c *Edwards) GetY(x *math.Int) ([]*Point, error) {
	return nil, eccerr.New(eccerr.ErrUnsupported, "get_y not supported on Edwards curves")
}

// Add computes P+Q with the Edwards addition law.
func (c *Edwards) Add(p, q *Point) *Point {
	f := c.F
	cross := f.Mul(c.D, f.Mul(f.Mul(p.X, q.X), f.Mul(p.Y, q.Y)))
	xnum := f.Add(f.Mul(p.X, q.Y), f.Mul(p.Y, q.X))
	x3, _ := f.Div(xnum, f.Add(math.ONE, cross))
	ynum := f.Sub(f.Mul(p.Y, q.Y), f.Mul(p.X, q.X))
	y3, _ := f.Div(ynum, f.Sub(math.ONE, cross))
	return NewPoint(f.Normalize(x3), f.Normalize(y3))
}

// Double computes 2P (the Edwards law is complete enough to double via
// Add(P, P), matching the reference source).
func (c *Edwards) Double(p *Point) *Point {
	return c.Add(p, p)
}

// NeutralProjective returns the projective neutral point (0,1,1).
func (c *Edwards) NeutralProjective() *ProjPoint {
	return &ProjPoint{X: math.ZERO, Y: math.ONE, Z: math.ONE}
}

// AffineToProjective lifts an affine point to projective coordinates.
func (c *Edwards) AffineToProjective(p *Point) *ProjPoint {
	return &ProjPoint{X: p.X, Y: p.Y, Z: math.ONE}
}

// ProjectiveToAffine recovers the affine point from (X,Y,Z).
func (c *Edwards) ProjectiveToAffine(p *ProjPoint) *Point {
	x, _ := c.F.Div(p.X, p.Z)
	y, _ := c.F.Div(p.Y, p.Z)
	return NewPoint(x, y)
}

// AddProjective adds two projective points using "add-2007-bl-2".
func (c *Edwards) AddProjective(p, q *ProjPoint) *ProjPoint {
	f := c.F
	r3 := f.Mul(p.Z, q.Z)
	r7 := f.Add(p.X, p.Y)
	r8 := f.Add(q.X, q.Y)
	r1 := f.Mul(p.X, q.X)
	r2 := f.Mul(p.Y, q.Y)
	r7b := f.Sub(f.Sub(f.Mul(r7, r8), r1), r2)
	r7c := f.Mul(r7b, r3)
	r8b := f.Mul(c.D, f.Mul(r1, r2))
	r2b := f.Mul(f.Sub(r2, r1), r3)
	r3b := f.Mul(r3, r3)
	r1b := f.Sub(r3b, r8b)
	r3c := f.Add(r3b, r8b)
	y3 := f.Mul(r2b, r3c)
	z3 := f.Mul(r3c, r1b)
	x3 := f.Mul(r1b, r7c)
	return &ProjPoint{X: f.Normalize(x3), Y: f.Normalize(y3), Z: f.Normalize(z3)}
}

// DoubleProjective doubles a projective point using "dbl-2007-bl-2".
func (c *Edwards) DoubleProjective(p *ProjPoint) *ProjPoint {
	f := c.F
	r1 := p.X
	r2 := p.Y
	r3 := p.Z
	r4 := f.Add(r1, r2)
	// c=1, so the reference source's self.c*r3 term is just r3.
	r1b := f.Mul(r1, r1)
	r2b := f.Mul(r2, r2)
	r3b := f.Mul(r3, r3)
	r4b := f.Mul(r4, r4)
	r3c := f.Mul(math.TWO, r3b)
	r5 := f.Add(r1b, r2b)
	r2c := f.Sub(r1b, r2b)
	r4c := f.Sub(r4b, r5)
	r3d := f.Sub(r5, r3c)
	x3 := f.Mul(r3d, r4c)
	z3 := f.Mul(r3d, r5)
	y3 := f.Mul(r2c, r5)
	return &ProjPoint{X: f.Normalize(x3), Y: f.Normalize(y3), Z: f.Normalize(z3)}
}

// ToMontgomery returns the isomorphic Montgomery curve and the
// forward/inverse point maps, via x=u/v, y=(u-1)/(u+1).
func (c *Edwards) ToMontgomery() (*Montgomery, func(*Point) (*Point, error), func(*Point) (*Point, error), error) {
	f := c.F
	onemd := f.Sub(math.ONE, c.D)
	a, err := f.Div(f.Mul(math.TWO, f.Add(math.ONE, c.D)), onemd)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := f.Div(math.FOUR, onemd)
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
			return nil, eccerr.New(eccerr.ErrInvalidParameters, "invalid Montgomery->Edwards conversion")
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
