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

// Package elligator implements Elligator-2 point-to-bitstring encoding,
// grounded on original_source/elligator.py's Elligator2 class. It works
// on any Montgomery curve y²=x³+Ax²+Bx with B=1 and AB(A²-4)≠0.
package elligator

import (
	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/eccerr"
	"github.com/bfix/goecc/math"
)

// Map holds the fixed non-square u used by a curve's Elligator-2 maps.
type Map struct {
	c *curve.Montgomery
	u *math.Int
}

// New selects u (−1 if p≡3 mod 4, 2 if p≡5 mod 8) for the given
// Montgomery curve, rejecting curves this construction doesn't cover.
func New(c *curve.Montgomery) (*Map, error) {
	if c.B.Cmp(math.ONE) != 0 {
		return nil, eccerr.New(eccerr.ErrInvalidParameters, "Elligator-2 requires a Montgomery curve with B=1")
	}
	p := c.F.P
	var u *math.Int
	switch {
	case p.Mod(math.NewInt(4)).Equals(math.NewInt(3)):
		u = math.NewInt(-1)
	case p.Mod(math.NewInt(8)).Equals(math.NewInt(5)):
		u = math.NewInt(2)
	default:
		return nil, eccerr.New(eccerr.ErrUnsupported, "field characteristic admits no fixed non-square for Elligator-2")
	}
	return &Map{c: c, u: u}, nil
}

// PointToRandom maps an affine point on the curve to its representative
// r, choosing the branch by whether y is "small" (≤ (p-1)/2).
func (m *Map) PointToRandom(p *curve.Point) (*math.Int, error) {
	f := m.c.F
	half := f.P.Sub(math.ONE).Div(math.NewInt(2))
	var arg *math.Int
	if p.Y.Cmp(half) <= 0 {
		denom := f.Mul(p.X.Add(m.c.A), m.u)
		v, err := f.Div(p.X.Neg(), denom)
		if err != nil {
			return nil, err
		}
		arg = v
	} else {
		denom := f.Mul(p.X, m.u)
		v, err := f.Div(p.X.Add(m.c.A).Neg(), denom)
		if err != nil {
			return nil, err
		}
		arg = v
	}
	roots, err := math.SqrtModP(arg, f.P)
	if err != nil || len(roots) == 0 {
		return nil, eccerr.New(eccerr.ErrNotInvertible, "representative has no square root: %v", err)
	}
	return roots[0], nil
}

// RandomToPoint maps a representative r back to an affine point.
func (m *Map) RandomToPoint(r *math.Int) (*curve.Point, error) {
	f := m.c.F
	one := math.ONE
	denom := one.Add(f.Mul(m.u, f.Mul(r, r)))
	v, err := f.Div(m.c.A.Neg(), denom)
	if err != nil {
		return nil, err
	}
	rhs := f.Add(f.Add(f.Mul(f.Mul(v, v), v), f.Mul(m.c.A, f.Mul(v, v))), v)
	eps := math.NewInt(int64(rhs.Legendre(f.P)))
	two := math.NewInt(2)
	x := f.Sub(f.Mul(eps, v), mustDiv(f, f.Mul(one.Sub(eps), m.c.A), two))
	radicand := f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(m.c.A, f.Mul(x, x))), x)
	roots, err := math.SqrtModP(radicand, f.P)
	if err != nil || len(roots) == 0 {
		return nil, eccerr.New(eccerr.ErrNotInvertible, "candidate x has no square root: %v", err)
	}
	// Use the root in [0, (p-1)/2], the one PointToRandom's y branch inverts.
	root := roots[0]
	if len(roots) > 1 && roots[1].Cmp(root) < 0 {
		root = roots[1]
	}
	y := f.Mul(eps.Neg(), root)
	return &curve.Point{X: f.Normalize(x), Y: f.Normalize(y)}, nil
}

func mustDiv(f *math.Field, a, b *math.Int) *math.Int {
	v, err := f.Div(a, b)
	if err != nil {
		// b=2 is invertible in every odd-characteristic field this
		// package operates over.
		panic(err)
	}
	return v
}
