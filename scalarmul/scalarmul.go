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

// Package scalarmul implements scalar multiplication over the curve
// types in package curve, as the Montgomery-ladder R0/R1 schedule used
// uniformly across all four curve families. Dispatch is static: callers
// pass the concrete curve value and it is used through one of the small
// interfaces below, never through a shared base type.
package scalarmul

import (
	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/math"
)

// AffineOps is the method surface the affine ladder needs from a curve,
// plus PointOnCurve so callers working through this interface can still
// validate untrusted points (e.g. ecdh.SharedSecret on a peer key).
type AffineOps interface {
	Neutral() *curve.Point
	PointOnCurve(p *curve.Point) bool
	Invert(p *curve.Point) *curve.Point
	Add(p, q *curve.Point) *curve.Point
	Double(p *curve.Point) *curve.Point
}

// ProjectiveOps is the method surface the projective ladder needs.
type ProjectiveOps interface {
	NeutralProjective() *curve.ProjPoint
	AddProjective(p, q *curve.ProjPoint) *curve.ProjPoint
	DoubleProjective(p *curve.ProjPoint) *curve.ProjPoint
}

// Affine computes n*P using the MSB-first R0/R1 Montgomery ladder over
// affine coordinates. R1-R0 equals P at every step regardless of the bit
// schedule taken.
func Affine(n *math.Int, p *curve.Point, c AffineOps) *curve.Point {
	r0 := c.Neutral()
	r1 := p
	for i := n.BitLen() - 1; i >= 0; i-- {
		if n.Bit(i) == 1 {
			r0, r1 = c.Add(r0, r1), c.Double(r1)
		} else {
			r1, r0 = c.Add(r0, r1), c.Double(r0)
		}
	}
	return r0
}

// Projective computes n*P using the same ladder schedule over
// projective coordinates.
func Projective(n *math.Int, p *curve.ProjPoint, c ProjectiveOps) *curve.ProjPoint {
	r0 := c.NeutralProjective()
	r1 := p
	for i := n.BitLen() - 1; i >= 0; i-- {
		if n.Bit(i) == 1 {
			r0, r1 = c.AddProjective(r0, r1), c.DoubleProjective(r1)
		} else {
			r1, r0 = c.AddProjective(r0, r1), c.DoubleProjective(r0)
		}
	}
	return r0
}

// MontgomeryXZ computes n*P using the x-only ladder: R0 starts at the
// neutral element, R1 at P, and the invariant R1-R0=P is maintained with
// DiffAdd using the fixed base point as the known difference, so every
// step needs only one doubling and one differential addition.
func MontgomeryXZ(n *math.Int, p *curve.Point, c *curve.Montgomery) (*curve.Point, error) {
	base := c.AffineToXZ(p)
	r0 := c.NeutralXZ()
	r1 := c.AffineToXZ(p)
	for i := n.BitLen() - 1; i >= 0; i-- {
		if n.Bit(i) == 1 {
			r0, r1 = c.DiffAdd(r1, r0, base), c.DoubleXZ(r1)
		} else {
			r1, r0 = c.DiffAdd(r1, r0, base), c.DoubleXZ(r0)
		}
	}
	return c.XZToAffine(r0)
}
