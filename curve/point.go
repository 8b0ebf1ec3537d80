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

// Package curve implements the four elliptic-curve families this
// toolkit supports -- short Weierstrass, Montgomery, Edwards and
// twisted Edwards -- each with affine and projective point arithmetic,
// plus the birational maps between them. Dispatch over the family is
// static: each family is its own Go type and there is no common
// all-encompassing interface, matching the "sum type, not an
// inheritance hierarchy" redesign the toolkit is built around.
package curve

import "github.com/bfix/goecc/math"

// Point is an affine curve point (x, y). On short Weierstrass curves the
// neutral element is the abstract point at infinity and is represented
// by Inf=true with X, Y left nil; on the Edwards families the neutral
// element is the ordinary affine point (0, c) and Inf is always false.
type Point struct {
	X, Y *math.Int
	Inf  bool
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y *math.Int) *Point {
	return &Point{X: x, Y: y}
}

// Equals reports whether two affine points are the same point.
func (p *Point) Equals(q *Point) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return p.X.Equals(q.X) && p.Y.Equals(q.Y)
}

// String returns a human-readable representation of a point.
func (p *Point) String() string {
	if p.Inf {
		return "(inf)"
	}
	return "(" + p.X.String() + "," + p.Y.String() + ")"
}

// ProjPoint is a point in projective coordinates (X, Y, Z) with the
// affine point recovered as (X/Z, Y/Z), for short Weierstrass and the
// Edwards families alike.
type ProjPoint struct {
	X, Y, Z *math.Int
}

// XZPoint is a Montgomery x-only point (X, Z) with the affine
// x-coordinate recovered as X/Z; the y-coordinate is discarded, which is
// exactly what the Montgomery ladder needs.
type XZPoint struct {
	X, Z *math.Int
}
