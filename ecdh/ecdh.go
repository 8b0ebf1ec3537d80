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

// Package ecdh implements Diffie-Hellman key agreement over any of this
// toolkit's curve schemes.
package ecdh

import (
	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/eccerr"
	"github.com/bfix/goecc/math"
	"github.com/bfix/goecc/scalarmul"
	"github.com/bfix/goecc/scheme"
)

// SharedSecret derives the shared point myPrivate*otherPublic, grounded
// directly on the one-line reference implementation (curve.mul(my_private,
// other_public, curve_obj.curve)).
func SharedSecret(s *scheme.Scheme, myPrivate *math.Int, otherPublic *curve.Point) (*curve.Point, error) {
	if !onCurve(s, otherPublic) {
		return nil, eccerr.New(eccerr.ErrNotOnCurve, "peer public key is not on the scheme's curve")
	}
	if s.Montgomery != nil {
		return scalarMulMontgomery(s, myPrivate, otherPublic)
	}
	return affineMul(s, myPrivate, otherPublic), nil
}

// SharedX derives only the shared x-coordinate, the form Curve25519's
// own ECC_Curve25519.ecdh method returns (it discards y since X25519
// never round-trips a full point).
func SharedX(s *scheme.Scheme, myPrivate *math.Int, otherPublic *curve.Point) (*math.Int, error) {
	p, err := SharedSecret(s, myPrivate, otherPublic)
	if err != nil {
		return nil, err
	}
	return p.X, nil
}

func onCurve(s *scheme.Scheme, p *curve.Point) bool {
	return s.Affine.PointOnCurve(p)
}

func affineMul(s *scheme.Scheme, priv *math.Int, p *curve.Point) *curve.Point {
	return scalarmul.Affine(priv, p, s.Affine)
}

func scalarMulMontgomery(s *scheme.Scheme, priv *math.Int, p *curve.Point) (*curve.Point, error) {
	return scalarmul.MontgomeryXZ(priv, p, s.Montgomery)
}
