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

// Package scheme bundles a curve, its order, base point and key/point
// codecs into one named parameter set, the way original_source's
// asymmetric.py bundles ECCBase subclasses. Six schemes are predefined:
// Curve25519, Ed25519, NISTP256, NISTP384, Curve41417 and Ed41417.
package scheme

import (
	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/eccerr"
	"github.com/bfix/goecc/math"
	"github.com/bfix/goecc/rng"
	"github.com/bfix/goecc/scalarmul"
)

// Scheme bundles a curve family instance with the parameters and codecs
// needed to generate keys and exchange points over the wire.
type Scheme struct {
	Name       string
	F          *math.Field
	Affine     scalarmul.AffineOps // curve, used through its shared affine method surface
	Montgomery *curve.Montgomery   // non-nil only for Curve25519, which ladders in x-only form
	Order      *math.Int
	BasePoint  *curve.Point
	PrivSize   int  // encoded private-key length in bytes
	PubSize    int  // encoded public-key length in bytes
	LittleEnd  bool // private/public key encoding endianness

	// cofactorBits is non-zero for schemes whose private keys are drawn
	// as 2^cofactorBits + 8*random(0, 2^(cofactorBits-3)-1) instead of
	// uniformly from [1, Order-1] (Curve25519, Curve41417's cofactor-8
	// clamping).
	cofactorBits int

	encodePub func(p *curve.Point) ([]byte, error)
	decodePub func(b []byte) (*curve.Point, error)
}

// GeneratePrivateKey draws a private scalar from src, using cofactor
// clamping for the Montgomery/Edwards schemes that need it and uniform
// sampling in [1, Order-1] otherwise.
func (s *Scheme) GeneratePrivateKey(src rng.ScalarSource) (*math.Int, error) {
	if s.cofactorBits > 0 {
		hi := math.TWO.Pow(s.cofactorBits)
		bound := math.TWO.Pow(s.cofactorBits - 3)
		r, err := src.Uniform(bound)
		if err != nil {
			return nil, err
		}
		return hi.Add(math.EIGHT.Mul(r)), nil
	}
	bound := s.Order.Sub(math.ONE)
	r, err := src.Uniform(bound)
	if err != nil {
		return nil, err
	}
	return r.Add(math.ONE), nil
}

// DerivePublicKey computes private*BasePoint.
func (s *Scheme) DerivePublicKey(priv *math.Int) (*curve.Point, error) {
	if s.Montgomery != nil {
		return scalarmul.MontgomeryXZ(priv, s.BasePoint, s.Montgomery)
	}
	return scalarmul.Affine(priv, s.BasePoint, s.Affine), nil
}

// GenerateKeyPair draws a private key and derives its public key.
func (s *Scheme) GenerateKeyPair(src rng.ScalarSource) (*math.Int, *curve.Point, error) {
	priv, err := s.GeneratePrivateKey(src)
	if err != nil {
		return nil, nil, err
	}
	pub, err := s.DerivePublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// EncodePrivate renders a private scalar as a fixed-width byte string.
func (s *Scheme) EncodePrivate(priv *math.Int) ([]byte, error) {
	if s.LittleEnd {
		return math.IntToLE(priv, s.PrivSize)
	}
	return math.IntToBE(priv, s.PrivSize)
}

// DecodePrivate parses a fixed-width byte string into a private scalar.
func (s *Scheme) DecodePrivate(b []byte) (*math.Int, error) {
	if len(b) != s.PrivSize {
		return nil, eccerr.New(eccerr.ErrDecodingError, "private key must be %d bytes, got %d", s.PrivSize, len(b))
	}
	if s.LittleEnd {
		return math.LEToInt(b), nil
	}
	return math.BEToInt(b), nil
}

// EncodePublic renders a public point in this scheme's wire format.
func (s *Scheme) EncodePublic(p *curve.Point) ([]byte, error) {
	return s.encodePub(p)
}

// DecodePublic parses a public point from this scheme's wire format.
func (s *Scheme) DecodePublic(b []byte) (*curve.Point, error) {
	return s.decodePub(b)
}
