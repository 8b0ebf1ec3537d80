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

package scheme

import (
	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/eccerr"
	"github.com/bfix/goecc/math"
)

// shortWeierstrassCodec builds the SEC1-style compressed point codec
// (sign-byte + big-endian x) used by the NIST prime curves, grounded on
// the teacher's pointAsBytes/pointFromBytes/coordAsBytes in the
// now-removed bitcoin/ecc package.
func shortWeierstrassCodec(c *curve.ShortWeierstrass, coordSize int) (
	func(*curve.Point) ([]byte, error),
	func([]byte) (*curve.Point, error),
) {
	encode := func(p *curve.Point) ([]byte, error) {
		if p.Inf {
			return []byte{0}, nil
		}
		xb, err := math.IntToBE(p.X, coordSize)
		if err != nil {
			return nil, err
		}
		prefix := byte(2)
		if p.Y.Bit(0) == 1 {
			prefix = 3
		}
		return append([]byte{prefix}, xb...), nil
	}
	decode := func(b []byte) (*curve.Point, error) {
		if len(b) == 1 && b[0] == 0 {
			return c.Neutral(), nil
		}
		if len(b) != coordSize+1 || (b[0] != 2 && b[0] != 3) {
			return nil, eccerr.New(eccerr.ErrDecodingError, "bad compressed point encoding")
		}
		x := math.BEToInt(b[1:])
		ys, err := c.GetY(x)
		if err != nil {
			return nil, err
		}
		wantOdd := b[0] == 3
		for _, cand := range ys {
			if (cand.Y.Bit(0) == 1) == wantOdd {
				return cand, nil
			}
		}
		return nil, eccerr.New(eccerr.ErrDecodingError, "no matching y for x=%v", x)
	}
	return encode, decode
}

// montgomeryXCodec builds the x-only little-endian codec Curve25519
// uses on the wire (RFC 7748 style); decoding a public key from just its
// x-coordinate is intentionally unsupported (spec.md §9 Open Question
// (a): no canonical way to recover y from x without a sign convention).
func montgomeryXCodec(coordSize int) (
	func(*curve.Point) ([]byte, error),
	func([]byte) (*curve.Point, error),
) {
	encode := func(p *curve.Point) ([]byte, error) {
		return math.IntToLE(p.X, coordSize)
	}
	decode := func(b []byte) (*curve.Point, error) {
		return nil, eccerr.New(eccerr.ErrUnsupported, "Curve25519 public keys cannot be decoded from x alone")
	}
	return encode, decode
}

// edwardsLikeCodec builds the compressed point codec shared by the
// Edwards and twisted Edwards schemes: y little-endian, with the top bit
// of the last byte carrying the sign of x, matching the teacher's
// crypto/ed25519 Point.Bytes/NewPointFromBytes convention generalized
// off the hard-coded b=256 Ed25519 case.
func edwardsLikeCodec(getX func(y *math.Int) ([]*curve.Point, error), coordSize int) (
	func(*curve.Point) ([]byte, error),
	func([]byte) (*curve.Point, error),
) {
	encode := func(p *curve.Point) ([]byte, error) {
		buf, err := math.IntToLE(p.Y, coordSize)
		if err != nil {
			return nil, err
		}
		if p.X.Bit(0) == 1 {
			buf[coordSize-1] |= 0x80
		}
		return buf, nil
	}
	decode := func(b []byte) (*curve.Point, error) {
		if len(b) != coordSize {
			return nil, eccerr.New(eccerr.ErrDecodingError, "point must be %d bytes, got %d", coordSize, len(b))
		}
		sign := b[coordSize-1]&0x80 != 0
		yb := make([]byte, coordSize)
		copy(yb, b)
		yb[coordSize-1] &= 0x7f
		y := math.LEToInt(yb)
		pts, err := getX(y)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			if (p.X.Bit(0) == 1) == sign {
				return p, nil
			}
		}
		return nil, eccerr.New(eccerr.ErrDecodingError, "no matching x for y=%v", y)
	}
	return encode, decode
}
