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

// Package eddsa implements the Ed25519 and Ed41417 signature schemes:
// seed-derived key schedule, sign, and verify, generalized from
// original_source/eddsa.py's Ed25519 base class and its Ed41417
// subclass instead of being hard-wired to b=256/SHA-512-first-half-only,
// as the teacher's crypto/ed25519 package is.
package eddsa

import (
	"crypto/sha512"

	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/eccerr"
	"github.com/bfix/goecc/math"
	"github.com/bfix/goecc/scalarmul"
	"github.com/bfix/goecc/scheme"
)

// Scheme bundles a curve scheme with the bit-size parameter b that
// governs seed, scalar, and encoded-point widths.
type Scheme struct {
	S *scheme.Scheme
	B int
}

// Ed25519 matches original_source/eddsa.py's Ed25519 (b=256, clamp the
// first 32 bytes of SHA-512(seed), nonce buffer is the second half).
var Ed25519 = &Scheme{S: scheme.Ed25519, B: 256}

// Ed41417 matches original_source/eddsa.py's Ed41417 subclass (b=416,
// clamp the first 52 bytes of SHA-512(seed); the nonce buffer is NOT the
// second half of that hash -- it is SHA-512("seed"+sk)[:52], per
// generate_random_k_from_seed).
var Ed41417 = &Scheme{S: scheme.Ed41417, B: 416}

// hint is original_source's Hint: le2int(SHA-512(m)), not be2int -- the
// reference source is explicit that integers here are little-endian.
func hint(data ...[]byte) *math.Int {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	return math.LEToInt(h.Sum(nil))
}

// clamp applies the RFC 8032 bit-twiddling: clear the low 3 bits of the
// first byte, clear the top bit and set bit 6 of the last byte.
func clamp(buf []byte) {
	buf[0] &= 248
	buf[len(buf)-1] &= 127
	buf[len(buf)-1] |= 64
}

// nonceBuffer derives the per-key nonce-generation buffer ("k" in
// spec.md §4.7's Sign). For Ed25519 it's the second half of
// SHA-512(seed); Ed41417's seed is too short to source 52 extra bytes
// from the same hash, so original_source hashes a distinct string for it.
func (e *Scheme) nonceBuffer(seed []byte) []byte {
	if e.B == 256 {
		h := sha512.Sum512(seed)
		return h[32:]
	}
	h := sha512.Sum512(append([]byte("seed"), seed...))
	return h[:52]
}

// KeyPairFromSeed derives the private scalar, public point, and nonce
// buffer from a seed (32 bytes for Ed25519, 64 for Ed41417, matching the
// teacher's and original_source's seed conventions).
func (e *Scheme) KeyPairFromSeed(seed []byte) (priv *math.Int, pub *curve.Point, nonce []byte, err error) {
	h := sha512.Sum512(seed)
	n := e.B / 8
	buf := append([]byte(nil), h[:n]...)
	clamp(buf)
	priv = math.LEToInt(buf)
	pub = scalarmul.Affine(priv, e.S.BasePoint, e.S.Affine)
	nonce = e.nonceBuffer(seed)
	return priv, pub, nonce, nil
}

// Sign produces a b/4-byte signature (R || S) over msg.
func (e *Scheme) Sign(msg []byte, priv *math.Int, pub *curve.Point, nonce []byte) ([]byte, error) {
	r := hint(nonce, msg)
	R := scalarmul.Affine(r, e.S.BasePoint, e.S.Affine)
	Rb, err := e.S.EncodePublic(R)
	if err != nil {
		return nil, err
	}
	Ab, err := e.S.EncodePublic(pub)
	if err != nil {
		return nil, err
	}
	h := hint(Rb, Ab, msg)
	s := r.Add(h.Mul(priv)).Mod(e.S.Order)
	Sb, err := math.IntToLE(s, e.B/8)
	if err != nil {
		return nil, err
	}
	return append(Rb, Sb...), nil
}

// Verify checks a signature over msg under the encoded public key pubEnc.
func (e *Scheme) Verify(msg, sig, pubEnc []byte) error {
	if len(sig) != e.B/4 {
		return eccerr.New(eccerr.ErrDecodingError, "signature length is wrong")
	}
	if len(pubEnc) != e.B/8 {
		return eccerr.New(eccerr.ErrDecodingError, "public-key length is wrong")
	}
	Rb := sig[:e.B/8]
	Sb := sig[e.B/8 : e.B/4]
	R, err := e.S.DecodePublic(Rb)
	if err != nil {
		return err
	}
	A, err := e.S.DecodePublic(pubEnc)
	if err != nil {
		return err
	}
	s := math.LEToInt(Sb)
	h := hint(Rb, pubEnc, msg)
	lhs := scalarmul.Affine(s, e.S.BasePoint, e.S.Affine)
	rhs := e.S.Affine.Add(R, scalarmul.Affine(h, A, e.S.Affine))
	if !lhs.Equals(rhs) {
		return eccerr.New(eccerr.ErrVerificationFailed, "signature does not pass verification")
	}
	return nil
}
