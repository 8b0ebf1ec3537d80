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

// Package ecdsa implements sign, verify, and nonce-reuse private-key
// recovery ("Break") over any of this toolkit's short Weierstrass
// schemes, generalized from original_source/ecdsa.py's hash-agnostic
// ecdsa_sign/ecdsa_verify functions.
package ecdsa

import (
	"hash"

	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/eccerr"
	"github.com/bfix/goecc/math"
	"github.com/bfix/goecc/scalarmul"
	"github.com/bfix/goecc/scheme"
)

// Signature is an (r, s) ECDSA signature.
type Signature struct {
	R, S *math.Int
}

// hashToZ truncates a message digest to the bit length of the group
// order, exactly as ecdsa_sign/ecdsa_verify's "z = e >> max(L_h-L_n, 0)".
func hashToZ(h hash.Hash, msg []byte, order *math.Int) *math.Int {
	h.Reset()
	h.Write(msg)
	sum := h.Sum(nil)
	e := math.NewIntFromBytes(sum)
	ln := math.CountBits(order)
	lh := len(sum) * 8
	if shift := lh - ln; shift > 0 {
		e = e.Rsh(uint(shift))
	}
	return e
}

// Sign produces a signature over msg using private key priv, drawing the
// nonce from src (use NewDetNonceSource for RFC 6979 determinism, or
// NewStdNonceSource(order, rng.CryptoRand{}) for classic random nonces).
func Sign(s *scheme.Scheme, priv *math.Int, msg []byte, h hash.Hash, src NonceSource) (*Signature, error) {
	z := hashToZ(h, msg, s.Order)
	for {
		k, err := src.Next()
		if err != nil {
			return nil, err
		}
		if k.Cmp(math.ZERO) == 0 || k.Cmp(s.Order) >= 0 {
			continue
		}
		r := scalarmul.Affine(k, s.BasePoint, s.Affine).X.Mod(s.Order)
		if r.Equals(math.ZERO) {
			continue
		}
		kInv, err := math.InverseOf(k, s.Order)
		if err != nil {
			continue
		}
		sig := kInv.Mul(z.Add(r.Mul(priv))).Mod(s.Order)
		if sig.Equals(math.ZERO) {
			continue
		}
		return &Signature{R: r, S: sig}, nil
	}
}

// Verify checks a signature over msg under public key pub.
//
// Non-standard: like the reference implementation, Verify rejects a
// public key equal to the base point or its inverse outright, before
// even checking range and curve membership. This is not part of FIPS
// 186-4's verification algorithm; it is preserved here because
// original_source/ecdsa.py does it (see spec.md §9 Open Question (c)).
func Verify(s *scheme.Scheme, pub *curve.Point, msg []byte, sig *Signature, h hash.Hash) error {
	if pub.Equals(s.BasePoint) || s.Affine.Invert(pub).Equals(s.BasePoint) {
		return eccerr.New(eccerr.ErrVerificationFailed, "public key is the base point or its inverse")
	}
	if !s.Affine.PointOnCurve(pub) {
		return eccerr.New(eccerr.ErrNotOnCurve, "public key not on curve")
	}
	if !scalarmul.Affine(s.Order, pub, s.Affine).Equals(s.Affine.Neutral()) {
		return eccerr.New(eccerr.ErrVerificationFailed, "public key not in the prime-order subgroup")
	}
	one := math.ONE
	nMinus1 := s.Order.Sub(math.ONE)
	if sig.R.Cmp(one) < 0 || sig.R.Cmp(nMinus1) > 0 {
		return eccerr.New(eccerr.ErrOutOfRange, "signature r out of range")
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(nMinus1) > 0 {
		return eccerr.New(eccerr.ErrOutOfRange, "signature s out of range")
	}
	z := hashToZ(h, msg, s.Order)
	w, err := math.InverseOf(sig.S, s.Order)
	if err != nil {
		return eccerr.New(eccerr.ErrNotInvertible, "s not invertible mod n")
	}
	u1 := z.Mul(w).Mod(s.Order)
	u2 := sig.R.Mul(w).Mod(s.Order)
	p1 := scalarmul.Affine(u1, s.BasePoint, s.Affine)
	p2 := scalarmul.Affine(u2, pub, s.Affine)
	sum := s.Affine.Add(p1, p2)
	if sum.Inf {
		return eccerr.New(eccerr.ErrVerificationFailed, "u1*G+u2*Q is the point at infinity")
	}
	if !sig.R.Mod(s.Order).Equals(sum.X.Mod(s.Order)) {
		return eccerr.New(eccerr.ErrVerificationFailed, "signature does not verify")
	}
	return nil
}

// Break recovers the private key from two distinct messages signed with
// the same nonce (hence the same r) -- the classic ECDSA nonce-reuse
// attack. Neither the teacher nor original_source/ecdsa.py implements
// this; it follows directly from spec.md §4.6's formula:
//
//	k = (z1-z2) / (s1-s2) mod n
//	d = (s1*k - z1) / r mod n
func Break(s *scheme.Scheme, msg1, msg2 []byte, sig1, sig2 *Signature, h hash.Hash) (*math.Int, error) {
	if !sig1.R.Equals(sig2.R) {
		return nil, eccerr.New(eccerr.ErrInvalidParameters, "signatures do not share the same r; not a nonce-reuse pair")
	}
	n := s.Order
	z1 := hashToZ(h, msg1, n)
	z2 := hashToZ(h, msg2, n)
	dS := sig1.S.Sub(sig2.S).Mod(n)
	dZ := z1.Sub(z2).Mod(n)
	dSInv, err := math.InverseOf(dS, n)
	if err != nil {
		return nil, eccerr.New(eccerr.ErrNotInvertible, "s1-s2 not invertible mod n (signatures identical?)")
	}
	k := dZ.Mul(dSInv).Mod(n)
	rInv, err := math.InverseOf(sig1.R, n)
	if err != nil {
		return nil, eccerr.New(eccerr.ErrNotInvertible, "r not invertible mod n")
	}
	priv := sig1.S.Mul(k).Sub(z1).Mul(rInv).Mod(n)
	return priv, nil
}
