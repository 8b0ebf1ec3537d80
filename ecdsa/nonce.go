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

package ecdsa

import (
	"bytes"
	"crypto/hmac"
	"hash"

	"github.com/bfix/goecc/math"
	"github.com/bfix/goecc/rng"
)

// NonceSource produces the per-signature blinding factor 'k'. Sign loops
// over Next until it finds a k that yields a non-degenerate signature.
type NonceSource interface {
	Next() (*math.Int, error)
}

// nonceStd draws k uniformly from [1, n-1], the classic (non-deterministic)
// choice, adapted from the teacher's kGenStd.
type nonceStd struct {
	n   *math.Int
	src rng.ScalarSource
}

// NewStdNonceSource returns a uniform-random nonce source for order n.
func NewStdNonceSource(n *math.Int, src rng.ScalarSource) NonceSource {
	return &nonceStd{n: n, src: src}
}

func (g *nonceStd) Next() (*math.Int, error) {
	r, err := g.src.Uniform(g.n.Sub(math.ONE))
	if err != nil {
		return nil, err
	}
	return r.Add(math.ONE), nil
}

// nonceDet is a RFC 6979 HMAC-DRBG generator, adapted from the teacher's
// kGenDet but parameterized over the hash constructor instead of being
// hard-wired to SHA-512.
type nonceDet struct {
	newHash func() hash.Hash
	v, k    []byte
	n       *math.Int
}

var (
	tagZero = []byte{0x00}
	tagOne  = []byte{0x01}
)

// NewDetNonceSource returns a deterministic RFC 6979 nonce source for
// private key x, group order n, and the message hash h (its own hash
// function must match newHash).
func NewDetNonceSource(newHash func() hash.Hash, x, n *math.Int, h []byte) NonceSource {
	g := &nonceDet{newHash: newHash, n: n}
	hashSize := len(newHash().Sum(nil))

	nBytes := (n.BitLen() + 7) / 8
	data := make([]byte, 0, 2*nBytes)
	xb, _ := math.IntToBE(x, nBytes)
	data = append(data, xb...)
	h1i := boundedInt(h, n)
	hb, _ := math.IntToBE(h1i, nBytes)
	data = append(data, hb...)

	g.v = bytes.Repeat(tagOne, hashSize)
	g.k = bytes.Repeat(tagZero, hashSize)

	mac := hmac.New(newHash, g.k)
	mac.Write(g.v)
	mac.Write(tagZero)
	mac.Write(data)
	g.k = mac.Sum(nil)

	mac = hmac.New(newHash, g.k)
	mac.Write(g.v)
	g.v = mac.Sum(nil)

	mac.Reset()
	mac.Write(g.v)
	mac.Write(tagOne)
	mac.Write(data)
	g.k = mac.Sum(nil)

	mac = hmac.New(newHash, g.k)
	mac.Write(g.v)
	g.v = mac.Sum(nil)

	return g
}

func (g *nonceDet) Next() (*math.Int, error) {
	mac := hmac.New(g.newHash, g.k)
	mac.Write(g.v)
	g.v = mac.Sum(nil)

	k := boundedInt(g.v, g.n)

	mac.Reset()
	mac.Write(g.v)
	mac.Write(tagZero)
	g.k = mac.Sum(nil)

	mac = hmac.New(g.newHash, g.k)
	mac.Write(g.v)
	g.v = mac.Sum(nil)

	return k, nil
}

// boundedInt truncates data to the bit length of n, matching the
// teacher's getBounded.
func boundedInt(data []byte, n *math.Int) *math.Int {
	z := math.NewIntFromBytes(data)
	shift := len(data)*8 - n.BitLen()
	if shift > 0 {
		z = z.Rsh(uint(shift))
	}
	return z
}
