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

// Package rng supplies the random scalars this toolkit needs (private
// keys, ECDSA nonces). The reference source samples with Python's
// non-cryptographic 'random' module and says so in a comment
// ("# XXX: not cryptographically secure"); this package keeps both
// options explicit instead of silently picking one.
package rng

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"

	gmath "github.com/bfix/goecc/math"
)

// ScalarSource returns a uniform random integer in [0, bound).
type ScalarSource interface {
	Uniform(bound *gmath.Int) (*gmath.Int, error)
}

// CryptoRand draws from crypto/rand; use this for production key and
// nonce generation.
type CryptoRand struct{}

// Uniform returns a uniform random integer in [0, bound) via crypto/rand.
func (CryptoRand) Uniform(bound *gmath.Int) (*gmath.Int, error) {
	b := new(big.Int).SetBytes(bound.Bytes())
	n, err := rand.Int(rand.Reader, b)
	if err != nil {
		return nil, err
	}
	return gmath.NewIntFromBytes(n.Bytes()), nil
}

// Insecure draws from math/rand, matching the reference source's
// util.randint ("# XXX: not cryptographically secure"). Not suitable
// for key material; it exists for tests and the toolkit's teaching
// examples. Each call reseeds from crypto/rand, so draws are not
// reproducible across runs.
type Insecure struct{}

// Uniform returns a uniform random integer in [0, bound) via math/rand.
func (Insecure) Uniform(bound *gmath.Int) (*gmath.Int, error) {
	b := new(big.Int).SetBytes(bound.Bytes())
	n := new(big.Int).Rand(mathrand.New(mathrand.NewSource(entropy())), b)
	return gmath.NewIntFromBytes(n.Bytes()), nil
}

// entropy seeds the insecure source from crypto/rand so test runs don't
// all draw the same sequence, without pretending the result is
// cryptographically strong.
func entropy() int64 {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	var v int64
	for _, b := range buf {
		v = v<<8 | int64(b)
	}
	if v < 0 {
		v = -v
	}
	return v
}

// Default is the scalar source used when a caller does not supply one.
var Default ScalarSource = CryptoRand{}
