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

package elligator

import (
	"fmt"
	"testing"

	"github.com/bfix/goecc/rng"
	"github.com/bfix/goecc/scheme"
)

func TestCurve25519RandomToPointIsOnCurve(t *testing.T) {
	m, err := New(scheme.Curve25519.Montgomery)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ok := 0
	for i := 0; i < 20; i++ {
		r, err := rng.CryptoRand{}.Uniform(scheme.Curve25519.F.P)
		if err != nil {
			t.Fatalf("Uniform: %v", err)
		}
		p, err := m.RandomToPoint(r)
		if err != nil {
			// representative landed in the exceptional set; skip
			continue
		}
		if !scheme.Curve25519.Affine.PointOnCurve(p) {
			t.Errorf("RandomToPoint(%v) = %v not on curve", r, p)
		}
		ok++
	}
	if ok == 0 {
		t.Fatalf("all 20 draws hit the exceptional set -- suspicious")
	}
	fmt.Printf("RandomToPoint produced %d/20 valid curve points\n", ok)
}

func TestCurve25519PointToRandomToPointRoundTrip(t *testing.T) {
	m, err := New(scheme.Curve25519.Montgomery)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, pub, err := scheme.Curve25519.GenerateKeyPair(rng.CryptoRand{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	r, err := m.PointToRandom(pub)
	if err != nil {
		t.Fatalf("PointToRandom: %v", err)
	}
	back, err := m.RandomToPoint(r)
	if err != nil {
		t.Fatalf("RandomToPoint: %v", err)
	}
	if !back.Equals(pub) {
		t.Errorf("round trip: got %v, want %v", back, pub)
	}
}
