package math

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2020 Bernd Fix
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

import (
	"testing"
)

func TestIntBytes(t *testing.T) {
	c := TWO.Pow(256)
	for i := 0; i < 1000; i++ {
		a := NewIntRnd(c)
		b := NewIntFromBytes(a.Bytes())
		if !a.Equals(b) {
			t.Fatal("Bytes()/NewIntFromBytes() failed")
		}
	}
}

func TestExtendedEuclid(t *testing.T) {
	var (
		a, b *Int
		m    = NewInt(1000000000000000000)
	)
	test := func() {
		r := a.ExtendedEuclid(b)
		s := r[0].Mul(a).Add(r[1].Mul(b))
		if !s.Equals(ONE) {
			t.Fail()
		}
	}
	for i := 0; i < 10; {
		a = NewIntRnd(m).Add(ONE)
		b = NewIntRnd(a).Add(ONE)
		if !a.GCD(b).Equals(ONE) {
			continue
		}
		test()
		a, b = b, a
		test()
		i++
	}
}

func TestSqrt(t *testing.T) {
	p := NewIntRndPrimeBits(10)
	count := 0
	for i := 0; i < 1000; i++ {
		g := NewIntRnd(p)
		if g.Legendre(p) == 1 {
			count++
			roots, err := SqrtModP(g, p)
			if err != nil {
				t.Fatal(err)
			}
			if len(roots) == 0 {
				t.Fatalf("expected roots for quadratic residue %v mod %v", g, p)
			}
			for _, h := range roots {
				gg := h.ModPow(TWO, p)
				if !gg.Equals(g) {
					t.Fatalf("result error: %v != %v", g, gg)
				}
			}
		}
	}
}

// TestSqrtBranches exercises all three branch selections named by the
// square-root component: p ≡ 3 (mod 4), p ≡ 5 (mod 8), and the general
// Tonelli-Shanks fallback.
func TestSqrtBranches(t *testing.T) {
	cases := []struct {
		n, p, want int64
	}{
		{4, 7919, 2}, // p ≡ 3 (mod 4): 7919 % 4 == 3
		{4, 7901, 2}, // p ≡ 5 (mod 8): 7901 % 8 == 5
		{4, 7873, 2}, // general Tonelli-Shanks: 7873 % 8 == 1
	}
	for _, c := range cases {
		p := NewInt(c.p)
		roots, err := SqrtModP(NewInt(c.n), p)
		if err != nil {
			t.Fatal(err)
		}
		found := false
		want := NewInt(c.want)
		for _, r := range roots {
			if r.Equals(want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("sqrt_mod_p(%d, %d): expected %d among %v", c.n, c.p, c.want, roots)
		}
	}
}

func TestSqrtNonResidue(t *testing.T) {
	p := NewInt(7919)
	// 7 is a non-residue mod 7919 (7919 % 8 == 7, legendre check below)
	n := NewInt(7)
	if n.Legendre(p) != -1 {
		t.Skip("fixture is not a non-residue, adjust constant")
	}
	roots, err := SqrtModP(n, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 0 {
		t.Fatalf("expected no roots for a non-residue, got %v", roots)
	}
}

func TestInverseOf(t *testing.T) {
	p := NewIntRndPrimeBits(64)
	for i := 0; i < 100; i++ {
		n := NewIntRnd(p).Add(ONE)
		inv, err := InverseOf(n, p)
		if err != nil {
			t.Fatal(err)
		}
		if !n.Mul(inv).Mod(p).Equals(ONE) {
			t.Fatalf("inverse_of(%v, %v) * n != 1 mod p", n, p)
		}
	}
}

func TestCountBits(t *testing.T) {
	if CountBits(ZERO) != 0 {
		t.Fatal("count_bits(0) should be 0")
	}
	if CountBits(NewInt(1)) != 1 {
		t.Fatal("count_bits(1) should be 1")
	}
	if CountBits(NewInt(255)) != 8 {
		t.Fatal("count_bits(255) should be 8")
	}
	if CountBits(NewInt(256)) != 9 {
		t.Fatal("count_bits(256) should be 9")
	}
}
