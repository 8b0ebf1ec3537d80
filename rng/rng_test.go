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

package rng

import (
	"fmt"
	"testing"

	"github.com/bfix/goecc/math"
)

func TestCryptoRandBounded(t *testing.T) {
	bound := math.NewInt(1000000)
	for i := 0; i < 20; i++ {
		n, err := CryptoRand{}.Uniform(bound)
		if err != nil {
			t.Fatalf("Uniform: %v", err)
		}
		if n.Cmp(bound) >= 0 || n.Cmp(math.ZERO) < 0 {
			t.Fatalf("out of range: %v", n)
		}
	}
	fmt.Println("CryptoRand stays within bounds")
}

func TestInsecureBounded(t *testing.T) {
	bound := math.NewInt(1000000)
	for i := 0; i < 20; i++ {
		n, err := Insecure{}.Uniform(bound)
		if err != nil {
			t.Fatalf("Uniform: %v", err)
		}
		if n.Cmp(bound) >= 0 || n.Cmp(math.ZERO) < 0 {
			t.Fatalf("out of range: %v", n)
		}
	}
}
