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

package math

import "github.com/bfix/goecc/eccerr"

// Field is an immutable descriptor of the prime field Z/pZ. All
// operations reduce their result modulo P and always return a
// canonical representative in [0, P).
type Field struct {
	P *Int
}

// NewField returns the prime field Z/pZ.
func NewField(p *Int) *Field {
	return &Field{P: p}
}

// Add returns (a+b) mod P.
func (f *Field) Add(a, b *Int) *Int {
	return a.Add(b).Mod(f.P)
}

// Sub returns (a-b) mod P.
func (f *Field) Sub(a, b *Int) *Int {
	return a.Sub(b).Mod(f.P)
}

// Mul returns (a*b) mod P.
func (f *Field) Mul(a, b *Int) *Int {
	return a.Mul(b).Mod(f.P)
}

// Inv returns the multiplicative inverse of a mod P.
func (f *Field) Inv(a *Int) (*Int, error) {
	inv, err := InverseOf(a, f.P)
	if err != nil {
		return nil, eccerr.New(eccerr.ErrNotInvertible, "no inverse of %v mod %v", a, f.P)
	}
	return inv, nil
}

// Div returns (a/b) mod P.
func (f *Field) Div(a, b *Int) (*Int, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}

// Normalize reduces n to its canonical representative in [0, P).
func (f *Field) Normalize(n *Int) *Int {
	return n.Mod(f.P)
}
