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

import "errors"

// ErrDoesNotFit is returned by IntToLE/IntToBE when the integer requires
// more bytes than the requested padding.
var ErrDoesNotFit = errors.New("integer does not fit in requested byte length")

// LEToInt converts a little-endian byte array to an unsigned Int.
func LEToInt(buf []byte) *Int {
	return NewIntFromBytes(reverseBytes(buf))
}

// BEToInt converts a big-endian byte array to an unsigned Int.
func BEToInt(buf []byte) *Int {
	return NewIntFromBytes(buf)
}

// IntToLE renders n as a little-endian byte array of exactly 'pad' bytes.
// A zero-length result (pad == 0 and n == 0) is normalized to a single
// zero byte. Fails if n does not fit into 'pad' bytes.
func IntToLE(n *Int, pad int) ([]byte, error) {
	be, err := IntToBE(n, pad)
	if err != nil {
		return nil, err
	}
	return reverseBytes(be), nil
}

// IntToBE renders n as a big-endian byte array of exactly 'pad' bytes.
func IntToBE(n *Int, pad int) ([]byte, error) {
	b := n.Bytes()
	if len(b) > pad {
		return nil, ErrDoesNotFit
	}
	if pad == 0 {
		return []byte{0}, nil
	}
	buf := make([]byte, pad)
	copy(buf[pad-len(b):], b)
	return buf, nil
}

// reverseBytes returns a new slice with the byte order of buf reversed.
func reverseBytes(buf []byte) []byte {
	n := len(buf)
	r := make([]byte, n)
	for i := 0; i < n; i++ {
		r[n-1-i] = buf[i]
	}
	return r
}
