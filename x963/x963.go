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

// Package x963 implements the X9.63-style DER blobs the core never
// produces or consumes itself (spec.md §6): a private-key SEQUENCE and a
// DSA-signature SEQUENCE, grounded on original_source/blobs.py's X963
// class and encoded the way the teacher's bitcoin.Signature does it --
// via a plain encoding/asn1 struct, not a hand-rolled DER writer.
package x963

import (
	"encoding/asn1"
	"math/big"

	"github.com/bfix/goecc/math"
)

// PrivateKey is the X9.63 ASN1_X9_63_Private_Key blob: a flag bit
// marking it private, the key size in bytes, the public point (x, y),
// and the private scalar k.
type PrivateKey struct {
	Flags asn1.BitString
	Size  int
	X, Y  *big.Int
	K     *big.Int
}

// Signature is the X9.63 ASN1_X9_63_DSA_Signature blob: a plain (r, s)
// pair.
type Signature struct {
	R, S *big.Int
}

// EncodePrivateKey renders a private key blob in DER, byteSize being the
// field's encoded coordinate width (e.g. 32 for NIST P-256).
func EncodePrivateKey(pubX, pubY, priv *math.Int, byteSize int) ([]byte, error) {
	blob := PrivateKey{
		Flags: asn1.BitString{Bytes: []byte{0x80}, BitLength: 1}, // bit 0 set: private key
		Size:  byteSize,
		X:     toBig(pubX),
		Y:     toBig(pubY),
		K:     toBig(priv),
	}
	return asn1.Marshal(blob)
}

// DecodePrivateKey parses a DER private-key blob back into its public
// point and private scalar.
func DecodePrivateKey(der []byte) (pubX, pubY, priv *math.Int, err error) {
	var blob PrivateKey
	if _, err = asn1.Unmarshal(der, &blob); err != nil {
		return nil, nil, nil, err
	}
	return math.NewIntFromBytes(blob.X.Bytes()), math.NewIntFromBytes(blob.Y.Bytes()), math.NewIntFromBytes(blob.K.Bytes()), nil
}

// EncodeSignature renders an (r, s) signature pair in DER.
func EncodeSignature(r, s *math.Int) ([]byte, error) {
	return asn1.Marshal(Signature{R: toBig(r), S: toBig(s)})
}

// DecodeSignature parses a DER (r, s) signature pair.
func DecodeSignature(der []byte) (r, s *math.Int, err error) {
	var sig Signature
	if _, err = asn1.Unmarshal(der, &sig); err != nil {
		return nil, nil, err
	}
	return math.NewIntFromBytes(sig.R.Bytes()), math.NewIntFromBytes(sig.S.Bytes()), nil
}

func toBig(n *math.Int) *big.Int {
	return new(big.Int).SetBytes(n.Bytes())
}
