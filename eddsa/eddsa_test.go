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

package eddsa

import (
	"crypto/rand"
	"fmt"
	"testing"
)

func TestEd25519SignVerifyRoundTrip(t *testing.T) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	priv, pub, nonce, err := Ed25519.KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %v", err)
	}
	msg := []byte("the quick brown fox jumps over the lazy dog")
	sig, err := Ed25519.Sign(msg, priv, pub, nonce)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != 64 {
		t.Fatalf("signature length = %d, want 64", len(sig))
	}
	pubEnc, err := Ed25519.S.EncodePublic(pub)
	if err != nil {
		t.Fatalf("EncodePublic: %v", err)
	}
	if err := Ed25519.Verify(msg, sig, pubEnc); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	fmt.Println("Ed25519: sign/verify round trip ok")
}

func TestEd41417SignVerifyRoundTrip(t *testing.T) {
	seed := make([]byte, 64)
	if _, err := rand.Read(seed); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	priv, pub, nonce, err := Ed41417.KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %v", err)
	}
	msg := []byte("another message, somewhat longer this time around")
	sig, err := Ed41417.Sign(msg, priv, pub, nonce)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != 104 {
		t.Fatalf("signature length = %d, want 104", len(sig))
	}
	pubEnc, err := Ed41417.S.EncodePublic(pub)
	if err != nil {
		t.Fatalf("EncodePublic: %v", err)
	}
	if err := Ed41417.Verify(msg, sig, pubEnc); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	fmt.Println("Ed41417: sign/verify round trip ok")
}

func TestEd25519VerifyRejectsTamperedMessage(t *testing.T) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	priv, pub, nonce, err := Ed25519.KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %v", err)
	}
	sig, err := Ed25519.Sign([]byte("original"), priv, pub, nonce)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	pubEnc, err := Ed25519.S.EncodePublic(pub)
	if err != nil {
		t.Fatalf("EncodePublic: %v", err)
	}
	if err := Ed25519.Verify([]byte("tampered"), sig, pubEnc); err == nil {
		t.Fatalf("expected Verify to reject a tampered message")
	}
}

func TestEd25519DeterministicFromSeed(t *testing.T) {
	seed := []byte("0123456789abcdef0123456789abcdef")[:32]
	priv1, pub1, _, err := Ed25519.KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %v", err)
	}
	priv2, pub2, _, err := Ed25519.KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %v", err)
	}
	if !priv1.Equals(priv2) {
		t.Errorf("same seed produced different private scalars")
	}
	if !pub1.Equals(pub2) {
		t.Errorf("same seed produced different public points")
	}
}
