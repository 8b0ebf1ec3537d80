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

// Package batch verifies independent signatures concurrently. Schemes,
// curves, and fields are immutable after construction (spec.md §5), so
// the only care needed is giving each verification its own hash.Hash --
// hence NewHash is a constructor, not a shared instance.
package batch

import (
	"context"
	"hash"

	"golang.org/x/sync/errgroup"

	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/ecdsa"
	"github.com/bfix/goecc/eddsa"
	"github.com/bfix/goecc/scheme"
)

// ECDSAItem is one signature to verify against a public key and message.
type ECDSAItem struct {
	Scheme  *scheme.Scheme
	Pub     *curve.Point
	Msg     []byte
	Sig     *ecdsa.Signature
	NewHash func() hash.Hash
}

// VerifyECDSA verifies every item concurrently, returning the first
// failure encountered (others may still be in flight at that point; all
// are awaited before VerifyECDSA returns).
func VerifyECDSA(ctx context.Context, items []ECDSAItem) error {
	g, _ := errgroup.WithContext(ctx)
	for _, it := range items {
		it := it
		g.Go(func() error {
			return ecdsa.Verify(it.Scheme, it.Pub, it.Msg, it.Sig, it.NewHash())
		})
	}
	return g.Wait()
}

// EdDSAItem is one Ed25519/Ed41417 signature to verify.
type EdDSAItem struct {
	Scheme *eddsa.Scheme
	PubEnc []byte
	Msg    []byte
	Sig    []byte
}

// VerifyEdDSA verifies every item concurrently.
func VerifyEdDSA(ctx context.Context, items []EdDSAItem) error {
	g, _ := errgroup.WithContext(ctx)
	for _, it := range items {
		it := it
		g.Go(func() error {
			return it.Scheme.Verify(it.Msg, it.Sig, it.PubEnc)
		})
	}
	return g.Wait()
}
