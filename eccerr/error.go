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

// Package eccerr defines the error taxonomy shared by every package in
// this module: seven distinct sentinel errors plus an Error wrapper that
// attaches caller-supplied context to one of them.
package eccerr

import "fmt"

// Sentinel error kinds. Callers compare against these with errors.Is.
var (
	// ErrInvalidParameters is returned when a curve or scheme constructor
	// receives parameters that violate its defining invariants.
	ErrInvalidParameters = fmt.Errorf("invalid parameters")
	// ErrOutOfRange is returned when a scalar, signature component, or
	// encoded integer does not lie in its required interval.
	ErrOutOfRange = fmt.Errorf("value out of range")
	// ErrNotOnCurve is returned when a point fails PointOnCurve.
	ErrNotOnCurve = fmt.Errorf("point not on curve")
	// ErrNotInvertible is returned on division or modular inverse by
	// zero or a non-coprime operand.
	ErrNotInvertible = fmt.Errorf("not invertible")
	// ErrDecodingError is returned when a compressed or little-endian
	// encoding has the wrong length or decodes to no valid point.
	ErrDecodingError = fmt.Errorf("decoding error")
	// ErrUnsupported is returned for operations not implemented for the
	// given curve family.
	ErrUnsupported = fmt.Errorf("unsupported operation")
	// ErrVerificationFailed is returned when a signature does not
	// satisfy its verification equation.
	ErrVerificationFailed = fmt.Errorf("verification failed")
)

// Error wraps one of the sentinel errors with caller-supplied context,
// so errors.Is/errors.As still resolve to the base error while the
// human-readable message carries the offending values.
type Error struct {
	Err error  // base error (for errors.Is()/errors.As() calls)
	Ctx string // error context
}

// Unwrap returns the wrapped sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readable error description.
func (e *Error) Error() string {
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error wrapping 'err' with formatted context.
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}
