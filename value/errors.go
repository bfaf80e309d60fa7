// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/pkg/errors"

// The engine reports four kinds of failure. Each kind wraps an error
// built with pkg/errors so messages compose as shape recursion
// unwinds, while callers can still branch on the kind with errors.As.

// ShapeError reports incompatible shapes, ranks, or index lengths.
// The message always carries both offending shapes or indices.
type ShapeError struct{ err error }

func (e ShapeError) Error() string { return e.err.Error() }
func (e ShapeError) Unwrap() error { return e.err }

func shapeErrorf(format string, args ...any) error {
	return ShapeError{err: errors.Errorf(format, args...)}
}

// BoundsError reports an index outside [-len, len). Operations that
// can substitute a fill value do so instead of returning one.
type BoundsError struct{ err error }

func (e BoundsError) Error() string { return e.err.Error() }
func (e BoundsError) Unwrap() error { return e.err }

func boundsErrorf(format string, args ...any) error {
	return BoundsError{err: errors.Errorf(format, args...)}
}

// InverseError reports that an undo operation is ambiguous or that
// the transformed array drifted from an invertible shape. Never
// recovered.
type InverseError struct{ err error }

func (e InverseError) Error() string { return e.err.Error() }
func (e InverseError) Unwrap() error { return e.err }

func inverseErrorf(format string, args ...any) error {
	return InverseError{err: errors.Errorf(format, args...)}
}

// TypeError reports an unsupported element-type pairing for a binary
// operation, naming both operand kinds. Never recovered.
type TypeError struct{ err error }

func (e TypeError) Error() string { return e.err.Error() }
func (e TypeError) Unwrap() error { return e.err }

func typeErrorf(format string, args ...any) error {
	return TypeError{err: errors.Errorf(format, args...)}
}

// noFillNote is appended to errors that a fill value would have
// averted, so interpreter diagnostics can suggest one.
const noFillNote = " (no fill value is set)"
