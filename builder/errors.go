// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors shared by all constructors.

package builder

import "errors"

var (
	// ErrTooFewCorners is returned by Polygon(n) when n < 3.
	ErrTooFewCorners = errors.New("builder: polygon needs at least 3 corners")

	// ErrTooFewVertices is returned by Linear(n) when n < 1.
	ErrTooFewVertices = errors.New("builder: linear quiver needs at least 1 vertex")

	// ErrChordCount is returned when a custom triangulation does not carry
	// exactly n-3 chords.
	ErrChordCount = errors.New("builder: triangulation needs exactly n-3 chords")

	// ErrBadChord is returned for degenerate, out-of-range, boundary, or
	// duplicate chords.
	ErrBadChord = errors.New("builder: bad chord")

	// ErrCrossingChords is returned when two chords cross.
	ErrCrossingChords = errors.New("builder: crossing chords")

	// ErrConstructFailed is returned when Build receives a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
