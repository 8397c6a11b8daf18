// SPDX-License-Identifier: MIT
// Package imgbuf: sentinel error set, matched via errors.Is.
package imgbuf

import "errors"

var (
	// ErrBadExtents is returned when a negative width or height is requested.
	ErrBadExtents = errors.New("imgbuf: extents must be non-negative")

	// ErrBadChannels is returned when a channel count below 1 is requested.
	ErrBadChannels = errors.New("imgbuf: channel count must be >= 1")

	// ErrBadLength is returned when a supplied sample slice does not hold
	// exactly width*height*channels elements.
	ErrBadLength = errors.New("imgbuf: sample slice length mismatch")

	// ErrOutOfRange indicates a coordinate outside the buffer extents.
	ErrOutOfRange = errors.New("imgbuf: coordinate out of range")

	// ErrNilImage indicates a nil *Image argument.
	ErrNilImage = errors.New("imgbuf: nil image")

	// ErrSameImage indicates that an operation requiring distinct source
	// and destination buffers received the same buffer for both.
	ErrSameImage = errors.New("imgbuf: source and destination must be distinct")
)
