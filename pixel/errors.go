// SPDX-License-Identifier: MIT
// Package pixel: sentinel error set.
// All user-triggered conditions are reported through these sentinels and
// matched via errors.Is. Panics are reserved for programmer errors
// (out-of-range element indices).
package pixel

import "errors"

var (
	// ErrNoSamples is returned when a pixel is constructed with zero samples.
	ErrNoSamples = errors.New("pixel: at least one sample required")

	// ErrChannelMismatch is returned when a concrete format's implied
	// channel count disagrees with the number of samples supplied.
	ErrChannelMismatch = errors.New("pixel: format channel count mismatch")

	// ErrShapeMismatch is returned by arithmetic and comparison between
	// pixels whose channel counts differ.
	ErrShapeMismatch = errors.New("pixel: channel count mismatch between operands")

	// ErrFormatMismatch is returned by arithmetic and comparison between
	// two concrete, different formats. Operations are permitted when the
	// formats are equal or at least one side is FormatUnknown.
	ErrFormatMismatch = errors.New("pixel: incompatible pixel formats")

	// ErrNotSingleChannel is returned by Scalar() on a pixel with more
	// than one channel.
	ErrNotSingleChannel = errors.New("pixel: not a single-channel pixel")

	// ErrUnknownFormat is returned when a Format value outside the
	// declared enumeration is supplied.
	ErrUnknownFormat = errors.New("pixel: unknown format value")
)
