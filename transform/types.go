// SPDX-License-Identifier: MIT
// Package transform: direction enumerations, options, and sentinel errors.
package transform

import (
	"errors"
	"fmt"

	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
)

// ErrUnknownDirection is returned when a flip or rotation direction
// outside the enumeration is passed.
var ErrUnknownDirection = errors.New("transform: unknown direction")

// ErrNilImage aliases imgbuf.ErrNilImage so callers can match either
// name via errors.Is.
var ErrNilImage = imgbuf.ErrNilImage

// ErrSameImage aliases imgbuf.ErrSameImage: out-of-place transforms
// require distinct source and destination buffers.
var ErrSameImage = imgbuf.ErrSameImage

// FlipDirection selects which axis a Flip reverses.
type FlipDirection int

const (
	// FlipHorizontal reverses each row's pixel order; rows stay put.
	FlipHorizontal FlipDirection = iota
	// FlipVertical reverses the row order; each row's pixel order stays put.
	FlipVertical
	// FlipBoth reverses both, equivalent to a 180° rotation.
	FlipBoth
)

// String implements fmt.Stringer.
func (d FlipDirection) String() string {
	switch d {
	case FlipHorizontal:
		return "Horizontal"
	case FlipVertical:
		return "Vertical"
	case FlipBoth:
		return "Both"
	default:
		return "Invalid"
	}
}

// RotationDirection selects a 90°-increment rotation amount and sense.
// 0° clockwise and 0° counterclockwise are distinct values describing
// the identical operation; likewise Clockwise90 ≡ Counterclockwise270,
// Clockwise180 ≡ Counterclockwise180, Clockwise270 ≡ Counterclockwise90.
type RotationDirection int

const (
	// Clockwise0 rotates by 0° clockwise (plain copy).
	Clockwise0 RotationDirection = iota
	// Clockwise90 rotates by 90° clockwise.
	Clockwise90
	// Clockwise180 rotates by 180° clockwise.
	Clockwise180
	// Clockwise270 rotates by 270° clockwise.
	Clockwise270
	// Counterclockwise0 rotates by 0° counterclockwise (plain copy).
	Counterclockwise0
	// Counterclockwise90 rotates by 90° counterclockwise.
	Counterclockwise90
	// Counterclockwise180 rotates by 180° counterclockwise.
	Counterclockwise180
	// Counterclockwise270 rotates by 270° counterclockwise.
	Counterclockwise270
)

// String implements fmt.Stringer.
func (d RotationDirection) String() string {
	switch d {
	case Clockwise0:
		return "Clockwise0"
	case Clockwise90:
		return "Clockwise90"
	case Clockwise180:
		return "Clockwise180"
	case Clockwise270:
		return "Clockwise270"
	case Counterclockwise0:
		return "Counterclockwise0"
	case Counterclockwise90:
		return "Counterclockwise90"
	case Counterclockwise180:
		return "Counterclockwise180"
	case Counterclockwise270:
		return "Counterclockwise270"
	default:
		return "Invalid"
	}
}

// TransposeOptions selects the flips fused into a Transpose pass. Each
// flag is named for the axis of the output orientation it flips.
type TransposeOptions struct {
	// FlipH additionally flips the transposed output horizontally.
	FlipH bool
	// FlipV additionally flips the transposed output vertically.
	FlipV bool
}

// DefaultTransposeOptions returns a plain transpose: no fused flips.
func DefaultTransposeOptions() TransposeOptions {
	return TransposeOptions{}
}

// checkPair validates the shared preconditions of every out-of-place
// transform: both buffers non-nil, distinct, and channel-compatible.
func checkPair[T pixel.Scalar](src, dst *imgbuf.Image[T]) error {
	if src == nil || dst == nil {
		return ErrNilImage
	}
	if src == dst {
		return ErrSameImage
	}
	if src.Channels() != dst.Channels() {
		return fmt.Errorf("destination has %d channels, source %d: %w",
			dst.Channels(), src.Channels(), pixel.ErrChannelMismatch)
	}
	return nil
}
