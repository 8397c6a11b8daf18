package transform

import (
	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
)

// Rotate writes src rotated by dir into dst, resizing dst as required.
// The dispatch is exhaustive over the eight enumeration values — each
// maps to exactly one primitive, so equivalent directions (Clockwise90
// and Counterclockwise270, and so on) produce identical results:
//
//	0° either sense    → plain copy
//	90°CW / 270°CCW    → transpose with FlipH
//	180° either sense  → flip Both
//	270°CW / 90°CCW    → transpose with FlipV
//
// src and dst must be distinct buffers with equal channel counts.
// Complexity: O(W×H×channels), single pass.
func Rotate[T pixel.Scalar](dir RotationDirection, src, dst *imgbuf.Image[T]) error {
	if err := checkPair(src, dst); err != nil {
		return err
	}
	switch dir {
	case Clockwise0, Counterclockwise0:
		return src.CopyTo(dst)
	case Clockwise90, Counterclockwise270:
		return Transpose(src, dst, TransposeOptions{FlipH: true})
	case Clockwise180, Counterclockwise180:
		return Flip(FlipBoth, src, dst)
	case Clockwise270, Counterclockwise90:
		return Transpose(src, dst, TransposeOptions{FlipV: true})
	default:
		return ErrUnknownDirection
	}
}

// RotateNew returns a freshly allocated, correctly sized rotation of
// img. Defined purely in terms of Rotate.
// Complexity: O(W×H×channels).
func RotateNew[T pixel.Scalar](dir RotationDirection, img *imgbuf.Image[T]) (*imgbuf.Image[T], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	out := img.Like()
	if err := Rotate(dir, img, out); err != nil {
		return nil, err
	}
	return out, nil
}
