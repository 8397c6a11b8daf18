// Package pixform is the numeric core of a 2D image-processing toolkit:
// statically typed pixel values and geometric transformations over dense,
// row-major pixel buffers.
//
// 🚀 What is pixform?
//
//	A small, deterministic library that brings together:
//		• Pixel values: fixed-channel numeric tuples with format tags,
//		  element access, arithmetic and type-promoting conversions
//		• Buffers: dense, row-major, interleaved-sample 2D images with
//		  resize-or-reuse allocation
//		• Transforms: flip (horizontal/vertical/both), transpose with
//		  optional fused flips, and 90°-increment rotation — allocating
//		  and in-place variants
//		• Interop: bridges to the standard image package, with the
//		  extended x/image codecs registered for decoding
//
// ✨ Why choose pixform?
//
//   - Predictable – every operation is a bounded, single-pass O(W×H) loop
//   - Honest errors – sentinel errors matched via errors.Is, no panics on
//     user-triggered conditions
//   - Pure Go – no cgo, no hidden global state
//
// Everything is organized under four subpackages:
//
//	pixel/     — Pixel values, formats, and the numeric promotion table
//	imgbuf/    — dense row-major Image buffers
//	transform/ — flip, transpose, and rotation algorithms
//	interop/   — standard-library image bridging and codec registration
//
// Quick example, rotating a 2×3 single-channel image clockwise:
//
//	src, _ := imgbuf.FromSamples[uint8](2, 3, 1, []uint8{1, 2, 3, 4, 5, 6})
//	dst, _ := transform.RotateNew(transform.Clockwise90, src)
//	// dst is now 3×2 with rows [5 3 1] and [6 4 2].
package pixform
