// Package transform implements the geometric buffer transformations of
// pixform: flip, transpose, and rotation in 90° increments. All of them
// reorder pixels without modifying their values.
//
// What:
//
//   - Flip reverses rows (FlipHorizontal), columns (FlipVertical) or
//     both; FlipHorizontalInPlace / FlipVerticalInPlace mutate a single
//     buffer. There is no in-place Both primitive: composing the two
//     in-place flips achieves it.
//   - Transpose exchanges rows and columns, optionally fused with a
//     horizontal and/or vertical flip of the output orientation in the
//     same single pass (TransposeOptions).
//   - Rotate dispatches one of the eight RotationDirection values onto
//     copy, flip-Both, or one of the two flip-fused transposes.
//
// Every out-of-place entry point resizes its destination to the exact
// required extents via MaybeAllocate and requires source and
// destination to be distinct buffers. Value-returning convenience forms
// (FlipNew, TransposeNew, RotateNew) are defined purely in terms of the
// write-into-destination forms.
//
// The direction and flag parameters are resolved by a single switch
// outside the pixel loops, so every per-pixel loop body is branch-free.
//
// Complexity: every operation is one bounded, deterministic
// O(W×H×channels) traversal; the convenience forms add one allocation
// for the destination.
//
// Errors:
//
//   - ErrNilImage: nil source or destination.
//   - ErrSameImage: aliased source and destination passed to an
//     out-of-place transform.
//   - ErrUnknownDirection: a FlipDirection or RotationDirection outside
//     the enumeration.
//   - pixel.ErrChannelMismatch: destination channel count differs from
//     the source's.
//
// Concurrency: fully synchronous; callers ensure exclusive access to
// any buffer passed to a mutating operation for the duration of the
// call.
package transform
