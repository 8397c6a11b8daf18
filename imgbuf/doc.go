// Package imgbuf provides the dense 2D pixel buffer the transform
// algorithms operate on: row-major, mutable, with interleaved samples
// stored in one flat backing slice.
//
// What:
//
//   - Image[T] stores width × height pixels of a fixed channel count;
//     pixel (x,y) occupies channels consecutive samples at row-major
//     offset (y*width+x)*channels. Rows are contiguous, so per-row
//     copying is a single copy call.
//   - At/Set move whole pixel values in and out (bounds-checked);
//     Row exposes the raw interleaved row slice for bulk operations.
//   - MaybeAllocate resizes the buffer to the requested extents,
//     reusing the backing storage (contents untouched) when the
//     extents already match, so repeated transforms into the same
//     destination amortize to zero allocations.
//   - Clone, Equal, CopyTo round out the value-semantics surface.
//
// Why:
//
//   - Flip/transpose/rotate reorder pixels without reading their
//     values; a flat interleaved layout lets them move channel groups
//     and whole rows with copy, no per-sample indirection.
//
// Complexity:
//
//   - At/Set/Row/InBounds: O(channels) or O(1).
//   - Clone/Equal/CopyTo: O(W×H×channels).
//   - MaybeAllocate: O(1) when extents match, O(W×H×channels) otherwise.
//
// Errors:
//
//   - ErrBadExtents: negative width or height.
//   - ErrBadChannels: channel count < 1.
//   - ErrOutOfRange: coordinate outside the buffer.
//   - ErrNilImage, ErrSameImage: nil or aliased buffer arguments.
//   - pixel.ErrChannelMismatch / pixel.ErrFormatMismatch: incompatible
//     pixel values passed to Set.
//
// Concurrency: none of the methods lock; callers own exclusive access
// to a buffer for the duration of any mutating call.
package imgbuf
