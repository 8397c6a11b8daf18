// Package pixel provides the statically typed pixel value type at the
// heart of pixform: a fixed-channel tuple of numeric samples, optionally
// tagged with a semantic format.
//
// What:
//
//   - Pixel[T] holds N samples of a numeric element type T in a fixed,
//     contiguous order; N is fixed at construction and never changes.
//   - A Format tag (FormatY, FormatRGB, …) declares the semantic layout;
//     FormatUnknown leaves it unspecified. A concrete tag's implied
//     channel count must equal N.
//   - Element-wise arithmetic between same-shape pixels and between a
//     pixel and a scalar, in pure and compound-assignment forms.
//   - Convert performs per-element numeric casts to a different element
//     type; Kind and Common expose the usual-arithmetic-conversion rule
//     for choosing the element type of mixed-type expressions.
//
// Why:
//
//   - Transform algorithms need a trivially copyable, tightly packed
//     element type: a Pixel stores exactly N samples and nothing else.
//   - Format tags catch accidental cross-format operations (RGB plus
//     BGR) without imposing any per-element cost.
//
// Complexity:
//
//   - Construction, Clone, Convert, arithmetic: O(N) over the channel
//     count. Element access: O(1).
//
// Errors:
//
//   - ErrNoSamples: construction with zero samples.
//   - ErrChannelMismatch: concrete format vs. sample count disagreement.
//   - ErrShapeMismatch: arithmetic or comparison between pixels with
//     different channel counts.
//   - ErrFormatMismatch: operation between two concrete, different
//     formats.
//   - ErrNotSingleChannel: Scalar() on a multi-channel pixel.
//
// Out-of-range element indices passed to At/Set are programmer errors
// and panic via the native slice bounds check; they are not represented
// as returned errors.
package pixel
