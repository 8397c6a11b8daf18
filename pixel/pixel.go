package pixel

import (
	"fmt"
	"strings"
)

// Pixel is a fixed-channel tuple of numeric samples in a fixed,
// contiguous order, optionally tagged with a semantic Format.
//
// The backing storage holds exactly Channels() samples and nothing else
// (tight packing; asserted by tests, since Go offers no compile-time
// layout introspection). The zero value is an empty pixel: it carries no
// samples and is only useful as an assignment target.
//
// Pixels are value types: Clone, Convert and the pure arithmetic
// operations never share storage with their inputs.
type Pixel[T Scalar] struct {
	format  Format
	samples []T // exactly Channels() elements, fixed order
}

// New constructs a pixel of FormatUnknown from the given samples.
// Returns ErrNoSamples when called without samples.
// Complexity: O(N).
func New[T Scalar](samples ...T) (Pixel[T], error) {
	return NewFormatted(FormatUnknown, samples...)
}

// NewFormatted constructs a pixel carrying the given format tag.
// Returns ErrNoSamples when called without samples, and
// ErrChannelMismatch when f is concrete and its implied channel count
// differs from len(samples).
// Complexity: O(N).
func NewFormatted[T Scalar](f Format, samples ...T) (Pixel[T], error) {
	if len(samples) == 0 {
		return Pixel[T]{}, ErrNoSamples
	}
	if !f.Valid() {
		return Pixel[T]{}, fmt.Errorf("format %d: %w", int(f), ErrUnknownFormat)
	}
	if n := f.Channels(); n != 0 && n != len(samples) {
		return Pixel[T]{}, fmt.Errorf("format %s wants %d channels, got %d: %w",
			f, n, len(samples), ErrChannelMismatch)
	}
	// Copy so callers cannot alias the pixel's storage afterwards.
	data := make([]T, len(samples))
	copy(data, samples)

	return Pixel[T]{format: f, samples: data}, nil
}

// Channels returns the number of samples the pixel holds.
// Complexity: O(1).
func (p Pixel[T]) Channels() int {
	return len(p.samples)
}

// Format returns the pixel's format tag.
// Complexity: O(1).
func (p Pixel[T]) Format() Format {
	return p.format
}

// At returns the i-th sample. Out-of-range indices are programmer
// errors and panic via the native bounds check.
// Complexity: O(1).
func (p Pixel[T]) At(i int) T {
	return p.samples[i]
}

// Set assigns the i-th sample. Out-of-range indices are programmer
// errors and panic via the native bounds check.
// Complexity: O(1).
func (p Pixel[T]) Set(i int, v T) {
	p.samples[i] = v
}

// Samples returns a copy of the sample values in channel order.
// Complexity: O(N).
func (p Pixel[T]) Samples() []T {
	out := make([]T, len(p.samples))
	copy(out, p.samples)
	return out
}

// Scalar unwraps a single-channel pixel to its sample value. The
// unwrap is explicit rather than implicit so the abstraction boundary
// stays visible. Returns ErrNotSingleChannel when Channels() != 1.
// Complexity: O(1).
func (p Pixel[T]) Scalar() (T, error) {
	if len(p.samples) != 1 {
		var zero T
		return zero, ErrNotSingleChannel
	}
	return p.samples[0], nil
}

// Clone returns a deep copy of the pixel.
// Complexity: O(N).
func (p Pixel[T]) Clone() Pixel[T] {
	data := make([]T, len(p.samples))
	copy(data, p.samples)
	return Pixel[T]{format: p.format, samples: data}
}

// Equal compares two pixels element-wise. Comparison is defined only
// for equal channel counts (ErrShapeMismatch otherwise) and compatible
// formats (ErrFormatMismatch when both are concrete and differ).
// Complexity: O(N).
func (p Pixel[T]) Equal(q Pixel[T]) (bool, error) {
	if len(p.samples) != len(q.samples) {
		return false, ErrShapeMismatch
	}
	if !Compatible(p.format, q.format) {
		return false, ErrFormatMismatch
	}
	for i := range p.samples {
		if p.samples[i] != q.samples[i] {
			return false, nil
		}
	}
	return true, nil
}

// Convert produces a pixel with element type U from one with element
// type T, performing Channels() independent numeric casts with native
// Go conversion semantics (truncation toward zero for float→integer,
// wrapping for narrowing integer casts). The format tag is preserved.
// Complexity: O(N).
func Convert[U, T Scalar](p Pixel[T]) Pixel[U] {
	data := make([]U, len(p.samples))
	for i, v := range p.samples {
		data[i] = U(v)
	}
	return Pixel[U]{format: p.format, samples: data}
}

// String implements fmt.Stringer for easy debugging, e.g. "RGB(255 0 17)".
// Complexity: O(N).
func (p Pixel[T]) String() string {
	var b strings.Builder
	b.WriteString(p.format.String())
	b.WriteByte('(')
	for i, v := range p.samples {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(')')
	return b.String()
}
