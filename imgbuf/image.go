package imgbuf

import (
	"fmt"

	"github.com/nvoskres/pixform/pixel"
)

// Image is a dense, row-major 2D buffer of pixel values with a fixed
// channel count and an optional format tag. Samples are interleaved in
// one flat slice: pixel (x,y) occupies data[(y*w+x)*ch : (y*w+x+1)*ch].
//
// The channel count and format are fixed at construction; only the
// extents may change, through MaybeAllocate.
type Image[T pixel.Scalar] struct {
	w, h, ch int
	format   pixel.Format
	data     []T // flat backing storage, length == w*h*ch
}

// New creates a w×h image with the given channel count, all samples
// zero, tagged FormatUnknown.
// Returns ErrBadExtents for negative extents and ErrBadChannels for
// channels < 1. Zero extents are valid (an empty image).
// Complexity: O(W×H×channels).
func New[T pixel.Scalar](w, h, channels int) (*Image[T], error) {
	if w < 0 || h < 0 {
		return nil, ErrBadExtents
	}
	if channels < 1 {
		return nil, ErrBadChannels
	}
	return &Image[T]{w: w, h: h, ch: channels, format: pixel.FormatUnknown,
		data: make([]T, w*h*channels)}, nil
}

// NewFormatted creates a w×h image whose channel count is implied by
// the concrete format f.
// Returns ErrBadChannels when f is FormatUnknown (use New to pick the
// channel count explicitly) and ErrBadExtents for negative extents.
// Complexity: O(W×H×channels).
func NewFormatted[T pixel.Scalar](w, h int, f pixel.Format) (*Image[T], error) {
	ch := f.Channels()
	if ch == 0 {
		return nil, fmt.Errorf("format %s implies no channel count: %w", f, ErrBadChannels)
	}
	img, err := New[T](w, h, ch)
	if err != nil {
		return nil, err
	}
	img.format = f
	return img, nil
}

// FromSamples creates a w×h image adopting the given interleaved
// sample slice (not copied; the image takes ownership).
// Returns ErrBadLength when len(samples) != w*h*channels.
// Complexity: O(1) beyond validation.
func FromSamples[T pixel.Scalar](w, h, channels int, samples []T) (*Image[T], error) {
	if w < 0 || h < 0 {
		return nil, ErrBadExtents
	}
	if channels < 1 {
		return nil, ErrBadChannels
	}
	if len(samples) != w*h*channels {
		return nil, fmt.Errorf("want %d samples, got %d: %w", w*h*channels, len(samples), ErrBadLength)
	}
	return &Image[T]{w: w, h: h, ch: channels, format: pixel.FormatUnknown, data: samples}, nil
}

// Width returns the current width in pixels.
// Complexity: O(1).
func (m *Image[T]) Width() int { return m.w }

// Height returns the current height in pixels.
// Complexity: O(1).
func (m *Image[T]) Height() int { return m.h }

// Channels returns the fixed per-pixel sample count.
// Complexity: O(1).
func (m *Image[T]) Channels() int { return m.ch }

// Format returns the image's format tag.
// Complexity: O(1).
func (m *Image[T]) Format() pixel.Format { return m.format }

// Empty reports whether the image holds no pixels.
// Complexity: O(1).
func (m *Image[T]) Empty() bool { return m.w == 0 || m.h == 0 }

// InBounds reports whether (x,y) lies within the image extents.
// Complexity: O(1).
func (m *Image[T]) InBounds(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

// offset computes the flat sample offset of pixel (x,y) or returns
// ErrOutOfRange.
func (m *Image[T]) offset(x, y int) (int, error) {
	if !m.InBounds(x, y) {
		return 0, fmt.Errorf("(%d,%d) outside %dx%d: %w", x, y, m.w, m.h, ErrOutOfRange)
	}
	return (y*m.w + x) * m.ch, nil
}

// At copies the pixel at (x,y) out of the buffer. The returned pixel
// carries the image's format tag and owns its storage.
// Complexity: O(channels).
func (m *Image[T]) At(x, y int) (pixel.Pixel[T], error) {
	off, err := m.offset(x, y)
	if err != nil {
		return pixel.Pixel[T]{}, err
	}
	return pixel.NewFormatted(m.format, m.data[off:off+m.ch]...)
}

// Set copies the pixel value p into the buffer at (x,y). The value's
// channel count must equal the image's, and its format must be
// compatible with the image's tag (equal, or either side Unknown).
// Complexity: O(channels).
func (m *Image[T]) Set(x, y int, p pixel.Pixel[T]) error {
	off, err := m.offset(x, y)
	if err != nil {
		return err
	}
	if p.Channels() != m.ch {
		return fmt.Errorf("pixel has %d channels, image %d: %w", p.Channels(), m.ch, pixel.ErrChannelMismatch)
	}
	if !pixel.Compatible(p.Format(), m.format) {
		return fmt.Errorf("pixel %s into %s image: %w", p.Format(), m.format, pixel.ErrFormatMismatch)
	}
	for i := 0; i < m.ch; i++ {
		m.data[off+i] = p.At(i)
	}
	return nil
}

// Row returns the raw interleaved sample slice of row y, sharing the
// image's backing storage. Writes through it mutate the image; row
// length is Width()*Channels().
// Complexity: O(1).
func (m *Image[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= m.h {
		return nil, fmt.Errorf("row %d outside height %d: %w", y, m.h, ErrOutOfRange)
	}
	start := y * m.w * m.ch
	return m.data[start : start+m.w*m.ch : start+m.w*m.ch], nil
}

// MaybeAllocate ensures the buffer holds exactly w×h pixels. When the
// requested extents equal the current ones the backing storage is
// reused and contents are left untouched; otherwise fresh storage is
// allocated and contents are unspecified. The channel count and format
// never change.
// Complexity: O(1) on extent match, O(W×H×channels) otherwise.
func (m *Image[T]) MaybeAllocate(w, h int) error {
	if w < 0 || h < 0 {
		return ErrBadExtents
	}
	if w == m.w && h == m.h {
		return nil // reuse backing storage, contents preserved
	}
	m.w, m.h = w, h
	m.data = make([]T, w*h*m.ch)
	return nil
}

// Like returns an empty (0×0) image sharing the receiver's channel
// count and format tag, ready to be sized by MaybeAllocate. This is
// how allocating transform conveniences build their destinations.
// Complexity: O(1).
func (m *Image[T]) Like() *Image[T] {
	return &Image[T]{w: 0, h: 0, ch: m.ch, format: m.format}
}

// Clone returns a deep copy of the image.
// Complexity: O(W×H×channels).
func (m *Image[T]) Clone() *Image[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Image[T]{w: m.w, h: m.h, ch: m.ch, format: m.format, data: data}
}

// Equal reports whether two images have the same extents, channel
// count and sample values. Format tags do not participate; they only
// guard operations, not identity.
// Complexity: O(W×H×channels).
func (m *Image[T]) Equal(o *Image[T]) bool {
	if o == nil || m.w != o.w || m.h != o.h || m.ch != o.ch {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// CopyTo resizes dst to the receiver's extents and copies all samples
// into it. The destination must be a distinct buffer with the same
// channel count.
// Complexity: O(W×H×channels).
func (m *Image[T]) CopyTo(dst *Image[T]) error {
	if dst == nil {
		return ErrNilImage
	}
	if dst == m {
		return ErrSameImage
	}
	if dst.ch != m.ch {
		return fmt.Errorf("destination has %d channels, source %d: %w", dst.ch, m.ch, pixel.ErrChannelMismatch)
	}
	if err := dst.MaybeAllocate(m.w, m.h); err != nil {
		return err
	}
	copy(dst.data, m.data)
	return nil
}

// String implements fmt.Stringer for easy debugging: extents, channel
// count and format only, never the sample payload.
func (m *Image[T]) String() string {
	return fmt.Sprintf("Image(%dx%d c=%d %s)", m.w, m.h, m.ch, m.format)
}
