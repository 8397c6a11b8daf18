package interop

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
)

// FromGray copies a standard grayscale image into a single-channel
// byte buffer tagged FormatY. Sub-images (non-zero bounds origin,
// stride wider than the row) are handled.
// Complexity: O(W×H).
func FromGray(src *image.Gray) (*imgbuf.Image[uint8], error) {
	if src == nil {
		return nil, imgbuf.ErrNilImage
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out, err := imgbuf.NewFormatted[uint8](w, h, pixel.FormatY)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		row, err := out.Row(y)
		if err != nil {
			return nil, err
		}
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(row, src.Pix[off:off+w])
	}
	return out, nil
}

// ToGray copies a single-channel byte buffer into a standard grayscale
// image with zero-origin bounds.
// Complexity: O(W×H).
func ToGray(src *imgbuf.Image[uint8]) (*image.Gray, error) {
	if src == nil {
		return nil, imgbuf.ErrNilImage
	}
	if src.Channels() != 1 {
		return nil, fmt.Errorf("interop: ToGray on %d-channel image: %w",
			src.Channels(), pixel.ErrChannelMismatch)
	}
	w, h := src.Width(), src.Height()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row, err := src.Row(y)
		if err != nil {
			return nil, err
		}
		copy(out.Pix[y*out.Stride:y*out.Stride+w], row)
	}
	return out, nil
}

// FromNRGBA copies a standard non-premultiplied RGBA image into a
// 4-channel byte buffer tagged FormatRGBA.
// Complexity: O(W×H).
func FromNRGBA(src *image.NRGBA) (*imgbuf.Image[uint8], error) {
	if src == nil {
		return nil, imgbuf.ErrNilImage
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out, err := imgbuf.NewFormatted[uint8](w, h, pixel.FormatRGBA)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		row, err := out.Row(y)
		if err != nil {
			return nil, err
		}
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(row, src.Pix[off:off+w*4])
	}
	return out, nil
}

// ToNRGBA copies a 4-channel byte buffer into a standard
// non-premultiplied RGBA image with zero-origin bounds.
// Complexity: O(W×H).
func ToNRGBA(src *imgbuf.Image[uint8]) (*image.NRGBA, error) {
	if src == nil {
		return nil, imgbuf.ErrNilImage
	}
	if src.Channels() != 4 {
		return nil, fmt.Errorf("interop: ToNRGBA on %d-channel image: %w",
			src.Channels(), pixel.ErrChannelMismatch)
	}
	w, h := src.Width(), src.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row, err := src.Row(y)
		if err != nil {
			return nil, err
		}
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], row)
	}
	return out, nil
}

// FromImage copies any standard image into an imgbuf buffer: Gray maps
// to a single FormatY channel, NRGBA to 4 RGBA channels, and every
// other concrete type converts through NRGBA first.
// Complexity: O(W×H×channels).
func FromImage(src image.Image) (*imgbuf.Image[uint8], error) {
	if src == nil {
		return nil, imgbuf.ErrNilImage
	}
	switch m := src.(type) {
	case *image.Gray:
		return FromGray(m)
	case *image.NRGBA:
		return FromNRGBA(m)
	default:
		b := src.Bounds()
		tmp := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(tmp, tmp.Bounds(), src, b.Min, draw.Src)
		return FromNRGBA(tmp)
	}
}

// Decode reads an encoded image from r using any registered codec
// (gif/jpeg/png plus the x/image bmp/tiff/vp8l/webp decoders pulled in
// by this package) and converts it via FromImage. The second return is
// the codec name reported by image.Decode.
func Decode(r io.Reader) (*imgbuf.Image[uint8], string, error) {
	m, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("interop: decode: %w", err)
	}
	out, err := FromImage(m)
	if err != nil {
		return nil, "", err
	}
	return out, name, nil
}
