package transform

import (
	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
)

// reverseCopyRow copies src into dst with the pixel order reversed.
// Both slices hold w interleaved pixels of ch samples; channel order
// within each pixel is preserved.
func reverseCopyRow[T pixel.Scalar](dst, src []T, w, ch int) {
	for x := 0; x < w; x++ {
		copy(dst[x*ch:(x+1)*ch], src[(w-1-x)*ch:(w-x)*ch])
	}
}

// Flip writes the flipped contents of src into dst, resizing dst to
// src's exact extents first. FlipHorizontal reverses each row's pixel
// order, FlipVertical reverses the row order, FlipBoth does both.
// src and dst must be distinct buffers with equal channel counts.
// Complexity: O(W×H×channels), single pass.
func Flip[T pixel.Scalar](dir FlipDirection, src, dst *imgbuf.Image[T]) error {
	if dir != FlipHorizontal && dir != FlipVertical && dir != FlipBoth {
		return ErrUnknownDirection
	}
	if err := checkPair(src, dst); err != nil {
		return err
	}
	if err := dst.MaybeAllocate(src.Width(), src.Height()); err != nil {
		return err
	}

	w, h, ch := src.Width(), src.Height(), src.Channels()
	// Direction resolved once; every per-row loop body below is branch-free.
	switch dir {
	case FlipHorizontal:
		for y := 0; y < h; y++ {
			srcRow, err := src.Row(y)
			if err != nil {
				return err
			}
			dstRow, err := dst.Row(y)
			if err != nil {
				return err
			}
			reverseCopyRow(dstRow, srcRow, w, ch)
		}
	case FlipVertical:
		for y := 0; y < h; y++ {
			srcRow, err := src.Row(y)
			if err != nil {
				return err
			}
			dstRow, err := dst.Row(h - 1 - y)
			if err != nil {
				return err
			}
			copy(dstRow, srcRow)
		}
	case FlipBoth:
		for y := 0; y < h; y++ {
			srcRow, err := src.Row(y)
			if err != nil {
				return err
			}
			dstRow, err := dst.Row(h - 1 - y)
			if err != nil {
				return err
			}
			reverseCopyRow(dstRow, srcRow, w, ch)
		}
	}
	return nil
}

// FlipNew returns a freshly allocated flipped copy of img. Defined
// purely in terms of Flip.
// Complexity: O(W×H×channels).
func FlipNew[T pixel.Scalar](dir FlipDirection, img *imgbuf.Image[T]) (*imgbuf.Image[T], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	out := img.Like()
	if err := Flip(dir, img, out); err != nil {
		return nil, err
	}
	return out, nil
}

// FlipHorizontalInPlace reverses each row's pixel order within img's
// own storage: pixel x swaps with pixel w-1-x for x over the first half
// of the row. For odd widths the middle pixel is untouched.
// Complexity: O(W×H×channels).
func FlipHorizontalInPlace[T pixel.Scalar](img *imgbuf.Image[T]) error {
	if img == nil {
		return ErrNilImage
	}
	w, ch := img.Width(), img.Channels()
	half := w / 2
	for y := 0; y < img.Height(); y++ {
		row, err := img.Row(y)
		if err != nil {
			return err
		}
		for x := 0; x < half; x++ {
			li, ri := x*ch, (w-1-x)*ch
			for c := 0; c < ch; c++ {
				row[li+c], row[ri+c] = row[ri+c], row[li+c]
			}
		}
	}
	return nil
}

// FlipVerticalInPlace reverses the row order within img's own storage:
// row y swaps with row h-1-y for y over the first half. For odd heights
// the middle row is untouched. This is a full element-wise row swap,
// not a row-pointer reassignment; the backing layout never changes.
// Complexity: O(W×H×channels).
func FlipVerticalInPlace[T pixel.Scalar](img *imgbuf.Image[T]) error {
	if img == nil {
		return ErrNilImage
	}
	h := img.Height()
	half := h / 2
	for yTop := 0; yTop < half; yTop++ {
		top, err := img.Row(yTop)
		if err != nil {
			return err
		}
		bottom, err := img.Row(h - 1 - yTop)
		if err != nil {
			return err
		}
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
	return nil
}
