package transform

import (
	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
)

// rows gathers every row slice of img once, so inner loops can address
// arbitrary source rows without re-validating per pixel.
func rows[T pixel.Scalar](img *imgbuf.Image[T]) ([][]T, error) {
	out := make([][]T, img.Height())
	for y := range out {
		row, err := img.Row(y)
		if err != nil {
			return nil, err
		}
		out[y] = row
	}
	return out, nil
}

// Transpose writes the transpose of src into dst, resizing dst to
// width = src height, height = src width. The optional fused flips act
// on the output orientation: for every destination coordinate (x,y),
//
//	srcX = FlipV ? srcWidth-1-y  : y
//	srcY = FlipH ? srcHeight-1-x : x
//	dst(x,y) = src(srcX, srcY)
//
// Note the cross-wiring: FlipH perturbs srcY and FlipV perturbs srcX.
// It falls out of composing the transpose with a subsequent flip along
// the named axis of the output.
//
// The two flags are resolved by one switch into four specialized loops;
// no per-pixel branching. src and dst must be distinct buffers with
// equal channel counts. There is no in-place transpose: the extents
// change for non-square inputs.
// Complexity: O(W×H×channels), single pass.
func Transpose[T pixel.Scalar](src, dst *imgbuf.Image[T], opts TransposeOptions) error {
	if err := checkPair(src, dst); err != nil {
		return err
	}
	srcW, srcH, ch := src.Width(), src.Height(), src.Channels()
	if err := dst.MaybeAllocate(srcH, srcW); err != nil {
		return err
	}
	if src.Empty() {
		return nil
	}

	srcRows, err := rows(src)
	if err != nil {
		return err
	}
	dstRows, err := rows(dst)
	if err != nil {
		return err
	}

	// dst extents: width srcH, height srcW.
	switch {
	case !opts.FlipH && !opts.FlipV:
		for dy := 0; dy < srcW; dy++ {
			drow := dstRows[dy]
			for dx := 0; dx < srcH; dx++ {
				copy(drow[dx*ch:(dx+1)*ch], srcRows[dx][dy*ch:(dy+1)*ch])
			}
		}
	case opts.FlipH && !opts.FlipV:
		for dy := 0; dy < srcW; dy++ {
			drow := dstRows[dy]
			for dx := 0; dx < srcH; dx++ {
				srcY := srcH - 1 - dx
				copy(drow[dx*ch:(dx+1)*ch], srcRows[srcY][dy*ch:(dy+1)*ch])
			}
		}
	case !opts.FlipH && opts.FlipV:
		for dy := 0; dy < srcW; dy++ {
			drow := dstRows[dy]
			srcX := srcW - 1 - dy
			for dx := 0; dx < srcH; dx++ {
				copy(drow[dx*ch:(dx+1)*ch], srcRows[dx][srcX*ch:(srcX+1)*ch])
			}
		}
	default: // both flips
		for dy := 0; dy < srcW; dy++ {
			drow := dstRows[dy]
			srcX := srcW - 1 - dy
			for dx := 0; dx < srcH; dx++ {
				srcY := srcH - 1 - dx
				copy(drow[dx*ch:(dx+1)*ch], srcRows[srcY][srcX*ch:(srcX+1)*ch])
			}
		}
	}
	return nil
}

// TransposeNew returns a freshly allocated transpose of img. Defined
// purely in terms of Transpose.
// Complexity: O(W×H×channels).
func TransposeNew[T pixel.Scalar](img *imgbuf.Image[T], opts TransposeOptions) (*imgbuf.Image[T], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	out := img.Like()
	if err := Transpose(img, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
