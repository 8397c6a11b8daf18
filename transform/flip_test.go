package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
	"github.com/nvoskres/pixform/transform"
)

// TestFlip_Concrete2x3 pins the exact row contents for all three
// directions on the 2×3 scenario image.
func TestFlip_Concrete2x3(t *testing.T) {
	cases := []struct {
		name string
		dir  transform.FlipDirection
		want [][]uint8
	}{
		{"Horizontal", transform.FlipHorizontal, [][]uint8{{2, 1}, {4, 3}, {6, 5}}},
		{"Vertical", transform.FlipVertical, [][]uint8{{5, 6}, {3, 4}, {1, 2}}},
		{"Both", transform.FlipBoth, [][]uint8{{6, 5}, {4, 3}, {2, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := sample2x3(t)
			dst, err := imgbuf.New[uint8](0, 0, 1)
			require.NoError(t, err)

			require.NoError(t, transform.Flip(tc.dir, src, dst))
			assert.Equal(t, 2, dst.Width())
			assert.Equal(t, 3, dst.Height())
			assert.Equal(t, tc.want, rowsOf(t, dst))
			// source untouched
			assert.Equal(t, [][]uint8{{1, 2}, {3, 4}, {5, 6}}, rowsOf(t, src))
		})
	}
}

// TestFlip_DoubleApplicationRestores verifies each direction is its own
// inverse: flipping twice reproduces the original, including Both.
func TestFlip_DoubleApplicationRestores(t *testing.T) {
	for _, dir := range []transform.FlipDirection{
		transform.FlipHorizontal, transform.FlipVertical, transform.FlipBoth,
	} {
		t.Run(dir.String(), func(t *testing.T) {
			src := mustImage[uint8](t, 3, 2, 2,
				1, 2, 3, 4, 5, 6,
				7, 8, 9, 10, 11, 12)
			once, err := transform.FlipNew(dir, src)
			require.NoError(t, err)
			twice, err := transform.FlipNew(dir, once)
			require.NoError(t, err)
			assert.True(t, src.Equal(twice), "flip<%s> applied twice must restore the original", dir)
		})
	}
}

// TestFlip_MultiChannelKeepsChannelOrder verifies a horizontal flip
// reverses pixel order but never the channel order within a pixel.
func TestFlip_MultiChannelKeepsChannelOrder(t *testing.T) {
	src := mustImage[uint8](t, 2, 1, 3,
		1, 2, 3, 4, 5, 6) // pixels (1,2,3) and (4,5,6)
	dst, err := transform.FlipNew(transform.FlipHorizontal, src)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{4, 5, 6, 1, 2, 3}}, rowsOf(t, dst))
}

// TestFlip_Preconditions verifies the sentinel errors of the
// out-of-place form.
func TestFlip_Preconditions(t *testing.T) {
	src := sample2x3(t)

	err := transform.Flip(transform.FlipHorizontal, src, src)
	assert.ErrorIs(t, err, transform.ErrSameImage, "aliased src/dst must be flagged")

	err = transform.Flip(transform.FlipHorizontal, src, nil)
	assert.ErrorIs(t, err, transform.ErrNilImage)

	err = transform.Flip(transform.FlipDirection(42), src, src.Like())
	assert.ErrorIs(t, err, transform.ErrUnknownDirection)

	wrong, err := imgbuf.New[uint8](0, 0, 3)
	require.NoError(t, err)
	err = transform.Flip(transform.FlipHorizontal, src, wrong)
	assert.ErrorIs(t, err, pixel.ErrChannelMismatch)
}

// TestFlip_ResizesDestination verifies the destination is sized to the
// source's exact extents regardless of its previous shape.
func TestFlip_ResizesDestination(t *testing.T) {
	src := sample2x3(t)
	dst, err := imgbuf.New[uint8](9, 1, 1)
	require.NoError(t, err)
	require.NoError(t, transform.Flip(transform.FlipVertical, src, dst))
	assert.Equal(t, 2, dst.Width())
	assert.Equal(t, 3, dst.Height())
}

// TestFlipHorizontalInPlace_OddWidth verifies the middle pixel of an
// odd-width row stays untouched while the outer pair swaps.
func TestFlipHorizontalInPlace_OddWidth(t *testing.T) {
	img := mustImage[uint8](t, 3, 1, 1, 1, 2, 3)
	require.NoError(t, transform.FlipHorizontalInPlace(img))
	assert.Equal(t, [][]uint8{{3, 2, 1}}, rowsOf(t, img))
}

// TestFlipHorizontalInPlace_MatchesAllocating verifies the in-place
// form agrees with the allocating form on an even width.
func TestFlipHorizontalInPlace_MatchesAllocating(t *testing.T) {
	img := mustImage[int16](t, 4, 2, 1,
		1, 2, 3, 4,
		5, 6, 7, 8)
	want, err := transform.FlipNew(transform.FlipHorizontal, img)
	require.NoError(t, err)

	require.NoError(t, transform.FlipHorizontalInPlace(img))
	assert.True(t, img.Equal(want))
}

// TestFlipVerticalInPlace_OddHeight verifies the middle row of an
// odd-height image stays untouched while outer rows swap element-wise.
func TestFlipVerticalInPlace_OddHeight(t *testing.T) {
	img := sample2x3(t)
	require.NoError(t, transform.FlipVerticalInPlace(img))
	assert.Equal(t, [][]uint8{{5, 6}, {3, 4}, {1, 2}}, rowsOf(t, img))
}

// TestInPlaceComposition_Both verifies that composing the two in-place
// primitives equals the allocating Both flip (no in-place Both exists).
func TestInPlaceComposition_Both(t *testing.T) {
	img := mustImage[uint8](t, 3, 3, 1,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
	want, err := transform.FlipNew(transform.FlipBoth, img)
	require.NoError(t, err)

	require.NoError(t, transform.FlipHorizontalInPlace(img))
	require.NoError(t, transform.FlipVerticalInPlace(img))
	assert.True(t, img.Equal(want))
}

// TestFlip_EmptyImage verifies transforms accept empty buffers.
func TestFlip_EmptyImage(t *testing.T) {
	src, err := imgbuf.New[uint8](0, 0, 1)
	require.NoError(t, err)
	dst, err := transform.FlipNew(transform.FlipBoth, src)
	require.NoError(t, err)
	assert.True(t, dst.Empty())

	require.NoError(t, transform.FlipHorizontalInPlace(src))
	require.NoError(t, transform.FlipVerticalInPlace(src))
}
