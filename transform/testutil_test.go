// File: transform/testutil_test.go
// Shared helpers for transform tests.
package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
)

// mustImage builds a w×h image with the given channel count from
// interleaved samples, failing the test on any constructor error.
func mustImage[T pixel.Scalar](t *testing.T, w, h, ch int, samples ...T) *imgbuf.Image[T] {
	t.Helper()
	img, err := imgbuf.FromSamples(w, h, ch, samples)
	require.NoError(t, err)
	return img
}

// rowsOf snapshots an image's rows as independent slices for assertion.
func rowsOf[T pixel.Scalar](t *testing.T, img *imgbuf.Image[T]) [][]T {
	t.Helper()
	out := make([][]T, img.Height())
	for y := range out {
		row, err := img.Row(y)
		require.NoError(t, err)
		out[y] = append([]T(nil), row...)
	}
	return out
}

// the 2×3 single-channel byte image used across the concrete scenarios:
// rows [1,2], [3,4], [5,6].
func sample2x3(t *testing.T) *imgbuf.Image[uint8] {
	t.Helper()
	return mustImage[uint8](t, 2, 3, 1, 1, 2, 3, 4, 5, 6)
}
