// File: imgbuf/example_test.go
package imgbuf_test

import (
	"fmt"

	"github.com/nvoskres/pixform/imgbuf"
	"github.com/nvoskres/pixform/pixel"
)

// ExampleFromSamples demonstrates wrapping an interleaved sample slice
// as a 2×3 single-channel image and reading it back by coordinate.
func ExampleFromSamples() {
	img, _ := imgbuf.FromSamples[uint8](2, 3, 1, []uint8{
		1, 2,
		3, 4,
		5, 6,
	})

	for y := 0; y < img.Height(); y++ {
		row, _ := img.Row(y)
		fmt.Println(row)
	}

	p, _ := img.At(1, 2)
	v, _ := p.Scalar()
	fmt.Println("at(1,2):", v)

	// Output:
	// [1 2]
	// [3 4]
	// [5 6]
	// at(1,2): 6
}

// ExampleImage_MaybeAllocate demonstrates resize-or-reuse: matching
// extents preserve contents, differing extents reallocate.
func ExampleImage_MaybeAllocate() {
	img, _ := imgbuf.NewFormatted[uint8](2, 2, pixel.FormatY)
	fmt.Println(img)

	_ = img.MaybeAllocate(2, 2) // no-op, contents preserved
	_ = img.MaybeAllocate(5, 1) // reallocates, contents unspecified
	fmt.Println(img)

	// Output:
	// Image(2x2 c=1 Y)
	// Image(5x1 c=1 Y)
}
