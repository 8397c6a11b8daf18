package pixel_test

import (
	"testing"

	"github.com/nvoskres/pixform/pixel"
)

func BenchmarkAdd_RGBA8(b *testing.B) {
	p, _ := pixel.NewFormatted[uint8](pixel.FormatRGBA, 1, 2, 3, 4)
	q, _ := pixel.NewFormatted[uint8](pixel.FormatRGBA, 5, 6, 7, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Add(q)
	}
}

func BenchmarkAddScalarAssign_RGBA8(b *testing.B) {
	p, _ := pixel.NewFormatted[uint8](pixel.FormatRGBA, 1, 2, 3, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.AddScalarAssign(1)
	}
}

func BenchmarkConvert_Uint8ToFloat64(b *testing.B) {
	p, _ := pixel.NewFormatted[uint8](pixel.FormatRGB, 1, 2, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pixel.Convert[float64](p)
	}
}
