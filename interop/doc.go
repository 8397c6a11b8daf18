// Package interop bridges pixform buffers to the standard library's
// image types, so decoded files can feed the transform algorithms
// directly and results can be re-encoded with the standard encoders.
//
// What:
//
//   - FromGray / ToGray move single-channel byte buffers in and out of
//     *image.Gray; FromNRGBA / ToNRGBA do the same for 4-channel RGBA.
//   - FromImage accepts any image.Image, converting through NRGBA when
//     the concrete type is neither Gray nor NRGBA.
//   - Decode reads any registered format from an io.Reader straight
//     into an imgbuf.Image. Importing this package registers the
//     standard gif/jpeg/png decoders plus the extended
//     bmp/tiff/vp8l/webp decoders from golang.org/x/image.
//
// Conversions copy sample data; the returned buffers never alias the
// standard-library image's Pix storage.
//
// Complexity: all conversions are single O(W×H×channels) passes.
//
// Errors: channel-count disagreements surface pixel.ErrChannelMismatch;
// nil arguments surface imgbuf.ErrNilImage; decode failures are
// returned from the underlying codec unchanged.
package interop
