package pixel

import "golang.org/x/exp/constraints"

// Scalar constrains the numeric element types a Pixel (and an
// imgbuf.Image) may carry: any integer or floating-point type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Format declares the semantic layout of a pixel's channels. It is used
// only to prevent accidental cross-format operations; it never changes
// how samples are stored.
type Format int

const (
	// FormatUnknown leaves the channel semantics unspecified. Pixels of
	// unknown format are compatible with every other format.
	FormatUnknown Format = iota
	// FormatY is single-channel luminance.
	FormatY
	// FormatYA is luminance with alpha.
	FormatYA
	// FormatRGB is 3-channel red, green, blue.
	FormatRGB
	// FormatBGR is 3-channel blue, green, red.
	FormatBGR
	// FormatYCbCr is 3-channel luminance plus chroma.
	FormatYCbCr
	// FormatRGBA is 4-channel red, green, blue, alpha.
	FormatRGBA
	// FormatBGRA is 4-channel blue, green, red, alpha.
	FormatBGRA
	// FormatARGB is 4-channel alpha, red, green, blue.
	FormatARGB
	// FormatABGR is 4-channel alpha, blue, green, red.
	FormatABGR
	// FormatCMYK is 4-channel cyan, magenta, yellow, key.
	FormatCMYK
)

// formatChannels maps each concrete format to its implied channel count.
// FormatUnknown maps to 0, meaning "any".
var formatChannels = map[Format]int{
	FormatUnknown: 0,
	FormatY:       1,
	FormatYA:      2,
	FormatRGB:     3,
	FormatBGR:     3,
	FormatYCbCr:   3,
	FormatRGBA:    4,
	FormatBGRA:    4,
	FormatARGB:    4,
	FormatABGR:    4,
	FormatCMYK:    4,
}

var formatNames = map[Format]string{
	FormatUnknown: "Unknown",
	FormatY:       "Y",
	FormatYA:      "YA",
	FormatRGB:     "RGB",
	FormatBGR:     "BGR",
	FormatYCbCr:   "YCbCr",
	FormatRGBA:    "RGBA",
	FormatBGRA:    "BGRA",
	FormatARGB:    "ARGB",
	FormatABGR:    "ABGR",
	FormatCMYK:    "CMYK",
}

// Channels returns the channel count implied by the format, or 0 for
// FormatUnknown (any count admissible).
// Complexity: O(1).
func (f Format) Channels() int {
	return formatChannels[f]
}

// Valid reports whether f is one of the declared Format constants.
func (f Format) Valid() bool {
	_, ok := formatNames[f]
	return ok
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Invalid"
}

// Compatible reports whether two format tags may participate in the same
// operation: they are equal, or at least one is FormatUnknown.
// Complexity: O(1).
func Compatible(a, b Format) bool {
	return a == b || a == FormatUnknown || b == FormatUnknown
}

// mergeFormat picks the more specific of two compatible tags: the
// concrete one if exactly one side is FormatUnknown, else the common tag.
func mergeFormat(a, b Format) Format {
	if b == FormatUnknown {
		return a
	}
	return b
}
