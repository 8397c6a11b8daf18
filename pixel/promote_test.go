package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvoskres/pixform/pixel"
)

var allKinds = []pixel.Kind{
	pixel.KindUint8, pixel.KindUint16, pixel.KindUint32, pixel.KindUint64,
	pixel.KindInt8, pixel.KindInt16, pixel.KindInt32, pixel.KindInt64,
	pixel.KindFloat32, pixel.KindFloat64,
}

// TestCommon_TableProperties verifies the structural invariants of the
// promotion table: idempotent on the diagonal, symmetric, and never
// producing an invalid kind for valid operands.
func TestCommon_TableProperties(t *testing.T) {
	for _, a := range allKinds {
		assert.Equal(t, a, pixel.Common(a, a), "Common(%s,%s) must be idempotent", a, a)
		for _, b := range allKinds {
			ab := pixel.Common(a, b)
			ba := pixel.Common(b, a)
			assert.Equal(t, ab, ba, "Common must be symmetric for (%s,%s)", a, b)
			assert.NotEqual(t, pixel.KindInvalid, ab, "Common(%s,%s) must be valid", a, b)
		}
	}
}

// TestCommon_Entries spot-checks the usual-arithmetic-conversion rule.
func TestCommon_Entries(t *testing.T) {
	cases := []struct {
		a, b, want pixel.Kind
	}{
		// same-signedness pairs widen
		{pixel.KindUint8, pixel.KindUint16, pixel.KindUint16},
		{pixel.KindInt8, pixel.KindInt64, pixel.KindInt64},
		// signed/unsigned pairs need the next wider signed integer
		{pixel.KindUint8, pixel.KindInt8, pixel.KindInt16},
		{pixel.KindUint16, pixel.KindInt16, pixel.KindInt32},
		{pixel.KindUint32, pixel.KindInt32, pixel.KindInt64},
		{pixel.KindUint8, pixel.KindInt32, pixel.KindInt32},
		// no integer can hold both uint64 and a signed type
		{pixel.KindUint64, pixel.KindInt8, pixel.KindFloat64},
		{pixel.KindUint64, pixel.KindInt64, pixel.KindFloat64},
		// float32 holds all 16-bit integers exactly, not the wider ones
		{pixel.KindFloat32, pixel.KindUint16, pixel.KindFloat32},
		{pixel.KindFloat32, pixel.KindInt16, pixel.KindFloat32},
		{pixel.KindFloat32, pixel.KindInt32, pixel.KindFloat64},
		{pixel.KindFloat32, pixel.KindUint64, pixel.KindFloat64},
		// float64 absorbs everything
		{pixel.KindFloat64, pixel.KindFloat32, pixel.KindFloat64},
		{pixel.KindFloat64, pixel.KindUint8, pixel.KindFloat64},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pixel.Common(tc.a, tc.b),
			"Common(%s,%s)", tc.a, tc.b)
	}
}

// TestCommon_InvalidOperands verifies invalid kinds never promote.
func TestCommon_InvalidOperands(t *testing.T) {
	assert.Equal(t, pixel.KindInvalid, pixel.Common(pixel.KindInvalid, pixel.KindUint8))
	assert.Equal(t, pixel.KindInvalid, pixel.Common(pixel.KindUint8, pixel.Kind(99)))
}

// TestKindOf verifies type-to-kind resolution, including named types
// and the platform-sized integers.
func TestKindOf(t *testing.T) {
	assert.Equal(t, pixel.KindUint8, pixel.KindOf[uint8]())
	assert.Equal(t, pixel.KindUint16, pixel.KindOf[uint16]())
	assert.Equal(t, pixel.KindInt32, pixel.KindOf[int32]())
	assert.Equal(t, pixel.KindFloat32, pixel.KindOf[float32]())
	assert.Equal(t, pixel.KindFloat64, pixel.KindOf[float64]())

	type sample uint16
	assert.Equal(t, pixel.KindUint16, pixel.KindOf[sample](), "named types resolve through the underlying type")

	k := pixel.KindOf[int]()
	assert.Contains(t, []pixel.Kind{pixel.KindInt32, pixel.KindInt64}, k)
}
