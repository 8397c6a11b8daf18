package pixel

import (
	"math/bits"
	"reflect"
)

// Numeric promotion for mixed-type pixel arithmetic.
//
// Go generics cannot compute a dependent result type common(T, U), so
// the usual-arithmetic-conversion rule is exposed as an explicit
// type-level lookup table: Common(KindOf[T](), KindOf[U]()) names the
// element type able to represent both operand types without narrowing.
// Mixed-type arithmetic is then promote-then-operate:
//
//	r := pixel.Convert[float64](p8)            // uint8 → common kind
//	sum, err := r.Add(pf)                      // same-type operator
//
// Signed/unsigned pairs promote to the next wider signed integer; pairs
// with no integer wide enough (anything against uint64, int64 against
// uint32 and wider) promote to float64. Small integers against float32
// stay float32 (the 24-bit mantissa holds all 16-bit integers exactly);
// 32- and 64-bit integers push the result to float64.

// Kind enumerates the supported pixel element types.
type Kind int

const (
	// KindInvalid marks a type outside the supported element set.
	KindInvalid Kind = iota
	// KindUint8 is an 8-bit unsigned sample.
	KindUint8
	// KindUint16 is a 16-bit unsigned sample.
	KindUint16
	// KindUint32 is a 32-bit unsigned sample.
	KindUint32
	// KindUint64 is a 64-bit unsigned sample.
	KindUint64
	// KindInt8 is an 8-bit signed sample.
	KindInt8
	// KindInt16 is a 16-bit signed sample.
	KindInt16
	// KindInt32 is a 32-bit signed sample.
	KindInt32
	// KindInt64 is a 64-bit signed sample.
	KindInt64
	// KindFloat32 is a 32-bit floating-point sample.
	KindFloat32
	// KindFloat64 is a 64-bit floating-point sample.
	KindFloat64

	kindCount
)

var kindNames = [kindCount]string{
	"Invalid",
	"Uint8", "Uint16", "Uint32", "Uint64",
	"Int8", "Int16", "Int32", "Int64",
	"Float32", "Float64",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Invalid"
	}
	return kindNames[k]
}

// commonKind is the usual-arithmetic-conversion table. Row and column
// are operand kinds; the entry is the promoted result kind. The table
// is symmetric and idempotent on the diagonal (asserted by tests).
var commonKind = [kindCount][kindCount]Kind{
	KindUint8: {
		KindUint8: KindUint8, KindUint16: KindUint16, KindUint32: KindUint32, KindUint64: KindUint64,
		KindInt8: KindInt16, KindInt16: KindInt16, KindInt32: KindInt32, KindInt64: KindInt64,
		KindFloat32: KindFloat32, KindFloat64: KindFloat64,
	},
	KindUint16: {
		KindUint8: KindUint16, KindUint16: KindUint16, KindUint32: KindUint32, KindUint64: KindUint64,
		KindInt8: KindInt32, KindInt16: KindInt32, KindInt32: KindInt32, KindInt64: KindInt64,
		KindFloat32: KindFloat32, KindFloat64: KindFloat64,
	},
	KindUint32: {
		KindUint8: KindUint32, KindUint16: KindUint32, KindUint32: KindUint32, KindUint64: KindUint64,
		KindInt8: KindInt64, KindInt16: KindInt64, KindInt32: KindInt64, KindInt64: KindInt64,
		KindFloat32: KindFloat64, KindFloat64: KindFloat64,
	},
	KindUint64: {
		KindUint8: KindUint64, KindUint16: KindUint64, KindUint32: KindUint64, KindUint64: KindUint64,
		KindInt8: KindFloat64, KindInt16: KindFloat64, KindInt32: KindFloat64, KindInt64: KindFloat64,
		KindFloat32: KindFloat64, KindFloat64: KindFloat64,
	},
	KindInt8: {
		KindUint8: KindInt16, KindUint16: KindInt32, KindUint32: KindInt64, KindUint64: KindFloat64,
		KindInt8: KindInt8, KindInt16: KindInt16, KindInt32: KindInt32, KindInt64: KindInt64,
		KindFloat32: KindFloat32, KindFloat64: KindFloat64,
	},
	KindInt16: {
		KindUint8: KindInt16, KindUint16: KindInt32, KindUint32: KindInt64, KindUint64: KindFloat64,
		KindInt8: KindInt16, KindInt16: KindInt16, KindInt32: KindInt32, KindInt64: KindInt64,
		KindFloat32: KindFloat32, KindFloat64: KindFloat64,
	},
	KindInt32: {
		KindUint8: KindInt32, KindUint16: KindInt32, KindUint32: KindInt64, KindUint64: KindFloat64,
		KindInt8: KindInt32, KindInt16: KindInt32, KindInt32: KindInt32, KindInt64: KindInt64,
		KindFloat32: KindFloat64, KindFloat64: KindFloat64,
	},
	KindInt64: {
		KindUint8: KindInt64, KindUint16: KindInt64, KindUint32: KindInt64, KindUint64: KindFloat64,
		KindInt8: KindInt64, KindInt16: KindInt64, KindInt32: KindInt64, KindInt64: KindInt64,
		KindFloat32: KindFloat64, KindFloat64: KindFloat64,
	},
	KindFloat32: {
		KindUint8: KindFloat32, KindUint16: KindFloat32, KindUint32: KindFloat64, KindUint64: KindFloat64,
		KindInt8: KindFloat32, KindInt16: KindFloat32, KindInt32: KindFloat64, KindInt64: KindFloat64,
		KindFloat32: KindFloat32, KindFloat64: KindFloat64,
	},
	KindFloat64: {
		KindUint8: KindFloat64, KindUint16: KindFloat64, KindUint32: KindFloat64, KindUint64: KindFloat64,
		KindInt8: KindFloat64, KindInt16: KindFloat64, KindInt32: KindFloat64, KindInt64: KindFloat64,
		KindFloat32: KindFloat64, KindFloat64: KindFloat64,
	},
}

// Common returns the promoted result kind for a mixed-type operation
// between elements of kind a and kind b, or KindInvalid if either
// operand kind is invalid.
// Complexity: O(1).
func Common(a, b Kind) Kind {
	if a <= KindInvalid || a >= kindCount || b <= KindInvalid || b >= kindCount {
		return KindInvalid
	}
	return commonKind[a][b]
}

// KindOf reports the Kind of the element type T. Named types are
// resolved through their underlying type; the platform-sized int, uint
// and uintptr map onto their fixed-width equivalents.
// Complexity: O(1).
func KindOf[T Scalar]() Kind {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Int:
		if bits.UintSize == 32 {
			return KindInt32
		}
		return KindInt64
	case reflect.Uint, reflect.Uintptr:
		if bits.UintSize == 32 {
			return KindUint32
		}
		return KindUint64
	default:
		return KindInvalid
	}
}
