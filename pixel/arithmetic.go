package pixel

// Element-wise arithmetic over pixels. Pure forms (Add, Sub, Mul, Div,
// AddScalar, …, Neg) allocate a fresh result and leave both operands
// unmodified; compound forms (AddAssign, …) mutate the receiver's
// storage and return the receiver for chaining.
//
// All loops are deterministic single passes over the channel count with
// no short-circuiting. Overflow, underflow and division follow the
// element type's native Go semantics and are never reported as errors;
// in particular integer division by zero panics like any Go integer
// division, and float division by zero yields ±Inf or NaN.

// binOp applies op element-wise to two shape- and format-compatible
// pixels, producing a new pixel tagged with the more specific format.
func binOp[T Scalar](p, q Pixel[T], op func(a, b T) T) (Pixel[T], error) {
	if len(p.samples) != len(q.samples) {
		return Pixel[T]{}, ErrShapeMismatch
	}
	if !Compatible(p.format, q.format) {
		return Pixel[T]{}, ErrFormatMismatch
	}
	data := make([]T, len(p.samples))
	for i := range p.samples {
		data[i] = op(p.samples[i], q.samples[i])
	}
	return Pixel[T]{format: mergeFormat(p.format, q.format), samples: data}, nil
}

// binAssign applies op element-wise in place on p's storage.
func binAssign[T Scalar](p, q Pixel[T], op func(a, b T) T) (Pixel[T], error) {
	if len(p.samples) != len(q.samples) {
		return Pixel[T]{}, ErrShapeMismatch
	}
	if !Compatible(p.format, q.format) {
		return Pixel[T]{}, ErrFormatMismatch
	}
	for i := range p.samples {
		p.samples[i] = op(p.samples[i], q.samples[i])
	}
	return p, nil
}

// scalarOp applies op against a scalar element-wise, producing a new pixel.
func scalarOp[T Scalar](p Pixel[T], s T, op func(a, b T) T) Pixel[T] {
	data := make([]T, len(p.samples))
	for i := range p.samples {
		data[i] = op(p.samples[i], s)
	}
	return Pixel[T]{format: p.format, samples: data}
}

// Add returns p + q element-wise.
// Complexity: O(N).
func (p Pixel[T]) Add(q Pixel[T]) (Pixel[T], error) {
	return binOp(p, q, func(a, b T) T { return a + b })
}

// Sub returns p - q element-wise.
// Complexity: O(N).
func (p Pixel[T]) Sub(q Pixel[T]) (Pixel[T], error) {
	return binOp(p, q, func(a, b T) T { return a - b })
}

// Mul returns p * q element-wise.
// Complexity: O(N).
func (p Pixel[T]) Mul(q Pixel[T]) (Pixel[T], error) {
	return binOp(p, q, func(a, b T) T { return a * b })
}

// Div returns p / q element-wise.
// Complexity: O(N).
func (p Pixel[T]) Div(q Pixel[T]) (Pixel[T], error) {
	return binOp(p, q, func(a, b T) T { return a / b })
}

// AddAssign adds q into p's storage and returns p for chaining.
// Complexity: O(N).
func (p Pixel[T]) AddAssign(q Pixel[T]) (Pixel[T], error) {
	return binAssign(p, q, func(a, b T) T { return a + b })
}

// SubAssign subtracts q from p's storage and returns p for chaining.
// Complexity: O(N).
func (p Pixel[T]) SubAssign(q Pixel[T]) (Pixel[T], error) {
	return binAssign(p, q, func(a, b T) T { return a - b })
}

// MulAssign multiplies q into p's storage and returns p for chaining.
// Complexity: O(N).
func (p Pixel[T]) MulAssign(q Pixel[T]) (Pixel[T], error) {
	return binAssign(p, q, func(a, b T) T { return a * b })
}

// DivAssign divides p's storage by q and returns p for chaining.
// Complexity: O(N).
func (p Pixel[T]) DivAssign(q Pixel[T]) (Pixel[T], error) {
	return binAssign(p, q, func(a, b T) T { return a / b })
}

// AddScalar returns p with s added to every sample.
// Complexity: O(N).
func (p Pixel[T]) AddScalar(s T) Pixel[T] {
	return scalarOp(p, s, func(a, b T) T { return a + b })
}

// SubScalar returns p with s subtracted from every sample.
// Complexity: O(N).
func (p Pixel[T]) SubScalar(s T) Pixel[T] {
	return scalarOp(p, s, func(a, b T) T { return a - b })
}

// MulScalar returns p with every sample multiplied by s.
// Complexity: O(N).
func (p Pixel[T]) MulScalar(s T) Pixel[T] {
	return scalarOp(p, s, func(a, b T) T { return a * b })
}

// DivScalar returns p with every sample divided by s.
// Complexity: O(N).
func (p Pixel[T]) DivScalar(s T) Pixel[T] {
	return scalarOp(p, s, func(a, b T) T { return a / b })
}

// AddScalarAssign adds s to every sample in place and returns p.
// Complexity: O(N).
func (p Pixel[T]) AddScalarAssign(s T) Pixel[T] {
	for i := range p.samples {
		p.samples[i] += s
	}
	return p
}

// SubScalarAssign subtracts s from every sample in place and returns p.
// Complexity: O(N).
func (p Pixel[T]) SubScalarAssign(s T) Pixel[T] {
	for i := range p.samples {
		p.samples[i] -= s
	}
	return p
}

// MulScalarAssign multiplies every sample by s in place and returns p.
// Complexity: O(N).
func (p Pixel[T]) MulScalarAssign(s T) Pixel[T] {
	for i := range p.samples {
		p.samples[i] *= s
	}
	return p
}

// DivScalarAssign divides every sample by s in place and returns p.
// Complexity: O(N).
func (p Pixel[T]) DivScalarAssign(s T) Pixel[T] {
	for i := range p.samples {
		p.samples[i] /= s
	}
	return p
}

// Neg returns the element-wise negation of p. For unsigned element
// types this wraps, matching native Go negation.
// Complexity: O(N).
func (p Pixel[T]) Neg() Pixel[T] {
	data := make([]T, len(p.samples))
	for i, v := range p.samples {
		data[i] = -v
	}
	return Pixel[T]{format: p.format, samples: data}
}
