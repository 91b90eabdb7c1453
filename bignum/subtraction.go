package bignum

// Neg returns -a. Negation of zero is zero.
func (a *BigInt) Neg() *BigInt {
	if a.IsZero() {
		return NewZero()
	}
	r := a.Clone()
	if r.sign == Positive {
		r.sign = Negative
	} else {
		r.sign = Positive
	}
	return r
}

// Sub returns a - b, dispatching cross-sign cases onto magnitude
// addition/subtraction so the digit-level routines only ever see two
// positive magnitudes.
func (a *BigInt) Sub(b *BigInt) *BigInt {
	if a.IsZero() {
		return b.Neg()
	}
	if b.IsZero() {
		return a.Clone()
	}
	if a.sign == Positive && b.sign == Negative {
		return a.Add(b.Neg())
	}
	if a.sign == Negative && b.sign == Positive {
		return a.Neg().Add(b).Neg()
	}
	if a.sign == Negative && b.sign == Negative {
		return a.Neg().Sub(b.Neg()).Neg()
	}
	// Both positive: compare magnitudes, subtract smaller from larger,
	// sign of the result follows which operand was larger.
	switch cmpAbs(a.digits, b.digits) {
	case 0:
		return NewZero()
	case 1:
		diff := subAbs(a.digits, b.digits)
		r := &BigInt{sign: Positive, digits: diff}
		r.normalize()
		return r
	default:
		diff := subAbs(b.digits, a.digits)
		r := &BigInt{sign: Negative, digits: diff}
		r.normalize()
		return r
	}
}

// subAbs subtracts little-endian magnitude b from little-endian magnitude
// a, where a >= b, and returns the little-endian magnitude of the
// difference.
func subAbs(a, b []int8) []int8 {
	out := make([]int8, 0, len(a))
	var borrow int8
	for i := 0; i < len(a); i++ {
		var db int8
		if i < len(b) {
			db = b[i]
		}
		d := a[i] - db - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out = append(out, d)
	}
	return out
}
