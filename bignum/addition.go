package bignum

// Add returns a + b, dispatching cross-sign cases onto Sub/Neg so that
// the digit-level carry logic only ever has to handle two positive
// magnitudes.
func (a *BigInt) Add(b *BigInt) *BigInt {
	if a.IsZero() {
		return b.Clone()
	}
	if b.IsZero() {
		return a.Clone()
	}
	if a.sign == Positive && b.sign == Negative {
		return a.Sub(b.Neg())
	}
	if a.sign == Negative && b.sign == Positive {
		return b.Sub(a.Neg())
	}
	if a.sign == Negative && b.sign == Negative {
		return a.Neg().Add(b.Neg()).Neg()
	}
	// Both positive: schoolbook digit-by-digit addition with carry.
	sum := addAbs(a.digits, b.digits)
	r := &BigInt{sign: Positive, digits: sum}
	r.normalize()
	return r
}

// addAbs adds two little-endian magnitude vectors and returns the
// little-endian magnitude of their sum.
func addAbs(a, b []int8) []int8 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int8, 0, n+1)
	var carry int8
	for i := 0; i < n; i++ {
		var da, db int8
		if i < len(a) {
			da = a[i]
		}
		if i < len(b) {
			db = b[i]
		}
		s := da + db + carry
		out = append(out, s%10)
		carry = s / 10
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}
