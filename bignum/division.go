package bignum

// DivMod returns (a/b, a mod b) together, since both are computed from
// the same digit-by-digit long division pass. The quotient's sign is the
// product of the operand signs; the remainder is a floor-modulo whose
// sign matches the divisor — this is the single most important
// convention in the whole package: GCD, primality and RSA all assume it.
func (a *BigInt) DivMod(b *BigInt) (quotient, remainder *BigInt) {
	if b.IsZero() {
		precondPanicDivZero()
	}
	if a.IsZero() {
		return NewZero(), NewZero()
	}

	qSign := Positive
	if a.sign != b.sign {
		qSign = Negative
	}

	switch cmpAbs(a.digits, b.digits) {
	case -1:
		// |a| < |b|: remainder is a if signs agree (quotient zero), or
		// a+b if signs differ (quotient -1, since a/b then lies strictly
		// between -1 and 0 and floor division rounds down to -1).
		if a.sign == b.sign {
			return NewZero(), a.Clone()
		}
		return negOne.Clone(), a.Add(b)
	case 0:
		q := &BigInt{sign: qSign, digits: []int8{1}}
		return q, NewZero()
	}

	qDigits, rDigits := divModAbs(a.digits, b.digits)
	q := &BigInt{sign: qSign, digits: qDigits}
	q.normalize()

	rem := &BigInt{sign: Positive, digits: rDigits}
	rem.normalize()
	if !rem.IsZero() {
		switch {
		case a.sign == Negative && b.sign == Positive:
			// Truncated quotient rounds toward zero; floor division of a
			// negative-over-positive non-exact ratio rounds one further
			// down, so the quotient needs the same -1 correction the
			// remainder gets.
			rem = rem.Neg().Add(b)
			q = q.Sub(one)
		case a.sign == Positive && b.sign == Negative:
			rem = rem.Add(b)
			q = q.Sub(one)
		case a.sign == Negative && b.sign == Negative:
			rem = rem.Neg()
		}
	}
	return q, rem
}

// Div returns the quotient of a/b (see DivMod).
func (a *BigInt) Div(b *BigInt) *BigInt {
	q, _ := a.DivMod(b)
	return q
}

// Mod returns the floor-modulo remainder of a and b (see DivMod).
func (a *BigInt) Mod(b *BigInt) *BigInt {
	_, r := a.DivMod(b)
	return r
}

func precondPanicDivZero() {
	precondPanic("%s", ErrDivideByZero.Error())
}

// divModAbs performs schoolbook long division of two normalized,
// little-endian magnitude vectors where |a| > |b| > 0, processing one
// digit of a at a time from most to least significant and searching the
// single quotient digit 0..=9 that satisfies q*b <= running remainder <
// (q+1)*b, via direct trial-digit search rather than an
// estimate-then-decrement subroutine.
func divModAbs(a, b []int8) (quotient, remainder []int8) {
	n := len(a)
	quotientBE := make([]int8, n)
	var rem []int8
	for i := n - 1; i >= 0; i-- {
		rem = mulBy10(rem)
		rem = addAbs(rem, []int8{a[i]})
		q := findQuotientDigit(rem, b)
		quotientBE[n-1-i] = q
		if q > 0 {
			rem = subAbs(rem, mulAbs(b, []int8{q}))
			rem = trimMag(rem)
		}
	}
	quotient = reverseDigits(quotientBE)
	quotient = trimMag(quotient)
	remainder = trimMag(rem)
	return quotient, remainder
}

// findQuotientDigit returns the largest q in 0..=9 with q*b <= rem.
func findQuotientDigit(rem, b []int8) int8 {
	for q := int8(9); q >= 1; q-- {
		candidate := mulAbs(b, []int8{q})
		if cmpAbs(candidate, rem) <= 0 {
			return q
		}
	}
	return 0
}

func mulBy10(a []int8) []int8 {
	a = trimMag(a)
	if len(a) == 0 {
		return a
	}
	out := make([]int8, 0, len(a)+1)
	out = append(out, 0)
	out = append(out, a...)
	return out
}

func reverseDigits(a []int8) []int8 {
	out := make([]int8, len(a))
	for i, d := range a {
		out[len(a)-1-i] = d
	}
	return out
}

// trimMag removes trailing (most-significant) zero digits from a
// little-endian magnitude vector.
func trimMag(a []int8) []int8 {
	i := len(a)
	for i > 0 && a[i-1] == 0 {
		i--
	}
	return a[:i]
}
