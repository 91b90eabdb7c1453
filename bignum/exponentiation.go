package bignum

var two = FromInt64(2)

// Pow returns base^exponent via iterative binary squaring. A zero base
// yields zero; an exponent of zero yields one; an exponent of one yields
// the base; a negative exponent yields zero (documented simplification:
// callers in this module never produce negative exponents, so there is no
// modular inverse fallback to maintain).
func (base *BigInt) Pow(exponent *BigInt) *BigInt {
	if base.IsZero() {
		return NewZero()
	}
	if exponent.IsZero() {
		return one.Clone()
	}
	if exponent.Equal(one) {
		return base.Clone()
	}
	if exponent.sign == Negative {
		return NewZero()
	}

	result := one.Clone()
	b := base.Clone()
	e := exponent.Clone()
	for e.sign == Positive {
		if isOdd(e) {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		e = e.Div(two)
	}
	return result
}

// ModPow returns base^exponent mod modulus without materializing
// base^exponent, via right-to-left binary exponentiation. Same zero/one/
// negative-exponent conventions as Pow.
func (base *BigInt) ModPow(exponent, modulus *BigInt) *BigInt {
	if base.IsZero() {
		return NewZero()
	}
	if exponent.IsZero() {
		return one.Clone()
	}
	if exponent.sign == Negative {
		return NewZero()
	}

	result := one.Clone()
	b := base.Mod(modulus)
	e := exponent.Clone()
	for e.sign == Positive {
		if isOdd(e) {
			result = result.Mul(b).Mod(modulus)
		}
		b = b.Mul(b).Mod(modulus)
		e = e.Div(two)
	}
	return result
}

func isOdd(v *BigInt) bool {
	if v.IsZero() {
		return false
	}
	return v.digits[0]%2 == 1
}
