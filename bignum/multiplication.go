package bignum

var one = FromInt64(1)
var negOne = FromInt64(-1)

// Mul returns a * b: zero shortcuts, +/-1 shortcuts, and otherwise
// schoolbook long multiplication accumulated via addAbs.
func (a *BigInt) Mul(b *BigInt) *BigInt {
	if a.IsZero() || b.IsZero() {
		return NewZero()
	}
	if a.Equal(one) {
		return b.Clone()
	}
	if b.Equal(one) {
		return a.Clone()
	}
	if a.Equal(negOne) {
		return b.Neg()
	}
	if b.Equal(negOne) {
		return a.Neg()
	}

	sign := Positive
	if a.sign != b.sign {
		sign = Negative
	}

	product := mulAbs(a.digits, b.digits)
	r := &BigInt{sign: sign, digits: product}
	r.normalize()
	return r
}

// mulAbs multiplies two little-endian magnitude vectors via schoolbook
// long multiplication: for each digit of b, produce a shifted partial
// product of a and accumulate it into the running sum.
func mulAbs(a, b []int8) []int8 {
	sum := []int8{}
	for i, db := range b {
		if db == 0 {
			continue
		}
		partial := make([]int8, i, i+len(a)+1)
		var carry int8
		for _, da := range a {
			p := da*db + carry
			partial = append(partial, p%10)
			carry = p / 10
		}
		for carry != 0 {
			partial = append(partial, carry%10)
			carry /= 10
		}
		sum = addAbs(sum, partial)
	}
	return sum
}
