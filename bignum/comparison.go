package bignum

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b,
// following the total order Negative < Zero < Positive, and within equal
// signs by digit-count then digit-wise from the most
// significant digit down (with the comparison direction flipped for
// Negative operands, since a larger magnitude negative is the lesser
// value).
func (a *BigInt) Cmp(b *BigInt) int {
	if a.IsZero() && b.IsZero() {
		return 0
	}
	if a.sign != b.sign {
		if a.sign < b.sign {
			return -1
		}
		return 1
	}
	magCmp := cmpAbs(a.digits, b.digits)
	if a.sign == Negative {
		return -magCmp
	}
	return magCmp
}

// cmpAbs compares two little-endian digit vectors (assumed already
// normalized) purely by magnitude.
func cmpAbs(a, b []int8) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b represent the same value.
func (a *BigInt) Equal(b *BigInt) bool {
	return a.Cmp(b) == 0
}

// Less reports whether a < b.
func (a *BigInt) Less(b *BigInt) bool {
	return a.Cmp(b) < 0
}
