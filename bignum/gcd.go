package bignum

// EGCDResult is the triple (gcd, x, y) produced by ExtGCD such that
// self*x + other*y = gcd.
type EGCDResult struct {
	Gcd *BigInt
	X   *BigInt
	Y   *BigInt
}

// GCD returns the greatest common divisor of a and b. If either operand
// is zero, the absolute value of the other is returned. Otherwise this is
// the iterative Euclidean algorithm over absolute values.
func (a *BigInt) GCD(b *BigInt) *BigInt {
	if a.IsZero() {
		return b.Abs()
	}
	if b.IsZero() {
		return a.Abs()
	}
	x := a.Abs()
	y := b.Abs()
	for {
		if x.Less(y) {
			x, y = y, x
			continue
		}
		r := x.Mod(y)
		if r.IsZero() {
			return y
		}
		x, y = y, r
	}
}

// Abs returns the absolute value of a.
func (a *BigInt) Abs() *BigInt {
	if a.sign == Negative {
		return a.Neg()
	}
	return a.Clone()
}

// ExtGCD returns (gcd, x, y) with a*x + b*y = gcd via the iterative
// extended Euclidean algorithm over absolute values. If either input is
// zero, the result is (other, 0, 1). Sign handling of x and y for
// negative inputs is left undefined by this package — rsacipher only
// ever calls ExtGCD with positive operands (e and φ(n)).
func (a *BigInt) ExtGCD(b *BigInt) *EGCDResult {
	if a.IsZero() {
		return &EGCDResult{Gcd: b.Clone(), X: NewZero(), Y: one.Clone()}
	}
	if b.IsZero() {
		return &EGCDResult{Gcd: a.Clone(), X: NewZero(), Y: one.Clone()}
	}

	oldR, r := a.Abs(), b.Abs()
	oldX, x := one.Clone(), NewZero()
	oldY, y := NewZero(), one.Clone()

	for !r.IsZero() {
		quotient := oldR.Div(r)

		oldR, r = r, oldR.Sub(quotient.Mul(r))
		oldX, x = x, oldX.Sub(quotient.Mul(x))
		oldY, y = y, oldY.Sub(quotient.Mul(y))
	}

	return &EGCDResult{Gcd: oldR, X: oldX, Y: oldY}
}
