// Package factor implements trial-division factorization over
// bignum.BigInt: all factors of a number, its prime factors, and the
// two-prime search used to break an RSA modulus.
package factor

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/primality"
)

var (
	one    = bignum.FromInt64(1)
	negOne = bignum.FromInt64(-1)
	two    = bignum.FromInt64(2)
)

// All returns every positive divisor of n, plus their negations when n is
// negative, sorted ascending. Zero yields nil; ±1 yields only itself; a
// prime (or the negation of a prime) yields nil, signalling that it has
// no non-trivial factorization.
func All(n *bignum.BigInt) []*bignum.BigInt {
	if n.IsZero() {
		return nil
	}
	if n.Equal(one) {
		return []*bignum.BigInt{one.Clone()}
	}
	if n.Equal(negOne) {
		return []*bignum.BigInt{negOne.Clone()}
	}

	abs := n.Abs()
	if primality.IsPrimeProbabilistic(abs, 20) {
		return nil
	}

	var list []*bignum.BigInt
	var candidate, step *bignum.BigInt

	list = append(list, one.Clone())
	if n.Mod(two).IsZero() {
		list = append(list, two.Clone())
		list = append(list, n.Div(two))
		list = append(list, n.Clone())
		candidate = bignum.FromInt64(3)
		step = one.Clone()
	} else {
		list = append(list, n.Clone())
		candidate = bignum.FromInt64(3)
		step = two.Clone()
	}

	for candidate.Mul(candidate).Cmp(abs) <= 0 {
		if n.Mod(candidate).IsZero() {
			list = append(list, candidate.Clone())
			other := n.Div(candidate)
			if !other.Equal(candidate) {
				list = append(list, other)
			}
		}
		candidate = candidate.Add(step)
	}

	if n.Sign() == bignum.Negative {
		negated := make([]*bignum.BigInt, len(list))
		for i, f := range list {
			negated[i] = f.Neg()
		}
		list = append(list, negated...)
	}

	sortBigInts(list)
	return list
}

// PrimeFactors returns the multiset of prime factors of a composite n in
// ascending order (e.g. 12 -> [2, 2, 3]). Negative n, zero and a prime n
// yield nil; 1 yields [1].
func PrimeFactors(n *bignum.BigInt) []*bignum.BigInt {
	if n.Sign() == bignum.Negative {
		return nil
	}
	if n.IsZero() {
		return nil
	}
	if n.Equal(one) {
		return []*bignum.BigInt{one.Clone()}
	}
	if primality.IsPrimeProbabilistic(n, 20) {
		return nil
	}

	var list []*bignum.BigInt
	target := n.Clone()

	for target.Mod(two).IsZero() {
		list = append(list, two.Clone())
		target = target.Div(two)
	}

	candidate := bignum.FromInt64(3)
	for candidate.Mul(candidate).Cmp(target) <= 0 {
		for target.Mod(candidate).IsZero() {
			list = append(list, candidate.Clone())
			target = target.Div(candidate)
		}
		candidate = candidate.Add(two)
	}

	if target.Cmp(two) > 0 {
		list = append(list, target)
	}
	return list
}

// RSAModulus factors n, assumed to be the product of exactly two primes,
// by trial division starting from startPoint and stepping by 2 (after
// nudging an even start to odd). It panics if startPoint is not a positive
// BigInt, or if n is not a positive composite number - these are
// precondition violations on the caller's part, not search failures.
func RSAModulus(n, startPoint *bignum.BigInt) []*bignum.BigInt {
	if startPoint.IsZero() || startPoint.Sign() == bignum.Negative {
		panic(errors.New("factor: RSAModulus start point must be a positive integer"))
	}
	if n.IsZero() || n.Equal(one) || n.Equal(two) || primality.IsPrimeProbabilistic(n, 20) {
		panic(errors.New("factor: RSAModulus target must be a positive composite integer"))
	}

	if n.Mod(two).IsZero() {
		second := n.Div(two)
		if primality.IsPrimeProbabilistic(second, 20) {
			list := []*bignum.BigInt{two.Clone(), second}
			sortBigInts(list)
			return list
		}
	}

	candidate := startPoint.Clone()
	if startPoint.Mod(two).IsZero() {
		candidate = candidate.Add(one)
	}

	abs := n.Abs()
	for candidate.Mul(candidate).Cmp(abs) <= 0 {
		if !primality.IsPrimeProbabilistic(candidate, 10) {
			candidate = candidate.Add(two)
			continue
		}
		if n.Mod(candidate).IsZero() {
			other := n.Div(candidate)
			if !primality.IsPrimeProbabilistic(other, 20) {
				panic(errors.New("factor: RSAModulus found a composite co-factor - the supplied modulus is not a product of two primes"))
			}
			list := []*bignum.BigInt{candidate, other}
			sortBigInts(list)
			return list
		}
		candidate = candidate.Add(two)
	}
	return nil
}

func sortBigInts(list []*bignum.BigInt) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Less(list[j])
	})
}
