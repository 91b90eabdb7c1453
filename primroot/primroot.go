// Package primroot implements primitive-root checking and generation over
// bignum.BigInt. It lives apart from primality to avoid an import cycle:
// checking a primitive root needs the distinct prime factors of p-1, which
// comes from the factor package, which itself depends on primality.
package primroot

import (
	"github.com/pkg/errors"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/factor"
	"github.com/vkuznetsov/bigrsa/internal/seedrand"
	"github.com/vkuznetsov/bigrsa/primality"
)

var one = bignum.FromInt64(1)

// src is a package-local math/rand source seeded from crypto/rand once
// at init time, so candidate search order doesn't inherit the
// deterministic seed the global math/rand source starts with pre-Go 1.20.
var src = seedrand.New()

// IsPrimitiveRoot reports whether g is a primitive root modulo the prime p:
// g^m ≡ 1 (mod p) for m = p-1, and g^(m/q) ≢ 1 (mod p) for every distinct
// prime factor q of m. Panics if g is not positive or p is not prime -
// these are precondition violations on the caller's part.
func IsPrimitiveRoot(g, p *bignum.BigInt) bool {
	requirePositive(g)
	requirePrime(p)

	m := p.Sub(one)
	for _, q := range distinctPrimeFactors(m) {
		if g.ModPow(m.Div(q), p).Equal(one) {
			return false
		}
	}
	return g.ModPow(m, p).Equal(one)
}

// New searches for a primitive root modulo the prime p by drawing uniformly
// random candidates in [2, p-1] and returning the first that passes
// IsPrimitiveRoot. Panics if p is not prime.
func New(p *bignum.BigInt) *bignum.BigInt {
	requirePrime(p)

	m := p.Sub(one)
	factors := distinctPrimeFactors(m)
	two := bignum.FromInt64(2)
	pMinus1 := p.Sub(one)

	for {
		g := randomInRange(two, pMinus1)
		isRoot := true
		for _, q := range factors {
			if g.ModPow(m.Div(q), p).Equal(one) {
				isRoot = false
				break
			}
		}
		if isRoot && g.ModPow(m, p).Equal(one) {
			return g
		}
	}
}

func distinctPrimeFactors(n *bignum.BigInt) []*bignum.BigInt {
	if n.Cmp(one) <= 0 {
		return nil
	}
	all := factor.PrimeFactors(n)
	if len(all) == 0 {
		// PrimeFactors reports nil for a prime n.
		return []*bignum.BigInt{n.Clone()}
	}
	var distinct []*bignum.BigInt
	for _, f := range all {
		isNew := true
		for _, d := range distinct {
			if d.Equal(f) {
				isNew = false
				break
			}
		}
		if isNew {
			distinct = append(distinct, f)
		}
	}
	return distinct
}

func requirePositive(v *bignum.BigInt) {
	if v.Sign() != bignum.Positive {
		panic(errors.New("primroot: candidate must be a positive integer"))
	}
}

func requirePrime(p *bignum.BigInt) {
	if !primality.IsPrimeProbabilistic(p, 20) {
		panic(errors.New("primroot: modulus must be prime"))
	}
}

func randomInRange(lo, hi *bignum.BigInt) *bignum.BigInt {
	span := hi.Sub(lo)
	if span.Sign() != bignum.Positive {
		return lo.Clone()
	}
	digits := span.Digits()
	for {
		candidate := make([]int8, len(digits))
		for i := range candidate {
			candidate[i] = int8(src.Intn(10))
		}
		c := bignum.FromDigits(candidate)
		if c.Cmp(span) <= 0 {
			return lo.Add(c)
		}
	}
}
