// Package randgen generates random bignum.BigInt values: fixed length,
// length range, value range, and random primes of a given length. All
// digit draws use crypto/rand, since the values produced here back
// cryptographic secret material (RSA primes, private exponents, DH
// secrets).
package randgen

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/primality"
)

// DefaultPrimeTrials is the Miller-Rabin trial count used while searching
// for a random prime of a requested length - kept small since each
// candidate is retested by the caller if stronger assurance is needed.
const DefaultPrimeTrials = 5

// Fixed draws a BigInt with exactly `length` decimal digits and the
// requested sign. Panics if length is 0 or sign is bignum.Zero.
func Fixed(length int, sign bignum.Sign) *bignum.BigInt {
	if length <= 0 {
		panic(errors.New("randgen: requested length is 0, nothing to generate"))
	}
	if sign == bignum.Zero {
		panic(errors.New("randgen: zero is not randomly generated"))
	}

	digits := make([]int8, length)
	for i := 0; i < length-1; i++ {
		digits[i] = randDigit(0, 9)
	}
	digits[length-1] = randDigit(1, 9)

	return signed(bignum.FromDigits(digits), sign)
}

// RangeLength draws a BigInt whose length is uniformly chosen in
// [minLen, maxLen] (inclusive), then filled per Fixed. Panics if either
// bound is 0 or minLen > maxLen.
func RangeLength(minLen, maxLen int, sign bignum.Sign) *bignum.BigInt {
	if minLen <= 0 || maxLen <= 0 {
		panic(errors.New("randgen: length range boundary is zero, nothing to generate"))
	}
	if minLen > maxLen {
		panic(errors.New("randgen: length range start must be <= end"))
	}

	length := minLen
	if maxLen > minLen {
		length = minLen + int(randUint64(uint64(maxLen-minLen+1)))
	}
	return Fixed(length, sign)
}

// RangeValue draws a BigInt in [lo, hi] inclusive by rejection sampling,
// then applies the requested sign. Each draw picks a length uniformly
// between the digit counts of lo and hi, so values are not uniform over
// [lo, hi] when those counts differ. Panics if either bound is
// non-positive or lo >= hi.
func RangeValue(lo, hi *bignum.BigInt, sign bignum.Sign) *bignum.BigInt {
	if lo.IsZero() || hi.IsZero() || lo.Sign() == bignum.Negative || hi.Sign() == bignum.Negative {
		panic(errors.New("randgen: range boundary is zero or negative, nothing to generate"))
	}
	if !lo.Less(hi) {
		panic(errors.New("randgen: range start must be strictly less than end"))
	}
	if sign == bignum.Zero {
		panic(errors.New("randgen: zero is not randomly generated"))
	}

	minLen := len(lo.Digits())
	maxLen := len(hi.Digits())
	for {
		candidate := RangeLength(minLen, maxLen, bignum.Positive)
		if !candidate.Less(lo) && !hi.Less(candidate) {
			return signed(candidate, sign)
		}
	}
}

// Prime draws a random positive prime BigInt with exactly `length` decimal
// digits, retrying until probabilistic primality (with DefaultPrimeTrials
// rounds) accepts. For length 1, it samples uniformly from {2, 3, 5, 7}
// rather than retrying a full single-digit draw, which would otherwise
// reject 6 out of 10 candidates.
func Prime(length int) *bignum.BigInt {
	if length <= 0 {
		panic(errors.New("randgen: requested length is 0, nothing to generate"))
	}
	if length == 1 {
		singleDigitPrimes := []int64{2, 3, 5, 7}
		return bignum.FromInt64(singleDigitPrimes[randUint64(4)])
	}

	for {
		digits := make([]int8, length)
		digits[0] = oddDigit()
		for i := 1; i < length-1; i++ {
			digits[i] = randDigit(0, 9)
		}
		digits[length-1] = randDigit(1, 9)

		candidate := bignum.FromDigits(digits)
		if primality.IsPrimeProbabilistic(candidate, DefaultPrimeTrials) {
			return candidate
		}
	}
}

func signed(v *bignum.BigInt, sign bignum.Sign) *bignum.BigInt {
	if sign == bignum.Negative {
		return v.Neg()
	}
	return v
}

func oddDigit() int8 {
	odds := []int8{1, 3, 5, 7, 9}
	return odds[randUint64(5)]
}

func randDigit(lo, hi int8) int8 {
	span := uint64(hi-lo) + 1
	return lo + int8(randUint64(span))
}

// randUint64 returns a cryptographically random value in [0, n).
func randUint64(n uint64) uint64 {
	v, err := rand.Int(rand.Reader, new(big.Int).SetUint64(n))
	if err != nil {
		panic(errors.Wrap(err, "randgen: entropy source failure"))
	}
	return v.Uint64()
}
