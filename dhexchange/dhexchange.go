// Package dhexchange implements the Diffie-Hellman key-exchange driver
// supplementing the core factoring/RSA scope: it consumes only the
// modpow, primality, primitive-root, and random-generation primitives.
package dhexchange

import (
	"unicode"

	"github.com/pkg/errors"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/internal/seedrand"
	"github.com/vkuznetsov/bigrsa/primality"
	"github.com/vkuznetsov/bigrsa/primroot"
	"github.com/vkuznetsov/bigrsa/randgen"
)

// MaxSharedPrimeDigits bounds how long a caller-supplied shared prime may
// be before the primality test is rejected as too slow.
const MaxSharedPrimeDigits = 100

// src is a package-local math/rand source seeded from crypto/rand once
// at init time, so the generated shared-prime and secret lengths don't
// repeat on every process run the way the global math/rand source would
// pre-Go 1.20.
var src = seedrand.New()

// Result carries every value produced by one Diffie-Hellman run, win or
// lose - callers inspect Success rather than relying on an error to learn
// whether the two peers agree.
type Result struct {
	SharedPrime *bignum.BigInt
	SharedBase  *bignum.BigInt
	SecretA     *bignum.BigInt
	SecretB     *bignum.BigInt
	PackageAToB *bignum.BigInt
	PackageBToA *bignum.BigInt
	ResultA     *bignum.BigInt
	ResultB     *bignum.BigInt
	Success     bool
}

type parameters struct {
	sharedPrime *bignum.BigInt
	sharedBase  *bignum.BigInt
	secretA     *bignum.BigInt
	secretB     *bignum.BigInt
}

// Exchange runs the Diffie-Hellman key agreement. Each of sharedPrime,
// sharedBase, secretA, secretB is an optional numeric-string parameter: a
// nil pointer means "generate a value for me", following the same
// fallback rules as the reference driver.
func Exchange(sharedPrime, sharedBase, secretA, secretB *string) (*Result, error) {
	params, err := checkParameters(sharedPrime, sharedBase, secretA, secretB)
	if err != nil {
		return nil, err
	}

	packageAToB := params.sharedBase.ModPow(params.secretA, params.sharedPrime)
	packageBToA := params.sharedBase.ModPow(params.secretB, params.sharedPrime)
	resultA := packageBToA.ModPow(params.secretA, params.sharedPrime)
	resultB := packageAToB.ModPow(params.secretB, params.sharedPrime)

	return &Result{
		SharedPrime: params.sharedPrime,
		SharedBase:  params.sharedBase,
		SecretA:     params.secretA,
		SecretB:     params.secretB,
		PackageAToB: packageAToB,
		PackageBToA: packageBToA,
		ResultA:     resultA,
		ResultB:     resultB,
		Success:     resultA.Equal(resultB),
	}, nil
}

func checkParameters(sharedPrime, sharedBase, secretA, secretB *string) (*parameters, error) {
	prime, err := resolveSharedPrime(sharedPrime)
	if err != nil {
		return nil, err
	}

	base, err := resolveSharedBase(sharedBase, prime)
	if err != nil {
		return nil, err
	}

	a, err := resolveSecret(secretA, "A")
	if err != nil {
		return nil, err
	}

	b, err := resolveSecret(secretB, "B")
	if err != nil {
		return nil, err
	}

	return &parameters{sharedPrime: prime, sharedBase: base, secretA: a, secretB: b}, nil
}

func resolveSharedPrime(raw *string) (*bignum.BigInt, error) {
	if raw == nil {
		length := 5 + src.Intn(6) // [5, 10]
		return randgen.Prime(length), nil
	}

	if !isNumeric(*raw) {
		return nil, errors.New("dhexchange: shared prime must be a prime number with length under 100")
	}
	candidate := bignum.FromString(*raw)
	length := len(candidate.Digits())
	if length > MaxSharedPrimeDigits {
		return nil, errors.New("dhexchange: shared prime length exceeds 100, primality test would take too long")
	}

	if !primality.IsPrimeProbabilistic(candidate, trialsForLength(length)) {
		return nil, errors.New("dhexchange: shared prime must be a prime number with length under 100")
	}
	return candidate, nil
}

func resolveSharedBase(raw *string, prime *bignum.BigInt) (*bignum.BigInt, error) {
	if raw == nil {
		return primroot.New(prime), nil
	}

	if !isNumeric(*raw) {
		return nil, errors.New("dhexchange: shared base must be a primitive root of the shared prime")
	}
	candidate := bignum.FromString(*raw)
	if !primroot.IsPrimitiveRoot(candidate, prime) {
		return nil, errors.New("dhexchange: shared base is not a primitive root of the shared prime")
	}
	return candidate, nil
}

func resolveSecret(raw *string, peer string) (*bignum.BigInt, error) {
	if raw == nil {
		length := 500 + src.Intn(501) // [500, 1000]
		return randgen.Fixed(length, bignum.Positive), nil
	}

	if !isNumeric(*raw) {
		return nil, errors.Errorf("dhexchange: secret value for peer %s must be a positive number", peer)
	}
	return bignum.FromString(*raw), nil
}

// trialsForLength scales the Miller-Rabin trial count down as the
// candidate's decimal length grows, since each trial gets proportionally
// more expensive: <25 digits -> 20 trials, 25-49 -> 10, 50-74 -> 3,
// 75-100 -> 1.
func trialsForLength(length int) int {
	switch {
	case length < 25:
		return 20
	case length < 50:
		return 10
	case length < 75:
		return 3
	default:
		return 1
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
