package primality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkuznetsov/bigrsa/bignum"
)

func TestIsPrimeSmall(t *testing.T) {
	primesUnder50 := map[int64]bool{
		0: false, 1: false, 2: true, 3: true, 4: false, 5: true,
		6: false, 7: true, 8: false, 9: false, 17: true, 18: false,
		19: true, 23: true, 24: false, 37: true, 49: false,
	}
	for n, want := range primesUnder50 {
		assert.Equal(t, want, IsPrime(bignum.FromInt64(n)), "n=%d", n)
	}
}

func TestIsPrimeLargerComposite(t *testing.T) {
	assert.False(t, IsPrime(bignum.FromInt64(9991))) // 97 * 103
	assert.True(t, IsPrime(bignum.FromInt64(9973)))  // largest 4-digit prime
}

func TestIsPrimeProbabilisticAgreesWithDeterministic(t *testing.T) {
	for n := int64(-2); n < 200; n++ {
		nb := bignum.FromInt64(n)
		assert.Equal(t, IsPrime(nb), IsPrimeProbabilistic(nb, 20), "n=%d", n)
	}
}

func TestIsCoprime(t *testing.T) {
	assert.True(t, IsCoprime(bignum.FromInt64(35), bignum.FromInt64(12)))
	assert.False(t, IsCoprime(bignum.FromInt64(35), bignum.FromInt64(14)))
	assert.True(t, IsCoprime(bignum.FromInt64(1), bignum.FromInt64(99)))
}
