package randgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/primality"
)

func TestFixed(t *testing.T) {
	v := Fixed(10, bignum.Positive)
	assert.Equal(t, bignum.Positive, v.Sign())
	assert.Len(t, v.Digits(), 10)

	neg := Fixed(5, bignum.Negative)
	assert.Equal(t, bignum.Negative, neg.Sign())
	assert.Len(t, neg.Digits(), 5)
}

func TestFixedPanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { Fixed(0, bignum.Positive) })
	assert.Panics(t, func() { Fixed(5, bignum.Zero) })
}

func TestRangeLength(t *testing.T) {
	for i := 0; i < 20; i++ {
		v := RangeLength(1, 12, bignum.Positive)
		assert.GreaterOrEqual(t, len(v.Digits()), 1)
		assert.LessOrEqual(t, len(v.Digits()), 12)
	}
}

func TestRangeValue(t *testing.T) {
	lo := bignum.FromInt64(1)
	hi := bignum.FromInt64(1234567)
	for i := 0; i < 20; i++ {
		v := RangeValue(lo, hi, bignum.Positive)
		assert.False(t, v.Less(lo))
		assert.False(t, hi.Less(v))
	}
}

func TestPrime(t *testing.T) {
	p1 := Prime(1)
	assert.True(t, primality.IsPrime(p1))

	p5 := Prime(5)
	assert.Len(t, p5.Digits(), 5)
	assert.True(t, primality.IsPrimeProbabilistic(p5, 20))
}
