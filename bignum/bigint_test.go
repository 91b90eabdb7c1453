package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStringRoundTrip(t *testing.T) {
	assert.Equal(t, "0", FromString("0").String())
	assert.Equal(t, "0", FromString("-0").String())
	assert.Equal(t, "123", FromString("00123").String())
	assert.Equal(t, "-123", FromString("-123").String())
	assert.Equal(t, "0", FromString("not-a-number").String())
	assert.Equal(t, "0", FromString("").String())
}

func TestFromStringStrict(t *testing.T) {
	v, err := FromStringStrict("42")
	assert.NoError(t, err)
	assert.Equal(t, "42", v.String())

	_, err = FromStringStrict("abcd!")
	assert.Error(t, err)
}

func TestFromDigits(t *testing.T) {
	assert.Equal(t, "321", FromDigits([]int8{1, 2, 3}).String())
	assert.Equal(t, "0", FromDigits([]int8{0, 0, 0}).String())
	assert.Equal(t, "0", FromDigits(nil).String())
}

func TestUint128RoundTrip(t *testing.T) {
	hi, lo := uint64(0x0102030405060708), uint64(0x1112131415161718)
	v := FromUint128(hi, lo)
	gotHi, gotLo := v.Uint128()
	assert.Equal(t, hi, gotHi)
	assert.Equal(t, lo, gotLo)
}

func TestCanonicalZero(t *testing.T) {
	z1 := NewZero()
	z2 := FromInt64(0)
	z3 := FromString("-0")
	assert.True(t, z1.Equal(z2))
	assert.True(t, z2.Equal(z3))
	assert.Equal(t, Zero, z1.Sign())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, FromInt64(-5).Cmp(FromInt64(5)))
	assert.Equal(t, 1, FromInt64(5).Cmp(FromInt64(-5)))
	assert.Equal(t, 0, FromInt64(0).Cmp(FromInt64(0)))
	assert.True(t, FromInt64(-10).Less(FromInt64(-5)))
	assert.True(t, FromInt64(100).Less(FromInt64(1000)))
}
