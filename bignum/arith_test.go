package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSubIdentities(t *testing.T) {
	a := FromString("12345")
	negA := a.Neg()
	assert.True(t, a.Add(negA).IsZero())
	assert.Equal(t, "0", a.Add(negA).String())

	assert.Equal(t, "5", FromInt64(2).Add(FromInt64(3)).String())
	assert.Equal(t, "-1", FromInt64(2).Add(FromInt64(-3)).String())
	assert.Equal(t, "1", FromInt64(-2).Add(FromInt64(3)).String())
	assert.Equal(t, "-5", FromInt64(-2).Add(FromInt64(-3)).String())

	assert.Equal(t, "-1", FromInt64(2).Sub(FromInt64(3)).String())
	assert.Equal(t, "5", FromInt64(2).Sub(FromInt64(-3)).String())
	assert.Equal(t, "0", FromInt64(7).Sub(FromInt64(7)).String())
}

func TestMulLiteralScenario(t *testing.T) {
	// 100000 * (-1230000) = -123000000000
	got := FromString("100000").Mul(FromString("-1230000"))
	assert.Equal(t, "-123000000000", got.String())
}

func TestMulShortcutsAndSigns(t *testing.T) {
	assert.True(t, FromInt64(0).Mul(FromInt64(12345)).IsZero())
	assert.Equal(t, "12345", FromInt64(1).Mul(FromInt64(12345)).String())
	assert.Equal(t, "-12345", FromInt64(-1).Mul(FromInt64(12345)).String())
	assert.Equal(t, "6", FromInt64(-2).Mul(FromInt64(-3)).String())
	assert.Equal(t, "-6", FromInt64(-2).Mul(FromInt64(3)).String())
}

func TestDivModLiteralScenario(t *testing.T) {
	// 100000 / 23423 = 4 remainder 6308
	q, r := FromString("100000").DivMod(FromString("23423"))
	assert.Equal(t, "4", q.String())
	assert.Equal(t, "6308", r.String())

	// 23423 mod -12345 = -1267
	assert.Equal(t, "-1267", FromString("23423").Mod(FromString("-12345")).String())

	// (-12345) mod 23423 = 11078
	assert.Equal(t, "11078", FromString("-12345").Mod(FromString("23423")).String())

	// (-1) mod 12345 = 12344
	assert.Equal(t, "12344", FromInt64(-1).Mod(FromInt64(12345)).String())
}

func TestDivModInvariant(t *testing.T) {
	pairs := [][2]string{
		{"100000", "23423"},
		{"23423", "-12345"},
		{"-12345", "23423"},
		{"-1", "12345"},
		{"987654321", "13"},
		{"-987654321", "-13"},
		{"1", "7"},
		{"-7", "7"},
	}
	for _, p := range pairs {
		a := FromString(p[0])
		b := FromString(p[1])
		q, r := a.DivMod(b)
		// (a/b)*b + (a mod b) == a
		assert.True(t, q.Mul(b).Add(r).Equal(a), "a=%s b=%s q=%s r=%s", p[0], p[1], q, r)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		FromInt64(1).Div(FromInt64(0))
	})
}

func TestPowBasics(t *testing.T) {
	assert.Equal(t, "1", FromInt64(12345).Pow(FromInt64(0)).String())
	assert.Equal(t, "12345", FromInt64(12345).Pow(FromInt64(1)).String())
	assert.True(t, FromInt64(0).Pow(FromInt64(5)).IsZero())
	assert.Equal(t, "1024", FromInt64(2).Pow(FromInt64(10)).String())
}

func TestModPowLiteralScenario(t *testing.T) {
	// 13786234^13786234 mod 45 = 16
	got := FromString("13786234").ModPow(FromString("13786234"), FromString("45"))
	assert.Equal(t, "16", got.String())
}

func TestModPowBasics(t *testing.T) {
	assert.Equal(t, "1", FromInt64(7).ModPow(FromInt64(0), FromInt64(5)).String())
	assert.True(t, FromInt64(0).ModPow(FromInt64(5), FromInt64(7)).IsZero())

	// 3^4 mod 5 = 81 mod 5 = 1
	assert.Equal(t, "1", FromInt64(3).ModPow(FromInt64(4), FromInt64(5)).String())
}

func TestGCDBasics(t *testing.T) {
	assert.Equal(t, "6", FromInt64(54).GCD(FromInt64(24)).String())
	assert.Equal(t, "1", FromInt64(17).GCD(FromInt64(31)).String())
	assert.Equal(t, "5", FromInt64(0).GCD(FromInt64(-5)).String())
	assert.Equal(t, "5", FromInt64(5).GCD(FromInt64(0)).String())
}

func TestExtGCDBezoutIdentity(t *testing.T) {
	pairs := [][2]int64{
		{35, 15},
		{240, 46},
		{1, 1},
		{17, 5},
		{48, 18},
	}
	for _, p := range pairs {
		a := FromInt64(p[0])
		b := FromInt64(p[1])
		res := a.ExtGCD(b)
		assert.True(t, a.Mul(res.X).Add(b.Mul(res.Y)).Equal(res.Gcd), "a=%d b=%d", p[0], p[1])
		assert.True(t, res.Gcd.Equal(a.GCD(b)), "a=%d b=%d", p[0], p[1])
	}
}

func TestExtGCDZeroOperand(t *testing.T) {
	res := FromInt64(0).ExtGCD(FromInt64(5))
	assert.Equal(t, "5", res.Gcd.String())
	assert.True(t, res.X.IsZero())
	assert.Equal(t, "1", res.Y.String())
}
