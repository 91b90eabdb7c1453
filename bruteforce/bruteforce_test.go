package bruteforce

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkuznetsov/bigrsa/bignum"
)

func TestRunFindsKnownFactorization(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n := bignum.FromInt64(268970693)
	e := bignum.FromInt64(85)

	result, err := Run(ctx, n, e, 4)
	require.NoError(t, err)
	assert.Equal(t, "10799", result.P.String())
	assert.Equal(t, "24907", result.Q.String())
	assert.Equal(t, "88590349", result.D.String())
}

func TestRunRejectsOutOfRangeWorkerCount(t *testing.T) {
	n := bignum.FromInt64(268970693)
	e := bignum.FromInt64(85)
	_, err := Run(context.Background(), n, e, 100)
	assert.Error(t, err)
}

func TestRunRejectsOversizedModulus(t *testing.T) {
	n := bignum.FromString("123456789012")
	e := bignum.FromInt64(7)
	_, err := Run(context.Background(), n, e, 4)
	assert.Error(t, err)
}

func TestRunDefaultsWorkerCount(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n := bignum.FromInt64(30221)
	e := bignum.FromInt64(3589)
	result, err := Run(ctx, n, e, 0)
	require.NoError(t, err)
	assert.Equal(t, "47", result.P.String())
	assert.Equal(t, "643", result.Q.String())
}
