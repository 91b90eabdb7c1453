package dhexchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExchangeWithExplicitParameters(t *testing.T) {
	result, err := Exchange(strPtr("13"), strPtr("7"), strPtr("12323"), strPtr("42398472"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, result.ResultA.String(), result.ResultB.String())
}

func TestExchangeWithGeneratedParameters(t *testing.T) {
	result, err := Exchange(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestExchangeRejectsNonPrimeSharedPrime(t *testing.T) {
	_, err := Exchange(strPtr("12"), strPtr("7"), strPtr("1"), strPtr("2"))
	assert.Error(t, err)
}

func TestExchangeRejectsNonNumericParameter(t *testing.T) {
	_, err := Exchange(strPtr("13"), strPtr("7"), strPtr("not-a-number"), strPtr("2"))
	assert.Error(t, err)
}

func TestExchangeRejectsNonPrimitiveRootBase(t *testing.T) {
	_, err := Exchange(strPtr("13"), strPtr("1"), strPtr("5"), strPtr("7"))
	assert.Error(t, err)
}
