package hexcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := Hex{}
	data := []byte{0x00, 0xFF, 0x10, 0xAB}
	encoded := c.Encode(data)
	assert.Equal(t, "00FF10AB", encoded)

	decoded, err := c.Decode(encoded)
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDecodeRejectsOddLength(t *testing.T) {
	_, err := (Hex{}).Decode("ABC")
	assert.Error(t, err)
}

func TestDecodeRejectsIllegalCharacters(t *testing.T) {
	_, err := (Hex{}).Decode("ZZ")
	assert.Error(t, err)
}
