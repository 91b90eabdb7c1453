package rsacipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/hexcodec"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	n := bignum.FromString("441982524952231918609144409818894577105184461")
	e := bignum.FromString("6119931580888508280272762765")
	d := bignum.FromString("3257209244777795983999918284178604218550597")
	codec := hexcodec.Hex{}

	ciphertext, err := Encrypt([]byte("Test string."), n, e, codec)
	require.NoError(t, err)

	plaintext, err := Decrypt(ciphertext, n, d, codec)
	require.NoError(t, err)
	assert.Equal(t, "Test string.", string(plaintext))
}

func TestEncryptRejectsShortModulus(t *testing.T) {
	n := bignum.FromInt64(30221)
	e := bignum.FromInt64(85)
	_, err := Encrypt([]byte("hi"), n, e, hexcodec.Hex{})
	assert.Error(t, err)
}

func TestPackUnpackBlockRoundTrip(t *testing.T) {
	block := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	hi, lo := packBlock(block)
	got := unpackBlock(hi, lo)
	assert.Equal(t, block, got)
}
