// Package hexcodec provides the hex-encoding collaborator consumed by the
// RSA cipher layer: encode a byte slice to an uppercase hex string, decode
// it back, rejecting malformed input.
package hexcodec

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// Codec is the interface rsacipher depends on for ciphertext I/O, so the
// core never imports encoding/hex directly.
type Codec interface {
	Encode(data []byte) string
	Decode(s string) ([]byte, error)
}

// Hex is the concrete Codec implementation used by cmd/bigrsa.
type Hex struct{}

// Encode returns the uppercase hex encoding of data.
func (Hex) Encode(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// Decode parses s as a hex string (even length, characters in 0-9A-Fa-f)
// and returns the decoded bytes.
func (Hex) Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.Errorf("hexcodec: odd-length hex string of length %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "hexcodec: malformed hex string")
	}
	return b, nil
}
