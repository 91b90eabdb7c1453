// Package seedrand hands out a math/rand source seeded from crypto/rand,
// for callers that want fast, non-cryptographic random draws (loop
// iteration counts, witness ordering) without depending on the global
// math/rand source, which is deterministically seeded pre-Go 1.20.
package seedrand

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"github.com/pkg/errors"
)

// New returns a *mrand.Rand seeded once from crypto/rand. Callers hold
// onto the returned source (typically in a package-level var) rather
// than calling New per draw.
func New() *mrand.Rand {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(errors.Wrap(err, "seedrand: entropy source failure"))
	}
	seed := int64(binary.BigEndian.Uint64(buf[:]))
	return mrand.New(mrand.NewSource(seed))
}
