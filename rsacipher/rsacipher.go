// Package rsacipher implements RSA key-pair generation and block
// encrypt/decrypt over bignum.BigInt, using a fixed padding and delimiter
// convention for the byte stream. It depends on hexcodec only through the
// Codec interface, never importing encoding/hex directly.
package rsacipher

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/factor"
	"github.com/vkuznetsov/bigrsa/hexcodec"
	"github.com/vkuznetsov/bigrsa/internal/tsslog"
	"github.com/vkuznetsov/bigrsa/primality"
	"github.com/vkuznetsov/bigrsa/randgen"
)

const (
	// BlockSize is the number of plaintext bytes packed into one 128-bit
	// integer per RSA block.
	BlockSize = 16
	// Delimiter separates consecutive full ciphertext blocks.
	Delimiter = 0xFF
	// PaddingByte fills the unused low bytes of the final partial block.
	PaddingByte = 0x90

	// MinModulusDigitsForBlockCipher rejects moduli too small to safely
	// carry a 128-bit packed block; brute-force factoring is exempt.
	MinModulusDigitsForBlockCipher = 39
	// MaxModulusDigitsForBruteforce bounds the search space the parallel
	// factoring engine is expected to crack in reasonable time.
	MaxModulusDigitsForBruteforce = 10

	// DefaultPrimeDigitsP and DefaultPrimeDigitsQ mirror the reference
	// key-generation lengths (25 and 21 decimal digits respectively).
	DefaultPrimeDigitsP = 25
	DefaultPrimeDigitsQ = 21
)

var one = bignum.FromInt64(1)

// KeyPair is the (n, e, d) triple produced by GenerateKeyPair, satisfying
// n = p*q, gcd(e, phi(n)) = 1, e*d ≡ 1 (mod phi(n)), d > 0.
type KeyPair struct {
	N *bignum.BigInt
	E *bignum.BigInt
	D *bignum.BigInt
}

// GenerateKeyPair draws two distinct random primes of pDigits and qDigits
// decimal length, then derives n, a coprime public exponent e, and the
// matching private exponent d.
func GenerateKeyPair(pDigits, qDigits int) (*KeyPair, error) {
	p := randgen.Prime(pDigits)
	q := randgen.Prime(qDigits)
	for q.Equal(p) {
		q = randgen.Prime(qDigits)
	}

	n := p.Mul(q)
	phi := p.Sub(one).Mul(q.Sub(one))

	for {
		e := randgen.RangeValue(one, phi, bignum.Positive)
		if e.Equal(p) || e.Equal(q) {
			continue
		}
		if !primality.IsCoprime(e, phi) {
			continue
		}
		egcd := e.ExtGCD(phi)
		d := egcd.X
		if d.Sign() == bignum.Negative {
			continue
		}
		tsslog.Log.Debugf("rsacipher: generated key pair with %d-digit modulus", len(n.Digits()))
		return &KeyPair{N: n, E: e, D: d}, nil
	}
}

// Encrypt block-encodes plaintext using (n, e), hex-encoding the resulting
// byte stream via codec. See BlockSize, Delimiter and PaddingByte for the
// block/delimiter/padding layout.
func Encrypt(plaintext []byte, n, e *bignum.BigInt, codec hexcodec.Codec) (string, error) {
	if len(n.Digits()) <= MinModulusDigitsForBlockCipher {
		return "", errors.Errorf("rsacipher: modulus has %d decimal digits, must exceed %d for block cipher use", len(n.Digits()), MinModulusDigitsForBlockCipher)
	}

	var out []byte
	full := len(plaintext) / BlockSize
	remainder := len(plaintext) % BlockSize

	for i := 0; i < full; i++ {
		chunk := plaintext[i*BlockSize : (i+1)*BlockSize]
		out = append(out, encryptBlock(chunk, n, e)...)
		out = append(out, Delimiter)
	}

	if remainder > 0 {
		chunk := make([]byte, BlockSize)
		copy(chunk, plaintext[full*BlockSize:])
		for i := remainder; i < BlockSize; i++ {
			chunk[i] = PaddingByte
		}
		out = append(out, encryptBlock(chunk, n, e)...)
	}

	return codec.Encode(out), nil
}

func encryptBlock(chunk []byte, n, e *bignum.BigInt) []byte {
	hi, lo := packBlock(chunk)
	m := bignum.FromUint128(hi, lo)
	c := m.ModPow(e, n)
	return digitsToBytes(c)
}

// Decrypt hex-decodes ciphertext via codec, splits on the block delimiter,
// and reverses Encrypt block-by-block. Decryption stops at the first
// unpacked padding byte encountered - a plaintext block that legitimately
// contains the padding byte value will be truncated early (see design
// notes).
func Decrypt(ciphertext string, n, d *bignum.BigInt, codec hexcodec.Codec) ([]byte, error) {
	raw, err := codec.Decode(ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "rsacipher: failed to decode ciphertext")
	}

	groups := splitDelimiter(raw, Delimiter)

	var plaintext []byte
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		c := bytesToBigInt(group)
		m := c.ModPow(d, n)
		hi, lo := m.Uint128()
		block := unpackBlock(hi, lo)

		for _, b := range block {
			if b == PaddingByte {
				return plaintext, nil
			}
			plaintext = append(plaintext, b)
		}
	}
	return plaintext, nil
}

// digitsToBytes renders a BigInt's decimal digits as raw bytes 0..=9, in
// the same little-endian digit order the BigInt stores internally. This is
// the encoder side of the digit-slice-ordering convention; bytesToBigInt
// below is the matching decoder side, and the two must never be changed
// independently of each other.
func digitsToBytes(v *bignum.BigInt) []byte {
	digits := v.Digits()
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = byte(d)
	}
	return out
}

// bytesToBigInt is the decoder counterpart of digitsToBytes: it treats the
// byte group as a little-endian digit slice directly, exactly the
// ordering bignum.FromDigits expects.
func bytesToBigInt(group []byte) *bignum.BigInt {
	digits := make([]int8, len(group))
	for i, b := range group {
		digits[i] = int8(b)
	}
	return bignum.FromDigits(digits)
}

func splitDelimiter(data []byte, delim byte) [][]byte {
	var groups [][]byte
	start := 0
	for i, b := range data {
		if b == delim {
			groups = append(groups, data[start:i])
			start = i + 1
		}
	}
	groups = append(groups, data[start:])
	return groups
}

// packBlock packs 16 bytes into a 128-bit unsigned integer with byte 0 in
// the most-significant position.
func packBlock(data []byte) (hi, lo uint64) {
	hi = binary.BigEndian.Uint64(data[0:8])
	lo = binary.BigEndian.Uint64(data[8:16])
	return hi, lo
}

// unpackBlock is the inverse of packBlock.
func unpackBlock(hi, lo uint64) []byte {
	out := make([]byte, BlockSize)
	binary.BigEndian.PutUint64(out[0:8], hi)
	binary.BigEndian.PutUint64(out[8:16], lo)
	return out
}

// RSAModulusFactors exposes factor.RSAModulus under the rsacipher-specific
// preconditions (brute-force-length moduli only), for callers that already
// hold an (n, startPoint) pair outside the worker pool.
func RSAModulusFactors(n, startPoint *bignum.BigInt) []*bignum.BigInt {
	if len(n.Digits()) > MaxModulusDigitsForBruteforce {
		panic(errors.Errorf("rsacipher: modulus has %d decimal digits, exceeds brute-force bound of %d", len(n.Digits()), MaxModulusDigitsForBruteforce))
	}
	return factor.RSAModulus(n, startPoint)
}
