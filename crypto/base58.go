package crypto

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
)

const checksumLength = 4

var rippleAlphabet = base58.NewAlphabet(ALPHABET)

// Base58Encode encodes b with the ripple alphabet. Every leading zero byte
// becomes one leading 'r'.
func Base58Encode(b []byte) string {
	return base58.FastBase58EncodingAlphabet(b, rippleAlphabet)
}

// Base58Decode is the inverse of Base58Encode.
func Base58Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := base58.FastBase58DecodingAlphabet(s, rippleAlphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}
	return b, nil
}

func checksum(b []byte) []byte {
	return DoubleSha256(b)[:checksumLength]
}

// CheckEncode appends a four byte double SHA256 checksum to payload and
// encodes the result with the ripple alphabet.
func CheckEncode(payload []byte) string {
	b := make([]byte, 0, len(payload)+checksumLength)
	b = append(b, payload...)
	b = append(b, checksum(payload)...)
	return Base58Encode(b)
}

// CheckDecode decodes s and verifies and strips its checksum.
func CheckDecode(s string) ([]byte, error) {
	decoded, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLength {
		return nil, ErrInvalidFormat
	}
	payload := decoded[:len(decoded)-checksumLength]
	if !bytes.Equal(checksum(payload), decoded[len(decoded)-checksumLength:]) {
		return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, s)
	}
	return payload, nil
}
