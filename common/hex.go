package common

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// FromHex decodes s, ignoring an optional 0x prefix and any white space.
// Blobs copied from explorers are often wrapped or split.
func FromHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		return nil, fmt.Errorf("odd length hex string: %d digits", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return b, nil
}

// ToHex encodes b as upper case hex, the form rippled uses for blobs.
func ToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// IsHex reports whether s is a non empty even length hex string.
func IsHex(s string) bool {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s) == 0 || len(s)%2 == 1 {
		return false
	}
	for _, c := range []byte(s) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
