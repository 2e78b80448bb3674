package data

import (
	"github.com/anyswap/ripple-signer/crypto"
)

const hextable = "0123456789ABCDEF"

//faster than fmt and need upper case!
func b2h(h []byte) []byte {
	b := make([]byte, len(h)*2)
	for i, v := range h {
		b[i*2] = hextable[v>>4]
		b[i*2+1] = hextable[v&0x0f]
	}
	return b
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func abs(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}

// prefixedHash returns SHA512Half(prefix || parts...) and the hashed message.
func prefixedHash(prefix HashPrefix, parts ...[]byte) (Hash256, []byte) {
	msg := prefix.Bytes()
	for _, p := range parts {
		msg = append(msg, p...)
	}
	var hash Hash256
	copy(hash[:], crypto.Sha512Half(msg))
	return hash, msg
}
