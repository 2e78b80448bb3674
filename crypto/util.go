package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Sha512Half is the first 32 bytes of SHA512(b). Ledger object ids, the
// signing hash and key derivation all use it.
func Sha512Half(b []byte) []byte {
	sum := sha512.Sum512(b)
	return sum[:32]
}

// Sha512Quarter is the first 16 bytes of SHA512(b), the family seed of a
// passphrase.
func Sha512Quarter(b []byte) []byte {
	sum := sha512.Sum512(b)
	return sum[:16]
}

// DoubleSha256 is SHA256(SHA256(b)); its first four bytes are the base58
// checksum.
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Sha256RipeMD160 is RIPEMD160(SHA256(b)), the account id of a public key.
func Sha256RipeMD160(b []byte) []byte {
	sha := sha256.Sum256(b)
	ripe := ripemd160.New()
	_, _ = ripe.Write(sha[:]) // hash writes never fail
	return ripe.Sum(nil)
}
