package crypto

import "errors"

// alphabet codec and key derivation errors
var (
	ErrChecksumMismatch    = errors.New("base58 checksum mismatch")
	ErrInvalidCharacter    = errors.New("invalid base58 character")
	ErrInvalidFormat       = errors.New("invalid format: payload and/or checksum bytes missing")
	ErrInvalidVersion      = errors.New("unexpected version byte")
	ErrInvalidSeed         = errors.New("invalid seed")
	ErrDerivationExhausted = errors.New("key derivation exhausted its retry limit")
	ErrUnknownKeyFormat    = errors.New("unknown key format")
)
