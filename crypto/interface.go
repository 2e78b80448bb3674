package crypto

import "math/big"

// Key is the signing material handed to the transaction signer.
type Key interface {
	Private() []byte
	Public() []byte
	Id() []byte
}

type Hash interface {
	Version() HashVersion
	Payload() []byte
	PayloadTrimmed() []byte
	Value() *big.Int
	String() string
	Clone() Hash
	MarshalText() ([]byte, error)
}
