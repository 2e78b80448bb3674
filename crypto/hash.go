package crypto

import (
	"fmt"
	"math/big"
)

// First byte is the version
// Remaining bytes are the payload
type hash []byte

func NewRippleHash(s string) (Hash, error) {
	// Special case which will deal short addresses
	switch s {
	case "0":
		return newHashFromString(ACCOUNT_ZERO)
	case "1":
		return newHashFromString(ACCOUNT_ONE)
	default:
		return newHashFromString(s)
	}
}

// Checks hash matches expected version and payload size
func NewRippleHashCheck(s string, version HashVersion) (Hash, error) {
	hash, err := NewRippleHash(s)
	if err != nil {
		return nil, err
	}
	if hash.Version() != version {
		want := hashTypes[version].Description
		got := hashTypes[hash.Version()].Description
		return nil, fmt.Errorf("%w for: %s expected: %s got: %s", ErrInvalidVersion, s, want, got)
	}
	if n := hashTypes[version].Payload; len(hash.Payload()) != n {
		return nil, fmt.Errorf("%w: %s has %d payload bytes, expected %d", ErrInvalidFormat, s, len(hash.Payload()), n)
	}
	return hash, nil
}

func NewAccountId(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_ID)
}

func NewAccountPublicKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_PUBLIC)
}

func NewAccountPrivateKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_ACCOUNT_PRIVATE)
}

func NewNodePublicKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_NODE_PUBLIC)
}

func NewNodePrivateKey(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_NODE_PRIVATE)
}

func NewFamilySeed(b []byte) (Hash, error) {
	return newHash(b, RIPPLE_FAMILY_SEED)
}

func AccountId(key Key) (Hash, error) {
	return NewAccountId(key.Id())
}

func AccountPublicKey(key Key) (Hash, error) {
	return NewAccountPublicKey(key.Public())
}

func AccountPrivateKey(key Key) (Hash, error) {
	return NewAccountPrivateKey(key.Private())
}

// GenerateFamilySeed turns a passphrase into a family seed the way rippled's
// wallet_propose does.
func GenerateFamilySeed(passphrase string) (Hash, error) {
	return NewFamilySeed(Sha512Quarter([]byte(passphrase)))
}

// NewRandomSeed returns a family seed from the system's secure random source.
func NewRandomSeed() (Hash, error) {
	seed, err := randomSeed()
	if err != nil {
		return nil, err
	}
	return NewFamilySeed(seed)
}

// ParseFamilySeed decodes an s... seed and returns its 16 byte payload.
func ParseFamilySeed(s string) ([]byte, error) {
	seed, err := NewRippleHashCheck(s, RIPPLE_FAMILY_SEED)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return seed.Payload(), nil
}

// newHash only builds hashes whose payload has the exact size of version,
// so every String() result parses back with NewRippleHashCheck.
func newHash(b []byte, version HashVersion) (Hash, error) {
	n := hashTypes[version].Payload
	if len(b) != n {
		return nil, fmt.Errorf("%w: hash is wrong size, expected: %d got: %d", ErrInvalidFormat, n, len(b))
	}
	return append(hash{byte(version)}, b...), nil
}

func newHashFromString(s string) (Hash, error) {
	decoded, err := CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		return nil, ErrInvalidFormat
	}
	return hash(decoded), nil
}

func (h hash) String() string {
	return CheckEncode(h)
}

func (h hash) Version() HashVersion {
	return HashVersion(h[0])
}

func (h hash) Payload() []byte {
	return h[1:]
}

// Return a slice of the payload with leading zeroes omitted
func (h hash) PayloadTrimmed() []byte {
	payload := h.Payload()
	if len(payload) == 0 {
		return payload
	}
	for i := range payload {
		if payload[i] != 0 {
			return payload[i:]
		}
	}
	return payload[len(payload)-1:]
}

func (h hash) Value() *big.Int {
	return big.NewInt(0).SetBytes(h.Payload())
}

func (h hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h hash) Clone() Hash {
	c := make(hash, len(h))
	copy(c, h)
	return c
}

func NodePublicKey(key Key) (Hash, error) {
	return NewNodePublicKey(key.Public())
}

func NodePrivateKey(key Key) (Hash, error) {
	return NewNodePrivateKey(key.Private())
}
