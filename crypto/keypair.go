package crypto

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// KeyType selects the signature algorithm of a key pair.
type KeyType int

const (
	ECDSA KeyType = iota
	Ed25519
)

var keyTypeNames = map[KeyType]string{
	ECDSA:   "secp256k1",
	Ed25519: "ed25519",
}

func (t KeyType) String() string {
	if name, ok := keyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("KeyType(%d)", int(t))
}

// ParseKeyType accepts the names used by rippled's wallet_propose.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(s) {
	case "", "secp256k1", "ecdsa":
		return ECDSA, nil
	case "ed25519":
		return Ed25519, nil
	default:
		return 0, fmt.Errorf("%w: key type %q", ErrUnknownKeyFormat, s)
	}
}

// KeyPair is a private key and its compressed public key. The caller owns it.
type KeyPair struct {
	keyType KeyType
	private []byte
	public  []byte
}

var _ Key = (*KeyPair)(nil)

// DeriveKeyPair returns the standard secp256k1 wallet key of a 16 byte seed,
// which is the account key at family sequence 0.
func DeriveKeyPair(seed []byte) (*KeyPair, error) {
	root, err := NewECDSAKey(seed)
	if err != nil {
		return nil, err
	}
	return root.Derive(0)
}

func DeriveEd25519KeyPair(seed []byte) (*KeyPair, error) {
	return NewEd25519Key(seed)
}

// NewKeyPair derives a key pair of the given type from a 16 byte seed.
func NewKeyPair(seed []byte, keyType KeyType) (*KeyPair, error) {
	switch keyType {
	case ECDSA:
		return DeriveKeyPair(seed)
	case Ed25519:
		return DeriveEd25519KeyPair(seed)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeyFormat, keyType)
	}
}

// KeyPairFromSecret decodes an s... family seed and derives its key pair.
func KeyPairFromSecret(secret string, keyType KeyType) (*KeyPair, error) {
	seed, err := ParseFamilySeed(secret)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(seed, keyType)
}

// DeriveAccountId returns RIPEMD160(SHA256(publicKey)).
func DeriveAccountId(publicKey []byte) []byte {
	return Sha256RipeMD160(publicKey)
}

func (k *KeyPair) Type() KeyType { return k.keyType }

func (k *KeyPair) Private() []byte {
	return append([]byte(nil), k.private...)
}

func (k *KeyPair) Public() []byte {
	return append([]byte(nil), k.public...)
}

func (k *KeyPair) Id() []byte {
	return DeriveAccountId(k.public)
}

// Address is the r... text form of the account id.
func (k *KeyPair) Address() string {
	h, _ := NewAccountId(k.Id())
	return h.String()
}

// Sign signs hash (secp256k1) or msg (ed25519) depending on the key type.
func (k *KeyPair) Sign(hash, msg []byte) ([]byte, error) {
	return Sign(k.private, hash, msg)
}

func randomSeed() ([]byte, error) {
	seed := make([]byte, SeedLength)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// checkSeed accepts exactly SeedLength bytes; nil is not a seed.
func checkSeed(seed []byte) ([]byte, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSeed, SeedLength, len(seed))
	}
	return seed, nil
}
