package crypto

import (
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

var (
	order = btcec.S256().N
	zero  = big.NewInt(0)
)

// maxDerivationAttempts bounds the counter search. A candidate fails with
// probability below 2^-127 so the ceiling is never reached by real seeds.
var maxDerivationAttempts uint32 = 1 << 16

// ECDSAKey is the root key of a secp256k1 account family.
type ECDSAKey struct {
	*btcec.PrivateKey
}

// deriveScalar hashes prefix || counter with an incrementing big endian
// counter until the result is a valid secp256k1 scalar.
func deriveScalar(prefix []byte) (*big.Int, error) {
	buf := make([]byte, len(prefix)+4)
	copy(buf, prefix)
	key := new(big.Int)
	for i := uint32(0); i < maxDerivationAttempts; i++ {
		binary.BigEndian.PutUint32(buf[len(prefix):], i)
		key.SetBytes(Sha512Half(buf))
		if key.Cmp(zero) > 0 && key.Cmp(order) < 0 {
			return key, nil
		}
	}
	return nil, ErrDerivationExhausted
}

func privateKeyFromScalar(d *big.Int) *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), paddedScalar(d))
	return priv
}

func paddedScalar(d *big.Int) []byte {
	b := make([]byte, btcec.PrivKeyBytesLen)
	db := d.Bytes()
	copy(b[len(b)-len(db):], db)
	return b
}

// NewECDSAKey derives the family root key from a 16 byte seed.
func NewECDSAKey(seed []byte) (*ECDSAKey, error) {
	seed, err := checkSeed(seed)
	if err != nil {
		return nil, err
	}
	d, err := deriveScalar(seed)
	if err != nil {
		return nil, err
	}
	return &ECDSAKey{privateKeyFromScalar(d)}, nil
}

// Derive returns the account key at sequence in the family.
func (k *ECDSAKey) Derive(sequence uint32) (*KeyPair, error) {
	prefix := make([]byte, btcec.PubKeyBytesLenCompressed+4)
	copy(prefix, k.PubKey().SerializeCompressed())
	binary.BigEndian.PutUint32(prefix[btcec.PubKeyBytesLenCompressed:], sequence)
	d, err := deriveScalar(prefix)
	if err != nil {
		return nil, err
	}
	d.Add(d, k.D).Mod(d, order)
	priv := privateKeyFromScalar(d)
	return &KeyPair{
		keyType: ECDSA,
		private: paddedScalar(priv.D),
		public:  priv.PubKey().SerializeCompressed(),
	}, nil
}

// Root returns the family root itself as a key pair (the node key).
func (k *ECDSAKey) Root() *KeyPair {
	return &KeyPair{
		keyType: ECDSA,
		private: paddedScalar(k.D),
		public:  k.PubKey().SerializeCompressed(),
	}
}
