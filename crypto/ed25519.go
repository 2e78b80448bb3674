package crypto

import "crypto/ed25519"

// NewEd25519Key derives an ed25519 key pair from the first half of
// SHA512(seed). Ed25519 keys have no account family.
func NewEd25519Key(seed []byte) (*KeyPair, error) {
	seed, err := checkSeed(seed)
	if err != nil {
		return nil, err
	}
	priv := ed25519.NewKeyFromSeed(Sha512Half(seed))
	return &KeyPair{
		keyType: Ed25519,
		private: priv,
		public:  append([]byte{0xED}, priv[32:]...),
	}, nil
}
