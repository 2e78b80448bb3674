package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcec"
)

// Sign dispatches on the private key length. secp256k1 signs the hash with an
// RFC6979 nonce, ed25519 signs the whole message.
func Sign(privateKey, hash, msg []byte) ([]byte, error) {
	switch len(privateKey) {
	case ed25519.PrivateKeySize:
		return signEd25519(privateKey, msg)
	case btcec.PrivKeyBytesLen:
		return signECDSA(privateKey, hash)
	default:
		return nil, fmt.Errorf("%w: private key of %d bytes", ErrUnknownKeyFormat, len(privateKey))
	}
}

func Verify(publicKey, hash, msg, signature []byte) (bool, error) {
	if len(publicKey) == 0 {
		return false, fmt.Errorf("%w: empty public key", ErrUnknownKeyFormat)
	}
	switch publicKey[0] {
	case 0xED:
		return verifyEd25519(publicKey, signature, msg)
	case 0x02, 0x03:
		return verifyECDSA(publicKey, signature, hash)
	default:
		return false, fmt.Errorf("%w: public key prefix %#x", ErrUnknownKeyFormat, publicKey[0])
	}
}

func signEd25519(privateKey, msg []byte) ([]byte, error) {
	return ed25519.Sign(privateKey, msg), nil
}

func verifyEd25519(pubKey, signature, msg []byte) (bool, error) {
	switch {
	case len(pubKey) != ed25519.PublicKeySize+1:
		return false, fmt.Errorf("wrong public key length: %d", len(pubKey))
	case len(signature) != ed25519.SignatureSize:
		return false, fmt.Errorf("wrong signature length: %d", len(signature))
	default:
		return ed25519.Verify(pubKey[1:], msg, signature), nil
	}
}

// Returns DER encoded signature from input hash
func signECDSA(privateKey, hash []byte) ([]byte, error) {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), privateKey)
	sig, err := priv.Sign(hash)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// Verifies a hash using DER encoded signature
func verifyECDSA(pubKey, signature, hash []byte) (bool, error) {
	sig, err := btcec.ParseDERSignature(signature, btcec.S256())
	if err != nil {
		return false, err
	}
	pk, err := btcec.ParsePubKey(pubKey, btcec.S256())
	if err != nil {
		return false, nil
	}
	return sig.Verify(hash, pk), nil
}
