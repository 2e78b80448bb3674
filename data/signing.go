package data

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/anyswap/ripple-signer/crypto"
)

// SignedTransaction is the output of Sign. Tx is a fresh object; the
// unsigned input is left untouched.
type SignedTransaction struct {
	Tx   Object
	Hash Hash256
	Blob []byte
}

// SigningHash returns SHA512Half(STX\0 || signing bytes) and the hashed message.
func SigningHash(tx Object) (Hash256, []byte, error) {
	b, err := SerializeForSigning(tx)
	if err != nil {
		return zero256, nil, err
	}
	hash, msg := prefixedHash(HP_TRANSACTION_SIGN, b)
	return hash, msg, nil
}

// MultiSigningHash is the hash a single member of a signer list signs.
func MultiSigningHash(tx Object, account Account) (Hash256, []byte, error) {
	b, err := SerializeForSigning(tx)
	if err != nil {
		return zero256, nil, err
	}
	hash, msg := prefixedHash(HP_TRANSACTION_MULTISIGN, b, account[:])
	return hash, msg, nil
}

// TransactionID returns SHA512Half(TXN\0 || bytes) over the full encoding
// of a signed transaction, and the encoding itself.
func TransactionID(tx Object) (Hash256, []byte, error) {
	blob, err := Serialize(tx)
	if err != nil {
		return zero256, nil, err
	}
	hash, _ := prefixedHash(HP_TRANSACTION_ID, blob)
	return hash, blob, nil
}

func checkSignable(tx Object) error {
	for _, name := range []string{"TransactionType", "Account"} {
		if !tx.Has(name) {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	if typ, ok := deref(tx["TransactionType"]).(UInt16); ok && !TransactionType(typ).IsKnown() {
		return fmt.Errorf("%w: %d", ErrUnknownTransactionType, typ)
	}
	return nil
}

// withPublicKey returns a copy of tx carrying pub as SigningPubKey. A key
// already present must equal pub.
func withPublicKey(tx Object, pub []byte) (Object, error) {
	signed := tx.Clone()
	existing, ok := signed["SigningPubKey"]
	if !ok {
		signed["SigningPubKey"] = VariableLength(pub)
		return signed, nil
	}
	if vl, ok := deref(existing).(VariableLength); !ok || !bytes.Equal(vl, pub) {
		return nil, fmt.Errorf("%w: SigningPubKey %v", ErrSigningKeyMismatch, existing)
	}
	return signed, nil
}

// Sign signs tx with key. secp256k1 keys sign the signing hash, ed25519
// keys sign the prefixed message.
func Sign(tx Object, key crypto.Key) (*SignedTransaction, error) {
	if tx.Has("TxnSignature") {
		return nil, ErrAlreadySigned
	}
	if err := checkSignable(tx); err != nil {
		return nil, err
	}
	signed, err := withPublicKey(tx, key.Public())
	if err != nil {
		return nil, err
	}
	hash, msg, err := SigningHash(signed)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(key.Private(), hash.Bytes(), msg)
	if err != nil {
		return nil, err
	}
	signed["TxnSignature"] = VariableLength(sig)
	id, blob, err := TransactionID(signed)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{Tx: signed, Hash: id, Blob: blob}, nil
}

// MultiSign produces one Signers array element for key. tx must carry an
// empty SigningPubKey or none at all.
func MultiSign(tx Object, key crypto.Key) (Object, error) {
	if tx.Has("TxnSignature") {
		return nil, ErrAlreadySigned
	}
	if err := checkSignable(tx); err != nil {
		return nil, err
	}
	unsigned, err := withPublicKey(tx, []byte{})
	if err != nil {
		return nil, err
	}
	delete(unsigned, "Signers")
	account := NewAccountFromKey(key)
	hash, msg, err := MultiSigningHash(unsigned, account)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(key.Private(), hash.Bytes(), msg)
	if err != nil {
		return nil, err
	}
	return Object{
		"Signer": Object{
			"Account":       account,
			"SigningPubKey": VariableLength(key.Public()),
			"TxnSignature":  VariableLength(sig),
		},
	}, nil
}

func signerAccount(elem Object) (Account, error) {
	inner, ok := deref(elem["Signer"]).(Object)
	if len(elem) != 1 || !ok {
		return zeroAccount, fmt.Errorf("%w: expected a single Signer", ErrInvalidArrayElement)
	}
	account, ok := deref(inner["Account"]).(Account)
	if !ok {
		return zeroAccount, fmt.Errorf("%w: Signer.Account", ErrMissingField)
	}
	return account, nil
}

// AddSigners merges signers into the Signers array of tx, sorted by
// account id as the network requires, and computes the transaction id.
func AddSigners(tx Object, signers ...Object) (*SignedTransaction, error) {
	if tx.Has("TxnSignature") {
		return nil, ErrAlreadySigned
	}
	signed, err := withPublicKey(tx, []byte{})
	if err != nil {
		return nil, err
	}
	var all Array
	if existing, ok := signed["Signers"]; ok {
		arr, ok := deref(existing).(Array)
		if !ok {
			return nil, fmt.Errorf("%w: Signers holds %T", ErrFieldTypeMismatch, existing)
		}
		all = append(all, arr...)
	}
	for _, s := range signers {
		all = append(all, s.Clone())
	}
	accounts := make(map[Account]struct{}, len(all))
	for _, elem := range all {
		account, err := signerAccount(elem)
		if err != nil {
			return nil, err
		}
		if _, dup := accounts[account]; dup {
			return nil, fmt.Errorf("%w: duplicate signer %s", ErrInvalidArrayElement, account)
		}
		accounts[account] = struct{}{}
	}
	sort.Slice(all, func(i, j int) bool {
		a, _ := signerAccount(all[i])
		b, _ := signerAccount(all[j])
		return a.Less(b)
	})
	signed["Signers"] = all
	id, blob, err := TransactionID(signed)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{Tx: signed, Hash: id, Blob: blob}, nil
}

func verify(pub, hash, msg []byte, sig VariableLength) error {
	ok, err := crypto.Verify(pub, hash, msg, sig)
	switch {
	case err != nil:
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	case !ok:
		return ErrBadSignature
	default:
		return nil
	}
}

func variableField(obj Object, name string) (VariableLength, error) {
	v, ok := deref(obj[name]).(VariableLength)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return v, nil
}

// CheckSignature verifies the single signature of tx, or every entry of
// its Signers array when it is multi-signed.
func CheckSignature(tx Object) error {
	if signers, ok := deref(tx["Signers"]).(Array); ok && len(signers) > 0 {
		for _, elem := range signers {
			account, err := signerAccount(elem)
			if err != nil {
				return err
			}
			inner := deref(elem["Signer"]).(Object)
			pub, err := variableField(inner, "SigningPubKey")
			if err != nil {
				return err
			}
			sig, err := variableField(inner, "TxnSignature")
			if err != nil {
				return err
			}
			hash, msg, err := MultiSigningHash(tx, account)
			if err != nil {
				return err
			}
			if err := verify(pub, hash.Bytes(), msg, sig); err != nil {
				return fmt.Errorf("signer %s: %w", account, err)
			}
		}
		return nil
	}
	pub, err := variableField(tx, "SigningPubKey")
	if err != nil {
		return err
	}
	sig, err := variableField(tx, "TxnSignature")
	if err != nil {
		return err
	}
	hash, msg, err := SigningHash(tx)
	if err != nil {
		return err
	}
	return verify(pub, hash.Bytes(), msg, sig)
}
