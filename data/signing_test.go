package data

import (
	"errors"

	"github.com/anyswap/ripple-signer/crypto"
	. "github.com/anyswap/ripple-signer/internal/checks"
	. "gopkg.in/check.v1"
)

type SigningSuite struct{}

var _ = Suite(&SigningSuite{})

const (
	masterAddress   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	paymentUnsigned = "120000228000000024000000016140000000000F424068400000000000000C73210330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD0208114B5F762798A53D543A014CAF8B297CFF8F2F937E88314F667B0CA50CC7709A220B0561B85E53A48461FA8"
	paymentSigHash  = "29694A0C1905BA337BE3D7566018B32BBCA6D353967BFE907DC4AB26DF33C3B2"
	paymentSig      = "3045022100F85C6811CBB85A354C8DB38E2795C2ED35213516993508DE5CEE49F5AA4990BF022039CA7D68A79B54F4B26EB4B681FE5FBACB840EAFCDDB9B71B444D788ADEEC87C"
	paymentSigned   = "120000228000000024000000016140000000000F424068400000000000000C73210330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD02074473045022100F85C6811CBB85A354C8DB38E2795C2ED35213516993508DE5CEE49F5AA4990BF022039CA7D68A79B54F4B26EB4B681FE5FBACB840EAFCDDB9B71B444D788ADEEC87C8114B5F762798A53D543A014CAF8B297CFF8F2F937E88314F667B0CA50CC7709A220B0561B85E53A48461FA8"
	paymentID       = "8D1F2A9C0D6AB3F301BEF8F2448D9D4E6AA553DFD86AFFACEA68CA7DD1D925F1"
)

func passphraseKey(passphrase string, keyType crypto.KeyType) *crypto.KeyPair {
	seed, err := crypto.GenerateFamilySeed(passphrase)
	if err != nil {
		panic(err)
	}
	key, err := crypto.NewKeyPair(seed.Payload(), keyType)
	if err != nil {
		panic(err)
	}
	return key
}

func payment() Object {
	return Object{
		"TransactionType": UInt16(PAYMENT),
		"Flags":           UInt32(2147483648),
		"Sequence":        UInt32(1),
		"Amount":          amountCheck(int64(1000000)),
		"Fee":             amountCheck(int64(12)),
		"Account":         accountCheck(masterAddress),
		"Destination":     accountCheck("rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe"),
	}
}

func (s *SigningSuite) TestPayment(c *C) {
	key := passphraseKey("masterpassphrase", crypto.ECDSA)
	c.Assert(key.Address(), Equals, masterAddress)

	tx := payment()
	signed, err := Sign(tx, key)
	c.Assert(err, IsNil)
	c.Check(HexCheck(signed.Blob), Equals, paymentSigned)
	c.Check(signed.Hash.String(), Equals, paymentID)
	c.Check(HexCheck(signed.Tx["TxnSignature"].(VariableLength)), Equals, paymentSig)

	hash, msg, err := SigningHash(signed.Tx)
	c.Assert(err, IsNil)
	c.Check(hash.String(), Equals, paymentSigHash)
	c.Check(HexCheck(msg), Equals, "53545800"+paymentUnsigned)

	c.Check(tx.Has("SigningPubKey"), Equals, false)
	c.Check(tx.Has("TxnSignature"), Equals, false)
	c.Check(CheckSignature(signed.Tx), IsNil)

	decoded, err := Deserialize(signed.Blob)
	c.Assert(err, IsNil)
	c.Check(CheckSignature(decoded), IsNil)
	id, _, err := TransactionID(decoded)
	c.Assert(err, IsNil)
	c.Check(id, Equals, signed.Hash)
}

func (s *SigningSuite) TestDeterministic(c *C) {
	key := passphraseKey("masterpassphrase", crypto.ECDSA)
	first, err := Sign(payment(), key)
	c.Assert(err, IsNil)
	for i := 0; i < 5; i++ {
		again, err := Sign(payment(), key)
		c.Assert(err, IsNil)
		c.Check(HexCheck(again.Blob), Equals, HexCheck(first.Blob))
	}
}

func (s *SigningSuite) TestPresetPublicKey(c *C) {
	key := passphraseKey("masterpassphrase", crypto.ECDSA)
	tx := payment()
	tx["SigningPubKey"] = VariableLength(key.Public())
	signed, err := Sign(tx, key)
	c.Assert(err, IsNil)
	c.Check(signed.Hash.String(), Equals, paymentID)

	tx["SigningPubKey"] = VariableLength(passphraseKey("other", crypto.ECDSA).Public())
	_, err = Sign(tx, key)
	c.Check(errors.Is(err, ErrSigningKeyMismatch), Equals, true)
}

func (s *SigningSuite) TestAlreadySigned(c *C) {
	key := passphraseKey("masterpassphrase", crypto.ECDSA)
	signed, err := Sign(payment(), key)
	c.Assert(err, IsNil)
	before := signed.Tx.Clone()
	_, err = Sign(signed.Tx, key)
	c.Check(err, Equals, ErrAlreadySigned)
	_, err = MultiSign(signed.Tx, key)
	c.Check(err, Equals, ErrAlreadySigned)
	c.Check(Equal(before, signed.Tx), Equals, true)
}

func (s *SigningSuite) TestUnsignable(c *C) {
	key := passphraseKey("masterpassphrase", crypto.ECDSA)
	for _, name := range []string{"TransactionType", "Account"} {
		tx := payment()
		delete(tx, name)
		_, err := Sign(tx, key)
		c.Check(errors.Is(err, ErrMissingField), Equals, true, Commentf(name))
	}
	tx := payment()
	tx["TransactionType"] = UInt16(999)
	_, err := Sign(tx, key)
	c.Check(errors.Is(err, ErrUnknownTransactionType), Equals, true)

	tx = payment()
	tx["Sequence"] = VariableLength{1}
	_, err = Sign(tx, key)
	c.Check(errors.Is(err, ErrFieldTypeMismatch), Equals, true)
}

func (s *SigningSuite) TestEd25519(c *C) {
	key := passphraseKey("masterpassphrase", crypto.Ed25519)
	tx := payment()
	tx["Account"] = NewAccountFromKey(key)
	signed, err := Sign(tx, key)
	c.Assert(err, IsNil)
	c.Check(signed.Tx["SigningPubKey"].(VariableLength)[0], Equals, byte(0xED))
	c.Check(signed.Tx["TxnSignature"].(VariableLength), HasLen, 64)
	c.Check(CheckSignature(signed.Tx), IsNil)

	again, err := Sign(tx, key)
	c.Assert(err, IsNil)
	c.Check(again.Hash, Equals, signed.Hash)
}

func (s *SigningSuite) TestTampered(c *C) {
	key := passphraseKey("masterpassphrase", crypto.ECDSA)
	signed, err := Sign(payment(), key)
	c.Assert(err, IsNil)

	tx := signed.Tx.Clone()
	tx["Sequence"] = UInt32(2)
	c.Check(errors.Is(CheckSignature(tx), ErrBadSignature), Equals, true)

	tx = signed.Tx.Clone()
	sig := tx["TxnSignature"].(VariableLength)
	sig[len(sig)-1] ^= 0x01
	c.Check(errors.Is(CheckSignature(tx), ErrBadSignature), Equals, true)

	tx = signed.Tx.Clone()
	delete(tx, "TxnSignature")
	c.Check(errors.Is(CheckSignature(tx), ErrMissingField), Equals, true)
}

func (s *SigningSuite) TestMultiSign(c *C) {
	alice := passphraseKey("alice", crypto.ECDSA)
	bob := passphraseKey("bob", crypto.Ed25519)
	carol := passphraseKey("carol", crypto.ECDSA)

	tx := payment()
	tx["Fee"] = amountCheck(int64(36))

	var signers []Object
	for _, key := range []crypto.Key{alice, bob, carol} {
		signer, err := MultiSign(tx, key)
		c.Assert(err, IsNil)
		signers = append(signers, signer)
	}
	c.Check(tx.Has("SigningPubKey"), Equals, false)

	signed, err := AddSigners(tx, signers[2], signers[0])
	c.Assert(err, IsNil)
	signed, err = AddSigners(signed.Tx, signers[1])
	c.Assert(err, IsNil)
	c.Check(signed.Tx["SigningPubKey"], HasLen, 0)

	list := signed.Tx["Signers"].(Array)
	c.Assert(list, HasLen, 3)
	for i := 1; i < len(list); i++ {
		prev, _ := signerAccount(list[i-1])
		next, _ := signerAccount(list[i])
		c.Check(prev.Less(next), Equals, true)
	}
	c.Check(CheckSignature(signed.Tx), IsNil)

	decoded, err := Deserialize(signed.Blob)
	c.Assert(err, IsNil)
	c.Check(CheckSignature(decoded), IsNil)

	_, err = AddSigners(signed.Tx, signers[0])
	c.Check(errors.Is(err, ErrInvalidArrayElement), Equals, true)

	tampered := signed.Tx.Clone()
	tampered["Sequence"] = UInt32(9)
	c.Check(errors.Is(CheckSignature(tampered), ErrBadSignature), Equals, true)
}
