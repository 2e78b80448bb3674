package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	. "gopkg.in/check.v1"
)

type KeySuite struct{}

var _ = Suite(&KeySuite{})

func checkHash(h Hash, err error) string {
	if err != nil {
		panic(err)
	}
	return h.String()
}

func checkSignature(c *C, privateKey, publicKey, hash, msg []byte) bool {
	sig, err := Sign(privateKey, hash, msg)
	c.Assert(err, IsNil)
	ok, err := Verify(publicKey, hash, msg, sig)
	c.Assert(err, IsNil)
	return ok
}

func b2h(b []byte) string {
	return fmt.Sprintf("%X", b)
}

func h2b(s string) []byte {
	h, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Examples from https://ripple.com/wiki/Account_Family
func (s *KeySuite) TestWikiVectors(c *C) {
	zero, err := NewRippleHash("0")
	c.Check(err, IsNil)
	c.Check(zero.String(), Equals, ACCOUNT_ZERO)
	c.Check(b2h(Sha512Half(zero.PayloadTrimmed())), Equals, "B8244D028981D693AF7B456AF8EFA4CAD63D282E19FF14942C246E50D9351D22")

	seed := h2b("71ED064155FFADFA38782C5E0158CB26")
	key, err := NewECDSAKey(seed)
	c.Assert(err, IsNil)
	root := key.Root()
	c.Check(b2h(root.Private()), Equals, "7CFBA64F771E93E817E15039215430B53F7401C34931D111EAB3510B22DBB0D8")
	c.Check(checkHash(NodePublicKey(root)), Equals, "n9MXXueo837zYH36DvMc13BwHcqtfAWNJY5czWVbp7uYTj7x17TH")
	c.Check(checkHash(NodePrivateKey(root)), Equals, "pa91wmE8V8K63SAMGMpdFpik8wGAcbUdSmHABccV9jFfqhTijH1")

	account, err := key.Derive(0)
	c.Assert(err, IsNil)
	c.Check(checkHash(AccountId(account)), Equals, "rhcfR9Cg98qCxHpCcPBmMonbDBXo84wyTn")
	c.Check(checkHash(AccountPublicKey(account)), Equals, "aBRoQibi2jpDofohooFuzZi9nEzKw9Zdfc4ExVNmuXHaJpSPh8uJ")
	c.Check(checkHash(AccountPrivateKey(account)), Equals, "pwMPbuE25rnajigDPBEh9Pwv8bMV2ebN9gVPTWTh4c3DtB14iGL")
}

// Examples from https://github.com/ripple/rippled/blob/develop/src/ripple_data/protocol/RippleAddress.cpp
func (s *KeySuite) TestRippledVectors(c *C) {
	seed, err := GenerateFamilySeed("masterpassphrase")
	c.Check(err, IsNil)
	c.Check(seed.String(), Equals, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
	key, err := NewECDSAKey(seed.Payload())
	c.Assert(err, IsNil)
	c.Check(checkHash(NodePublicKey(key.Root())), Equals, "n94a1u4jAz288pZLtw6yFWVbi89YamiC6JBXPVUj5zmExe5fTVg9")
	c.Check(checkHash(NodePrivateKey(key.Root())), Equals, "pnen77YEeUd4fFKG7iycBWcwKpTaeFRkW2WFostaATy1DSupwXe")

	zero, err := key.Derive(0)
	c.Assert(err, IsNil)
	c.Check(checkHash(AccountId(zero)), Equals, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	c.Check(checkHash(AccountPublicKey(zero)), Equals, "aBQG8RQAzjs1eTKFEAQXr2gS4utcDiEC9wmi7pfUPTi27VCahwgw")
	c.Check(checkHash(AccountPrivateKey(zero)), Equals, "p9JfM6HHi64m6mvB6v5k7G2b1cXzGmYiCNJf6GHPKvFTWdeRVjh")

	one, err := key.Derive(1)
	c.Assert(err, IsNil)
	c.Check(checkHash(AccountId(one)), Equals, "r4bYF7SLUMD7QgSLLpgJx38WJSY12ViRjP")
	c.Check(checkHash(AccountPublicKey(one)), Equals, "aBPXpTfuLy1Bhk3HnGTTAqnovpKWQ23NpFMNkAF6F1Atg5vDyPrw")
	c.Check(checkHash(AccountPrivateKey(one)), Equals, "p9JEm822LMrzJii1k7TvdphfENTp6G5jr253Xa5rkzUWVr8ogQt")

	msg := []byte("Hello, nurse!")
	hash := Sha512Half(msg)
	root := key.Root()
	c.Check(checkSignature(c, root.Private(), root.Public(), hash, msg), Equals, true)
	c.Check(checkSignature(c, zero.Private(), zero.Public(), hash, msg), Equals, true)
	c.Check(checkSignature(c, one.Private(), one.Public(), hash, msg), Equals, true)
	c.Check(checkSignature(c, one.Private(), zero.Public(), hash, msg), Equals, false)
	c.Check(checkSignature(c, zero.Private(), one.Public(), hash, msg), Equals, false)
}

func (s *KeySuite) TestDeriveKeyPair(c *C) {
	seed, err := GenerateFamilySeed("masterpassphrase")
	c.Assert(err, IsNil)
	key, err := DeriveKeyPair(seed.Payload())
	c.Assert(err, IsNil)
	c.Check(key.Type(), Equals, ECDSA)
	c.Check(b2h(key.Public()), Equals, "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	c.Check(b2h(key.Private()), Equals, "1ACAAEDECE405B2A958212629E16F2EB46B153EEE94CDD350FDEFF52795525B7")
	c.Check(key.Address(), Equals, ROOT)
	c.Check(b2h(DeriveAccountId(key.Public())), Equals, b2h(key.Id()))

	fromSecret, err := KeyPairFromSecret("snoPBrXtMeMyMHUVTgbuqAfg1SUTb", ECDSA)
	c.Assert(err, IsNil)
	c.Check(b2h(fromSecret.Private()), Equals, b2h(key.Private()))
}

func (s *KeySuite) TestDeterministicSignature(c *C) {
	seed, err := GenerateFamilySeed("masterpassphrase")
	c.Assert(err, IsNil)
	key, err := DeriveKeyPair(seed.Payload())
	c.Assert(err, IsNil)
	msg := []byte("Hello, nurse!")
	hash := Sha512Half(msg)
	first, err := key.Sign(hash, msg)
	c.Assert(err, IsNil)
	second, err := key.Sign(hash, msg)
	c.Assert(err, IsNil)
	c.Check(b2h(first), Equals, b2h(second))
	c.Check(b2h(first), Equals, "3045022100F4F1DBFD0BE9F965A903654C8AE47612814CFE2B33A19F879698D86A3BDAAEFE022030F010A16D0C12BCBAC95CEF9F5539D64C39CC36D4B0440E2A0D414F3516A003")
}

func (s *KeySuite) TestInvalidSeed(c *C) {
	_, err := DeriveKeyPair(make([]byte, 15))
	c.Check(errors.Is(err, ErrInvalidSeed), Equals, true)
	_, err = NewEd25519Key(make([]byte, 17))
	c.Check(errors.Is(err, ErrInvalidSeed), Equals, true)
	_, err = KeyPairFromSecret(ROOT, ECDSA)
	c.Check(errors.Is(err, ErrInvalidSeed), Equals, true)
}

func (s *KeySuite) TestNilSeed(c *C) {
	_, err := DeriveKeyPair(nil)
	c.Check(errors.Is(err, ErrInvalidSeed), Equals, true)
	_, err = NewECDSAKey(nil)
	c.Check(errors.Is(err, ErrInvalidSeed), Equals, true)
	_, err = NewEd25519Key(nil)
	c.Check(errors.Is(err, ErrInvalidSeed), Equals, true)
	for _, keyType := range []KeyType{ECDSA, Ed25519} {
		_, err = NewKeyPair(nil, keyType)
		c.Check(errors.Is(err, ErrInvalidSeed), Equals, true, Commentf("%s", keyType))
		_, err = NewKeyPair([]byte{}, keyType)
		c.Check(errors.Is(err, ErrInvalidSeed), Equals, true, Commentf("%s", keyType))
	}
}

func (s *KeySuite) TestDerivationExhausted(c *C) {
	saved := maxDerivationAttempts
	defer func() { maxDerivationAttempts = saved }()
	maxDerivationAttempts = 0
	_, err := DeriveKeyPair(h2b("71ED064155FFADFA38782C5E0158CB26"))
	c.Check(err, Equals, ErrDerivationExhausted)
}

func (s *KeySuite) TestKeyType(c *C) {
	for _, name := range []string{"", "secp256k1", "ECDSA"} {
		t, err := ParseKeyType(name)
		c.Check(err, IsNil)
		c.Check(t, Equals, ECDSA)
	}
	t, err := ParseKeyType("ed25519")
	c.Check(err, IsNil)
	c.Check(t.String(), Equals, "ed25519")
	_, err = ParseKeyType("rsa")
	c.Check(errors.Is(err, ErrUnknownKeyFormat), Equals, true)
}

func (s *KeySuite) TestEd25519(c *C) {
	seed, err := GenerateFamilySeed("masterpassphrase")
	c.Check(err, IsNil)
	key, err := NewEd25519Key(seed.Payload())
	c.Assert(err, IsNil)
	c.Check(key.Type(), Equals, Ed25519)
	c.Check(checkHash(NodePublicKey(key)), Equals, "nHUeeJCSY2dM71oxM8Cgjouf5ekTuev2mwDpc374aLMxzDLXNmjf")
	c.Check(checkHash(AccountId(key)), Equals, "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf")
	c.Check(checkHash(AccountPublicKey(key)), Equals, "aKGheSBjmCsKJVuLNKRAKpZXT6wpk2FCuEZAXJupXgdAxX5THCqR")

	otherSeed, err := NewRandomSeed()
	c.Assert(err, IsNil)
	other, err := NewEd25519Key(otherSeed.Payload())
	c.Assert(err, IsNil)

	msg := []byte("Hello, nurse!")
	hash := Sha512Half(msg)

	c.Check(checkSignature(c, key.Private(), key.Public(), hash, msg), Equals, true)
	c.Check(checkSignature(c, other.Private(), other.Public(), hash, msg), Equals, true)
	c.Check(checkSignature(c, key.Private(), other.Public(), hash, msg), Equals, false)
	c.Check(checkSignature(c, other.Private(), key.Public(), hash, msg), Equals, false)
}

func (s *KeySuite) TestUnknownKeyFormat(c *C) {
	_, err := Sign(make([]byte, 31), nil, nil)
	c.Check(errors.Is(err, ErrUnknownKeyFormat), Equals, true)
	_, err = Verify([]byte{0x05, 0x01}, nil, nil, nil)
	c.Check(errors.Is(err, ErrUnknownKeyFormat), Equals, true)
}
