package data

import (
	"encoding/json"
	"errors"
	"strings"

	. "github.com/anyswap/ripple-signer/internal/checks"
	. "gopkg.in/check.v1"
)

type CodecSuite struct{}

var _ = Suite(&CodecSuite{})

const (
	offerCreateBlob = "120007220008000024001ABED82A2380BF2C2019001ABED764D55920AC9391400000000000000000000000000055534400000000000A20B3C85F482532A9578DBB3950B85CA06594D165400000037E11D60068400000000000000A732103EE83BB432547885C219634A1BC407A9DB0474145D69737D09CCDC63E1DEE7FE3744630440220143759437C04F7B61F012563AFE90D8DAFC46E86035E1D965A9CED282C97D4CE02204CFD241E86F17E011298FC1A39B63386C74306A5DE047E213B0F29EFA4571C2C8114DD76483FACDEE26E60D8A586BB58D09F27045C46"
	offerCreateHash = "73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C"

	usdHex    = "0000000000000000000000005553440000000000"
	issuerHex = "B5F762798A53D543A014CAF8B297CFF8F2F937E8"
)

func richObject() Object {
	path, err := NewPath("BTC/rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9 => r3ADD8kXSUKHd6zTCKfnKT3zV9EZHjzp1S")
	if err != nil {
		panic(err)
	}
	direct, err := NewPath("r3ADD8kXSUKHd6zTCKfnKT3zV9EZHjzp1S")
	if err != nil {
		panic(err)
	}
	return Object{
		"TransactionType":   UInt16(PAYMENT),
		"Flags":             UInt32(131072),
		"Sequence":          UInt32(7),
		"DestinationTag":    UInt32(42),
		"IndexNext":         UInt64(0x1122334455667788),
		"EmailHash":         Hash128{1, 2, 3},
		"InvoiceID":         hash256Check("4F6E6365207570206F6E20612074696D652C20696E206120676C6F7269612E2E"),
		"TakerPaysCurrency": Hash160{0xAA},
		"Amount":            amountCheck("12.5/USD/rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"),
		"SendMax":           amountCheck("15/XRP"),
		"Fee":               amountCheck(int64(12)),
		"SigningPubKey":     VariableLength(h2b("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")),
		"Account":           accountCheck("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"),
		"Destination":       accountCheck("rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe"),
		"Paths":             PathSet{path, direct},
		"Amendments":        Vector256{hash256Check(offerCreateHash), zero256},
		"TickSize":          UInt8(5),
		"Memos": Array{
			Object{"Memo": Object{
				"MemoType": VariableLength("text/plain"),
				"MemoData": VariableLength(strings.Repeat("x", 300)),
			}},
			Object{"Memo": Object{"MemoFormat": VariableLength{}}},
		},
	}
}

func (s *CodecSuite) TestRoundTrip(c *C) {
	obj := richObject()
	b, err := Serialize(obj)
	c.Assert(err, IsNil)
	decoded, err := Deserialize(b)
	c.Assert(err, IsNil)
	c.Check(Equal(obj, decoded), Equals, true, Commentf("%s\n%s", obj, decoded))
	again, err := Serialize(decoded)
	c.Assert(err, IsNil)
	c.Check(HexCheck(again), Equals, HexCheck(b))
}

func (s *CodecSuite) TestOrderIndependence(c *C) {
	first := serializeCheck(richObject())
	for i := 0; i < 20; i++ {
		c.Check(serializeCheck(richObject()), Equals, first)
	}

	var a, b Object
	c.Assert(json.Unmarshal([]byte(`{"Sequence":1,"TransactionType":"AccountSet","Fee":"10","Account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"}`), &a), IsNil)
	c.Assert(json.Unmarshal([]byte(`{"Account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","Fee":"10","TransactionType":"AccountSet","Sequence":1}`), &b), IsNil)
	c.Check(serializeCheck(a), Equals, serializeCheck(b))
	c.Check(serializeCheck(a), Equals, "120003240000000168400000000000000A8114B5F762798A53D543A014CAF8B297CFF8F2F937E8")
}

func (s *CodecSuite) TestOfferCreate(c *C) {
	tx, err := Deserialize(h2b(offerCreateBlob))
	c.Assert(err, IsNil)
	c.Check(tx["TransactionType"], Equals, UInt16(OFFER_CREATE))
	c.Check(tx["Flags"], Equals, UInt32(524288))
	c.Check(tx["Sequence"], Equals, UInt32(1752792))
	c.Check(tx["OfferSequence"], Equals, UInt32(1752791))
	c.Check(tx["Expiration"], Equals, UInt32(595640108))
	c.Check(tx["Account"].(Account).String(), Equals, "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys")
	c.Check(tx["Fee"].(*Amount).String(), Equals, "0.00001/XRP")
	c.Check(tx["TakerGets"].(*Amount).Mantissa(), Equals, uint64(15000000000))
	c.Check(tx["TakerPays"].(*Amount).String(), Equals, "7072.8/USD/rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B")

	c.Check(serializeCheck(tx), Equals, offerCreateBlob)
	id, _, err := TransactionID(tx)
	c.Assert(err, IsNil)
	c.Check(id.String(), Equals, offerCreateHash)
	c.Check(CheckSignature(tx), IsNil)
}

func (s *CodecSuite) TestZeroAmounts(c *C) {
	c.Check(serializeCheck(Object{"Fee": amountCheck(int64(0))}), Equals, "684000000000000000")
	for _, v := range []string{"0", "-0", "0.0e10", "1e-100"} {
		c.Check(serializeCheck(Object{"Amount": amountCheck(v + "/USD/rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")}), Equals,
			"618000000000000000"+usdHex+issuerHex, Commentf(v))
	}
}

func (s *CodecSuite) TestSigningFields(c *C) {
	obj := Object{
		"Sequence":      UInt32(1),
		"TxnSignature":  VariableLength{0xAB},
		"TemplateEntry": Object{"TxnSignature": VariableLength{0xAB}},
		"Signers":       Array{},
	}
	b, err := SerializeForSigning(obj)
	c.Assert(err, IsNil)
	c.Check(HexCheck(b), Equals, "2400000001"+"E97401ABE1")
	c.Check(serializeCheck(obj), Equals, "2400000001"+"7401AB"+"E97401ABE1"+"F3F1")
}

var decodeErrorTests = []struct {
	blob        string
	err         error
	description string
}{
	{"120000228000000024000000016140000000", ErrTruncatedInput, "truncated native amount"},
	{"61D4838D7EA4C68000" + usdHex[:10], ErrTruncatedInput, "truncated issued amount"},
	{"1200", ErrTruncatedInput, "truncated UInt16"},
	{"7305AABB", ErrTruncatedInput, "blob longer than input"},
	{"1F0001", ErrUnknownField, "unknown field code"},
	{"24000000012280000000", ErrNonCanonicalOrder, "fields out of order"},
	{"24000000012400000002", ErrNonCanonicalOrder, "duplicate field"},
	{"EA7C0141", ErrUnterminatedContainer, "object without EndOfObject"},
	{"F9EA7C0141E1", ErrUnterminatedContainer, "array without EndOfArray"},
	{"E1", ErrUnexpectedTerminator, "top level EndOfObject"},
	{"EAF1", ErrUnexpectedTerminator, "EndOfArray inside object"},
	{"F98114" + issuerHex, ErrInvalidArrayElement, "array element is not an object"},
	{"73FF", ErrNonCanonicalLength, "length lead byte 255"},
	{"73FED418", ErrNonCanonicalLength, "length one past the maximum"},
	{"73FEFFFF", ErrNonCanonicalLength, "largest three byte prefix"},
	{"8113" + issuerHex[:38], ErrNonCanonicalLength, "19 byte account"},
	{"8100", ErrNonCanonicalLength, "empty account"},
	{"031321" + strings.Repeat("00", 33), ErrNonCanonicalLength, "Vector256 of 33 bytes"},
	{"0105", ErrNonCanonicalHeader, "extended type code below 16"},
	{"610000000000000000", ErrAmountOutOfRange, "negative zero drops"},
	{"61416345785D8A0001", ErrAmountOutOfRange, "more than 10^17 drops"},
	{"61D480000000000001" + usdHex + issuerHex, ErrAmountOutOfRange, "mantissa not normalized"},
	{"61C000000000000000" + usdHex + issuerHex, ErrAmountOutOfRange, "non-canonical issued zero"},
	{"61D4838D7EA4C68000" + strings.Repeat("00", 20) + issuerHex, ErrInvalidCurrency, "issued XRP"},
	{"011200", ErrInvalidPath, "empty path set"},
	{"011202" + issuerHex + "00", ErrInvalidPath, "unknown path element flag"},
	{"011201" + issuerHex + "FF00", ErrInvalidPath, "empty path after boundary"},
	{"011201" + issuerHex[:20], ErrTruncatedInput, "truncated path element"},
}

func (s *CodecSuite) TestDecodeErrors(c *C) {
	for _, t := range decodeErrorTests {
		obj, err := Deserialize(h2b(t.blob))
		c.Check(obj, IsNil, Commentf(t.description))
		c.Check(errors.Is(err, t.err), Equals, true, Commentf("%s: %v", t.description, err))
	}
}

func (s *CodecSuite) TestPointerValues(c *C) {
	seq, flags := UInt32(1), UInt32(0)
	memo := VariableLength{0xAB}
	byValue := Object{"Sequence": seq, "Flags": flags, "MemoData": memo}
	byPointer := Object{"Sequence": &seq, "Flags": &flags, "MemoData": &memo}
	c.Check(serializeCheck(byPointer), Equals, serializeCheck(byValue))
}

func (s *CodecSuite) TestEncodeErrors(c *C) {
	for _, t := range []struct {
		obj         Object
		err         error
		description string
	}{
		{Object{"Sequence": UInt16(1)}, ErrFieldTypeMismatch, "UInt16 in UInt32 field"},
		{Object{"Fee": (*Amount)(nil)}, ErrFieldTypeMismatch, "nil amount"},
		{Object{"Sequence": (*UInt32)(nil)}, ErrFieldTypeMismatch, "nil UInt32"},
		{Object{"MemoData": (*VariableLength)(nil)}, ErrFieldTypeMismatch, "nil blob"},
		{Object{"Memos": (*Array)(nil)}, ErrFieldTypeMismatch, "nil array"},
		{Object{"Account": VariableLength{1}}, ErrFieldTypeMismatch, "blob in account field"},
		{Object{"Nonsense": UInt32(1)}, ErrUnknownField, "unknown field"},
		{Object{"EndOfObject": Object{}}, ErrUnexpectedTerminator, "terminator as field"},
		{Object{"Memos": Array{Object{"Memo": Object{}, "Signer": Object{}}}}, ErrInvalidArrayElement, "two fields in element"},
		{Object{"Memos": Array{Object{"Account": accountCheck("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")}}}, ErrInvalidArrayElement, "account in array"},
		{Object{"Paths": PathSet{}}, ErrInvalidPath, "empty path set"},
		{Object{"Paths": PathSet{Path{PathElem{}}}}, ErrInvalidPath, "empty path element"},
		{Object{"Fee": amountCheck(int64(100000000000000001))}, ErrAmountOutOfRange, "too many drops"},
		{Object{"TemplateEntry": Object{"Fee": Hash256{}}}, ErrFieldTypeMismatch, "nested mismatch"},
	} {
		_, err := Serialize(t.obj)
		c.Check(errors.Is(err, t.err), Equals, true, Commentf("%s: %v", t.description, err))
	}
}

func (s *CodecSuite) TestClone(c *C) {
	obj := richObject()
	clone := obj.Clone()
	c.Assert(Equal(obj, clone), Equals, true)
	clone["Sequence"] = UInt32(8)
	clone["Memos"].(Array)[0]["Memo"].(Object)["MemoType"] = VariableLength("changed")
	clone["SigningPubKey"].(VariableLength)[0] = 0xFF
	c.Check(obj["Sequence"], Equals, UInt32(7))
	c.Check(string(obj["Memos"].(Array)[0]["Memo"].(Object)["MemoType"].(VariableLength)), Equals, "text/plain")
	c.Check(obj["SigningPubKey"].(VariableLength)[0], Equals, byte(0x03))
	c.Check(Equal(obj, clone), Equals, false)
}

func (s *CodecSuite) TestEqual(c *C) {
	a := Object{"Amount": amountCheck("10/USD/rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")}
	b := Object{"Amount": *amountCheck("1e1/USD/rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")}
	c.Check(Equal(a, b), Equals, true)
	c.Check(Equal(a, Object{"Amount": amountCheck("10/EUR/rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")}), Equals, false)
	c.Check(Equal(a, Object{"Fee": amountCheck("10/USD/rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")}), Equals, false)
	c.Check(Equal(Object{}, Object{}), Equals, true)
}
