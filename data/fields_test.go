package data

import (
	"bytes"
	"errors"

	. "github.com/anyswap/ripple-signer/internal/checks"
	. "gopkg.in/check.v1"
)

type FieldSuite struct{}

var _ = Suite(&FieldSuite{})

func headerCheck(name string) string {
	f, err := LookupByName(name)
	if err != nil {
		panic(err)
	}
	return HexCheck(f.Header())
}

var headerTests = TestSlice{
	{Obtained: headerCheck("TransactionType"), Checker: Equals, Expected: "12", Description: "type < 16, field < 16"},
	{Obtained: headerCheck("MemoType"), Checker: Equals, Expected: "7C", Description: "VL field 12"},
	{Obtained: headerCheck("Version"), Checker: Equals, Expected: "1010", Description: "type < 16, field >= 16"},
	{Obtained: headerCheck("Signer"), Checker: Equals, Expected: "E010", Description: "object field 16"},
	{Obtained: headerCheck("CloseResolution"), Checker: Equals, Expected: "0110", Description: "type >= 16, field < 16"},
	{Obtained: headerCheck("TickSize"), Checker: Equals, Expected: "001010", Description: "type >= 16, field >= 16"},
	{Obtained: headerCheck("EndOfObject"), Checker: Equals, Expected: "E1", Description: "object terminator"},
	{Obtained: headerCheck("EndOfArray"), Checker: Equals, Expected: "F1", Description: "array terminator"},
	{Obtained: ErrorCheck(LookupByName("Nonsense")), Checker: ErrorMatches, Expected: "unknown field: Nonsense", Description: "unknown name"},
	{Obtained: ErrorCheck(LookupByCode(ST_UINT16, 15)), Checker: ErrorMatches, Expected: "unknown field: type 1 field 15", Description: "unknown code"},
}

func (s *FieldSuite) TestHeaders(c *C) {
	headerTests.Test(c)
}

func typeCheck(v interface{}, err error) interface{} {
	if err != nil {
		panic(err)
	}
	return v
}

// package level, so the type name tables must be ready before init runs
var typeNameTests = TestSlice{
	{Obtained: typeCheck(ParseTransactionType("Payment")), Checker: Equals, Expected: PAYMENT, Description: "Payment"},
	{Obtained: typeCheck(ParseTransactionType("SignerListSet")), Checker: Equals, Expected: SIGNER_LIST_SET, Description: "SignerListSet"},
	{Obtained: typeCheck(ParseLedgerEntryType("AccountRoot")).(LedgerEntryType).String(), Checker: Equals, Expected: "AccountRoot", Description: "AccountRoot"},
	{Obtained: ErrorCheck(ParseTransactionType("Teleport")), Checker: ErrorMatches, Expected: "unknown transaction type: Teleport", Description: "unknown type"},
}

func (s *FieldSuite) TestTypeNames(c *C) {
	typeNameTests.Test(c)
}

func (s *FieldSuite) TestTerminators(c *C) {
	c.Assert(endOfObject, NotNil)
	c.Assert(endOfArray, NotNil)
	c.Check(HexCheck(endOfObject.Header()), Equals, "E1")
	c.Check(HexCheck(endOfArray.Header()), Equals, "F1")
}

func (s *FieldSuite) TestCatalog(c *C) {
	fields := Fields()
	c.Assert(len(fields) > 100, Equals, true)
	for i := range fields {
		f := &fields[i]
		byName, err := LookupByName(f.Name)
		c.Assert(err, IsNil)
		byCode, err := LookupByCode(f.Type, f.Code)
		c.Assert(err, IsNil)
		c.Check(byName, Equals, byCode, Commentf(f.Name))
		c.Check(*byName, Equals, *f)
		if i > 0 {
			c.Check(fields[i-1].Less(f), Equals, true, Commentf("%s before %s", fields[i-1].Name, f.Name))
		}
		// every header reads back to the same field
		got, err := readEncoding(bytes.NewReader(f.Header()))
		c.Assert(err, IsNil)
		c.Check(got, Equals, byName)
	}
	// Fields returns a copy
	fields[0].Name = "Changed"
	c.Check(Fields()[0].Name, Not(Equals), "Changed")
}

func (s *FieldSuite) TestSigningFlags(c *C) {
	for _, name := range []string{"TxnSignature", "Signature", "MasterSignature", "Signers"} {
		f, err := LookupByName(name)
		c.Assert(err, IsNil)
		c.Check(f.Signing, Equals, false, Commentf(name))
	}
	for _, name := range []string{"SigningPubKey", "Account", "Amount", "Memos"} {
		f, err := LookupByName(name)
		c.Assert(err, IsNil)
		c.Check(f.Signing, Equals, true, Commentf(name))
	}
}

func (s *FieldSuite) TestOrdering(c *C) {
	seq, _ := LookupByName("Sequence")
	flags, _ := LookupByName("Flags")
	amount, _ := LookupByName("Amount")
	tickSize, _ := LookupByName("TickSize")
	c.Check(CompareFields(flags, seq), Equals, -1)
	c.Check(CompareFields(seq, flags), Equals, 1)
	c.Check(CompareFields(seq, seq), Equals, 0)
	c.Check(seq.Less(amount), Equals, true)
	c.Check(amount.Less(tickSize), Equals, true)
}

func (s *FieldSuite) TestNonCanonicalHeaders(c *C) {
	for _, h := range []string{"0105", "2002", "001001", "000510"} {
		_, err := readEncoding(bytes.NewReader(h2b(h)))
		c.Check(errors.Is(err, ErrNonCanonicalHeader), Equals, true, Commentf("%s: %v", h, err))
	}
	_, err := readEncoding(bytes.NewReader(h2b("00")))
	c.Check(errors.Is(err, ErrTruncatedInput), Equals, true)
}

func (s *FieldSuite) TestVariableLength(c *C) {
	for _, t := range []struct {
		length int
		prefix string
	}{
		{0, "00"},
		{1, "01"},
		{192, "C0"},
		{193, "C100"},
		{12480, "F0FF"},
		{12481, "F10000"},
		{918744, "FED417"},
	} {
		var buf bytes.Buffer
		c.Assert(writeVariableLength(&buf, make([]byte, t.length)), IsNil)
		c.Check(buf.Len(), Equals, t.length+len(t.prefix)/2)
		c.Check(HexCheck(buf.Bytes()[:len(t.prefix)/2]), Equals, t.prefix)
		n, err := readVariableLength(bytes.NewReader(h2b(t.prefix)))
		c.Assert(err, IsNil)
		c.Check(n, Equals, t.length)
	}
	var buf bytes.Buffer
	err := writeVariableLength(&buf, make([]byte, 918745))
	c.Check(errors.Is(err, ErrNonCanonicalLength), Equals, true)

	_, err = readVariableLength(bytes.NewReader(h2b("FF0000")))
	c.Check(errors.Is(err, ErrNonCanonicalLength), Equals, true)
	_, err = readVariableLength(bytes.NewReader(h2b("C1")))
	c.Check(errors.Is(err, ErrTruncatedInput), Equals, true)
	_, err = readVariableLength(bytes.NewReader(h2b("F100")))
	c.Check(errors.Is(err, ErrTruncatedInput), Equals, true)
}

func (s *FieldSuite) TestHashPrefix(c *C) {
	c.Check(HP_TRANSACTION_SIGN.String(), Equals, "STX")
	c.Check(HP_TRANSACTION_ID.String(), Equals, "TXN")
	c.Check(HP_TRANSACTION_MULTISIGN.String(), Equals, "SMT")
	c.Check(HexCheck(HP_TRANSACTION_SIGN.Bytes()), Equals, "53545800")
}
