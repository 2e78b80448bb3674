package data

import (
	"encoding/json"
	"errors"

	. "gopkg.in/check.v1"
)

type PathSuite struct{}

var _ = Suite(&PathSuite{})

func (s *PathSuite) TestPathElemOffer(c *C) {
	pe, err := newPathElem("BTC/rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9")
	c.Assert(err, IsNil)

	c.Assert(pe.Account, IsNil)
	c.Assert(pe.Currency.String(), Equals, "BTC")
	c.Assert(pe.Issuer.String(), Equals, "rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9")
	c.Assert(pe.pathEntry(), Equals, PATH_CURRENCY|PATH_ISSUER)
}

func (s *PathSuite) TestPathElemAccount(c *C) {
	pe, err := newPathElem("rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9")
	c.Assert(err, IsNil)

	c.Assert(pe.Account.String(), Equals, "rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9")
	c.Assert(pe.Currency, IsNil)
	c.Assert(pe.Issuer, IsNil)
	c.Assert(pe.pathEntry(), Equals, PATH_ACCOUNT)
}

func (s *PathSuite) TestPathElemError(c *C) {
	_, err := newPathElem("Foo")
	c.Assert(err, NotNil)
	_, err = newPathElem("BTC/rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9/extra")
	c.Assert(errors.Is(err, ErrInvalidPath), Equals, true)
}

func (s *PathSuite) TestPath(c *C) {
	p, err := NewPath("BTC/rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9 => r3ADD8kXSUKHd6zTCKfnKT3zV9EZHjzp1S")
	c.Assert(err, IsNil)

	c.Assert(p, HasLen, 2)
	c.Assert(p[0].Currency.String(), Equals, "BTC")
	c.Assert(p[0].Issuer.String(), Equals, "rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9")
	c.Assert(p[0].Account, IsNil)
	c.Assert(p[1].Currency, IsNil)
	c.Assert(p[1].Issuer, IsNil)
	c.Assert(p[1].Account.String(), Equals, "r3ADD8kXSUKHd6zTCKfnKT3zV9EZHjzp1S")
	c.Assert(p.String(), Equals, "BTC/rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9 => r3ADD8kXSUKHd6zTCKfnKT3zV9EZHjzp1S")

	sig1, err := p.Signature()
	c.Assert(err, IsNil)
	sig2, err := p[:1].Signature()
	c.Assert(err, IsNil)
	c.Assert(sig1, Not(Equals), sig2)
}

func (s *PathSuite) TestPathError(c *C) {
	_, err := NewPath("Foo")
	c.Assert(err, NotNil)
}

func (s *PathSuite) TestPathSetWire(c *C) {
	p, err := NewPath("BTC/rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9 => r3ADD8kXSUKHd6zTCKfnKT3zV9EZHjzp1S")
	c.Assert(err, IsNil)
	obj := Object{"Paths": PathSet{p, p[1:]}}
	b := serializeCheck(obj)
	c.Assert(b[:6], Equals, "011230")
	c.Assert(b[len(b)-2:], Equals, "00")
	decoded, err := Deserialize(h2b(b))
	c.Assert(err, IsNil)
	c.Assert(Equal(obj, decoded), Equals, true)
}

func (s *PathSuite) TestPathElemJSON(c *C) {
	p, err := NewPath("BTC/rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9")
	c.Assert(err, IsNil)
	b, err := json.Marshal(p[0])
	c.Assert(err, IsNil)
	c.Assert(string(b), Equals, `{"currency":"BTC","issuer":"rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9","type":48,"type_hex":"0000000000000030"}`)

	var pe PathElem
	c.Assert(json.Unmarshal(b, &pe), IsNil)
	c.Assert(pe.String(), Equals, p[0].String())
	c.Assert(errors.Is(json.Unmarshal([]byte(`{"type":1}`), &pe), ErrInvalidPath), Equals, true)
}
