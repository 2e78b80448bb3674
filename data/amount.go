package data

import (
	"fmt"
	"strings"

	"github.com/anyswap/ripple-signer/crypto"
)

// Amount is either native drops (Currency and Issuer unused) or an issued
// value with its currency and issuer.
type Amount struct {
	*Value
	Currency Currency
	Issuer   Account
}

func newAmount(value *Value, currency Currency, issuer Account) *Amount {
	return &Amount{
		Value:    value,
		Currency: currency,
		Issuer:   issuer,
	}
}

// NewAmount accepts drops as an int64, or a string of the form
// "<value>", "<value>/XRP" or "<value>/<currency>/<issuer>".
func NewAmount(v interface{}) (*Amount, error) {
	switch n := v.(type) {
	case int64:
		value, err := NewNativeValue(n)
		if err != nil {
			return nil, err
		}
		return &Amount{Value: value}, nil
	case string:
		var err error
		amount := new(Amount)
		parts := strings.Split(strings.TrimSpace(n), "/")
		native := false
		switch {
		case len(parts) == 1:
			native = true
		case parts[1] == "XRP":
			native = true
			if !strings.Contains(parts[0], ".") {
				parts[0] = parts[0] + "."
			}
		}
		if amount.Value, err = NewValue(parts[0], native); err != nil {
			return nil, err
		}
		if len(parts) > 1 {
			if amount.Currency, err = NewCurrency(parts[1]); err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 {
			issuer, err := crypto.NewRippleHashCheck(parts[2], crypto.RIPPLE_ACCOUNT_ID)
			if err != nil {
				return nil, err
			}
			copy(amount.Issuer[:], issuer.Payload())
		}
		return amount, nil
	default:
		return nil, fmt.Errorf("bad amount type: %+v", v)
	}
}

func (a Amount) Equals(b Amount) bool {
	return a.Value.Equals(*b.Value) &&
		a.Currency == b.Currency &&
		a.Issuer == b.Issuer
}

// Returns true if the values are equal, but ignores the currency and issuer
func (a Amount) SameValue(b *Amount) bool {
	return a.Value.Equals(*b.Value)
}

func (a Amount) Clone() *Amount {
	return newAmount(a.Value.Clone(), a.Currency, a.Issuer)
}

// Returns a new Amount with the same currency and issuer, but a zero value
func (a Amount) ZeroClone() *Amount {
	return newAmount(a.Value.ZeroClone(), a.Currency, a.Issuer)
}

func (a Amount) IsPositive() bool {
	return !a.negative
}

func (a Amount) Negate() *Amount {
	return newAmount(a.Value.Negate(), a.Currency, a.Issuer)
}

func (a Amount) Abs() *Amount {
	return newAmount(a.Value.Abs(), a.Currency, a.Issuer)
}

func (a Amount) Add(b *Amount) (*Amount, error) {
	sum, err := a.Value.Add(*b.Value)
	if err != nil {
		return nil, err
	}
	return newAmount(sum, a.Currency, a.Issuer), nil
}

func (a Amount) Subtract(b *Amount) (*Amount, error) {
	return a.Add(b.Negate())
}

func (a Amount) Multiply(b *Amount) (*Amount, error) {
	product, err := a.Value.Multiply(*b.Value)
	if err != nil {
		return nil, err
	}
	return newAmount(product, a.Currency, a.Issuer), nil
}

func (num Amount) Divide(den *Amount) (*Amount, error) {
	quotient, err := num.Value.Divide(*den.Value)
	if err != nil {
		return nil, err
	}
	return newAmount(quotient, num.Currency, num.Issuer), nil
}

// Ratio returns the ratio between a and b.
// Returns a zero value when division is impossible
func (a Amount) Ratio(b Amount) *Value {
	ratio, err := a.Value.Ratio(*b.Value)
	switch {
	case err == nil:
		return ratio
	case a.IsNative():
		return zeroNative.Clone()
	default:
		return zeroNonNative.Clone()
	}
}

// canonical returns a copy ready for the wire or ErrAmountOutOfRange.
func (a Amount) canonical() (*Amount, error) {
	if a.Value == nil {
		return nil, fmt.Errorf("%w: nil value", ErrAmountOutOfRange)
	}
	c := a.Clone()
	if err := c.Value.canonicalise(); err != nil {
		return nil, err
	}
	if c.IsNative() {
		if c.num > maxNativeNetwork {
			return nil, fmt.Errorf("%w: %d drops exceeds %d", ErrAmountOutOfRange, c.num, maxNativeNetwork)
		}
		return c, nil
	}
	if c.Currency.IsNative() {
		return nil, fmt.Errorf("%w: issued amount with XRP currency", ErrInvalidCurrency)
	}
	return c, nil
}

// Bytes returns the wire form of a canonical amount.
func (a Amount) Bytes() []byte {
	if a.IsNative() {
		return a.Value.Bytes()
	}
	b := a.Value.Bytes()
	b = append(b, a.Currency[:]...)
	return append(b, a.Issuer[:]...)
}

// Amount in computer parsable form
func (a Amount) String() string {
	switch {
	case a.Value == nil:
		return "<nil>"
	case a.IsNative():
		return a.Value.String() + "/XRP"
	case a.Issuer.IsZero():
		return a.Value.String() + "/" + a.Currency.String()
	default:
		return a.Value.String() + "/" + a.Currency.String() + "/" + a.Issuer.String()
	}
}
