package data

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MarshalJSON renders obj the way rippled does: drops as strings, issued
// amounts as {currency, issuer, value}, hashes and blobs as upper case hex,
// UInt64 as 16 hex digits and transaction/ledger entry types by name.
func (obj Object) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(obj))
	for name, v := range obj {
		j, err := jsonValue(name, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		m[name] = j
	}
	return json.Marshal(m)
}

func jsonValue(name string, v FieldValue) (interface{}, error) {
	switch x := deref(v).(type) {
	case UInt8:
		return uint8(x), nil
	case UInt16:
		switch {
		case name == "TransactionType" && TransactionType(x).IsKnown():
			return TransactionType(x).String(), nil
		case name == "LedgerEntryType":
			if _, ok := ledgerEntryNames[LedgerEntryType(x)]; ok {
				return LedgerEntryType(x).String(), nil
			}
		}
		return uint16(x), nil
	case UInt32:
		return uint32(x), nil
	case UInt64:
		return x.String(), nil
	case Hash128, Hash160, Hash256, VariableLength, Account, Amount, PathSet, Vector256, Object, Array:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrFieldTypeMismatch, v)
	}
}

// UnmarshalJSON accepts rippled's JSON. Keys starting with a lower case
// letter (hash, ledger_index, meta...) are API decoration and are skipped;
// any other unknown key is an error.
func (obj *Object) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	o := make(Object, len(raw))
	for name, msg := range raw {
		if name == "" || unicode.IsLower(rune(name[0])) {
			continue
		}
		f, err := LookupByName(name)
		if err != nil {
			return err
		}
		v, err := valueFromJSON(f, msg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		o[name] = v
	}
	*obj = o
	return nil
}

func valueFromJSON(f *Field, msg json.RawMessage) (FieldValue, error) {
	switch f.Type {
	case ST_UINT8:
		var n uint8
		err := json.Unmarshal(msg, &n)
		return UInt8(n), err
	case ST_UINT16:
		return uint16FromJSON(f, msg)
	case ST_UINT32:
		var n uint32
		err := json.Unmarshal(msg, &n)
		return UInt32(n), err
	case ST_UINT64:
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return nil, err
		}
		n, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFieldTypeMismatch, err)
		}
		return UInt64(n), nil
	case ST_HASH128:
		var h Hash128
		err := json.Unmarshal(msg, &h)
		return h, err
	case ST_HASH160:
		var h Hash160
		err := json.Unmarshal(msg, &h)
		return h, err
	case ST_HASH256:
		var h Hash256
		err := json.Unmarshal(msg, &h)
		return h, err
	case ST_VL:
		var v VariableLength
		err := json.Unmarshal(msg, &v)
		return v, err
	case ST_ACCOUNT:
		var a Account
		err := json.Unmarshal(msg, &a)
		return a, err
	case ST_AMOUNT:
		a := new(Amount)
		if err := json.Unmarshal(msg, a); err != nil {
			return nil, err
		}
		return a, nil
	case ST_PATHSET:
		var ps PathSet
		err := json.Unmarshal(msg, &ps)
		return ps, err
	case ST_VECTOR256:
		var v Vector256
		err := json.Unmarshal(msg, &v)
		return v, err
	case ST_OBJECT:
		var o Object
		err := json.Unmarshal(msg, &o)
		return o, err
	case ST_ARRAY:
		var a Array
		if err := json.Unmarshal(msg, &a); err != nil {
			return nil, err
		}
		for i, elem := range a {
			if len(elem) != 1 {
				return nil, fmt.Errorf("%w: element %d has %d fields", ErrInvalidArrayElement, i, len(elem))
			}
			for name := range elem {
				if inner, err := LookupByName(name); err != nil || inner.Type != ST_OBJECT {
					return nil, fmt.Errorf("%w: element %d is %s", ErrInvalidArrayElement, i, name)
				}
			}
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: no JSON form for %s", ErrUnknownField, f.Type)
	}
}

func uint16FromJSON(f *Field, msg json.RawMessage) (FieldValue, error) {
	if len(msg) == 0 || msg[0] != '"' {
		var n uint16
		err := json.Unmarshal(msg, &n)
		return UInt16(n), err
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return nil, err
	}
	switch f.Name {
	case "TransactionType":
		typ, err := ParseTransactionType(s)
		return UInt16(typ), err
	case "LedgerEntryType":
		typ, err := ParseLedgerEntryType(s)
		return UInt16(typ), err
	default:
		return nil, fmt.Errorf("%w: string %q for %s", ErrFieldTypeMismatch, s, f.Name)
	}
}

func (v *Value) MarshalText() ([]byte, error) {
	if v.IsNative() {
		num := strconv.FormatUint(v.num, 10)
		if v.IsNegative() {
			num = "-" + num
		}
		return []byte(num), nil
	}
	return []byte(v.String()), nil
}

// UnmarshalText reads integer drops.
func (v *Value) UnmarshalText(b []byte) error {
	if strings.ContainsAny(string(b), ".eE") {
		return fmt.Errorf("%w: drops must be an integer: %q", ErrAmountOutOfRange, b)
	}
	value, err := NewValue(string(b), true)
	if err != nil {
		return err
	}
	*v = *value
	return nil
}

type NonNativeValue struct {
	Value
}

func (v *NonNativeValue) UnmarshalText(b []byte) error {
	value, err := NewValue(string(b), false)
	if err != nil {
		return err
	}
	v.Value = *value
	return nil
}

type amountJSON struct {
	Value    *NonNativeValue `json:"value"`
	Currency Currency        `json:"currency"`
	Issuer   Account         `json:"issuer"`
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Value == nil {
		return nil, fmt.Errorf("Amount has a nil Value")
	}
	if a.IsNative() {
		text, _ := a.Value.MarshalText()
		return json.Marshal(string(text))
	}
	return json.Marshal(amountJSON{&NonNativeValue{*a.Value}, a.Currency, a.Issuer})
}

func (a *Amount) UnmarshalJSON(b []byte) (err error) {
	if len(b) > 0 && b[0] != '{' {
		a.Value = new(Value)
		return json.Unmarshal(b, a.Value)
	}
	var dummy amountJSON
	if err := json.Unmarshal(b, &dummy); err != nil {
		return err
	}
	if dummy.Value == nil {
		return fmt.Errorf("%w: issued amount without value", ErrMissingField)
	}
	a.Value, a.Currency, a.Issuer = &dummy.Value.Value, dummy.Currency, dummy.Issuer
	return nil
}

func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = NewCurrency(string(text))
	return err
}

// decodeFixedHex fills dest from exactly 2*len(dest) hex digits.
func decodeFixedHex(dest, b []byte, name string) error {
	if len(b) != hex.EncodedLen(len(dest)) {
		return fmt.Errorf("%w: %s needs %d hex digits, got %d", ErrFieldTypeMismatch, name, hex.EncodedLen(len(dest)), len(b))
	}
	_, err := hex.Decode(dest, b)
	return err
}

func (h Hash128) MarshalText() ([]byte, error) {
	return b2h(h[:]), nil
}

func (h *Hash128) UnmarshalText(b []byte) error {
	return decodeFixedHex(h[:], b, "Hash128")
}

func (h Hash160) MarshalText() ([]byte, error) {
	return b2h(h[:]), nil
}

func (h *Hash160) UnmarshalText(b []byte) error {
	return decodeFixedHex(h[:], b, "Hash160")
}

func (h Hash256) MarshalText() ([]byte, error) {
	return b2h(h[:]), nil
}

func (h *Hash256) UnmarshalText(b []byte) error {
	return decodeFixedHex(h[:], b, "Hash256")
}

func (a Account) MarshalText() ([]byte, error) {
	address, err := a.Hash()
	if err != nil {
		return nil, err
	}
	return address.MarshalText()
}

// Expects base58-encoded account id
func (a *Account) UnmarshalText(b []byte) error {
	account, err := NewAccountFromAddress(string(b))
	if err != nil {
		return err
	}
	copy(a[:], account[:])
	return nil
}

func (v VariableLength) MarshalText() ([]byte, error) {
	return b2h(v), nil
}

// Expects variable length hex
func (v *VariableLength) UnmarshalText(b []byte) error {
	var err error
	*v, err = hex.DecodeString(string(b))
	return err
}

func (i UInt64) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *UInt64) UnmarshalText(b []byte) error {
	n, err := strconv.ParseUint(string(b), 16, 64)
	*i = UInt64(n)
	return err
}
