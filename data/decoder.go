package data

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Deserialize parses a canonical encoding. The whole input must be one
// object; any error discards everything decoded so far.
func Deserialize(b []byte) (Object, error) {
	return readObject(bytes.NewReader(b), false)
}

// ReadObject parses one object from r. When nested it must end with
// EndOfObject, otherwise it runs to the end of r.
func ReadObject(r Reader, nested bool) (Object, error) {
	return readObject(r, nested)
}

func readObject(r Reader, nested bool) (Object, error) {
	obj := make(Object)
	var prev *Field
	for {
		if r.Len() == 0 {
			if nested {
				return nil, fmt.Errorf("%w: missing EndOfObject", ErrUnterminatedContainer)
			}
			return obj, nil
		}
		f, err := readEncoding(r)
		if err != nil {
			return nil, err
		}
		switch {
		case f == endOfObject && nested:
			return obj, nil
		case f.IsTerminator():
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedTerminator, f.Name)
		case prev != nil && !prev.Less(f):
			return nil, fmt.Errorf("%w: %s after %s", ErrNonCanonicalOrder, f.Name, prev.Name)
		}
		v, err := readValue(r, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		obj[f.Name] = v
		prev = f
	}
}

func readArray(r Reader) (Array, error) {
	a := Array{}
	for {
		if r.Len() == 0 {
			return nil, fmt.Errorf("%w: missing EndOfArray", ErrUnterminatedContainer)
		}
		f, err := readEncoding(r)
		if err != nil {
			return nil, err
		}
		switch {
		case f == endOfArray:
			return a, nil
		case f.IsTerminator():
			return nil, fmt.Errorf("%w: %s in array", ErrUnexpectedTerminator, f.Name)
		case f.Type != ST_OBJECT:
			return nil, fmt.Errorf("%w: %s", ErrInvalidArrayElement, f.Name)
		}
		inner, err := readObject(r, true)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		a = append(a, Object{f.Name: inner})
	}
}

func readValue(r Reader, f *Field) (FieldValue, error) {
	switch f.Type {
	case ST_UINT8:
		b, err := r.ReadByte()
		if err != nil {
			return nil, truncated(err, "UInt8")
		}
		return UInt8(b), nil
	case ST_UINT16:
		var b [2]byte
		if err := readFull(r, b[:], "UInt16"); err != nil {
			return nil, err
		}
		return UInt16(binary.BigEndian.Uint16(b[:])), nil
	case ST_UINT32:
		var b [4]byte
		if err := readFull(r, b[:], "UInt32"); err != nil {
			return nil, err
		}
		return UInt32(binary.BigEndian.Uint32(b[:])), nil
	case ST_UINT64:
		var b [8]byte
		if err := readFull(r, b[:], "UInt64"); err != nil {
			return nil, err
		}
		return UInt64(binary.BigEndian.Uint64(b[:])), nil
	case ST_HASH128:
		var h Hash128
		if err := readFull(r, h[:], "Hash128"); err != nil {
			return nil, err
		}
		return h, nil
	case ST_HASH160:
		var h Hash160
		if err := readFull(r, h[:], "Hash160"); err != nil {
			return nil, err
		}
		return h, nil
	case ST_HASH256:
		var h Hash256
		if err := readFull(r, h[:], "Hash256"); err != nil {
			return nil, err
		}
		return h, nil
	case ST_VL:
		b, err := readVariable(r, "VariableLength")
		if err != nil {
			return nil, err
		}
		return VariableLength(b), nil
	case ST_ACCOUNT:
		var a Account
		if err := readExpectedLength(r, a[:], "Account"); err != nil {
			return nil, err
		}
		return a, nil
	case ST_VECTOR256:
		return nilOnError(readVector256(r))
	case ST_AMOUNT:
		return nilOnError(readAmount(r))
	case ST_PATHSET:
		return nilOnError(readPathSet(r))
	case ST_OBJECT:
		return nilOnError(readObject(r, true))
	case ST_ARRAY:
		return nilOnError(readArray(r))
	default:
		return nil, fmt.Errorf("%w: no codec for %s", ErrUnknownField, f.Type)
	}
}

// nilOnError keeps typed nils out of the FieldValue interface.
func nilOnError(v FieldValue, err error) (FieldValue, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
