package data

import (
	"encoding/binary"
	"fmt"
	"io"
)

func uint64Bytes(u uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, u)
	return b
}

func writeAmount(w io.Writer, a Amount) error {
	c, err := a.canonical()
	if err != nil {
		return err
	}
	_, err = w.Write(c.Bytes())
	return err
}

// readAmount accepts only the canonical encoding: normalized mantissa,
// a single zero pattern per kind and a non-XRP currency for issued values.
func readAmount(r Reader) (*Amount, error) {
	var b [8]byte
	if err := readFull(r, b[:], "amount"); err != nil {
		return nil, err
	}
	u := binary.BigEndian.Uint64(b[:])
	negative := u&positive == 0
	if u&notNative == 0 {
		num := u & nativeMask
		switch {
		case negative && num == 0:
			return nil, fmt.Errorf("%w: negative zero drops", ErrAmountOutOfRange)
		case num > maxNativeNetwork:
			return nil, fmt.Errorf("%w: %d drops exceeds %d", ErrAmountOutOfRange, num, maxNativeNetwork)
		}
		return &Amount{Value: newValue(true, negative, num, 0)}, nil
	}
	amount := new(Amount)
	if err := readFull(r, amount.Currency[:], "amount currency"); err != nil {
		return nil, err
	}
	if err := readFull(r, amount.Issuer[:], "amount issuer"); err != nil {
		return nil, err
	}
	if amount.Currency.IsNative() {
		return nil, fmt.Errorf("%w: issued amount with XRP currency", ErrInvalidCurrency)
	}
	if u == notNative {
		amount.Value = zeroNonNative.Clone()
		return amount, nil
	}
	num := u & mantissaMask
	offset := int64((u>>54)&0xFF) - 97
	switch {
	case num < minValue || num > maxValue:
		return nil, fmt.Errorf("%w: mantissa %d not normalized", ErrAmountOutOfRange, num)
	case offset < minOffset || offset > maxOffset:
		return nil, fmt.Errorf("%w: exponent %d", ErrAmountOutOfRange, offset)
	}
	amount.Value = newValue(false, negative, num, offset)
	return amount, nil
}

func writePathSet(w io.Writer, ps PathSet) error {
	if len(ps) == 0 {
		return fmt.Errorf("%w: empty path set", ErrInvalidPath)
	}
	var b []byte
	for i, path := range ps {
		if len(path) == 0 {
			return fmt.Errorf("%w: empty path %d", ErrInvalidPath, i)
		}
		if i > 0 {
			b = append(b, byte(PATH_BOUNDARY))
		}
		for _, pe := range path {
			entry := pe.pathEntry()
			if entry == 0 {
				return fmt.Errorf("%w: empty element in path %d", ErrInvalidPath, i)
			}
			b = append(b, byte(entry))
			b = append(b, pe.Account.Bytes()...)
			b = append(b, pe.Currency.Bytes()...)
			b = append(b, pe.Issuer.Bytes()...)
		}
	}
	b = append(b, byte(PATH_END))
	_, err := w.Write(b)
	return err
}

func readPathSet(r Reader) (PathSet, error) {
	var ps PathSet
	var path Path
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, truncated(err, "path set")
		}
		switch entry := pathEntry(b); {
		case entry == PATH_END, entry == PATH_BOUNDARY:
			if len(path) == 0 {
				return nil, fmt.Errorf("%w: empty path %d", ErrInvalidPath, len(ps))
			}
			ps = append(ps, path)
			if entry == PATH_END {
				return ps, nil
			}
			path = nil
		case entry&^pathElemMask != 0:
			return nil, fmt.Errorf("%w: element type %#x", ErrInvalidPath, b)
		default:
			var pe PathElem
			if entry&PATH_ACCOUNT > 0 {
				pe.Account = new(Account)
				if err := readFull(r, pe.Account[:], "path account"); err != nil {
					return nil, err
				}
			}
			if entry&PATH_CURRENCY > 0 {
				pe.Currency = new(Currency)
				if err := readFull(r, pe.Currency[:], "path currency"); err != nil {
					return nil, err
				}
			}
			if entry&PATH_ISSUER > 0 {
				pe.Issuer = new(Account)
				if err := readFull(r, pe.Issuer[:], "path issuer"); err != nil {
					return nil, err
				}
			}
			path = append(path, pe)
		}
	}
}

func readVariable(r Reader, prefix string) ([]byte, error) {
	vr, err := NewVariableByteReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prefix, err)
	}
	b := make([]byte, vr.Len())
	if err := readFull(vr, b, prefix); err != nil {
		return nil, err
	}
	return b, nil
}

// readExpectedLength reads a variable length value which must hold exactly
// len(dest) bytes.
func readExpectedLength(r Reader, dest []byte, prefix string) error {
	b, err := readVariable(r, prefix)
	if err != nil {
		return err
	}
	if len(b) != len(dest) {
		return fmt.Errorf("%w: %s of %d bytes, expected %d", ErrNonCanonicalLength, prefix, len(b), len(dest))
	}
	copy(dest, b)
	return nil
}

func readVector256(r Reader) (Vector256, error) {
	b, err := readVariable(r, "Vector256")
	if err != nil {
		return nil, err
	}
	if len(b)%32 != 0 {
		return nil, fmt.Errorf("%w: Vector256 of %d bytes", ErrNonCanonicalLength, len(b))
	}
	v := make(Vector256, len(b)/32)
	for i := range v {
		copy(v[i][:], b[i*32:])
	}
	return v, nil
}

func writeVector256(w io.Writer, v Vector256) error {
	b := make([]byte, 0, len(v)*32)
	for _, h := range v {
		b = append(b, h[:]...)
	}
	return writeVariableLength(w, b)
}
