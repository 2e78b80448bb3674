package data

import (
	"encoding/binary"
	"fmt"
	"io"
)

type HashPrefix uint32

const (
	// Hash Prefixes
	HP_TRANSACTION_ID        HashPrefix = 0x54584E00 // 'TXN' transaction
	HP_TRANSACTION_SIGN      HashPrefix = 0x53545800 // 'STX' inner transaction to sign
	HP_TRANSACTION_MULTISIGN HashPrefix = 0x534D5400 // 'SMT' inner transaction to multi-sign
)

const (
	maxSingleByteLength = 192
	maxDoubleByteLength = 12480
	maxTripleByteLength = 918744
)

func (h HashPrefix) String() string {
	return string(h.Bytes()[:3])
}

func (h HashPrefix) Bytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(h))
	return b
}

func readEncoding(r Reader) (*Field, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, truncated(err, "field header")
	}
	typ, code := b>>4, b&0xF
	if typ == 0 {
		if typ, err = r.ReadByte(); err != nil {
			return nil, truncated(err, "field header")
		}
		if typ < 16 {
			return nil, fmt.Errorf("%w: type code %d in extended form", ErrNonCanonicalHeader, typ)
		}
	}
	if code == 0 {
		if code, err = r.ReadByte(); err != nil {
			return nil, truncated(err, "field header")
		}
		if code < 16 {
			return nil, fmt.Errorf("%w: field code %d in extended form", ErrNonCanonicalHeader, code)
		}
	}
	return LookupByCode(TypeCode(typ), code)
}

func writeEncoding(w io.Writer, f *Field) error {
	_, err := w.Write(f.Header())
	return err
}

func writeVariableLength(w io.Writer, b []byte) error {
	n := len(b)
	var err error
	switch {
	case n <= maxSingleByteLength:
		_, err = w.Write([]uint8{uint8(n)})
	case n <= maxDoubleByteLength:
		n -= maxSingleByteLength + 1
		_, err = w.Write([]uint8{193 + uint8(n>>8), uint8(n)})
	case n <= maxTripleByteLength:
		n -= maxDoubleByteLength + 1
		_, err = w.Write([]uint8{241 + uint8(n>>16), uint8(n >> 8), uint8(n)})
	default:
		return fmt.Errorf("%w: %d bytes exceeds variable length maximum", ErrNonCanonicalLength, n)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// readVariableLength decodes the three tier length prefix. Each tier starts
// where the previous one ends so every lead byte up to 254 has exactly one
// meaning; 255 is never produced by an encoder.
func readVariableLength(r Reader) (int, error) {
	var first, second, third byte
	var err error
	if first, err = r.ReadByte(); err != nil {
		return 0, truncated(err, "length prefix")
	}
	switch {
	case first <= 192:
		return int(first), nil
	case first <= 240:
		if second, err = r.ReadByte(); err != nil {
			return 0, truncated(err, "length prefix")
		}
		return 193 + int(first-193)*256 + int(second), nil
	case first <= 254:
		if second, err = r.ReadByte(); err != nil {
			return 0, truncated(err, "length prefix")
		}
		if third, err = r.ReadByte(); err != nil {
			return 0, truncated(err, "length prefix")
		}
		n := maxDoubleByteLength + 1 + int(first-241)*65536 + int(second)*256 + int(third)
		if n > maxTripleByteLength {
			return 0, fmt.Errorf("%w: %d bytes exceeds variable length maximum", ErrNonCanonicalLength, n)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: lead byte %#x", ErrNonCanonicalLength, first)
}

// readFull fills dest or fails with ErrTruncatedInput.
func readFull(r Reader, dest []byte, prefix string) error {
	if _, err := io.ReadFull(r, dest); err != nil {
		return truncated(err, prefix)
	}
	return nil
}

func truncated(err error, prefix string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %s", ErrTruncatedInput, prefix)
	}
	return fmt.Errorf("%s: %w", prefix, err)
}
