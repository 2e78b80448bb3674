package data

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Serialize returns the canonical encoding of obj: every field present,
// ordered by (type code, field code), nested containers terminated.
func Serialize(obj Object) ([]byte, error) {
	return serialize(obj, false)
}

// SerializeForSigning omits the top level fields which are not signed
// (TxnSignature, Signature, MasterSignature, Signers).
func SerializeForSigning(obj Object) ([]byte, error) {
	return serialize(obj, true)
}

func serialize(obj Object, signing bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeObject(&buf, obj, signing); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeObject writes the fields of obj without a terminator. Non-signing
// fields are skipped when ignoreSigningFields is set, which callers only
// do for the top level object.
func writeObject(w io.Writer, obj Object, ignoreSigningFields bool) error {
	fields, err := obj.sortedFields()
	if err != nil {
		return err
	}
	for _, f := range fields {
		if ignoreSigningFields && !f.Signing {
			continue
		}
		if f.IsTerminator() {
			return fmt.Errorf("%w: %s used as a field", ErrUnexpectedTerminator, f.Name)
		}
		if err := writeEncoding(w, f); err != nil {
			return err
		}
		if err := writeValue(w, f, obj[f.Name]); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func writeValue(w io.Writer, f *Field, value FieldValue) error {
	v := deref(value)
	if v == nil {
		return fmt.Errorf("%w: nil value for %s", ErrFieldTypeMismatch, f.Type)
	}
	if v.Kind() != f.Type {
		return fmt.Errorf("%w: %s holds %s", ErrFieldTypeMismatch, f.Type, v.Kind())
	}
	switch x := v.(type) {
	case UInt8, UInt16, UInt32, UInt64:
		return binary.Write(w, binary.BigEndian, x)
	case Hash128:
		return write(w, x[:])
	case Hash160:
		return write(w, x[:])
	case Hash256:
		return write(w, x[:])
	case VariableLength:
		return writeVariableLength(w, x)
	case Account:
		return writeVariableLength(w, x[:])
	case Vector256:
		return writeVector256(w, x)
	case Amount:
		return writeAmount(w, x)
	case PathSet:
		return writePathSet(w, x)
	case Object:
		if err := writeObject(w, x, false); err != nil {
			return err
		}
		return writeEncoding(w, endOfObject)
	case Array:
		return writeArray(w, x)
	default:
		return fmt.Errorf("%w: unsupported value %T", ErrFieldTypeMismatch, v)
	}
}

func writeArray(w io.Writer, a Array) error {
	for i, elem := range a {
		if len(elem) != 1 {
			return fmt.Errorf("%w: element %d has %d fields", ErrInvalidArrayElement, i, len(elem))
		}
		for name, value := range elem {
			f, err := LookupByName(name)
			if err != nil {
				return err
			}
			inner, ok := deref(value).(Object)
			if f.Type != ST_OBJECT || !ok {
				return fmt.Errorf("%w: element %d is %s", ErrInvalidArrayElement, i, name)
			}
			if err := writeEncoding(w, f); err != nil {
				return err
			}
			if err := writeObject(w, inner, false); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := writeEncoding(w, endOfObject); err != nil {
				return err
			}
		}
	}
	return writeEncoding(w, endOfArray)
}

func write(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
