package data

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// FieldValue is one of the wire value kinds. The set is closed.
type FieldValue interface {
	Kind() TypeCode
	isFieldValue()
}

// Object maps field names to values. Key order is irrelevant; encoding
// always follows the catalog order. Amounts may be held as Amount or
// *Amount; the decoder produces *Amount.
type Object map[string]FieldValue

// Array holds inner objects. Each element has exactly one key, the name of
// an object-typed field, e.g. {"Memo": Object{...}}.
type Array []Object

func (UInt8) Kind() TypeCode          { return ST_UINT8 }
func (UInt16) Kind() TypeCode         { return ST_UINT16 }
func (UInt32) Kind() TypeCode         { return ST_UINT32 }
func (UInt64) Kind() TypeCode         { return ST_UINT64 }
func (Hash128) Kind() TypeCode        { return ST_HASH128 }
func (Hash160) Kind() TypeCode        { return ST_HASH160 }
func (Hash256) Kind() TypeCode        { return ST_HASH256 }
func (VariableLength) Kind() TypeCode { return ST_VL }
func (Account) Kind() TypeCode        { return ST_ACCOUNT }
func (Amount) Kind() TypeCode         { return ST_AMOUNT }
func (Object) Kind() TypeCode         { return ST_OBJECT }
func (Array) Kind() TypeCode          { return ST_ARRAY }
func (PathSet) Kind() TypeCode        { return ST_PATHSET }
func (Vector256) Kind() TypeCode      { return ST_VECTOR256 }

func (UInt8) isFieldValue()          {}
func (UInt16) isFieldValue()         {}
func (UInt32) isFieldValue()         {}
func (UInt64) isFieldValue()         {}
func (Hash128) isFieldValue()        {}
func (Hash160) isFieldValue()        {}
func (Hash256) isFieldValue()        {}
func (VariableLength) isFieldValue() {}
func (Account) isFieldValue()        {}
func (Amount) isFieldValue()         {}
func (Object) isFieldValue()         {}
func (Array) isFieldValue()          {}
func (PathSet) isFieldValue()        {}
func (Vector256) isFieldValue()      {}

// deref maps pointer forms onto the value forms the codec switches on.
// A nil pointer of any kind becomes nil.
func deref(v FieldValue) FieldValue {
	switch x := v.(type) {
	case *UInt8:
		if x != nil {
			return *x
		}
	case *UInt16:
		if x != nil {
			return *x
		}
	case *UInt32:
		if x != nil {
			return *x
		}
	case *UInt64:
		if x != nil {
			return *x
		}
	case *Hash128:
		if x != nil {
			return *x
		}
	case *Hash160:
		if x != nil {
			return *x
		}
	case *Hash256:
		if x != nil {
			return *x
		}
	case *VariableLength:
		if x != nil {
			return *x
		}
	case *Account:
		if x != nil {
			return *x
		}
	case *Amount:
		if x != nil {
			return *x
		}
	case *Object:
		if x != nil {
			return *x
		}
	case *Array:
		if x != nil {
			return *x
		}
	case *PathSet:
		if x != nil {
			return *x
		}
	case *Vector256:
		if x != nil {
			return *x
		}
	default:
		return v
	}
	return nil
}

// sortedFields resolves every key of obj and returns the fields in canonical order.
func (obj Object) sortedFields() ([]*Field, error) {
	fields := make([]*Field, 0, len(obj))
	for name := range obj {
		f, err := LookupByName(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Less(fields[j]) })
	return fields, nil
}

// Names returns the keys of obj in canonical order. Unknown keys sort last.
func (obj Object) Names() []string {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, errA := LookupByName(names[i])
		b, errB := LookupByName(names[j])
		switch {
		case errA != nil && errB != nil:
			return names[i] < names[j]
		case errA != nil:
			return false
		case errB != nil:
			return true
		default:
			return a.Less(b)
		}
	})
	return names
}

// Has reports whether name is present.
func (obj Object) Has(name string) bool {
	_, ok := obj[name]
	return ok
}

// Clone returns a deep copy.
func (obj Object) Clone() Object {
	if obj == nil {
		return nil
	}
	c := make(Object, len(obj))
	for k, v := range obj {
		c[k] = cloneValue(v)
	}
	return c
}

func (a Array) Clone() Array {
	if a == nil {
		return nil
	}
	c := make(Array, len(a))
	for i, o := range a {
		c[i] = o.Clone()
	}
	return c
}

func cloneValue(v FieldValue) FieldValue {
	switch x := deref(v).(type) {
	case Amount:
		if x.Value == nil {
			return &x
		}
		return x.Clone()
	case VariableLength:
		return append(VariableLength(nil), x...)
	case Vector256:
		return append(Vector256(nil), x...)
	case Object:
		return x.Clone()
	case Array:
		return x.Clone()
	case PathSet:
		ps := make(PathSet, len(x))
		for i, path := range x {
			ps[i] = make(Path, len(path))
			for j, pe := range path {
				ps[i][j] = PathElem{
					Account:  copyAccount(pe.Account),
					Currency: copyCurrency(pe.Currency),
					Issuer:   copyAccount(pe.Issuer),
				}
			}
		}
		return ps
	default:
		return x
	}
}

func copyAccount(a *Account) *Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func copyCurrency(c *Currency) *Currency {
	if c == nil {
		return nil
	}
	d := *c
	return &d
}

// Equal compares two objects as field sets. Amounts compare by numeric
// value, so 1e3 and 1000 of the same currency are equal.
func Equal(a, b Object) bool {
	if len(a) != len(b) {
		return false
	}
	for name, va := range a {
		vb, ok := b[name]
		if !ok || !valuesEqual(va, vb) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b FieldValue) bool {
	a, b = deref(a), deref(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Amount:
		y := b.(Amount)
		if x.Value == nil || y.Value == nil {
			return x.Value == nil && y.Value == nil
		}
		return x.Equals(y)
	case VariableLength:
		return bytes.Equal(x, b.(VariableLength))
	case Object:
		return Equal(x, b.(Object))
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Vector256, PathSet:
		return reflect.DeepEqual(a, b)
	default:
		return a == b
	}
}

func (obj Object) String() string {
	var s []string
	for _, name := range obj.Names() {
		s = append(s, fmt.Sprintf("%s=%v", name, obj[name]))
	}
	return "{" + strings.Join(s, " ") + "}"
}

func (i UInt8) String() string  { return fmt.Sprint(uint8(i)) }
func (i UInt16) String() string { return fmt.Sprint(uint16(i)) }
func (i UInt32) String() string { return fmt.Sprint(uint32(i)) }
func (i UInt64) String() string { return fmt.Sprintf("%016X", uint64(i)) }
