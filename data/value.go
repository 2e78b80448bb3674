package data

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

const (
	minOffset        int64  = -96
	maxOffset        int64  = 80
	minValue         uint64 = 1000000000000000
	maxValue         uint64 = 9999999999999999
	maxNative        uint64 = 9000000000000000000
	maxNativeNetwork uint64 = 100000000000000000
	notNative        uint64 = 0x8000000000000000
	positive         uint64 = 0x4000000000000000
	nativeMask       uint64 = positive - 1
	mantissaMask     uint64 = 1<<54 - 1
	maxNativeSqrt    uint64 = 3000000000
	maxNativeDiv     uint64 = 2095475792 // MaxNative / 2^32
	tenTo14          uint64 = 100000000000000
	tenTo17          uint64 = tenTo14 * 1000
	dropsPerXRP      uint64 = 1000000
	zeroOffset       int64  = -100
)

var (
	bigTenTo14    = new(big.Int).SetUint64(tenTo14)
	bigTenTo17    = new(big.Int).SetUint64(tenTo17)
	zeroNative    = Value{native: true}
	zeroNonNative = Value{offset: zeroOffset}
	xrpMultiplier = Value{native: true, num: dropsPerXRP}
)

// Value is the numeric part of an amount. Native values are an integer number
// of drops. Issued values are a mantissa in [1e15,1e16) times 10^offset with
// offset in [-96,80]; zero is a mantissa of 0.
type Value struct {
	native   bool
	negative bool
	num      uint64
	offset   int64
}

func newValue(native, negative bool, num uint64, offset int64) *Value {
	return &Value{
		native:   native,
		negative: negative,
		num:      num,
		offset:   offset,
	}
}

// NewNativeValue returns a Value with n drops.
func NewNativeValue(n int64) (*Value, error) {
	v := newValue(true, n < 0, abs(n), 0)
	return v, v.canonicalise()
}

// NewNonNativeValue returns a Value of n*10^offset.
func NewNonNativeValue(n int64, offset int64) (*Value, error) {
	v := newValue(false, n < 0, abs(n), offset)
	return v, v.canonicalise()
}

// Match fields:
// 0 = whole input
// 1 = sign
// 2 = integer portion
// 3 = whole fraction (with '.')
// 4 = fraction (without '.')
// 5 = whole exponent (with 'e')
// 6 = exponent sign
// 7 = exponent number
var valueRegex = regexp.MustCompile(`^([+-]?)(\d*)(\.(\d*))?([eE]([+-]?)(\d+))?$`)

// NewValue parses a decimal string. If native is set AND a decimal point is
// used the number is read as XRP, otherwise as drops.
func NewValue(s string, native bool) (*Value, error) {
	var err error
	v := Value{
		native: native,
	}
	matches := valueRegex.FindStringSubmatch(s)
	if matches == nil || len(matches[2])+len(matches[4]) == 0 {
		return nil, fmt.Errorf("invalid number: %q", s)
	}
	digits := strings.TrimLeft(matches[2]+matches[4], "0")
	v.offset = -int64(len(matches[4]))
	trimmed := strings.TrimRight(digits, "0")
	v.offset += int64(len(digits) - len(trimmed))
	digits = trimmed
	if len(digits) > 19 {
		if native {
			return nil, fmt.Errorf("%w: overlong number %q", ErrAmountOutOfRange, s)
		}
		v.offset += int64(len(digits) - 19)
		digits = digits[:19]
	}
	if matches[1] == "-" {
		v.negative = true
	}
	if digits != "" {
		if v.num, err = strconv.ParseUint(digits, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid number: %q reason: %v", s, err)
		}
	}
	if len(matches[5]) > 0 {
		exp, err := strconv.ParseInt(matches[7], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %q reason: %v", s, err)
		}
		if matches[6] == "-" {
			v.offset -= exp
		} else {
			v.offset += exp
		}
	}
	if v.IsNative() {
		if len(matches[3]) > 0 {
			v.offset += 6
		}
		if v.offset < 0 && v.num != 0 {
			return nil, fmt.Errorf("%w: fractional drops in %q", ErrAmountOutOfRange, s)
		}
	}
	return &v, v.canonicalise()
}

func (v *Value) canonicalise() error {
	if v.IsNative() {
		if v.num == 0 {
			v.offset = 0
			v.negative = false
			return nil
		}
		for v.offset < 0 {
			v.num /= 10
			v.offset++
		}
		for v.offset > 0 {
			if v.num > maxNative/10 {
				return fmt.Errorf("%w: native amount %s", ErrAmountOutOfRange, v.debug())
			}
			v.num *= 10
			v.offset--
		}
		if v.num > maxNative {
			return fmt.Errorf("%w: native amount %s", ErrAmountOutOfRange, v.debug())
		}
		return nil
	}
	if v.num == 0 {
		v.offset = zeroOffset
		v.negative = false
		return nil
	}
	for v.num < minValue && v.offset > minOffset {
		v.num *= 10
		v.offset--
	}
	for v.num > maxValue {
		if v.offset >= maxOffset {
			return fmt.Errorf("%w: value overflow %s", ErrAmountOutOfRange, v.debug())
		}
		v.num /= 10
		v.offset++
	}
	if v.offset < minOffset || v.num < minValue {
		v.num = 0
		v.offset = zeroOffset
		v.negative = false
		return nil
	}
	if v.offset > maxOffset {
		return fmt.Errorf("%w: value overflow %s", ErrAmountOutOfRange, v.debug())
	}
	return nil
}

// Native returns a clone of the value in native format.
func (v Value) Native() (*Value, error) {
	v.native = true
	return &v, v.canonicalise()
}

// NonNative returns a clone of the value in non-native format.
func (v Value) NonNative() (*Value, error) {
	v.native = false
	return &v, v.canonicalise()
}

// Clone returns a Value which is a copy of v.
func (v Value) Clone() *Value {
	return newValue(v.native, v.negative, v.num, v.offset)
}

// ZeroClone returns a zero Value, native or non-native depending on v's setting.
func (v Value) ZeroClone() *Value {
	if v.IsNative() {
		return zeroNative.Clone()
	}
	return zeroNonNative.Clone()
}

// Abs returns a copy of v with a positive sign.
func (v Value) Abs() *Value {
	return newValue(v.native, false, v.num, v.offset)
}

// Negate returns a new Value with the opposite sign of v.
func (v Value) Negate() *Value {
	return newValue(v.native, !v.negative, v.num, v.offset)
}

func (a Value) factor(b Value) (int64, int64, int64) {
	ao, bo := a.offset, b.offset
	av, bv := int64(a.num), int64(b.num)
	if a.negative {
		av = -av
	}
	if b.negative {
		bv = -bv
	}
	if a.IsZero() {
		return av, bv, bo
	}
	if b.IsZero() {
		return av, bv, ao
	}
	for ; ao < bo; ao++ {
		av /= 10
	}
	for ; bo < ao; bo++ {
		bv /= 10
	}
	return av, bv, ao
}

// Add adds a to b and returns the sum as a new Value.
func (a Value) Add(b Value) (*Value, error) {
	switch {
	case a.IsNative() != b.IsNative():
		return nil, fmt.Errorf("cannot add native and non-native values")
	case a.IsZero():
		return b.Clone(), nil
	case b.IsZero():
		return a.Clone(), nil
	default:
		av, bv, ao := a.factor(b)
		v := newValue(a.native, (av+bv) < 0, abs(av+bv), ao)
		return v, v.canonicalise()
	}
}

func (a Value) Subtract(b Value) (*Value, error) {
	return a.Add(*b.Negate())
}

func normalise(a, b Value) (uint64, uint64, int64, int64) {
	av, bv := a.num, b.num
	ao, bo := a.offset, b.offset
	if a.IsNative() {
		for ; av < minValue; av *= 10 {
			ao--
		}
	}
	if b.IsNative() {
		for ; bv < minValue; bv *= 10 {
			bo--
		}
	}
	return av, bv, ao, bo
}

func (a Value) Multiply(b Value) (*Value, error) {
	if a.IsZero() || b.IsZero() {
		return a.ZeroClone(), nil
	}
	if a.IsNative() && b.IsNative() {
		min := min64(a.num, b.num)
		max := max64(a.num, b.num)
		if min > maxNativeSqrt || (((max >> 32) * min) > maxNativeDiv) {
			return nil, fmt.Errorf("%w: native multiply %s*%s", ErrAmountOutOfRange, a.debug(), b.debug())
		}
		v := newValue(true, a.negative != b.negative, min*max, 0)
		return v, v.canonicalise()
	}
	av, bv, ao, bo := normalise(a, b)
	// (av * bv) / 10^14 lies in [10^16, 10^18]
	m := new(big.Int).SetUint64(av)
	m.Mul(m, new(big.Int).SetUint64(bv))
	m.Div(m, bigTenTo14)
	v := newValue(a.native, a.negative != b.negative, m.Uint64()+7, ao+bo+14)
	return v, v.canonicalise()
}

func (num Value) Divide(den Value) (*Value, error) {
	if den.IsZero() {
		return nil, fmt.Errorf("division by zero")
	}
	if num.IsZero() {
		return num.ZeroClone(), nil
	}
	av, bv, ao, bo := normalise(num, den)
	// (av * 10^17) / bv lies in [10^16, 10^18]
	d := new(big.Int).SetUint64(av)
	d.Mul(d, bigTenTo17)
	d.Div(d, new(big.Int).SetUint64(bv))
	v := newValue(num.native, num.negative != den.negative, d.Uint64()+5, ao-bo-17)
	return v, v.canonicalise()
}

// Ratio returns the ratio a/b. XRP are interpreted at face value rather than drops.
// The result of Ratio is always a non-native Value for additional precision.
func (a Value) Ratio(b Value) (*Value, error) {
	var err error
	num := &a
	den := &b
	if num.IsNative() {
		if num, err = num.NonNative(); err != nil {
			return nil, err
		}
		if num, err = num.Divide(xrpMultiplier); err != nil {
			return nil, err
		}
	}
	if den.IsNative() {
		if den, err = den.NonNative(); err != nil {
			return nil, err
		}
		if den, err = den.Divide(xrpMultiplier); err != nil {
			return nil, err
		}
	}
	return num.Divide(*den)
}

// Less compares values and returns true if a is less than b.
func (a Value) Less(b Value) bool {
	return a.Compare(b) < 0
}

func (a Value) Equals(b Value) bool {
	return a.native == b.native && a.Compare(b) == 0
}

// Compare returns an integer comparing two Values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func (a Value) Compare(b Value) int {
	return a.Rat().Cmp(b.Rat())
}

// isScientific indicates when the value should be String()ed in scientific notation.
func (v Value) isScientific() bool {
	return v.offset != 0 && (v.offset < -25 || v.offset > -5)
}

func (v Value) IsNative() bool {
	return v.native
}

func (v Value) IsNegative() bool {
	return v.negative
}

func (v Value) IsZero() bool {
	return v.num == 0
}

// Mantissa and Exponent expose the stored representation.
func (v Value) Mantissa() uint64 { return v.num }

func (v Value) Exponent() int64 { return v.offset }

// Bytes returns the 8 byte wire form. The value must be canonical.
func (v *Value) Bytes() []byte {
	if v == nil {
		return nil
	}
	var u uint64
	if !v.negative && (v.num > 0 || v.IsNative()) {
		u |= positive
	}
	if v.IsNative() {
		u |= v.num & nativeMask
	} else {
		u |= notNative
		u |= v.num & mantissaMask
		if v.num > 0 {
			u |= uint64(v.offset+97) << 54
		}
	}
	return uint64Bytes(u)
}

// Rat returns the value as a big.Rat.
func (v Value) Rat() *big.Rat {
	n := new(big.Int).SetUint64(v.num)
	if v.negative {
		n.Neg(n)
	}
	d := big.NewInt(1)
	if v.offset < 0 {
		d.Exp(big.NewInt(10), big.NewInt(-v.offset), nil)
	} else if v.offset > 0 {
		mult := new(big.Int).Exp(big.NewInt(10), big.NewInt(v.offset), nil)
		n.Mul(n, mult)
	}
	return new(big.Rat).SetFrac(n, d)
}

// String returns the Value as a string for human consumption. Native values are
// represented as decimal XRP rather than drops.
func (v Value) String() string {
	if v.IsZero() {
		return "0"
	}
	if !v.IsNative() && v.isScientific() {
		value := strconv.FormatUint(v.num, 10)
		origLen := len(value)
		value = strings.TrimRight(value, "0")
		offset := strconv.FormatInt(v.offset+int64(origLen-len(value)), 10)
		if v.negative {
			return "-" + value + "e" + offset
		}
		return value + "e" + offset
	}
	rat := v.Rat()
	if v.IsNative() {
		rat.Quo(rat, new(big.Rat).SetInt64(int64(dropsPerXRP)))
	}
	left := rat.FloatString(0)
	if rat.IsInt() {
		return left
	}
	length := len(left)
	if v.negative {
		length -= 1
	}
	return strings.TrimRight(rat.FloatString(32-length), "0")
}

func (v Value) debug() string {
	return fmt.Sprintf("Native: %t Negative: %t Value: %d Offset: %d", v.native, v.negative, v.num, v.offset)
}
