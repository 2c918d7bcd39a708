package decnum

import (
	"fmt"
	"math"
	"math/big"
)

// I128 is a 128-bit two's complement signed integer. The representable range
// is MinI128 (-1<<127) to MaxI128 ((1<<127) - 1); arithmetic wraps on
// overflow, as per the Go spec.
type I128 struct {
	hi uint64
	lo uint64
}

const signBit = 0x8000000000000000

// ParseI128 parses a base-10 string into an I128. The string may start with
// a single '+' or '-', followed by one or more decimal digits. Values outside
// the range of an I128 are rejected with an ErrInvalidFormat error.
func ParseI128(s string) (out I128, err error) {
	pos, neg := 0, false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		pos++
	}

	digits, ok := trimDigits(s[pos:])
	if !ok {
		return out, ErrInvalidFormat.New("i128 string %q invalid", s)
	}

	limit := maxI128String
	if neg {
		limit = minI128AbsString
	}
	if len(digits) > maxI128Digits ||
		(len(digits) == maxI128Digits && digits > limit) {
		return out, ErrInvalidFormat.New("i128 string %q out of range", s)
	}

	var u U128
	for i := 0; i < len(digits); i++ {
		u = u.Mul64(10).Add64(uint64(digits[i] - '0'))
	}
	out = u.AsI128()
	if neg {
		out = out.Neg()
	}
	return out, nil
}

// TryParseI128 is like ParseI128, but reports failure with a bool.
func TryParseI128(s string) (out I128, ok bool) {
	out, err := ParseI128(s)
	return out, err == nil
}

// MustParseI128 is like ParseI128 but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding I128s.
func MustParseI128(s string) I128 {
	i, err := ParseI128(s)
	if err != nil {
		panic(err)
	}
	return i
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

// I128FromBits is the complement to I128.Bits(); bits holds four 32-bit
// words, least significant first.
func I128FromBits(bits [4]uint32) I128 {
	return I128{
		hi: uint64(bits[3])<<32 | uint64(bits[2]),
		lo: uint64(bits[1])<<32 | uint64(bits[0]),
	}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }
func I128FromU32(v uint32) I128 { return I128{lo: uint64(v)} }

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

// I128FromBigInt creates an I128 from a big.Int. Overflow clamps to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	u, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if u.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return u.AsI128(), accurate

	} else {
		if u.GreaterThan(minI128AsAbsU128) {
			return MinI128, false
		}
		return u.AsI128().Neg(), accurate
	}
}

func I128FromFloat32(f float32) (out I128, inRange bool) {
	return I128FromFloat64(float64(f))
}

// I128FromFloat64 creates an I128 from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of an I128 are clamped to MaxI128/MinI128 and
// inRange will be set to false.
//
// NaN and infinities are treated as 0, and inRange is set to false.
func I128FromFloat64(f float64) (out I128, inRange bool) {
	if f != f || math.IsInf(f, 0) {
		return out, false

	} else if f >= wrapI128Float {
		return MaxI128, false

	} else if f < -wrapI128Float {
		return MinI128, false

	} else if f < 0 {
		u, _ := U128FromFloat64(-f)
		return u.AsI128().Neg(), true

	} else {
		u, _ := U128FromFloat64(f)
		return u.AsI128(), true
	}
}

// I128FromDecimal returns the integer part of d, truncated towards zero.
func I128FromDecimal(d Decimal) I128 {
	q := d.Mantissa()
	if scale := d.Scale(); scale > 0 {
		q = q.Quo(pow10U128(scale))
	}
	out := q.AsI128()
	if d.IsNeg() {
		out = out.Neg()
	}
	return out
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// Bits returns the two's complement representation of i as four 32-bit
// words, least significant first. See I128FromBits() for the counterpart.
func (i I128) Bits() [4]uint32 {
	return [4]uint32{
		uint32(i.lo),
		uint32(i.lo >> 32),
		uint32(i.hi),
		uint32(i.hi >> 32),
	}
}

func (i I128) String() string {
	if i.hi&signBit == 0 {
		return i.AsU128().String()
	}
	if i == MinI128 {
		// |MinI128| can not be held by a positive I128.
		return "-" + minI128AbsString
	}
	var buf [maxI128Digits + 1]byte
	buf[0] = '-'
	return string(i.Neg().AsU128().appendDigits(buf[:1]))
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	i.AbsU128().IntoBigInt(b)
	if i.hi&signBit != 0 {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AbsU128 returns the magnitude of i. Unlike Abs, it does not overflow for
// MinI128.
func (i I128) AbsU128() U128 {
	if i.hi&signBit == 0 {
		return i.AsU128()
	}
	return U128{hi: ^i.hi, lo: ^i.lo}.Inc()
}

func (i I128) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		return -i.AbsU128().AsFloat64()
	}
	return i.AsU128().AsFloat64()
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) {
	return i.AsU128().Inc().AsI128()
}

func (i I128) Dec() (v I128) {
	return i.AsU128().Dec().AsI128()
}

func (i I128) Add(n I128) (v I128) {
	return i.AsU128().Add(n.AsU128()).AsI128()
}

func (i I128) Sub(n I128) (v I128) {
	return i.AsU128().Sub(n.AsU128()).AsI128()
}

// Neg returns -i. Negating MinI128 overflows and returns MinI128.
func (i I128) Neg() (v I128) {
	return U128{hi: ^i.hi, lo: ^i.lo}.Inc().AsI128()
}

// Abs returns |i|. Abs(MinI128) overflows and returns MinI128; see AbsU128.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Cmp64(n int64) int   { return i.Cmp(I128From64(n)) }
func (i I128) Cmp32(n int32) int   { return i.Cmp(I128From32(n)) }
func (i I128) CmpU64(n uint64) int { return i.Cmp(I128FromU64(n)) }
func (i I128) CmpU32(n uint32) int { return i.Cmp(I128FromU32(n)) }

// CmpFloat64 compares i to f. Values of f beyond the range of an I128,
// including the infinities, compare as larger or smaller than every I128.
// NaN compares as smaller than every I128.
func (i I128) CmpFloat64(f float64) int {
	if f != f {
		return 1
	} else if f >= wrapI128Float {
		return -1
	} else if f < -wrapI128Float {
		return 1
	}

	fi, _ := I128FromFloat64(f)
	if c := i.Cmp(fi); c != 0 {
		return c
	}
	if frac := f - math.Trunc(f); frac > 0 {
		return -1
	} else if frac < 0 {
		return 1
	}
	return 0
}

func (i I128) CmpFloat32(f float32) int { return i.CmpFloat64(float64(f)) }

// CmpDecimal compares i to d. The sign is compared first; magnitudes are
// then compared by scaling i up by 10^d.Scale(), which can not overflow.
func (i I128) CmpDecimal(d Decimal) int {
	is, ds := i.Sign(), d.Sign()
	if is != ds {
		if is < ds {
			return -1
		}
		return 1
	} else if is == 0 {
		return 0
	}

	scaled := mul128to256(i.AbsU128(), pow10U128(d.Scale()))
	c := scaled.cmp(u256From128(d.Mantissa()))
	if is < 0 {
		return -c
	}
	return c
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	return !i.LessThan(n)
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	return !i.GreaterThan(n)
}

// Mul returns the product of two I128s.
//
// Overflow should wrap around, as per the Go spec.
func (i I128) Mul(n I128) (dest I128) {
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero panic occurs; the panic value is an ErrDivisionByZero
// error.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinI128 / -1 overflows and returns MinI128, as int64 division does.
func (i I128) QuoRem(by I128) (q, r I128) {
	if by == zeroI128 {
		panic(ErrDivisionByZero.New("i128 %s / 0", i))
	}

	qNeg := (i.hi^by.hi)&signBit != 0
	rNeg := i.hi&signBit != 0

	qu, ru := i.AbsU128().QuoRem(by.AbsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a division-by-zero
// panic occurs. Quo implements truncated division (like Go); see QuoRem for
// more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero panic occurs. Rem implements truncated modulus (like Go);
// see QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}
