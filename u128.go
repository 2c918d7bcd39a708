package decnum

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. It is the magnitude type used by I128
// for division and formatting, and by Decimal for its mantissa.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }

// ParseU128 parses a base-10 string, with an optional leading '+', into a
// U128. Values larger than MaxU128 are rejected.
func ParseU128(s string) (out U128, err error) {
	pos := 0
	if len(s) > 0 && s[0] == '+' {
		pos++
	}
	digits, ok := trimDigits(s[pos:])
	if !ok {
		return out, ErrInvalidFormat.New("u128 string %q invalid", s)
	}
	if len(digits) > maxU128Digits ||
		(len(digits) == maxU128Digits && digits > maxU128String) {
		return out, ErrInvalidFormat.New("u128 string %q out of range", s)
	}
	for i := 0; i < len(digits); i++ {
		out = out.Mul64(10).Add64(uint64(digits[i] - '0'))
	}
	return out, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	var buf [16]byte
	v.FillBytes(buf[:])
	for i := 0; i < 8; i++ {
		out.hi = out.hi<<8 | uint64(buf[i])
		out.lo = out.lo<<8 | uint64(buf[i+8])
	}
	return out, true
}

// U128FromFloat64 creates a U128 from a float64. Any fractional portion
// will be truncated towards zero. Floats outside the bounds of a U128
// are clamped and inRange is set to false.
//
// NaN and infinities become 0 and inRange is set to false.
func U128FromFloat64(f float64) (out U128, inRange bool) {
	if f != f || math.IsInf(f, 0) {
		return U128{}, false

	} else if f < 0 {
		if f > -1 {
			return U128{}, true // truncates towards zero
		}
		return U128{}, false

	} else if f < wrapUint64Float {
		return U128{lo: uint64(f)}, true

	} else if f < maxU128Float {
		// f has at most 53 significant bits, so both halves are exact.
		hi := uint64(f / wrapUint64Float)
		lo := uint64(f - float64(hi)*wrapUint64Float)
		return U128{hi: hi, lo: lo}, true

	} else {
		return MaxU128, false
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	var buf [maxU128Digits]byte
	return string(u.appendDigits(buf[:0]))
}

// appendDigits appends the base-10 digits of u to dst.
//
// The number is peeled off in 19-digit chunks so that all but the most
// significant chunk can be formatted with 64-bit arithmetic.
func (u U128) appendDigits(dst []byte) []byte {
	if u.hi == 0 {
		return strconv.AppendUint(dst, u.lo, 10)
	}

	const chunk = 10000000000000000000 // 10^19
	var parts [3]uint64
	n := 0
	for u.hi != 0 {
		var r uint64
		u, r = u.QuoRem64(chunk)
		parts[n] = r
		n++
	}

	dst = strconv.AppendUint(dst, u.lo, 10)
	for i := n - 1; i >= 0; i-- {
		var pad [19]byte
		p := len(pad)
		for v := parts[i]; p > 0; v /= 10 {
			p--
			pad[p] = byte(v%10) + '0'
		}
		dst = append(dst, pad[:]...)
	}
	return dst
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[7-i] = byte(u.hi >> (8 * uint(i)))
		buf[15-i] = byte(u.lo >> (8 * uint(i)))
	}
	b.SetBytes(buf[:])
}

// AsBigInt allocates a new big.Int and copies this U128 into it.
func (u U128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	u.IntoBigInt(b)
	return b
}

func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Add64(n uint64) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Sub64(n uint64) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Cmp64(n uint64) int {
	if u.hi > 0 || u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

// Mul returns the low 128 bits of u * n; overflow wraps, as per the Go spec.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// Mul64 returns the low 128 bits of u * n.
func (u U128) Mul64(n uint64) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// panic occurs; the panic value is an ErrDivisionByZero error. Quo implements
// truncated division (like Go); see QuoRem for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero panic occurs; the panic value is an ErrDivisionByZero
// error.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		if by.lo == 0 {
			panic(ErrDivisionByZero.New("u128 %s / 0", u))
		}
		var r64 uint64
		q, r64 = u.QuoRem64(by.lo)
		return q, U128{lo: r64}
	}

	if u.LessThan(by) {
		return q, u // it's 100% remainder
	}

	// Adapted from Warren, Hacker's Delight, 9-5, divlu on a normalised
	// divisor. The estimate is at most one too large.
	n := uint(bits.LeadingZeros64(by.hi))
	v1 := by.Lsh(n)
	u1 := u.Rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = U128{lo: tq}
	r = u.Sub(by.Mul64(tq))
	if r.GreaterOrEqualTo(by) {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}

// QuoRem64 divides u by a 64-bit divisor. It panics with an
// ErrDivisionByZero error if by == 0.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(ErrDivisionByZero.New("u128 %s / 0", u))
	}
	if u.hi < by {
		q.lo, r = bits.Div64(u.hi, u.lo, by)
	} else {
		q.hi, r = bits.Div64(0, u.hi, by)
		q.lo, r = bits.Div64(r, u.lo, by)
	}
	return q, r
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// panic occurs. Rem implements truncated modulus (like Go); see QuoRem for
// more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// mul128to256 returns the full 256-bit product of n and by.
func mul128to256(n, by U128) u256 {
	h00, l00 := bits.Mul64(n.lo, by.lo)
	h01, l01 := bits.Mul64(n.lo, by.hi)
	h10, l10 := bits.Mul64(n.hi, by.lo)
	h11, l11 := bits.Mul64(n.hi, by.hi)

	var out u256
	var c1, c2, c3, c4 uint64
	out.lo = l00
	out.lm, c1 = bits.Add64(h00, l01, 0)
	out.lm, c2 = bits.Add64(out.lm, l10, 0)
	out.hm, c3 = bits.Add64(h01, h10, c1)
	out.hm, c4 = bits.Add64(out.hm, l11, c2)
	out.hi = h11 + c3 + c4
	return out
}

// trimDigits strips leading zeros from a run of ASCII digits, keeping at
// least one. It reports false if s is empty or contains a non-digit.
func trimDigits(s string) (string, bool) {
	if len(s) == 0 {
		return s, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s, false
		}
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:], true
}
