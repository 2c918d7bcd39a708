package decnum

import (
	"math"
)

// Decimal is an exact, fixed-point decimal number: a 96-bit unsigned
// mantissa, a sign and a scale between 0 and MaxScale. Its value is
//
//	mantissa / 10^scale * (-1 if negative)
//
// The zero value is 0. Decimal is a value type; every operation returns a new
// Decimal. The same number may have several representations (1, 1.0, 1.00);
// Cmp and Equal treat them as equal, and every zero compares equal to every
// other zero regardless of sign and scale.
//
// Add, Sub, Mul and Quo normalise their results by removing trailing zero
// digits after the decimal point. Values built by a constructor or parsed
// from a literal keep the scale they were written with.
type Decimal struct {
	// flags holds the scale in bits 16-23 and the sign in bit 31. All other
	// bits are zero.
	flags uint32

	// lo, mid and hi are the mantissa words, least significant first.
	lo, mid, hi uint32
}

const (
	flagsScaleShift = 16
	flagsScaleMask  = 0x00FF0000
	flagsSign       = 0x80000000
	flagsReserved   = ^uint32(flagsScaleMask | flagsSign)
)

var (
	Zero     = Decimal{}
	One      = Decimal{lo: 1}
	MinusOne = Decimal{flags: flagsSign, lo: 1}

	// MaxDecimal is 79228162514264337593543950335, (1<<96) - 1.
	MaxDecimal = Decimal{lo: 0xFFFFFFFF, mid: 0xFFFFFFFF, hi: 0xFFFFFFFF}

	// MinDecimal is -79228162514264337593543950335.
	MinDecimal = Decimal{flags: flagsSign, lo: 0xFFFFFFFF, mid: 0xFFFFFFFF, hi: 0xFFFFFFFF}
)

// newDecimal builds a Decimal from its parts. Only the low 96 bits of mant
// are kept; callers are responsible for fitting larger mantissas first.
// Zero is always stored as non-negative.
func newDecimal(neg bool, mant U128, scale int) (d Decimal) {
	d.setMantissa(mant)
	d.setScale(scale)
	if neg && !d.IsZero() {
		d.flags |= flagsSign
	}
	return d
}

// newDecimalFromWide fits a wide intermediate result into a Decimal by
// dropping digits from the right until the mantissa is within 96 bits and the
// scale within MaxScale, or until the scale reaches 0. Whatever overflow
// remains at scale 0 is silently truncated to 96 bits.
func newDecimalFromWide(neg bool, mag u256, scale int) Decimal {
	for (scale > MaxScale || !mag.fitsMantissa()) && scale > 0 {
		mag, _ = mag.quoRem64(10)
		scale--
	}
	return newDecimal(neg, mag.asU128(), scale)
}

// NewDecimal returns mantissa / 10^scale, negated if neg is true. It returns
// an error if mantissa is larger than (1<<96) - 1 or scale is outside
// 0 to MaxScale.
func NewDecimal(mantissa U128, scale int, neg bool) (Decimal, error) {
	if mantissa.GreaterThan(maxMantissa) {
		return Decimal{}, Error.New("mantissa %s exceeds 96 bits", mantissa)
	}
	if scale < 0 || scale > MaxScale {
		return Decimal{}, Error.New("scale %d out of range", scale)
	}
	return newDecimal(neg, mantissa, scale), nil
}

func DecimalFrom64(v int64) Decimal {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return newDecimal(v < 0, U128{lo: mag}, 0)
}

func DecimalFrom32(v int32) Decimal   { return DecimalFrom64(int64(v)) }
func DecimalFromInt(v int) Decimal    { return DecimalFrom64(int64(v)) }
func DecimalFromU64(v uint64) Decimal { return newDecimal(false, U128{lo: v}, 0) }
func DecimalFromU32(v uint32) Decimal { return newDecimal(false, U128{lo: uint64(v)}, 0) }

// DecimalFromI128 converts an integer to a Decimal with a scale of 0. Values
// whose magnitude exceeds MaxDecimal are clamped and inRange is set to false.
func DecimalFromI128(v I128) (out Decimal, inRange bool) {
	mag := v.AbsU128()
	if mag.GreaterThan(maxMantissa) {
		return newDecimal(v.Sign() < 0, maxMantissa, 0), false
	}
	return newDecimal(v.Sign() < 0, mag, 0), true
}

func DecimalFromFloat32(f float32) Decimal {
	return DecimalFromFloat64(float64(f))
}

// DecimalFromFloat64 converts f to a Decimal.
//
// f is scaled up by 10 until it has no fractional part, at most 15 times, as a
// float64 can not carry more significant digits than that; the result is then
// rounded to the nearest integer mantissa. 0.1 becomes 0.1, 1.0/3 becomes
// 0.333333333333333 and digits past the 15th decimal place are lost.
//
// NaN and the infinities become 0. Magnitudes larger than MaxDecimal are
// clamped.
func DecimalFromFloat64(f float64) Decimal {
	if f != f || math.IsInf(f, 0) {
		return Decimal{}
	}

	neg := f < 0
	if neg {
		f = -f
	}

	scale := 0
	for scale < maxFloatScale && f != math.Trunc(f) {
		f *= 10
		scale++
	}

	mant, inRange := U128FromFloat64(math.Round(f))
	if !inRange || mant.GreaterThan(maxMantissa) {
		mant = maxMantissa
	}
	return newDecimal(neg, mant, scale)
}

// DecimalFromBits is the complement to Decimal.Bits(). It returns an
// ErrInvalidBits error if the flags word has reserved bits set or holds a
// scale larger than MaxScale.
func DecimalFromBits(bits [4]uint32) (Decimal, error) {
	flags := bits[0]
	if flags&flagsReserved != 0 {
		return Decimal{}, ErrInvalidBits.New("reserved flag bits set in %#08x", flags)
	}
	if scale := (flags & flagsScaleMask) >> flagsScaleShift; scale > MaxScale {
		return Decimal{}, ErrInvalidBits.New("scale %d out of range", scale)
	}
	return Decimal{flags: flags, lo: bits[1], mid: bits[2], hi: bits[3]}, nil
}

// Bits returns the binary layout of d: the flags word (scale in bits 16-23,
// sign in bit 31), followed by the three mantissa words, least significant
// first.
//
// The layout is only meant for bit-level interop; prefer String and
// ParseDecimal for exchanging values.
func (d Decimal) Bits() [4]uint32 {
	return [4]uint32{d.flags, d.lo, d.mid, d.hi}
}

// Mantissa returns the unsigned integer numerator of d.
func (d Decimal) Mantissa() U128 {
	return U128{hi: uint64(d.hi), lo: uint64(d.mid)<<32 | uint64(d.lo)}
}

// Scale returns the number of digits to the right of the decimal point.
func (d Decimal) Scale() int {
	return int((d.flags & flagsScaleMask) >> flagsScaleShift)
}

func (d *Decimal) setMantissa(m U128) {
	d.lo = uint32(m.lo)
	d.mid = uint32(m.lo >> 32)
	d.hi = uint32(m.hi)
}

func (d *Decimal) setScale(scale int) {
	d.flags = (d.flags &^ flagsScaleMask) | (uint32(scale) << flagsScaleShift & flagsScaleMask)
}

func (d Decimal) IsZero() bool { return d.lo|d.mid|d.hi == 0 }

// IsNeg reports whether d is less than zero.
func (d Decimal) IsNeg() bool { return d.flags&flagsSign != 0 && !d.IsZero() }

func (d Decimal) Sign() int {
	if d.IsZero() {
		return 0
	} else if d.flags&flagsSign != 0 {
		return -1
	}
	return 1
}

// AsI128 returns the integer part of d, truncated towards zero. See
// I128FromDecimal.
func (d Decimal) AsI128() I128 { return I128FromDecimal(d) }

// AsFloat64 converts d to the nearest float64 it can reach by dividing the
// mantissa by 10 once per decimal place. Precision beyond 15-17 significant
// digits is lost.
func (d Decimal) AsFloat64() float64 {
	f := d.Mantissa().AsFloat64()
	for i := d.Scale(); i > 0; i-- {
		f /= 10
	}
	if d.IsNeg() {
		f = -f
	}
	return f
}

// Normalize removes trailing zero digits to the right of the decimal point:
// 1.2300 becomes 1.23, 5.0 becomes 5.
func (d Decimal) Normalize() Decimal {
	scale := d.Scale()
	if scale == 0 {
		return d
	}
	m := d.Mantissa()
	for scale > 0 {
		q, r := m.QuoRem64(10)
		if r != 0 {
			break
		}
		m = q
		scale--
	}
	return newDecimal(d.IsNeg(), m, scale)
}
