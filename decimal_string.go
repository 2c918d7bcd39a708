package decnum

// ParseDecimal parses a base-10 decimal string, such as "-123.45", into a
// Decimal. The string may start with a single '+' or '-', and contain at most
// one '.'; everything else must be a digit. Either side of the '.' may be
// empty, but not both.
//
// The parsed value keeps the scale it was written with, up to MaxScale.
// Fractional digits past MaxPrec significant digits (or past MaxScale decimal
// places) are discarded. If the integer part alone is too large for the 96-bit
// mantissa, trailing integer digits are dropped until it fits.
func ParseDecimal(s string) (d Decimal, err error) {
	pos, neg := 0, false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		pos++
	}
	if pos >= len(s) {
		return d, ErrInvalidFormat.New("decimal string %q invalid", s)
	}

	var (
		mant   u256
		scale  int
		sig    int
		digits int
		point  bool
	)
	for ; pos < len(s); pos++ {
		c := s[pos]
		if c == '.' {
			if point {
				return d, ErrInvalidFormat.New("decimal string %q has more than one '.'", s)
			}
			point = true
			continue
		}
		if c < '0' || c > '9' {
			return d, ErrInvalidFormat.New("decimal string %q invalid", s)
		}
		digits++

		if point {
			if sig >= MaxPrec || scale >= MaxScale {
				continue
			}
			scale++
		} else if !mant.canMul10() {
			continue
		}
		if sig > 0 || c != '0' {
			sig++
		}
		mant = mant.mul64(10).add(u256{lo: uint64(c - '0')})
	}
	if digits == 0 {
		return d, ErrInvalidFormat.New("decimal string %q has no digits", s)
	}

	for !mant.fitsMantissa() {
		mant, _ = mant.quoRem64(10)
		if scale > 0 {
			scale--
		}
	}
	return newDecimal(neg, mant.asU128(), scale), nil
}

// TryParseDecimal is like ParseDecimal, but reports failure with a bool.
func TryParseDecimal(s string) (d Decimal, ok bool) {
	d, err := ParseDecimal(s)
	return d, err == nil
}

// MustParseDecimal is like ParseDecimal but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// Decimals.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the canonical text form of d: an optional '-', the integer
// digits, then a '.' and exactly Scale() fractional digits if the scale is
// non-zero. Zero is always "0".
func (d Decimal) String() string {
	if d.IsZero() {
		return "0"
	}

	// sign + digits + point + leading "0"
	var buf [maxU128Digits + MaxScale + 3]byte
	b := buf[:0]
	if d.IsNeg() {
		b = append(b, '-')
	}

	var digitBuf [maxU128Digits]byte
	digits := d.Mantissa().appendDigits(digitBuf[:0])

	scale := d.Scale()
	if scale == 0 {
		return string(append(b, digits...))
	}

	if len(digits) > scale {
		b = append(b, digits[:len(digits)-scale]...)
		b = append(b, '.')
		b = append(b, digits[len(digits)-scale:]...)
	} else {
		b = append(b, '0', '.')
		for i := len(digits); i < scale; i++ {
			b = append(b, '0')
		}
		b = append(b, digits...)
	}
	return string(b)
}
