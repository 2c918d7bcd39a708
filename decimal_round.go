package decnum

// truncateDigits drops the n least significant digits of d's mantissa and
// reduces the scale to match. It returns the last digit dropped and whether
// any dropped digit was non-zero.
func (d Decimal) truncateDigits(n int) (out Decimal, last uint64, inexact bool) {
	m := d.Mantissa()
	for i := 0; i < n; i++ {
		var r uint64
		m, r = m.QuoRem64(10)
		if r != 0 {
			inexact = true
		}
		last = r
	}
	return newDecimal(d.IsNeg(), m, d.Scale()-n), last, inexact
}

// Truncate discards the fractional part of d, rounding towards zero.
func (d Decimal) Truncate() Decimal {
	out, _, _ := d.truncateDigits(d.Scale())
	return out
}

// Floor rounds d down to the nearest integer, towards negative infinity.
func (d Decimal) Floor() Decimal {
	out, _, inexact := d.truncateDigits(d.Scale())
	if inexact && d.IsNeg() {
		out = newDecimal(true, out.Mantissa().Inc(), 0)
	}
	return out
}

// Ceil rounds d up to the nearest integer, towards positive infinity.
func (d Decimal) Ceil() Decimal {
	out, _, inexact := d.truncateDigits(d.Scale())
	if inexact && !d.IsNeg() {
		out = newDecimal(false, out.Mantissa().Inc(), 0)
	}
	return out
}

// Round rounds d to n decimal places. Halfway values are rounded away from
// zero, so 2.5 becomes 3 and -2.5 becomes -3. Only the first discarded digit
// is considered: 2.45 rounded to 0 places is 2.
//
// If n is greater than or equal to d's scale, d is returned unchanged. A zero
// with more than n decimal places becomes a zero with n places. Negative n is
// treated as 0.
func (d Decimal) Round(n int) Decimal {
	if n < 0 {
		n = 0
	}
	scale := d.Scale()
	if n >= scale {
		return d
	} else if d.IsZero() {
		return newDecimal(false, U128{}, n)
	}

	out, _, _ := d.truncateDigits(scale - n - 1)
	out, digit, _ := out.truncateDigits(1)
	if digit >= 5 {
		out = newDecimal(d.IsNeg(), out.Mantissa().Inc(), n)
	}
	return out
}
