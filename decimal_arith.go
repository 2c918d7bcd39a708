package decnum

// alignMantissas returns the magnitudes of d and e scaled to a common scale,
// along with that scale. The lower-scale operand is multiplied up; since both
// mantissas fit in 96 bits and the difference in scale is at most MaxScale,
// the result always fits in a u256.
func alignMantissas(d, e Decimal) (dm, em u256, scale int) {
	dm, em = u256From128(d.Mantissa()), u256From128(e.Mantissa())
	ds, es := d.Scale(), e.Scale()
	if ds < es {
		dm = dm.mulPow10(es - ds)
		return dm, em, es
	} else if es < ds {
		em = em.mulPow10(ds - es)
	}
	return dm, em, ds
}

// Add returns d + e. If either operand is zero the other is returned as is;
// otherwise the result is normalised.
func (d Decimal) Add(e Decimal) Decimal {
	if d.IsZero() {
		return e
	} else if e.IsZero() {
		return d
	}

	dm, em, scale := alignMantissas(d, e)
	dneg, eneg := d.IsNeg(), e.IsNeg()

	var mag u256
	var neg bool
	if dneg == eneg {
		mag, neg = dm.add(em), dneg
	} else if c := dm.cmp(em); c > 0 {
		mag, neg = dm.sub(em), dneg
	} else if c < 0 {
		mag, neg = em.sub(dm), eneg
	} else {
		return Zero
	}

	return newDecimalFromWide(neg, mag, scale).Normalize()
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns d * e. The scale of the product is the sum of the operand
// scales; if that exceeds MaxScale, or the product does not fit in 96 bits,
// digits are dropped from the right until it does. Once the scale reaches 0
// any remaining overflow is silently truncated.
func (d Decimal) Mul(e Decimal) Decimal {
	if d.IsZero() || e.IsZero() {
		return Zero
	}
	mag := mul128to256(d.Mantissa(), e.Mantissa())
	return newDecimalFromWide(d.IsNeg() != e.IsNeg(), mag, d.Scale()+e.Scale()).Normalize()
}

// Quo returns d / e, truncated after at least 18 extra digits of precision
// (or fewer, if the result would not otherwise fit). It returns an
// ErrDivisionByZero error if e is zero.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("decimal %s / 0", d)
	}
	if d.IsZero() {
		return Zero, nil
	}

	ds, es := d.Scale(), e.Scale()
	extra := quoExtraDigits
	if es-ds > extra {
		extra = es - ds
	}

	dm := u256From128(d.Mantissa())
	added := 0
	for added < extra && dm.canMul10() {
		dm = dm.mul64(10)
		added++
	}

	q, _ := dm.quoRem128(e.Mantissa())
	scale := ds - es + added
	if scale < 0 {
		q = q.mulPow10(-scale)
		scale = 0
	}

	return newDecimalFromWide(d.IsNeg() != e.IsNeg(), q, scale).Normalize(), nil
}

// MustQuo is like Quo but panics if e is zero.
func (d Decimal) MustQuo(e Decimal) Decimal {
	q, err := d.Quo(e)
	if err != nil {
		panic(err)
	}
	return q
}

// Neg returns -d. The negation of zero is zero.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	d.flags ^= flagsSign
	return d
}

func (d Decimal) Abs() Decimal {
	d.flags &^= flagsSign
	return d
}

// Cmp compares d and e and returns:
//
//	-1 if d <  e
//	 0 if d == e
//	+1 if d >  e
//
// Values are compared numerically, so 1.0 and 1.00 are equal, as are all
// zeros.
func (d Decimal) Cmp(e Decimal) int {
	ds, es := d.Sign(), e.Sign()
	if ds != es {
		if ds > es {
			return 1
		}
		return -1
	} else if ds == 0 {
		return 0
	}

	dm, em, _ := alignMantissas(d, e)
	c := dm.cmp(em)
	if ds < 0 {
		return -c
	}
	return c
}

// CmpI128 compares d with an integer. See Cmp.
func (d Decimal) CmpI128(i I128) int {
	return -i.CmpDecimal(d)
}

func (d Decimal) Equal(e Decimal) bool            { return d.Cmp(e) == 0 }
func (d Decimal) GreaterThan(e Decimal) bool      { return d.Cmp(e) > 0 }
func (d Decimal) GreaterOrEqualTo(e Decimal) bool { return d.Cmp(e) >= 0 }
func (d Decimal) LessThan(e Decimal) bool         { return d.Cmp(e) < 0 }
func (d Decimal) LessOrEqualTo(e Decimal) bool    { return d.Cmp(e) <= 0 }
