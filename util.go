package decnum

// RandSource is satisfied by *math/rand.Rand.
type RandSource interface {
	Uint64() uint64
	Intn(n int) int
}

// RandU128 returns a U128 with a uniformly distributed bit length between 0
// and 128, so that small magnitudes turn up as often as large ones.
func RandU128(src RandSource) U128 {
	bits := uint(src.Intn(129))
	if bits == 0 {
		return U128{}
	}
	u := U128{hi: src.Uint64(), lo: src.Uint64()}
	u = u.Rsh(128 - bits)
	u.setBit(bits - 1)
	return u
}

// RandI128 returns an I128 with a random sign and a magnitude of up to 127
// bits.
func RandI128(src RandSource) I128 {
	u := RandU128(src).Rsh(1)
	i := u.AsI128()
	if src.Intn(2) == 1 {
		i = i.Neg()
	}
	return i
}

// RandDecimal returns a Decimal with a random sign, a mantissa of up to
// 96 bits and a scale between 0 and MaxScale.
func RandDecimal(src RandSource) Decimal {
	bits := uint(src.Intn(97))
	var m U128
	if bits > 0 {
		m = U128{hi: src.Uint64(), lo: src.Uint64()}.Rsh(128 - bits)
		m.setBit(bits - 1)
	}
	return newDecimal(src.Intn(2) == 1, m, src.Intn(MaxScale+1))
}

func (u *U128) setBit(n uint) {
	if n >= 64 {
		u.hi |= 1 << (n - 64)
	} else {
		u.lo |= 1 << n
	}
}
