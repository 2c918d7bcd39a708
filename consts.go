package decnum

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	maxU128Float  = float64(340282366920938463463374607431768211455) // (1<<128) - 1
	wrapI128Float = float64(170141183460469231731687303715884105728) // 1<<127

	// MaxScale is the largest number of digits a Decimal can hold to the
	// right of the decimal point.
	MaxScale = 28

	// MaxPrec is the number of significant digits retained when parsing a
	// Decimal literal.
	MaxPrec = 28

	// maxFloatScale caps the number of decimal places recovered from a
	// float64, which can not carry more than 15-17 significant digits.
	maxFloatScale = 15

	// quoExtraDigits is the number of digits the dividend is scaled up by
	// before integer division in Decimal.Quo.
	quoExtraDigits = 18

	// i128 and u128 digit counts, used by the parsers:
	maxI128Digits = 39
	maxU128Digits = 39

	maxI128String    = "170141183460469231731687303715884105727"
	minI128AbsString = "170141183460469231731687303715884105728"
	maxU128String    = "340282366920938463463374607431768211455"
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	// maxMantissa is the largest magnitude a Decimal can hold, (1<<96) - 1.
	maxMantissa = U128{hi: 0xFFFFFFFF, lo: maxUint64}
)

// pow10U64 holds every power of 10 that fits in a uint64.
var pow10U64 = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// pow10U128Hi holds 10^20 to 10^38, every power of 10 that needs more than 64
// bits but fits in a U128.
var pow10U128Hi = [19]U128{
	{hi: 0x5, lo: 0x6bc75e2d63100000},
	{hi: 0x36, lo: 0x35c9adc5dea00000},
	{hi: 0x21e, lo: 0x19e0c9bab2400000},
	{hi: 0x152d, lo: 0x02c7e14af6800000},
	{hi: 0xd3c2, lo: 0x1bcecceda1000000},
	{hi: 0x84595, lo: 0x161401484a000000},
	{hi: 0x52b7d2, lo: 0xdcc80cd2e4000000},
	{hi: 0x33b2e3c, lo: 0x9fd0803ce8000000},
	{hi: 0x204fce5e, lo: 0x3e25026110000000},
	{hi: 0x1431e0fae, lo: 0x6d7217caa0000000},
	{hi: 0xc9f2c9cd0, lo: 0x4674edea40000000},
	{hi: 0x7e37be2022, lo: 0xc0914b2680000000},
	{hi: 0x4ee2d6d415b, lo: 0x85acef8100000000},
	{hi: 0x314dc6448d93, lo: 0x38c15b0a00000000},
	{hi: 0x1ed09bead87c0, lo: 0x378d8e6400000000},
	{hi: 0x13426172c74d82, lo: 0x2b878fe800000000},
	{hi: 0xc097ce7bc90715, lo: 0xb34b9f1000000000},
	{hi: 0x785ee10d5da46d9, lo: 0x00f436a000000000},
	{hi: 0x4b3b4ca85a86c47a, lo: 0x098a224000000000},
}

// pow10U128 returns 10^n for 0 <= n <= 38. Larger exponents fall back to
// repeated multiplication and wrap.
func pow10U128(n int) U128 {
	if n < len(pow10U64) {
		return U128{lo: pow10U64[n]}
	}
	if n-len(pow10U64) < len(pow10U128Hi) {
		return pow10U128Hi[n-len(pow10U64)]
	}
	v := pow10U128Hi[len(pow10U128Hi)-1]
	for i := 38; i < n; i++ {
		v = v.Mul64(10)
	}
	return v
}
