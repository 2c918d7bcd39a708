/*
Package decnum provides a 128-bit signed integer (I128) and an exact,
fixed-point decimal (Decimal) built on top of it.

I128, U128 and Decimal are value types; all operations return new values.

Decimal carries a 96-bit unsigned mantissa, a sign and a scale between 0 and
28, giving 28 significant decimal digits with no binary rounding error:

	a := MustParseDecimal("123.45")
	b := MustParseDecimal("0.05")
	fmt.Println(a.Add(b))
	// Output: 123.5

Arithmetic never fails on precision: multiplication, division, parsing of
over-long literals and conversion from float64 silently discard the digits
that do not fit. The only failures are malformed input (ErrInvalidFormat)
and division by zero (ErrDivisionByZero).

I128 can be created from a variety of sources:

	I128FromRaw(hi, lo uint64) I128
	I128FromBits(bits [4]uint32) I128
	I128From64(v int64) I128
	I128From32(v int32) I128
	I128FromU64(v uint64) I128
	I128FromU32(v uint32) I128
	I128FromDecimal(d Decimal) I128
	I128FromBigInt(v *big.Int) (out I128, accurate bool)
	I128FromFloat64(f float64) (out I128, inRange bool)
	ParseI128(s string) (I128, error)

Decimal can be created from:

	DecimalFrom64(v int64) Decimal
	DecimalFrom32(v int32) Decimal
	DecimalFromU64(v uint64) Decimal
	DecimalFromU32(v uint32) Decimal
	DecimalFromFloat64(f float64) Decimal
	DecimalFromI128(v I128) (out Decimal, inRange bool)
	DecimalFromBits(bits [4]uint32) (Decimal, error)
	ParseDecimal(s string) (Decimal, error)

Values should be exchanged with other systems through their string form
only. I128, U128 and Decimal support the following formatting and
marshalling interfaces, all of which go through that form:

  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - msgpack.CustomEncoder
  - msgpack.CustomDecoder
  - sql.Scanner
  - driver.Valuer
*/
package decnum
