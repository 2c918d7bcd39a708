package decnum

import (
	"github.com/zeebo/errs"
)

var (
	// Error is the class of all errors returned by this package that do not
	// belong to a more specific class.
	Error = errs.Class("decnum")

	// ErrInvalidFormat is the class of errors returned when a string can
	// not be parsed as an I128, U128 or Decimal.
	ErrInvalidFormat = errs.Class("decnum: invalid format")

	// ErrDivisionByZero is the class of the error values used when dividing
	// by zero. I128 and U128 division panics with one of these; Decimal.Quo
	// returns it.
	ErrDivisionByZero = errs.Class("decnum: division by zero")

	// ErrInvalidBits is the class of errors returned by DecimalFromBits when
	// the flags word has reserved bits set or an out-of-range scale.
	ErrInvalidBits = errs.Class("decnum: invalid decimal bits")
)
