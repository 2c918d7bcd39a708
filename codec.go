package decnum

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// All external encodings use the canonical string form. The word layout
// returned by Bits() is never written to the wire.

var (
	_ encoding.TextMarshaler   = I128{}
	_ encoding.TextUnmarshaler = (*I128)(nil)
	_ json.Marshaler           = I128{}
	_ json.Unmarshaler         = (*I128)(nil)
	_ msgpack.CustomEncoder    = I128{}
	_ msgpack.CustomDecoder    = (*I128)(nil)
	_ sql.Scanner              = (*I128)(nil)
	_ driver.Valuer            = I128{}

	_ encoding.TextMarshaler   = U128{}
	_ encoding.TextUnmarshaler = (*U128)(nil)
	_ json.Marshaler           = U128{}
	_ json.Unmarshaler         = (*U128)(nil)
	_ msgpack.CustomEncoder    = U128{}
	_ msgpack.CustomDecoder    = (*U128)(nil)
	_ sql.Scanner              = (*U128)(nil)
	_ driver.Valuer            = U128{}

	_ encoding.TextMarshaler   = Decimal{}
	_ encoding.TextUnmarshaler = (*Decimal)(nil)
	_ json.Marshaler           = Decimal{}
	_ json.Unmarshaler         = (*Decimal)(nil)
	_ msgpack.CustomEncoder    = Decimal{}
	_ msgpack.CustomDecoder    = (*Decimal)(nil)
	_ sql.Scanner              = (*Decimal)(nil)
	_ driver.Valuer            = Decimal{}
)

// jsonText extracts the number text from a JSON value. Both quoted strings
// and bare numbers are accepted. ok is false for null, which leaves the
// destination untouched.
func jsonText(data []byte) (s string, ok bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", false, ErrInvalidFormat.New("empty JSON value")
	}
	if string(data) == "null" {
		return "", false, nil
	}
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, ErrInvalidFormat.Wrap(err)
		}
		return s, true, nil
	}
	return string(data), true, nil
}

func quoteJSON(s string) []byte {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	return append(out, '"')
}

// sqlText converts a driver value holding the text form of a number into a
// string.
func sqlText(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", Error.New("can not scan NULL")
	default:
		return "", Error.New("can not scan %T", src)
	}
}

func (i I128) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *I128) UnmarshalText(text []byte) (err error) {
	*i, err = ParseI128(string(text))
	return err
}

func (i I128) MarshalJSON() ([]byte, error) { return quoteJSON(i.String()), nil }

func (i *I128) UnmarshalJSON(data []byte) error {
	s, ok, err := jsonText(data)
	if err != nil || !ok {
		return err
	}
	v, err := ParseI128(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

func (i *I128) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := ParseI128(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Scan implements sql.Scanner. Integer columns arrive as int64; anything
// wider is expected as text.
func (i *I128) Scan(src interface{}) error {
	if v, ok := src.(int64); ok {
		*i = I128From64(v)
		return nil
	}
	s, err := sqlText(src)
	if err != nil {
		return err
	}
	v, err := ParseI128(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) Value() (driver.Value, error) { return i.String(), nil }

func (u U128) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *U128) UnmarshalText(text []byte) (err error) {
	*u, err = ParseU128(string(text))
	return err
}

func (u U128) MarshalJSON() ([]byte, error) { return quoteJSON(u.String()), nil }

func (u *U128) UnmarshalJSON(data []byte) error {
	s, ok, err := jsonText(data)
	if err != nil || !ok {
		return err
	}
	v, err := ParseU128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(u.String())
}

func (u *U128) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := ParseU128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Scan implements sql.Scanner. Negative int64 values are rejected.
func (u *U128) Scan(src interface{}) error {
	if v, ok := src.(int64); ok {
		if v < 0 {
			return Error.New("can not scan %d into u128", v)
		}
		*u = U128From64(uint64(v))
		return nil
	}
	s, err := sqlText(src)
	if err != nil {
		return err
	}
	v, err := ParseU128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) Value() (driver.Value, error) { return u.String(), nil }

func (d Decimal) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Decimal) UnmarshalText(text []byte) (err error) {
	*d, err = ParseDecimal(string(text))
	return err
}

func (d Decimal) MarshalJSON() ([]byte, error) { return quoteJSON(d.String()), nil }

func (d *Decimal) UnmarshalJSON(data []byte) error {
	s, ok, err := jsonText(data)
	if err != nil || !ok {
		return err
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(d.String())
}

func (d *Decimal) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Scan implements sql.Scanner. NUMERIC columns usually arrive as text; some
// drivers hand over int64 or float64 instead.
func (d *Decimal) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*d = DecimalFrom64(v)
		return nil
	case float64:
		*d = DecimalFromFloat64(v)
		return nil
	}
	s, err := sqlText(src)
	if err != nil {
		return err
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal) Value() (driver.Value, error) { return d.String(), nil }
