package orderbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

const (
	// UintPrecision is the fixed-point scale factor: the raw value of one
	// whole unit.
	UintPrecision = 1_000_000_000_000
	// UintComma is the amount of zeros in UintPrecision.
	UintComma = 12
)

var uintMaxValue = Uint{uint128.Max}

// Uint is a fixed-point, 128-bit-backed unsigned decimal used for every
// price and quantity in the book. Deterministic decimal arithmetic is
// required because float64 would silently erode price-time priority and
// quantity conservation at the margins matching relies on.
type Uint struct {
	v uint128.Uint128
}

// NewZeroUint returns the zero value.
func NewZeroUint() Uint {
	return Uint{}
}

// NewMaxUint returns the maximum representable value, usable as a
// sentinel "no limit" / "worse than any real price" marker.
func NewMaxUint() Uint {
	return Uint{uint128.Max}
}

// NewUint wraps u as a raw, already-scaled value; it is not multiplied
// by UintPrecision, so NewUint(1).ToFloatString() is "0.000000000001".
func NewUint(u uint64) Uint {
	return Uint{v: uint128.From64(u)}
}

// NewUintFromStr parses an integer (already scaled) decimal string.
func NewUintFromStr(v string) (Uint, error) {
	if v == "" {
		return NewZeroUint(), nil
	}
	u, err := uint128.FromString(v)
	if err != nil {
		return Uint{}, err
	}
	return Uint{v: u}, nil
}

// NewUintFromFloatString parses a human decimal string such as "100.25"
// into its fixed-point representation.
func NewUintFromFloatString(number string) (Uint, error) {
	integer, decimal := splitDecimalString(number)
	result := NewZeroUint()

	if decimal == "" {
		return NewUintFromStr(integer + strings.Repeat("0", UintComma))
	}

	if integer != "0" && integer != "" {
		scaled, err := NewUintFromStr(integer + strings.Repeat("0", UintComma))
		if err != nil {
			return Uint{}, err
		}
		result = result.Add(scaled)
	}

	if len(decimal) > UintComma {
		decimal = decimal[:UintComma]
	}
	if len(decimal) < UintComma {
		decimal = decimal + strings.Repeat("0", UintComma-len(decimal))
	}

	frac, err := NewUintFromStr(strings.TrimLeft(decimal, "0"))
	if err != nil {
		return Uint{}, err
	}
	return result.Add(frac), nil
}

// ToFloatString renders the value back to a human decimal string,
// trimming trailing fractional zeros.
func (u Uint) ToFloatString() string {
	integerPart, remainder := u.QuoRem(NewUint(UintPrecision))
	result := integerPart.String()
	if !remainder.IsZero() {
		remStr := remainder.String()
		if len(remStr) < UintComma {
			remStr = strings.Repeat("0", UintComma-len(remStr)) + remStr
		}
		result = strings.TrimRight(fmt.Sprintf("%s.%s", result, remStr), "0")
		result = strings.TrimRight(result, ".")
	}
	return result
}

func (u Uint) Add(v Uint) Uint     { u.v = u.v.Add(v.v); return u }
func (u Uint) Add64(v uint64) Uint { u.v = u.v.Add64(v); return u }
func (u Uint) Sub(v Uint) Uint     { u.v = u.v.Sub(v.v); return u }
func (u Uint) Mul(v Uint) Uint     { u.v = u.v.Mul(v.v); return u }
func (u Uint) Mul64(v uint64) Uint { u.v = u.v.Mul64(v); return u }
func (u Uint) Div64(v uint64) Uint { u.v = u.v.Div64(v); return u }

// QuoRem returns u/v and u%v.
func (u Uint) QuoRem(v Uint) (Uint, Uint) {
	var remainder uint128.Uint128
	u.v, remainder = u.v.QuoRem(v.v)
	return u, Uint{v: remainder}
}

func (u Uint) Cmp(v Uint) int              { return u.v.Cmp(v.v) }
func (u Uint) IsZero() bool                { return u.v.IsZero() }
func (u Uint) IsMax() bool                 { return u.Equals(uintMaxValue) }
func (u Uint) Equals(v Uint) bool          { return u.v.Equals(v.v) }
func (u Uint) LessThan(v Uint) bool        { return u.v.Cmp(v.v) < 0 }
func (u Uint) LessThanOrEqual(v Uint) bool { return u.v.Cmp(v.v) <= 0 }
func (u Uint) GreaterThan(v Uint) bool     { return u.v.Cmp(v.v) > 0 }
func (u Uint) GreaterThanOrEqual(v Uint) bool {
	return u.v.Cmp(v.v) >= 0
}

func (u Uint) String() string { return u.v.String() }

var (
	_ json.Marshaler   = Uint{}
	_ json.Unmarshaler = &Uint{}
)

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	u128, err := uint128.FromString(s)
	if err != nil {
		return err
	}
	u.v = u128
	return nil
}

// Min returns the smaller of a and b.
func Min(a, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func splitDecimalString(number string) (integer, decimal string) {
	parts := strings.SplitN(number, ".", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
