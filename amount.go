package wallet

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Scale is the number of raw units in one unit of any currency or commodity.
const Scale = 1_000_000_000

// ScaleDigits is the number of fractional digits an Amount can hold.
const ScaleDigits = 9

// Range of an Amount.
const (
	MaxAmount Amount = math.MaxInt64
	MinAmount Amount = math.MinInt64
)

// Amount is a fixed-point decimal value stored as a number of 1/Scale units.
//
// An Amount is always exact, conversions from and to decimal strings never round.
type Amount int64

// Raw returns the amount as a number of 1/Scale units.
func (a Amount) Raw() int64 { return int64(a) }

func (a Amount) IsZero() bool     { return a == 0 }
func (a Amount) IsNegative() bool { return a < 0 }
func (a Amount) IsPositive() bool { return a > 0 }

// ParseAmount parses a decimal string like "-12.5" into an Amount.
//
// It fails with ErrInvalidFormat if s is not a decimal number, or if it has
// non zero digits beyond the ninth fractional digit. If the value is out of range it
// fails with both ErrInvalidFormat and ErrOverflow.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, err)
	}
	a, err := AmountFromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return a, nil
}

// AmountFromDecimal converts d into an Amount without any rounding.
//
// It fails under the same conditions as ParseAmount. Errors never print d, its
// exponent can make it arbitrarily long.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsZero() {
		return 0, nil
	}
	coef := d.Coefficient()
	exp := int64(d.Exponent()) + ScaleDigits
	// 10^19 is already beyond int64, do not materialize larger coefficients.
	if exp > 18 {
		return 0, fmt.Errorf("%w: %w: exponent %d is out of range", ErrInvalidFormat, ErrOverflow, d.Exponent())
	}
	if exp < 0 {
		// a non zero coefficient with fewer digits than the exponent is a fraction of a raw unit.
		digits := len(new(big.Int).Abs(coef).String())
		if int64(digits) <= -exp {
			return 0, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidFormat, ScaleDigits)
		}
	}
	scaled := decimal.NewFromBigInt(coef, int32(exp))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidFormat, ScaleDigits)
	}
	raw := scaled.BigInt()
	if !raw.IsInt64() {
		return 0, fmt.Errorf("%w: %w: %d digits at exponent %d", ErrInvalidFormat, ErrOverflow, len(raw.String()), d.Exponent())
	}
	return Amount(raw.Int64()), nil
}

// Decimal returns the exact decimal value of the amount.
func (a Amount) Decimal() decimal.Decimal { return decimal.New(int64(a), -ScaleDigits) }

// String returns the canonical representation of the amount: an optional minus
// sign, the integer part, and exactly nine fractional digits.
func (a Amount) String() string {
	sign, u := "", uint64(a)
	if a < 0 {
		// two's complement negation also works for MinAmount
		sign, u = "-", ^u+1
	}
	return fmt.Sprintf("%s%d.%09d", sign, u/Scale, u%Scale)
}

// MarshalJSON encodes the amount as a JSON string in its canonical form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes either a JSON string or a JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
