package wallet

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Format returns the amount formatted as money in the currency named by key,
// for instance "$1,234.57" for the key "USD".
//
// The amount is rounded to the currency's number of fraction digits. Keys that
// are not ISO 4217 currency codes fail with ErrInvalidKey.
func (a Amount) Format(key Key) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}
	cur := money.GetCurrency(string(key))
	if cur == nil {
		return "", fmt.Errorf("%w: %q is not a known currency", ErrInvalidKey, string(key))
	}
	fraction := int32(cur.Fraction)
	minor := a.Decimal().Round(fraction).Shift(fraction)
	return cur.Formatter().Format(minor.IntPart()), nil
}

// IsCurrency reports whether key is a known ISO 4217 currency code.
func IsCurrency(key Key) bool { return money.GetCurrency(string(key)) != nil }
