package wallet

import (
	"fmt"
	"unicode/utf8"
)

// Key identifies an entry in a Wallet, usually a currency code like "USD" or a
// commodity symbol.
//
// Keys are opaque: they are compared byte by byte and never normalized, "usd" and
// "USD" are two different keys.
type Key string

// ParseKey returns s as a Key if it is a valid one.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	return k, k.Validate()
}

// Validate returns an ErrInvalidKey if k is empty or is not valid UTF-8 text.
func (k Key) Validate() error {
	if k == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	if !utf8.ValidString(string(k)) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidKey, string(k))
	}
	return nil
}

func (k Key) String() string { return string(k) }
