package wallet

import "errors"

// Errors returned by the wallet. They are always wrapped with some context, use
// errors.Is to test for them.
var (
	// ErrInvalidKey is returned when a key is empty or is not valid text.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidFormat is returned when a value cannot be converted to or from an Amount.
	ErrInvalidFormat = errors.New("invalid amount format")
	// ErrOverflow is returned when a scaled value does not fit in 64 bits.
	ErrOverflow = errors.New("amount overflow")
)
