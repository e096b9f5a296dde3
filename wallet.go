package wallet

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// Wallet holds one Amount per Key.
//
// The zero value is an empty wallet ready to use. A Wallet is not safe for
// concurrent use, callers sharing one across goroutines must synchronize access.
type Wallet struct {
	entries map[Key]Amount
}

// New returns an empty wallet.
func New() *Wallet {
	return &Wallet{entries: make(map[Key]Amount)}
}

// Len returns the number of distinct keys in the wallet.
func (w *Wallet) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// Get returns the amount stored for key.
//
// ok is false if there is no entry for key, which is different from an entry
// holding a zero amount.
func (w *Wallet) Get(key Key) (amount Amount, ok bool, err error) {
	if err := key.Validate(); err != nil {
		return 0, false, fmt.Errorf("cannot get: %w", err)
	}
	if w == nil {
		return 0, false, nil
	}
	amount, ok = w.entries[key]
	return amount, ok, nil
}

// Set stores amount for key, replacing any previous entry.
func (w *Wallet) Set(key Key, amount Amount) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("cannot set: %w", err)
	}
	if w.entries == nil {
		w.entries = make(map[Key]Amount)
	}
	w.entries[key] = amount
	return nil
}

// GetDecimal is like Get but returns the amount as a decimal.
func (w *Wallet) GetDecimal(key Key) (decimal.Decimal, bool, error) {
	a, ok, err := w.Get(key)
	if err != nil || !ok {
		return decimal.Decimal{}, ok, err
	}
	return a.Decimal(), true, nil
}

// SetDecimal is like Set but takes the amount as a decimal.
//
// d must be exactly representable as an Amount, see AmountFromDecimal.
func (w *Wallet) SetDecimal(key Key, d decimal.Decimal) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("cannot set: %w", err)
	}
	a, err := AmountFromDecimal(d)
	if err != nil {
		return fmt.Errorf("cannot set %q: %w", string(key), err)
	}
	return w.Set(key, a)
}

// String returns a short fixed tag, it does not list the entries.
func (w *Wallet) String() string { return "<Wallet>" }

// Equal reports whether w and o hold the same keys with equal amounts.
//
// A nil wallet is equal to an empty one.
func (w *Wallet) Equal(o *Wallet) bool {
	if w == o {
		return true
	}
	var a, b map[Key]Amount
	if w != nil {
		a = w.entries
	}
	if o != nil {
		b = o.entries
	}
	return maps.Equal(a, b)
}
