package wallet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWallet_New(t *testing.T) {
	w := New()
	if got := w.Len(); got != 0 {
		t.Errorf("New().Len() = %d, want 0", got)
	}
	var zero Wallet
	if got := zero.Len(); got != 0 {
		t.Errorf("Wallet{}.Len() = %d, want 0", got)
	}
	if err := zero.Set("USD", 1); err != nil {
		t.Errorf("Wallet{}.Set() unexpected error: %v", err)
	}
}

func TestWallet_SetGet(t *testing.T) {
	w := New()
	if err := w.Set("USD", 10_000_000_000); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	got, ok, err := w.Get("USD")
	if err != nil || !ok {
		t.Fatalf("Get(USD) = %v, %v, %v, want an entry", got, ok, err)
	}
	if want := "10.000000000"; got.String() != want {
		t.Errorf("Get(USD) = %q, want %q", got, want)
	}
	if got := w.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	if got, ok, err := w.Get("EUR"); err != nil || ok {
		t.Errorf("Get(EUR) = %v, %v, %v, want absent", got, ok, err)
	}
}

func TestWallet_DistinctKeys(t *testing.T) {
	w := New()
	a1, a2 := A(t, "1.25"), A(t, "-3")
	if err := w.Set("USD", a1); err != nil {
		t.Fatal(err)
	}
	if err := w.Set("usd", a2); err != nil {
		t.Fatal(err)
	}
	if got, _, _ := w.Get("USD"); got != a1 {
		t.Errorf("Get(USD) = %s, want %s", got, a1)
	}
	if got, _, _ := w.Get("usd"); got != a2 {
		t.Errorf("Get(usd) = %s, want %s", got, a2)
	}
	if got := w.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestWallet_Overwrite(t *testing.T) {
	w := New()
	amountA, amountB := A(t, "100"), A(t, "0.000000007")
	w.Set("USD", amountA)
	w.Set("USD", amountA)
	if got := w.Len(); got != 1 {
		t.Errorf("Len() after setting the same entry twice = %d, want 1", got)
	}
	w.Set("USD", amountB)
	if got, _, _ := w.Get("USD"); got != amountB {
		t.Errorf("Get(USD) = %s, want %s", got, amountB)
	}
	if got := w.Len(); got != 1 {
		t.Errorf("Len() after overwrite = %d, want 1", got)
	}
}

func TestWallet_ZeroIsNotAbsent(t *testing.T) {
	w := New()
	w.Set("BTC", 0)
	got, ok, err := w.Get("BTC")
	if err != nil || !ok || !got.IsZero() {
		t.Errorf("Get(BTC) = %v, %v, %v, want a zero entry", got, ok, err)
	}
}

func TestWallet_InvalidKey(t *testing.T) {
	w := New()
	for _, key := range []Key{"", Key([]byte{0xff, 0xfe})} {
		t.Run(fmt.Sprintf("%q", string(key)), func(t *testing.T) {
			if _, _, err := w.Get(key); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Get() error = %v, want %v", err, ErrInvalidKey)
			}
			if err := w.Set(key, 1); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Set() error = %v, want %v", err, ErrInvalidKey)
			}
			if err := w.SetDecimal(key, decimal.NewFromInt(1)); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("SetDecimal() error = %v, want %v", err, ErrInvalidKey)
			}
			if got := w.Len(); got != 0 {
				t.Errorf("Len() = %d, want 0", got)
			}
		})
	}
}

func TestWallet_Decimal(t *testing.T) {
	w := New()
	if err := w.SetDecimal("EUR", decimal.RequireFromString("-42.123456789")); err != nil {
		t.Fatalf("SetDecimal() unexpected error: %v", err)
	}
	got, ok, err := w.GetDecimal("EUR")
	if err != nil || !ok {
		t.Fatalf("GetDecimal(EUR) = %v, %v, %v, want an entry", got, ok, err)
	}
	if want := "-42.123456789"; got.String() != want {
		t.Errorf("GetDecimal(EUR) = %s, want %s", got, want)
	}
	if _, ok, _ := w.GetDecimal("USD"); ok {
		t.Errorf("GetDecimal(USD) found an entry, want absent")
	}

	err = w.SetDecimal("EUR", decimal.RequireFromString("1e20"))
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("SetDecimal(1e20) error = %v, want %v", err, ErrOverflow)
	}
	if a, _, _ := w.Get("EUR"); a != A(t, "-42.123456789") {
		t.Errorf("a failed SetDecimal() changed the entry to %s", a)
	}
}

func TestWallet_String(t *testing.T) {
	w := New()
	w.Set("USD", 1)
	if got := w.String(); got != "<Wallet>" {
		t.Errorf("String() = %q, want %q", got, "<Wallet>")
	}
	if got := fmt.Sprint(w); got != "<Wallet>" {
		t.Errorf("fmt.Sprint() = %q, want %q", got, "<Wallet>")
	}
}

func TestWallet_Equal(t *testing.T) {
	build := func(kv ...any) *Wallet {
		w := New()
		for i := 0; i < len(kv); i += 2 {
			w.Set(Key(kv[i].(string)), Amount(kv[i+1].(int)))
		}
		return w
	}
	same := build("USD", 1)

	testCases := []struct {
		name string
		a, b *Wallet
		want bool
	}{
		{"same instance", same, same, true},
		{"both empty", New(), New(), true},
		{"nil and empty", nil, New(), true},
		{"same content", build("USD", 1, "EUR", 2), build("EUR", 2, "USD", 1), true},
		{"different amount", build("USD", 1), build("USD", 2), false},
		{"different key", build("USD", 1), build("EUR", 1), false},
		{"zero entry is not absent", build("USD", 0), New(), false},
		{"subset", build("USD", 1), build("USD", 1, "EUR", 1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("a.Equal(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("b.Equal(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	for _, s := range []string{"USD", "usd", " EUR", "AAPL.XNAS", "€"} {
		k, err := ParseKey(s)
		if err != nil {
			t.Errorf("ParseKey(%q) unexpected error: %v", s, err)
		}
		if string(k) != s {
			t.Errorf("ParseKey(%q) = %q, keys must not be normalized", s, k)
		}
	}
	if _, err := ParseKey(""); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("ParseKey(\"\") error = %v, want %v", err, ErrInvalidKey)
	}
}
