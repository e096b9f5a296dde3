package wallet

import "testing"

// A is a helper for test to create an amount from a decimal string constant.
func A(t *testing.T, s string) Amount {
	t.Helper()
	a, err := ParseAmount(s)
	if err != nil {
		t.Fatalf("ParseAmount(%q) error = %v", s, err)
	}
	return a
}
