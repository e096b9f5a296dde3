// Package wallet provides a fast, exact balance container for accounting
// systems.
//
// A Wallet maps a short Key, usually a currency or commodity code, to an Amount.
// An Amount is a fixed-point decimal with nine fractional digits stored in a
// signed 64-bit integer, so that balances are never subject to floating point
// rounding. Amounts convert losslessly from and to decimal strings and
// shopspring decimals.
//
// The package also provides a Journal, the JSONL persisted list of "set"
// operations an accounting system applied, that can be replayed into a Wallet.
//
// This package serves as the foundational logic for the `walletc` command-line
// tool.
package wallet
