package wallet

import (
	"fmt"
	"slices"
)

// Entry records that an amount was set for a key.
type Entry struct {
	Key    Key
	Amount Amount
	Memo   string
}

// NewEntry creates a valid entry.
func NewEntry(key Key, amount Amount, memo string) (Entry, error) {
	if err := key.Validate(); err != nil {
		return Entry{}, err
	}
	return Entry{Key: key, Amount: amount, Memo: memo}, nil
}

// Journal is the ordered list of entries an accounting system applied to a wallet.
//
// Replaying a journal rebuilds the wallet, the last entry for a key wins.
type Journal struct {
	entries []Entry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{entries: make([]Entry, 0)}
}

// Append adds entries at the end of the journal.
func (j *Journal) Append(entries ...Entry) {
	j.entries = append(j.entries, entries...)
}

// Len returns the number of entries.
func (j *Journal) Len() int { return len(j.entries) }

// Entries returns a copy of the entries in journal order.
func (j *Journal) Entries() []Entry { return slices.Clone(j.entries) }

// Keys returns the distinct keys of the journal in order of first appearance.
func (j *Journal) Keys() []Key {
	seen := make(map[Key]bool)
	keys := make([]Key, 0)
	for _, e := range j.entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Wallet replays the journal into a new wallet.
func (j *Journal) Wallet() (*Wallet, error) {
	w := New()
	for i, e := range j.entries {
		if err := w.Set(e.Key, e.Amount); err != nil {
			return nil, fmt.Errorf("entry #%d: %w", i+1, err)
		}
	}
	return w, nil
}
