package wallet

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// jentry is the persisted form of an Entry.
type jentry struct {
	Key    string  `json:"key"`
	Memo   string  `json:"memo,omitempty"`
	Amount *Amount `json:"amount"`
}

// DecodeJournal decodes a JSONL stream, one entry per line.
//
// Blank lines are ignored. Errors report the line number.
func DecodeJournal(r io.Reader) (*Journal, error) {
	j := NewJournal()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		e, err := decodeEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		j.Append(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read journal: %w", err)
	}
	return j, nil
}

func decodeEntry(line []byte) (Entry, error) {
	var je jentry
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&je); err != nil {
		return Entry{}, fmt.Errorf("not a valid entry %q: %w", string(line), err)
	}
	if je.Amount == nil {
		return Entry{}, fmt.Errorf("%w: missing the property \"amount\"", ErrInvalidFormat)
	}
	return NewEntry(Key(je.Key), *je.Amount, je.Memo)
}

// MarshalJSON encodes the entry with a canonical field order.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("key", e.Key)
	w.Optional("memo", e.Memo)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// EncodeEntry writes a single entry as a JSON line.
func EncodeEntry(w io.Writer, e Entry) error {
	b, err := e.MarshalJSON()
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("cannot write entry: %w", err)
	}
	return nil
}

// EncodeJournal writes all entries of j in canonical form.
func EncodeJournal(w io.Writer, j *Journal) error {
	for _, e := range j.entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
