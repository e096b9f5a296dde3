// Package renderer renders wallets as markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/wallet"
	md "github.com/nao1215/markdown"
)

// absent is displayed in place of an amount for keys without an entry.
const absent = "-"

// Statement renders a markdown statement listing the entries of w for keys, in
// that order.
//
// A wallet does not list its keys, the caller provides them, usually from the
// journal that built the wallet.
func Statement(title string, keys []wallet.Key, w *wallet.Wallet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, statementRow(key, w))
	}
	doc.Table(md.TableSet{
		Header: []string{"Key", "Amount", "Display"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d entries", w.Len()))

	return doc.String()
}

func statementRow(key wallet.Key, w *wallet.Wallet) []string {
	amount, ok, err := w.Get(key)
	if err != nil || !ok {
		return []string{key.String(), absent, ""}
	}
	var display string
	if wallet.IsCurrency(key) {
		if s, err := amount.Format(key); err == nil {
			display = s
		}
	}
	return []string{key.String(), amount.String(), display}
}
