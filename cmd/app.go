// Package cmd implements the CLI application to manage a wallet journal.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&setCmd{}, "wallet")
	c.Register(&getCmd{}, "wallet")
	c.Register(&sizeCmd{}, "wallet")
	c.Register(&showCmd{}, "wallet")
	c.Register(&equalCmd{}, "wallet")

	c.Register(&fmtCmd{}, "journal")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", "wallet.jsonl", "Path to the journal file (JSONL format)")

// stdout receives the user facing output of the commands.
var stdout io.Writer = os.Stdout

// DecodeJournal decodes the app journal file.
//
// A missing journal is an empty one.
func DecodeJournal() (*wallet.Journal, error) {
	return decodeJournalFile(*journalFile)
}

func decodeJournalFile(filename string) (*wallet.Journal, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("journal does not exist, using an empty journal instead", zap.String("file", filename))
		return wallet.NewJournal(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open journal %q: %w", filename, err)
	}
	defer f.Close()

	j, err := wallet.DecodeJournal(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode journal %q: %w", filename, err)
	}
	logger.Debug("journal decoded", zap.String("file", filename), zap.Int("entries", j.Len()))
	return j, nil
}

// DecodeWallet replays the app journal file into a wallet.
func DecodeWallet() (*wallet.Journal, *wallet.Wallet, error) {
	j, err := DecodeJournal()
	if err != nil {
		return nil, nil, err
	}
	w, err := j.Wallet()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot replay journal %q: %w", *journalFile, err)
	}
	return j, w, nil
}

// EncodeEntry appends a single entry into the app journal file.
func EncodeEntry(e wallet.Entry) subcommands.ExitStatus {
	filename := *journalFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := wallet.EncodeEntry(f, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	logger.Info("entry appended", zap.String("file", filename), zap.String("key", e.Key.String()), zap.Stringer("amount", e.Amount))
	return subcommands.ExitSuccess
}

// EncodeJournal replaces the app journal file with j in canonical form.
func EncodeJournal(j *wallet.Journal) error {
	var buf bytes.Buffer
	if err := wallet.EncodeJournal(&buf, j); err != nil {
		return err
	}
	return os.WriteFile(*journalFile, buf.Bytes(), 0644)
}
