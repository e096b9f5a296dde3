package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type equalCmd struct{}

func (*equalCmd) Name() string     { return "equal" }
func (*equalCmd) Synopsis() string { return "compare the wallets of two journals" }
func (*equalCmd) Usage() string {
	return `walletc equal <journal> [<other journal>]

  Replays both journals and reports whether they hold the same keys with the
  same amounts. With a single argument, compares it with the app journal.
  Exits with a failure status when the wallets differ.
`
}

func (*equalCmd) SetFlags(f *flag.FlagSet) {}

func (*equalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := f.Args()
	switch len(files) {
	case 1:
		files = []string{*journalFile, files[0]}
	case 2:
	default:
		fmt.Fprintln(os.Stderr, "Error: expected one or two journal files")
		return subcommands.ExitUsageError
	}

	a, err := decodeJournalFile(files[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	b, err := decodeJournalFile(files[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	wa, err := a.Wallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying %q: %v\n", files[0], err)
		return subcommands.ExitFailure
	}
	wb, err := b.Wallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying %q: %v\n", files[1], err)
		return subcommands.ExitFailure
	}

	if !wa.Equal(wb) {
		fmt.Fprintln(stdout, "different")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, "equal")
	return subcommands.ExitSuccess
}
