package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct {
	key    string
	amount string
	memo   string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set the amount held for a key" }
func (*setCmd) Usage() string {
	return `walletc set -k <key> -a <amount> [-m <memo>]

  Records in the journal that the wallet holds <amount> for <key>, replacing
  any previous amount. See 'walletc topic amounts' for the amount format.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "k", "", "Key of the entry, usually a currency code")
	f.StringVar(&c.amount, "a", "", "Amount, a decimal number with at most 9 fractional digits")
	f.StringVar(&c.memo, "m", "", "Optional memo recorded with the entry")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -a is required")
		return subcommands.ExitUsageError
	}
	amount, err := wallet.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	e, err := wallet.NewEntry(wallet.Key(c.key), amount, c.memo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if status := EncodeEntry(e); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "%s %s\n", e.Key, e.Amount)
	return subcommands.ExitSuccess
}
