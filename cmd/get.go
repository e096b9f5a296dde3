package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

type getCmd struct {
	key string
}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "print the amount held for a key" }
func (*getCmd) Usage() string {
	return `walletc get -k <key>

  Prints the amount held for <key> in canonical form. If the wallet has no
  entry for <key> it prints "absent" and exits with a failure status.
`
}

func (c *getCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "k", "", "Key of the entry")
}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, w, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	amount, ok, err := w.Get(wallet.Key(c.key))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !ok {
		fmt.Fprintln(stdout, "absent")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, amount)
	return subcommands.ExitSuccess
}
