package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sizeCmd struct{}

func (*sizeCmd) Name() string     { return "size" }
func (*sizeCmd) Synopsis() string { return "print the number of keys in the wallet" }
func (*sizeCmd) Usage() string {
	return `walletc size

  Prints the number of distinct keys held by the wallet.
`
}

func (*sizeCmd) SetFlags(f *flag.FlagSet) {}

func (*sizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, w, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, w.Len())
	return subcommands.ExitSuccess
}
