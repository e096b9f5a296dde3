package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the journal file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `walletc fmt [-o <file>|-]

  Validates every entry of the journal and writes it back in canonical form:
  fixed field order and amounts with nine fractional digits.
  By default the journal is formatted in-place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for stdout. Formats in-place by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, err := DecodeJournal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journal: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.output {
	case "":
		err = EncodeJournal(j)
	case "-":
		err = wallet.EncodeJournal(stdout, j)
	default:
		var out *os.File
		if out, err = os.Create(c.output); err == nil {
			err = wallet.EncodeJournal(out, j)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
