package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	title string
	raw   bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a statement of every entry" }
func (*showCmd) Usage() string {
	return `walletc show [-t <title>] [-raw]

  Displays every key of the journal with its current amount, and the amount
  formatted as money for currency keys.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "t", "", "Title of the statement, defaults to the journal file name")
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, w, err := DecodeWallet()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	title := c.title
	if title == "" {
		title = filepath.Base(*journalFile)
	}
	doc := renderer.Statement(title, j.Keys(), w)
	if c.raw {
		fmt.Fprint(stdout, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, falling back to the markdown source.
func printMarkdown(md string) {
	opt := glamour.WithStandardStyle(*style)
	if *style == "auto" {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	logger.Sugar().Warnf("cannot render markdown: %v", err)
	fmt.Fprint(stdout, md)
}
