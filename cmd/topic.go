package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/wallet/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded help topics.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read about amounts and the journal format" }
func (*topicCmd) Usage() string {
	return `walletc topic [-l] [<topic>...]

  Prints help topics, rendered for the terminal. Without a topic, prints the
  index of topics. Use '*' to print all of them, or -l to list their names:

  $ walletc topic amounts journal
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list the topic names, one per line")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		names, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, strings.Join(names, "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, see 'walletc topic -l'\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
