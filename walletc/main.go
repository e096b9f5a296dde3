package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/wallet/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	// shell completion requests are answered before anything else.
	cmd.Completion(commander).Complete(name)
	if os.Getenv("COMP_LINE") != "" {
		return
	}

	flag.Parse()
	if err := cmd.Configure(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	status := commander.Execute(context.Background())
	cmd.Sync()
	os.Exit(int(status))
}
