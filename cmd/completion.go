package cmd

import (
	"flag"

	"github.com/etnz/wallet/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the registered subcommands.
//
// Install it with `COMP_INSTALL=1 walletc`.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		root.Sub[sub.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	})
	if topic, ok := root.Sub["topic"]; ok {
		topics, _ := docs.GetAllTopics()
		topic.Args = predict.Set(topics)
	}
	if equal, ok := root.Sub["equal"]; ok {
		equal.Args = predict.Files("*.jsonl")
	}
	return root
}

// flagPredictors predicts the values of every flag in fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "k":
			flags[f.Name] = complete.PredictFunc(predictKeys)
		case f.Name == "journal-file" || f.Name == "o":
			flags[f.Name] = predict.Files("*.jsonl")
		case f.Name == "config":
			flags[f.Name] = predict.Files("*.yaml")
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

// predictKeys suggests the keys already present in the journal.
func predictKeys(prefix string) []string {
	j, err := DecodeJournal()
	if err != nil {
		return nil
	}
	keys := make([]string, 0)
	for _, k := range j.Keys() {
		keys = append(keys, k.String())
	}
	return keys
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
