package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "walletc.yaml")
	content := `journal_file: savings.jsonl
style: dark
log_level: debug
`
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(filename)
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}
	want := Config{JournalFile: "savings.jsonl", Style: "dark", LogLevel: "debug"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("loadConfig() expected an error for a missing explicit file")
	}
}

func TestConfig_Apply(t *testing.T) {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	journal := flags.String("journal-file", "wallet.jsonl", "")
	styleFlag := flags.String("style", "auto", "")
	level := flags.String("log-level", "warn", "")
	if err := flags.Parse([]string{"-style", "light"}); err != nil {
		t.Fatal(err)
	}

	cfg := Config{JournalFile: "savings.jsonl", Style: "dark"}
	if err := cfg.apply(flags); err != nil {
		t.Fatalf("apply() unexpected error: %v", err)
	}
	if *journal != "savings.jsonl" {
		t.Errorf("journal-file = %q, want the config value", *journal)
	}
	if *styleFlag != "light" {
		t.Errorf("style = %q, the command line value must win", *styleFlag)
	}
	if *level != "warn" {
		t.Errorf("log-level = %q, an empty config value must not change the default", *level)
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug"); err != nil {
		t.Errorf("newLogger(debug) unexpected error: %v", err)
	}
	if _, err := newLogger("loud"); err == nil {
		t.Errorf("newLogger(loud) expected an error")
	}
}

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("walletc", flag.ContinueOnError), "walletc")
	Register(commander)

	c := Completion(commander)
	for _, name := range []string{"set", "get", "size", "show", "equal", "fmt", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion has no %q subcommand", name)
		}
	}
	set := c.Sub["set"]
	for _, flagName := range []string{"k", "a", "m"} {
		if _, ok := set.Flags[flagName]; !ok {
			t.Errorf("completion of set has no -%s flag", flagName)
		}
	}
	if c.Sub["topic"].Args == nil {
		t.Errorf("completion of topic does not predict topics")
	}
	if _, ok := c.Flags["journal-file"]; !ok {
		t.Errorf("completion has no -journal-file global flag")
	}
}
