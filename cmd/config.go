package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".walletc.yaml"

var configFile = flag.String("config", "", "Path to a YAML config file (defaults to "+defaultConfigFile+" if it exists)")
var logLevel = flag.String("log-level", "warn", "Minimum level of diagnostics written to stderr (debug, info, warn, error)")
var style = flag.String("style", "auto", "Markdown style for terminal output (auto, dark, light, notty, ascii)")

// Config holds the defaults read from the YAML config file.
//
// Flags set on the command line always take precedence.
type Config struct {
	JournalFile string `yaml:"journal_file"`
	Style       string `yaml:"style"`
	LogLevel    string `yaml:"log_level"`
}

// loadConfig reads a config file. The default config file is optional, an
// explicit one is not.
func loadConfig(filename string) (Config, error) {
	var cfg Config
	explicit := filename != ""
	if !explicit {
		filename = defaultConfigFile
	}
	data, err := os.ReadFile(filename)
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config %q: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config %q: %w", filename, err)
	}
	return cfg, nil
}

// apply copies the config values into the flags that were not set explicitly.
func (c Config) apply(flags *flag.FlagSet) error {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	values := map[string]string{
		"journal-file": c.JournalFile,
		"style":        c.Style,
		"log-level":    c.LogLevel,
	}
	for name, v := range values {
		if v == "" || set[name] {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid config value for %q: %w", name, err)
		}
	}
	return nil
}

// Configure loads the config file and sets up logging. It must be called once
// the command line flags have been parsed.
func Configure() error {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	if err := cfg.apply(flag.CommandLine); err != nil {
		return err
	}
	l, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("configured", zap.String("journal", *journalFile), zap.String("style", *style))
	return nil
}
