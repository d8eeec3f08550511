// Package main provides the seed command-line tool.
// It prints sample article data for manual entry through a database console.
// Nothing is written to any database.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"newsseed/internal/config"
	"newsseed/internal/emitter"
	"newsseed/internal/fixtures"
	"newsseed/internal/logger"
)

const (
	exitOK    = 0
	exitUsage = 2
)

// options holds command-line overrides. Empty values leave the config as is.
type options struct {
	ConfigPath string
	Format     string
	Collection string
	LogLevel   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	log := logger.New(stderr, "info")

	cfg, err := resolveConfig(opts)
	if err != nil {
		log.Error("Invalid configuration", "error", err)
		return exitUsage
	}

	log.SetLevel(cfg.Logging.Level)
	log.Debug("Configuration resolved", "config", cfg.String())

	out, err := emitter.New(cfg.Output.Format, cfg.Output.Collection)
	if err != nil {
		log.Error("Failed to create emitter", "error", err)
		return exitUsage
	}

	articles := fixtures.SampleArticles()
	log.Debug("Emitting sample articles", "count", len(articles), "format", out.Format())

	// A broken stdout is an environment problem; the exit status stays 0.
	if err := out.Emit(stdout, articles); err != nil {
		log.Warn("Failed to write output", "error", err)
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to YAML configuration file (optional)")
	fs.StringVar(&opts.Format, "format", "", "Output format: "+strings.Join(emitter.Formats(), ", "))
	fs.StringVar(&opts.Collection, "collection", "", "Target collection or table name")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()

		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

// resolveConfig reads the config file if one was given, applies flags, and
// validates the result once so flags can correct bad file values.
func resolveConfig(opts options) (*config.Config, error) {
	cfg := config.Default()

	if opts.ConfigPath != "" {
		loaded, err := config.LoadConfig(opts.ConfigPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.Format != "" {
		cfg.Output.Format = strings.ToLower(opts.Format)
	}

	if opts.Collection != "" {
		cfg.Output.Collection = opts.Collection
	}

	if opts.LogLevel != "" {
		cfg.Logging.Level = strings.ToLower(opts.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()

	fmt.Fprintln(w, "Usage: ./bin/seed [OPTIONS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Prints sample articles to stdout. Copy the output into the database console.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ./bin/seed")
	fmt.Fprintln(w, "  ./bin/seed -format sql -collection news_articles")
	fmt.Fprintln(w, "  ./bin/seed -config configs/seed.yaml")
}
