// Package main is the entry point for the Reckon calculator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/reckon/internal/config"
	"github.com/dshills/reckon/internal/engine"
	"github.com/dshills/reckon/internal/logging"
	"github.com/dshills/reckon/internal/repl"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		noColor     bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Reckon - interactive calculator with persistent history\n\n")
		fmt.Fprintf(os.Stderr, "Usage: reckon [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("reckon %s (%s)\n", version, commit)
		return 0
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.New(cfg.LogDir, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up logging: %v\n", err)
		return 1
	}
	defer closeLog() //nolint:errcheck

	eng := engine.New(cfg, engine.WithLogger(logger))

	r := repl.New(eng, os.Stdin, os.Stdout,
		repl.WithLogger(logger),
		repl.WithColor(!noColor && repl.IsTerminal(os.Stdout)),
	)
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
