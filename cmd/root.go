// Package cmd implements the CLI command structure for taskdev.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"taskdev/internal/config"
	"taskdev/internal/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskdev CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskdev", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags are registered by config loading
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("missing command")
	}
	subcommand := remaining[0]
	remaining = remaining[1:]

	diag := newDiagLogger(cfg)

	switch subcommand {
	case "combine":
		return combineCommand(cfg, diag, remaining)
	case "validate":
		return validateCommand(ctx, cfg, diag, remaining)
	case "list":
		return listCommand(cfg, diag, remaining)
	case "export":
		return exportCommand(cfg, diag, remaining)
	case "init":
		return initCommand(cfg, diag, remaining)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newDiagLogger builds the stderr diagnostic logger from config.
func newDiagLogger(cfg *config.Config) *log.Logger {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormat(cfg.LogFormat)
	return logging.New(os.Stderr, opts)
}

// versionCommand prints the build version.
func versionCommand() error {
	fmt.Printf("taskdev %s\n", Version)
	return nil
}

// printUsage writes the top-level usage text.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprint(w, `taskdev - repository task and bundling utilities

Usage:
  taskdev <command> [options]

Commands:
  combine <paths...>   Concatenate files and directory trees into one text file
  validate             Validate staged task front matter against the schema
  list                 List task files with filters and sorting
  export               Export all tasks to a JSON document
  init                 Write a starter config file and task schema
  version              Show version
  help                 Show this help

Global options:
`)
	var b strings.Builder
	prev := fs.Output()
	fs.SetOutput(&b)
	fs.PrintDefaults()
	fs.SetOutput(prev)
	fmt.Fprint(w, b.String())
	fmt.Fprint(w, `
Examples:
  taskdev combine src docs -o bundle.txt
  taskdev validate
  taskdev list --status todo --sort-by priority
  taskdev export -o build/tasks.json
`)
}
