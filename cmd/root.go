// Package cmd implements the CLI command structure for boardmd.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/boardmd/boardmd/internal/config"
	"github.com/boardmd/boardmd/internal/logging"
	"github.com/boardmd/boardmd/internal/markdown"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the boardmd CLI.
func Run(ctx context.Context, args []string) error {
	_ = ctx

	// Create a flag set for global options
	fs := flag.NewFlagSet("boardmd", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	verbose := fs.Bool("v", false, "Verbose output (debug logging)")

	// Global flags
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

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	remainingArgs := fs.Args()
	if len(remainingArgs) == 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("no command specified")
	}
	subcommand := remainingArgs[0]
	remainingArgs = remainingArgs[1:]

	switch subcommand {
	case "parse":
		return parseCommand(cfg, logger, remainingArgs)
	case "serialize":
		return serializeCommand(cfg, logger, remainingArgs)
	case "roundtrip":
		return roundtripCommand(cfg, logger, remainingArgs)
	case "validate":
		return validateCommand(cfg, logger, remainingArgs)
	case "ls":
		return lsCommand(cfg, logger, remainingArgs)
	case "version", "--version":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("boardmd version %s\n", Version)
	return nil
}

// singleFileArg parses command args expecting exactly one file path.
func singleFileArg(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	remaining := fs.Args()
	if len(remaining) != 1 {
		return "", fmt.Errorf("usage: boardmd %s <file>", name)
	}
	return remaining[0], nil
}

// logNotes reports parser recovery notes at debug level.
func logNotes(logger *log.Logger, notes []markdown.Note) {
	for _, n := range notes {
		logger.Debug("recovered", "line", n.Line, "msg", n.Message)
	}
}

// serializeOptions maps config onto serializer options.
func serializeOptions(cfg *config.Config) markdown.SerializeOptions {
	return markdown.SerializeOptions{
		IncludeEmptyFields:  cfg.IncludeEmptyFields,
		IndentSize:          cfg.IndentSize,
		SeparateCardsWithHr: cfg.SeparateCardsWithHr,
	}
}

// printMarkdown writes serialized markdown with a final newline.
func printMarkdown(md string) {
	fmt.Print(md)
	if md != "" && !strings.HasSuffix(md, "\n") {
		fmt.Println()
	}
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "boardmd - Convert between board markdown and board JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  boardmd [options] <command> [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  parse <file>      Parse board markdown, print board JSON")
	fmt.Fprintln(w, "  serialize <file>  Read board JSON, print board markdown")
	fmt.Fprintln(w, "  roundtrip <file>  Print original, parsed JSON, re-serialized markdown and a summary")
	fmt.Fprintln(w, "  validate <file>   Validate board JSON against the schema")
	fmt.Fprintln(w, "  ls <file>         List epics and cards from board markdown")
	fmt.Fprintln(w, "  version           Show version information")
	fmt.Fprintln(w, "  help              Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options (use with 'ls' command):")
	fmt.Fprintln(w, "  -l    Show checklists and cross-references")
}
