package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/boardmd/boardmd/internal/config"
	"github.com/boardmd/boardmd/internal/markdown"
	"github.com/boardmd/boardmd/internal/ui"
)

// lsCommand lists epics and cards from a board markdown file.
func lsCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("boardmd ls", flag.ContinueOnError)
	long := fs.Bool("l", false, "Show checklists and cross-references")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		return fmt.Errorf("usage: boardmd ls [-l] <file>")
	}
	path := remaining[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	b, notes := markdown.ParseWithNotes(string(data), markdown.ParseOptions{Strict: cfg.Strict})
	logNotes(logger, notes)

	fmt.Print(ui.Listing(b, *long))
	return nil
}
