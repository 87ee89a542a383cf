package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/boardmd/boardmd/internal/board"
	"github.com/boardmd/boardmd/internal/config"
	"github.com/boardmd/boardmd/internal/markdown"
	"github.com/boardmd/boardmd/internal/ui"
)

// parseCommand converts board markdown to board JSON on stdout.
func parseCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	path, err := singleFileArg("parse", args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	b, notes := markdown.ParseWithNotes(string(data), markdown.ParseOptions{Strict: cfg.Strict})
	logNotes(logger, notes)

	out, err := b.Encode()
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// serializeCommand converts board JSON to board markdown on stdout.
// The input is validated first; failures are fatal under -strict and
// logged as warnings otherwise.
func serializeCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	path, err := singleFileArg("serialize", args)
	if err != nil {
		return err
	}

	b, err := board.Load(path)
	if err != nil {
		return err
	}

	result := b.Validate(board.ValidationOptions{SchemaPath: cfg.SchemaFile})
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	if !result.Valid {
		if cfg.Strict {
			for _, e := range result.Errors {
				logger.Error(e.Error())
			}
			return fmt.Errorf("board %s failed validation", path)
		}
		for _, e := range result.Errors {
			logger.Warn(e.Error())
		}
	}

	printMarkdown(markdown.SerializeWithOptions(b, serializeOptions(cfg)))
	return nil
}

// roundtripCommand prints the original markdown, the parsed JSON, the
// re-serialized markdown, and a summary of epic/card/checklist counts.
func roundtripCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	path, err := singleFileArg("roundtrip", args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	b, notes := markdown.ParseWithNotes(string(data), markdown.ParseOptions{Strict: cfg.Strict})
	logNotes(logger, notes)

	out, err := b.Encode()
	if err != nil {
		return err
	}

	fmt.Println("=== Original ===")
	fmt.Println(string(data))
	fmt.Println("=== Parsed JSON ===")
	fmt.Print(string(out))
	fmt.Println()
	fmt.Println("=== Serialized ===")
	printMarkdown(markdown.SerializeWithOptions(b, serializeOptions(cfg)))
	fmt.Println()
	fmt.Print(ui.Summary(b))
	return nil
}
