package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/boardmd/boardmd/internal/board"
	"github.com/boardmd/boardmd/internal/config"
)

// validateCommand validates a board JSON file against the schema, or
// the minimal structural checks when no schema is available.
func validateCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	path, err := singleFileArg("validate", args)
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
	if result.UsedSchema {
		logger.Debug("validated against schema", "schema", cfg.SchemaFile)
	}

	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Printf("  - %v\n", e)
		}
		return fmt.Errorf("board %s failed validation", path)
	}

	fmt.Printf("%s is valid (%d epics, %d cards)\n", path, len(b.Epics), b.CardCount())
	return nil
}
