package markdown

import (
	"strconv"
	"strings"

	"github.com/boardmd/boardmd/internal/board"
)

// SerializeOptions controls formatting of the emitted markdown. The
// options are orthogonal: IncludeEmptyFields affects only the metadata
// block, SeparateCardsWithHr affects only card separation, and
// IndentSize is accepted for forward compatibility but has no
// observable effect in the base grammar (no nested list levels exist).
type SerializeOptions struct {
	IncludeEmptyFields  bool
	IndentSize          int
	SeparateCardsWithHr bool
}

// DefaultSerializeOptions returns the default formatting options.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{IndentSize: 2}
}

// Serialize renders a board as board markdown with default options.
func Serialize(b *board.Board) string {
	return SerializeWithOptions(b, DefaultSerializeOptions())
}

// SerializeWithOptions renders a board as board markdown. It is a
// total function: every board that satisfies the model serializes.
func SerializeWithOptions(b *board.Board, opts SerializeOptions) string {
	var lines []string

	if b.Title != "" {
		lines = append(lines, "# "+b.Title, "")
	}

	for ei := range b.Epics {
		epic := &b.Epics[ei]
		if ei > 0 {
			lines = append(lines, "", "")
		}
		lines = append(lines, "## Epic: "+epic.Title+" ("+epic.ID+")", "")

		for ci := range epic.Cards {
			card := &epic.Cards[ci]
			if ci > 0 && opts.SeparateCardsWithHr {
				lines = append(lines, "", "---")
			}
			lines = append(lines, "", "### "+card.ID+": "+card.Title, "")
			lines = appendCard(lines, card, opts)
		}
	}

	return strings.Join(lines, "\n")
}

func appendCard(lines []string, card *board.Card, opts SerializeOptions) []string {
	lines = appendMetadata(lines, card, opts)

	if card.Description != "" {
		lines = append(lines, "", "**Description**: "+card.Description, "")
	}

	lines = appendChecklist(lines, "**Acceptance Criteria**:", card.AcceptanceCriteria)
	lines = appendChecklist(lines, "**Technical Tasks**:", card.TechnicalTasks)

	// The dependency trailer is unconditional and ignores
	// IncludeEmptyFields; unset and empty lists both render as "None".
	lines = append(lines,
		"",
		"**Dependencies**: "+refList(card.Dependencies)+"  ",
		"**Blocks**: "+refList(card.Blocks),
		"")

	return lines
}

// appendMetadata emits the fixed-order metadata block. Two trailing
// spaces are a Markdown hard line break.
func appendMetadata(lines []string, card *board.Card, opts SerializeOptions) []string {
	fields := []struct {
		label string
		value string
		set   bool
	}{
		{"Type", card.Type, card.Type != ""},
		{"Priority", card.Priority, card.Priority != ""},
		{"Story Points", storyPoints(card), card.StoryPoints != nil},
		{"Sprint", card.Sprint, card.Sprint != ""},
	}
	for _, f := range fields {
		if f.set || opts.IncludeEmptyFields {
			lines = append(lines, "**"+f.label+"**: "+f.value+"  ", "")
		}
	}
	return lines
}

func appendChecklist(lines []string, label string, items []board.ChecklistItem) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, "", label, "")
	for _, item := range items {
		marker := " "
		if item.Completed {
			marker = "x"
		}
		lines = append(lines, "- ["+marker+"] "+item.Text, "")
	}
	return lines
}

func storyPoints(card *board.Card) string {
	if card.StoryPoints == nil {
		return ""
	}
	return strconv.Itoa(*card.StoryPoints)
}

// refList renders a dependency/block list, defaulting to the literal
// "None" so the trailer always round-trips to an explicit empty list.
func refList(refs []string) string {
	if len(refs) == 0 {
		return "None"
	}
	return strings.Join(refs, ", ")
}
