// Package ui renders board listings and summaries for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/boardmd/boardmd/internal/board"
)

var (
	epicStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

// Listing renders the epics and cards of a board, one line per card.
// Verbose adds checklists and cross-references.
func Listing(b *board.Board, verbose bool) string {
	var sb strings.Builder

	if b.Title != "" {
		sb.WriteString(headerStyle.Render(b.Title))
		sb.WriteString("\n\n")
	}

	if len(b.Epics) == 0 {
		sb.WriteString(mutedStyle.Render("No epics."))
		sb.WriteString("\n")
		return sb.String()
	}

	for i := range b.Epics {
		epic := &b.Epics[i]
		fmt.Fprintf(&sb, "%s %s\n",
			epicStyle.Render(epic.Title),
			mutedStyle.Render("("+epic.ID+")"))
		for j := range epic.Cards {
			writeCard(&sb, &epic.Cards[j], verbose)
		}
		if len(epic.Cards) == 0 {
			sb.WriteString(mutedStyle.Render("  no cards"))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeCard(sb *strings.Builder, card *board.Card, verbose bool) {
	done, total := checklistProgress(card)
	progress := ""
	if total > 0 {
		progress = " " + progressLabel(done, total)
	}
	fmt.Fprintf(sb, "  %s %s%s\n", idStyle.Render("["+card.ID+"]"), card.Title, progress)

	if !verbose {
		return
	}
	if card.Type != "" || card.Priority != "" || card.Sprint != "" {
		fmt.Fprintf(sb, "      %s\n", mutedStyle.Render(metaLine(card)))
	}
	for _, item := range card.AcceptanceCriteria {
		fmt.Fprintf(sb, "      %s\n", checklistLine(item))
	}
	for _, item := range card.TechnicalTasks {
		fmt.Fprintf(sb, "      %s\n", checklistLine(item))
	}
	if len(card.Dependencies) > 0 {
		fmt.Fprintf(sb, "      %s %s\n", mutedStyle.Render("depends on:"), strings.Join(card.Dependencies, ", "))
	}
	if len(card.Blocks) > 0 {
		fmt.Fprintf(sb, "      %s %s\n", mutedStyle.Render("blocks:"), strings.Join(card.Blocks, ", "))
	}
}

// Summary renders the epic/card/checklist counts block shown after a
// roundtrip.
func Summary(b *board.Board) string {
	total, completed := b.ChecklistCount()
	lines := []string{
		headerStyle.Render("Summary"),
		fmt.Sprintf("  Epics:           %d", len(b.Epics)),
		fmt.Sprintf("  Cards:           %d", b.CardCount()),
		fmt.Sprintf("  Checklist items: %s", progressLabel(completed, total)),
	}
	return summaryStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func checklistProgress(card *board.Card) (done, total int) {
	for _, items := range [][]board.ChecklistItem{card.AcceptanceCriteria, card.TechnicalTasks} {
		for _, item := range items {
			total++
			if item.Completed {
				done++
			}
		}
	}
	return done, total
}

func progressLabel(done, total int) string {
	label := fmt.Sprintf("%d/%d", done, total)
	if total > 0 && done == total {
		return doneStyle.Render(label)
	}
	return label
}

func metaLine(card *board.Card) string {
	var parts []string
	if card.Type != "" {
		parts = append(parts, card.Type)
	}
	if card.Priority != "" {
		parts = append(parts, card.Priority)
	}
	if card.StoryPoints != nil {
		parts = append(parts, fmt.Sprintf("%d pts", *card.StoryPoints))
	}
	if card.Sprint != "" {
		parts = append(parts, card.Sprint)
	}
	return strings.Join(parts, " · ")
}

func checklistLine(item board.ChecklistItem) string {
	if item.Completed {
		return doneStyle.Render("[x] " + item.Text)
	}
	return "[ ] " + item.Text
}
