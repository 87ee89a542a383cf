package markdown

import (
	"strings"
	"testing"

	"github.com/boardmd/boardmd/internal/board"
)

func intp(n int) *int { return &n }

func TestSerializeEmptyBoard(t *testing.T) {
	if got := Serialize(board.New()); got != "" {
		t.Errorf("Serialize(empty) = %q, want empty string", got)
	}
}

func TestSerializeTitleOnly(t *testing.T) {
	b := &board.Board{Title: "My Board", Epics: []board.Epic{}}
	want := "# My Board\n"
	if got := Serialize(b); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeCard(t *testing.T) {
	b := &board.Board{
		Title: "Release",
		Epics: []board.Epic{{
			ID:    "E1",
			Title: "Launch",
			Cards: []board.Card{{
				ID:          "C1",
				Title:       "Ship",
				Type:        "Story",
				StoryPoints: intp(5),
				AcceptanceCriteria: []board.ChecklistItem{
					{Text: "A", Completed: false},
					{Text: "B", Completed: true},
				},
				TechnicalTasks: []board.ChecklistItem{},
				Dependencies:   []string{"C0", "C2"},
			}},
		}},
	}

	want := strings.Join([]string{
		"# Release",
		"",
		"## Epic: Launch (E1)",
		"",
		"",
		"### C1: Ship",
		"",
		"**Type**: Story  ",
		"",
		"**Story Points**: 5  ",
		"",
		"",
		"**Acceptance Criteria**:",
		"",
		"- [ ] A",
		"",
		"- [x] B",
		"",
		"",
		"**Dependencies**: C0, C2  ",
		"**Blocks**: None",
		"",
	}, "\n")

	if got := Serialize(b); got != want {
		t.Errorf("serialized output mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestSerializeTrailerIsUnconditional(t *testing.T) {
	b := &board.Board{Epics: []board.Epic{{
		ID:    "E1",
		Title: "E",
		Cards: []board.Card{{
			ID:                 "C1",
			Title:              "Bare",
			AcceptanceCriteria: []board.ChecklistItem{},
			TechnicalTasks:     []board.ChecklistItem{},
		}},
	}}}

	got := Serialize(b)
	if !strings.Contains(got, "**Dependencies**: None  \n**Blocks**: None\n") {
		t.Errorf("missing unconditional trailer:\n%q", got)
	}
}

func TestSerializeIncludeEmptyFields(t *testing.T) {
	b := &board.Board{Epics: []board.Epic{{
		ID:    "E1",
		Title: "E",
		Cards: []board.Card{{
			ID:                 "C1",
			Title:              "Bare",
			Priority:           "Low",
			AcceptanceCriteria: []board.ChecklistItem{},
			TechnicalTasks:     []board.ChecklistItem{},
		}},
	}}}

	opts := DefaultSerializeOptions()
	withDefaults := SerializeWithOptions(b, opts)
	if strings.Contains(withDefaults, "**Type**:") {
		t.Errorf("unset Type emitted without IncludeEmptyFields:\n%q", withDefaults)
	}

	opts.IncludeEmptyFields = true
	withEmpty := SerializeWithOptions(b, opts)
	for _, line := range []string{"**Type**:   ", "**Priority**: Low  ", "**Story Points**:   ", "**Sprint**:   "} {
		if !strings.Contains(withEmpty, line+"\n") {
			t.Errorf("IncludeEmptyFields output missing %q:\n%q", line, withEmpty)
		}
	}
}

func TestSerializeSeparateCardsWithHr(t *testing.T) {
	b := &board.Board{Epics: []board.Epic{{
		ID:    "E1",
		Title: "E",
		Cards: []board.Card{
			{ID: "C1", Title: "One", AcceptanceCriteria: []board.ChecklistItem{}, TechnicalTasks: []board.ChecklistItem{}},
			{ID: "C2", Title: "Two", AcceptanceCriteria: []board.ChecklistItem{}, TechnicalTasks: []board.ChecklistItem{}},
		},
	}}}

	opts := DefaultSerializeOptions()
	if got := SerializeWithOptions(b, opts); strings.Contains(got, "---") {
		t.Errorf("rule emitted without SeparateCardsWithHr:\n%q", got)
	}

	opts.SeparateCardsWithHr = true
	got := SerializeWithOptions(b, opts)
	if strings.Count(got, "\n---\n") != 1 {
		t.Errorf("want exactly one rule between two cards:\n%q", got)
	}
	if idx := strings.Index(got, "---"); idx < strings.Index(got, "### C1") {
		t.Errorf("rule must not precede the first card:\n%q", got)
	}
}

func TestSerializeTwoEpicSeparation(t *testing.T) {
	b := &board.Board{Epics: []board.Epic{
		{ID: "E1", Title: "One", Cards: []board.Card{}},
		{ID: "E2", Title: "Two", Cards: []board.Card{}},
	}}

	want := strings.Join([]string{
		"## Epic: One (E1)",
		"",
		"",
		"",
		"## Epic: Two (E2)",
		"",
	}, "\n")
	if got := Serialize(b); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeDescription(t *testing.T) {
	b := &board.Board{Epics: []board.Epic{{
		ID:    "E1",
		Title: "E",
		Cards: []board.Card{{
			ID:                 "C1",
			Title:              "Card",
			Description:        "One line only",
			AcceptanceCriteria: []board.ChecklistItem{},
			TechnicalTasks:     []board.ChecklistItem{},
		}},
	}}}

	if got := Serialize(b); !strings.Contains(got, "\n**Description**: One line only\n") {
		t.Errorf("description not emitted:\n%q", got)
	}
}
