package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// ChecklistItem is a single checklist entry on a card.
type ChecklistItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Card is the leaf work item of a board.
//
// AcceptanceCriteria and TechnicalTasks are always non-nil, possibly
// empty. Dependencies and Blocks are nil when the source document never
// specified them and non-nil (possibly empty) once set; the two cases
// marshal to JSON null and [] respectively.
type Card struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Type               string          `json:"type,omitempty"`
	Priority           string          `json:"priority,omitempty"`
	StoryPoints        *int            `json:"storyPoints,omitempty"`
	Sprint             string          `json:"sprint,omitempty"`
	Description        string          `json:"description,omitempty"`
	AcceptanceCriteria []ChecklistItem `json:"acceptanceCriteria"`
	TechnicalTasks     []ChecklistItem `json:"technicalTasks"`
	Dependencies       []string        `json:"dependencies"`
	Blocks             []string        `json:"blocks"`
}

// IsZero returns true if the card is empty (has no ID).
func (c *Card) IsZero() bool {
	return c.ID == ""
}

// Epic is a named grouping of cards. Cards preserve source order.
type Epic struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// Board is the root document. Epics preserve source order.
type Board struct {
	Title string `json:"title,omitempty"`
	Epics []Epic `json:"epics"`
}

// New returns an empty board with a non-nil epics list.
func New() *Board {
	return &Board{Epics: []Epic{}}
}

// Load reads and parses a board JSON file from path.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse board file: %w", err)
	}
	return b, nil
}

// Decode parses board JSON. Checklists and the epic list are
// normalized to non-nil slices so the model invariants hold even for
// hand-written input.
func Decode(data []byte) (*Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if b.Epics == nil {
		b.Epics = []Epic{}
	}
	for i := range b.Epics {
		if b.Epics[i].Cards == nil {
			b.Epics[i].Cards = []Card{}
		}
		for j := range b.Epics[i].Cards {
			card := &b.Epics[i].Cards[j]
			if card.AcceptanceCriteria == nil {
				card.AcceptanceCriteria = []ChecklistItem{}
			}
			if card.TechnicalTasks == nil {
				card.TechnicalTasks = []ChecklistItem{}
			}
		}
	}
	return &b, nil
}

// Encode marshals the board with 2-space indentation and a trailing
// newline.
func (b *Board) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal board: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the board JSON file to path.
func (b *Board) Save(path string) error {
	data, err := b.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	return nil
}

// FindEpic returns an epic by ID, or nil if not found.
func (b *Board) FindEpic(id string) *Epic {
	for i := range b.Epics {
		if b.Epics[i].ID == id {
			return &b.Epics[i]
		}
	}
	return nil
}

// FindCard returns a card by ID, or nil if not found.
func (b *Board) FindCard(id string) *Card {
	for i := range b.Epics {
		for j := range b.Epics[i].Cards {
			if b.Epics[i].Cards[j].ID == id {
				return &b.Epics[i].Cards[j]
			}
		}
	}
	return nil
}

// CardCount returns the number of cards across all epics.
func (b *Board) CardCount() int {
	n := 0
	for i := range b.Epics {
		n += len(b.Epics[i].Cards)
	}
	return n
}

// ChecklistCount returns the total and completed checklist item counts
// across both checklists of every card.
func (b *Board) ChecklistCount() (total, completed int) {
	for i := range b.Epics {
		for j := range b.Epics[i].Cards {
			card := &b.Epics[i].Cards[j]
			for _, items := range [][]ChecklistItem{card.AcceptanceCriteria, card.TechnicalTasks} {
				for _, item := range items {
					total++
					if item.Completed {
						completed++
					}
				}
			}
		}
	}
	return total, completed
}
