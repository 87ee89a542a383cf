package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boardmd/boardmd/internal/board"
)

// ParseOptions controls parsing. Both fields are accepted for forward
// compatibility: malformed input always recovers and unknown metadata
// fields are always ignored, so neither flag changes the resulting
// board in the base grammar.
type ParseOptions struct {
	Strict             bool
	AllowUnknownFields bool
}

// Note records a recovery event during parsing: a line whose semantic
// effect was dropped. Notes are diagnostics only and never affect the
// parsed board.
type Note struct {
	Line    int
	Message string
}

func (n Note) String() string {
	return fmt.Sprintf("line %d: %s", n.Line, n.Message)
}

// checklist section scope carried across lines.
type section int

const (
	sectionNone section = iota
	sectionAcceptance
	sectionTechnical
)

// scanState is the accumulator threaded through the line loop.
//
// Epics are accumulated as pointers: a malformed epic heading keeps the
// previous epic current even though it has already been flushed, so
// cards that follow must still reach the board. The flushed flag keeps
// the epic from being appended twice.
type scanState struct {
	title    string
	titleSet bool
	epics    []*board.Epic
	epic     *board.Epic
	flushed  bool
	card     *board.Card
	section  section
	notes    []Note
}

// Parse converts board markdown into a Board. It never fails:
// malformed lines lose their effect and parsing continues.
func Parse(text string) *board.Board {
	b, _ := ParseWithNotes(text, ParseOptions{})
	return b
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(text string, opts ParseOptions) *board.Board {
	b, _ := ParseWithNotes(text, opts)
	return b
}

// ParseWithNotes parses and additionally reports recovery notes with
// 1-based line numbers.
func ParseWithNotes(text string, opts ParseOptions) (*board.Board, []Note) {
	st := &scanState{}
	for i, raw := range strings.Split(text, "\n") {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		st.apply(i+1, classify(s), opts)
	}
	return st.finish(), st.notes
}

func (st *scanState) apply(lineno int, ln line, opts ParseOptions) {
	switch ln.kind {
	case lineTitle:
		// Only the first top-level heading sets the title; later ones
		// are inert.
		if !st.titleSet {
			st.title = ln.title
			st.titleSet = true
		}

	case lineEpicHeading:
		st.flushCard()
		st.flushEpic()
		if ln.malformed {
			// Previous epic stays current; only card/section reset.
			st.note(lineno, "epic heading without parenthesised id dropped")
		} else {
			st.epic = &board.Epic{ID: ln.id, Title: ln.title, Cards: []board.Card{}}
			st.flushed = false
		}
		st.card = nil
		st.section = sectionNone

	case lineCardHeading:
		st.flushCard()
		if ln.malformed {
			st.note(lineno, "card heading without id dropped")
			st.card = nil
		} else {
			st.card = &board.Card{
				ID:                 ln.id,
				Title:              ln.title,
				AcceptanceCriteria: []board.ChecklistItem{},
				TechnicalTasks:     []board.ChecklistItem{},
			}
		}
		st.section = sectionNone

	case lineMetadata:
		if st.card == nil {
			st.note(lineno, fmt.Sprintf("metadata field %q outside a card dropped", ln.field))
			return
		}
		// Any metadata field ends the checklist section scope; the two
		// section markers then open a new one.
		st.section = sectionNone
		st.applyField(lineno, ln.field, ln.value, opts)

	case lineChecklistItem:
		if ln.malformed {
			st.note(lineno, "malformed checklist item dropped")
			return
		}
		if st.card == nil || st.section == sectionNone {
			st.note(lineno, "checklist item outside a checklist section dropped")
			return
		}
		item := board.ChecklistItem{Text: ln.text, Completed: ln.done}
		if st.section == sectionAcceptance {
			st.card.AcceptanceCriteria = append(st.card.AcceptanceCriteria, item)
		} else {
			st.card.TechnicalTasks = append(st.card.TechnicalTasks, item)
		}

	case lineRule:
		// Ends the checklist scope only; the current card and epic
		// survive.
		st.section = sectionNone
	}
}

// applyField dispatches one normalized metadata field onto the current
// card. Section markers switch the checklist scope instead of storing a
// value.
func (st *scanState) applyField(lineno int, field, value string, opts ParseOptions) {
	switch field {
	case "type":
		st.card.Type = value
	case "priority":
		st.card.Priority = value
	case "storypoints":
		n, err := strconv.Atoi(value)
		if err != nil {
			// Left unset, not zero.
			st.note(lineno, fmt.Sprintf("story points value %q is not an integer", value))
			return
		}
		st.card.StoryPoints = &n
	case "sprint":
		st.card.Sprint = value
	case "description":
		st.card.Description = value
	case "dependencies":
		st.card.Dependencies = splitRefs(value)
	case "blocks":
		st.card.Blocks = splitRefs(value)
	case "acceptancecriteria":
		st.section = sectionAcceptance
	case "technicaltasks":
		st.section = sectionTechnical
	default:
		// Unknown fields never error, whatever the options say.
		if !opts.AllowUnknownFields {
			st.note(lineno, fmt.Sprintf("unknown metadata field %q ignored", field))
		}
	}
}

// splitRefs decodes a dependency/block value. The literal "None" means
// an explicitly empty list.
func splitRefs(value string) []string {
	if value == "None" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	refs := make([]string, len(parts))
	for i, p := range parts {
		refs[i] = strings.TrimSpace(p)
	}
	return refs
}

// flushCard moves the in-progress card into the in-progress epic. A
// card without an epic is dropped.
func (st *scanState) flushCard() {
	if st.card != nil && st.epic != nil {
		st.epic.Cards = append(st.epic.Cards, *st.card)
	}
	st.card = nil
}

// flushEpic appends the in-progress epic to the board unless it is
// already there.
func (st *scanState) flushEpic() {
	if st.epic != nil && !st.flushed {
		st.epics = append(st.epics, st.epic)
		st.flushed = true
	}
}

func (st *scanState) note(lineno int, msg string) {
	st.notes = append(st.notes, Note{Line: lineno, Message: msg})
}

// finish performs the end-of-input flush and builds the board.
func (st *scanState) finish() *board.Board {
	st.flushCard()
	st.flushEpic()

	b := board.New()
	b.Title = st.title
	for _, e := range st.epics {
		b.Epics = append(b.Epics, *e)
	}
	return b
}
