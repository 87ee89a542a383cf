package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

// lineKind tags a classified line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineTitle
	lineEpicHeading
	lineCardHeading
	lineMetadata
	lineChecklistItem
	lineRule
	lineProse
)

// line is the result of classifying one trimmed input line. Which
// capture fields are populated depends on the kind; malformed marks a
// heading whose prefix matched but whose shape did not.
type line struct {
	kind      lineKind
	malformed bool

	title string // lineTitle, lineEpicHeading, lineCardHeading
	id    string // lineEpicHeading, lineCardHeading
	field string // lineMetadata, normalized
	value string // lineMetadata
	text  string // lineChecklistItem
	done  bool   // lineChecklistItem
}

var (
	// Title is everything before the last parenthesised group; the id
	// may not contain ')' so the group binds to the end of the line.
	epicRe = regexp.MustCompile(`^## Epic: (.*?)\s*\(([^)]*)\)$`)

	// Id is everything up to the first colon.
	cardRe = regexp.MustCompile(`^### (.+?):\s*(.*)$`)

	checklistRe = regexp.MustCompile(`^- \[(.)\] (.*)$`)
)

// classify maps a trimmed line to its kind and captures. Rules are
// evaluated in priority order and the first match wins; a line matching
// an earlier rule is never reconsidered for a later one.
func classify(s string) line {
	switch {
	case s == "":
		return line{kind: lineBlank}

	case strings.HasPrefix(s, "# "):
		return line{kind: lineTitle, title: strings.TrimSpace(s[2:])}

	case strings.HasPrefix(s, "## Epic: "):
		m := epicRe.FindStringSubmatch(s)
		if m == nil {
			return line{kind: lineEpicHeading, malformed: true}
		}
		return line{kind: lineEpicHeading, title: m[1], id: m[2]}

	case strings.HasPrefix(s, "### "):
		m := cardRe.FindStringSubmatch(s)
		if m == nil || strings.TrimSpace(m[1]) == "" {
			return line{kind: lineCardHeading, malformed: true}
		}
		return line{kind: lineCardHeading, id: strings.TrimSpace(m[1]), title: strings.TrimSpace(m[2])}

	case strings.HasPrefix(s, "**") && strings.Contains(s, "**:"):
		idx := strings.Index(s, "**:")
		name := s[2:idx]
		value := strings.TrimSpace(s[idx+3:])
		return line{kind: lineMetadata, field: normalizeField(name), value: value}

	case strings.HasPrefix(s, "- ["):
		m := checklistRe.FindStringSubmatch(s)
		if m == nil {
			return line{kind: lineChecklistItem, malformed: true}
		}
		return line{kind: lineChecklistItem, text: m[2], done: m[1] == "x"}

	case strings.HasPrefix(s, "---"):
		return line{kind: lineRule}

	default:
		return line{kind: lineProse}
	}
}

// normalizeField lower-cases a metadata label and strips all
// whitespace, so "Story Points", "story points" and "StoryPoints" all
// dispatch the same way.
func normalizeField(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}
