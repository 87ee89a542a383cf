// Package markdown converts between board markdown and the board model.
//
// The dialect is a fixed, purpose-built subset of Markdown, not
// CommonMark. A document looks like:
//
//	# Board Title
//
//	## Epic: Epic Title (EPIC-001)
//
//	### LAUNCH-101: Card title
//
//	**Type**: Story
//	**Priority**: High
//	**Story Points**: 5
//	**Sprint**: Sprint 3
//
//	**Description**: One-line description
//
//	**Acceptance Criteria**:
//
//	- [ ] Open item
//	- [x] Done item
//
//	**Technical Tasks**:
//
//	- [ ] Task
//
//	**Dependencies**: LAUNCH-100
//	**Blocks**: None
//
// # Parsing
//
// Parse is a single pass over physical lines. Each line is trimmed and
// classified against an ordered list of matchers (title, epic heading,
// card heading, metadata field, checklist item, horizontal rule,
// prose); the first match wins. Scan state is an explicit accumulator
// holding the current epic, current card, and current checklist
// section. Blank lines carry no meaning; only headings, metadata
// fields, and horizontal rules change section scope.
//
// Parsing never fails. Structurally malformed lines lose their
// semantic effect and everything else carries on: a malformed epic
// heading leaves the previous epic current, a malformed card heading
// leaves no current card, an unparseable story-point value leaves the
// field unset, and checklist items outside a section are dropped.
// ParseWithNotes reports these recoveries with line numbers for
// diagnostics.
//
// # Serializing
//
// Serialize is a deterministic, total emitter: every Board that
// satisfies the model serializes. Metadata lines carry two trailing
// spaces (Markdown hard line break); the Dependencies/Blocks trailer is
// always emitted, rendering unset or empty lists as the literal "None".
// Round trip holds: parsing serialized output reproduces the same
// structured data, with nil dependency lists canonicalized to empty.
package markdown
