// Package board defines the board document model and its file operations.
//
// The board JSON format follows the schema defined in board.schema.json:
//
//	{
//	  "title": "My Board",
//	  "epics": [
//	    {
//	      "id": "EPIC-001",
//	      "title": "Epic title",
//	      "cards": [
//	        {
//	          "id": "LAUNCH-101",
//	          "title": "Card title",
//	          "type": "Story",
//	          "priority": "High",
//	          "storyPoints": 5,
//	          "sprint": "Sprint 3",
//	          "description": "One-line description",
//	          "acceptanceCriteria": [{"text": "...", "completed": false}],
//	          "technicalTasks": [{"text": "...", "completed": true}],
//	          "dependencies": ["LAUNCH-100"],
//	          "blocks": ["LAUNCH-102"]
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// # Validation
//
// The package supports two validation modes:
//
// 1. JSON Schema validation (when a schema file is provided):
//   - Full validation against JSON Schema draft-2020-12
//   - Supports: type checking, required fields, min/max, additionalProperties
//
// 2. Minimal fallback validation (when no schema is available):
//   - Epic and card id/title presence
//   - Duplicate card ids reported as warnings (uniqueness is a document
//     convention, not a model invariant)
//
// # Optional fields
//
// Dependencies and blocks distinguish "not specified" (nil, JSON null)
// from "specified empty" (non-nil empty slice, JSON []). Checklists are
// always present, possibly empty. StoryPoints is a pointer so that an
// unparseable or absent value stays unset rather than zero.
//
// # File format
//
// When writing board files, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Stable key ordering (via JSON marshaling)
package board
