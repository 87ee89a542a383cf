package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleMarkdown = `# Sprint Board

## Epic: Checkout (EPIC-001)

### LAUNCH-101: Payment form

**Type**: Story

**Acceptance Criteria**:

- [x] validates card number

- [ ] rejects expired cards
`

const sampleJSON = `{
  "title": "Sprint Board",
  "epics": [
    {
      "id": "EPIC-001",
      "title": "Checkout",
      "cards": [
        {
          "id": "LAUNCH-101",
          "title": "Payment form",
          "type": "Story",
          "acceptanceCriteria": [
            {"text": "validates card number", "completed": true}
          ],
          "technicalTasks": []
        }
      ]
    }
  ]
}
`

// isolateEnv keeps host config files out of the config lookup.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what was written.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	runErr := fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return buf.String(), runErr
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("help flag", func(t *testing.T) {
		isolateEnv(t)
		out, err := captureStdout(t, func() error {
			return Run(ctx, []string{"-h"})
		})
		if err != nil {
			t.Fatalf("Run(-h) = %v", err)
		}
		if !strings.Contains(out, "Usage:") || !strings.Contains(out, "parse <file>") {
			t.Errorf("usage text missing:\n%s", out)
		}
	})

	t.Run("version command", func(t *testing.T) {
		isolateEnv(t)
		out, err := captureStdout(t, func() error {
			return Run(ctx, []string{"version"})
		})
		if err != nil {
			t.Fatalf("Run(version) = %v", err)
		}
		if !strings.Contains(out, "boardmd version") {
			t.Errorf("version output = %q", out)
		}
	})

	t.Run("no command", func(t *testing.T) {
		isolateEnv(t)
		err := Run(ctx, nil)
		if err == nil || !strings.Contains(err.Error(), "no command") {
			t.Errorf("Run() = %v, want no-command error", err)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		isolateEnv(t)
		err := Run(ctx, []string{"bogus"})
		if err == nil || !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("Run(bogus) = %v, want unknown-command error", err)
		}
	})

	t.Run("parse missing file", func(t *testing.T) {
		isolateEnv(t)
		err := Run(ctx, []string{"parse", filepath.Join(t.TempDir(), "absent.md")})
		if err == nil {
			t.Error("expected error for missing input file")
		}
	})

	t.Run("parse markdown to json", func(t *testing.T) {
		isolateEnv(t)
		path := writeTempFile(t, "board.md", sampleMarkdown)
		out, err := captureStdout(t, func() error {
			return Run(ctx, []string{"parse", path})
		})
		if err != nil {
			t.Fatalf("Run(parse) = %v", err)
		}
		for _, want := range []string{`"title": "Sprint Board"`, `"id": "EPIC-001"`, `"id": "LAUNCH-101"`, `"validates card number"`} {
			if !strings.Contains(out, want) {
				t.Errorf("parse output missing %s:\n%s", want, out)
			}
		}
	})

	t.Run("serialize json to markdown", func(t *testing.T) {
		isolateEnv(t)
		path := writeTempFile(t, "board.json", sampleJSON)
		out, err := captureStdout(t, func() error {
			return Run(ctx, []string{"serialize", path})
		})
		if err != nil {
			t.Fatalf("Run(serialize) = %v", err)
		}
		for _, want := range []string{"# Sprint Board", "## Epic: Checkout (EPIC-001)", "### LAUNCH-101: Payment form", "- [x] validates card number"} {
			if !strings.Contains(out, want) {
				t.Errorf("serialize output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("serialize invalid json", func(t *testing.T) {
		isolateEnv(t)
		path := writeTempFile(t, "bad.json", "{broken")
		if err := Run(ctx, []string{"serialize", path}); err == nil {
			t.Error("expected error for invalid board JSON")
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		isolateEnv(t)
		path := writeTempFile(t, "board.md", sampleMarkdown)
		out, err := captureStdout(t, func() error {
			return Run(ctx, []string{"roundtrip", path})
		})
		if err != nil {
			t.Fatalf("Run(roundtrip) = %v", err)
		}
		for _, want := range []string{"=== Original ===", "=== Parsed JSON ===", "=== Serialized ===", "Summary"} {
			if !strings.Contains(out, want) {
				t.Errorf("roundtrip output missing %q", want)
			}
		}
	})

	t.Run("ls", func(t *testing.T) {
		isolateEnv(t)
		path := writeTempFile(t, "board.md", sampleMarkdown)
		out, err := captureStdout(t, func() error {
			return Run(ctx, []string{"ls", path})
		})
		if err != nil {
			t.Fatalf("Run(ls) = %v", err)
		}
		if !strings.Contains(out, "LAUNCH-101") || !strings.Contains(out, "Checkout") {
			t.Errorf("ls output missing card or epic:\n%s", out)
		}
	})

	t.Run("validate against schema", func(t *testing.T) {
		isolateEnv(t)
		path := writeTempFile(t, "board.json", sampleJSON)
		schema := filepath.Join("..", "board.schema.json")
		out, err := captureStdout(t, func() error {
			return Run(ctx, []string{"-schema", schema, "validate", path})
		})
		if err != nil {
			t.Fatalf("Run(validate) = %v", err)
		}
		if !strings.Contains(out, "is valid") {
			t.Errorf("validate output = %q", out)
		}
	})

	t.Run("validate rejects bad board", func(t *testing.T) {
		isolateEnv(t)
		path := writeTempFile(t, "board.json", `{"epics":[{"id":"E1"}]}`)
		_, err := captureStdout(t, func() error {
			return Run(ctx, []string{"validate", path})
		})
		if err == nil {
			t.Error("expected validation failure")
		}
	})
}

func TestSingleFileArg(t *testing.T) {
	if _, err := singleFileArg("parse", nil); err == nil {
		t.Error("expected error with no args")
	}
	if _, err := singleFileArg("parse", []string{"a.md", "b.md"}); err == nil {
		t.Error("expected error with two args")
	}
	path, err := singleFileArg("parse", []string{"a.md"})
	if err != nil || path != "a.md" {
		t.Errorf("singleFileArg = %q, %v", path, err)
	}
}
