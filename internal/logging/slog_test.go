package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestSlogLogger_FormatsAndFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden %d", 1)
	logger.Info("round %s done in %d tricks", "r1", 12)
	logger.Error("failed: %v", "boom")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), buf.String())
	}
	if lines[0]["msg"] != "round r1 done in 12 tricks" || lines[0]["level"] != "INFO" {
		t.Errorf("unexpected first line: %v", lines[0])
	}
	if lines[1]["level"] != "ERROR" {
		t.Errorf("unexpected second line: %v", lines[1])
	}
}

func TestSlogLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLogger(&buf, slog.LevelDebug)
	child := base.WithField("round", "r1").WithFields(map[string]interface{}{"seat": 2})

	child.Warn("slow move")

	fields := child.Fields()
	if fields["round"] != "r1" || fields["seat"] != 2 {
		t.Errorf("Fields() = %v", fields)
	}
	if len(base.Fields()) != 0 {
		t.Errorf("parent fields changed: %v", base.Fields())
	}

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["round"] != "r1" || lines[0]["seat"] != float64(2) {
		t.Errorf("fields not written: %v", lines)
	}
}
