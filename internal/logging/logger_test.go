package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("merge complete", Args(String(FieldFile, "a.pdf"), Int("pages", 3))...)

	out := buf.String()
	for _, fragment := range []string{"INFO", "merge complete", "file=a.pdf", "pages=3"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q, got %q", fragment, out)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("classified", Args(String(FieldCategory, "image"))...)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "classified" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record[FieldCategory] != "image" {
		t.Fatalf("unexpected category: %v", record[FieldCategory])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info record should have been filtered: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.With(slog.Group("tool", slog.String("name", "gs"))).Info("detected")

	if !strings.Contains(buf.String(), "tool.name=gs") {
		t.Fatalf("expected grouped attr, got %q", buf.String())
	}
}
