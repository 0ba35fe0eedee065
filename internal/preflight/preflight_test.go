package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"sheaf/internal/deps"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	result := CheckDirectoryAccess("Staging directory", dir)
	if !result.Passed {
		t.Fatalf("expected pass for writable dir: %+v", result)
	}

	result = CheckDirectoryAccess("Staging directory", filepath.Join(dir, "missing"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result = CheckDirectoryAccess("Staging directory", file)
	if result.Passed {
		t.Fatal("expected failure for non-directory")
	}
}

func TestCheckRequirements(t *testing.T) {
	results := CheckRequirements([]deps.Requirement{
		{Name: "Shell", Command: "sh"},
		{Name: "Ghost", Command: "definitely-not-a-binary-xyz"},
	})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Passed || results[1].Passed {
		t.Fatalf("unexpected outcomes: %+v", results)
	}
}

func TestFailures(t *testing.T) {
	failed := Failures([]Result{
		{Name: "a", Passed: true},
		{Name: "b", Passed: false},
		{Name: "c", Passed: false},
	})
	if len(failed) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failed))
	}
	if failed[0].Name != "b" || failed[1].Name != "c" {
		t.Fatalf("unexpected failures: %+v", failed)
	}
}
