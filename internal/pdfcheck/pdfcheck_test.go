package pdfcheck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVerifyMissingFile(t *testing.T) {
	if err := Verify(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestVerifyRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("just text, no pdf structure"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Verify(path); err == nil {
		t.Fatal("expected validation error for non-PDF content")
	}
}

func TestPageCountRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 truncated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := PageCount(path); err == nil {
		t.Fatal("expected error for truncated PDF")
	}
}
