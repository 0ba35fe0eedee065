package assemble

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sheaf/internal/quality"
	"sheaf/internal/services"
)

type fakeToolkit struct {
	inputs  []string
	profile quality.Profile
	err     error
}

func (f *fakeToolkit) Concatenate(_ context.Context, inputs []string, profile quality.Profile, outputPath string) error {
	f.inputs = inputs
	f.profile = profile
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outputPath, []byte("%PDF-1.4 merged"), 0o644)
}

type fakeChecker struct {
	pages     int
	verifyErr error
}

func (f *fakeChecker) Verify(string) error           { return f.verifyErr }
func (f *fakeChecker) PageCount(string) (int, error) { return f.pages, nil }

func writeArtifacts(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return paths
}

func TestMergePreservesOrderAndCountsPages(t *testing.T) {
	inputs := writeArtifacts(t, "000.pdf", "001.pdf", "002.pdf")
	output := filepath.Join(t.TempDir(), "merged.pdf")

	toolkit := &fakeToolkit{}
	assembler := New(toolkit, WithChecker(&fakeChecker{pages: 7}))

	pages, err := assembler.Merge(context.Background(), inputs, quality.Printer, output)
	if err != nil {
		t.Fatal(err)
	}
	if pages != 7 {
		t.Fatalf("expected 7 pages, got %d", pages)
	}
	if toolkit.profile != quality.Printer {
		t.Fatalf("profile not passed through: %s", toolkit.profile)
	}
	for i, input := range inputs {
		if toolkit.inputs[i] != input {
			t.Fatalf("order changed at %d: %q vs %q", i, toolkit.inputs[i], input)
		}
	}
}

func TestMergeEmptyReadyList(t *testing.T) {
	assembler := New(&fakeToolkit{}, WithChecker(&fakeChecker{}))
	_, err := assembler.Merge(context.Background(), nil, quality.Ebook, "out.pdf")
	if err == nil || !errors.Is(err, services.ErrAssembly) {
		t.Fatalf("expected ErrAssembly, got %v", err)
	}
}

func TestMergeMissingArtifact(t *testing.T) {
	assembler := New(&fakeToolkit{}, WithChecker(&fakeChecker{}))
	_, err := assembler.Merge(context.Background(), []string{filepath.Join(t.TempDir(), "gone.pdf")}, quality.Ebook, "out.pdf")
	if err == nil || !errors.Is(err, services.ErrAssembly) {
		t.Fatalf("expected ErrAssembly, got %v", err)
	}
}

func TestMergeToolkitFailure(t *testing.T) {
	inputs := writeArtifacts(t, "a.pdf")
	assembler := New(&fakeToolkit{err: errors.New("exit status 1")}, WithChecker(&fakeChecker{}))
	_, err := assembler.Merge(context.Background(), inputs, quality.Ebook, filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil || !errors.Is(err, services.ErrAssembly) {
		t.Fatalf("expected ErrAssembly, got %v", err)
	}
}

func TestMergeRemovesUnverifiableOutput(t *testing.T) {
	inputs := writeArtifacts(t, "a.pdf")
	output := filepath.Join(t.TempDir(), "out.pdf")
	assembler := New(&fakeToolkit{}, WithChecker(&fakeChecker{verifyErr: errors.New("not a pdf")}))

	_, err := assembler.Merge(context.Background(), inputs, quality.Ebook, output)
	if err == nil || !errors.Is(err, services.ErrAssembly) {
		t.Fatalf("expected ErrAssembly, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatal("unverifiable output must be removed")
	}
}
