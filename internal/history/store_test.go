package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sheaf/internal/config"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StagingDir = filepath.Join(dir, "staging")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.StateDir = filepath.Join(dir, "state")

	store, err := Open(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	started := time.Now().Add(-time.Minute)
	for i, status := range []string{StatusCompleted, StatusFailed, StatusCompleted} {
		run := Run{
			StartedAt:  started.Add(time.Duration(i) * time.Second),
			FinishedAt: started.Add(time.Duration(i)*time.Second + 500*time.Millisecond),
			OutputPath: "/out/merged.pdf",
			Profile:    "ebook",
			Succeeded:  2,
			Skipped:    1,
			Pages:      5,
			Status:     status,
		}
		if status == StatusFailed {
			run.ErrorMessage = "assembly failed: exit status 1"
		}
		if _, err := store.Record(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].ID < runs[1].ID {
		t.Fatal("runs not ordered newest first")
	}
	if runs[1].Status != StatusFailed || runs[1].ErrorMessage == "" {
		t.Fatalf("failed run not preserved: %+v", runs[1])
	}
	if runs[0].Pages != 5 || runs[0].Skipped != 1 {
		t.Fatalf("counts not preserved: %+v", runs[0])
	}
}

func TestRecentLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, Run{
			StartedAt:  time.Now(),
			FinishedAt: time.Now(),
			OutputPath: "/out/a.pdf",
			Profile:    "screen",
			Status:     StatusCompleted,
		}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected limit respected, got %d", len(runs))
	}
}

func TestRecentEmpty(t *testing.T) {
	store := testStore(t)
	runs, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}
