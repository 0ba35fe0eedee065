// Package workarea manages the run-scoped temporary directory that holds
// every intermediate artifact of a merge. The orchestrator owns exactly one
// Area per run and releases it on every exit path.
package workarea

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Area is a run-exclusive working directory under the staging root.
type Area struct {
	runID string
	root  string
}

// New creates a fresh working area under stagingRoot.
func New(stagingRoot string) (*Area, error) {
	runID := uuid.NewString()
	root := filepath.Join(stagingRoot, "run-"+runID)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create working area: %w", err)
	}
	return &Area{runID: runID, root: root}, nil
}

// RunID returns the unique identifier of this run.
func (a *Area) RunID() string { return a.runID }

// Root returns the working area's base directory.
func (a *Area) Root() string { return a.root }

// JobDir creates and returns an isolated subdirectory for one conversion
// job. The sequence index keeps names deterministic and sortable; the uuid
// suffix keeps parallel jobs from ever sharing a path.
func (a *Area) JobDir(index int) (string, error) {
	dir := filepath.Join(a.root, fmt.Sprintf("%03d-%s", index, uuid.NewString()[:8]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create job directory: %w", err)
	}
	return dir, nil
}

// Release deletes the working area and everything inside it. Safe to call
// more than once and on a nil Area.
func (a *Area) Release() error {
	if a == nil || a.root == "" {
		return nil
	}
	if err := os.RemoveAll(a.root); err != nil {
		return fmt.Errorf("release working area: %w", err)
	}
	return nil
}
