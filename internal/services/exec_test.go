package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestCommandExecutorStreamsOutput(t *testing.T) {
	var mu sync.Mutex
	var lines []string

	err := CommandExecutor{}.Run(context.Background(), "/bin/sh",
		[]string{"-c", "echo out; echo err 1>&2"},
		func(line string) {
			mu.Lock()
			defer mu.Unlock()
			lines = append(lines, line)
		})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %v", lines)
	}
}

func TestCommandExecutorExitError(t *testing.T) {
	err := CommandExecutor{}.Run(context.Background(), "/bin/sh", []string{"-c", "exit 3"}, nil)
	if err == nil {
		t.Fatal("expected error for nonzero exit")
	}
	if errors.Is(err, ErrTimeout) {
		t.Fatalf("plain exit failure must not read as a timeout: %v", err)
	}
}

func TestCommandExecutorTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := CommandExecutor{}.Run(ctx, "sleep", []string{"5"}, nil)
	if err == nil {
		t.Fatal("expected error after deadline")
	}
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("command not killed at deadline, ran %s", elapsed)
	}
}
