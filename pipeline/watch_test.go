package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcherRequiresLocalCatalog(t *testing.T) {
	_, cfg := testSetup(t)
	cfg.Catalog.Source = "git::https://example.com/icons.git"

	_, err := NewWatcher(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local catalog directory")
}

func TestWatcherTriggersRunOnChange(t *testing.T) {
	b, cfg := testSetup(t, "action")
	b.AddIcon("action", "home", 24)
	cfg.Watch.DebounceMS = 50

	w, err := NewWatcher(cfg, nil)
	require.NoError(t, err)

	runs := make(chan struct{}, 8)
	w.runFn = func(ctx context.Context) *RunResult {
		runs <- struct{}{}
		return &RunResult{State: StateValidated}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Let the watch loop come up before writing
	time.Sleep(100 * time.Millisecond)
	b.AddIcon("action", "settings", 24)

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never triggered a run")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	b, cfg := testSetup(t, "action")
	b.AddIcon("action", "home", 24)
	cfg.Watch.DebounceMS = 200

	w, err := NewWatcher(cfg, nil)
	require.NoError(t, err)

	runs := make(chan struct{}, 8)
	w.runFn = func(ctx context.Context) *RunResult {
		runs <- struct{}{}
		return &RunResult{State: StateValidated}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	time.Sleep(100 * time.Millisecond)
	// A burst of writes inside the quiet period collapses to one run
	b.AddIcon("action", "a", 24)
	b.AddIcon("action", "b", 24)
	b.AddIcon("action", "c", 24)

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never triggered a run")
	}

	select {
	case <-runs:
		t.Fatal("burst triggered more than one run")
	case <-time.After(500 * time.Millisecond):
	}
}
