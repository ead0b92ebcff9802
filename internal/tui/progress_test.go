package tui

import (
	"testing"

	"goldcheck/internal/core"
)

// Compile-time interface checks.
var (
	_ core.ProgressTracker = (*BubbleteaProgressTracker)(nil)
	_ core.ProgressTracker = (*TextProgressTracker)(nil)
	_ core.ProgressTracker = (*NoOpProgressTracker)(nil)
)

func TestTextProgressTracker(t *testing.T) {
	tracker := NewTextProgressTracker(2, "Checking configurations")

	tracker.SetTotal(3)
	if tracker.total != 3 {
		t.Errorf("total = %d, want 3", tracker.total)
	}

	tracker.Increment("server.conf [general] serverName")
	tracker.Increment("")
	tracker.Increment("web.conf [settings] enableSplunkWebSSL")
	if tracker.current != 3 {
		t.Errorf("current = %d, want 3", tracker.current)
	}

	// Complete and Fail only print; they must not panic.
	tracker.Complete()
	tracker.Fail(nil)
}

func TestNoOpProgressTracker(t *testing.T) {
	tracker := NewNoOpProgressTracker()

	// All methods are no-ops and must be safe to call in any order.
	tracker.SetTotal(10)
	tracker.Increment("message")
	tracker.Complete()
	tracker.Fail(nil)
}
