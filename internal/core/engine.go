package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"goldcheck/internal/types"
)

// Checker is the main API for a goldcheck session. It wires a golden
// store to exactly one backend, live btool or an extracted diag,
// selected at construction and never mixed within a run.
type Checker struct {
	// RunID tags every log line of this session for correlation.
	RunID string

	golden  GoldenStore
	backend Backend
	session *DiagSession
	log     zerolog.Logger

	// SplunkHome is the installation (or extracted diag) root in use.
	SplunkHome string

	// DiagMode reports whether this session reads from a diag archive.
	DiagMode bool
}

// NewLiveChecker creates a session against a live Splunk installation.
// An empty splunkHome triggers auto-discovery. The installation is
// validated up front; an invalid installation is a fatal error.
func NewLiveChecker(ctx context.Context, goldenPath, splunkHome string, timeout time.Duration, log zerolog.Logger) (*Checker, error) {
	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	if splunkHome == "" {
		home, err := FindSplunkHome()
		if err != nil {
			return nil, err
		}
		splunkHome = home
	}

	backend := NewBtoolBackend(splunkHome, timeout, NewOSFileSystem(), log)
	if err := backend.Validate(ctx); err != nil {
		return nil, err
	}

	log.Debug().Str("splunk_home", splunkHome).Msg("using live splunk installation")

	return &Checker{
		RunID:      runID,
		golden:     NewFileGoldenStore(goldenPath),
		backend:    backend,
		log:        log,
		SplunkHome: splunkHome,
	}, nil
}

// NewDiagChecker creates a session against an extracted diag archive.
// Extraction failures are fatal; the caller must Close the checker to
// release the extraction directory.
func NewDiagChecker(goldenPath, diagPath string, log zerolog.Logger) (*Checker, error) {
	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	session, err := ExtractDiag(diagPath, log)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("root", session.Root()).Msg("using extracted diag")

	return &Checker{
		RunID:      runID,
		golden:     NewFileGoldenStore(goldenPath),
		backend:    NewDiagBackend(session.Root(), NewOSFileSystem(), log),
		session:    session,
		log:        log,
		SplunkHome: session.Root(),
		DiagMode:   true,
	}, nil
}

// Close releases session resources. In diag mode this removes the
// extraction directory; cleanup failures are swallowed. Safe to call
// multiple times and on every exit path.
func (c *Checker) Close() {
	if c.session != nil {
		c.session.Close()
	}
}

// GoldenPath returns the golden document path for this session.
func (c *Checker) GoldenPath() string {
	return c.golden.Path()
}

// LoadExpectations loads and parses the golden document.
func (c *Checker) LoadExpectations() ([]types.Expectation, error) {
	return c.golden.Load()
}

// Run checks the expectations against this session's backend, reporting
// progress through the given tracker.
func (c *Checker) Run(ctx context.Context, expectations []types.Expectation, progress ProgressTracker) []types.CheckResult {
	return NewCheckService(c.backend, progress).Run(ctx, expectations)
}
