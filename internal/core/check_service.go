package core

import (
	"context"
	"fmt"
	"strings"

	"goldcheck/internal/types"
)

// ConfFileSuffix is the configuration-file suffix stripped to obtain a
// backend lookup key ("server.conf" -> "server").
const ConfFileSuffix = ".conf"

// ProgressTracker receives per-check progress during a check pass.
// Implementations live in the tui package (bubbletea, plain text, no-op).
type ProgressTracker interface {
	SetTotal(total int)
	Increment(message string)
	Complete()
	Fail(err error)
}

// CheckService runs expectations against a backend and assigns statuses.
type CheckService struct {
	backend  Backend
	progress ProgressTracker
}

// NewCheckService creates a CheckService. progress may not be nil; pass
// a no-op tracker for quiet modes.
func NewCheckService(backend Backend, progress ProgressTracker) *CheckService {
	return &CheckService{backend: backend, progress: progress}
}

// Run checks every expectation in order and returns one result per
// input, order preserved. Each expectation is checked independently:
//   - empty backend text -> StatusError, no actual value;
//   - setting absent from the stanza -> StatusMissing;
//   - otherwise the value comparator decides StatusOK or StatusMismatch.
//
// Backend failures never abort the pass; they surface as statuses.
func (s *CheckService) Run(ctx context.Context, expectations []types.Expectation) []types.CheckResult {
	results := make([]types.CheckResult, 0, len(expectations))
	s.progress.SetTotal(len(expectations))

	for _, exp := range expectations {
		result := types.NewCheckResult(exp)

		configBase := strings.TrimSuffix(exp.ConfigFile, ConfFileSuffix)
		raw := s.backend.Resolve(ctx, configBase, exp.Stanza)

		switch {
		case raw == "":
			result.Status = types.StatusError
		default:
			actual := ExtractSetting(raw, exp.Stanza, exp.Setting)
			switch {
			case actual == nil:
				result.Status = types.StatusMissing
			case ValuesEqual(*actual, exp.ExpectedValue):
				result.ActualValue = actual
				result.Status = types.StatusOK
			default:
				result.ActualValue = actual
				result.Status = types.StatusMismatch
			}
		}

		s.progress.Increment(fmt.Sprintf("%s [%s] %s", exp.ConfigFile, exp.Stanza, exp.Setting))
		results = append(results, result)
	}

	s.progress.Complete()
	return results
}

// DryRunResults materializes results without consulting any backend:
// every expectation maps to an unchecked result at StatusUnknown.
func DryRunResults(expectations []types.Expectation) []types.CheckResult {
	results := make([]types.CheckResult, 0, len(expectations))
	for _, exp := range expectations {
		results = append(results, types.NewCheckResult(exp))
	}
	return results
}

// FilterByRole returns the expectations tagged with the given role,
// preserving order.
func FilterByRole(expectations []types.Expectation, role types.Role) []types.Expectation {
	var filtered []types.Expectation
	for _, exp := range expectations {
		if exp.Role == role {
			filtered = append(filtered, exp)
		}
	}
	return filtered
}
