package core

import "errors"

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrInvalidInstallation indicates the Splunk installation could not be validated
	ErrInvalidInstallation = errors.New("invalid splunk installation")

	// ErrSplunkHomeNotFound indicates no Splunk installation could be located
	ErrSplunkHomeNotFound = errors.New("could not find splunk installation; specify --splunk-home")
)

// Error message templates for formatted errors.
// Use with fmt.Errorf() to create errors with context.
const (
	// ErrGoldenNotFoundMsg is the message for a missing golden document
	ErrGoldenNotFoundMsg = "golden document not found: %s"

	// ErrDiagNotFoundMsg is the message for a missing diag archive
	ErrDiagNotFoundMsg = "diag file not found: %s"

	// ErrDiagExtractMsg is the message for a corrupt or unreadable diag archive
	ErrDiagExtractMsg = "failed to extract diag file %s: %w"

	// ErrUnknownRoleMsg is the message for an unrecognized role filter
	ErrUnknownRoleMsg = "unknown role '%s'"
)
