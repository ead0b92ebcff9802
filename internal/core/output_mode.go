package core

// OutputMode controls how messages are displayed around the report.
type OutputMode int

// OutputMode constants define available output formatting modes.
const (
	OutputNormal OutputMode = iota // Default: styled output
	OutputQuiet                    // Minimal output
	OutputJSON                     // Structured JSON report on stdout
)

// NonInteractiveFlags groups all non-interactive options.
type NonInteractiveFlags struct {
	Yes  bool       // Auto-approve prompts
	Mode OutputMode // Output formatting mode
}

// UICallback abstracts user-facing interaction so the engine never
// talks to a terminal directly. The tui package provides interactive
// and non-interactive implementations.
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	AskConfirmation(title, message string) bool
	GetOutputMode() OutputMode
}

// SilentUICallback discards all output and declines confirmations.
// Used as the default before a real callback is attached, and in tests.
type SilentUICallback struct{}

// ShowError discards the message.
func (s *SilentUICallback) ShowError(_, _ string) {}

// ShowSuccess discards the message.
func (s *SilentUICallback) ShowSuccess(_ string) {}

// ShowWarning discards the message.
func (s *SilentUICallback) ShowWarning(_, _ string) {}

// AskConfirmation declines without prompting.
func (s *SilentUICallback) AskConfirmation(_, _ string) bool { return false }

// GetOutputMode returns the quiet mode.
func (s *SilentUICallback) GetOutputMode() OutputMode { return OutputQuiet }
