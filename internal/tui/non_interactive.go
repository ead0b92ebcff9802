package tui

import (
	"fmt"
	"os"

	"goldcheck/internal/core"
)

// NonInteractiveTUICallback handles non-interactive mode output.
type NonInteractiveTUICallback struct {
	flags core.NonInteractiveFlags
}

// NewNonInteractiveTUICallback creates a new non-interactive callback.
func NewNonInteractiveTUICallback(flags core.NonInteractiveFlags) *NonInteractiveTUICallback {
	return &NonInteractiveTUICallback{flags: flags}
}

// ShowError displays an error message on stderr unless quiet.
func (n *NonInteractiveTUICallback) ShowError(title, message string) {
	if n.flags.Mode != core.OutputQuiet {
		fmt.Fprintf(os.Stderr, "Error: %s - %s\n", title, message)
	}
}

// ShowSuccess displays a success message unless quiet.
func (n *NonInteractiveTUICallback) ShowSuccess(message string) {
	if n.flags.Mode == core.OutputNormal {
		fmt.Println(message)
	}
}

// ShowWarning displays a warning message on stderr unless quiet.
func (n *NonInteractiveTUICallback) ShowWarning(title, message string) {
	if n.flags.Mode != core.OutputQuiet {
		fmt.Fprintf(os.Stderr, "Warning: %s - %s\n", title, message)
	}
}

// AskConfirmation auto-approves with --yes; otherwise fails for safety
// since no prompt is possible.
func (n *NonInteractiveTUICallback) AskConfirmation(title, message string) bool {
	if n.flags.Yes {
		return true
	}
	n.ShowError("Interactive Prompt Required",
		fmt.Sprintf("%s: %s\nUse --yes to auto-approve", title, message))
	return false
}

// GetOutputMode returns the configured output mode.
func (n *NonInteractiveTUICallback) GetOutputMode() core.OutputMode {
	return n.flags.Mode
}
