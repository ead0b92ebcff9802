package tui

import (
	"goldcheck/internal/core"

	"github.com/charmbracelet/huh"
)

// TUICallback implements core.UICallback for interactive terminal use
// with styled output.
//
//nolint:revive // Name TUICallback is intentional and descriptive
type TUICallback struct{}

// NewTUICallback creates a new interactive terminal UI callback.
func NewTUICallback() *TUICallback {
	return &TUICallback{}
}

// ShowError displays an error message with styled output.
func (t *TUICallback) ShowError(title, message string) {
	PrintError(title, message)
}

// ShowSuccess displays a success message with styled output.
func (t *TUICallback) ShowSuccess(message string) {
	PrintSuccess(message)
}

// ShowWarning displays a warning message with styled output.
func (t *TUICallback) ShowWarning(title, message string) {
	PrintWarning(title, message)
}

// AskConfirmation prompts the user for yes/no confirmation.
func (t *TUICallback) AskConfirmation(title, message string) bool {
	var confirm bool
	err := huh.NewConfirm().
		Title(title).
		Description(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()
	if err != nil {
		return false
	}
	return confirm
}

// GetOutputMode returns the output mode (normal for interactive TUI).
func (t *TUICallback) GetOutputMode() core.OutputMode {
	return core.OutputNormal
}
