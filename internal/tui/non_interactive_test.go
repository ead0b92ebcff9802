package tui

import (
	"testing"

	"goldcheck/internal/core"
)

var _ core.UICallback = (*NonInteractiveTUICallback)(nil)

func TestNonInteractiveAskConfirmation(t *testing.T) {
	tests := []struct {
		name  string
		flags core.NonInteractiveFlags
		want  bool
	}{
		{"yes flag auto-approves", core.NonInteractiveFlags{Yes: true}, true},
		{"without yes declines", core.NonInteractiveFlags{}, false},
		{"quiet without yes declines", core.NonInteractiveFlags{Mode: core.OutputQuiet}, false},
		{"quiet with yes approves", core.NonInteractiveFlags{Yes: true, Mode: core.OutputQuiet}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := NewNonInteractiveTUICallback(tt.flags)
			if got := cb.AskConfirmation("Overwrite File?", "report.json already exists"); got != tt.want {
				t.Errorf("AskConfirmation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNonInteractiveGetOutputMode(t *testing.T) {
	cb := NewNonInteractiveTUICallback(core.NonInteractiveFlags{Mode: core.OutputQuiet})
	if cb.GetOutputMode() != core.OutputQuiet {
		t.Errorf("GetOutputMode() = %v, want OutputQuiet", cb.GetOutputMode())
	}
}
