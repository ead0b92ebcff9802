package tui

import (
	"fmt"
	"io"
	"strings"

	"goldcheck/internal/core"
	"goldcheck/internal/types"
)

const (
	colConfigFile = 20
	colStanza     = 25
	colSetting    = 30
	colStatus     = 10
)

// statusSymbol maps a check status to its single-character table marker.
func statusSymbol(s types.Status) string {
	switch s {
	case types.StatusOK:
		return "✓"
	case types.StatusMismatch:
		return "✗"
	case types.StatusMissing:
		return "?"
	case types.StatusError:
		return "!"
	default:
		return "-"
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// RenderReport writes the human-readable table report: one section per
// role, a row per expectation, then a status summary.
func RenderReport(w io.Writer, report core.Report) {
	for _, group := range report.Groups {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleTitle(fmt.Sprintf("ROLE: %s", strings.ToUpper(string(group.Role)))))
		fmt.Fprintln(w, strings.Repeat("=", colConfigFile+colStanza+colSetting+colStatus+6))
		fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s\n",
			colConfigFile, "Config File",
			colStanza, "Stanza",
			colSetting, "Setting",
			colStatus, "Status")
		fmt.Fprintln(w, strings.Repeat("-", colConfigFile+colStanza+colSetting+colStatus+6))

		for _, r := range group.Results {
			fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s %s\n",
				colConfigFile, truncate(r.ConfigFile, colConfigFile),
				colStanza, truncate(r.Stanza, colStanza),
				colSetting, truncate(r.Setting, colSetting),
				statusSymbol(r.Status), r.Status)

			switch r.Status {
			case types.StatusMismatch:
				actual := ""
				if r.ActualValue != nil {
					actual = *r.ActualValue
				}
				fmt.Fprintf(w, "    Expected: %s\n", r.ExpectedValue)
				fmt.Fprintf(w, "    Actual:   %s\n", actual)
			case types.StatusMissing:
				fmt.Fprintf(w, "    Expected: %s\n", r.ExpectedValue)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle("SUMMARY"))
	fmt.Fprintln(w, strings.Repeat("=", 30))
	for _, s := range types.AllStatuses {
		fmt.Fprintf(w, "  %s %-10s %d\n", statusSymbol(s), s, report.Summary[s])
	}
	fmt.Fprintf(w, "  Total checks: %d\n", report.Summary.Total())
}
