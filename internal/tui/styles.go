// Package tui provides terminal presentation for goldcheck: styled
// print helpers, UI callbacks, progress trackers, and the table report.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays an informational message to the terminal.
func PrintInfo(msg string) { fmt.Println(styleDim.Render(msg)) }

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// PrintHelp displays usage information for goldcheck commands.
func PrintHelp() {
	fmt.Println(styleTitle.Render("goldcheck"))
	fmt.Println("Compare deployed Splunk configuration against a golden document, grouped by role")
	fmt.Println("\nCommands:")
	fmt.Println("  check [options]     Run the configuration checks")
	fmt.Println("    --config-file <path>    Golden document with expected values (required)")
	fmt.Println("    --diag-file <path>      Check an extracted diag archive (.tar.gz) instead of a live instance")
	fmt.Println("    --splunk-home <path>    Splunk installation directory (default: auto-detect)")
	fmt.Println("    --role <name>           Only check expectations for one role")
	fmt.Println("    --output-format <fmt>   table (default), json, or csv")
	fmt.Println("    --output <file>         Write the report to a file instead of stdout")
	fmt.Println("    --dry-run               Parse the golden document but skip the checks")
	fmt.Println("    --verbose, -v           Debug logging, including backend diagnostics")
	fmt.Println("    --yes, -y               Auto-approve prompts (e.g. output file overwrite)")
	fmt.Println("    --quiet, -q             Suppress non-report output")
	fmt.Println("  watch [options]     Re-run checks whenever the golden document changes")
	fmt.Println("                      (same options as check)")
	fmt.Println("  roles               List known deployment roles and their document markers")
	fmt.Println("  completion <shell>  Generate shell completion script (bash/zsh/fish/powershell)")
	fmt.Println("  version             Show version information")
	fmt.Println("\nExamples:")
	fmt.Println("  goldcheck check --config-file golden_config.txt")
	fmt.Println("  goldcheck check --config-file golden_config.txt --role search-head")
	fmt.Println("  goldcheck check --config-file golden_config.txt --diag-file diag.tar.gz")
	fmt.Println("  goldcheck check --config-file golden_config.txt --output-format json")
	fmt.Println("  goldcheck check --config-file golden_config.txt --dry-run")
	fmt.Println("  goldcheck watch --config-file golden_config.txt")
	fmt.Println("  goldcheck completion bash > /etc/bash_completion.d/goldcheck")
}
