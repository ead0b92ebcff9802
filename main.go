// Package main implements the goldcheck CLI tool for comparing deployed
// Splunk configuration against a golden document.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"goldcheck/cmd"
	"goldcheck/internal/core"
	"goldcheck/internal/logging"
	"goldcheck/internal/tui"
	"goldcheck/internal/types"
	"goldcheck/internal/version"
)

// Version information is managed in internal/version package
// GoReleaser injects version info directly via ldflags

// parseCommonFlags extracts common non-interactive flags from args
// Returns: flags, remainingArgs
func parseCommonFlags(args []string) (core.NonInteractiveFlags, []string) {
	flags := core.NonInteractiveFlags{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--yes", "-y":
			flags.Yes = true
		case "--quiet", "-q":
			flags.Mode = core.OutputQuiet
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}

// checkOptions holds the parsed options of the check and watch commands.
type checkOptions struct {
	configFile   string
	diagFile     string
	splunkHome   string
	role         string
	outputFormat string
	outputFile   string
	dryRun       bool
	verbose      bool
}

// parseCheckOptions parses check/watch flags from the remaining args.
func parseCheckOptions(args []string) (checkOptions, error) {
	var opts checkOptions

	takesValue := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "--config-file":
			opts.configFile, err = takesValue(i, args[i])
			i++
		case "--diag-file":
			opts.diagFile, err = takesValue(i, args[i])
			i++
		case "--splunk-home":
			opts.splunkHome, err = takesValue(i, args[i])
			i++
		case "--role":
			opts.role, err = takesValue(i, args[i])
			i++
		case "--output-format":
			opts.outputFormat, err = takesValue(i, args[i])
			i++
		case "--output":
			opts.outputFile, err = takesValue(i, args[i])
			i++
		case "--dry-run":
			opts.dryRun = true
		case "--verbose", "-v":
			opts.verbose = true
		default:
			err = fmt.Errorf("unknown option: %s", args[i])
		}
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// applyDefaults fills unset options from .goldcheck.yml. Flags win.
func applyDefaults(opts checkOptions, defaults core.Defaults) checkOptions {
	if opts.splunkHome == "" {
		opts.splunkHome = defaults.SplunkHome
	}
	if opts.outputFormat == "" {
		opts.outputFormat = defaults.OutputFormat
	}
	if opts.role == "" {
		opts.role = defaults.Role
	}
	return opts
}

// newChecker builds the session for the selected backend.
func newChecker(ctx context.Context, opts checkOptions, timeout time.Duration) (*core.Checker, error) {
	log := logging.New(opts.verbose)
	if opts.diagFile != "" {
		return core.NewDiagChecker(opts.configFile, opts.diagFile, log)
	}
	return core.NewLiveChecker(ctx, opts.configFile, opts.splunkHome, timeout, log)
}

// selectProgress picks a tracker for the output format and terminal.
func selectProgress(outputFormat string, flags core.NonInteractiveFlags, total int) core.ProgressTracker {
	if outputFormat != "table" || flags.Mode != core.OutputNormal {
		return tui.NewNoOpProgressTracker()
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return tui.NewBubbleteaProgressTracker(total, "Checking configurations")
	}
	return tui.NewTextProgressTracker(total, "Checking configurations")
}

// renderResults writes the report in the requested format. With
// --output the report goes to a file, prompting before overwrite.
func renderResults(results []types.CheckResult, opts checkOptions, callback core.UICallback) error {
	var buf bytes.Buffer

	switch opts.outputFormat {
	case "table":
		tui.RenderReport(&buf, core.BuildReport(results))
	case "json":
		if err := core.WriteJSON(&buf, results); err != nil {
			return err
		}
	case "csv":
		if err := core.WriteCSV(&buf, results); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format '%s' (expected table, json, or csv)", opts.outputFormat)
	}

	if opts.outputFile == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	if _, err := os.Stat(opts.outputFile); err == nil {
		if !callback.AskConfirmation("Overwrite File?", fmt.Sprintf("%s already exists", opts.outputFile)) {
			return fmt.Errorf("aborted: %s already exists", opts.outputFile)
		}
	}

	if err := os.WriteFile(opts.outputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.outputFile, err)
	}
	callback.ShowSuccess("Report written to " + opts.outputFile)
	return nil
}

// runCheck executes one full check pass: load, filter, check, render.
// Dry runs carry no checker; the golden document is read directly.
func runCheck(checker *core.Checker, opts checkOptions, flags core.NonInteractiveFlags, callback core.UICallback) error {
	var expectations []types.Expectation
	var err error
	if checker != nil {
		expectations, err = checker.LoadExpectations()
	} else {
		expectations, err = core.NewFileGoldenStore(opts.configFile).Load()
	}
	if err != nil {
		return err
	}

	if opts.role != "" {
		role, ok := types.ParseRole(opts.role)
		if !ok {
			return fmt.Errorf(core.ErrUnknownRoleMsg, opts.role)
		}
		expectations = core.FilterByRole(expectations, role)
	}

	var results []types.CheckResult
	if opts.dryRun {
		results = core.DryRunResults(expectations)
	} else {
		progress := selectProgress(opts.outputFormat, flags, len(expectations))
		results = checker.Run(context.Background(), expectations, progress)
	}

	return renderResults(results, opts, callback)
}

// setupCheck parses flags, loads defaults, and constructs the checker.
func setupCheck(args []string) (*core.Checker, checkOptions, core.NonInteractiveFlags, core.UICallback, error) {
	flags, rest := parseCommonFlags(args)

	opts, err := parseCheckOptions(rest)
	if err != nil {
		return nil, opts, flags, nil, err
	}
	if opts.configFile == "" {
		return nil, opts, flags, nil, fmt.Errorf("--config-file is required")
	}

	defaults, err := core.NewFileDefaultsStore(".").Load()
	if err != nil {
		return nil, opts, flags, nil, err
	}
	opts = applyDefaults(opts, defaults)
	if opts.outputFormat == "" {
		opts.outputFormat = "table"
	}

	timeout := time.Duration(defaults.TimeoutSeconds) * time.Second

	var callback core.UICallback
	if flags.Yes || flags.Mode != core.OutputNormal || !isatty.IsTerminal(os.Stdout.Fd()) {
		callback = tui.NewNonInteractiveTUICallback(flags)
	} else {
		callback = tui.NewTUICallback()
	}

	var checker *core.Checker
	if !opts.dryRun {
		checker, err = newChecker(context.Background(), opts, timeout)
		if err != nil {
			return nil, opts, flags, callback, err
		}
	}

	return checker, opts, flags, callback, nil
}

// closeOnSignal releases the checker when the process is interrupted,
// so diag extraction directories never outlive the run.
func closeOnSignal(checker *core.Checker) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		if checker != nil {
			checker.Close()
		}
		os.Exit(1)
	}()
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle help flags
	if command == "--help" || command == "-h" || command == "help" {
		tui.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if command == "--version" {
		fmt.Printf("goldcheck %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
		os.Exit(0)
	}

	switch command {
	case "check":
		checker, opts, flags, callback, err := setupCheck(os.Args[2:])
		if err != nil {
			tui.PrintError("Error", err.Error())
			os.Exit(1)
		}
		if checker != nil {
			defer checker.Close()
			closeOnSignal(checker)
		}

		if err := runCheck(checker, opts, flags, callback); err != nil {
			if checker != nil {
				checker.Close()
			}
			tui.PrintError("Check Failed", err.Error())
			os.Exit(1)
		}

	case "watch":
		checker, opts, flags, callback, err := setupCheck(os.Args[2:])
		if err != nil {
			tui.PrintError("Error", err.Error())
			os.Exit(1)
		}
		if opts.dryRun {
			tui.PrintError("Error", "--dry-run cannot be combined with watch")
			os.Exit(1)
		}
		defer checker.Close()
		closeOnSignal(checker)

		// Run once up front, then re-run on every change.
		if err := runCheck(checker, opts, flags, callback); err != nil {
			callback.ShowError("Check Failed", err.Error())
		}

		if err := checker.WatchGolden(callback, func() error {
			return runCheck(checker, opts, flags, callback)
		}); err != nil {
			checker.Close()
			tui.PrintError("Watch Failed", err.Error())
			os.Exit(1)
		}

	case "roles":
		fmt.Println(tui.StyleTitle("Known deployment roles"))
		for _, rm := range types.RoleMarkers {
			fmt.Printf("  %-22s ###BEGIN %s###\n", rm.Role, rm.Marker)
		}

	case "completion":
		if len(os.Args) < 3 {
			tui.PrintError("Usage", "goldcheck completion <bash|zsh|fish|powershell>")
			os.Exit(1)
		}
		shell := strings.ToLower(os.Args[2])
		switch shell {
		case "bash":
			fmt.Print(cmd.GenerateBashCompletion())
		case "zsh":
			fmt.Print(cmd.GenerateZshCompletion())
		case "fish":
			fmt.Print(cmd.GenerateFishCompletion())
		case "powershell":
			fmt.Print(cmd.GeneratePowerShellCompletion())
		default:
			tui.PrintError("Unknown Shell", fmt.Sprintf("unsupported shell '%s' (expected bash, zsh, fish, or powershell)", shell))
			os.Exit(1)
		}

	case "version":
		fmt.Printf("goldcheck %s\n", version.GetFullVersion())

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a goldcheck command", command))
		tui.PrintHelp()
		os.Exit(1)
	}
}
