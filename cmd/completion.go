// Package cmd provides CLI utilities for goldcheck
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in goldcheck
var commands = []string{
	"check",
	"watch",
	"roles",
	"completion",
	"version",
	"help",
}

// checkFlags are the options shared by check and watch.
const checkFlags = "--config-file --diag-file --splunk-home --role --output-format --output --dry-run --verbose -v --yes -y --quiet -q"

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for goldcheck
_goldcheck_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${prev}" in
        check|watch)
            opts="%s"
            ;;
        --output-format)
            opts="table json csv"
            ;;
        completion)
            opts="bash zsh fish powershell"
            ;;
        roles|version)
            opts=""
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _goldcheck_completions goldcheck
`, strings.Join(commands, " "), checkFlags)
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		desc := getCommandDescription(cmd)
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, desc)
	}

	return fmt.Sprintf(`#compdef goldcheck

_goldcheck() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                check|watch)
                    _arguments \
                        '--config-file[Golden document path]:file:_files' \
                        '--diag-file[Diag archive (.tar.gz)]:file:_files' \
                        '--splunk-home[Splunk installation directory]:dir:_files -/' \
                        '--role[Only check one role]:role:(search-head indexer cluster-manager shc-deployer http-event-collector)' \
                        '--output-format[Report format]:format:(table json csv)' \
                        '--output[Write report to file]:file:_files' \
                        '--dry-run[Parse only, skip checks]' \
                        '--verbose[Debug logging]' \
                        '-v[Debug logging]' \
                        '--yes[Auto-approve prompts]' \
                        '-y[Auto-approve prompts]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish powershell)'
                    ;;
            esac
            ;;
    esac
}

_goldcheck "$@"
`, strings.Join(cmdList, "\n"))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	// Add command completions
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		completions = append(completions, fmt.Sprintf("complete -c goldcheck -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, desc))
	}

	// Add flag completions
	completions = append(completions, "# check/watch command flags")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l config-file -d 'Golden document path' -r")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l diag-file -d 'Diag archive (.tar.gz)' -r")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l splunk-home -d 'Splunk installation directory' -r")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l role -d 'Only check one role' -r -f -a 'search-head indexer cluster-manager shc-deployer http-event-collector'")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l output-format -d 'Report format' -r -f -a 'table json csv'")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l output -d 'Write report to file' -r")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l dry-run -d 'Parse only, skip checks'")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l verbose -s v -d 'Debug logging'")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l yes -s y -d 'Auto-approve prompts'")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from check watch' -l quiet -s q -d 'Minimal output'")

	completions = append(completions, "# completion command shells")
	completions = append(completions, "complete -c goldcheck -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish powershell'")

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	cmdArray := make([]string, len(commands))
	for i, cmd := range commands {
		cmdArray[i] = fmt.Sprintf("'%s'", cmd)
	}

	return fmt.Sprintf(`# PowerShell completion for goldcheck
Register-ArgumentCompleter -Native -CommandName goldcheck -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        # Complete command
        $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
    elseif ($tokens.Count -gt 2) {
        $subcommand = $tokens[1]

        switch ($subcommand) {
            { $_ -in 'check','watch' } {
                @('--config-file', '--diag-file', '--splunk-home', '--role', '--output-format', '--output', '--dry-run', '--verbose', '-v', '--yes', '-y', '--quiet', '-q') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'completion' {
                @('bash', 'zsh', 'fish', 'powershell') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
        }
    }
}
`, strings.Join(cmdArray, ", "))
}

// getCommandDescription returns a short description for a command
func getCommandDescription(cmd string) string {
	descriptions := map[string]string{
		"check":      "Run configuration checks",
		"watch":      "Re-run checks on golden document changes",
		"roles":      "List known deployment roles",
		"completion": "Generate shell completion script",
		"version":    "Show version information",
		"help":       "Show help information",
	}

	if desc, ok := descriptions[cmd]; ok {
		return desc
	}
	return ""
}
