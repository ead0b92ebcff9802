package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Default bounds for btool invocations.
const (
	// DefaultBtoolTimeout bounds a single btool list invocation.
	DefaultBtoolTimeout = 30 * time.Second

	// btoolProbeTimeout bounds the installation-validation probe.
	btoolProbeTimeout = 10 * time.Second
)

// splunkHomeCandidates lists common installation paths checked when
// SPLUNK_HOME is not set.
var splunkHomeCandidates = []string{
	"/opt/splunk",
	"/Applications/Splunk",
	"/usr/local/splunk",
}

// FindSplunkHome locates a Splunk installation: the SPLUNK_HOME
// environment variable first, then common installation paths, then
// ~/splunk. A path qualifies when it contains bin/splunk.
func FindSplunkHome() (string, error) {
	if home := os.Getenv("SPLUNK_HOME"); home != "" {
		return home, nil
	}

	candidates := splunkHomeCandidates
	if userHome, err := os.UserHomeDir(); err == nil {
		candidates = append(append([]string{}, candidates...), filepath.Join(userHome, "splunk"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(filepath.Join(path, "bin", "splunk")); err == nil {
			return path, nil
		}
	}

	return "", ErrSplunkHomeNotFound
}

// BtoolBackend resolves configuration through the live btool utility,
// falling back to direct .conf reads when btool is denied access.
type BtoolBackend struct {
	splunkHome string
	binPath    string
	timeout    time.Duration
	fs         FileSystem
	log        zerolog.Logger
}

// NewBtoolBackend creates a live backend rooted at splunkHome. A zero
// timeout selects DefaultBtoolTimeout.
func NewBtoolBackend(splunkHome string, timeout time.Duration, fs FileSystem, log zerolog.Logger) *BtoolBackend {
	if timeout <= 0 {
		timeout = DefaultBtoolTimeout
	}
	return &BtoolBackend{
		splunkHome: splunkHome,
		binPath:    filepath.Join(splunkHome, "bin", "splunk"),
		timeout:    timeout,
		fs:         fs,
		log:        log,
	}
}

// SplunkHome returns the installation root this backend reads from.
func (b *BtoolBackend) SplunkHome() string {
	return b.splunkHome
}

// Validate checks that the Splunk installation is usable: the splunk
// binary must exist and be executable. A failing btool probe is only a
// warning; per-check invocations report their own failures.
func (b *BtoolBackend) Validate(ctx context.Context) error {
	info, err := b.fs.Stat(b.binPath)
	if err != nil {
		return fmt.Errorf("%w: splunk binary not found at %s", ErrInvalidInstallation, b.binPath)
	}
	if info.Mode().Perm()&0111 == 0 {
		return fmt.Errorf("%w: splunk binary at %s is not executable", ErrInvalidInstallation, b.binPath)
	}

	probeCtx, cancel := context.WithTimeout(ctx, btoolProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, b.binPath, "btool", "server", "list", "--help")
	if err := cmd.Run(); err != nil {
		b.log.Warn().Err(err).Msg("could not verify btool functionality; continuing")
	}

	return nil
}

// Resolve runs `splunk btool <configBase> list [stanza]` under the
// configured deadline. Timeouts, nonzero exits, and missing binaries
// degrade to empty text; a permission failure in the diagnostic stream
// triggers the direct-read fallback.
func (b *BtoolBackend) Resolve(ctx context.Context, configBase, stanza string) string {
	args := []string{"btool", configBase, "list"}
	if stanza != "" {
		args = append(args, stanza)
	}

	runCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, b.binPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		b.log.Warn().Str("config_file", configBase).Msg("btool command timed out")
		return ""
	}

	if err != nil {
		diag := stderr.String()
		if strings.Contains(diag, "Permission denied") || strings.Contains(diag, "cannot access") {
			b.log.Warn().Str("config_file", configBase).
				Msg("permission denied accessing splunk; reading conf files directly")
			return b.readConfDirect(configBase)
		}

		b.log.Warn().Str("config_file", configBase).Str("stderr", strings.TrimSpace(diag)).
			Err(err).Msg("btool command failed")
		return ""
	}

	return strings.TrimSpace(stdout.String())
}

// readConfDirect reads <configBase>.conf from the installation's
// system local/default directories and every app's local/default
// directory, concatenating readable matches prefixed with their source
// path. Used when btool itself is denied access.
func (b *BtoolBackend) readConfDirect(configBase string) string {
	name := configBase + ConfFileSuffix
	patterns := []string{
		filepath.Join(b.splunkHome, "etc", "system", "local", name),
		filepath.Join(b.splunkHome, "etc", "system", "default", name),
		filepath.Join(b.splunkHome, "etc", "apps", "*", "local", name),
		filepath.Join(b.splunkHome, "etc", "apps", "*", "default", name),
	}

	var parts []string
	for _, pattern := range patterns {
		matches, err := b.fs.Glob(pattern)
		if err != nil {
			continue
		}
		for _, path := range matches {
			content, err := b.fs.ReadFile(path)
			if err != nil {
				b.log.Warn().Str("path", path).Err(err).Msg("could not read conf file")
				continue
			}
			parts = append(parts, "# From: "+path, string(content))
		}
	}

	return strings.Join(parts, "\n")
}
