package core

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DiagSession owns the temporary directory a diag archive was extracted
// into. It is acquired once at session start and released exactly once
// via Close, on success and failure paths alike.
type DiagSession struct {
	archivePath string
	tempDir     string
	root        string
	log         zerolog.Logger
}

// ExtractDiag extracts a .tar.gz diag archive into a temporary directory
// and locates the Splunk configuration root inside it. A missing or
// corrupt archive is a fatal error; the temp directory is removed before
// returning one.
func ExtractDiag(archivePath string, log zerolog.Logger) (*DiagSession, error) {
	if _, err := os.Stat(archivePath); err != nil {
		return nil, fmt.Errorf(ErrDiagNotFoundMsg, archivePath)
	}

	tempDir, err := os.MkdirTemp("", "splunk_diag_")
	if err != nil {
		return nil, fmt.Errorf(ErrDiagExtractMsg, archivePath, err)
	}

	log.Debug().Str("dir", tempDir).Msg("extracting diag file")

	if err := untarGz(archivePath, tempDir); err != nil {
		_ = os.RemoveAll(tempDir) //nolint:errcheck
		return nil, fmt.Errorf(ErrDiagExtractMsg, archivePath, err)
	}

	s := &DiagSession{
		archivePath: archivePath,
		tempDir:     tempDir,
		log:         log,
	}
	s.root = s.findConfigRoot()

	return s, nil
}

// Root returns the effective Splunk configuration root inside the
// extracted tree.
func (s *DiagSession) Root() string {
	return s.root
}

// Close removes the extracted temporary directory. Cleanup failures are
// swallowed; Close is safe to call more than once.
func (s *DiagSession) Close() {
	if s.tempDir == "" {
		return
	}
	_ = os.RemoveAll(s.tempDir) //nolint:errcheck
	s.tempDir = ""
}

// findConfigRoot walks the extracted tree for the first directory that
// contains etc/system, which marks a Splunk configuration layout. Falls
// back to the extraction root when no such directory exists.
func (s *DiagSession) findConfigRoot() string {
	root := s.tempDir

	_ = filepath.WalkDir(s.tempDir, func(path string, d fs.DirEntry, err error) error { //nolint:errcheck
		if err != nil || !d.IsDir() {
			return nil
		}
		if info, statErr := os.Stat(filepath.Join(path, "etc", "system")); statErr == nil && info.IsDir() {
			root = path
			return filepath.SkipAll
		}
		return nil
	})

	return root
}

// untarGz extracts a gzip-compressed tar archive into dst. Entries that
// would escape dst are rejected.
func untarGz(archivePath, dst string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }() //nolint:errcheck

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer func() { _ = gz.Close() }() //nolint:errcheck

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.Clean(hdr.Name))
		if !strings.HasPrefix(target, filepath.Clean(dst)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes extraction root: %s", hdr.Name)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil { //nolint:gosec // diag archives are operator-supplied
				_ = out.Close() //nolint:errcheck
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		default:
			// Symlinks and special files are not part of a diag's
			// configuration payload; skip them.
		}
	}
}

// DiagBackend resolves configuration from an extracted diag tree by
// concatenating every matching .conf file found anywhere under the root.
type DiagBackend struct {
	root string
	fs   FileSystem
	log  zerolog.Logger
}

// NewDiagBackend creates a backend reading from an extracted diag root.
func NewDiagBackend(root string, fs FileSystem, log zerolog.Logger) *DiagBackend {
	return &DiagBackend{root: root, fs: fs, log: log}
}

// Resolve concatenates the contents of every <configBase>.conf under the
// diag root, each prefixed with its source path and followed by a blank
// separator line. The stanza argument is unused: diag files are whole
// .conf documents and the stanza parser narrows afterwards.
func (d *DiagBackend) Resolve(_ context.Context, configBase, _ string) string {
	paths, err := d.fs.FindFiles(d.root, configBase+ConfFileSuffix)
	if err != nil {
		d.log.Warn().Str("config_file", configBase).Err(err).Msg("diag tree walk failed")
		return ""
	}

	var parts []string
	for _, path := range paths {
		content, err := d.fs.ReadFile(path)
		if err != nil {
			d.log.Warn().Str("path", path).Err(err).Msg("could not read conf file")
			continue
		}
		parts = append(parts, "# From: "+path, string(content), "")
	}

	return strings.Join(parts, "\n")
}
