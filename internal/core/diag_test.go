package core

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goldcheck/internal/logging"
)

// writeTarGz builds a .tar.gz archive at path from a map of entry name
// to file content.
func writeTarGz(t *testing.T, path string, files map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	for name, content := range files {
		hdr := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("failed to write tar header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write tar content: %v", err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("failed to close tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
}

func TestExtractDiag(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "diag-idx-01.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"diag-idx-01/etc/system/local/server.conf": "[general]\nserverName = idx-01\n",
		"diag-idx-01/etc/system/local/web.conf":    "[settings]\nenableSplunkWebSSL = true\n",
		"diag-idx-01/log/splunkd.log":              "irrelevant\n",
	})

	session, err := ExtractDiag(archive, logging.Discard())
	if err != nil {
		t.Fatalf("ExtractDiag() error: %v", err)
	}
	defer session.Close()

	// Root discovery lands on the directory containing etc/system.
	if filepath.Base(session.Root()) != "diag-idx-01" {
		t.Errorf("Root() = %s, want .../diag-idx-01", session.Root())
	}

	content, err := os.ReadFile(filepath.Join(session.Root(), "etc", "system", "local", "server.conf"))
	if err != nil {
		t.Fatalf("extracted file unreadable: %v", err)
	}
	if !strings.Contains(string(content), "serverName = idx-01") {
		t.Errorf("extracted content mismatch: %q", content)
	}
}

func TestExtractDiagRootFallback(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "flat.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"some/other/layout.txt": "no splunk tree here\n",
	})

	session, err := ExtractDiag(archive, logging.Discard())
	if err != nil {
		t.Fatalf("ExtractDiag() error: %v", err)
	}
	defer session.Close()

	// Without an etc/system directory the extraction root is used.
	if !strings.Contains(session.Root(), "splunk_diag_") {
		t.Errorf("Root() = %s, want the extraction temp dir", session.Root())
	}
}

func TestExtractDiagMissing(t *testing.T) {
	_, err := ExtractDiag(filepath.Join(t.TempDir(), "no_such_diag.tar.gz"), logging.Discard())
	if err == nil {
		t.Fatal("ExtractDiag() on a missing archive should fail")
	}
	if !strings.Contains(err.Error(), "diag file not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExtractDiagCorrupt(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "corrupt.tar.gz")
	if err := os.WriteFile(archive, []byte("this is not a gzip stream"), 0644); err != nil {
		t.Fatalf("failed to write corrupt archive: %v", err)
	}

	_, err := ExtractDiag(archive, logging.Discard())
	if err == nil {
		t.Fatal("ExtractDiag() on a corrupt archive should fail")
	}
	if !strings.Contains(err.Error(), "failed to extract diag file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDiagSessionClose(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "diag.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"diag/etc/system/local/server.conf": "[general]\nserverName = x\n",
	})

	session, err := ExtractDiag(archive, logging.Discard())
	if err != nil {
		t.Fatalf("ExtractDiag() error: %v", err)
	}

	root := session.Root()
	session.Close()
	session.Close() // idempotent

	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("extraction directory still exists after Close: %s", root)
	}
}

func TestDiagBackendResolve(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "diag.tar.gz")
	writeTarGz(t, archive, map[string]string{
		"diag/etc/system/local/server.conf":          "[general]\nserverName = idx-01\n",
		"diag/etc/apps/search/default/server.conf":   "[httpServer]\nmaxSockets = 0\n",
		"diag/etc/system/local/web.conf":             "[settings]\nenableSplunkWebSSL = true\n",
		"diag/etc/system/local/unrelated-server.txt": "not a conf file\n",
	})

	session, err := ExtractDiag(archive, logging.Discard())
	if err != nil {
		t.Fatalf("ExtractDiag() error: %v", err)
	}
	defer session.Close()

	backend := NewDiagBackend(session.Root(), NewOSFileSystem(), logging.Discard())
	got := backend.Resolve(context.Background(), "server", "general")

	if !strings.Contains(got, "serverName = idx-01") {
		t.Errorf("resolved text missing system local content:\n%s", got)
	}
	if !strings.Contains(got, "maxSockets = 0") {
		t.Errorf("resolved text missing app default content:\n%s", got)
	}
	if !strings.Contains(got, "# From: ") {
		t.Errorf("resolved text missing source path prefixes:\n%s", got)
	}
	if strings.Contains(got, "enableSplunkWebSSL") {
		t.Errorf("resolved text leaked another config file:\n%s", got)
	}
}

func TestDiagBackendResolveNoMatches(t *testing.T) {
	backend := NewDiagBackend(t.TempDir(), NewOSFileSystem(), logging.Discard())

	if got := backend.Resolve(context.Background(), "outputs", ""); got != "" {
		t.Errorf("Resolve() = %q, want empty for no matches", got)
	}
}
