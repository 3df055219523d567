// Package testutil provides common test helpers for the shu project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempFileWithContent creates a file with the given name and content inside a
// fresh temporary directory and returns its full path. The directory is
// automatically cleaned up when the test finishes.
func TempFileWithContent(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("TempFileWithContent: write failed: %v", err)
	}
	return path
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}
	return path
}

// TempTree creates a directory structure from the given layout and returns the
// root path. Keys are slash-separated relative paths; entries ending in "/"
// become directories, everything else becomes a file with the value as content.
func TempTree(t *testing.T, layout map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range layout {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("TempTree: mkdir failed: %v", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("TempTree: mkdir failed: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0600); err != nil {
			t.Fatalf("TempTree: write failed: %v", err)
		}
	}
	return root
}

// ReadFile reads the file at path, failing the test on error.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return data
}

// SetupTestConfig creates a temporary config.toml with tree excludes and a
// concat label default pre-configured. Returns the config file path.
func SetupTestConfig(t *testing.T) string {
	t.Helper()

	content := `version = 1

[chunk]
dest_dir = ""

[tree]
exclude = [".git", "node_modules"]
max_depth = 0

[concat]
label = false
`
	return TempConfigFile(t, content)
}
