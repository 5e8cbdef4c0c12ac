// Package testutil holds helpers shared by the package tests: corpus fixtures
// and assertions on the files a run leaves behind.
package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// CreateTestFile creates a test file with content, making parent directories.
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteCorpus writes lines as a newline-terminated corpus file in a fresh
// temp directory and returns its path.
func WriteCorpus(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "corpus.txt")
	CreateTestFile(t, path, []byte(joinLines(lines)))
	return path
}

// WriteGzipCorpus is WriteCorpus with gzip compression.
func WriteGzipCorpus(t *testing.T, lines ...string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := io.WriteString(zw, joinLines(lines)); err != nil {
		t.Fatalf("Failed to compress corpus: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to compress corpus: %v", err)
	}

	path := filepath.Join(t.TempDir(), "corpus.txt.gz")
	CreateTestFile(t, path, buf.Bytes())
	return path
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// ReadLines returns the lines of a file without their terminators.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	s := strings.TrimSuffix(string(content), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !bytes.Equal(actual, expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// AssertEmptyFile checks that a file exists and has no content.
func AssertEmptyFile(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file %s: %v", path, err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected %s to be empty, has %d bytes", path, info.Size())
	}
}
