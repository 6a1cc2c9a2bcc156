package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// AssertNoFile checks that a file does not exist.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("File %s exists but should not", path)
	}
}

// WithStdio replaces os.Stdin with a file holding input and os.Stdout with
// a temp file for the duration of fn, and returns what fn wrote to stdout.
func WithStdio(t *testing.T, input string, fn func()) string {
	t.Helper()

	dir := t.TempDir()
	inPath := CreateFile(t, dir, "stdin", input)
	stdin, err := os.Open(inPath)
	if err != nil {
		t.Fatalf("Failed to open fake stdin: %v", err)
	}
	defer func() { _ = stdin.Close() }()

	outPath := filepath.Join(dir, "stdout")
	stdout, err := os.Create(outPath)
	if err != nil {
		t.Fatalf("Failed to create fake stdout: %v", err)
	}
	defer func() { _ = stdout.Close() }()

	origIn, origOut := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = stdin, stdout
	defer func() { os.Stdin, os.Stdout = origIn, origOut }()

	fn()

	return ReadFile(t, outPath)
}
