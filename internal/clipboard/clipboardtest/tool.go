// Package clipboardtest provides a fake clipboard utility for tests that
// exercise the real exec path.
package clipboardtest

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// Tool is a shell script standing in for xclip. Each run appends its
// arguments to an args file and copies stdin to a stdin file.
type Tool struct {
	Path string
	dir  string
}

const script = `#!/bin/sh
dir=$(dirname "$0")
printf '%s\n' "$@" > "$dir/args"
cat > "$dir/stdin"
echo run >> "$dir/runs"
echo "noise on stdout"
echo "noise on stderr" >&2
exit %EXIT%
`

// New writes a fake tool into a fresh temp dir. The tool exits with exitCode.
func New(t *testing.T, exitCode int) *Tool {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake clipboard tool needs a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-xclip")
	body := strings.Replace(script, "%EXIT%", strconv.Itoa(exitCode), 1)
	if err := os.WriteFile(path, []byte(body), 0700); err != nil {
		t.Fatalf("failed to write fake tool: %v", err)
	}
	return &Tool{Path: path, dir: dir}
}

// Args returns the arguments of the last run
func (f *Tool) Args(t *testing.T) []string {
	t.Helper()
	data := f.read(t, "args")
	if data == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(data, "\n"), "\n")
}

// Stdin returns what the last run read from standard input
func (f *Tool) Stdin(t *testing.T) string {
	t.Helper()
	return f.read(t, "stdin")
}

// Runs returns how many times the tool was executed
func (f *Tool) Runs(t *testing.T) int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, "runs"))
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("failed to read runs: %v", err)
	}
	return strings.Count(string(data), "run\n")
}

func (f *Tool) read(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		t.Fatalf("fake tool never wrote %s: %v", name, err)
	}
	return string(data)
}
