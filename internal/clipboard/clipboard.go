// Package clipboard writes text to a clipboard selection, either through an
// external utility such as xclip or through atotto/clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/pr0digi/jspass-cli/internal/validation"
)

// Writer overwrites the contents of a clipboard selection
type Writer interface {
	Write(ctx context.Context, selection, payload string) error
}

var (
	_ Writer = (*Command)(nil)
	_ Writer = (*System)(nil)
	_ Writer = (*MockWriter)(nil)
)

// FailureKind classifies why an external clipboard utility did not succeed
type FailureKind int

const (
	NotFound FailureKind = iota
	StartFailed
	ExitNonZero
)

func (k FailureKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case StartFailed:
		return "failed to start"
	case ExitNonZero:
		return "exited non-zero"
	default:
		return "unknown failure"
	}
}

// ToolError reports a failed clipboard utility invocation
type ToolError struct {
	Tool string
	Kind FailureKind
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("clipboard tool %s %s: %v", e.Tool, e.Kind, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Command runs Tool with the selection argument and feeds the payload on stdin.
// Output streams of the tool are discarded.
type Command struct {
	Tool          string
	SelectionFlag string
}

// NewCommand returns a Command writer for tool, e.g. NewCommand("xclip", "-selection")
func NewCommand(tool, selectionFlag string) *Command {
	return &Command{Tool: tool, SelectionFlag: selectionFlag}
}

// Args returns the arguments passed to the tool for selection
func (c *Command) Args(selection string) []string {
	if c.SelectionFlag == "" {
		return []string{selection}
	}
	return []string{c.SelectionFlag, selection}
}

// Write blocks until the tool exits. There is no timeout: a tool that never
// exits keeps Write waiting until ctx is cancelled.
func (c *Command) Write(ctx context.Context, selection, payload string) error {
	cmd := exec.CommandContext(ctx, c.Tool, c.Args(selection)...)
	cmd.Stdin = strings.NewReader(payload)

	if err := cmd.Start(); err != nil {
		kind := StartFailed
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			kind = NotFound
		}
		return &ToolError{Tool: c.Tool, Kind: kind, Err: err}
	}
	if err := cmd.Wait(); err != nil {
		return &ToolError{Tool: c.Tool, Kind: ExitNonZero, Err: err}
	}
	return nil
}

// NewWriter returns the Writer for backend
func NewWriter(backend, tool, selectionFlag string) (Writer, error) {
	if err := validation.ValidateBackend(backend); err != nil {
		return nil, err
	}
	if backend == validation.BackendSystem {
		return NewSystem(), nil
	}
	if err := validation.ValidateTool(tool); err != nil {
		return nil, err
	}
	return NewCommand(tool, selectionFlag), nil
}
