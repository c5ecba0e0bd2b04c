package restore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pr0digi/jspass-cli/internal/clipboard"
	"github.com/pr0digi/jspass-cli/internal/clipboard/clipboardtest"
	"github.com/pr0digi/jspass-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(seconds float64, selection string) *config.Config {
	cfg := config.Defaults()
	cfg.ClipTime = seconds
	cfg.XSelection = selection
	return cfg
}

func TestRunWaitsForDelay(t *testing.T) {
	const delay = 150 * time.Millisecond
	w := clipboard.NewMockWriter()
	r := New(newConfig(delay.Seconds(), "clipboard"), w, nil)

	start := time.Now()
	require.NoError(t, r.Run(context.Background(), "hunter2"))

	calls := w.Calls()
	require.Len(t, calls, 1)
	assert.GreaterOrEqual(t, calls[0].At.Sub(start), r.Delay())
	assert.Equal(t, "clipboard", calls[0].Selection)
	assert.Equal(t, "hunter2", calls[0].Payload)
}

func TestRunDefaultDelay(t *testing.T) {
	w := clipboard.NewMockWriter()
	r := New(config.Defaults(), w, nil)

	var armed time.Duration
	r.newTimer = func(d time.Duration) *time.Timer {
		armed = d
		return time.NewTimer(0)
	}

	require.NoError(t, r.Run(context.Background(), "x"))
	assert.Equal(t, 45*time.Second, armed)
	assert.Equal(t, 45*time.Second, r.Delay())
	require.Len(t, w.Calls(), 1)
	assert.Equal(t, "clipboard", w.Calls()[0].Selection)
}

func TestRunZeroDelay(t *testing.T) {
	w := clipboard.NewMockWriter()
	r := New(newConfig(0, "primary"), w, nil)

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background(), "") }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run() with zero delay did not return")
	}

	calls := w.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "primary", calls[0].Selection)
	assert.Equal(t, "", calls[0].Payload)
}

func TestRunCancelledBeforeTimerFires(t *testing.T) {
	w := clipboard.NewMockWriter()
	r := New(newConfig(60, "clipboard"), w, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Run(ctx, "hunter2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Empty(t, w.Calls())
}

func TestRunReturnsWriterError(t *testing.T) {
	w := clipboard.NewMockWriter()
	toolErr := &clipboard.ToolError{Tool: "xclip", Kind: clipboard.NotFound, Err: errors.New("missing")}
	w.SetError(toolErr)
	r := New(newConfig(0, "clipboard"), w, nil)

	err := r.Run(context.Background(), "hunter2")
	assert.ErrorIs(t, err, toolErr)
	assert.Len(t, w.Calls(), 1, "a failed write is not retried")
}

func TestRunWithExternalTool(t *testing.T) {
	tool := clipboardtest.New(t, 0)
	r := New(newConfig(0, "clipboard"), clipboard.NewCommand(tool.Path, "-selection"), nil)

	require.NoError(t, r.Run(context.Background(), "hunter2"))

	assert.Equal(t, 1, tool.Runs(t))
	assert.Equal(t, []string{"-selection", "clipboard"}, tool.Args(t))
	assert.Equal(t, "hunter2", tool.Stdin(t))
}
