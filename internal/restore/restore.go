// Package restore overwrites a clipboard selection with a previously captured
// value once a delay has passed.
package restore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pr0digi/jspass-cli/internal/clipboard"
	"github.com/pr0digi/jspass-cli/internal/config"
)

// Restorer performs a single delayed clipboard write
type Restorer struct {
	delay     time.Duration
	selection string
	writer    clipboard.Writer
	logger    *log.Logger

	// newTimer is swapped in tests
	newTimer func(time.Duration) *time.Timer
}

// New creates a restorer from cfg. A nil logger discards output.
func New(cfg *config.Config, w clipboard.Writer, logger *log.Logger) *Restorer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Restorer{
		delay:     cfg.Delay(),
		selection: cfg.XSelection,
		writer:    w,
		logger:    logger,
		newTimer:  time.NewTimer,
	}
}

// Delay returns how long Run waits before writing
func (r *Restorer) Delay() time.Duration {
	return r.delay
}

// Run waits for the delay, then writes payload to the selection exactly once.
// The write error is returned as is; callers treating the restore as
// best-effort may drop it. If ctx ends first nothing is written.
func (r *Restorer) Run(ctx context.Context, payload string) error {
	r.logger.Debug("restore armed", "delay", r.delay, "selection", r.selection)

	timer := r.newTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.logger.Debug("restore cancelled before timer fired")
		return fmt.Errorf("restore cancelled: %w", ctx.Err())
	case <-timer.C:
	}

	if err := r.writer.Write(ctx, r.selection, payload); err != nil {
		r.logger.Error("clipboard restore failed", "selection", r.selection, "err", err)
		return err
	}
	r.logger.Info("clipboard restored", "selection", r.selection)
	return nil
}
