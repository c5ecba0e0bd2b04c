package clipboard

import (
	"context"
	"sync"

	atotto "github.com/atotto/clipboard"
)

// atotto keeps its selection in a package variable
var systemMu sync.Mutex

// System writes through github.com/atotto/clipboard, which picks xclip, xsel,
// wl-copy, pbcopy or the Windows API on its own.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) Write(ctx context.Context, selection, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if atotto.Unsupported {
		return &ToolError{Tool: "system", Kind: NotFound, Err: errNoUtility}
	}

	systemMu.Lock()
	defer systemMu.Unlock()

	restore := usePrimary(selection == "primary")
	defer restore()

	if err := atotto.WriteAll(payload); err != nil {
		return &ToolError{Tool: "system", Kind: ExitNonZero, Err: err}
	}
	return nil
}
