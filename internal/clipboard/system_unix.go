//go:build freebsd || linux || netbsd || openbsd || solaris || dragonfly

package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

var errNoUtility = errors.New("no clipboard utility available, install xsel, xclip, wl-clipboard or Termux:API")

func usePrimary(primary bool) func() {
	prev := atotto.Primary
	atotto.Primary = primary
	return func() { atotto.Primary = prev }
}
