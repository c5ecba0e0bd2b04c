//go:build !(freebsd || linux || netbsd || openbsd || solaris || dragonfly)

package clipboard

import "errors"

var errNoUtility = errors.New("clipboard is not supported on this platform")

// Only X11 style platforms have a primary selection
func usePrimary(bool) func() {
	return func() {}
}
