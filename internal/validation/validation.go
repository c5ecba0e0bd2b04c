package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// BackendCommand writes through an external clipboard utility such as xclip
	BackendCommand = "command"
	// BackendSystem writes through whatever utility atotto/clipboard detects
	BackendSystem = "system"
)

// maxClipTimeSeconds is the largest delay that still fits in a time.Duration
var maxClipTimeSeconds = float64(math.MaxInt64) / float64(time.Second)

// ParseClipTime parses a delay in seconds. Fractional values are accepted and
// negative values mean "now", so they come back as 0.
func ParseClipTime(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("clip time cannot be empty")
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("clip time %q is not a number: %w", raw, err)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("clip time %q is not a finite number", raw)
	}
	if seconds < 0 {
		return 0, nil
	}
	if seconds > maxClipTimeSeconds {
		return 0, fmt.Errorf("clip time %v exceeds maximum of %.0f seconds", seconds, maxClipTimeSeconds)
	}
	return seconds, nil
}

// ValidateBackend checks the clipboard backend name
func ValidateBackend(backend string) error {
	switch backend {
	case BackendCommand, BackendSystem:
		return nil
	case "":
		return fmt.Errorf("backend cannot be empty")
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", backend, BackendCommand, BackendSystem)
	}
}

// ValidateTool checks the external clipboard utility name
func ValidateTool(tool string) error {
	if strings.TrimSpace(tool) == "" {
		return fmt.Errorf("clipboard tool cannot be empty")
	}
	return nil
}
