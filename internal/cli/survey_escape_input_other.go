//go:build !darwin && !linux

package cli

import (
	"os"
	"time"
)

// Without poll(2) a lone escape cannot be told apart from the start of a key
// sequence, so Esc is never treated as back.
func surveyInputHasBufferedSequenceData(_ *os.File, _ time.Duration) bool {
	return true
}
