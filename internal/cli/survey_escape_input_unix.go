//go:build darwin || linux

package cli

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// surveyInputHasBufferedSequenceData reports whether more input arrives on
// file within timeout.
func surveyInputHasBufferedSequenceData(file *os.File, timeout time.Duration) bool {
	if file == nil {
		return false
	}

	fds := []unix.PollFd{{
		Fd:     int32(file.Fd()),
		Events: unix.POLLIN,
	}}

	ready, err := unix.Poll(fds, max(int(timeout/time.Millisecond), 0))
	if err != nil || ready <= 0 {
		return false
	}

	return fds[0].Revents&unix.POLLIN != 0
}
