package cli

import (
	"os"
	"time"
)

const (
	escapeByte    = byte(0x1b)
	interruptByte = byte(0x03)

	// escapeSequenceWait is how long to wait for the rest of an arrow or
	// function key sequence after a trailing escape byte.
	escapeSequenceWait = 25 * time.Millisecond
)

// surveyEscBackInput wraps the terminal so that a lone Esc ends the current
// prompt the way Ctrl+C does, while remembering that it was Esc. Survey reports
// both as an interrupt; the wizard uses ConsumeBackPressed to go back a step
// instead of quitting.
type surveyEscBackInput struct {
	file        *os.File
	backPressed bool
}

func newSurveyEscBackInput(file *os.File) *surveyEscBackInput {
	return &surveyEscBackInput{file: file}
}

func (i *surveyEscBackInput) Read(p []byte) (int, error) {
	n, err := i.file.Read(p)
	if n <= 0 {
		return n, err
	}

	// Only a trailing escape can be a lone keypress; anything followed by
	// more bytes in the same read is part of a sequence.
	last := n - 1
	if p[last] == escapeByte && !surveyInputHasBufferedSequenceData(i.file, escapeSequenceWait) {
		p[last] = interruptByte
		i.backPressed = true
	}

	return n, err
}

// Fd lets survey put the underlying terminal into raw mode.
func (i *surveyEscBackInput) Fd() uintptr {
	return i.file.Fd()
}

// ConsumeBackPressed reports whether Esc ended the last prompt and resets the
// marker.
func (i *surveyEscBackInput) ConsumeBackPressed() bool {
	pressed := i.backPressed
	i.backPressed = false

	return pressed
}
