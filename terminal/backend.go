package terminal

import "errors"

// ErrNotTerminal reports that the target stream is not a terminal device.
// Fatal to a session; there is no retry.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Backend abstracts platform-specific terminal operations so the session
// and input pipeline can run against a scripted implementation in tests.
type Backend interface {
	// Init acquires exclusive raw-mode control of the terminal. The saved
	// attributes are held until Fini.
	Init() error

	// Fini restores the saved terminal attributes. Safe to call multiple
	// times; restoration happens exactly once.
	Fini()

	// Size returns current terminal dimensions.
	Size() (width, height int)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed, or
	// an error occurs. A nil slice with nil error means a poll timeout or
	// stop; the caller rechecks the stop channel.
	Read(stopCh <-chan struct{}) ([]byte, error)
}
