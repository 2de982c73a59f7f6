// @focus: #sys { term } #session
package terminal

import (
	"os"
	"sync"
	"syscall"
)

// RenderFunc is the render contract: it consumes the caller's state
// snapshot (closed over) and draws one frame at the given dimensions. The
// session invokes nothing itself; applications call their RenderFunc once
// before the event loop and after every accepted event.
type RenderFunc func(width, height int)

// Session owns one interactive terminal run: raw mode, alternate screen,
// the input reader goroutine, and the signal subscription. All events from
// both producers arrive on a single FIFO consumed with NextEvent.
//
// Close is idempotent and must run even on a panicking path (defer it):
// it stops and joins the reader, unsubscribes signals, and only then
// restores terminal attributes, so no read survives past mode restoration.
type Session struct {
	backend Backend
	output  *outputBuffer
	events  chan Event

	reader      *inputReader
	unsubscribe func()

	mu        sync.Mutex
	closeOnce sync.Once
	closed    bool
}

// backendWriter adapts Backend.Write to io.Writer for the output buffer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewSession acquires the process terminal and starts the input pipeline.
// SIGWINCH is always subscribed; extra signals (e.g. SIGINT for
// out-of-band interrupts) may be added. Fails with ErrNotTerminal when
// stdin is not a terminal device.
func NewSession(extraSigs ...os.Signal) (*Session, error) {
	return newSession(newBackend(), DetectColorMode(), extraSigs...)
}

// NewSessionWith builds a session over an explicit backend. Used by tests
// to script input without a tty.
func NewSessionWith(b Backend, mode ColorMode, extraSigs ...os.Signal) (*Session, error) {
	return newSession(b, mode, extraSigs...)
}

func newSession(b Backend, mode ColorMode, extraSigs ...os.Signal) (*Session, error) {
	if err := b.Init(); err != nil {
		return nil, err
	}

	s := &Session{
		backend: b,
		events:  make(chan Event, 256),
	}
	s.output = newOutputBuffer(backendWriter{b}, mode)

	// Enter alternate screen, hide cursor, disable wrap
	b.Write(csiAltScreenEnter)
	b.Write(csiCursorHide)
	b.Write(csiAutoWrapOff)
	s.output.clear(RGBBlack)

	w, h := b.Size()
	s.output.resize(w, h)

	s.reader = newInputReader(b, s.events)
	s.reader.start()

	sigs := append([]os.Signal{syscall.SIGWINCH}, extraSigs...)
	s.unsubscribe = Subscribe(s.events, sigs...)

	return s, nil
}

// NextEvent blocks until the next event from either producer.
func (s *Session) NextEvent() Event {
	return <-s.events
}

// PostEvent injects a synthetic event without blocking.
func (s *Session) PostEvent(ev Event) {
	select {
	case s.events <- ev:
	default:
		// Queue full, drop
	}
}

// Size returns current terminal dimensions.
func (s *Session) Size() (int, int) {
	return s.backend.Size()
}

// Flush writes a cell buffer to the terminal. Frames whose dimensions no
// longer match the terminal are dropped to prevent resize-race corruption;
// the pending SIGWINCH event triggers a redraw at the right size.
func (s *Session) Flush(cells []Cell, width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	currW, currH := s.backend.Size()
	if currW != width || currH != height {
		return
	}

	s.output.flush(cells, width, height)
}

// Clear fills the screen with a background color.
func (s *Session) Clear(bg RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.output.clear(bg)
}

// Close tears the session down: reader joined first, signals restored,
// screen state unwound, raw mode released last. Idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		// Stop producers before touching terminal state
		s.reader.stop()
		s.unsubscribe()

		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.backend.Write(csiCursorShow)
		s.backend.Write(csiAltScreenExit)
		s.backend.Write(csiAutoWrapOn)
		s.backend.Write(csiSGR0)

		// Restores saved termios attributes
		s.backend.Fini()
	})
}
