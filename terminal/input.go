// @focus: #sys { io } #input { reader }
package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

// escapeTimeout is how long a pending escape prefix may sit unfinished
// before it is flushed as literal input (distinguishes a standalone ESC
// press from the start of a sequence).
const escapeTimeout = 50 * time.Millisecond

// inputReader runs the producer goroutine: raw bytes from the backend are
// fed to the decoder and resulting events pushed onto the shared queue.
type inputReader struct {
	backend Backend
	events  chan<- Event
	decoder Decoder

	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	running bool
}

// newInputReader creates a reader pushing onto the given queue
func newInputReader(backend Backend, events chan<- Event) *inputReader {
	return &inputReader{
		backend: backend,
		events:  events,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop and joins it. The reader observes the
// stop flag within one poll interval; the timeout guards against a backend
// stuck in a blocking read.
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
		// Reader stuck on blocking read, proceed anyway
	}
}

// readLoop is the main input reading goroutine
func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	// Panic recovery for raw input reader
	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var pendingSince time.Time

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Poll timeout, EOF, or stop
			if r.decoder.Pending() {
				if pendingSince.IsZero() {
					pendingSince = time.Now()
				} else if time.Since(pendingSince) >= escapeTimeout {
					for _, ev := range r.decoder.Flush() {
						r.sendEvent(ev)
					}
					pendingSince = time.Time{}
				}
			}
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		for _, ev := range r.decoder.Feed(data) {
			r.sendEvent(ev)
		}
		if r.decoder.Pending() {
			pendingSince = time.Now()
		} else {
			pendingSince = time.Time{}
		}
	}
}

// sendEvent pushes an event onto the shared queue without blocking
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.events <- ev:
	default:
		// Queue full, drop event (256 buffer, interactive input never
		// sustains that rate)
	}
}
