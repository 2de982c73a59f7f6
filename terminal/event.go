package terminal

import "os"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey    EventType = iota
	EventSignal           // Subscribed OS signal delivery
	EventError            // Read error
	EventClosed           // Input closed
)

// Event represents one entry in the session's input stream. Key events and
// signal events share this type so the consumer sees a single ordered FIFO;
// ordering across sources is arrival order into the queue, not source.
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	// Signal delivery. For SIGWINCH, Width and Height carry the freshly
	// queried terminal size so render code never works from stale geometry.
	Signal os.Signal
	Width  int
	Height int

	Err error // For EventError
}
