package terminal

import (
	"bytes"
	"errors"
	"sync"
	"syscall"
	"testing"
	"time"
)

// fakeBackend scripts input chunks and records lifecycle order, letting
// session tests run without a tty.
type fakeBackend struct {
	mu     sync.Mutex
	chunks [][]byte
	wrote  bytes.Buffer
	trace  []string

	initErr error
	finis   int
	stopped bool
}

func (b *fakeBackend) Init() error {
	return b.initErr
}

func (b *fakeBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finis++
	b.trace = append(b.trace, "fini")
}

func (b *fakeBackend) Size() (int, int) {
	return 80, 24
}

func (b *fakeBackend) Write(p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wrote.Write(p)
	return nil
}

func (b *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case <-stopCh:
		b.mu.Lock()
		if !b.stopped {
			b.stopped = true
			b.trace = append(b.trace, "read-stopped")
		}
		b.mu.Unlock()
		return nil, nil
	default:
	}

	b.mu.Lock()
	if len(b.chunks) > 0 {
		chunk := b.chunks[0]
		b.chunks = b.chunks[1:]
		b.mu.Unlock()
		return chunk, nil
	}
	b.mu.Unlock()

	// Poll timeout
	time.Sleep(time.Millisecond)
	return nil, nil
}

func nextEventTimeout(t *testing.T, s *Session, d time.Duration) Event {
	t.Helper()
	done := make(chan Event, 1)
	go func() { done <- s.NextEvent() }()
	select {
	case ev := <-done:
		return ev
	case <-time.After(d):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSessionEventOrder(t *testing.T) {
	b := &fakeBackend{chunks: [][]byte{
		[]byte("ab"),
		[]byte("\x1b[A"),
		[]byte("c"),
	}}
	s, err := NewSessionWith(b, ColorMode256)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := []struct {
		key Key
		r   rune
	}{
		{KeyRune, 'a'},
		{KeyRune, 'b'},
		{KeyUp, 0},
		{KeyRune, 'c'},
	}
	for i, w := range want {
		ev := nextEventTimeout(t, s, time.Second)
		if ev.Type != EventKey || ev.Key != w.key || ev.Rune != w.r {
			t.Fatalf("event %d = %+v, want key=%v rune=%q", i, ev, w.key, w.r)
		}
	}
}

func TestSessionEscapeFlushedAfterLull(t *testing.T) {
	// A standalone ESC press has no continuation bytes; the reader must
	// flush it as KeyEscape once the escape timeout passes.
	b := &fakeBackend{chunks: [][]byte{{0x1b}}}
	s, err := NewSessionWith(b, ColorMode256)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	ev := nextEventTimeout(t, s, time.Second)
	if ev.Type != EventKey || ev.Key != KeyEscape {
		t.Fatalf("got %+v, want KeyEscape", ev)
	}
}

func TestSessionCloseIdempotent(t *testing.T) {
	b := &fakeBackend{}
	s, err := NewSessionWith(b, ColorMode256)
	if err != nil {
		t.Fatal(err)
	}

	s.Close()
	s.Close()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.finis != 1 {
		t.Errorf("Fini called %d times, want 1", b.finis)
	}
}

func TestSessionReaderJoinedBeforeRestore(t *testing.T) {
	b := &fakeBackend{}
	s, err := NewSessionWith(b, ColorMode256)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	b.mu.Lock()
	defer b.mu.Unlock()
	var sawStop bool
	for _, step := range b.trace {
		switch step {
		case "read-stopped":
			sawStop = true
		case "fini":
			if !sawStop {
				t.Fatal("Fini ran before the reader observed stop")
			}
		}
	}
	if !sawStop {
		t.Fatal("reader never observed stop")
	}
}

func TestSessionPostEvent(t *testing.T) {
	b := &fakeBackend{}
	s, err := NewSessionWith(b, ColorMode256)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'z'})
	ev := nextEventTimeout(t, s, time.Second)
	if ev.Key != KeyRune || ev.Rune != 'z' {
		t.Fatalf("got %+v", ev)
	}
}

func TestSessionInitError(t *testing.T) {
	wantErr := errors.New("nope")
	b := &fakeBackend{initErr: wantErr}
	if _, err := NewSessionWith(b, ColorMode256); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestSessionSignalDelivery(t *testing.T) {
	b := &fakeBackend{}
	s, err := NewSessionWith(b, ColorMode256, syscall.SIGUSR1)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		done := make(chan Event, 1)
		go func() { done <- s.NextEvent() }()
		select {
		case ev := <-done:
			if ev.Type == EventSignal && ev.Signal == syscall.SIGUSR1 {
				return
			}
		case <-deadline:
			t.Fatal("signal event never arrived")
		}
	}
}

func TestSessionResizeCarriesDimensions(t *testing.T) {
	// A resize delivered while the consumer blocks in NextEvent must arrive
	// as a signal event carrying usable dimensions, never zero geometry.
	b := &fakeBackend{}
	s, err := NewSessionWith(b, ColorMode256)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGWINCH); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		done := make(chan Event, 1)
		go func() { done <- s.NextEvent() }()
		select {
		case ev := <-done:
			if ev.Type == EventSignal && ev.Signal == syscall.SIGWINCH {
				if ev.Width <= 0 || ev.Height <= 0 {
					t.Fatalf("resize event carries %dx%d", ev.Width, ev.Height)
				}
				return
			}
		case <-deadline:
			t.Fatal("resize event never arrived")
		}
	}
}

func TestSessionFlushDropsStaleFrames(t *testing.T) {
	b := &fakeBackend{}
	s, err := NewSessionWith(b, ColorMode256)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	b.mu.Lock()
	before := b.wrote.Len()
	b.mu.Unlock()

	// Backend reports 80x24; a 10x5 frame is stale and must not render
	cells := make([]Cell, 10*5)
	s.Flush(cells, 10, 5)

	b.mu.Lock()
	after := b.wrote.Len()
	b.mu.Unlock()
	if after != before {
		t.Errorf("stale frame wrote %d bytes", after-before)
	}
}
