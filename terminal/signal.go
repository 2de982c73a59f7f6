//go:build unix

// @focus: #sys { signal }
package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// Subscribe converts deliveries of the given OS signals into events on the
// shared queue. The handler body does only a non-blocking enqueue; all state
// mutation stays on the consumer side. The returned function unsubscribes
// and restores the previous signal disposition, then joins the forwarding
// goroutine.
//
// SIGWINCH events carry the freshly queried terminal size so a consumer
// blocked in NextEvent always renders against current geometry.
func Subscribe(sink chan<- Event, sigs ...os.Signal) (unsubscribe func()) {
	sigCh := make(chan os.Signal, 1)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	signal.Notify(sigCh, sigs...)

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case sig := <-sigCh:
				ev := Event{Type: EventSignal, Signal: sig}
				if sig == syscall.SIGWINCH {
					ev.Width, ev.Height = getTerminalSize(int(os.Stdout.Fd()))
				}
				select {
				case sink <- ev:
				default:
					// Queue full, drop; a resize will requery size anyway
				}
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(stopCh)
		<-doneCh
	}
}
