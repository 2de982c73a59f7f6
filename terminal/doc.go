// @focus: #sys { term }
// Package terminal provides raw terminal input and direct ANSI output.
//
// Features:
//   - Scoped raw-mode acquisition with guaranteed restoration
//   - Incremental escape-sequence decoding into discriminated key events
//   - OS signals (SIGWINCH, SIGINT) delivered through the same event queue
//     as key input, in arrival order
//   - Double-buffered cell output with diffing and coalesced SGR emission
//   - True color (24-bit) with 256-color palette fallback
//
// A Session owns one interactive run: it enters raw mode and the alternate
// screen, runs a reader goroutine that feeds the decoder, and multiplexes
// decoded keys and subscribed signals into a single FIFO consumed with
// NextEvent. Close stops the reader, unsubscribes signals, and restores the
// terminal; it is safe to call from a defer around a panicking body.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
