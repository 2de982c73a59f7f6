// @focus: #sys { io } #input { decode }
package terminal

// maxCSIScan bounds lookahead inside a CSI sequence. A prefix that has not
// terminated within this many bytes is not a key this decoder knows; it is
// flushed as literal input rather than held forever.
const maxCSIScan = 16

// Decoder incrementally converts raw terminal bytes into key events.
//
// Feed never blocks: it consumes as many complete sequences as the pending
// buffer allows and keeps an incomplete tail for the next call. A multi-byte
// escape sequence collapses to exactly one event. Flush resolves a tail that
// will not complete (standalone ESC, or an unmatched prefix) into literal
// events instead of discarding it.
type Decoder struct {
	// Persistent buffer for stream assembly, sized to survive partial
	// UTF-8 and escape sequences split across reads
	buf []byte
}

// Feed appends raw bytes and returns all events decodable so far.
func (d *Decoder) Feed(data []byte) []Event {
	d.buf = append(d.buf, data...)

	var events []Event
	consumed := d.parse(d.buf, &events)

	if consumed > 0 {
		if consumed >= len(d.buf) {
			d.buf = d.buf[:0]
		} else {
			copy(d.buf, d.buf[consumed:])
			d.buf = d.buf[:len(d.buf)-consumed]
		}
	}
	return events
}

// Pending reports whether an incomplete sequence is buffered.
func (d *Decoder) Pending() bool {
	return len(d.buf) > 0
}

// Flush resolves the pending tail after an input lull. A lone ESC becomes
// KeyEscape; any other unmatched prefix is emitted as literal events so no
// byte is silently discarded.
func (d *Decoder) Flush() []Event {
	if len(d.buf) == 0 {
		return nil
	}

	var events []Event
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		events = append(events, Event{Type: EventKey, Key: KeyEscape})
		d.buf = d.buf[:0]
		return events
	}

	// Force literal interpretation: emit the leading ESC, then reparse the
	// remainder as ordinary input.
	rest := d.buf
	if rest[0] == 0x1b {
		events = append(events, Event{Type: EventKey, Key: KeyEscape})
		rest = rest[1:]
	}
	d.buf = d.buf[:0]
	if len(rest) > 0 {
		events = append(events, d.Feed(rest)...)
		// A tail can remain only for a split UTF-8 rune. Flush runs after
		// an input lull, so the continuation bytes are not coming; resolve
		// the fragment as a replacement character instead of holding it.
		if len(d.buf) > 0 {
			events = append(events, Event{Type: EventKey, Key: KeyRune, Rune: 0xFFFD})
			d.buf = d.buf[:0]
		}
	}
	return events
}

// parse decodes as much of data as possible into events and returns the
// number of bytes consumed (stops on an incomplete sequence).
func (d *Decoder) parse(data []byte, events *[]Event) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			*events = append(*events, Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			if i+1 >= n {
				return i // Wait for more data
			}

			consumed, evs := d.parseEscape(data[i:])
			if consumed == 0 {
				return i // Incomplete sequence, wait for more data
			}
			*events = append(*events, evs...)
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			*events = append(*events, Event{Type: EventKey, Key: ctrlKeys[b]})
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			*events = append(*events, Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			// Invalid start byte, skip
			i++
			continue
		}
		if i+seqLen > n {
			return i // Incomplete UTF-8, wait for more data
		}

		rn, size := decodeRune(data[i:])
		*events = append(*events, Event{Type: EventKey, Key: KeyRune, Rune: rn})
		i += size
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func (d *Decoder) parseEscape(data []byte) (int, []Event) {
	if len(data) < 2 {
		return 0, nil
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, []Event{{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}}
	}

	if data[1] == '[' {
		return d.parseCSI(data)
	}
	if data[1] == 'O' {
		return d.parseSS3(data)
	}

	// Alt+Control character (ESC + 0x00-0x1F)
	if data[1] < 0x20 {
		return 2, []Event{{Type: EventKey, Key: ctrlKeys[data[1]], Modifiers: ModAlt}}
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return 2, []Event{{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}}
	}

	// ESC followed by a byte that cannot continue a sequence (DEL or a
	// UTF-8 start): flush the ESC literally, let the next byte reparse.
	return 1, []Event{{Type: EventKey, Key: KeyEscape}}
}

// parseCSI parses a CSI sequence without allocation
func (d *Decoder) parseCSI(data []byte) (int, []Event) {
	if len(data) < 3 {
		return 0, nil
	}

	end := 2
	maxScan := len(data)
	if maxScan > maxCSIScan {
		maxScan = maxCSIScan
	}

	terminated := false
	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			terminated = true
			break
		}
		if b < 0x20 || b > 0x7e {
			// Garbage inside the sequence: flush prefix as literals
			return d.flushLiteral(data[:end+1])
		}
		end++
	}

	if !terminated {
		if len(data) > maxCSIScan {
			// Bounded lookahead exceeded, cannot be a known sequence
			return d.flushLiteral(data[:maxScan])
		}
		return 0, nil // Incomplete, wait for more data
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return end, []Event{{Type: EventKey, Key: key, Modifiers: mod}}
	}

	// Well-formed but unknown CSI: surface as unsupported, not dropped
	return end, []Event{{Type: EventKey, Key: KeyUnsupported}}
}

// parseSS3 parses an SS3 sequence, consuming unknown ones as unsupported
func (d *Decoder) parseSS3(data []byte) (int, []Event) {
	if len(data) < 3 {
		return 0, nil
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, []Event{{Type: EventKey, Key: key, Modifiers: mod}}
	}
	return 3, []Event{{Type: EventKey, Key: KeyUnsupported}}
}

// flushLiteral converts an unmatched escape prefix into literal events:
// the ESC itself, then each remaining byte as ordinary input. A trailing
// ESC is left unconsumed so it can start a fresh sequence, and an
// incomplete UTF-8 tail is likewise left for the caller so it can join
// its continuation bytes instead of vanishing.
func (d *Decoder) flushLiteral(prefix []byte) (int, []Event) {
	if prefix[len(prefix)-1] == 0x1b {
		prefix = prefix[:len(prefix)-1]
	}
	events := []Event{{Type: EventKey, Key: KeyEscape}}
	var sub Decoder
	events = append(events, sub.Feed(prefix[1:])...)
	return len(prefix) - len(sub.buf), events
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0 // Invalid
}

// decodeRune decodes the first UTF-8 rune from data
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size = 2
		min = 0x80
		r = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		size = 3
		min = 0x800
		r = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		size = 4
		min = 0x10000
		r = rune(b & 0x07)
	default:
		return 0xFFFD, 1
	}

	if len(data) < size {
		return 0xFFFD, 1
	}

	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}

	if r < min {
		return 0xFFFD, 1 // Overlong encoding
	}

	return r, size
}
