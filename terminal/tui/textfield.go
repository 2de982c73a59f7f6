package tui

import (
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkit/terminal"
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextField is single-line edit state. Cursor is a rune index in [0,
// len(Text)]: the gap position, not a character. Scroll is also a rune
// index; display-column math happens only in View.
type TextField struct {
	Text   []rune
	Cursor int
	Scroll int
}

// NewTextField creates a field with the cursor after the initial text
func NewTextField(initial string) *TextField {
	runes := []rune(initial)
	return &TextField{Text: runes, Cursor: len(runes)}
}

// Value returns the current text
func (t *TextField) Value() string {
	return string(t.Text)
}

// SetValue replaces the text and moves the cursor to the end
func (t *TextField) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
	t.Scroll = 0
}

// Reset empties the field
func (t *TextField) Reset() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
}

// Insert places a rune at the cursor
func (t *TextField) Insert(r rune) {
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
}

// DeleteBackward removes the rune before the cursor
func (t *TextField) DeleteBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
	t.Cursor--
	return true
}

// DeleteForward removes the rune under the cursor
func (t *TextField) DeleteForward() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
	return true
}

// DeleteWordBackward removes the word ending at the cursor, plus any
// separators between it and the cursor. Always consumes at least one rune.
func (t *TextField) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	start := t.Cursor
	for start > 0 && !isWordRune(t.Text[start-1]) {
		start--
	}
	for start > 0 && isWordRune(t.Text[start-1]) {
		start--
	}
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToStart removes everything before the cursor
func (t *TextField) DeleteToStart() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = append([]rune(nil), t.Text[t.Cursor:]...)
	t.Cursor = 0
	t.Scroll = 0
	return true
}

// DeleteToEnd removes everything from the cursor on
func (t *TextField) DeleteToEnd() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = t.Text[:t.Cursor]
	return true
}

// MoveLeft moves the cursor one rune left
func (t *TextField) MoveLeft() {
	t.Cursor = SaturatingSub(t.Cursor, 1, 0)
}

// MoveRight moves the cursor one rune right
func (t *TextField) MoveRight() {
	t.Cursor = SaturatingAdd(t.Cursor, 1, len(t.Text))
}

// MoveWordLeft jumps to the start of the previous word
func (t *TextField) MoveWordLeft() {
	for t.Cursor > 0 && !isWordRune(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
	for t.Cursor > 0 && isWordRune(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
}

// MoveWordRight jumps past the end of the current word
func (t *TextField) MoveWordRight() {
	for t.Cursor < len(t.Text) && isWordRune(t.Text[t.Cursor]) {
		t.Cursor++
	}
	for t.Cursor < len(t.Text) && !isWordRune(t.Text[t.Cursor]) {
		t.Cursor++
	}
}

// MoveToStart moves the cursor to column zero
func (t *TextField) MoveToStart() {
	t.Cursor = 0
}

// MoveToEnd moves the cursor past the last rune
func (t *TextField) MoveToEnd() {
	t.Cursor = len(t.Text)
}

// View returns the rune window to render within width display columns and
// the cursor's column offset inside it. Wide runes count double, so the
// window holds fewer runes when CJK text scrolls through.
func (t *TextField) View(width int) (visible []rune, cursorCol int) {
	if width <= 0 {
		return nil, 0
	}

	// Keep cursor inside [Scroll, Scroll+width) in rune terms first
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+width {
		t.Scroll = t.Cursor - width + 1
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}

	cols := 0
	for i := t.Scroll; i < len(t.Text); i++ {
		w := runewidth.RuneWidth(t.Text[i])
		if cols+w > width {
			break
		}
		if i == t.Cursor {
			cursorCol = cols
		}
		visible = append(visible, t.Text[i])
		cols += w
	}
	if t.Cursor >= t.Scroll+len(visible) {
		cursorCol = cols
		if cursorCol >= width {
			cursorCol = width - 1
		}
	}
	return visible, cursorCol
}

// HandleKey applies one key event, reporting whether state changed
func (t *TextField) HandleKey(key terminal.Key, r rune, mod terminal.Modifier) bool {
	switch key {
	case terminal.KeyLeft:
		if mod&terminal.ModCtrl != 0 {
			t.MoveWordLeft()
		} else {
			t.MoveLeft()
		}
		return true
	case terminal.KeyRight:
		if mod&terminal.ModCtrl != 0 {
			t.MoveWordRight()
		} else {
			t.MoveRight()
		}
		return true
	case terminal.KeyHome, terminal.KeyCtrlA:
		t.MoveToStart()
		return true
	case terminal.KeyEnd, terminal.KeyCtrlE:
		t.MoveToEnd()
		return true
	case terminal.KeyBackspace:
		if mod&terminal.ModCtrl != 0 {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case terminal.KeyDelete:
		return t.DeleteForward()
	case terminal.KeyCtrlU:
		return t.DeleteToStart()
	case terminal.KeyCtrlK:
		return t.DeleteToEnd()
	case terminal.KeyCtrlW:
		return t.DeleteWordBackward()
	case terminal.KeyRune:
		if r >= 32 {
			t.Insert(r)
			return true
		}
	}
	return false
}
