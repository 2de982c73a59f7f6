package tui

import (
	"testing"

	"github.com/lixenwraith/termkit/terminal"
)

func TestTextFieldInsertDelete(t *testing.T) {
	f := NewTextField("")

	for _, r := range "hello" {
		f.Insert(r)
	}
	if f.Value() != "hello" || f.Cursor != 5 {
		t.Fatalf("value=%q cursor=%d", f.Value(), f.Cursor)
	}

	if !f.DeleteBackward() || f.Value() != "hell" {
		t.Errorf("value = %q", f.Value())
	}

	f.MoveToStart()
	if f.DeleteBackward() {
		t.Error("DeleteBackward at start reported change")
	}
	if !f.DeleteForward() || f.Value() != "ell" {
		t.Errorf("value = %q", f.Value())
	}

	f.MoveToEnd()
	if f.DeleteForward() {
		t.Error("DeleteForward at end reported change")
	}
}

func TestTextFieldInsertMiddle(t *testing.T) {
	f := NewTextField("ac")
	f.MoveLeft()
	f.Insert('b')
	if f.Value() != "abc" {
		t.Errorf("value = %q, want abc", f.Value())
	}
	if f.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", f.Cursor)
	}
}

func TestTextFieldWordOps(t *testing.T) {
	f := NewTextField("one two three")

	f.MoveWordLeft()
	if f.Cursor != 8 {
		t.Errorf("cursor = %d, want 8 (start of three)", f.Cursor)
	}
	f.MoveWordLeft()
	if f.Cursor != 4 {
		t.Errorf("cursor = %d, want 4 (start of two)", f.Cursor)
	}
	f.MoveWordRight()
	if f.Cursor != 8 {
		t.Errorf("cursor = %d, want 8", f.Cursor)
	}

	f.MoveToEnd()
	if !f.DeleteWordBackward() || f.Value() != "one two " {
		t.Errorf("value = %q, want %q", f.Value(), "one two ")
	}
	if !f.DeleteWordBackward() || f.Value() != "one " {
		t.Errorf("value = %q, want %q", f.Value(), "one ")
	}
}

func TestTextFieldLineOps(t *testing.T) {
	f := NewTextField("hello world")

	f.Cursor = 6
	if !f.DeleteToStart() || f.Value() != "world" || f.Cursor != 0 {
		t.Errorf("value=%q cursor=%d", f.Value(), f.Cursor)
	}

	f.Cursor = 3
	if !f.DeleteToEnd() || f.Value() != "wor" {
		t.Errorf("value = %q", f.Value())
	}

	if f.DeleteToEnd() {
		t.Error("DeleteToEnd at end reported change")
	}
}

func TestTextFieldHandleKey(t *testing.T) {
	f := NewTextField("")

	keys := []struct {
		key terminal.Key
		r   rune
		mod terminal.Modifier
	}{
		{terminal.KeyRune, 'a', 0},
		{terminal.KeyRune, 'b', 0},
		{terminal.KeyRune, ' ', 0},
		{terminal.KeyRune, 'c', 0},
		{terminal.KeyBackspace, 0, 0},
		{terminal.KeyCtrlW, 0, 0},
	}
	for _, k := range keys {
		f.HandleKey(k.key, k.r, k.mod)
	}
	if f.Value() != "ab " {
		t.Errorf("value = %q, want %q", f.Value(), "ab ")
	}

	if f.HandleKey(terminal.KeyCtrlU, 0, 0) != true || f.Value() != "" {
		t.Errorf("value = %q after Ctrl+U", f.Value())
	}

	// Ctrl+word navigation
	f.SetValue("foo bar")
	f.HandleKey(terminal.KeyLeft, 0, terminal.ModCtrl)
	if f.Cursor != 4 {
		t.Errorf("cursor = %d, want 4", f.Cursor)
	}

	// Control runes are not inserted
	if f.HandleKey(terminal.KeyRune, 0x07, 0) {
		t.Error("control rune reported as handled")
	}
}

func TestTextFieldView(t *testing.T) {
	f := NewTextField("abcdefghij")

	// Cursor sits past the last rune, so the window shows the final four
	// runes and leaves the fifth column for the cursor itself
	visible, col := f.View(5)
	if string(visible) != "ghij" {
		t.Errorf("visible = %q", string(visible))
	}
	if col != 4 {
		t.Errorf("cursor col = %d, want 4", col)
	}

	f.MoveToStart()
	visible, col = f.View(5)
	if string(visible) != "abcde" || col != 0 {
		t.Errorf("visible=%q col=%d", string(visible), col)
	}
}

func TestTextFieldViewWideRunes(t *testing.T) {
	f := NewTextField("日本語")
	f.MoveToStart()

	// Each rune is two columns; only two fit in five
	visible, col := f.View(5)
	if string(visible) != "日本" {
		t.Errorf("visible = %q", string(visible))
	}
	if col != 0 {
		t.Errorf("col = %d", col)
	}
}
