package tui

import "testing"

func TestSaturatingArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"add within range", SaturatingAdd(3, 2, 10), 5},
		{"add hits max", SaturatingAdd(9, 2, 10), 10},
		{"add at max", SaturatingAdd(10, 1, 10), 10},
		{"sub within range", SaturatingSub(5, 2, 0), 3},
		{"sub hits min", SaturatingSub(1, 2, 0), 0},
		{"sub at min", SaturatingSub(0, 1, 0), 0},
		{"sub custom min", SaturatingSub(4, 9, 2), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestCursorMovement(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"})

	if c.Pos != 0 {
		t.Fatalf("initial pos = %d", c.Pos)
	}

	c.MoveUp()
	if c.Pos != 0 {
		t.Errorf("MoveUp at top moved to %d", c.Pos)
	}

	c.MoveDown()
	c.MoveDown()
	if c.Pos != 2 {
		t.Errorf("pos = %d, want 2", c.Pos)
	}

	c.MoveDown()
	if c.Pos != 2 {
		t.Errorf("MoveDown at bottom moved to %d", c.Pos)
	}

	c.JumpFirst()
	if c.Pos != 0 {
		t.Errorf("JumpFirst pos = %d", c.Pos)
	}
	c.JumpLast()
	if c.Pos != 2 {
		t.Errorf("JumpLast pos = %d", c.Pos)
	}
}

func TestCursorEmptyList(t *testing.T) {
	c := NewCursor([]string{})

	c.MoveUp()
	c.MoveDown()
	c.JumpFirst()
	c.JumpLast()
	if c.Pos != 0 {
		t.Errorf("pos on empty list = %d, want 0", c.Pos)
	}
	if _, ok := c.Current(); ok {
		t.Error("Current on empty list reported ok")
	}
}

func TestCursorClampAfterShrink(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c", "d"})
	c.JumpLast()

	c.Items = c.Items[:2]
	c.Clamp()
	if c.Pos != 1 {
		t.Errorf("pos = %d, want 1", c.Pos)
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name              string
		pos, total, h     int
		wantStart, wantEnd int
	}{
		{"top of first page", 0, 10, 3, 0, 3},
		{"within first page", 2, 10, 3, 0, 3},
		{"just past first page", 3, 10, 3, 1, 4},
		{"deep in list", 5, 10, 3, 3, 6},
		{"last row", 9, 10, 3, 7, 10},
		{"fewer items than window", 1, 2, 5, 0, 2},
		{"zero height", 4, 10, 0, 0, 0},
		{"empty list", 0, 0, 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleWindow(tt.pos, tt.total, tt.h)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
			// Cursor row must be inside the window when anything is visible
			if end > start && (tt.pos < start || tt.pos >= end) {
				t.Errorf("cursor %d outside window [%d,%d)", tt.pos, start, end)
			}
		})
	}
}

func TestSelectToggle(t *testing.T) {
	items := NewSelects([]string{"a", "b", "c"})

	ToggleAt(items, 1)
	if !items[1].Selected {
		t.Error("toggle did not select")
	}
	if items[0].Selected || items[2].Selected {
		t.Error("toggle leaked to neighbors")
	}

	ToggleAt(items, 1)
	if items[1].Selected {
		t.Error("second toggle did not deselect")
	}

	// Out of range is a no-op
	ToggleAt(items, -1)
	ToggleAt(items, 3)
	for i, s := range items {
		if s.Selected {
			t.Errorf("item %d selected after out-of-range toggles", i)
		}
	}
}

func TestSelectedValues(t *testing.T) {
	items := NewSelects([]string{"a", "b", "c", "d"})
	ToggleAt(items, 3)
	ToggleAt(items, 1)

	got := SelectedValues(items)
	if len(got) != 2 || got[0] != "b" || got[1] != "d" {
		t.Errorf("got %v, want [b d] in list order", got)
	}
}

func TestClampScroll(t *testing.T) {
	if got := ClampScroll(5, 10, 8); got != 0 {
		t.Errorf("content fits: got %d, want 0", got)
	}
	if got := ClampScroll(7, 5, 10); got != 5 {
		t.Errorf("past end: got %d, want 5", got)
	}
	if got := ClampScroll(-2, 5, 10); got != 0 {
		t.Errorf("negative: got %d, want 0", got)
	}
}
