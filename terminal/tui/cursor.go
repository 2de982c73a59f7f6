package tui

// Cursor tracks a position within an ordered item list. All mutators
// saturate against [0, len-1]; every operation is a no-op on an empty list.
type Cursor[T any] struct {
	Items []T
	Pos   int
}

// NewCursor creates a cursor at the first item
func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{Items: items}
}

// MoveUp moves the cursor up one item
func (c *Cursor[T]) MoveUp() {
	c.Pos = SaturatingSub(c.Pos, 1, 0)
}

// MoveDown moves the cursor down one item
func (c *Cursor[T]) MoveDown() {
	c.Pos = SaturatingAdd(c.Pos, 1, len(c.Items)-1)
	if c.Pos < 0 {
		c.Pos = 0 // Empty list
	}
}

// JumpFirst moves the cursor to the first item
func (c *Cursor[T]) JumpFirst() {
	c.Pos = 0
}

// JumpLast moves the cursor to the last item
func (c *Cursor[T]) JumpLast() {
	c.Pos = ClampCursor(len(c.Items)-1, len(c.Items))
}

// Clamp re-establishes the position invariant after Items changes shape
func (c *Cursor[T]) Clamp() {
	c.Pos = ClampCursor(c.Pos, len(c.Items))
}

// Current returns the item under the cursor, false when the list is empty
func (c *Cursor[T]) Current() (T, bool) {
	if len(c.Items) == 0 {
		var zero T
		return zero, false
	}
	return c.Items[c.Pos], true
}

// Select wraps an item for multi-selection. Toggling flips the flag with
// no other side effect.
type Select[T any] struct {
	Value    T
	Selected bool
}

// Toggle flips the selected flag
func (s *Select[T]) Toggle() {
	s.Selected = !s.Selected
}

// NewSelects wraps items into unselected Select values
func NewSelects[T any](items []T) []Select[T] {
	out := make([]Select[T], len(items))
	for i, it := range items {
		out[i] = Select[T]{Value: it}
	}
	return out
}

// ToggleAt flips selection for the item at pos only; out-of-range is a no-op
func ToggleAt[T any](items []Select[T], pos int) {
	if pos < 0 || pos >= len(items) {
		return
	}
	items[pos].Toggle()
}

// SelectedValues collects the values marked selected, in list order
func SelectedValues[T any](items []Select[T]) []T {
	var out []T
	for _, s := range items {
		if s.Selected {
			out = append(out, s.Value)
		}
	}
	return out
}

// VisibleWindow computes the half-open row range [start, end) shown for a
// cursor position: the window stays at the top until the cursor walks past
// the first page, then trails so the cursor row is the last visible row.
func VisibleWindow(pos, total, height int) (start, end int) {
	if height <= 0 || total <= 0 {
		return 0, 0
	}
	if pos >= height {
		start = pos - height + 1
	}
	end = start + height
	if end > total {
		end = total
	}
	return start, end
}
