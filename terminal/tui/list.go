package tui

// ListRow is one renderable list entry. Marker is the selection glyph
// drawn between brackets when HasMark is set ('+' in the selectors); zero
// Indent left-aligns the text.
type ListRow struct {
	Text    string
	Indent  int
	HasMark bool
	Marker  rune
	Style   Style
}

// ListOpts configures list rendering
type ListOpts struct {
	Cursor   Style // Row the cursor sits on
	Default  Style
	ShowBar  bool // Draw a scroll bar in the last column
	BarStyle Style
}

// List renders rows [scroll, scroll+H) with the cursor row restyled,
// returning the number of rows drawn. Callers compute scroll with
// VisibleWindow so the cursor row is always inside the window.
func (r Region) List(rows []ListRow, cursor, scroll int, opts ListOpts) int {
	if r.H < 1 || len(rows) == 0 {
		return 0
	}

	textW := r.W
	if opts.ShowBar {
		textW--
	}

	drawn := 0
	for y := 0; y < r.H; y++ {
		idx := scroll + y
		if idx >= len(rows) {
			break
		}
		row := rows[idx]

		style := row.Style
		if style == (Style{}) {
			style = opts.Default
		}
		if idx == cursor {
			style = opts.Cursor
		}

		for x := 0; x < textW; x++ {
			r.Cell(x, y, ' ', style.Fg, style.Bg, style.Attr)
		}

		x := row.Indent
		if row.HasMark {
			mark := row.Marker
			if mark == 0 {
				mark = ' '
			}
			r.Cell(x, y, '[', style.Fg, style.Bg, style.Attr)
			r.Cell(x+1, y, mark, style.Fg, style.Bg, style.Attr)
			r.Cell(x+2, y, ']', style.Fg, style.Bg, style.Attr)
			x += 4
		}

		text := Truncate(row.Text, textW-x)
		r.TextStyled(x, y, text, style)
		drawn++
	}

	if opts.ShowBar {
		r.ScrollBar(scroll, len(rows), opts.BarStyle)
	}
	return drawn
}

// markerFor is shared by the selector examples
func markerFor(selected bool) (rune, bool) {
	if selected {
		return '+', true
	}
	return ' ', true
}

// SelectRows converts Select values into list rows with [+] markers
func SelectRows[T any](items []Select[T], label func(T) string) []ListRow {
	rows := make([]ListRow, len(items))
	for i, s := range items {
		mark, has := markerFor(s.Selected)
		rows[i] = ListRow{
			Text:    label(s.Value),
			HasMark: has,
			Marker:  mark,
		}
		if s.Selected {
			rows[i].Style = StyleSelected
		}
	}
	return rows
}
