package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkit/terminal"
)

// Text renders a string at (x, y), clipped at the region edge. Wide runes
// advance two columns; the spill column after a wide rune is left blank so
// diffing never paints half a glyph.
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, fg, bg, attr)
			if w == 2 {
				r.Cell(col+1, y, ' ', fg, bg, attr)
			}
		}
		col += w
	}
}

// TextStyled renders a string with a Style
func (r Region) TextStyled(x, y int, s string, style Style) {
	r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextRight renders a string right-aligned on a row
func (r Region) TextRight(y int, s string, style Style) {
	r.TextStyled(r.W-DisplayWidth(s), y, s, style)
}

// TextCenter renders a string centered on a row
func (r Region) TextCenter(y int, s string, style Style) {
	r.TextStyled((r.W-DisplayWidth(s))/2, y, s, style)
}

// HLine draws a horizontal run of ch
func (r Region) HLine(x, y, w int, ch rune, style Style) {
	for i := 0; i < w; i++ {
		r.Cell(x+i, y, ch, style.Fg, style.Bg, style.Attr)
	}
}

// VLine draws a vertical run of ch
func (r Region) VLine(x, y, h int, ch rune, style Style) {
	for i := 0; i < h; i++ {
		r.Cell(x, y+i, ch, style.Fg, style.Bg, style.Attr)
	}
}

// Box draws a single-line border on the region edge
func (r Region) Box(style Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	r.HLine(1, 0, r.W-2, '─', style)
	r.HLine(1, r.H-1, r.W-2, '─', style)
	r.VLine(0, 1, r.H-2, '│', style)
	r.VLine(r.W-1, 1, r.H-2, '│', style)
	r.Cell(0, 0, '┌', style.Fg, style.Bg, style.Attr)
	r.Cell(r.W-1, 0, '┐', style.Fg, style.Bg, style.Attr)
	r.Cell(0, r.H-1, '└', style.Fg, style.Bg, style.Attr)
	r.Cell(r.W-1, r.H-1, '┘', style.Fg, style.Bg, style.Attr)
}

// ScrollBar draws a vertical scroll indicator in the rightmost column:
// ▲/▼ arrows when content extends past either edge, a ■ thumb at the
// proportional position, │ track elsewhere. No-op when everything fits.
func (r Region) ScrollBar(scroll, total int, style Style) {
	if r.H < 1 || total <= r.H {
		return
	}
	x := r.W - 1

	for y := 0; y < r.H; y++ {
		r.Cell(x, y, '│', style.Fg, style.Bg, style.Attr)
	}
	if scroll > 0 {
		r.Cell(x, 0, '▲', style.Fg, style.Bg, style.Attr)
	}
	if scroll+r.H < total {
		r.Cell(x, r.H-1, '▼', style.Fg, style.Bg, style.Attr)
	}

	// Thumb rides the track between the arrow cells
	trackH := r.H - 2
	if trackH < 1 {
		return
	}
	maxScroll := total - r.H
	thumbY := 1
	if maxScroll > 0 {
		thumbY = 1 + scroll*(trackH-1)/maxScroll
	}
	r.Cell(x, thumbY, '■', style.Fg, style.Bg, style.Attr)
}
