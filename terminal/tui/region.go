package tui

import "github.com/lixenwraith/termkit/terminal"

// Region is a clipped rectangular view into a shared cell buffer. All
// drawing coordinates are relative to the region origin; writes outside
// the bounds are discarded, never wrapped.
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Stride of the underlying buffer
	X, Y   int // Absolute origin within the buffer
	W, H   int
}

// NewRegion creates a region over a cell slice
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{Cells: cells, TotalW: totalW, X: x, Y: y, W: w, H: h}
}

// Sub returns a child region clipped to the parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset shrinks the region by n cells on every side
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell writes one cell, bounds-checked against both the region and the
// physical buffer
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Fill paints the whole region with spaces on bg
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}

// Clear fills the region with zero-color spaces
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// Width returns the region width
func (r Region) Width() int {
	return r.W
}

// Height returns the region height
func (r Region) Height() int {
	return r.H
}
