package tui

import "github.com/lixenwraith/termkit/terminal"

// Style bundles the per-cell render attributes
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// WithAttr returns a copy with extra attributes set
func (s Style) WithAttr(a terminal.Attr) Style {
	s.Attr |= a
	return s
}

// WithBg returns a copy with a different background
func (s Style) WithBg(bg terminal.RGB) Style {
	s.Bg = bg
	return s
}

// Palette used by the example programs. Muted defaults on a dark
// background; the cursor row inverts instead of recoloring.
var (
	StyleDefault  = Style{Fg: terminal.RGB{R: 0xd0, G: 0xd0, B: 0xd0}, Bg: terminal.RGBBlack}
	StyleDim      = Style{Fg: terminal.RGB{R: 0x80, G: 0x80, B: 0x80}, Bg: terminal.RGBBlack}
	StyleCursor   = Style{Fg: terminal.RGBBlack, Bg: terminal.RGB{R: 0xd0, G: 0xd0, B: 0xd0}}
	StyleSelected = Style{Fg: terminal.RGB{R: 0x87, G: 0xd7, B: 0x87}, Bg: terminal.RGBBlack}
	StyleAccent   = Style{Fg: terminal.RGB{R: 0x5f, G: 0xaf, B: 0xff}, Bg: terminal.RGBBlack}
	StyleError    = Style{Fg: terminal.RGB{R: 0xff, G: 0x5f, B: 0x5f}, Bg: terminal.RGBBlack}
)
