// Single-line prompt with readline-ish editing. Enter prints the text to
// stdout; Escape and Ctrl+C cancel with exit 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/terminal/tui"
)

func main() {
	debugPath := flag.String("debug", "", "append debug log to this file")
	prompt := flag.String("prompt", "> ", "prompt text")
	flag.Parse()
	if *debugPath != "" {
		f, err := os.OpenFile(*debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "text-box: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	sess, err := terminal.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "text-box: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	field := tui.NewTextField(flag.Arg(0))

	w, h := sess.Size()
	cells := make([]terminal.Cell, w*h)

	render := func() {
		root := tui.NewRegion(cells, w, 0, 0, w, h)
		root.Fill(terminal.RGBBlack)

		box := tui.Center(root, min(w, 60), 3)
		box.Box(tui.StyleDim)
		inner := box.Inset(1)

		promptW := tui.DisplayWidth(*prompt)
		inner.TextStyled(0, 0, *prompt, tui.StyleAccent)

		fieldW := inner.W - promptW
		visible, cursorCol := field.View(fieldW)
		inner.TextStyled(promptW, 0, string(visible), tui.StyleDefault)
		// Block cursor via inverse cell
		cx := promptW + cursorCol
		ch := ' '
		if field.Cursor < len(field.Text) {
			ch = field.Text[field.Cursor]
		}
		inner.Cell(cx, 0, ch, tui.StyleCursor.Fg, tui.StyleCursor.Bg, tui.StyleCursor.Attr)

		sess.Flush(cells, w, h)
	}

	render()
	for {
		ev := sess.NextEvent()
		switch ev.Type {
		case terminal.EventKey:
			switch ev.Key {
			case terminal.KeyEnter:
				sess.Close()
				fmt.Println(field.Value())
				return
			case terminal.KeyEscape, terminal.KeyCtrlC:
				sess.Close()
				os.Exit(1)
			default:
				if !field.HandleKey(ev.Key, ev.Rune, ev.Modifiers) {
					log.Printf("unhandled key: %s", terminal.DescribeKey(ev))
				}
			}
		case terminal.EventSignal:
			if ev.Signal == syscall.SIGWINCH {
				w, h = ev.Width, ev.Height
				cells = make([]terminal.Cell, w*h)
			}
		case terminal.EventError:
			log.Printf("input error: %v", ev.Err)
		case terminal.EventClosed:
			return
		}
		render()
	}
}
