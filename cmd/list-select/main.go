// Multi-select list picker: navigate with arrows, toggle with Tab, accept
// with Enter. Selected lines print to stdout, one per line; cancel exits 1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/terminal/tui"
)

var sampleItems = []string{
	"apples", "bananas", "cherries", "dates", "eggplants",
	"figs", "grapes", "honeydew", "kiwis", "lemons",
	"mangoes", "nectarines", "oranges", "peaches", "quinces",
}

func main() {
	debugPath := flag.String("debug", "", "append debug log to this file")
	flag.Parse()
	setupLog(*debugPath)

	items := sampleItems
	if flag.Arg(0) != "" {
		var err error
		items, err = readLines(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "list-select: %v\n", err)
			os.Exit(1)
		}
	}

	sess, err := terminal.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "list-select: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	selects := tui.NewSelects(items)
	cur := tui.NewCursor(selects)

	w, h := sess.Size()
	cells := make([]terminal.Cell, w*h)

	render := func() {
		root := tui.NewRegion(cells, w, 0, 0, w, h)
		root.Fill(terminal.RGBBlack)

		header, body := tui.SplitVFixed(root, 1)
		header.TextStyled(0, 0, "Tab toggles, Enter accepts, Escape cancels", tui.StyleDim)

		rows := tui.SelectRows(selects, func(s string) string { return s })
		start, _ := tui.VisibleWindow(cur.Pos, len(rows), body.H)
		body.List(rows, cur.Pos, start, tui.ListOpts{
			Cursor:   tui.StyleCursor,
			Default:  tui.StyleDefault,
			ShowBar:  true,
			BarStyle: tui.StyleDim,
		})

		sess.Flush(cells, w, h)
	}

	render()
	for {
		ev := sess.NextEvent()
		switch ev.Type {
		case terminal.EventKey:
			switch {
			case ev.Key == terminal.KeyUp || ev.Key == terminal.KeyLeft:
				cur.MoveUp()
			case ev.Key == terminal.KeyDown || ev.Key == terminal.KeyRight:
				cur.MoveDown()
			case ev.Key == terminal.KeyHome:
				cur.JumpFirst()
			case ev.Key == terminal.KeyEnd:
				cur.JumpLast()
			case ev.Key == terminal.KeyTab:
				tui.ToggleAt(selects, cur.Pos)
			case ev.Key == terminal.KeyEnter,
				ev.Key == terminal.KeyRune && ev.Rune == 'q':
				sess.Close()
				for _, v := range tui.SelectedValues(selects) {
					fmt.Println(v)
				}
				return
			case ev.Key == terminal.KeyEscape || ev.Key == terminal.KeyCtrlC:
				sess.Close()
				os.Exit(1)
			default:
				log.Printf("unhandled key: %s", terminal.DescribeKey(ev))
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

func setupLog(path string) {
	if path == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list-select: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(f)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
