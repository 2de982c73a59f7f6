// Read-only line viewer with keep-cursor-visible scrolling. The window
// stays pinned until the cursor walks past the first page, then trails so
// the cursor row is the last one shown.
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

func main() {
	debugPath := flag.String("debug", "", "append debug log to this file")
	flag.Parse()
	if *debugPath != "" {
		f, err := os.OpenFile(*debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list-view: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if flag.Arg(0) == "" {
		fmt.Fprintln(os.Stderr, "usage: list-view [-debug file] <file>")
		os.Exit(1)
	}
	lines, err := readLines(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "list-view: %v\n", err)
		os.Exit(1)
	}

	sess, err := terminal.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "list-view: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	cur := tui.NewCursor(lines)

	w, h := sess.Size()
	cells := make([]terminal.Cell, w*h)

	var render terminal.RenderFunc = func(width, height int) {
		root := tui.NewRegion(cells, width, 0, 0, width, height)
		root.Fill(terminal.RGBBlack)

		body, status := tui.SplitVFixed(root, height-1)

		rows := make([]tui.ListRow, len(lines))
		for i, l := range lines {
			rows[i] = tui.ListRow{Text: l}
		}
		start, _ := tui.VisibleWindow(cur.Pos, len(rows), body.H)
		body.List(rows, cur.Pos, start, tui.ListOpts{
			Cursor:   tui.StyleCursor,
			Default:  tui.StyleDefault,
			ShowBar:  true,
			BarStyle: tui.StyleDim,
		})

		pos := fmt.Sprintf(" %d/%d ", cur.Pos+1, len(lines))
		status.TextRight(0, pos, tui.StyleDim)

		sess.Flush(cells, width, height)
	}

	render(w, h)
	for {
		ev := sess.NextEvent()
		switch ev.Type {
		case terminal.EventKey:
			switch ev.Key {
			case terminal.KeyUp:
				cur.MoveUp()
			case terminal.KeyDown:
				cur.MoveDown()
			case terminal.KeyPageUp:
				cur.Pos = tui.SaturatingSub(cur.Pos, tui.PageDelta(h-1), 0)
			case terminal.KeyPageDown:
				cur.Pos = tui.SaturatingAdd(cur.Pos, tui.PageDelta(h-1), len(lines)-1)
			case terminal.KeyHome:
				cur.JumpFirst()
			case terminal.KeyEnd:
				cur.JumpLast()
			case terminal.KeyEnter, terminal.KeyEscape:
				return
			case terminal.KeyCtrlC:
				sess.Close()
				os.Exit(1)
			case terminal.KeyRune:
				if ev.Rune == 'q' {
					return
				}
				log.Printf("unhandled key: %s", terminal.DescribeKey(ev))
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
		render(w, h)
	}
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
