// Interactive path picker: walk the filesystem with arrows, Right enters a
// directory, Left backs out, Enter prints the highlighted path.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/terminal/tui"
)

type dirEntry struct {
	name  string
	isDir bool
}

func listDir(dir string) ([]dirEntry, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]dirEntry, 0, len(ents))
	for _, e := range ents {
		out = append(out, dirEntry{name: e.Name(), isDir: e.IsDir()})
	}
	// Directories first, then lexical
	sort.Slice(out, func(i, j int) bool {
		if out[i].isDir != out[j].isDir {
			return out[i].isDir
		}
		return out[i].name < out[j].name
	})
	return out, nil
}

func main() {
	debugPath := flag.String("debug", "", "append debug log to this file")
	flag.Parse()
	if *debugPath != "" {
		f, err := os.OpenFile(*debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ipath: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	dir := flag.Arg(0)
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ipath: %v\n", err)
		os.Exit(1)
	}
	entries, err := listDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ipath: %v\n", err)
		os.Exit(1)
	}

	sess, err := terminal.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ipath: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	cur := tui.NewCursor(entries)

	w, h := sess.Size()
	cells := make([]terminal.Cell, w*h)

	render := func() {
		root := tui.NewRegion(cells, w, 0, 0, w, h)
		root.Fill(terminal.RGBBlack)

		header, body := tui.SplitVFixed(root, 1)
		header.TextStyled(0, 0, tui.TruncateLeft(dir, header.W), tui.StyleAccent)

		rows := make([]tui.ListRow, len(entries))
		for i, e := range entries {
			text := e.name
			style := tui.StyleDefault
			if e.isDir {
				text += "/"
				style = tui.StyleAccent
			}
			rows[i] = tui.ListRow{Text: text, Style: style}
		}
		start, _ := tui.VisibleWindow(cur.Pos, len(rows), body.H)
		body.List(rows, cur.Pos, start, tui.ListOpts{
			Cursor:   tui.StyleCursor,
			Default:  tui.StyleDefault,
			ShowBar:  true,
			BarStyle: tui.StyleDim,
		})

		sess.Flush(cells, w, h)
	}

	reload := func(next string) {
		ents, err := listDir(next)
		if err != nil {
			log.Printf("read %s: %v", next, err)
			return
		}
		dir = next
		entries = ents
		cur.Items = entries
		cur.JumpFirst()
	}

	render()
	for {
		ev := sess.NextEvent()
		switch ev.Type {
		case terminal.EventKey:
			switch ev.Key {
			case terminal.KeyUp:
				cur.MoveUp()
			case terminal.KeyDown:
				cur.MoveDown()
			case terminal.KeyHome:
				cur.JumpFirst()
			case terminal.KeyEnd:
				cur.JumpLast()
			case terminal.KeyRight:
				if e, ok := cur.Current(); ok && e.isDir {
					reload(filepath.Join(dir, e.name))
				}
			case terminal.KeyLeft:
				if parent := filepath.Dir(dir); parent != dir {
					reload(parent)
				}
			case terminal.KeyEnter:
				sess.Close()
				if e, ok := cur.Current(); ok {
					fmt.Println(filepath.Join(dir, e.name))
				} else {
					fmt.Println(dir)
				}
				return
			case terminal.KeyEscape, terminal.KeyCtrlC:
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
