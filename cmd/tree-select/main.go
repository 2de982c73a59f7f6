// Tree picker over a nested catalog: arrows walk siblings, Right/Left
// descend and ascend, Space collapses, Tab marks. Enter prints the marked
// leaves.
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

type entry struct {
	name     string
	selected bool
}

func buildCatalog() *tui.TreeNode[*entry] {
	node := func(name string, children ...*tui.TreeNode[*entry]) *tui.TreeNode[*entry] {
		return tui.Node(&entry{name: name}, children...)
	}
	return node("groceries",
		node("fruit",
			node("apples"), node("bananas"), node("cherries"),
		),
		node("vegetables",
			node("carrots"), node("daikon"), node("eggplant"),
		),
		node("dairy",
			node("milk"), node("yogurt"),
		),
	)
}

func main() {
	debugPath := flag.String("debug", "", "append debug log to this file")
	flag.Parse()
	if *debugPath != "" {
		f, err := os.OpenFile(*debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tree-select: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	root := buildCatalog()
	cur := tui.NewPathCursor(root)

	sess, err := terminal.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tree-select: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	w, h := sess.Size()
	cells := make([]terminal.Cell, w*h)

	render := func() {
		region := tui.NewRegion(cells, w, 0, 0, w, h)
		region.Fill(terminal.RGBBlack)

		header, body := tui.SplitVFixed(region, 1)
		header.TextStyled(0, 0, "Right/Left descend/ascend, Space folds, Tab marks, Enter accepts", tui.StyleDim)

		flat := tui.FlattenVisible(root)
		cursorRow := 0
		rows := make([]tui.ListRow, len(flat))
		for i, fr := range flat {
			if tui.PathEqual(fr.Path, cur.Path) {
				cursorRow = i
			}
			icon := "  "
			if len(fr.Node.Children) > 0 {
				if fr.Node.Collapsed {
					icon = "▸ "
				} else {
					icon = "▾ "
				}
			}
			rows[i] = tui.ListRow{
				Text:    icon + fr.Node.Value.name,
				Indent:  fr.Depth * 2,
				HasMark: true,
			}
			if fr.Node.Value.selected {
				rows[i].Marker = '+'
				rows[i].Style = tui.StyleSelected
			}
		}

		start, _ := tui.VisibleWindow(cursorRow, len(rows), body.H)
		body.List(rows, cursorRow, start, tui.ListOpts{
			Cursor:  tui.StyleCursor,
			Default: tui.StyleDefault,
		})

		sess.Flush(cells, w, h)
	}

	collect := func() []string {
		var out []string
		for _, fr := range tui.FlattenVisible(expandAll(root)) {
			if fr.Node.Value.selected {
				out = append(out, fr.Node.Value.name)
			}
		}
		return out
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
			case terminal.KeyRight:
				cur.Descend()
			case terminal.KeyLeft:
				cur.Ascend()
			case terminal.KeyTab:
				if n := cur.Node(); n != nil {
					n.Value.selected = !n.Value.selected
				}
			case terminal.KeyEnter:
				sess.Close()
				for _, name := range collect() {
					fmt.Println(name)
				}
				return
			case terminal.KeyEscape, terminal.KeyCtrlC:
				sess.Close()
				os.Exit(1)
			case terminal.KeyRune:
				if ev.Rune == ' ' {
					cur.ToggleCollapsed()
				} else {
					log.Printf("unhandled key: %s", terminal.DescribeKey(ev))
				}
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

// expandAll clones collapse state away so collection sees every node
func expandAll(root *tui.TreeNode[*entry]) *tui.TreeNode[*entry] {
	clone := &tui.TreeNode[*entry]{Value: root.Value}
	for _, c := range root.Children {
		clone.Children = append(clone.Children, expandAll(c))
	}
	return clone
}
