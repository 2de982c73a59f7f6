// Layout playground: arrow keys split the outermost leaf pane of a nested
// layout tree — Right/Down split the rightmost leaf into a row/column,
// Left/Up do the same to the leftmost leaf. Demonstrates out-of-band
// signal delivery: SIGINT is subscribed alongside SIGWINCH and ends the
// loop through the same queue the keyboard feeds.
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

// pane is a layout tree node: leaves render as boxes, interior nodes
// split their region among children. Value true splits into a row
// (children side by side), false into a column.
type pane = tui.TreeNode[bool]

func newPane() *pane {
	return tui.Leaf(false)
}

func leftmostLeaf(n *pane) *pane {
	for len(n.Children) > 0 {
		n = n.Children[0]
	}
	return n
}

func rightmostLeaf(n *pane) *pane {
	for len(n.Children) > 0 {
		n = n.Children[len(n.Children)-1]
	}
	return n
}

// splitLeaf turns a leaf into a two-child split
func splitLeaf(n *pane, row bool) {
	n.Value = row
	n.Children = []*pane{newPane(), newPane()}
}

func countLeaves(n *pane) int {
	if len(n.Children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += countLeaves(c)
	}
	return total
}

// drawPanes renders the tree recursively, numbering leaves left to right
func drawPanes(n *pane, r tui.Region, next *int) {
	if len(n.Children) == 0 {
		r.Box(tui.StyleDim)
		r.TextCenter(r.H/2, fmt.Sprintf("%d", *next), tui.StyleAccent)
		*next++
		return
	}
	var parts []tui.Region
	if n.Value {
		parts = tui.SplitHEqual(r, len(n.Children), 0)
	} else {
		parts = tui.SplitVEqual(r, len(n.Children), 0)
	}
	for i, c := range n.Children {
		drawPanes(c, parts[i], next)
	}
}

func main() {
	debugPath := flag.String("debug", "", "append debug log to this file")
	flag.Parse()
	if *debugPath != "" {
		f, err := os.OpenFile(*debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ilayout: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	sess, err := terminal.NewSession(syscall.SIGINT)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ilayout: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	root := newPane()

	w, h := sess.Size()
	cells := make([]terminal.Cell, w*h)

	render := func() {
		region := tui.NewRegion(cells, w, 0, 0, w, h)
		region.Fill(terminal.RGBBlack)

		next := 0
		drawPanes(root, region, &next)

		sess.Flush(cells, w, h)
	}

	// Deep nesting degenerates into unreadable slivers; stop splitting
	// well before that.
	const maxPanes = 64

	render()
	for {
		ev := sess.NextEvent()
		switch ev.Type {
		case terminal.EventKey:
			switch ev.Key {
			case terminal.KeyRight:
				if countLeaves(root) < maxPanes {
					splitLeaf(rightmostLeaf(root), true)
				}
			case terminal.KeyLeft:
				if countLeaves(root) < maxPanes {
					splitLeaf(leftmostLeaf(root), true)
				}
			case terminal.KeyDown:
				if countLeaves(root) < maxPanes {
					splitLeaf(rightmostLeaf(root), false)
				}
			case terminal.KeyUp:
				if countLeaves(root) < maxPanes {
					splitLeaf(leftmostLeaf(root), false)
				}
			case terminal.KeyEscape, terminal.KeyCtrlC:
				return
			case terminal.KeyRune:
				switch ev.Rune {
				case 'r', ' ':
					root = newPane()
				case 'q':
					return
				default:
					log.Printf("unhandled key: %s", terminal.DescribeKey(ev))
				}
			default:
				log.Printf("unhandled key: %s", terminal.DescribeKey(ev))
			}
		case terminal.EventSignal:
			switch ev.Signal {
			case syscall.SIGWINCH:
				w, h = ev.Width, ev.Height
				cells = make([]terminal.Cell, w*h)
			case syscall.SIGINT:
				log.Printf("interrupted")
				return
			}
		case terminal.EventError:
			log.Printf("input error: %v", ev.Err)
		case terminal.EventClosed:
			return
		}
		render()
	}
}
