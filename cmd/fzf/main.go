// Interactive fuzzy filter: type to narrow candidates, Tab marks, Enter
// prints the marked lines (or the cursor line when nothing is marked).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"syscall"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/terminal/tui"
)

// filterIndices returns candidate indices matching the query, best rank
// first; an empty query passes everything in file order. Indices, not
// strings, so duplicate lines stay individually addressable.
func filterIndices(query string, candidates []string) []int {
	if query == "" {
		out := make([]int, len(candidates))
		for i := range candidates {
			out[i] = i
		}
		return out
	}
	ranks := fuzzy.RankFindFold(query, candidates)
	sort.Sort(ranks)
	out := make([]int, len(ranks))
	for i, r := range ranks {
		out[i] = r.OriginalIndex
	}
	return out
}

// markedInOrder keeps output in candidate-file order regardless of how the
// filter reordered the view
func markedInOrder(candidates []string, marked map[int]bool) []string {
	var out []string
	for i, c := range candidates {
		if marked[i] {
			out = append(out, c)
		}
	}
	return out
}

func main() {
	debugPath := flag.String("debug", "", "append debug log to this file")
	flag.Parse()
	if *debugPath != "" {
		f, err := os.OpenFile(*debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fzf: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if flag.Arg(0) == "" {
		fmt.Fprintln(os.Stderr, "usage: fzf [-debug file] <file>")
		os.Exit(1)
	}
	candidates, err := readLines(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "fzf: %v\n", err)
		os.Exit(1)
	}

	sess, err := terminal.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fzf: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	needle := tui.NewTextField("")
	marked := make(map[int]bool)
	cur := tui.NewCursor(filterIndices("", candidates))

	refilter := func() {
		cur.Items = filterIndices(needle.Value(), candidates)
		cur.Clamp()
	}

	w, h := sess.Size()
	cells := make([]terminal.Cell, w*h)

	render := func() {
		root := tui.NewRegion(cells, w, 0, 0, w, h)
		root.Fill(terminal.RGBBlack)

		input, body := tui.SplitVFixed(root, 1)
		input.TextStyled(0, 0, "/ ", tui.StyleAccent)
		visible, cursorCol := needle.View(input.W - 2)
		input.TextStyled(2, 0, string(visible), tui.StyleDefault)
		ch := ' '
		if needle.Cursor < len(needle.Text) {
			ch = needle.Text[needle.Cursor]
		}
		input.Cell(2+cursorCol, 0, ch, tui.StyleCursor.Fg, tui.StyleCursor.Bg, tui.StyleCursor.Attr)

		rows := make([]tui.ListRow, len(cur.Items))
		for i, idx := range cur.Items {
			rows[i] = tui.ListRow{Text: candidates[idx], HasMark: true}
			if marked[idx] {
				rows[i].Marker = '+'
				rows[i].Style = tui.StyleSelected
			}
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
			case terminal.KeyTab:
				if idx, ok := cur.Current(); ok {
					marked[idx] = !marked[idx]
				}
			case terminal.KeyEnter:
				sess.Close()
				out := markedInOrder(candidates, marked)
				if len(out) == 0 {
					if idx, ok := cur.Current(); ok {
						out = []string{candidates[idx]}
					}
				}
				for _, line := range out {
					fmt.Println(line)
				}
				return
			case terminal.KeyEscape, terminal.KeyCtrlC:
				sess.Close()
				os.Exit(1)
			default:
				if needle.HandleKey(ev.Key, ev.Rune, ev.Modifiers) {
					refilter()
				} else {
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
