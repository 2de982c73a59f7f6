// Package tui provides immediate-mode drawing primitives and the cursor
// models shared by the example selectors.
//
// Navigation state is plain data the application owns: Cursor for flat
// lists (saturating moves, keep-cursor-visible windowing), PathCursor for
// trees (position as a chain of child indices, clamped mutators), and
// TextField for single-line editing. None of it retains render state;
// the app rebuilds a cell buffer each frame.
//
// Drawing goes through Region, a clipped rectangular view into a cell
// buffer:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(bg)
//	root.Text(0, 0, "hello", fg, bg, 0)
//	sess.Flush(cells, w, h)
package tui
