package terminal

import "fmt"

var keyNames = map[Key]string{
	KeyNone:             "None",
	KeyRune:             "Rune",
	KeyUnsupported:      "Unsupported",
	KeyEscape:           "Escape",
	KeyEnter:            "Enter",
	KeyTab:              "Tab",
	KeyBacktab:          "Backtab",
	KeyBackspace:        "Backspace",
	KeyDelete:           "Delete",
	KeySpace:            "Space",
	KeyUp:               "Up",
	KeyDown:             "Down",
	KeyLeft:             "Left",
	KeyRight:            "Right",
	KeyHome:             "Home",
	KeyEnd:              "End",
	KeyPageUp:           "PageUp",
	KeyPageDown:         "PageDown",
	KeyInsert:           "Insert",
	KeyF1:               "F1",
	KeyF2:               "F2",
	KeyF3:               "F3",
	KeyF4:               "F4",
	KeyF5:               "F5",
	KeyF6:               "F6",
	KeyF7:               "F7",
	KeyF8:               "F8",
	KeyF9:               "F9",
	KeyF10:              "F10",
	KeyF11:              "F11",
	KeyF12:              "F12",
	KeyCtrlA:            "Ctrl+A",
	KeyCtrlB:            "Ctrl+B",
	KeyCtrlC:            "Ctrl+C",
	KeyCtrlD:            "Ctrl+D",
	KeyCtrlE:            "Ctrl+E",
	KeyCtrlF:            "Ctrl+F",
	KeyCtrlG:            "Ctrl+G",
	KeyCtrlH:            "Ctrl+H",
	KeyCtrlI:            "Ctrl+I",
	KeyCtrlJ:            "Ctrl+J",
	KeyCtrlK:            "Ctrl+K",
	KeyCtrlL:            "Ctrl+L",
	KeyCtrlM:            "Ctrl+M",
	KeyCtrlN:            "Ctrl+N",
	KeyCtrlO:            "Ctrl+O",
	KeyCtrlP:            "Ctrl+P",
	KeyCtrlQ:            "Ctrl+Q",
	KeyCtrlR:            "Ctrl+R",
	KeyCtrlS:            "Ctrl+S",
	KeyCtrlT:            "Ctrl+T",
	KeyCtrlU:            "Ctrl+U",
	KeyCtrlV:            "Ctrl+V",
	KeyCtrlW:            "Ctrl+W",
	KeyCtrlX:            "Ctrl+X",
	KeyCtrlY:            "Ctrl+Y",
	KeyCtrlZ:            "Ctrl+Z",
	KeyCtrlSpace:        "Ctrl+Space",
	KeyCtrlBackslash:    "Ctrl+\\",
	KeyCtrlBracketRight: "Ctrl+]",
	KeyCtrlCaret:        "Ctrl+^",
	KeyCtrlUnderscore:   "Ctrl+_",
}

// String returns a human-readable key name for logs
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// DescribeKey formats a key event with modifier prefixes, for logs and
// status lines. Runes show as 'x' when printable, U+XXXX otherwise.
func DescribeKey(ev Event) string {
	var mods string
	if ev.Modifiers&ModShift != 0 {
		mods += "Shift+"
	}
	if ev.Modifiers&ModAlt != 0 {
		mods += "Alt+"
	}
	if ev.Modifiers&ModCtrl != 0 {
		mods += "Ctrl+"
	}

	name := ev.Key.String()
	if ev.Key == KeyRune {
		if ev.Rune >= 0x20 && ev.Rune < 0x7f {
			name = fmt.Sprintf("'%c'", ev.Rune)
		} else {
			name = fmt.Sprintf("U+%04X", ev.Rune)
		}
	}
	return mods + name
}
