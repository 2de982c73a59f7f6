package tui

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the terminal column count of s. Wide (CJK) runes
// count as two columns, zero-width combining marks as none.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxW display columns, appending … when it
// had to cut
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}

// TruncateLeft keeps the tail of s within maxW columns, prefixing … when
// it had to cut. Paths read better cut from the left.
func TruncateLeft(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW == 1 {
		return "…"
	}
	return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxW+1, "…")
}

// PadRight extends s with spaces to exactly width columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft prefixes s with spaces to exactly width columns
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// RepeatRune builds a string of n copies of r
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
