package tui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		maxW int
		want string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 5, "abcd…"},
		{"one column", "abc", 1, "…"},
		{"zero", "abc", 0, ""},
		{"wide runes", "日本語", 4, "日…"},
		{"wide fits", "日本", 4, "日本"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxW); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxW, got, tt.want)
			}
		})
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name string
		in   string
		maxW int
		want string
	}{
		{"fits", "abc", 5, "abc"},
		{"cut keeps tail", "/home/user/project", 9, "…/project"},
		{"one column", "abc", 1, "…"},
		{"zero", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateLeft(tt.in, tt.maxW); got != tt.want {
				t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tt.in, tt.maxW, got, tt.want)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight over width = %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth("abc"); got != 3 {
		t.Errorf("ascii width = %d", got)
	}
	if got := DisplayWidth("日本"); got != 4 {
		t.Errorf("wide width = %d", got)
	}
}
