package ui

import "testing"

func TestEditLine(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		typed     string
		backspace bool
		want      string
	}{
		{"type", "jelly", "fin", false, "jellyfin"},
		{"backspace", "jellyfin", "", true, "jellyfi"},
		{"backspace multibyte", "café", "", true, "caf"},
		{"backspace empty", "", "", true, ""},
		{"replace last", "ab", "c", true, "ac"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := editLine(tt.in, []rune(tt.typed), tt.backspace); got != tt.want {
				t.Errorf("editLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginScreen_InitialFocus(t *testing.T) {
	tests := []struct {
		server, user string
		want         int
	}{
		{"", "", 0},
		{"http://jf:8096", "", 1},
		{"http://jf:8096", "ana", 2},
	}
	for _, tt := range tests {
		ls := NewLoginScreen(tt.server, tt.user)
		if ls.fieldIndex != tt.want {
			t.Errorf("NewLoginScreen(%q, %q) focus = %d, want %d", tt.server, tt.user, ls.fieldIndex, tt.want)
		}
		if ls.canSubmit() != (tt.server != "" && tt.user != "") {
			t.Errorf("canSubmit(%q, %q) = %v", tt.server, tt.user, ls.canSubmit())
		}
	}
}
