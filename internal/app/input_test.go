package app

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/ui"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"Left", ebiten.KeyArrowLeft, true},
		{" ESC ", ebiten.KeyEscape, true},
		{"j", ebiten.KeyJ, true},
		{"7", ebiten.KeyDigit7, true},
		{"PageDown", ebiten.KeyPageDown, true},
		{"hyper", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseKey(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseKey(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeymapFromConfig(t *testing.T) {
	kb := config.DefaultConfig().Keybinds
	kb.Next = "L"
	kb.Back = "q"
	kb.Select = "nonsense"
	km := KeymapFromConfig(kb, gallery.Horizontal)

	tests := []struct {
		action ui.Action
		want   []ebiten.Key
	}{
		{ui.ActionNext, []ebiten.Key{ebiten.KeyL}},
		{ui.ActionPrev, []ebiten.Key{ebiten.KeyArrowLeft}},
		// Backspace stays as the secondary back key.
		{ui.ActionBack, []ebiten.Key{ebiten.KeyQ, ebiten.KeyBackspace}},
		{ui.ActionSelect, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	}
	for _, tt := range tests {
		if got := km[tt.action]; !slices.Equal(got, tt.want) {
			t.Errorf("%s keys = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestKeymapFromConfig_VerticalDefaults(t *testing.T) {
	km := KeymapFromConfig(config.DefaultConfig().Keybinds, gallery.Vertical)
	if got := km[ui.ActionNext]; !slices.Equal(got, []ebiten.Key{ebiten.KeyArrowDown}) {
		t.Errorf("vertical next = %v, want down", got)
	}
	if got := km[ui.ActionShelfNext]; !slices.Equal(got, []ebiten.Key{ebiten.KeyArrowRight}) {
		t.Errorf("vertical shelf next = %v, want right", got)
	}
}
