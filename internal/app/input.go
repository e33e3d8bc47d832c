package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	",":         ebiten.KeyComma,
	".":         ebiten.KeyPeriod,
	"[":         ebiten.KeyBracketLeft,
	"]":         ebiten.KeyBracketRight,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeymapFromConfig builds the navigation keymap. Each configured key replaces
// the primary default for its action; unknown names keep the default. A
// vertical reel with the default bindings moves on up/down and switches
// shelves on left/right.
func KeymapFromConfig(kb config.KeybindConfig, axis gallery.Axis) ui.Keymap {
	km := ui.DefaultKeymap()
	def := config.DefaultConfig().Keybinds
	if axis == gallery.Vertical && kb.Prev == def.Prev && kb.Next == def.Next &&
		kb.ShelfPrev == def.ShelfPrev && kb.ShelfNext == def.ShelfNext {
		kb.Prev, kb.Next = def.ShelfPrev, def.ShelfNext
		kb.ShelfPrev, kb.ShelfNext = def.Prev, def.Next
	}

	bind := func(a ui.Action, name string) {
		if name == "" {
			return
		}
		k, ok := parseKey(name)
		if !ok {
			log.Printf("Unknown key %q for %s, keeping default", name, a)
			return
		}
		keys := km[a]
		if len(keys) == 0 {
			km[a] = []ebiten.Key{k}
			return
		}
		km[a] = append([]ebiten.Key{k}, keys[1:]...)
	}
	bind(ui.ActionPrev, kb.Prev)
	bind(ui.ActionNext, kb.Next)
	bind(ui.ActionSelect, kb.Select)
	bind(ui.ActionBack, kb.Back)
	bind(ui.ActionFirst, kb.First)
	bind(ui.ActionLast, kb.Last)
	bind(ui.ActionShelfPrev, kb.ShelfPrev)
	bind(ui.ActionShelfNext, kb.ShelfNext)
	return km
}
