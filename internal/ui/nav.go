package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a navigation command produced by the keymap.
type Action int

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionSelect
	ActionBack
	ActionFirst
	ActionLast
	ActionShelfPrev
	ActionShelfNext
)

func (a Action) String() string {
	switch a {
	case ActionPrev:
		return "prev"
	case ActionNext:
		return "next"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	case ActionShelfPrev:
		return "shelf-prev"
	case ActionShelfNext:
		return "shelf-next"
	default:
		return "none"
	}
}

// repeats reports whether holding the key for a also repeats it.
func (a Action) repeats() bool {
	switch a {
	case ActionPrev, ActionNext, ActionShelfPrev, ActionShelfNext:
		return true
	}
	return false
}

// Keymap binds actions to keys. Several keys may trigger the same action.
type Keymap map[Action][]ebiten.Key

// pollOrder decides which action wins when keys for several are down.
var pollOrder = []Action{
	ActionBack, ActionSelect, ActionPrev, ActionNext,
	ActionFirst, ActionLast, ActionShelfPrev, ActionShelfNext,
}

func DefaultKeymap() Keymap {
	return Keymap{
		ActionPrev:      {ebiten.KeyArrowLeft},
		ActionNext:      {ebiten.KeyArrowRight},
		ActionSelect:    {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		ActionBack:      {ebiten.KeyEscape, ebiten.KeyBackspace},
		ActionFirst:     {ebiten.KeyHome},
		ActionLast:      {ebiten.KeyEnd},
		ActionShelfPrev: {ebiten.KeyArrowUp},
		ActionShelfNext: {ebiten.KeyArrowDown},
	}
}

// Poll returns the action triggered this frame. Movement actions repeat
// while their key is held.
func (km Keymap) Poll() Action {
	for _, a := range pollOrder {
		for _, k := range km[a] {
			if a.repeats() && inputRepeating(k) {
				return a
			}
			if !a.repeats() && inpututil.IsKeyJustPressed(k) && !IsModifierPressed() {
				return a
			}
		}
	}
	if a := km.pollMouse(); a != ActionNone {
		return a
	}
	return ActionNone
}

func (km Keymap) pollMouse() Action {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3) {
		return ActionBack
	}
	return ActionNone
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	return repeatDue(keyHoldFrames[key])
}

// repeatDue reports whether a key held for frames frames fires this frame.
func repeatDue(frames int) bool {
	if frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// FrameDelta is the simulated time between two Update calls.
func FrameDelta() time.Duration {
	return time.Second / time.Duration(max(1, ebiten.TPS()))
}

// Lerp for smooth animation
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
