package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/jellyreel/internal/gallery"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// reelHolder is implemented by screens that show a reel.
type reelHolder interface {
	Reel() *ReelView
}

// DrawDebugOverlay draws the layout engine state of the current screen if
// the overlay is visible.
func DrawDebugOverlay(screen *ebiten.Image, current Screen) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	lines := []string{fmt.Sprintf("fps %.0f  tps %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())}
	if current != nil {
		lines = append(lines, "screen: "+current.Name())
	}
	if rh, ok := current.(reelHolder); ok {
		lines = append(lines, engineLines(rh.Reel().LM)...)
	}
	var pressed []string
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			pressed = append(pressed, k.String())
		}
	}
	if len(pressed) > 0 {
		lines = append(lines, "keys: "+strings.Join(pressed, " "))
	}

	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 420.0
	b := screen.Bounds()
	px := float64(b.Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug: Reel (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}

// engineLines describes a layout manager's state, one fact per line.
func engineLines(lm *gallery.LayoutManager) []string {
	vis := "none"
	if r := lm.VisibleRange(); !r.Empty() {
		vis = fmt.Sprintf("%d..%d", r.First, r.Last)
	}
	target := "-"
	if s := lm.Scroller(); s != nil {
		target = fmt.Sprint(s.Target())
	}
	return []string{
		fmt.Sprintf("axis: %s  items: %d", lm.Axis(), lm.ItemCount()),
		fmt.Sprintf("visible: %s  attached: %d", vis, len(lm.Children())),
		fmt.Sprintf("selected: %d", lm.SelectedIndex()),
		fmt.Sprintf("state: %s  target: %s", lm.ScrollState(), target),
		fmt.Sprintf("cached frames: %d", lm.CachedFrames()),
	}
}
