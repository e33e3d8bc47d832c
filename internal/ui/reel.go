package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/library"
)

// ReelOptions configures a ReelView's layout engine.
type ReelOptions struct {
	Axis            gallery.Axis
	CallbackInFling bool
	// MinScale is the scale of cards one item away from center. Values
	// outside (0, 1) disable scaling.
	MinScale float64
	DPI      float64
}

// ReelView is a center-snapping row (or column) of poster cards. It is both
// the viewport and the adapter of its layout manager.
type ReelView struct {
	LM *gallery.LayoutManager

	// OnSelect is called when the centered item changes.
	OnSelect func(index int, item library.Item)
	// OnActivate is called when the centered card is clicked.
	OnActivate func(index int, item library.Item)

	axis     gallery.Axis
	posters  *Posters
	items    []library.Item
	attached bool

	x, y, w, h int

	free  []*PosterCard
	fling flingTracker
}

func NewReelView(opts ReelOptions, posters *Posters) *ReelView {
	lm := gallery.New(opts.Axis)
	lm.CallbackInFling = opts.CallbackInFling
	lm.DPI = opts.DPI
	if opts.MinScale > 0 && opts.MinScale < 1 {
		lm.Transformer = gallery.ScaleTransformer{MinScale: opts.MinScale}
	}
	rv := &ReelView{
		LM:      lm,
		axis:    opts.Axis,
		posters: posters,
	}
	rv.fling.lm = lm
	lm.OnItemSelected = rv.itemSelected
	return rv
}

func (rv *ReelView) Size() (int, int) { return rv.w, rv.h }

func (rv *ReelView) Padding() gallery.Insets { return gallery.Insets{} }

func (rv *ReelView) ItemCount() int { return len(rv.items) }

func (rv *ReelView) ProvideView(index int) gallery.View {
	var card *PosterCard
	if n := len(rv.free); n > 0 {
		card, rv.free = rv.free[n-1], rv.free[:n-1]
	} else {
		card = newPosterCard(rv.axis)
	}
	item := rv.items[index]
	card.bind(index, item)
	rv.posters.Request(item.Poster)
	return card
}

func (rv *ReelView) ReleaseView(v gallery.View) {
	if card, ok := v.(*PosterCard); ok {
		rv.free = append(rv.free, card)
	}
}

func (rv *ReelView) itemSelected(index int, v gallery.View) {
	if rv.OnSelect == nil {
		return
	}
	if card, ok := v.(*PosterCard); ok {
		rv.OnSelect(index, card.Item())
	}
}

// Bounds returns the reel's screen rectangle.
func (rv *ReelView) Bounds() (x, y, w, h int) {
	return rv.x, rv.y, rv.w, rv.h
}

// SetBounds places the reel on screen. A size change re-centers the reel on
// the selected item.
func (rv *ReelView) SetBounds(x, y, w, h int) {
	resized := w != rv.w || h != rv.h
	rv.x, rv.y, rv.w, rv.h = x, y, w, h
	if resized && rv.attached {
		rv.fling.stop()
		rv.LM.LayoutChildren(gallery.LayoutPass{StructureChanged: true})
	}
}

// SetItems replaces the reel contents and centers initial.
func (rv *ReelView) SetItems(items []library.Item, initial int) error {
	rv.fling.stop()
	rv.items = items
	if !rv.attached {
		if err := rv.LM.Attach(rv, rv, initial); err != nil {
			return err
		}
		rv.attached = true
		return nil
	}
	rv.LM.ScrollToIndex(initial)
	return nil
}

// Items returns the items shown by the reel.
func (rv *ReelView) Items() []library.Item { return rv.items }

// Selected returns the centered item.
func (rv *ReelView) Selected() (int, library.Item, bool) {
	i := rv.LM.SelectedIndex()
	if i < 0 || i >= len(rv.items) {
		return -1, library.Item{}, false
	}
	return i, rv.items[i], true
}

// Step moves the reel delta items from where it is heading.
func (rv *ReelView) Step(delta int) {
	base := rv.LM.SelectedIndex()
	if s := rv.LM.Scroller(); s != nil {
		base = s.Target()
	}
	if base < 0 {
		return
	}
	rv.fling.stop()
	rv.LM.SmoothScrollToIndex(base + delta)
}

// Jump centers index without animating.
func (rv *ReelView) Jump(index int) {
	rv.fling.stop()
	rv.LM.ScrollToIndex(index)
}

// HandleAction applies a reel navigation action. It reports whether the
// action was used.
func (rv *ReelView) HandleAction(a Action) bool {
	switch a {
	case ActionPrev:
		rv.Step(-1)
	case ActionNext:
		rv.Step(1)
	case ActionFirst:
		rv.fling.stop()
		rv.LM.SmoothScrollToIndex(0)
	case ActionLast:
		rv.fling.stop()
		rv.LM.SmoothScrollToIndex(len(rv.items) - 1)
	default:
		return false
	}
	return true
}

// Update handles pointer input and advances running scrolls by dt.
func (rv *ReelView) Update(dt time.Duration) {
	rv.updatePointer(dt)
	rv.fling.step(dt)
	rv.LM.Tick(dt)
	for _, c := range rv.LM.Children() {
		if card, ok := c.View.(*PosterCard); ok {
			card.animate()
		}
	}
}

func (rv *ReelView) updatePointer(dt time.Duration) {
	mx, my := ebiten.CursorPosition()
	pos := mx
	if rv.axis == gallery.Vertical {
		pos = my
	}
	inside := PointInRect(mx, my, float64(rv.x), float64(rv.y), float64(rv.w), float64(rv.h))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside && len(rv.items) > 0:
		rv.fling.press(pos)
	case rv.fling.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if rv.fling.release() {
			rv.tap(mx, my)
		}
	case rv.fling.dragging:
		rv.fling.move(pos, dt)
	}

	if !inside || rv.fling.dragging {
		return
	}
	wx, wy := MouseWheelDelta()
	wheel := wy
	if wheel == 0 {
		wheel = wx
	}
	switch {
	case wheel > 0:
		rv.Step(-1)
	case wheel < 0:
		rv.Step(1)
	}
}

// tap centers the clicked card, or activates it when it already is.
func (rv *ReelView) tap(mx, my int) {
	for _, c := range rv.LM.Children() {
		card, ok := c.View.(*PosterCard)
		if !ok || !card.contains(mx, my, float64(rv.x), float64(rv.y)) {
			continue
		}
		if card.Selected() && rv.OnActivate != nil {
			rv.LM.SetScrollState(gallery.ScrollIdle)
			rv.OnActivate(c.Index, card.Item())
			return
		}
		rv.LM.SmoothScrollToIndex(c.Index)
		return
	}
	rv.LM.Settle()
}

// Draw renders the attached cards. The selected card is drawn last so its
// focus border overlaps its neighbours.
func (rv *ReelView) Draw(dst *ebiten.Image) {
	ox, oy := float64(rv.x), float64(rv.y)
	var top *PosterCard
	for _, c := range rv.LM.Children() {
		card, ok := c.View.(*PosterCard)
		if !ok {
			continue
		}
		if card.Selected() {
			top = card
			continue
		}
		card.Draw(dst, ox, oy, rv.posters)
	}
	if top != nil {
		top.Draw(dst, ox, oy, rv.posters)
	}
}

var (
	_ gallery.Viewport = (*ReelView)(nil)
	_ gallery.Adapter  = (*ReelView)(nil)
)
