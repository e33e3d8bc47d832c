package ui

import (
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/library"
)

// ReelScreenOptions configures a ReelScreen.
type ReelScreenOptions struct {
	Reel  ReelOptions
	Keys  Keymap
	Limit int
	// Shelf is the ID or name of the shelf shown first.
	Shelf        string
	InitialIndex int
}

// ReelScreen shows one shelf of a library source as a reel, with details of
// the centered item. Up and down switch shelves.
type ReelScreen struct {
	source library.Source
	reel   *ReelView
	keys   Keymap
	limit  int

	wantShelf    string
	initialIndex int

	shelves   []library.Shelf
	shelfIdx  int
	items     map[string][]library.Item
	positions map[string]int
	dirty     bool // current shelf's items arrived but are not shown yet
	loading   bool
	loaded    bool
	err       error

	info    library.Item
	hasInfo bool

	screenW, screenH int

	// OnItemActivated is called on the game goroutine when the centered
	// item is chosen.
	OnItemActivated func(item library.Item)

	mu sync.Mutex
}

func NewReelScreen(source library.Source, posters *Posters, opts ReelScreenOptions) *ReelScreen {
	if opts.Keys == nil {
		opts.Keys = DefaultKeymap()
	}
	rs := &ReelScreen{
		source:       source,
		reel:         NewReelView(opts.Reel, posters),
		keys:         opts.Keys,
		limit:        opts.Limit,
		wantShelf:    opts.Shelf,
		initialIndex: opts.InitialIndex,
		items:        make(map[string][]library.Item),
		positions:    make(map[string]int),
		screenW:      ScreenWidth,
		screenH:      ScreenHeight,
	}
	// Selection callbacks run inside Update, which already holds mu.
	rs.reel.OnSelect = func(_ int, item library.Item) {
		rs.info = item
		rs.hasInfo = true
	}
	rs.reel.OnActivate = func(_ int, item library.Item) {
		if rs.OnItemActivated != nil {
			rs.OnItemActivated(item)
		}
	}
	return rs
}

func (rs *ReelScreen) Name() string { return "Reel" }

// Reel exposes the reel for the debug overlay.
func (rs *ReelScreen) Reel() *ReelView { return rs.reel }

func (rs *ReelScreen) OnEnter() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if !rs.loaded && !rs.loading {
		rs.loading = true
		go rs.loadShelves()
	}
}

func (rs *ReelScreen) OnExit() {}

func (rs *ReelScreen) loadShelves() {
	shelves, err := rs.source.Shelves()
	if err != nil {
		log.Printf("Failed to load shelves from %s: %v", rs.source.Name(), err)
		rs.mu.Lock()
		rs.err = err
		rs.loading = false
		rs.mu.Unlock()
		return
	}

	rs.mu.Lock()
	rs.shelves = shelves
	rs.loaded = true
	if len(shelves) == 0 {
		rs.loading = false
		rs.mu.Unlock()
		return
	}
	rs.shelfIdx = library.FindShelf(shelves, rs.wantShelf)
	shelf := shelves[rs.shelfIdx]
	rs.positions[shelf.ID] = rs.initialIndex
	rs.mu.Unlock()

	rs.loadItems(shelf)
}

func (rs *ReelScreen) loadItems(shelf library.Shelf) {
	items, err := rs.source.Items(shelf, rs.limit)
	if err != nil {
		log.Printf("Failed to load items for %s: %v", shelf.Name, err)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.loading = false
	if err != nil {
		rs.err = err
		return
	}
	rs.items[shelf.ID] = items
	if rs.currentShelfLocked().ID == shelf.ID {
		rs.dirty = true
	}
}

func (rs *ReelScreen) currentShelfLocked() library.Shelf {
	if rs.shelfIdx < len(rs.shelves) {
		return rs.shelves[rs.shelfIdx]
	}
	return library.Shelf{}
}

// showShelfLocked puts the current shelf's items on the reel, or starts
// loading them.
func (rs *ReelScreen) showShelfLocked() {
	shelf := rs.currentShelfLocked()
	items, ok := rs.items[shelf.ID]
	if !ok {
		rs.hasInfo = false
		rs.loading = true
		rs.err = nil
		if err := rs.reel.SetItems(nil, 0); err != nil {
			log.Printf("reel: %v", err)
		}
		go rs.loadItems(shelf)
		return
	}
	rs.hasInfo = false
	if err := rs.reel.SetItems(items, rs.positions[shelf.ID]); err != nil {
		log.Printf("reel: %v", err)
	}
}

func (rs *ReelScreen) switchShelfLocked(delta int) {
	n := len(rs.shelves)
	if n < 2 || rs.loading {
		return
	}
	if i := rs.reel.LM.SelectedIndex(); i >= 0 {
		rs.positions[rs.currentShelfLocked().ID] = i
	}
	rs.shelfIdx = (rs.shelfIdx + delta + n) % n
	rs.showShelfLocked()
}

// StepSelection moves the centered item by delta without animating and
// returns the new item. The detail screen pages through the shelf with it.
func (rs *ReelScreen) StepSelection(delta int) (library.Item, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	i, _, ok := rs.reel.Selected()
	if !ok {
		return library.Item{}, false
	}
	rs.reel.Jump(i + delta)
	_, item, ok := rs.reel.Selected()
	return item, ok
}

func (rs *ReelScreen) Update() (*ScreenTransition, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	x, y, w, h := reelBounds(rs.reel.axis, rs.screenW, rs.screenH)
	rs.reel.SetBounds(x, y, w, h)

	if rs.dirty {
		rs.dirty = false
		rs.showShelfLocked()
	}

	switch a := rs.keys.Poll(); a {
	case ActionShelfPrev:
		rs.switchShelfLocked(-1)
	case ActionShelfNext:
		rs.switchShelfLocked(1)
	case ActionSelect:
		if _, item, ok := rs.reel.Selected(); ok && rs.OnItemActivated != nil {
			rs.OnItemActivated(item)
		}
	default:
		rs.reel.HandleAction(a)
	}

	rs.reel.Update(FrameDelta())
	return nil, nil
}

// reelBounds places the reel for a screen size: a full-width band under the
// header, or a column down the left side.
func reelBounds(axis gallery.Axis, sw, sh int) (x, y, w, h int) {
	if axis == gallery.Vertical {
		return SectionPadding, HeaderHeight, CardWidth, sh - HeaderHeight
	}
	return 0, HeaderHeight, sw, CardHeight + PosterFocusPad*2
}

func (rs *ReelScreen) Draw(dst *ebiten.Image) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	b := dst.Bounds()
	rs.screenW, rs.screenH = b.Dx(), b.Dy()
	sw := float64(rs.screenW)

	// Header
	title := rs.source.Name()
	if shelf := rs.currentShelfLocked(); shelf.Name != "" {
		title = shelf.Name
	}
	DrawText(dst, title, SectionPadding, 36, FontSizeTitle, ColorText)
	if n := len(rs.shelves); n > 1 {
		hint := fmt.Sprintf("Shelf %d of %d", rs.shelfIdx+1, n)
		hw, _ := MeasureText(hint, FontSizeSmall)
		DrawText(dst, hint, sw-SectionPadding-hw, 50, FontSizeSmall, ColorTextMuted)
	}

	rx, ry, rw, rh := rs.reel.Bounds()
	switch {
	case rs.err != nil:
		DrawTextCentered(dst, "Error: "+rs.err.Error(), float64(rx+rw/2), float64(ry+rh/2), FontSizeBody, ColorError)
	case rs.loading:
		DrawTextCentered(dst, "Loading...", float64(rx+rw/2), float64(ry+rh/2), FontSizeHeading, ColorTextSecondary)
	case rs.loaded && rs.reel.ItemCount() == 0:
		DrawTextCentered(dst, "Nothing here", float64(rx+rw/2), float64(ry+rh/2), FontSizeHeading, ColorTextMuted)
	default:
		rs.reel.Draw(dst)
	}

	if !rs.hasInfo || rs.loading {
		return
	}
	if rs.reel.axis == gallery.Vertical {
		ix := float64(rx+rw) + SectionPadding*2
		rs.drawInfo(dst, ix, HeaderHeight+float64(PosterFocusPad), sw-ix-SectionPadding)
	} else {
		rs.drawInfo(dst, SectionPadding, float64(ry+rh)+24, sw-SectionPadding*2)
	}
}

func (rs *ReelScreen) drawInfo(dst *ebiten.Image, x, y, width float64) {
	item := rs.info
	DrawText(dst, truncateText(item.Name, width, FontSizeTitle), x, y, FontSizeTitle, ColorText)
	y += FontSizeTitle + 12

	meta := item.Subtitle()
	if count := rs.reel.ItemCount(); count > 0 {
		pos := fmt.Sprintf("%d / %d", rs.reel.LM.SelectedIndex()+1, count)
		if meta != "" {
			meta += "  ·  "
		}
		meta += pos
	}
	DrawText(dst, meta, x, y, FontSizeBody, ColorTextSecondary)
	if item.Rating > 0 {
		mw, _ := MeasureText(meta, FontSizeBody)
		DrawText(dst, fmt.Sprintf("★ %.1f", item.Rating), x+mw+24, y, FontSizeBody, ColorRatingGold)
	}
	y += FontSizeBody + 16

	if item.Overview != "" {
		DrawTextWrapped(dst, item.Overview, x, y, min(width, InfoPanelWidth*1.6), FontSizeBody, 4, ColorTextSecondary)
	}
}
