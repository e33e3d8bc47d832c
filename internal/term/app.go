// Package term shows a library reel in a terminal.
package term

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/depeter/jellyreel/internal/cache"
	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/library"
)

const frameInterval = 16 * time.Millisecond

// Options configures an App.
type Options struct {
	Axis            gallery.Axis
	CallbackInFling bool
	MinScale        float64
	DPI             float64
	CardWidth       int
	CardHeight      int
	Limit           int
	Shelf           string
	InitialIndex    int
}

type action int

const (
	actNone action = iota
	actPrev
	actNext
	actFirst
	actLast
	actShelfPrev
	actShelfNext
	actToggleDetail
	actBack
	actQuit
)

// Background results are posted to the event loop as interrupt events.
type (
	shelvesLoaded struct {
		shelves []library.Shelf
		err     error
	}
	itemsLoaded struct {
		shelf library.Shelf
		items []library.Item
		err   error
	}
	tintLoaded struct {
		src   string
		color tcell.Color
	}
)

// App is the terminal reel browser.
type App struct {
	screen tcell.Screen
	source library.Source
	images *cache.ImageCache
	opts   Options
	reel   *reel

	// Clicker, when set, ticks on every reported selection.
	Clicker *Clicker

	shelves   []library.Shelf
	shelfIdx  int
	items     map[string][]library.Item
	positions map[string]int
	requested map[string]bool
	loading   bool
	err       error

	info       library.Item
	hasInfo    bool
	showDetail bool

	dragging bool
	dragLast int

	// dispatch runs a fetch off the event loop and delivers its result.
	dispatch func(fetch func() any)

	quit bool
}

// New creates an App drawing on an initialized screen. images may be nil,
// in which case cards are not tinted.
func New(screen tcell.Screen, source library.Source, images *cache.ImageCache, opts Options) *App {
	a := &App{
		screen:    screen,
		source:    source,
		images:    images,
		opts:      opts,
		reel:      newReel(opts.Axis, opts.CardWidth, opts.CardHeight, opts.MinScale),
		items:     make(map[string][]library.Item),
		positions: make(map[string]int),
		requested: make(map[string]bool),
	}
	a.reel.lm.CallbackInFling = opts.CallbackInFling
	a.reel.lm.DPI = opts.DPI
	a.reel.lm.OnItemSelected = func(index int, _ gallery.View) {
		if index < len(a.reel.items) {
			a.info = a.reel.items[index]
			a.hasInfo = true
			a.Clicker.Play()
		}
	}
	a.reel.want = a.requestTint
	a.dispatch = a.post
	return a
}

// Run processes events until the user quits. The caller owns the screen and
// finalizes it afterwards.
func (a *App) Run() error {
	a.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	a.screen.HideCursor()
	a.layout()

	a.loading = true
	a.dispatch(a.fetchShelves)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	a.draw()
	for !a.quit {
		select {
		case ev := <-events:
			a.handleEvent(ev)
		case now := <-ticker.C:
			a.tick(now.Sub(last))
			last = now
		}
		a.draw()
	}
	return nil
}

// post runs fetch on a goroutine and posts its result to the event loop.
func (a *App) post(fetch func() any) {
	go func() {
		if err := a.screen.PostEvent(tcell.NewEventInterrupt(fetch())); err != nil {
			log.Printf("post event: %v", err)
		}
	}()
}

func (a *App) fetchShelves() any {
	shelves, err := a.source.Shelves()
	return shelvesLoaded{shelves: shelves, err: err}
}

func (a *App) fetchItems(shelf library.Shelf) func() any {
	return func() any {
		items, err := a.source.Items(shelf, a.opts.Limit)
		return itemsLoaded{shelf: shelf, items: items, err: err}
	}
}

// requestTint loads an item's poster in the background and posts its
// average color.
func (a *App) requestTint(item library.Item) {
	src := item.Poster
	if a.images == nil || src == "" || a.requested[src] {
		return
	}
	a.requested[src] = true
	a.images.LoadAsync(src, func(img image.Image) {
		c := cache.AverageColor(img)
		tint := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		if err := a.screen.PostEvent(tcell.NewEventInterrupt(tintLoaded{src: src, color: tint})); err != nil {
			log.Printf("post event: %v", err)
		}
	})
}

func (a *App) tick(dt time.Duration) {
	a.reel.lm.Tick(dt)
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	case *tcell.EventKey:
		a.apply(a.keyAction(ev))
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventInterrupt:
		a.handleResult(ev.Data())
	}
}

func (a *App) handleResult(data any) {
	switch r := data.(type) {
	case shelvesLoaded:
		a.loading = false
		if r.err != nil {
			log.Printf("Failed to load shelves from %s: %v", a.source.Name(), r.err)
			a.err = r.err
			return
		}
		a.shelves = r.shelves
		if len(r.shelves) == 0 {
			return
		}
		a.shelfIdx = library.FindShelf(r.shelves, a.opts.Shelf)
		a.positions[a.currentShelf().ID] = a.opts.InitialIndex
		a.showShelf()
	case itemsLoaded:
		if r.err != nil {
			log.Printf("Failed to load items for %s: %v", r.shelf.Name, r.err)
			if r.shelf.ID == a.currentShelf().ID {
				a.loading = false
				a.err = r.err
			}
			return
		}
		a.items[r.shelf.ID] = r.items
		if r.shelf.ID == a.currentShelf().ID {
			a.loading = false
			a.showShelf()
		}
	case tintLoaded:
		a.reel.tints[r.src] = r.color
	}
}

func (a *App) currentShelf() library.Shelf {
	if a.shelfIdx < len(a.shelves) {
		return a.shelves[a.shelfIdx]
	}
	return library.Shelf{}
}

// showShelf puts the current shelf on the reel, fetching it when needed.
func (a *App) showShelf() {
	shelf := a.currentShelf()
	a.hasInfo = false
	a.err = nil
	items, ok := a.items[shelf.ID]
	if !ok {
		a.loading = true
		if err := a.reel.setItems(nil, 0); err != nil {
			log.Printf("reel: %v", err)
		}
		a.dispatch(a.fetchItems(shelf))
		return
	}
	if err := a.reel.setItems(items, a.positions[shelf.ID]); err != nil {
		log.Printf("reel: %v", err)
	}
}

func (a *App) switchShelf(delta int) {
	n := len(a.shelves)
	if n < 2 || a.loading {
		return
	}
	if i := a.reel.lm.SelectedIndex(); i >= 0 {
		a.positions[a.currentShelf().ID] = i
	}
	a.shelfIdx = (a.shelfIdx + delta + n) % n
	a.showShelf()
}

func (a *App) keyAction(ev *tcell.EventKey) action {
	vertical := a.opts.Axis == gallery.Vertical
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyEscape:
		return actBack
	case tcell.KeyEnter:
		return actToggleDetail
	case tcell.KeyHome:
		return actFirst
	case tcell.KeyEnd:
		return actLast
	case tcell.KeyTab:
		return actShelfNext
	case tcell.KeyBacktab:
		return actShelfPrev
	case tcell.KeyLeft:
		return pick(vertical, actShelfPrev, actPrev)
	case tcell.KeyRight:
		return pick(vertical, actShelfNext, actNext)
	case tcell.KeyUp:
		return pick(vertical, actPrev, actShelfPrev)
	case tcell.KeyDown:
		return pick(vertical, actNext, actShelfNext)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return actQuit
		case 'h':
			return pick(vertical, actShelfPrev, actPrev)
		case 'l':
			return pick(vertical, actShelfNext, actNext)
		case 'k':
			return pick(vertical, actPrev, actShelfPrev)
		case 'j':
			return pick(vertical, actNext, actShelfNext)
		case 'g':
			return actFirst
		case 'G':
			return actLast
		case ' ':
			return actToggleDetail
		}
	}
	return actNone
}

func pick(cond bool, yes, no action) action {
	if cond {
		return yes
	}
	return no
}

func (a *App) apply(act action) {
	switch act {
	case actPrev:
		a.reel.step(-1)
	case actNext:
		a.reel.step(1)
	case actFirst:
		a.reel.lm.SmoothScrollToIndex(0)
	case actLast:
		a.reel.lm.SmoothScrollToIndex(len(a.reel.items) - 1)
	case actShelfPrev:
		a.switchShelf(-1)
	case actShelfNext:
		a.switchShelf(1)
	case actToggleDetail:
		a.showDetail = !a.showDetail
	case actBack:
		if a.showDetail {
			a.showDetail = false
		} else {
			a.quit = true
		}
	case actQuit:
		a.quit = true
	}
}

// handleMouse scrolls on the wheel and drags the reel with the primary
// button. Releasing a drag snaps the nearest item to center.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	pos := a.reel.along(x, y)

	switch {
	case btn&(tcell.WheelUp|tcell.WheelLeft) != 0:
		a.reel.step(-1)
	case btn&(tcell.WheelDown|tcell.WheelRight) != 0:
		a.reel.step(1)
	case btn&tcell.Button1 != 0:
		if !a.dragging {
			if !a.reel.area.contains(x, y) || len(a.reel.items) == 0 {
				return
			}
			a.dragging = true
			a.dragLast = pos
			a.reel.lm.SetScrollState(gallery.ScrollDragging)
			return
		}
		if d := a.dragLast - pos; d != 0 {
			a.reel.lm.ScrollBy(d)
			a.dragLast = pos
		}
	default:
		if a.dragging {
			a.dragging = false
			a.reel.lm.Settle()
		}
	}
}

// layout sizes the reel for the current screen.
func (a *App) layout() {
	w, h := a.screen.Size()
	if a.opts.Axis == gallery.Vertical {
		a.reel.setArea(region{x: 1, y: 2, w: a.opts.CardWidth, h: max(0, h-3)})
		return
	}
	a.reel.setArea(region{x: 0, y: 2, w: w, h: a.opts.CardHeight})
}

var (
	styleTitle = tcell.StyleDefault.Bold(true)
	styleMuted = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGold  = tcell.StyleDefault.Foreground(tcell.ColorGold)
)

func (a *App) draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	full := region{w: w, h: h}

	header := a.source.Name()
	if shelf := a.currentShelf(); shelf.Name != "" {
		header = shelf.Name
	}
	drawText(s, full, 1, 0, w-2, header, styleTitle)
	if n := len(a.shelves); n > 1 {
		hint := fmt.Sprintf("shelf %d/%d", a.shelfIdx+1, n)
		drawText(s, full, w-1-len(hint), 0, len(hint), hint, styleMuted)
	}

	area := a.reel.area
	cx, cy := area.x+area.w/2, area.y+area.h/2
	switch {
	case a.err != nil:
		msg := truncate("error: "+a.err.Error(), w-2)
		drawText(s, full, max(0, cx-len(msg)/2), cy, w, msg, styleError)
	case a.loading:
		drawText(s, full, max(0, cx-5), cy, 10, "loading...", styleMuted)
	case len(a.reel.items) == 0 && len(a.shelves) > 0:
		drawText(s, full, max(0, cx-6), cy, 12, "nothing here", styleMuted)
	default:
		a.reel.draw(s)
	}

	if a.hasInfo && !a.loading {
		if a.opts.Axis == gallery.Vertical {
			x := area.x + area.w + 2
			a.drawInfo(full, x, area.y, w-x-1, h-area.y-2)
		} else {
			y := area.y + area.h + 1
			a.drawInfo(full, 1, y, w-2, h-y-2)
		}
	}

	help := "←/→ move  ↑/↓ shelf  enter details  q quit"
	if a.opts.Axis == gallery.Vertical {
		help = "↑/↓ move  ←/→ shelf  enter details  q quit"
	}
	drawText(s, full, 1, h-1, w-2, help, styleMuted)
	s.Show()
}

func (a *App) drawInfo(clip region, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s := a.screen
	item := a.info
	drawText(s, clip, x, y, w, truncate(item.Name, w), styleTitle)
	meta := item.Subtitle()
	if n := len(a.reel.items); n > 0 {
		pos := fmt.Sprintf("%d/%d", a.reel.lm.SelectedIndex()+1, n)
		if meta != "" {
			meta += "  ·  "
		}
		meta += pos
	}
	used := drawText(s, clip, x, y+1, w, meta, styleMuted)
	if item.Rating > 0 {
		drawText(s, clip, x+used+2, y+1, w-used-2, fmt.Sprintf("★ %.1f", item.Rating), styleGold)
	}
	if !a.showDetail {
		return
	}
	for i, line := range wrap(item.Overview, w) {
		if i >= h-3 {
			break
		}
		drawText(s, clip, x, y+3+i, w, line, tcell.StyleDefault)
	}
}
