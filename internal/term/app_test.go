package term

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/library"
)

const tickStep = 16 * time.Millisecond

func testOptions() Options {
	return Options{
		Axis:       gallery.Horizontal,
		MinScale:   0.75,
		CardWidth:  18,
		CardHeight: 9,
		Limit:      200,
	}
}

// newTestApp loads src on a 100x24 simulation screen. Fetches run inline.
func newTestApp(t *testing.T, src library.Source, opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(100, 24)

	a := New(s, src, nil, opts)
	a.dispatch = func(fetch func() any) { a.handleResult(fetch()) }
	a.layout()
	a.dispatch(a.fetchShelves)
	return a, s
}

func settle(t *testing.T, a *App) {
	t.Helper()
	for i := 0; i < 1000 && a.reel.lm.Scrolling(); i++ {
		a.tick(tickStep)
	}
	if a.reel.lm.Scrolling() {
		t.Fatal("reel never came to rest")
	}
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func cell(s tcell.Screen, x, y int) string {
	r, comb, _, _ := s.GetContent(x, y)
	return string(append([]rune{r}, comb...))
}

func TestApp_LoadsFirstShelf(t *testing.T) {
	a, s := newTestApp(t, library.DemoSource{}, testOptions())

	if n := len(a.reel.items); n != 48 {
		t.Fatalf("movies shelf has %d items, want 48", n)
	}
	if !a.hasInfo || a.info.ID != "movies-000" {
		t.Fatalf("info = %q (%v), want movies-000", a.info.ID, a.hasInfo)
	}

	a.draw()
	if got := cell(s, 1, 0); got != "M" {
		t.Errorf("header starts with %q, want M", got)
	}
	// Item 0 spans 40..60 around the center column 50; its border starts
	// one gap column in.
	if got := cell(s, 41, 2); got != "╔" {
		t.Errorf("selected card corner = %q, want ╔", got)
	}
	if got := cell(s, 61, 2); got != "┌" {
		t.Errorf("neighbour card corner = %q, want ┌", got)
	}
}

func TestApp_Keys(t *testing.T) {
	a, _ := newTestApp(t, library.DemoSource{}, testOptions())

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want int
	}{
		{"right", key(tcell.KeyRight), 1},
		{"l", runeKey('l'), 2},
		{"end", key(tcell.KeyEnd), 47},
		{"h", runeKey('h'), 46},
		{"g", runeKey('g'), 0},
		{"G", runeKey('G'), 47},
		{"home", key(tcell.KeyHome), 0},
	}
	for _, tt := range tests {
		a.handleEvent(tt.ev)
		settle(t, a)
		if got := a.reel.lm.SelectedIndex(); got != tt.want {
			t.Fatalf("%s: selected = %d, want %d", tt.name, got, tt.want)
		}
		if want := "movies-0" + twoDigits(tt.want); a.info.ID != want {
			t.Fatalf("%s: info = %q, want %q", tt.name, a.info.ID, want)
		}
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

func TestApp_ShelfSwitch(t *testing.T) {
	a, _ := newTestApp(t, library.DemoSource{}, testOptions())

	a.handleEvent(key(tcell.KeyRight))
	a.handleEvent(key(tcell.KeyRight))
	settle(t, a)

	a.handleEvent(key(tcell.KeyDown))
	if got := a.currentShelf().ID; got != "shows" {
		t.Fatalf("shelf = %q, want shows", got)
	}
	if n, sel := len(a.reel.items), a.reel.lm.SelectedIndex(); n != 21 || sel != 0 {
		t.Fatalf("shows: %d items, selected %d", n, sel)
	}

	a.handleEvent(key(tcell.KeyUp))
	if got, sel := a.currentShelf().ID, a.reel.lm.SelectedIndex(); got != "movies" || sel != 2 {
		t.Fatalf("back on %q at %d, want movies at 2", got, sel)
	}

	// Backtab wraps to the last shelf.
	a.handleEvent(key(tcell.KeyBacktab))
	if got := a.currentShelf().ID; got != "shorts" {
		t.Errorf("shelf = %q, want shorts", got)
	}
}

func TestApp_VerticalKeys(t *testing.T) {
	opts := testOptions()
	opts.Axis = gallery.Vertical
	opts.CardHeight = 5
	a, _ := newTestApp(t, library.DemoSource{}, opts)

	a.handleEvent(key(tcell.KeyDown))
	settle(t, a)
	if sel := a.reel.lm.SelectedIndex(); sel != 1 {
		t.Fatalf("down moved to %d, want 1", sel)
	}
	a.handleEvent(runeKey('l'))
	if got := a.currentShelf().ID; got != "shows" {
		t.Errorf("l switched to %q, want shows", got)
	}
}

func TestApp_Mouse(t *testing.T) {
	a, _ := newTestApp(t, library.DemoSource{}, testOptions())

	a.handleEvent(tcell.NewEventMouse(50, 5, tcell.WheelDown, tcell.ModNone))
	settle(t, a)
	if sel := a.reel.lm.SelectedIndex(); sel != 1 {
		t.Fatalf("wheel moved to %d, want 1", sel)
	}

	tests := []struct {
		name   string
		to     int
		want   int
		center int
	}{
		{"short drag snaps back", 55, 1, 50},
		{"long drag moves on", 35, 2, 50},
	}
	for _, tt := range tests {
		a.handleEvent(tcell.NewEventMouse(50, 5, tcell.Button1, tcell.ModNone))
		if a.reel.lm.ScrollState() != gallery.ScrollDragging {
			t.Fatalf("%s: press did not start a drag", tt.name)
		}
		a.handleEvent(tcell.NewEventMouse(tt.to, 5, tcell.Button1, tcell.ModNone))
		a.handleEvent(tcell.NewEventMouse(tt.to, 5, tcell.ButtonNone, tcell.ModNone))
		settle(t, a)
		if sel := a.reel.lm.SelectedIndex(); sel != tt.want {
			t.Fatalf("%s: selected = %d, want %d", tt.name, sel, tt.want)
		}
		if st := a.reel.lm.ScrollState(); st != gallery.ScrollIdle {
			t.Fatalf("%s: state = %s after release", tt.name, st)
		}
		for _, c := range a.reel.lm.Children() {
			if c.Index == tt.want && c.Frame.Center(gallery.Horizontal) != tt.center {
				t.Errorf("%s: center = %d, want %d", tt.name, c.Frame.Center(gallery.Horizontal), tt.center)
			}
		}
	}
}

func TestApp_DetailAndQuit(t *testing.T) {
	a, s := newTestApp(t, library.DemoSource{}, testOptions())

	a.handleEvent(key(tcell.KeyEnter))
	if !a.showDetail {
		t.Fatal("enter should open details")
	}
	a.draw()
	// Info starts under the reel: title at row 12, overview at row 15.
	var row strings.Builder
	for x := 1; x < 40; x++ {
		row.WriteString(cell(s, x, 15))
	}
	if !strings.HasPrefix(row.String(), "Entry 1 of the Movies shelf.") {
		t.Errorf("overview row = %q", row.String())
	}

	a.handleEvent(key(tcell.KeyEscape))
	if a.showDetail || a.quit {
		t.Fatal("escape should close details first")
	}
	a.handleEvent(key(tcell.KeyEscape))
	if !a.quit {
		t.Error("escape should quit")
	}
}

type brokenSource struct{ library.DemoSource }

func (brokenSource) Items(library.Shelf, int) ([]library.Item, error) {
	return nil, errors.New("server went away")
}

func TestApp_LoadError(t *testing.T) {
	a, s := newTestApp(t, brokenSource{}, testOptions())
	if a.err == nil || a.loading {
		t.Fatalf("err = %v, loading = %v", a.err, a.loading)
	}
	a.draw()
	var row strings.Builder
	for x := 0; x < 100; x++ {
		row.WriteString(cell(s, x, 6))
	}
	if !strings.Contains(row.String(), "error: server went away") {
		t.Errorf("error row = %q", row.String())
	}
}

func TestApp_Tint(t *testing.T) {
	a, _ := newTestApp(t, library.DemoSource{}, testOptions())
	red := tcell.NewRGBColor(200, 30, 30)
	a.handleEvent(tcell.NewEventInterrupt(tintLoaded{src: "poster.png", color: red}))
	if got := a.reel.tints["poster.png"]; got != red {
		t.Errorf("tint = %v, want %v", got, red)
	}
	// Without an image cache nothing is requested.
	a.requestTint(library.Item{Poster: "other.png"})
	if a.requested["other.png"] {
		t.Error("tint requested without an image cache")
	}
}
