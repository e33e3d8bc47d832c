package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/library"
)

// reel lays cards out in a screen region. It is the viewport and adapter of
// its layout manager.
type reel struct {
	lm       *gallery.LayoutManager
	axis     gallery.Axis
	minScale float64

	cardW, cardH int
	area         region
	items        []library.Item
	attached     bool
	free         []*card

	// tints maps poster sources to their average color.
	tints map[string]tcell.Color
	// want is called for each item that gets a card.
	want func(item library.Item)
}

func newReel(axis gallery.Axis, cardW, cardH int, minScale float64) *reel {
	r := &reel{
		lm:       gallery.New(axis),
		axis:     axis,
		minScale: minScale,
		cardW:    cardW,
		cardH:    cardH,
		tints:    make(map[string]tcell.Color),
	}
	if minScale > 0 && minScale < 1 {
		r.lm.Transformer = gallery.ScaleTransformer{MinScale: minScale}
	}
	return r
}

func (r *reel) Size() (int, int)        { return r.area.w, r.area.h }
func (r *reel) Padding() gallery.Insets { return gallery.Insets{} }
func (r *reel) ItemCount() int          { return len(r.items) }

func (r *reel) ProvideView(index int) gallery.View {
	var c *card
	if n := len(r.free); n > 0 {
		c, r.free = r.free[n-1], r.free[:n-1]
	} else {
		c = &card{axis: r.axis, w: r.cardW, h: r.cardH}
	}
	c.index = index
	c.item = r.items[index]
	c.selected = false
	c.scale = 1
	if r.want != nil {
		r.want(c.item)
	}
	return c
}

func (r *reel) ReleaseView(v gallery.View) {
	if c, ok := v.(*card); ok {
		r.free = append(r.free, c)
	}
}

func (r *reel) setArea(area region) {
	resized := area.w != r.area.w || area.h != r.area.h
	r.area = area
	if resized && r.attached {
		r.lm.LayoutChildren(gallery.LayoutPass{StructureChanged: true})
	}
}

func (r *reel) setItems(items []library.Item, initial int) error {
	r.items = items
	if !r.attached {
		if err := r.lm.Attach(r, r, initial); err != nil {
			return err
		}
		r.attached = true
		return nil
	}
	r.lm.ScrollToIndex(initial)
	return nil
}

func (r *reel) selected() (int, library.Item, bool) {
	i := r.lm.SelectedIndex()
	if i < 0 || i >= len(r.items) {
		return -1, library.Item{}, false
	}
	return i, r.items[i], true
}

// step moves delta items from the running scroll target, or from the
// selection when idle.
func (r *reel) step(delta int) {
	base := r.lm.SelectedIndex()
	if s := r.lm.Scroller(); s != nil {
		base = s.Target()
	}
	if base >= 0 {
		r.lm.SmoothScrollToIndex(base + delta)
	}
}

// along returns the scroll-axis coordinate of a screen cell.
func (r *reel) along(x, y int) int {
	if r.axis == gallery.Vertical {
		return y
	}
	return x
}

func (r *reel) draw(s tcell.Screen) {
	for _, c := range r.lm.Children() {
		cd, ok := c.View.(*card)
		if !ok {
			continue
		}
		tint, ok := r.tints[cd.item.Poster]
		if !ok {
			tint = tcell.ColorDefault
		}
		cd.draw(s, r.area, r.area.x, r.area.y, tint, r.minScale)
	}
}
