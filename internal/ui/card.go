package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/library"
)

// PosterCard is the reel view for one item: a poster with its title below.
// The gap to the next card is part of its measured size.
type PosterCard struct {
	axis  gallery.Axis
	index int
	item  library.Item

	frame    gallery.Rect
	selected bool
	scale    float64
	// focus eases toward 1 while the card is selected.
	focus float64
}

func newPosterCard(axis gallery.Axis) *PosterCard {
	return &PosterCard{axis: axis, scale: 1}
}

// bind reuses the card for another item.
func (c *PosterCard) bind(index int, item library.Item) {
	c.index = index
	c.item = item
	c.selected = false
	c.scale = 1
	c.focus = 0
}

func (c *PosterCard) Measure() (int, int) {
	if c.axis == gallery.Vertical {
		return CardWidth, CardHeight + PosterGap
	}
	return CardWidth + PosterGap, CardHeight
}

func (c *PosterCard) Layout(frame gallery.Rect) { c.frame = frame }

func (c *PosterCard) SetSelected(selected bool) { c.selected = selected }

func (c *PosterCard) SetScale(s float64) { c.scale = s }

func (c *PosterCard) Index() int { return c.index }

func (c *PosterCard) Item() library.Item { return c.item }

func (c *PosterCard) Selected() bool { return c.selected }

func (c *PosterCard) animate() {
	target := 0.0
	if c.selected {
		target = 1
	}
	c.focus = Lerp(c.focus, target, FocusAnimSpeed)
}

// posterRect returns the scaled poster area in screen coordinates for a
// reel whose viewport origin is (ox, oy).
func (c *PosterCard) posterRect(ox, oy float64) (x, y, w, h float64) {
	left := ox + float64(c.frame.Left)
	top := oy + float64(c.frame.Top)
	if c.axis == gallery.Vertical {
		top += PosterGap / 2
	} else {
		left += PosterGap / 2
	}
	w = PosterWidth * c.scale
	h = PosterHeight * c.scale
	cx := left + CardWidth/2
	cy := top + PosterFocusPad + PosterHeight/2
	return cx - w/2, cy - h/2, w, h
}

// contains reports whether the screen point lies on the card's poster.
func (c *PosterCard) contains(px, py int, ox, oy float64) bool {
	x, y, w, h := c.posterRect(ox, oy)
	return PointInRect(px, py, x, y, w, h)
}

func (c *PosterCard) Draw(dst *ebiten.Image, ox, oy float64, posters *Posters) {
	x, y, w, h := c.posterRect(ox, oy)

	// Focus highlight
	if c.focus > 0.02 {
		pad := PosterFocusPad * c.focus
		clr := color.NRGBA{R: ColorFocusBorder.R, G: ColorFocusBorder.G, B: ColorFocusBorder.B, A: uint8(255 * c.focus)}
		vector.DrawFilledRect(dst,
			float32(x-pad), float32(y-pad),
			float32(w+pad*2), float32(h+pad*2),
			clr, false)
	}

	if img := posters.Get(c.item.Poster); img != nil {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	} else {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorSurface, false)
		DrawTextWrapped(dst, c.item.Name, x+12, y+h/2-FontSizeBody, w-24, FontSizeBody, 2, ColorTextMuted)
	}

	titleColor := ColorTextSecondary
	if c.selected {
		titleColor = ColorText
	}
	title := truncateText(c.item.Name, w, FontSizeSmall)
	DrawText(dst, title, x, y+h+PosterFocusPad+4, FontSizeSmall, titleColor)
}

var (
	_ gallery.View     = (*PosterCard)(nil)
	_ gallery.Scalable = (*PosterCard)(nil)
)
