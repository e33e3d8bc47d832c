package term

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/depeter/jellyreel/internal/gallery"
	"github.com/depeter/jellyreel/internal/library"
)

const (
	cardGapH = 2 // columns between horizontal cards
	cardGapV = 1 // rows between vertical cards
)

// card is a bordered box showing one item's title and year. The gap to the
// next card is part of its measured size.
type card struct {
	axis gallery.Axis
	w, h int

	index    int
	item     library.Item
	frame    gallery.Rect
	selected bool
	scale    float64
}

func (c *card) Measure() (int, int) {
	if c.axis == gallery.Vertical {
		return c.w, c.h + cardGapV
	}
	return c.w + cardGapH, c.h
}

func (c *card) Layout(frame gallery.Rect) { c.frame = frame }
func (c *card) SetSelected(sel bool)      { c.selected = sel }
func (c *card) SetScale(s float64)        { c.scale = s }

// box returns the card's border rectangle on screen.
func (c *card) box(ox, oy int) region {
	x, y := ox+c.frame.Left, oy+c.frame.Top
	if c.axis == gallery.Horizontal {
		x += cardGapH / 2
	}
	return region{x: x, y: y, w: c.w, h: c.h}
}

// dimmed reports whether the card is far enough from center to fade.
func (c *card) dimmed(minScale float64) bool {
	return !c.selected && c.scale < (1+minScale)/2
}

func (c *card) draw(s tcell.Screen, clip region, ox, oy int, tint tcell.Color, minScale float64) {
	b := c.box(ox, oy)

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	body := tcell.StyleDefault
	if tint != tcell.ColorDefault {
		body = body.Background(tint).Foreground(contrast(tint))
	}
	if c.selected {
		border = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		body = body.Bold(true)
	} else if c.dimmed(minScale) {
		border = border.Dim(true)
		body = body.Dim(true)
	}

	frame := [6]string{"┌", "┐", "└", "┘", "─", "│"}
	if c.selected {
		frame = [6]string{"╔", "╗", "╚", "╝", "═", "║"}
	}
	right, bottom := b.x+b.w-1, b.y+b.h-1
	for x := b.x + 1; x < right; x++ {
		put(s, clip, x, b.y, frame[4], border)
		put(s, clip, x, bottom, frame[4], border)
	}
	for y := b.y + 1; y < bottom; y++ {
		put(s, clip, b.x, y, frame[5], border)
		put(s, clip, right, y, frame[5], border)
	}
	put(s, clip, b.x, b.y, frame[0], border)
	put(s, clip, right, b.y, frame[1], border)
	put(s, clip, b.x, bottom, frame[2], border)
	put(s, clip, right, bottom, frame[3], border)

	inner := region{x: b.x + 1, y: b.y + 1, w: b.w - 2, h: b.h - 2}
	if inner.w <= 0 || inner.h <= 0 {
		return
	}
	fill(s, clip, inner, body)

	lines := wrap(c.item.Name, inner.w)
	if year := c.item.Year; year > 0 {
		lines = append(lines, "", strconv.Itoa(year))
	}
	if len(lines) > inner.h {
		lines = lines[:inner.h]
	}
	top := inner.y + (inner.h-len(lines))/2
	for i, line := range lines {
		w := uniseg.StringWidth(line)
		drawText(s, clip, inner.x+(inner.w-w)/2, top+i, inner.w, line, body)
	}
}

// contrast picks black or white text for a background color.
func contrast(bg tcell.Color) tcell.Color {
	r, g, b := bg.RGB()
	if r < 0 {
		return tcell.ColorDefault
	}
	if 299*r+587*g+114*b > 128*1000 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
