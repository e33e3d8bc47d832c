package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/jellyreel/internal/library"
)

const (
	detailPosterScale = 1.5
	detailOverviewW   = 1000
)

// DetailScreen shows one item full screen over its backdrop. Left and right
// page through the shelf it was opened from.
type DetailScreen struct {
	item    library.Item
	posters *Posters
	keys    Keymap

	// Step moves the selection on the originating shelf by delta and returns
	// the new item. Nil disables paging.
	Step func(delta int) (library.Item, bool)
}

func NewDetailScreen(item library.Item, posters *Posters, keys Keymap) *DetailScreen {
	if keys == nil {
		keys = DefaultKeymap()
	}
	return &DetailScreen{item: item, posters: posters, keys: keys}
}

func (ds *DetailScreen) Name() string { return "Detail: " + ds.item.Name }

func (ds *DetailScreen) Item() library.Item { return ds.item }

func (ds *DetailScreen) OnEnter() {
	ds.posters.Request(ds.item.Poster)
	ds.posters.Request(ds.item.Backdrop)
}

func (ds *DetailScreen) OnExit() {}

func (ds *DetailScreen) Update() (*ScreenTransition, error) {
	switch ds.keys.Poll() {
	case ActionBack:
		return &ScreenTransition{Type: TransitionPop}, nil
	case ActionPrev:
		ds.step(-1)
	case ActionNext:
		ds.step(1)
	}
	return nil, nil
}

func (ds *DetailScreen) step(delta int) {
	if ds.Step == nil {
		return
	}
	if item, ok := ds.Step(delta); ok && item.ID != ds.item.ID {
		ds.item = item
		ds.OnEnter()
	}
}

func (ds *DetailScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())

	// Backdrop, scaled to cover and dimmed
	if bd := ds.posters.Get(ds.item.Backdrop); bd != nil {
		bb := bd.Bounds()
		scale := max(sw/float64(bb.Dx()), sh/float64(bb.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(bd, op)
		vector.DrawFilledRect(dst, 0, 0, float32(sw), float32(sh), ColorOverlay, false)
	}

	pw, ph := PosterWidth*detailPosterScale, PosterHeight*detailPosterScale
	px, py := float64(SectionPadding), float64(HeaderHeight)
	if img := ds.posters.Get(ds.item.Poster); img != nil {
		ib := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(pw/float64(ib.Dx()), ph/float64(ib.Dy()))
		op.GeoM.Translate(px, py)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	} else {
		vector.DrawFilledRect(dst, float32(px), float32(py), float32(pw), float32(ph), ColorSurface, false)
		DrawTextCentered(dst, ds.item.Name, px+pw/2, py+ph/2, FontSizeBody, ColorTextMuted)
	}

	x := px + pw + SectionPadding
	y := py
	maxW := sw - x - SectionPadding

	DrawText(dst, truncateText(ds.item.Name, maxW, FontSizeTitle), x, y, FontSizeTitle, ColorText)
	y += FontSizeTitle + 16

	if meta := ds.item.Subtitle(); meta != "" {
		DrawText(dst, meta, x, y, FontSizeHeading, ColorTextSecondary)
		y += FontSizeHeading + 12
	}
	if ds.item.Rating > 0 {
		DrawText(dst, fmt.Sprintf("★ %.1f", ds.item.Rating), x, y, FontSizeHeading, ColorRatingGold)
		y += FontSizeHeading + 12
	}
	y += 12
	if ds.item.Overview != "" {
		DrawTextWrapped(dst, ds.item.Overview, x, y, min(maxW, detailOverviewW), FontSizeBody, 12, ColorText)
	}

	hint := "Esc back"
	if ds.Step != nil {
		hint = "← → browse  ·  Esc back"
	}
	DrawText(dst, hint, SectionPadding, sh-SectionPadding, FontSizeSmall, ColorTextMuted)
}
