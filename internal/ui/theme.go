package ui

import "image/color"

// Dark theme colors after the Jellyfin palette.
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF} // Jellyfin blue
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorRatingGold    = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// Layout constants
const (
	PosterWidth    = 240
	PosterHeight   = 360
	PosterGap      = 36
	PosterFocusPad = 8

	// CardTitleH is the caption strip under a poster.
	CardTitleH = 34

	SectionPadding = 48
	HeaderHeight   = 110
	InfoPanelWidth = 720

	FontSizeTitle   = 36
	FontSizeHeading = 24
	FontSizeBody    = 18
	FontSizeSmall   = 14

	FocusAnimSpeed = 0.18

	ScreenWidth  = 1920
	ScreenHeight = 1080

	// CardWidth and CardHeight are a card's measured size without the gap.
	CardWidth  = PosterWidth + PosterFocusPad*2
	CardHeight = PosterHeight + PosterFocusPad*2 + CardTitleH
)
