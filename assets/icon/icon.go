package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	sideCard   = color.NRGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xB0}
	centerCard = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	highlight  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE0}
	glow       = color.NRGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a reel of three poster cards, the centered one larger and
// outlined.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, background)

	// Side cards sit lower and smaller, like items scaled away from center.
	cardW, cardH := s*0.24, s*0.38
	fillRoundedRect(img, s*0.04, s*0.31, cardW, cardH, s*0.04, sideCard)
	fillRoundedRect(img, s*0.72, s*0.31, cardW, cardH, s*0.04, sideCard)

	cx, cw, ch := s*0.28, s*0.44, s*0.64
	cy := (s - ch) / 2
	fillRoundedRect(img, cx-s*0.03, cy-s*0.03, cw+s*0.06, ch+s*0.06, s*0.07, glow)
	fillRoundedRect(img, cx, cy, cw, ch, s*0.05, centerCard)

	// Play marker on the centered card.
	drawTriangle(img, cx+cw*0.36, cy+ch*0.34, ch*0.32, highlight)

	// Selection bar under the reel.
	fillRoundedRect(img, s*0.38, s*0.90, s*0.24, s*0.035, s*0.017, centerCard)
	return img
}

// drawTriangle fills a right-pointing triangle with its left edge at x.
func drawTriangle(img *image.RGBA, x, y, h float64, c color.Color) {
	w := h * 0.87
	for py := int(y); py <= int(y+h); py++ {
		t := 1 - math.Abs((float64(py)-y)/h*2-1)
		for px := int(x); px <= int(x+w*t); px++ {
			blendPixel(img, px, py, c)
		}
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	r := image.Rect(x0, y0, x0+w, y0+h).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

// fillRoundedRect fills a rectangle whose corners are quarter circles of
// radius r.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := max(int(yf), bounds.Min.Y); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := max(int(xf), bounds.Min.X); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			// Distance from the nearest inner corner, zero along the edges.
			dx := math.Max(0, math.Max(xf+r-float64(x), float64(x)-(xf+wf-r)))
			dy := math.Max(0, math.Max(yf+r-float64(y), float64(y)-(yf+hf-r)))
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// RGBA values are alpha-premultiplied.
	existing := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	mix := func(src uint32, dst uint8) uint8 {
		return uint8((src + uint32(dst)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(r0, existing.R),
		G: mix(g0, existing.G),
		B: mix(b0, existing.B),
		A: 0xFF,
	})
}
