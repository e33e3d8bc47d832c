package cache

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Fit scales img down to fit within maxW x maxH, keeping its aspect ratio.
// Images that already fit, or a zero bound, are returned unchanged.
func Fit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxW <= 0 || maxH <= 0 || w == 0 || h == 0 || (w <= maxW && h <= maxH) {
		return img
	}
	nw, nh := maxW, h*maxW/w
	if nh > maxH {
		nw, nh = w*maxH/h, maxH
	}
	dst := image.NewRGBA(image.Rect(0, 0, max(1, nw), max(1, nh)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// AverageColor approximates the mean color of img from a 16x16 thumbnail.
func AverageColor(img image.Image) color.RGBA {
	const side = 16
	thumb := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, img.Bounds(), draw.Src, nil)

	var r, g, b, a int
	for y := range side {
		for x := range side {
			c := thumb.RGBAAt(x, y)
			r, g, b, a = r+int(c.R), g+int(c.G), b+int(c.B), a+int(c.A)
		}
	}
	n := side * side
	return color.RGBA{uint8(r / n), uint8(g / n), uint8(b / n), uint8(a / n)}
}
