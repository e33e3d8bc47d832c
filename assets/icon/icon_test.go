package icon

import (
	"image"
	"image/color"
	"testing"
)

func TestGenerate(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("%d icons, want 2", len(imgs))
	}
	for i, want := range []int{64, 32} {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("icon %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
	}
	// Center card color at the icon's center column, away from the marker.
	img := imgs[0].(*image.RGBA)
	if got := img.RGBAAt(32, 50); got != centerCard {
		t.Errorf("center card pixel %v, want %v", got, centerCard)
	}
	if got := img.RGBAAt(0, 0); got != background {
		t.Errorf("corner pixel %v, want background", got)
	}
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 0xFF})
	blendPixel(img, 0, 0, color.NRGBA{R: 0xFF, A: 0x80})
	got := img.RGBAAt(0, 0)
	if got.R < 0x7C || got.R > 0x82 || got.G != 0 || got.A != 0xFF {
		t.Errorf("half red over black = %v", got)
	}
	blendPixel(img, 5, 5, color.White) // out of bounds is ignored
}
