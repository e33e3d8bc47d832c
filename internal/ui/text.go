package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), 0)
}

// DrawTextWrapped draws txt word-wrapped to maxWidth, stopping after
// maxLines when it is positive. It returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, maxLines int, clr color.Color) float64 {
	lineHeight := size * 1.4
	lines := wrapWords(txt, maxWidth, func(s string) float64 {
		w, _ := MeasureText(s, size)
		return w
	})
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncateText(lines[maxLines-1]+" …", maxWidth, size)
	}
	for i, line := range lines {
		DrawText(dst, line, x, y+float64(i)*lineHeight, size, clr)
	}
	return float64(len(lines)) * lineHeight
}

// wrapWords splits txt into lines no wider than maxWidth by measure. A single
// word wider than maxWidth gets a line of its own.
func wrapWords(txt string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		test := line + " " + word
		if measure(test) > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = test
		}
	}
	return append(lines, line)
}

// truncateText shortens s with an ellipsis until it fits maxWidth. Cuts
// fall on grapheme cluster boundaries.
func truncateText(s string, maxWidth float64, fontSize float64) string {
	return truncateBy(s, maxWidth, func(c string) float64 {
		w, _ := MeasureText(c, fontSize)
		return w
	})
}

func truncateBy(s string, maxWidth float64, measure func(string) float64) string {
	if measure(s) <= maxWidth {
		return s
	}
	var cuts []int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		cuts = append(cuts, to)
	}
	for i := len(cuts) - 2; i >= 0; i-- {
		candidate := s[:cuts[i]] + "…"
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return "…"
}
