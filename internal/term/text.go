package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// region is a clip rectangle in cells.
type region struct {
	x, y, w, h int
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// put writes one grapheme cluster if (x, y) lies inside clip.
func put(s tcell.Screen, clip region, x, y int, cluster string, style tcell.Style) {
	if !clip.contains(x, y) {
		return
	}
	runes := []rune(cluster)
	s.SetContent(x, y, runes[0], runes[1:], style)
}

// drawText writes text from (x, y) using at most maxW cells and returns the
// width used. Wide clusters that would overflow are dropped.
func drawText(s tcell.Screen, clip region, x, y, maxW int, text string, style tcell.Style) int {
	used := 0
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if w == 0 {
			continue
		}
		if used+w > maxW {
			break
		}
		put(s, clip, x+used, y, cluster, style)
		used += w
	}
	return used
}

// truncate shortens s with an ellipsis to fit maxW cells.
func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxW {
		return s
	}
	var b strings.Builder
	used := 0
	state := -1
	for s != "" {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > maxW-1 {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + "…"
}

// wrap splits text into lines of at most maxW cells on word boundaries.
func wrap(text string, maxW int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = truncate(word, maxW)
		case uniseg.StringWidth(line)+1+uniseg.StringWidth(word) <= maxW:
			line += " " + word
		default:
			lines = append(lines, line)
			line = truncate(word, maxW)
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// fill paints a rectangle with spaces in style.
func fill(s tcell.Screen, clip region, r region, style tcell.Style) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			put(s, clip, x, y, " ", style)
		}
	}
}
