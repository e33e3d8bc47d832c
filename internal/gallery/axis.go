package gallery

import "strings"

// Axis is the single direction a reel scrolls in.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis maps a config value to an Axis. Anything other than "vertical"
// or "v" is horizontal.
func ParseAxis(s string) Axis {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical
	}
	return Horizontal
}

// Insets is padding or margin around a rectangle.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Before returns the inset preceding content on the given axis.
func (in Insets) Before(a Axis) int {
	if a == Vertical {
		return in.Top
	}
	return in.Left
}

// After returns the inset following content on the given axis.
func (in Insets) After(a Axis) int {
	if a == Vertical {
		return in.Bottom
	}
	return in.Right
}

// Rect is an item frame in layout coordinates.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Start is the leading edge on the axis.
func (r Rect) Start(a Axis) int {
	if a == Vertical {
		return r.Top
	}
	return r.Left
}

// End is the trailing edge on the axis.
func (r Rect) End(a Axis) int {
	if a == Vertical {
		return r.Bottom
	}
	return r.Right
}

// Extent is the size on the axis.
func (r Rect) Extent(a Axis) int {
	return r.End(a) - r.Start(a)
}

// Center is the midpoint on the axis, rounded toward the leading edge.
func (r Rect) Center(a Axis) int {
	return r.Start(a) + r.Extent(a)/2
}

// Offset moves the rectangle by d along the axis.
func (r Rect) Offset(a Axis, d int) Rect {
	if a == Vertical {
		r.Top += d
		r.Bottom += d
	} else {
		r.Left += d
		r.Right += d
	}
	return r
}

// span builds a rectangle from axis and cross-axis ranges.
func span(a Axis, start, end, crossStart, crossEnd int) Rect {
	if a == Vertical {
		return Rect{Left: crossStart, Top: start, Right: crossEnd, Bottom: end}
	}
	return Rect{Left: start, Top: crossStart, Right: end, Bottom: crossEnd}
}

// cross returns the perpendicular axis.
func (a Axis) cross() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// along picks the axis component of a width/height pair.
func along(a Axis, w, h int) int {
	if a == Vertical {
		return h
	}
	return w
}
