package gallery

// View is an item view owned by the host. The engine measures it, positions
// it and flags it as selected; drawing stays with the host.
type View interface {
	// Measure returns the view's size including any decoration the host
	// draws around it. Frames of neighbouring items touch edge to edge.
	Measure() (width, height int)
	// Layout positions the view at frame.
	Layout(frame Rect)
	// SetSelected flags the view as the centered item.
	SetSelected(selected bool)
}

// Margined is implemented by views with external margins. The smooth
// scroller includes them when centering a target.
type Margined interface {
	Margins() Insets
}

// Adapter supplies views for item indices. ReleaseView is called once for
// every view the engine no longer shows.
type Adapter interface {
	ItemCount() int
	ProvideView(index int) View
	ReleaseView(v View)
}

// Viewport is the visible area of the reel.
type Viewport interface {
	Size() (width, height int)
	Padding() Insets
}

// Child is an attached item.
type Child struct {
	Index int
	View  View
	Frame Rect
}

// SnapFinder returns the position in children of the item that should be
// considered centered, or -1 for none. center is the viewport center on the
// scroll axis.
type SnapFinder func(children []Child, center int, axis Axis) int

// CenterSnap picks the child whose center is nearest to center. Ties go to
// the earlier child.
func CenterSnap(children []Child, center int, axis Axis) int {
	best, bestDist := -1, 0
	for i, c := range children {
		d := c.Frame.Center(axis) - center
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
