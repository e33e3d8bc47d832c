package gallery

// ScrollState is the host's scroll phase.
type ScrollState int

const (
	ScrollIdle ScrollState = iota
	// ScrollDragging means the user is moving the reel directly.
	ScrollDragging
	// ScrollSettling means the reel moves on its own: a fling or an
	// animated scroll.
	ScrollSettling
)

func (s ScrollState) String() string {
	switch s {
	case ScrollDragging:
		return "dragging"
	case ScrollSettling:
		return "settling"
	default:
		return "idle"
	}
}

type scrollListener struct {
	state ScrollState
	// callbackOnIdle is set when a selection change was held back while
	// the reel was moving.
	callbackOnIdle bool
	lastFired      int
}

// ScrollState returns the current scroll phase.
func (lm *LayoutManager) ScrollState() ScrollState {
	return lm.listener.state
}

// SetScrollState records a scroll phase change. Dragging cancels a running
// smooth scroll. Reaching idle re-checks the centered item and delivers any
// notification held back during the motion.
func (lm *LayoutManager) SetScrollState(state ScrollState) {
	l := lm.listener
	l.state = state
	if state == ScrollDragging {
		lm.stopSmoothScroll()
	}
	if state != ScrollIdle {
		return
	}
	c, ok := lm.findSnap()
	if !ok {
		return
	}
	if c.Index != lm.selected {
		lm.selectChild(c)
		l.callbackOnIdle = false
		lm.notify(c)
		return
	}
	if l.callbackOnIdle {
		l.callbackOnIdle = false
		if !lm.CallbackInFling && c.Index != l.lastFired {
			lm.notify(c)
		}
	}
}

// onScrolled runs after every position change.
func (lm *LayoutManager) onScrolled() {
	c, ok := lm.findSnap()
	if !ok || c.Index == lm.selected {
		return
	}
	lm.selectChild(c)
	if !lm.CallbackInFling && lm.listener.state != ScrollIdle {
		lm.listener.callbackOnIdle = true
		return
	}
	lm.notify(c)
}

func (lm *LayoutManager) findSnap() (Child, bool) {
	if lm.viewport == nil || len(lm.children) == 0 {
		return Child{}, false
	}
	snap := lm.Snap
	if snap == nil {
		snap = CenterSnap
	}
	i := snap(lm.children, lm.center(), lm.axis)
	if i < 0 || i >= len(lm.children) {
		return Child{}, false
	}
	return lm.children[i], true
}

func (lm *LayoutManager) selectChild(c Child) {
	if v := lm.SelectedView(); v != nil {
		v.SetSelected(false)
	}
	c.View.SetSelected(true)
	lm.selected = c.Index
}

func (lm *LayoutManager) notify(c Child) {
	lm.listener.lastFired = c.Index
	if lm.OnItemSelected != nil {
		lm.OnItemSelected(c.Index, c.View)
	}
}
