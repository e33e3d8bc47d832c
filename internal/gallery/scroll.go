package gallery

// ScrollBy scrolls the reel by delta along its axis and returns the distance
// actually consumed. Positive values move toward later items. The reel never
// scrolls the first item past the viewport center going backward, nor the
// last item past it going forward; the excess is dropped.
func (lm *LayoutManager) ScrollBy(delta int) int {
	if lm.adapter == nil || len(lm.children) == 0 || delta == 0 {
		return 0
	}
	if !lm.enter("ScrollBy") {
		return 0
	}
	defer lm.leave()

	consumed := lm.clampScroll(delta)
	lm.state.scrollDelta = consumed
	// Fill first so entering items are placed before the shift.
	lm.fill(consumed)
	lm.offsetChildren(-consumed)
	lm.state.scrollDelta = 0
	lm.onScrolled()
	return consumed
}

func (lm *LayoutManager) clampScroll(delta int) int {
	center := lm.center()
	if delta > 0 {
		last := lm.children[len(lm.children)-1]
		if last.Index == lm.adapter.ItemCount()-1 {
			return max(0, min(delta, last.Frame.Center(lm.axis)-center))
		}
		return delta
	}
	if first := lm.children[0]; first.Index == 0 {
		return min(0, max(delta, first.Frame.Center(lm.axis)-center))
	}
	return delta
}

// ScrollVector returns the unit direction to scroll to bring target into
// view: backward when nothing is attached or target precedes the first
// attached item, forward otherwise.
func (lm *LayoutManager) ScrollVector(target int) (dx, dy int) {
	dir := 1
	if len(lm.children) == 0 || target < lm.first {
		dir = -1
	}
	if lm.axis == Vertical {
		return 0, dir
	}
	return dir, 0
}
