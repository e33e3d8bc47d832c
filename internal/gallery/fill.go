package gallery

import "slices"

// firstFill places the pending item at the viewport center and fills
// outward in both directions until the viewport is covered.
func (lm *LayoutManager) firstFill() {
	index := lm.clampIndex(lm.initialIndex)
	start, end := lm.edges()

	v, w, h := lm.obtain(index)
	extent := along(lm.axis, w, h)
	lead := start + (end-start-extent)/2
	crossStart, crossEnd := lm.crossSpan(w, h)
	frame := span(lm.axis, lead, lead+extent, crossStart, crossEnd)
	lm.attach(Child{Index: index, View: v, Frame: frame}, false)
	lm.first, lm.last = index, index

	lm.fillBefore(index-1, frame.Start(lm.axis), start)
	lm.fillAfter(index+1, frame.End(lm.axis), end)

	lm.transformChildren(0)
	lm.onScrolled()
}

// fillBefore prepends items ending at offset while offset is after limit.
func (lm *LayoutManager) fillBefore(index, offset, limit int) {
	for ; index >= 0 && offset > limit; index-- {
		v, w, h := lm.obtain(index)
		crossStart, crossEnd := lm.crossSpan(w, h)
		frame := span(lm.axis, offset-along(lm.axis, w, h), offset, crossStart, crossEnd)
		lm.attach(Child{Index: index, View: v, Frame: frame}, true)
		offset = frame.Start(lm.axis)
		lm.first = index
	}
}

// fillAfter appends items starting at offset while offset is before limit.
func (lm *LayoutManager) fillAfter(index, offset, limit int) {
	count := lm.adapter.ItemCount()
	for ; index < count && offset < limit; index++ {
		v, w, h := lm.obtain(index)
		crossStart, crossEnd := lm.crossSpan(w, h)
		frame := span(lm.axis, offset, offset+along(lm.axis, w, h), crossStart, crossEnd)
		lm.attach(Child{Index: index, View: v, Frame: frame}, false)
		offset = frame.End(lm.axis)
		lm.last = index
	}
}

func (lm *LayoutManager) obtain(index int) (View, int, int) {
	v := lm.adapter.ProvideView(index)
	w, h := v.Measure()
	return v, w, h
}

// fill brings the attached set up to date for a scroll of d that has not
// been applied yet: items leaving the viewport are released, items entering
// it are attached at their post-scroll neighbours.
func (lm *LayoutManager) fill(d int) {
	if lm.adapter.ItemCount() == 0 {
		return
	}
	lm.recycle(d)
	if d >= 0 {
		lm.fillTrailing(d)
	} else {
		lm.fillLeading(d)
	}
	if n := len(lm.children); n > 0 {
		lm.first, lm.last = lm.children[0].Index, lm.children[n-1].Index
	}
	lm.transformChildren(d)
}

// recycle releases items that will be fully outside the viewport once d is
// applied. Attached frames are ordered along the axis, so both loops stop at
// the first item that stays.
func (lm *LayoutManager) recycle(d int) {
	start, end := lm.edges()
	if d >= 0 {
		for len(lm.children) > 0 && lm.children[0].Frame.End(lm.axis)-d < start {
			lm.release(lm.children[0])
			lm.children = slices.Delete(lm.children, 0, 1)
			lm.first++
		}
		return
	}
	for n := len(lm.children); n > 0 && lm.children[n-1].Frame.Start(lm.axis)-d > end; n = len(lm.children) {
		lm.release(lm.children[n-1])
		lm.children = lm.children[:n-1]
		lm.last--
	}
}

// fillTrailing appends items after the last attached one until the trailing
// edge reaches the viewport end shifted by d.
func (lm *LayoutManager) fillTrailing(d int) {
	start, end := lm.edges()
	count := lm.adapter.ItemCount()

	index, offset, anchored := max(lm.first, 0), start+d, false
	if n := len(lm.children); n > 0 {
		last := lm.children[n-1]
		index, offset, anchored = last.Index+1, last.Frame.End(lm.axis), true
	}

	for ; index < count && offset < end+d; index++ {
		v, w, h := lm.obtain(index)
		extent := along(lm.axis, w, h)
		lead := offset
		if !anchored && index == 0 {
			// Nothing to abut: the first item sits at the center.
			lead = start + (end-start-extent)/2 + d
		}
		crossStart, crossEnd := lm.crossSpan(w, h)
		frame := span(lm.axis, lead, lead+extent, crossStart, crossEnd)
		lm.attach(Child{Index: index, View: v, Frame: frame}, false)
		offset = frame.End(lm.axis)
		anchored = true
	}
}

// fillLeading prepends items before the first attached one until the
// leading edge reaches the viewport start shifted by d.
func (lm *LayoutManager) fillLeading(d int) {
	start, end := lm.edges()
	count := lm.adapter.ItemCount()

	index, offset := min(lm.last, count-1), end+d
	if len(lm.children) > 0 {
		first := lm.children[0]
		index, offset = first.Index-1, first.Frame.Start(lm.axis)
	}

	for ; index >= 0 && offset > start+d; index-- {
		v, w, h := lm.obtain(index)
		crossStart, crossEnd := lm.crossSpan(w, h)
		frame := span(lm.axis, offset-along(lm.axis, w, h), offset, crossStart, crossEnd)
		lm.attach(Child{Index: index, View: v, Frame: frame}, true)
		offset = frame.Start(lm.axis)
	}
}

// transformChildren hands every attached view to the transformer with its
// center fraction as it will be once the pending delta d is applied.
func (lm *LayoutManager) transformChildren(d int) {
	if lm.Transformer == nil {
		return
	}
	for _, c := range lm.children {
		lm.Transformer.TransformItem(lm, c.View, lm.centerFraction(c.Frame, d))
	}
}

func (lm *LayoutManager) centerFraction(frame Rect, d int) float64 {
	extent := frame.Extent(lm.axis)
	if extent <= 0 {
		return 0
	}
	dist := frame.Start(lm.axis) + extent/2 - d - lm.center()
	return min(1, max(-1, float64(dist)/float64(extent)))
}
