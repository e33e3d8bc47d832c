// Package gallery lays out a one-dimensional, center-snapping reel of item
// views. The host supplies views through an Adapter and the visible area
// through a Viewport; the engine decides which items are attached, where
// they sit, and which one is selected.
//
// A LayoutManager is not safe for concurrent use. Every method must be
// called from the host's UI goroutine.
package gallery

import (
	"errors"
	"log"
	"slices"
)

var (
	ErrNilViewport = errors.New("gallery: attach viewport must not be nil")
	ErrNilAdapter  = errors.New("gallery: attach adapter must not be nil")
)

// LayoutPass describes a layout request from the host.
type LayoutPass struct {
	// PreLayout marks a transient measurement pass. It never changes state.
	PreLayout bool
	// StructureChanged forces a full rebuild around the pending index.
	StructureChanged bool
}

// VisibleRange is the contiguous range of attached item indices.
type VisibleRange struct {
	First, Last int
}

// Empty reports whether nothing is attached.
func (r VisibleRange) Empty() bool {
	return r.First < 0 || r.Last < r.First
}

// Contains reports whether index is attached.
func (r VisibleRange) Contains(index int) bool {
	return !r.Empty() && index >= r.First && index <= r.Last
}

type layoutState struct {
	frames *FrameCache
	// scrollDelta is the delta being filled but not yet applied to children.
	scrollDelta int
}

// LayoutManager positions reel items along one axis and tracks the centered
// item.
type LayoutManager struct {
	// OnItemSelected is called when the centered item changes, subject to
	// CallbackInFling.
	OnItemSelected func(index int, v View)
	// Transformer, when set, is applied to every attached view after each
	// fill with the view's distance from center in [-1, 1].
	Transformer ItemTransformer
	// CallbackInFling fires OnItemSelected while the reel is still moving.
	// When false, notifications wait until the scroll state is idle.
	CallbackInFling bool
	// Snap overrides the centered-item search. Defaults to CenterSnap.
	Snap SnapFinder
	// DPI scales smooth scroll speed. Zero means DefaultDPI.
	DPI float64

	axis     Axis
	viewport Viewport
	adapter  Adapter
	children []Child
	state    layoutState

	first, last  int
	initialIndex int
	selected     int

	listener *scrollListener
	scroller *SmoothScroller

	busy   bool
	logger *log.Logger
}

// New returns a LayoutManager for the given axis.
func New(axis Axis) *LayoutManager {
	return &LayoutManager{
		axis:     axis,
		state:    layoutState{frames: NewFrameCache()},
		selected: -1,
		listener: &scrollListener{lastFired: -1},
		logger:   log.Default(),
	}
}

// SetLogger replaces the logger used for layout warnings.
func (lm *LayoutManager) SetLogger(l *log.Logger) {
	if l != nil {
		lm.logger = l
	}
}

// Attach binds the manager to a viewport and adapter and lays out the reel
// centered on initialIndex. A negative initialIndex selects the first item.
func (lm *LayoutManager) Attach(vp Viewport, adapter Adapter, initialIndex int) error {
	if vp == nil {
		return ErrNilViewport
	}
	if adapter == nil {
		return ErrNilAdapter
	}
	if lm.adapter != nil {
		lm.Detach()
	}
	lm.viewport = vp
	lm.adapter = adapter
	lm.initialIndex = max(0, initialIndex)
	lm.listener = &scrollListener{lastFired: -1}
	lm.LayoutChildren(LayoutPass{StructureChanged: true})
	return nil
}

// Detach releases every attached view and unbinds the viewport.
func (lm *LayoutManager) Detach() {
	if lm.adapter == nil {
		return
	}
	lm.stopSmoothScroll()
	lm.reset()
	lm.releaseAll()
	lm.viewport = nil
	lm.adapter = nil
}

// LayoutChildren handles a layout request from the host. An empty adapter
// resets the reel; a structural change or an empty attached set triggers a
// full rebuild centered on the pending index.
func (lm *LayoutManager) LayoutChildren(pass LayoutPass) {
	if lm.adapter == nil || lm.viewport == nil {
		return
	}
	if !lm.enter("LayoutChildren") {
		return
	}
	defer lm.leave()

	if lm.adapter.ItemCount() == 0 {
		lm.stopSmoothScroll()
		lm.reset()
		lm.releaseAll()
		return
	}
	if pass.PreLayout {
		return
	}
	if len(lm.children) > 0 && !pass.StructureChanged {
		return
	}
	lm.reset()
	lm.releaseAll()
	lm.firstFill()
}

// ScrollToIndex rebuilds the reel centered on index without animating.
func (lm *LayoutManager) ScrollToIndex(index int) {
	if lm.adapter == nil {
		return
	}
	if lm.busy {
		lm.logger.Printf("gallery: ignoring re-entrant ScrollToIndex during layout")
		return
	}
	lm.stopSmoothScroll()
	if v := lm.SelectedView(); v != nil {
		v.SetSelected(false)
	}
	lm.selected = -1
	lm.initialIndex = index
	lm.listener.state = ScrollIdle
	lm.LayoutChildren(LayoutPass{StructureChanged: true})
}

// reset clears the frame cache and selection. The current selection becomes
// the pending index so a rebuild re-centers on the same item.
func (lm *LayoutManager) reset() {
	lm.state.frames.Clear()
	lm.state.scrollDelta = 0
	if lm.selected != -1 {
		lm.initialIndex = lm.selected
	}
	idx := lm.clampIndex(lm.initialIndex)
	lm.first, lm.last = idx, idx
	if v := lm.SelectedView(); v != nil {
		v.SetSelected(false)
	}
	lm.selected = -1
	lm.listener.callbackOnIdle = false
	lm.listener.lastFired = -1
}

func (lm *LayoutManager) clampIndex(index int) int {
	count := 0
	if lm.adapter != nil {
		count = lm.adapter.ItemCount()
	}
	return min(max(0, index), count-1)
}

func (lm *LayoutManager) enter(op string) bool {
	if lm.busy {
		lm.logger.Printf("gallery: ignoring re-entrant %s during layout", op)
		return false
	}
	lm.busy = true
	return true
}

func (lm *LayoutManager) leave() {
	lm.busy = false
}

// edges returns the padded viewport start and end on the scroll axis.
func (lm *LayoutManager) edges() (start, end int) {
	w, h := lm.viewport.Size()
	pad := lm.viewport.Padding()
	return pad.Before(lm.axis), along(lm.axis, w, h) - pad.After(lm.axis)
}

// center is the viewport midpoint on the scroll axis.
func (lm *LayoutManager) center() int {
	start, end := lm.edges()
	return (end-start)/2 + start
}

// crossSpan centers a measured view on the cross axis.
func (lm *LayoutManager) crossSpan(w, h int) (int, int) {
	cross := lm.axis.cross()
	vw, vh := lm.viewport.Size()
	pad := lm.viewport.Padding()
	space := along(cross, vw, vh) - pad.Before(cross) - pad.After(cross)
	size := along(cross, w, h)
	start := pad.Before(cross) + (space-size)/2
	return start, start + size
}

func (lm *LayoutManager) attach(c Child, atFront bool) {
	c.View.Layout(c.Frame)
	c.View.SetSelected(c.Index == lm.selected)
	if atFront {
		lm.children = slices.Insert(lm.children, 0, c)
	} else {
		lm.children = append(lm.children, c)
	}
	lm.state.frames.Put(c.Index, c.Frame)
}

func (lm *LayoutManager) release(c Child) {
	if c.Index == lm.selected {
		c.View.SetSelected(false)
	}
	lm.adapter.ReleaseView(c.View)
}

func (lm *LayoutManager) releaseAll() {
	for _, c := range lm.children {
		lm.release(c)
	}
	lm.children = lm.children[:0]
}

func (lm *LayoutManager) offsetChildren(d int) {
	if d == 0 {
		return
	}
	for i := range lm.children {
		lm.children[i].Frame = lm.children[i].Frame.Offset(lm.axis, d)
		lm.children[i].View.Layout(lm.children[i].Frame)
		lm.state.frames.Put(lm.children[i].Index, lm.children[i].Frame)
	}
}

func (lm *LayoutManager) child(index int) (Child, bool) {
	if len(lm.children) == 0 {
		return Child{}, false
	}
	i := index - lm.children[0].Index
	if i < 0 || i >= len(lm.children) {
		return Child{}, false
	}
	return lm.children[i], true
}

// Axis returns the scroll axis.
func (lm *LayoutManager) Axis() Axis {
	return lm.axis
}

// ItemCount returns the adapter's item count, or zero when detached.
func (lm *LayoutManager) ItemCount() int {
	if lm.adapter == nil {
		return 0
	}
	return lm.adapter.ItemCount()
}

// VisibleRange returns the attached index range.
func (lm *LayoutManager) VisibleRange() VisibleRange {
	if len(lm.children) == 0 {
		return VisibleRange{First: -1, Last: -1}
	}
	return VisibleRange{First: lm.first, Last: lm.last}
}

// Children returns a copy of the attached items in index order.
func (lm *LayoutManager) Children() []Child {
	return slices.Clone(lm.children)
}

// Frame returns the cached frame for index.
func (lm *LayoutManager) Frame(index int) (Rect, bool) {
	return lm.state.frames.Get(index)
}

// CachedFrames returns the number of cached frames.
func (lm *LayoutManager) CachedFrames() int {
	return lm.state.frames.Len()
}

// SelectedIndex returns the centered item, or -1.
func (lm *LayoutManager) SelectedIndex() int {
	return lm.selected
}

// SelectedView resolves the selected index to its attached view, if any.
func (lm *LayoutManager) SelectedView() View {
	if lm.selected < 0 {
		return nil
	}
	if c, ok := lm.child(lm.selected); ok {
		return c.View
	}
	return nil
}
