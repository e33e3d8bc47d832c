package gallery

import "testing"

type fakeView struct {
	index    int
	w, h     int
	frame    Rect
	selected bool
	scale    float64
	margins  Insets
}

func (v *fakeView) Measure() (int, int)  { return v.w, v.h }
func (v *fakeView) Layout(r Rect)        { v.frame = r }
func (v *fakeView) SetSelected(sel bool) { v.selected = sel }
func (v *fakeView) SetScale(s float64)   { v.scale = s }
func (v *fakeView) Margins() Insets      { return v.margins }

type fakeAdapter struct {
	t     *testing.T
	count int
	// size returns the measured size for an index.
	size     func(index int) (int, int)
	margins  Insets
	live     map[*fakeView]bool
	released []*fakeView
}

func newFakeAdapter(t *testing.T, count, w, h int) *fakeAdapter {
	return &fakeAdapter{
		t:     t,
		count: count,
		size:  func(int) (int, int) { return w, h },
		live:  make(map[*fakeView]bool),
	}
}

func (a *fakeAdapter) ItemCount() int { return a.count }

func (a *fakeAdapter) ProvideView(index int) View {
	if index < 0 || index >= a.count {
		a.t.Fatalf("ProvideView(%d) out of range [0, %d)", index, a.count)
	}
	w, h := a.size(index)
	v := &fakeView{index: index, w: w, h: h, scale: 1, margins: a.margins}
	a.live[v] = true
	return v
}

func (a *fakeAdapter) ReleaseView(v View) {
	fv := v.(*fakeView)
	if !a.live[fv] {
		a.t.Fatalf("ReleaseView of view %d that is not live", fv.index)
	}
	delete(a.live, fv)
	a.released = append(a.released, fv)
}

type fakeViewport struct {
	w, h int
	pad  Insets
}

func (vp *fakeViewport) Size() (int, int) { return vp.w, vp.h }
func (vp *fakeViewport) Padding() Insets  { return vp.pad }

// newReel attaches a horizontal 300x200 reel of count 100x80 items.
func newReel(t *testing.T, count, initial int) (*LayoutManager, *fakeAdapter) {
	t.Helper()
	lm := New(Horizontal)
	a := newFakeAdapter(t, count, 100, 80)
	if err := lm.Attach(&fakeViewport{w: 300, h: 200}, a, initial); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	return lm, a
}

// checkChildren verifies the attached set is consecutive, touching, in sync
// with the visible range and with the adapter's live views.
func checkChildren(t *testing.T, lm *LayoutManager, a *fakeAdapter) {
	t.Helper()
	children := lm.Children()
	if len(children) != len(a.live) {
		t.Fatalf("%d children attached, adapter has %d live views", len(children), len(a.live))
	}
	if len(children) == 0 {
		if !lm.VisibleRange().Empty() {
			t.Fatalf("visible range %+v with no children", lm.VisibleRange())
		}
		return
	}
	r := lm.VisibleRange()
	if r.First != children[0].Index || r.Last != children[len(children)-1].Index {
		t.Fatalf("visible range %+v, children %d..%d", r, children[0].Index, children[len(children)-1].Index)
	}
	selected := 0
	for i, c := range children {
		fv := c.View.(*fakeView)
		if fv.frame != c.Frame {
			t.Fatalf("child %d view frame %+v, layout frame %+v", c.Index, fv.frame, c.Frame)
		}
		if fv.selected {
			selected++
		}
		if i == 0 {
			continue
		}
		prev := children[i-1]
		if c.Index != prev.Index+1 {
			t.Fatalf("children not consecutive: %d after %d", c.Index, prev.Index)
		}
		if c.Frame.Start(lm.Axis()) != prev.Frame.End(lm.Axis()) {
			t.Fatalf("gap or overlap between %d %+v and %d %+v", prev.Index, prev.Frame, c.Index, c.Frame)
		}
	}
	if selected > 1 {
		t.Fatalf("%d views flagged selected", selected)
	}
}
