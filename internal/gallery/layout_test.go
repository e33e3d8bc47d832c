package gallery

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestAttach_NilArguments(t *testing.T) {
	lm := New(Horizontal)
	a := newFakeAdapter(t, 3, 100, 80)
	if err := lm.Attach(nil, a, 0); !errors.Is(err, ErrNilViewport) {
		t.Errorf("Attach(nil viewport) = %v, want ErrNilViewport", err)
	}
	if err := lm.Attach(&fakeViewport{w: 300, h: 200}, nil, 0); !errors.Is(err, ErrNilAdapter) {
		t.Errorf("Attach(nil adapter) = %v, want ErrNilAdapter", err)
	}
	if lm.ItemCount() != 0 || len(lm.Children()) != 0 {
		t.Error("failed Attach should leave the manager unbound")
	}
}

func TestFirstFill_CentersInitialItem(t *testing.T) {
	for _, axis := range []Axis{Horizontal, Vertical} {
		for _, count := range []int{1, 2, 3, 5, 10, 37} {
			for initial := 0; initial < count; initial++ {
				lm := New(axis)
				a := newFakeAdapter(t, count, 100, 80)
				if axis == Vertical {
					a = newFakeAdapter(t, count, 80, 100)
				}
				var fired []int
				lm.OnItemSelected = func(index int, _ View) { fired = append(fired, index) }

				vp := &fakeViewport{w: 300, h: 200}
				if axis == Vertical {
					vp = &fakeViewport{w: 200, h: 300}
				}
				if err := lm.Attach(vp, a, initial); err != nil {
					t.Fatalf("Attach: %v", err)
				}
				checkChildren(t, lm, a)

				if got := lm.SelectedIndex(); got != initial {
					t.Fatalf("%s count=%d initial=%d: selected %d", axis, count, initial, got)
				}
				f, ok := lm.Frame(initial)
				if !ok {
					t.Fatalf("%s count=%d initial=%d: no frame for initial item", axis, count, initial)
				}
				if f.Center(axis) != 150 {
					t.Errorf("%s count=%d initial=%d: center %d, want 150", axis, count, initial, f.Center(axis))
				}
				if f.Start(axis.cross()) != 60 || f.End(axis.cross()) != 140 {
					t.Errorf("%s count=%d initial=%d: cross span %+v not centered", axis, count, initial, f)
				}
				if !lm.SelectedView().(*fakeView).selected {
					t.Errorf("%s count=%d initial=%d: selected view not flagged", axis, count, initial)
				}
				if len(fired) != 1 || fired[0] != initial {
					t.Errorf("%s count=%d initial=%d: notifications %v", axis, count, initial, fired)
				}
			}
		}
	}
}

func TestFirstFill_ClampsInitialIndex(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		want    int
	}{
		{"negative", -4, 0},
		{"past end", 42, 9},
		{"in range", 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lm, _ := newReel(t, 10, tt.initial)
			if got := lm.SelectedIndex(); got != tt.want {
				t.Errorf("selected %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFirstFill_TenItemsThreeVisible(t *testing.T) {
	lm, a := newReel(t, 10, 3)
	checkChildren(t, lm, a)

	want := map[int][2]int{2: {0, 100}, 3: {100, 200}, 4: {200, 300}}
	children := lm.Children()
	if len(children) != len(want) {
		t.Fatalf("%d children attached, want %d", len(children), len(want))
	}
	for _, c := range children {
		w, ok := want[c.Index]
		if !ok {
			t.Fatalf("unexpected child %d", c.Index)
		}
		if c.Frame.Left != w[0] || c.Frame.Right != w[1] {
			t.Errorf("item %d at [%d, %d), want [%d, %d)", c.Index, c.Frame.Left, c.Frame.Right, w[0], w[1])
		}
	}
	if r := lm.VisibleRange(); r.First != 2 || r.Last != 4 {
		t.Errorf("visible range %+v, want 2..4", r)
	}
	if lm.SelectedIndex() != 3 {
		t.Errorf("selected %d, want 3", lm.SelectedIndex())
	}
}

func TestFirstFill_RespectsPadding(t *testing.T) {
	lm := New(Horizontal)
	a := newFakeAdapter(t, 10, 100, 80)
	vp := &fakeViewport{w: 340, h: 200, pad: Insets{Left: 40, Top: 20}}
	if err := lm.Attach(vp, a, 5); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	f, _ := lm.Frame(5)
	// Padded span is [40, 340), center 190.
	if f.Center(Horizontal) != 190 {
		t.Errorf("center %d, want 190", f.Center(Horizontal))
	}
	if f.Top != 20+(180-80)/2 {
		t.Errorf("cross start %d, want %d", f.Top, 20+(180-80)/2)
	}
	first := lm.Children()[0]
	if first.Frame.Left > 40 {
		t.Errorf("leading edge %d leaves padded start uncovered", first.Frame.Left)
	}
}

func TestLayoutChildren_EmptyAdapterResets(t *testing.T) {
	lm, a := newReel(t, 10, 4)
	lm.ScrollBy(120)
	prev := lm.SelectedIndex()

	a.count = 0
	lm.LayoutChildren(LayoutPass{StructureChanged: true})

	if n := lm.CachedFrames(); n != 0 {
		t.Errorf("%d frames cached after reset", n)
	}
	if !lm.VisibleRange().Empty() {
		t.Errorf("visible range %+v after reset", lm.VisibleRange())
	}
	if lm.SelectedIndex() != -1 || lm.SelectedView() != nil {
		t.Errorf("selection %d survived reset", lm.SelectedIndex())
	}
	if len(a.live) != 0 {
		t.Errorf("%d views not released", len(a.live))
	}
	for _, v := range a.released {
		if v.selected {
			t.Errorf("released view %d still flagged", v.index)
		}
	}

	a.count = 10
	lm.LayoutChildren(LayoutPass{StructureChanged: true})
	checkChildren(t, lm, a)
	if got := lm.SelectedIndex(); got != prev {
		t.Errorf("rebuild centered on %d, want previous selection %d", got, prev)
	}
}

func TestLayoutChildren_ShrinkClampsSelection(t *testing.T) {
	lm, a := newReel(t, 10, 8)
	a.count = 4
	lm.LayoutChildren(LayoutPass{StructureChanged: true})
	checkChildren(t, lm, a)
	if lm.SelectedIndex() != 3 {
		t.Errorf("selected %d, want last item 3", lm.SelectedIndex())
	}
}

func TestLayoutChildren_PreLayoutIsNoop(t *testing.T) {
	lm, a := newReel(t, 10, 4)
	lm.ScrollBy(37)
	before := lm.Children()

	lm.LayoutChildren(LayoutPass{PreLayout: true, StructureChanged: true})
	lm.LayoutChildren(LayoutPass{})

	after := lm.Children()
	if len(before) != len(after) {
		t.Fatalf("children changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Index != after[i].Index || before[i].Frame != after[i].Frame {
			t.Errorf("child %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	checkChildren(t, lm, a)
}

func TestScrollToIndex(t *testing.T) {
	lm, a := newReel(t, 20, 0)
	var fired []int
	lm.OnItemSelected = func(index int, _ View) { fired = append(fired, index) }

	lm.ScrollToIndex(7)
	checkChildren(t, lm, a)
	if lm.SelectedIndex() != 7 {
		t.Fatalf("selected %d, want 7", lm.SelectedIndex())
	}
	if f, _ := lm.Frame(7); f.Center(Horizontal) != 150 {
		t.Errorf("item 7 center %d, want 150", f.Center(Horizontal))
	}
	if len(fired) != 1 || fired[0] != 7 {
		t.Errorf("notifications %v, want [7]", fired)
	}

	lm.ScrollToIndex(99)
	if lm.SelectedIndex() != 19 {
		t.Errorf("selected %d, want clamped 19", lm.SelectedIndex())
	}
}

func TestDetach_ReleasesViews(t *testing.T) {
	lm, a := newReel(t, 10, 2)
	lm.Detach()
	if len(a.live) != 0 {
		t.Errorf("%d views live after Detach", len(a.live))
	}
	if lm.ScrollBy(50) != 0 {
		t.Error("ScrollBy after Detach should consume nothing")
	}
	if lm.ItemCount() != 0 {
		t.Errorf("ItemCount %d after Detach", lm.ItemCount())
	}
}

func TestReentrantCallsAreIgnored(t *testing.T) {
	lm := New(Horizontal)
	var buf bytes.Buffer
	lm.SetLogger(log.New(&buf, "", 0))

	var nested []int
	lm.OnItemSelected = func(int, View) {
		nested = append(nested, lm.ScrollBy(10))
		lm.LayoutChildren(LayoutPass{StructureChanged: true})
	}
	a := newFakeAdapter(t, 10, 100, 80)
	if err := lm.Attach(&fakeViewport{w: 300, h: 200}, a, 5); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	lm.ScrollBy(100)

	if len(nested) != 2 {
		t.Fatalf("listener called %d times, want 2", len(nested))
	}
	for _, n := range nested {
		if n != 0 {
			t.Errorf("nested ScrollBy consumed %d", n)
		}
	}
	if lm.SelectedIndex() != 6 {
		t.Errorf("selected %d, want 6", lm.SelectedIndex())
	}
	if !strings.Contains(buf.String(), "re-entrant ScrollBy") {
		t.Errorf("re-entrant call not logged: %q", buf.String())
	}
	checkChildren(t, lm, a)
}

func TestCenterSnap(t *testing.T) {
	mk := func(starts ...int) []Child {
		var cs []Child
		for i, s := range starts {
			cs = append(cs, Child{Index: i, Frame: Rect{Left: s, Right: s + 100, Bottom: 10}})
		}
		return cs
	}
	tests := []struct {
		name     string
		children []Child
		center   int
		want     int
	}{
		{"empty", nil, 150, -1},
		{"exact", mk(0, 100, 200), 150, 1},
		{"nearest", mk(-30, 70, 170), 150, 1},
		{"tie goes to earlier", mk(0, 100), 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterSnap(tt.children, tt.center, Horizontal); got != tt.want {
				t.Errorf("CenterSnap = %d, want %d", got, tt.want)
			}
		})
	}
}
