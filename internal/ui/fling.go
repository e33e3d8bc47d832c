package ui

import (
	"math"
	"time"

	"github.com/depeter/jellyreel/internal/gallery"
)

const (
	// flingFriction is the exponential velocity decay rate per second.
	flingFriction = 3.5
	// minFlingVelocity is the release speed, in px/s, below which a drag
	// settles straight away.
	minFlingVelocity = 400.0
	// stopVelocity ends a fling once it slows below it.
	stopVelocity = 60.0
	// tapSlop is how far a press may travel and still count as a tap.
	tapSlop = 8
)

// flingTracker turns pointer drags into reel scrolling and keeps a released
// drag moving with decaying velocity until the reel settles.
type flingTracker struct {
	lm *gallery.LayoutManager

	dragging bool
	flinging bool
	last     int
	travel   int
	// velocity is in scroll units per second; positive moves toward later
	// items.
	velocity float64
}

func (f *flingTracker) press(pos int) {
	f.dragging = true
	f.flinging = false
	f.last = pos
	f.travel = 0
	f.velocity = 0
	f.lm.SetScrollState(gallery.ScrollDragging)
}

// move follows the pointer. Content tracks the pointer, so dragging toward
// the start reveals later items.
func (f *flingTracker) move(pos int, dt time.Duration) {
	if !f.dragging {
		return
	}
	d := f.last - pos
	f.last = pos
	f.travel += abs(d)
	if d != 0 {
		f.lm.ScrollBy(d)
	}
	if dt > 0 {
		f.velocity = Lerp(f.velocity, float64(d)/dt.Seconds(), 0.5)
	}
}

// release ends a drag. It reports whether the press was a tap, in which case
// the caller decides what the reel does next.
func (f *flingTracker) release() (tap bool) {
	if !f.dragging {
		return false
	}
	f.dragging = false
	if f.travel <= tapSlop {
		f.velocity = 0
		return true
	}
	if math.Abs(f.velocity) < minFlingVelocity {
		f.velocity = 0
		f.lm.Settle()
		return false
	}
	f.flinging = true
	f.lm.SetScrollState(gallery.ScrollSettling)
	return false
}

// step advances a fling by dt. The fling ends when it slows down or runs
// into either end of the reel.
func (f *flingTracker) step(dt time.Duration) {
	if !f.flinging {
		return
	}
	d := int(f.velocity * dt.Seconds())
	f.velocity *= math.Exp(-flingFriction * dt.Seconds())
	if d == 0 || f.lm.ScrollBy(d) == 0 || math.Abs(f.velocity) < stopVelocity {
		f.stop()
		f.lm.Settle()
	}
}

func (f *flingTracker) stop() {
	f.flinging = false
	f.velocity = 0
}

func (f *flingTracker) active() bool {
	return f.dragging || f.flinging
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
