package gallery

import (
	"math"
	"time"
)

const (
	// DefaultDPI is the pixel density smooth scroll speeds are tuned for.
	DefaultDPI = 160

	millisPerInch     = 25.0
	decelerationRatio = 0.3356
	seekDistance      = 10000
	seekExtraRatio    = 1.2
)

// Easing maps elapsed time fraction [0, 1] to distance fraction [0, 1].
type Easing func(t float64) float64

// Linear moves at constant speed.
func Linear(t float64) float64 { return t }

// Decelerate starts fast and slows to a stop.
func Decelerate(t float64) float64 { return 1 - (1-t)*(1-t) }

// SmoothScroller animates the reel until a target item sits at the center.
// It is advanced by the host's frame loop through LayoutManager.Tick.
type SmoothScroller struct {
	lm      *LayoutManager
	target  int
	msPerPx float64
	seek    *scrollAction
}

// scrollAction is a single animated scroll of distance pixels along the axis.
type scrollAction struct {
	distance int
	duration time.Duration
	easing   Easing
	elapsed  time.Duration
	done     int
}

// advance returns the pixels to scroll for dt more of the animation.
func (a *scrollAction) advance(dt time.Duration) int {
	a.elapsed = min(a.duration, a.elapsed+dt)
	t := 1.0
	if a.duration > 0 {
		t = float64(a.elapsed) / float64(a.duration)
	}
	pos := int(math.Round(float64(a.distance) * a.easing(t)))
	step := pos - a.done
	a.done = pos
	return step
}

func (a *scrollAction) finished() bool {
	return a.elapsed >= a.duration
}

func newSmoothScroller(lm *LayoutManager, target int) *SmoothScroller {
	dpi := lm.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &SmoothScroller{
		lm:      lm,
		target:  target,
		msPerPx: millisPerInch / dpi,
	}
}

// Target returns the index being scrolled to.
func (s *SmoothScroller) Target() int {
	return s.target
}

// TimeForScrolling is how long a linear scroll of dx pixels takes.
func (s *SmoothScroller) TimeForScrolling(dx int) time.Duration {
	ms := math.Ceil(math.Abs(float64(dx)) * s.msPerPx)
	return time.Duration(ms) * time.Millisecond
}

// TimeForDeceleration is how long a decelerating scroll of dx pixels takes.
func (s *SmoothScroller) TimeForDeceleration(dx int) time.Duration {
	ms := float64(s.TimeForScrolling(dx) / time.Millisecond)
	return time.Duration(math.Ceil(ms/decelerationRatio)) * time.Millisecond
}

// CenterOffset returns how far the view at frame must move for its center,
// margins included, to meet the viewport center. Only the scroll axis is
// ever non-zero.
func (s *SmoothScroller) CenterOffset(c Child) (dx, dy int) {
	var m Insets
	if mv, ok := c.View.(Margined); ok {
		m = mv.Margins()
	}
	axis := s.lm.axis
	lead := c.Frame.Start(axis) - m.Before(axis)
	trail := c.Frame.End(axis) + m.After(axis)
	d := s.lm.center() - (lead + (trail-lead)/2)
	if axis == Vertical {
		return 0, d
	}
	return d, 0
}

// step advances the animation by dt. The remaining distance is re-derived
// from the target's live position on every tick it is attached; until then
// the scroller seeks toward it at linear speed.
func (s *SmoothScroller) step(dt time.Duration) {
	lm := s.lm
	var delta int
	if c, ok := lm.child(s.target); ok {
		s.seek = nil
		dx, dy := s.CenterOffset(c)
		dist := math.Hypot(float64(dx), float64(dy))
		dur := s.TimeForDeceleration(int(dist))
		if dur <= 0 {
			s.finish()
			return
		}
		a := scrollAction{distance: -(dx + dy), duration: dur, easing: Decelerate}
		delta = a.advance(dt)
		if delta == 0 {
			delta = sign(a.distance)
		}
	} else {
		if s.seek == nil || s.seek.finished() {
			vx, vy := lm.ScrollVector(s.target)
			s.seek = &scrollAction{
				distance: int(float64((vx+vy)*seekDistance) * seekExtraRatio),
				duration: time.Duration(float64(s.TimeForScrolling(seekDistance)) * seekExtraRatio),
				easing:   Linear,
			}
		}
		delta = s.seek.advance(dt)
		if delta == 0 {
			return
		}
	}
	if lm.ScrollBy(delta) == 0 {
		// Blocked at either end of the reel.
		s.finish()
	}
}

func (s *SmoothScroller) finish() {
	if s.lm.scroller == s {
		s.lm.scroller = nil
		s.lm.SetScrollState(ScrollIdle)
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// SmoothScrollToIndex starts animating the reel until index is centered.
// The index is clamped to the adapter's range.
func (lm *LayoutManager) SmoothScrollToIndex(index int) {
	if lm.adapter == nil || lm.adapter.ItemCount() == 0 {
		return
	}
	lm.scroller = newSmoothScroller(lm, lm.clampIndex(index))
	lm.SetScrollState(ScrollSettling)
}

// Tick advances a running smooth scroll by dt. Hosts call it once per frame.
func (lm *LayoutManager) Tick(dt time.Duration) {
	if lm.scroller != nil && !lm.busy {
		lm.scroller.step(dt)
	}
}

// Scrolling reports whether a smooth scroll is running.
func (lm *LayoutManager) Scrolling() bool {
	return lm.scroller != nil
}

// Scroller returns the running smooth scroller, or nil.
func (lm *LayoutManager) Scroller() *SmoothScroller {
	return lm.scroller
}

// Settle snaps the centered item exactly onto the viewport center. Hosts
// call it when a drag or fling ends. An already centered reel goes idle.
func (lm *LayoutManager) Settle() {
	c, ok := lm.findSnap()
	if !ok {
		lm.SetScrollState(ScrollIdle)
		return
	}
	if dx, dy := newSmoothScroller(lm, c.Index).CenterOffset(c); dx == 0 && dy == 0 {
		lm.SetScrollState(ScrollIdle)
		return
	}
	lm.SmoothScrollToIndex(c.Index)
}

func (lm *LayoutManager) stopSmoothScroll() {
	lm.scroller = nil
}
