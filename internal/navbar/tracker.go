package navbar

import "math"

// Tracker turns raw offset notifications into tolerance-filtered deltas.
// It is not safe for concurrent use; all calls must come from the UI goroutine.
type Tracker struct {
	view      ContentView
	cancel    func()
	gen       uint64 // bumped on every attach/detach, stale observers compare against it
	baseline  float64
	tolerance float64

	clock Clock
	last  ScrollObservation

	report func(ScrollDelta)
}

// NewTracker creates a detached tracker. report is called for every non-suppressed delta.
func NewTracker(tolerance float64, clock Clock, report func(ScrollDelta)) *Tracker {
	if clock == nil {
		clock = SystemClock()
	}
	return &Tracker{
		tolerance: math.Max(tolerance, 0),
		clock:     clock,
		report:    report,
	}
}

// Attach starts observing view, replacing any previously attached view.
// A nil view is ignored and Attach reports false.
func (t *Tracker) Attach(view ContentView) bool {
	if view == nil {
		return false
	}
	t.Detach()

	t.gen++
	gen := t.gen
	t.view = view
	// an overscrolled view is at the top as far as the bar is concerned
	t.baseline = math.Max(view.ContentOffset(), 0)
	t.last = ScrollObservation{Offset: t.baseline, At: t.clock.Now()}
	t.cancel = view.ObserveOffset(func(offset float64) {
		if gen != t.gen {
			return
		}
		t.OnScroll(offset)
	})
	return true
}

// Detach stops observing. Safe to call when not attached.
func (t *Tracker) Detach() {
	if t.view == nil {
		return
	}
	if t.cancel != nil {
		t.cancel()
	}
	t.gen++
	t.view = nil
	t.cancel = nil
}

// Attached reports whether a content view is being observed.
func (t *Tracker) Attached() bool { return t.view != nil }

// View returns the observed content view, or nil.
func (t *Tracker) View() ContentView { return t.view }

// Baseline returns the offset recorded at the last reported event.
func (t *Tracker) Baseline() float64 { return t.baseline }

// Tolerance returns the current noise threshold.
func (t *Tracker) Tolerance() float64 { return t.tolerance }

// SetTolerance changes the threshold without touching the baseline. Negative values clamp to 0.
func (t *Tracker) SetTolerance(tolerance float64) {
	t.tolerance = math.Max(tolerance, 0)
}

// LastObservation returns the most recent offset notification.
func (t *Tracker) LastObservation() ScrollObservation { return t.last }

// OnScroll processes a new offset. It returns the reported delta and true, or false
// when the movement was suppressed, the offset is not finite, or no view is attached.
func (t *Tracker) OnScroll(offset float64) (ScrollDelta, bool) {
	if t.view == nil {
		return ScrollDelta{}, false
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return ScrollDelta{}, false
	}
	t.last = ScrollObservation{Offset: offset, At: t.clock.Now()}

	var d ScrollDelta
	switch {
	case offset < 0:
		d = ScrollDelta{Magnitude: offset - t.baseline, PreviousOffset: t.baseline, Overscroll: true}
		t.baseline = 0
	case math.Abs(offset-t.baseline) < t.tolerance:
		return ScrollDelta{}, false
	default:
		d = ScrollDelta{Magnitude: offset - t.baseline, PreviousOffset: t.baseline}
		t.baseline = offset
	}

	if t.report != nil {
		t.report(d)
	}
	return d, true
}
