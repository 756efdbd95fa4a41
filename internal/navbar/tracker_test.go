package navbar

import (
	"math"
	"testing"
)

func TestTrackerAttachNil(t *testing.T) {
	tr := NewTracker(10, nil, nil)
	if tr.Attach(nil) {
		t.Fatal("Attach(nil) should report false")
	}
	if tr.Attached() {
		t.Fatal("tracker should stay detached")
	}
}

func TestTrackerAttachSetsBaseline(t *testing.T) {
	tr := NewTracker(0, nil, nil)
	v := newFakeView(50)
	if !tr.Attach(v) {
		t.Fatal("Attach should succeed")
	}
	if got := tr.Baseline(); got != 50 {
		t.Errorf("baseline = %v, want 50", got)
	}
	if len(v.observers) != 1 {
		t.Errorf("observers = %d, want 1", len(v.observers))
	}
}

func TestTrackerToleranceFiltering(t *testing.T) {
	var reported []ScrollDelta
	tr := NewTracker(10, nil, func(d ScrollDelta) { reported = append(reported, d) })
	v := newFakeView(0)
	tr.Attach(v)

	for _, off := range []float64{3, 6, 9.9, 1, -0} {
		v.scrollTo(off)
	}
	if len(reported) != 0 {
		t.Fatalf("expected all deltas suppressed, got %v", reported)
	}

	v.scrollTo(12)
	if len(reported) != 1 {
		t.Fatalf("reported %d deltas, want 1", len(reported))
	}
	d := reported[0]
	if d.Magnitude != 12 || d.PreviousOffset != 0 {
		t.Errorf("delta = %+v, want magnitude 12 from 0", d)
	}
	if d.Direction() != DirectionDown {
		t.Errorf("direction = %v, want down", d.Direction())
	}
	if tr.Baseline() != 12 {
		t.Errorf("baseline = %v, want 12", tr.Baseline())
	}

	v.scrollTo(2)
	if len(reported) != 2 || reported[1].Magnitude != -10 {
		t.Fatalf("expected upward delta of -10, got %v", reported)
	}
	if reported[1].Direction() != DirectionUp {
		t.Errorf("direction = %v, want up", reported[1].Direction())
	}
}

func TestTrackerOverscrollIgnoresTolerance(t *testing.T) {
	var reported []ScrollDelta
	tr := NewTracker(100, nil, func(d ScrollDelta) { reported = append(reported, d) })
	v := newFakeView(5)
	tr.Attach(v)

	v.scrollTo(-1)
	if len(reported) != 1 || !reported[0].Overscroll {
		t.Fatalf("expected overscroll delta, got %v", reported)
	}
	if tr.Baseline() != 0 {
		t.Errorf("baseline after overscroll = %v, want 0", tr.Baseline())
	}

	// returning to the top is not movement
	v.scrollTo(0)
	if len(reported) != 1 {
		t.Errorf("unexpected report after returning to top: %v", reported)
	}
}

func TestTrackerDetachIdempotent(t *testing.T) {
	tr := NewTracker(0, nil, nil)
	tr.Detach()

	v := newFakeView(0)
	tr.Attach(v)
	tr.Detach()
	tr.Detach()

	if tr.Attached() {
		t.Error("tracker should be detached")
	}
	if len(v.observers) != 0 {
		t.Errorf("observer not removed, %d left", len(v.observers))
	}
	if _, ok := tr.OnScroll(100); ok {
		t.Error("OnScroll without a view should be a no-op")
	}
}

func TestTrackerDiscardsStaleObserver(t *testing.T) {
	var reported []ScrollDelta
	tr := NewTracker(0, nil, func(d ScrollDelta) { reported = append(reported, d) })

	// notification already in flight when the view is replaced
	a := newFakeView(0)
	tr.Attach(a)
	stale := a.observers[0]

	b := newFakeView(0)
	tr.Attach(b)

	stale(500)
	if len(reported) != 0 {
		t.Fatalf("stale observation was applied: %v", reported)
	}
	if tr.Baseline() != 0 {
		t.Errorf("baseline = %v, want 0", tr.Baseline())
	}

	b.scrollTo(20)
	if len(reported) != 1 || reported[0].Magnitude != 20 {
		t.Errorf("expected delta 20 from view B, got %v", reported)
	}
}

func TestTrackerSetToleranceKeepsBaseline(t *testing.T) {
	tr := NewTracker(10, nil, nil)
	v := newFakeView(0)
	tr.Attach(v)
	v.scrollTo(15)

	tr.SetTolerance(-5)
	if tr.Tolerance() != 0 {
		t.Errorf("tolerance = %v, want 0", tr.Tolerance())
	}
	if tr.Baseline() != 15 {
		t.Errorf("baseline = %v, want 15", tr.Baseline())
	}
}

func TestTrackerRecordsObservationTime(t *testing.T) {
	clk := newManualClock()
	tr := NewTracker(50, clk, nil)
	v := newFakeView(0)
	tr.Attach(v)

	clk.Advance(1000)
	v.scrollTo(3)

	obs := tr.LastObservation()
	if obs.Offset != 3 || !obs.At.Equal(clk.Now()) {
		t.Errorf("observation = %+v, want offset 3 at %v", obs, clk.Now())
	}
}

func TestTrackerIgnoresNonFiniteOffset(t *testing.T) {
	var reported []ScrollDelta
	tr := NewTracker(0, nil, func(d ScrollDelta) { reported = append(reported, d) })
	v := newFakeView(10)
	tr.Attach(v)

	for _, off := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v.scrollTo(off)
	}
	if len(reported) != 0 {
		t.Fatalf("non-finite offsets were reported: %v", reported)
	}
	if tr.Baseline() != 10 || tr.LastObservation().Offset != 10 {
		t.Errorf("baseline = %v, last = %v, want both 10", tr.Baseline(), tr.LastObservation().Offset)
	}

	v.scrollTo(30)
	if len(reported) != 1 || reported[0].Magnitude != 20 {
		t.Errorf("expected delta 20 after the bad offsets, got %v", reported)
	}
}

func TestTrackerAttachWhileOverscrolled(t *testing.T) {
	var reported []ScrollDelta
	tr := NewTracker(0, nil, func(d ScrollDelta) { reported = append(reported, d) })
	v := newFakeView(-20)
	tr.Attach(v)

	if tr.Baseline() != 0 {
		t.Errorf("baseline = %v, want 0", tr.Baseline())
	}
	v.scrollTo(30)
	if len(reported) != 1 || reported[0].Magnitude != 30 || reported[0].PreviousOffset != 0 {
		t.Errorf("expected delta 30 from 0, got %v", reported)
	}
}
