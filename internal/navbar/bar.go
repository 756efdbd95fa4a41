// Package navbar implements a navigation bar that recedes as its content view scrolls down
// and returns when it scrolls back up. It has no rendering or platform dependencies:
// adapters feed it offsets through a ContentView and draw the resulting VisualState.
package navbar

import (
	"log"
	"time"
)

const (
	DefaultBarHeight = 44.0
	DefaultSnapDelay = 300 * time.Millisecond
)

// Options configures a Bar. Zero values select the defaults.
type Options struct {
	Tolerance float64
	BarHeight float64
	// SnapDelay is how long the content must stay still after a release before the
	// bar snaps fully shown or hidden. Negative disables snapping.
	SnapDelay time.Duration
	Clock     Clock
}

// Bar ties a Tracker to a Machine and exposes the widget's configuration surface.
type Bar struct {
	tracker *Tracker
	machine *Machine
	clock   Clock

	snapDelay time.Duration
	dragging  bool
	released  bool // a drag ended and the bar has not settled yet
}

// New creates a Bar with no content view attached.
func New(opts Options) *Bar {
	if opts.BarHeight == 0 {
		opts.BarHeight = DefaultBarHeight
	}
	if opts.SnapDelay == 0 {
		opts.SnapDelay = DefaultSnapDelay
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Tolerance < 0 {
		log.Printf("navbar: scroll tolerance %.1f is negative, using 0", opts.Tolerance)
		opts.Tolerance = 0
	}

	b := &Bar{
		machine:   NewMachine(opts.BarHeight),
		clock:     opts.Clock,
		snapDelay: opts.SnapDelay,
	}
	b.tracker = NewTracker(opts.Tolerance, opts.Clock, b.onDelta)
	return b
}

// Machine exposes the state machine so renderers can subscribe to its notifications.
func (b *Bar) Machine() *Machine { return b.machine }

// Tracker exposes the scroll tracker.
func (b *Bar) Tracker() *Tracker { return b.tracker }

// ScrollView returns the attached content view, or nil.
func (b *Bar) ScrollView() ContentView { return b.tracker.View() }

// SetScrollView detaches from the current view and attaches to view. A nil view only detaches.
func (b *Bar) SetScrollView(view ContentView) {
	b.tracker.Detach()
	b.dragging = false
	b.released = false
	if view == nil {
		return
	}
	b.tracker.Attach(view)
}

// ScrollTolerance returns the minimum scroll distance before the bar moves.
func (b *Bar) ScrollTolerance() float64 { return b.tracker.Tolerance() }

// SetScrollTolerance changes the tolerance; accumulated state is kept. Negative values clamp to 0.
func (b *Bar) SetScrollTolerance(tolerance float64) {
	if tolerance < 0 {
		log.Printf("navbar: scroll tolerance %.1f is negative, using 0", tolerance)
		tolerance = 0
	}
	b.tracker.SetTolerance(tolerance)
}

// SetBarHeight updates the bar height after a layout change.
func (b *Bar) SetBarHeight(h float64) { b.machine.SetBarHeight(h) }

func (b *Bar) State() State { return b.machine.State() }

func (b *Bar) Visual() VisualState { return b.machine.Visual() }

func (b *Bar) Opacity() float64 { return b.machine.Opacity() }

// Reset shows the bar immediately, e.g. after the app regains focus or the window is resized.
func (b *Bar) Reset() {
	b.released = false
	b.machine.Reset()
}

// BeginDrag marks the start of a user gesture on the content view.
func (b *Bar) BeginDrag() {
	b.dragging = true
	b.released = false
}

// EndDrag marks the end of a gesture; the bar settles on a later Tick.
func (b *Bar) EndDrag() {
	if !b.dragging {
		return
	}
	b.dragging = false
	b.released = b.snapDelay > 0
}

// Dragging reports whether a gesture is in progress.
func (b *Bar) Dragging() bool { return b.dragging }

// Tick settles the bar once the content has been still for the snap delay after a release.
// Call it once per frame.
func (b *Bar) Tick() {
	if !b.released {
		return
	}
	view := b.tracker.View()
	if view == nil {
		b.released = false
		return
	}
	if b.clock.Now().Sub(b.tracker.LastObservation().At) < b.snapDelay {
		return
	}
	b.released = false
	b.machine.Settle(view.ContentOffset())
}

// Scrollable reports whether the attached content is tall enough to move the bar.
func (b *Bar) Scrollable() bool {
	ext, ok := b.tracker.View().(Extent)
	if !ok {
		return b.tracker.Attached()
	}
	content, viewport := ext.Extent()
	return content-b.tracker.Tolerance()-b.machine.BarHeight() > viewport
}

func (b *Bar) onDelta(d ScrollDelta) {
	if !b.Scrollable() {
		b.machine.Reset()
		return
	}
	b.machine.Apply(d)
}
