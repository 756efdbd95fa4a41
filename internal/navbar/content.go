package navbar

import "time"

// ContentView is the scrollable view a Bar follows. The bar observes it but never owns it.
type ContentView interface {
	// ContentOffset returns the current vertical scroll offset (0 = top, negative = overscroll).
	ContentOffset() float64
	// ObserveOffset registers fn to be called on every offset change. The returned func unregisters it.
	ObserveOffset(fn func(offset float64)) (cancel func())
}

// Extent is implemented by content views that can report their size.
// Views that don't implement it are treated as always scrollable.
type Extent interface {
	Extent() (content, viewport float64)
}

// Clock supplies observation timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// ScrollObservation is a single offset notification.
type ScrollObservation struct {
	Offset float64
	At     time.Time
}

// Direction of a reported scroll delta.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// ScrollDelta is the movement reported since the last baseline.
// Positive magnitude means scrolling down (content moving up).
type ScrollDelta struct {
	Magnitude      float64
	PreviousOffset float64
	// Overscroll is set when the offset went above the content top; the bar must show fully.
	Overscroll bool
}

// Direction returns the direction of the delta.
func (d ScrollDelta) Direction() Direction {
	switch {
	case d.Overscroll || d.Magnitude < 0:
		return DirectionUp
	case d.Magnitude > 0:
		return DirectionDown
	default:
		return DirectionNone
	}
}
