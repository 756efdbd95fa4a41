// Package term runs the scrolling feed and its navigation bar in a terminal using tcell.
// Offsets are kept in the same pixel units as the window demo; one cell row is CellHeight pixels.
package term

import "math"

const (
	CellHeight = 16.0
	BarRows    = 3
	animSpeed  = 0.35
	// idleTicks without scroll input end a gesture
	idleTicks = 8
)

// View is the terminal content view: a list of lines scrolled in pixel units.
type View struct {
	Lines    []string
	InsetRow int // rows reserved above the first line for the bar
	Rows     int // visible rows

	offset float64
	target float64

	observers map[int]func(float64)
	nextID    int

	gesture bool
	idle    int

	OnGestureStart func()
	OnGestureEnd   func()
}

func NewView(lines []string, rows int) *View {
	return &View{
		Lines:     lines,
		InsetRow:  BarRows,
		Rows:      rows,
		observers: make(map[int]func(float64)),
	}
}

func (v *View) ContentOffset() float64 { return v.offset }

func (v *View) ObserveOffset(fn func(float64)) func() {
	id := v.nextID
	v.nextID++
	v.observers[id] = fn
	return func() { delete(v.observers, id) }
}

func (v *View) Extent() (content, viewport float64) {
	return float64(len(v.Lines)+v.InsetRow) * CellHeight, float64(v.Rows) * CellHeight
}

// MaxOffset is the largest resting offset.
func (v *View) MaxOffset() float64 {
	content, viewport := v.Extent()
	return math.Max(content-viewport, 0)
}

// ScrollRows moves the target by n rows and starts a gesture.
func (v *View) ScrollRows(n float64) {
	v.target = math.Min(math.Max(v.target+n*CellHeight, 0), v.MaxOffset())
	v.idle = 0
	if !v.gesture {
		v.gesture = true
		if v.OnGestureStart != nil {
			v.OnGestureStart()
		}
	}
}

// SetOffset jumps straight to offset without animation; negative values are overscroll.
func (v *View) SetOffset(offset float64) {
	v.offset = offset
	v.target = math.Min(math.Max(offset, 0), v.MaxOffset())
	v.notify()
}

// Tick animates toward the target and ends idle gestures.
func (v *View) Tick() {
	if v.offset != v.target {
		v.offset += (v.target - v.offset) * animSpeed
		if math.Abs(v.offset-v.target) < 0.5 {
			v.offset = v.target
		}
		v.notify()
	}
	if v.gesture {
		v.idle++
		if v.idle >= idleTicks && v.offset == v.target {
			v.gesture = false
			if v.OnGestureEnd != nil {
				v.OnGestureEnd()
			}
		}
	}
}

func (v *View) notify() {
	for _, fn := range v.observers {
		fn(v.offset)
	}
}

// FirstRow returns the content row at the top of the screen.
func (v *View) FirstRow() int {
	return int(math.Floor(v.offset / CellHeight))
}
