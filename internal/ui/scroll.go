package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ScrollState provides reusable vertical scroll tracking with smooth animation.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
}

// Animate performs smooth scroll interpolation.
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if math.Abs(s.ScrollY-s.TargetScrollY) < 0.5 {
		s.ScrollY = s.TargetScrollY
	}
}

// wheelIdleFrames is how many frames without wheel/key input end a gesture.
const wheelIdleFrames = 6

// ScrollView is a vertically scrolling viewport. It implements navbar.ContentView and navbar.Extent.
type ScrollView struct {
	ScrollState

	ContentHeight  float64
	ViewportHeight float64

	// OnGestureStart and OnGestureEnd bracket a drag, wheel or key scroll burst.
	OnGestureStart func()
	OnGestureEnd   func()

	observers map[int]func(float64)
	nextID    int
	notified  float64

	gesture      bool
	idleFrames   int
	dragging     bool
	dragTouch    ebiten.TouchID
	dragStartY   float64
	dragStartOff float64
}

func NewScrollView(contentHeight, viewportHeight float64) *ScrollView {
	return &ScrollView{
		ContentHeight:  contentHeight,
		ViewportHeight: viewportHeight,
		observers:      make(map[int]func(float64)),
	}
}

func (sv *ScrollView) ContentOffset() float64 { return sv.ScrollY }

func (sv *ScrollView) ObserveOffset(fn func(float64)) func() {
	id := sv.nextID
	sv.nextID++
	sv.observers[id] = fn
	return func() { delete(sv.observers, id) }
}

func (sv *ScrollView) Extent() (content, viewport float64) {
	return sv.ContentHeight, sv.ViewportHeight
}

// MaxScroll returns the largest resting offset.
func (sv *ScrollView) MaxScroll() float64 {
	return math.Max(sv.ContentHeight-sv.ViewportHeight, 0)
}

// ScrollBy moves the target offset, clamped to the content.
func (sv *ScrollView) ScrollBy(dy float64) {
	sv.ScrollTo(sv.TargetScrollY + dy)
}

// ScrollTo sets the target offset, clamped to the content.
func (sv *ScrollView) ScrollTo(y float64) {
	sv.TargetScrollY = math.Min(math.Max(y, 0), sv.MaxScroll())
}

// HandleInput reads wheel, keyboard and pointer drag input for this frame.
// keyUp/keyDown/pageUp/pageDown report whether the bound keys fired.
func (sv *ScrollView) HandleInput(keyUp, keyDown, pageUp, pageDown bool) {
	active := false

	if _, wy := MouseWheelDelta(); wy != 0 {
		sv.ScrollBy(-wy * ScrollWheelSpeed)
		active = true
	}
	page := sv.ViewportHeight * 0.9
	switch {
	case keyUp:
		sv.ScrollBy(-ScrollKeyStep)
		active = true
	case keyDown:
		sv.ScrollBy(ScrollKeyStep)
		active = true
	case pageUp:
		sv.ScrollBy(-page)
		active = true
	case pageDown:
		sv.ScrollBy(page)
		active = true
	}

	if sv.handleDrag() {
		active = true
	}

	if active {
		sv.idleFrames = 0
		sv.beginGesture()
	} else if sv.gesture && !sv.dragging {
		sv.idleFrames++
		if sv.idleFrames >= wheelIdleFrames {
			sv.endGesture()
		}
	}
}

func (sv *ScrollView) handleDrag() bool {
	if !sv.dragging {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			_, y := ebiten.TouchPosition(ids[0])
			sv.dragTouch = ids[0]
			sv.startDrag(float64(y))
			return true
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			_, y := ebiten.CursorPosition()
			sv.dragTouch = -1
			sv.startDrag(float64(y))
			return true
		}
		return false
	}

	var y int
	released := false
	if sv.dragTouch >= 0 {
		released = inpututil.IsTouchJustReleased(sv.dragTouch)
		_, y = ebiten.TouchPosition(sv.dragTouch)
	} else {
		released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
		_, y = ebiten.CursorPosition()
	}
	if released {
		sv.dragging = false
		sv.ScrollTo(sv.TargetScrollY) // spring back from overscroll
		sv.endGesture()
		return false
	}
	sv.DragTo(float64(y))
	return true
}

func (sv *ScrollView) startDrag(y float64) {
	sv.dragging = true
	sv.dragStartY = y
	sv.dragStartOff = sv.TargetScrollY
}

// DragTo follows the pointer. Past the top the content moves with resistance.
func (sv *ScrollView) DragTo(y float64) {
	off := sv.dragStartOff - (y - sv.dragStartY)
	if off < 0 {
		off *= OverscrollResistance
	}
	sv.TargetScrollY = math.Min(off, sv.MaxScroll())
	sv.ScrollY = sv.TargetScrollY
}

func (sv *ScrollView) beginGesture() {
	if sv.gesture {
		return
	}
	sv.gesture = true
	if sv.OnGestureStart != nil {
		sv.OnGestureStart()
	}
}

func (sv *ScrollView) endGesture() {
	if !sv.gesture {
		return
	}
	sv.gesture = false
	sv.idleFrames = 0
	if sv.OnGestureEnd != nil {
		sv.OnGestureEnd()
	}
}

// Update animates the offset and notifies observers when it moved.
func (sv *ScrollView) Update() {
	if !sv.dragging {
		sv.Animate()
	}
	if sv.ScrollY == sv.notified {
		return
	}
	sv.notified = sv.ScrollY
	for _, fn := range sv.observers {
		fn(sv.ScrollY)
	}
}
