package ui

import "github.com/hajimehoshi/ebiten/v2"

// Input is the per-frame key state after keybind resolution.
type Input struct {
	ScrollUp, ScrollDown bool
	PageUp, PageDown     bool
	Enter, Back          bool
}

// Screen is the interface for all UI screens (Feed, Detail).
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update(in Input) (*ScreenTransition, error)
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// ScrollView returns the content the bar follows, or nil.
	ScrollView() *ScrollView
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
	TransitionReplace
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop
}

// ScreenManager manages a stack of screens and keeps the bar attached to the top one.
type ScreenManager struct {
	stack  []Screen
	NavBar *NavBar
}

func NewScreenManager(nb *NavBar) *ScreenManager {
	return &ScreenManager{NavBar: nb}
}

func (sm *ScreenManager) Push(s Screen) {
	sm.stack = append(sm.stack, s)
	s.OnEnter()
	sm.attach()
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) <= 1 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	sm.stack[len(sm.stack)-1].OnEnter()
	sm.attach()
}

func (sm *ScreenManager) Replace(s Screen) {
	if len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack[len(sm.stack)-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	s.OnEnter()
	sm.attach()
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// attach moves the bar to the current screen's content; the previous view is detached.
func (sm *ScreenManager) attach() {
	if sm.NavBar == nil {
		return
	}
	var sv *ScrollView
	if s := sm.Current(); s != nil {
		sv = s.ScrollView()
	}
	sm.NavBar.Attach(sv)
}

// Resize updates every screen's viewport after a window size change.
func (sm *ScreenManager) Resize(w, h float64) {
	for _, s := range sm.stack {
		if sv := s.ScrollView(); sv != nil {
			sv.ViewportHeight = h
			sv.ScrollTo(sv.TargetScrollY)
		}
	}
	if sm.NavBar != nil {
		sm.NavBar.Width = w
	}
}

func (sm *ScreenManager) Update(in Input) error {
	s := sm.Current()
	if s == nil {
		return nil
	}

	// Clicks on the visible bar are intercepted before the screen gets them
	if sm.NavBar != nil {
		if mx, my, clicked := MouseJustClicked(); clicked && sm.NavBar.HandleClick(mx, my) {
			sm.NavBar.Update()
			return nil
		}
	}

	tr, err := s.Update(in)
	if err != nil {
		return err
	}
	if tr != nil {
		switch tr.Type {
		case TransitionPush:
			sm.Push(tr.Screen)
		case TransitionPop:
			sm.Pop()
		case TransitionReplace:
			sm.Replace(tr.Screen)
		}
	}

	if sm.NavBar != nil {
		sm.NavBar.Update()
	}
	return nil
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	s := sm.Current()
	if s == nil {
		return
	}
	s.Draw(dst)
	if sm.NavBar != nil {
		sm.NavBar.Draw(dst)
	}
}
