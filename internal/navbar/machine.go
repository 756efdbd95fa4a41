package navbar

import "math"

// State is the bar's coarse position.
type State int

const (
	StateShown State = iota
	StateTransitioning
	StateHidden
)

func (s State) String() string {
	switch s {
	case StateShown:
		return "Shown"
	case StateTransitioning:
		return "Transitioning"
	case StateHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// VisualState is what the renderer applies to the bar.
// TranslationY is 0 when fully shown and barHeight when fully hidden.
type VisualState struct {
	TranslationY float64
	IsAnimating  bool
}

// Opacity returns the bar content alpha for the translation: 1 shown, 0 hidden.
func (v VisualState) Opacity(barHeight float64) float64 {
	if barHeight <= 0 {
		return 1
	}
	return clamp(1-v.TranslationY/barHeight, 0, 1)
}

// Machine maps reported scroll deltas to the bar's translation, 1:1.
type Machine struct {
	barHeight float64
	visual    VisualState
	state     State

	// OnStateChange fires when the coarse state changes.
	OnStateChange func(from, to State)
	// OnChange fires whenever the visual state changes.
	OnChange func(VisualState)
}

// NewMachine returns a machine in the Shown state.
func NewMachine(barHeight float64) *Machine {
	return &Machine{barHeight: math.Max(barHeight, 0)}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Visual() VisualState { return m.visual }

func (m *Machine) BarHeight() float64 { return m.barHeight }

// Opacity returns the alpha for the bar's content at the current translation.
func (m *Machine) Opacity() float64 { return m.visual.Opacity(m.barHeight) }

// Apply moves the bar by the delta. Overscroll forces the bar fully shown.
func (m *Machine) Apply(d ScrollDelta) {
	if d.Overscroll {
		m.set(VisualState{})
		return
	}
	if d.Magnitude == 0 {
		return
	}
	m.set(VisualState{TranslationY: m.visual.TranslationY + d.Magnitude})
}

// Settle snaps a partially moved bar after the user lets go. The bar shows when it is
// less than half hidden or the content is within one bar height of the top.
func (m *Machine) Settle(scrollOffset float64) {
	target := m.barHeight
	if m.visual.TranslationY < m.barHeight/2 || scrollOffset < m.barHeight {
		target = 0
	}
	if target == m.visual.TranslationY {
		return
	}
	m.set(VisualState{TranslationY: target, IsAnimating: true})
}

// FinishAnimation is called by the renderer once it has caught up with a settled position.
func (m *Machine) FinishAnimation() {
	if !m.visual.IsAnimating {
		return
	}
	m.set(VisualState{TranslationY: m.visual.TranslationY})
}

// Reset shows the bar without animation.
func (m *Machine) Reset() {
	m.set(VisualState{})
}

// SetBarHeight updates the layout height and re-clamps the translation.
// A fully hidden bar stays fully hidden.
func (m *Machine) SetBarHeight(h float64) {
	h = math.Max(h, 0)
	if h == m.barHeight {
		return
	}
	hidden := m.state == StateHidden
	m.barHeight = h
	v := m.visual
	if hidden {
		v.TranslationY = h
	}
	m.set(v)
}

func (m *Machine) set(v VisualState) {
	v.TranslationY = clamp(v.TranslationY, 0, m.barHeight)

	prev := m.state
	switch {
	case v.TranslationY <= 0:
		m.state = StateShown
	case v.TranslationY >= m.barHeight:
		m.state = StateHidden
	default:
		m.state = StateTransitioning
	}

	changed := v != m.visual
	m.visual = v

	if prev != m.state && m.OnStateChange != nil {
		m.OnStateChange(prev, m.state)
	}
	if changed && m.OnChange != nil {
		m.OnChange(v)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
