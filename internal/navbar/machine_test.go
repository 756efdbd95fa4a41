package navbar

import (
	"math/rand"
	"testing"
)

func TestMachineInitialState(t *testing.T) {
	m := NewMachine(44)
	if m.State() != StateShown {
		t.Errorf("initial state = %v, want Shown", m.State())
	}
	if m.Visual().TranslationY != 0 || m.Opacity() != 1 {
		t.Errorf("initial visual = %+v opacity %v", m.Visual(), m.Opacity())
	}
}

func TestMachineApply(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		wantY  float64
		want   State
	}{
		{"partial down", []float64{20}, 20, StateTransitioning},
		{"exactly hidden", []float64{44}, 44, StateHidden},
		{"past hidden clamps", []float64{30, 30}, 44, StateHidden},
		{"back to shown", []float64{30, -30}, 0, StateShown},
		{"up from shown clamps", []float64{-50}, 0, StateShown},
		{"hidden then partial up", []float64{100, -4}, 40, StateTransitioning},
		{"zero delta", []float64{0}, 0, StateShown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(44)
			for _, d := range tt.deltas {
				m.Apply(ScrollDelta{Magnitude: d})
			}
			if got := m.Visual().TranslationY; got != tt.wantY {
				t.Errorf("translationY = %v, want %v", got, tt.wantY)
			}
			if m.State() != tt.want {
				t.Errorf("state = %v, want %v", m.State(), tt.want)
			}
		})
	}
}

func TestMachineOverscrollForcesShown(t *testing.T) {
	m := NewMachine(44)
	m.Apply(ScrollDelta{Magnitude: 44})
	if m.State() != StateHidden {
		t.Fatalf("state = %v, want Hidden", m.State())
	}
	m.Apply(ScrollDelta{Magnitude: -1, Overscroll: true})
	if m.State() != StateShown || m.Visual().TranslationY != 0 {
		t.Errorf("after overscroll: %v %+v", m.State(), m.Visual())
	}
}

func TestMachineClampingInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	m := NewMachine(44)
	for i := 0; i < 5000; i++ {
		m.Apply(ScrollDelta{Magnitude: (r.Float64() - 0.5) * 200, Overscroll: r.Intn(50) == 0})
		y := m.Visual().TranslationY
		if y < 0 || y > 44 {
			t.Fatalf("step %d: translationY %v out of range", i, y)
		}
	}
}

func TestMachineNotifications(t *testing.T) {
	m := NewMachine(44)
	var transitions [][2]State
	changes := 0
	m.OnStateChange = func(from, to State) { transitions = append(transitions, [2]State{from, to}) }
	m.OnChange = func(VisualState) { changes++ }

	m.Apply(ScrollDelta{Magnitude: 10})
	m.Apply(ScrollDelta{Magnitude: 10})
	m.Apply(ScrollDelta{Magnitude: 50})
	m.Apply(ScrollDelta{Magnitude: 5}) // already hidden, no change

	want := [][2]State{
		{StateShown, StateTransitioning},
		{StateTransitioning, StateHidden},
	}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, transitions[i], want[i])
		}
	}
	if changes != 3 {
		t.Errorf("OnChange fired %d times, want 3", changes)
	}
}

func TestMachineSettle(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		offset float64
		wantY  float64
	}{
		{"less than half hidden shows", 20, 500, 0},
		{"more than half hidden hides", 30, 500, 44},
		{"near top always shows", 40, 30, 0},
		{"already hidden", 44, 500, 44},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(44)
			m.Apply(ScrollDelta{Magnitude: tt.y})
			m.Settle(tt.offset)
			if got := m.Visual().TranslationY; got != tt.wantY {
				t.Errorf("translationY = %v, want %v", got, tt.wantY)
			}
			if tt.y != tt.wantY && !m.Visual().IsAnimating {
				t.Error("settle should mark the bar animating")
			}
			m.FinishAnimation()
			if m.Visual().IsAnimating {
				t.Error("FinishAnimation should clear IsAnimating")
			}
		})
	}
}

func TestMachineSetBarHeight(t *testing.T) {
	m := NewMachine(44)
	m.Apply(ScrollDelta{Magnitude: 44})
	m.SetBarHeight(32)
	if m.State() != StateHidden || m.Visual().TranslationY != 32 {
		t.Errorf("hidden bar after shrink: %v %+v", m.State(), m.Visual())
	}

	m.Reset()
	m.Apply(ScrollDelta{Magnitude: 30})
	m.SetBarHeight(20)
	if m.Visual().TranslationY != 20 || m.State() != StateHidden {
		t.Errorf("partial bar after shrink: %v %+v", m.State(), m.Visual())
	}

	m.SetBarHeight(-1)
	if m.BarHeight() != 0 || m.State() != StateShown {
		t.Errorf("negative height: %v %v", m.BarHeight(), m.State())
	}
}

func TestVisualStateOpacity(t *testing.T) {
	if got := (VisualState{TranslationY: 11}).Opacity(44); got != 0.75 {
		t.Errorf("opacity = %v, want 0.75", got)
	}
	if got := (VisualState{TranslationY: 44}).Opacity(44); got != 0 {
		t.Errorf("opacity = %v, want 0", got)
	}
	if got := (VisualState{}).Opacity(0); got != 1 {
		t.Errorf("opacity with zero height = %v, want 1", got)
	}
}
