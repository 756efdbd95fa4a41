package term

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/depeter/scrollnav/internal/config"
	"github.com/depeter/scrollnav/internal/navbar"
)

const tickInterval = 16 * time.Millisecond // ~60 FPS

// App is the terminal demo: one View, one Bar, one tcell screen.
type App struct {
	screen tcell.Screen
	view   *View
	bar    *navbar.Bar
	title  string
}

// NewApp wires a bar to a feed view sized for screen.
func NewApp(screen tcell.Screen, cfg *config.Config) *App {
	lines := make([]string, cfg.UI.Rows)
	for i := range lines {
		lines[i] = fmt.Sprintf("Item %-4d scroll down to hide the bar, up to bring it back", i+1)
	}

	bar := navbar.New(navbar.Options{
		Tolerance: cfg.Bar.Tolerance,
		BarHeight: BarRows * CellHeight,
		SnapDelay: cfg.Bar.SnapDelay(),
	})

	_, h := screen.Size()
	view := NewView(lines, h)
	view.OnGestureStart = bar.BeginDrag
	view.OnGestureEnd = bar.EndDrag
	bar.SetScrollView(view)

	return &App{screen: screen, view: view, bar: bar, title: cfg.Bar.Title}
}

func (a *App) Bar() *navbar.Bar { return a.bar }

func (a *App) View() *View { return a.view }

// HandleEvent applies one tcell event. It returns false when the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.scrollUp(1)
		case tcell.KeyDown:
			a.view.ScrollRows(1)
		case tcell.KeyPgUp:
			a.scrollUp(float64(a.view.Rows - 1))
		case tcell.KeyPgDn:
			a.view.ScrollRows(float64(a.view.Rows - 1))
		case tcell.KeyHome:
			a.view.ScrollRows(-float64(len(a.view.Lines)))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				a.bar.Reset()
			case 'k':
				a.scrollUp(1)
			case 'j':
				a.view.ScrollRows(1)
			case '-':
				a.bar.SetScrollTolerance(a.bar.ScrollTolerance() - CellHeight/2)
			case '+', '=':
				a.bar.SetScrollTolerance(a.bar.ScrollTolerance() + CellHeight/2)
			}
		}

	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			a.scrollUp(3)
		case ev.Buttons()&tcell.WheelDown != 0:
			a.view.ScrollRows(3)
		}

	case *tcell.EventResize:
		_, h := a.screen.Size()
		a.view.Rows = h
		a.screen.Sync()
		a.bar.Reset()
	}
	return true
}

// scrollUp scrolls up n rows; at the top it bounces into overscroll instead.
func (a *App) scrollUp(n float64) {
	if a.view.ContentOffset() <= 0 {
		a.view.SetOffset(-CellHeight / 2)
		return
	}
	a.view.ScrollRows(-n)
}

// Tick advances animation and the bar's settle timer, then redraws.
func (a *App) Tick() {
	a.view.Tick()
	a.bar.Tick()
	if a.bar.Visual().IsAnimating {
		a.bar.Machine().FinishAnimation()
	}
	Draw(a.screen, a.view, a.bar, a.title)
}

// Run opens the terminal and blocks until the user quits.
func Run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("error creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// log lines would corrupt the screen
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	a := NewApp(screen, cfg)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Tick()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
