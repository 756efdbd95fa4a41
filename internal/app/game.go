package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/scrollnav/internal/config"
	"github.com/depeter/scrollnav/internal/navbar"
	"github.com/depeter/scrollnav/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Bar     *navbar.Bar
	NavBar  *ui.NavBar
	Screens *ui.ScreenManager

	Width, Height int

	focused bool
}

// NewGame creates the Game, its bar and the root feed screen.
func NewGame(cfg *config.Config) *Game {
	bar := navbar.New(navbar.Options{
		Tolerance: cfg.Bar.Tolerance,
		BarHeight: cfg.Bar.Height,
		SnapDelay: cfg.Bar.SnapDelay(),
	})
	bar.Machine().OnStateChange = func(from, to navbar.State) {
		log.Printf("navbar: %s -> %s", from, to)
	}

	w, h := float64(cfg.UI.Width), float64(cfg.UI.Height)
	nb := ui.NewNavBar(bar, cfg.Bar.Title, w)

	g := &Game{
		Config:  cfg,
		Bar:     bar,
		NavBar:  nb,
		Screens: ui.NewScreenManager(nb),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		focused: true,
	}

	feed := ui.NewFeedScreen(ui.GenerateFeed(cfg.UI.Rows), w, h, nb.Height())
	feed.OnOpen = func(item ui.FeedItem) ui.Screen {
		return ui.NewDetailScreen(item, float64(g.Width), float64(g.Height), nb.Height())
	}
	nb.OnTitleTap = func() {
		if sv := g.Screens.Current().ScrollView(); sv != nil {
			sv.ScrollTo(0)
		}
	}
	g.Screens.Push(feed)
	return g
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if keyJustPressed(g.Config.Keybinds.Debug) {
		ui.ToggleDebugOverlay()
	}
	if keyJustPressed(g.Config.Keybinds.Reset) {
		g.Bar.Reset()
	}
	if keyJustPressed(g.Config.Keybinds.ToleranceDown) {
		g.adjustTolerance(-toleranceStep)
	}
	if keyJustPressed(g.Config.Keybinds.ToleranceUp) {
		g.adjustTolerance(toleranceStep)
	}

	// Regaining focus shows the bar again
	focused := ebiten.IsFocused()
	if focused && !g.focused {
		g.Bar.Reset()
	}
	g.focused = focused

	return g.Screens.Update(readInput(g.Config.Keybinds))
}

// toleranceStep is how far one key press moves the scroll tolerance.
const toleranceStep = 4

// adjustTolerance changes the live tolerance; the bar keeps its position and baseline.
func (g *Game) adjustTolerance(delta float64) {
	g.Bar.SetScrollTolerance(g.Bar.ScrollTolerance() + delta)
	g.Config.Bar.Tolerance = g.Bar.ScrollTolerance()
	log.Printf("navbar: scroll tolerance %.0f", g.Config.Bar.Tolerance)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Bar)
}

// Layout follows the window size; a size change resets the bar like a rotation would.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.Screens.Resize(float64(outsideWidth), float64(outsideHeight))
		g.Bar.Reset()
	}
	return g.Width, g.Height
}
