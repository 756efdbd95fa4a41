package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/scrollnav/internal/config"
	"github.com/depeter/scrollnav/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":    ebiten.KeySpace,
	"enter":    ebiten.KeyEnter,
	"return":   ebiten.KeyEnter,
	"escape":   ebiten.KeyEscape,
	"esc":      ebiten.KeyEscape,
	"home":     ebiten.KeyHome,
	"end":      ebiten.KeyEnd,
	"up":       ebiten.KeyArrowUp,
	"down":     ebiten.KeyArrowDown,
	"pageup":   ebiten.KeyPageUp,
	"pagedown": ebiten.KeyPageDown,
	"f1":       ebiten.KeyF1,
	"f2":       ebiten.KeyF2,
	"f3":       ebiten.KeyF3,
	"f12":      ebiten.KeyF12,
	"d":        ebiten.KeyD,
	"j":        ebiten.KeyJ,
	"k":        ebiten.KeyK,
	"r":        ebiten.KeyR,
	"t":        ebiten.KeyT,
	"[":        ebiten.KeyBracketLeft,
	"]":        ebiten.KeyBracketRight,
	"-":        ebiten.KeyMinus,
	"=":        ebiten.KeyEqual,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// keyRepeating reports a press on the first frame and then at the repeat interval while held.
func keyRepeating(name string) bool {
	k, ok := parseKey(name)
	if !ok {
		return false
	}
	d := inpututil.KeyPressDuration(k)
	if d == 0 {
		return false
	}
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// readInput resolves the configured keybinds for this frame.
func readInput(kb config.KeybindConfig) ui.Input {
	return ui.Input{
		ScrollUp:   keyRepeating(kb.ScrollUp),
		ScrollDown: keyRepeating(kb.ScrollDown),
		PageUp:     keyRepeating(kb.PageUp),
		PageDown:   keyRepeating(kb.PageDown),
		Enter:      inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Back: inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3),
	}
}
