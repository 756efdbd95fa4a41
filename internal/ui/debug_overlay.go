package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/scrollnav/internal/navbar"
)

var debugOverlayVisible bool

// ToggleDebugOverlay flips the debug overlay.
func ToggleDebugOverlay() {
	debugOverlayVisible = !debugOverlayVisible
}

// DrawDebugOverlay draws tracker and state machine values if the overlay is visible.
func DrawDebugOverlay(screen *ebiten.Image, bar *navbar.Bar) {
	if !debugOverlayVisible || bar == nil {
		return
	}

	const (
		padX    = 12.0
		padY    = 10.0
		lineH   = 18.0
		marginR = 12.0
		marginB = 12.0
	)

	tr := bar.Tracker()
	v := bar.Visual()
	lines := []string{
		"Debug: navbar (toggle to close)",
		fmt.Sprintf("state       %s", bar.State()),
		fmt.Sprintf("translation %.1f / %.1f", v.TranslationY, bar.Machine().BarHeight()),
		fmt.Sprintf("opacity     %.2f", bar.Opacity()),
		fmt.Sprintf("animating   %t", v.IsAnimating),
		fmt.Sprintf("tolerance   %.1f", tr.Tolerance()),
		fmt.Sprintf("baseline    %.1f", tr.Baseline()),
		fmt.Sprintf("offset      %.1f", tr.LastObservation().Offset),
		fmt.Sprintf("attached    %t  scrollable %t", tr.Attached(), bar.Scrollable()),
		fmt.Sprintf("dragging    %t", bar.Dragging()),
	}

	b := screen.Bounds()
	panelW := 300.0
	panelH := float64(len(lines))*lineH + padY*2
	px := float64(b.Dx()) - panelW - marginR
	py := float64(b.Dy()) - panelH - marginB

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	y := py + padY
	for i, line := range lines {
		clr := ColorText
		if i == 0 {
			clr = ColorPrimary
		}
		DrawText(screen, line, px+padX, y, FontSizeSmall, clr)
		y += lineH
	}
}
