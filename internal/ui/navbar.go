package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/scrollnav/internal/navbar"
)

// NavBar draws a navbar.Bar at the top of the window, offset by its translation.
type NavBar struct {
	Bar   *navbar.Bar
	Title string
	Width float64

	// displayY is the translation currently on screen; it trails the bar's value while settling.
	displayY float64

	// OnTitleTap is called when the visible bar is clicked, e.g. to scroll the content to the top.
	OnTitleTap func()
}

// NewNavBar creates a renderer for bar.
func NewNavBar(bar *navbar.Bar, title string, width float64) *NavBar {
	return &NavBar{Bar: bar, Title: title, Width: width}
}

// Height returns the full bar height.
func (nb *NavBar) Height() float64 { return nb.Bar.Machine().BarHeight() }

// VisibleHeight returns how much of the bar currently covers the content.
func (nb *NavBar) VisibleHeight() float64 { return nb.Height() - nb.displayY }

// Attach points the bar at a new content view, replacing the previous one.
func (nb *NavBar) Attach(sv *ScrollView) {
	if sv == nil {
		nb.Bar.SetScrollView(nil)
		return
	}
	sv.OnGestureStart = nb.Bar.BeginDrag
	sv.OnGestureEnd = nb.Bar.EndDrag
	nb.Bar.SetScrollView(sv)
}

// Update advances the settle timer and the on-screen translation.
func (nb *NavBar) Update() {
	nb.Bar.Tick()

	v := nb.Bar.Visual()
	if !v.IsAnimating {
		nb.displayY = v.TranslationY
		return
	}
	nb.displayY = Lerp(nb.displayY, v.TranslationY, BarAnimSpeed)
	if math.Abs(nb.displayY-v.TranslationY) < 0.5 {
		nb.displayY = v.TranslationY
		nb.Bar.Machine().FinishAnimation()
	}
}

// HandleClick consumes clicks on the visible part of the bar.
func (nb *NavBar) HandleClick(mx, my int) bool {
	if float64(my) >= nb.VisibleHeight() {
		return false
	}
	if nb.OnTitleTap != nil {
		nb.OnTitleTap()
	}
	return true
}

// Draw renders the bar. The background slides; title and state text fade with the bar's opacity.
func (nb *NavBar) Draw(dst *ebiten.Image) {
	h := nb.Height()
	y := -nb.displayY
	if y <= -h {
		return
	}
	alpha := (navbar.VisualState{TranslationY: nb.displayY}).Opacity(h)

	vector.DrawFilledRect(dst, 0, float32(y), float32(nb.Width), float32(h), ColorBar, false)
	vector.DrawFilledRect(dst, 0, float32(y+h-1), float32(nb.Width), 1, ColorSurfaceHover, false)

	DrawTextCentered(dst, nb.Title, nb.Width/2, y+h/2, FontSizeTitle, ColorText, alpha)
	DrawTextAlpha(dst, nb.Bar.State().String(), SectionPadding, y+h/2-FontSizeSmall/2, FontSizeSmall, ColorTextMuted, alpha)
}
