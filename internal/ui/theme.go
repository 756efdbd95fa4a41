package ui

import "image/color"

// Colors — dark theme
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorBar           = color.RGBA{R: 0x16, G: 0x16, B: 0x1E, A: 0xF0}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	SectionPadding = 20
	RowHeight      = 72
	RowGap         = 8

	FontSizeTitle   = 24
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 13

	// BarAnimSpeed is the per-frame lerp factor while the bar settles.
	BarAnimSpeed    = 0.25
	ScrollAnimSpeed = 0.2

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 40
	// ScrollKeyStep is pixels per arrow key press.
	ScrollKeyStep = 48

	// OverscrollResistance scales drag distance past the content top.
	OverscrollResistance = 0.4
)
