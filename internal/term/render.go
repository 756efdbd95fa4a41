package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/depeter/scrollnav/internal/navbar"
)

var (
	styleContent = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleBar     = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleBarDim  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorAqua)
)

// HiddenRows converts the bar translation to whole hidden rows.
func HiddenRows(translationY float64) int {
	return int(math.Round(translationY / CellHeight))
}

// Draw renders the content rows and the bar on top of them.
func Draw(s tcell.Screen, v *View, bar *navbar.Bar, title string) {
	s.Clear()
	w, h := s.Size()

	first := v.FirstRow() - v.InsetRow
	for y := 0; y < h; y++ {
		i := first + y
		if i < 0 || i >= len(v.Lines) {
			continue
		}
		drawString(s, 1, y, w, v.Lines[i], styleContent)
	}

	hidden := HiddenRows(bar.Visual().TranslationY)
	textStyle := styleBar
	if bar.Opacity() < 0.5 {
		textStyle = styleBarDim
	}
	for row := 0; row < BarRows; row++ {
		y := row - hidden
		if y < 0 || y >= h {
			continue
		}
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, styleBar)
		}
		switch row {
		case BarRows / 2:
			drawString(s, (w-runewidth.StringWidth(title))/2, y, w, title, textStyle)
		case BarRows - 1:
			drawString(s, 1, y, w, bar.State().String(), styleStatus)
		}
	}
	s.Show()
}

func drawString(s tcell.Screen, x, y, maxX int, str string, style tcell.Style) {
	for _, r := range str {
		if x >= maxX {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x += max(runewidth.RuneWidth(r), 1)
	}
}
