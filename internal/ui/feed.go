package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FeedItem is one row of the demo feed.
type FeedItem struct {
	Title   string
	Summary string
}

// GenerateFeed returns n placeholder rows.
func GenerateFeed(n int) []FeedItem {
	items := make([]FeedItem, n)
	for i := range items {
		items[i] = FeedItem{
			Title:   fmt.Sprintf("Item %d", i+1),
			Summary: fmt.Sprintf("Row %d of %d. Scroll down to hide the bar, up to bring it back.", i+1, n),
		}
	}
	return items
}

// FeedScreen is a long list of rows under the bar.
type FeedScreen struct {
	items  []FeedItem
	scroll *ScrollView
	inset  float64 // space reserved above the first row for the bar
	width  float64

	// OnOpen builds the screen pushed when a row is opened.
	OnOpen func(item FeedItem) Screen
}

func NewFeedScreen(items []FeedItem, width, height, inset float64) *FeedScreen {
	content := inset + float64(len(items))*(RowHeight+RowGap) + SectionPadding
	return &FeedScreen{
		items:  items,
		scroll: NewScrollView(content, height),
		inset:  inset,
		width:  width,
	}
}

func (fs *FeedScreen) Name() string { return "Feed" }
func (fs *FeedScreen) ScrollView() *ScrollView { return fs.scroll }
func (fs *FeedScreen) OnEnter() {}
func (fs *FeedScreen) OnExit() {}

// topRow returns the index of the first row not scrolled off the top.
func (fs *FeedScreen) topRow() int {
	i := int((fs.scroll.ScrollY + RowGap) / (RowHeight + RowGap))
	return min(max(i, 0), len(fs.items)-1)
}

func (fs *FeedScreen) Update(in Input) (*ScreenTransition, error) {
	fs.scroll.HandleInput(in.ScrollUp, in.ScrollDown, in.PageUp, in.PageDown)
	fs.scroll.Update()

	if in.Enter && fs.OnOpen != nil && len(fs.items) > 0 {
		return &ScreenTransition{Type: TransitionPush, Screen: fs.OnOpen(fs.items[fs.topRow()])}, nil
	}
	return nil, nil
}

func (fs *FeedScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)

	viewH := fs.scroll.ViewportHeight
	w := float64(dst.Bounds().Dx())
	if w == 0 {
		w = fs.width
	}
	highlight := fs.topRow()
	for i, item := range fs.items {
		y := fs.inset + float64(i)*(RowHeight+RowGap) - fs.scroll.ScrollY
		if y+RowHeight < 0 {
			continue
		}
		if y > viewH {
			break
		}
		x := float64(SectionPadding)
		rw := w - 2*SectionPadding
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(rw), RowHeight, ColorSurface, false)
		if i == highlight {
			vector.StrokeRect(dst, float32(x), float32(y), float32(rw), RowHeight, 2, ColorFocusBorder, false)
		}
		DrawText(dst, item.Title, x+16, y+12, FontSizeHeading, ColorText)
		DrawText(dst, item.Summary, x+16, y+42, FontSizeSmall, ColorTextSecondary)
	}
}
