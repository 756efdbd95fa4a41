package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

const detailParagraph = "The navigation bar follows this page's scroll offset one to one. " +
	"Small movements below the scroll tolerance are ignored, larger ones slide the bar out of the way. " +
	"Letting go while the bar is half hidden snaps it fully open or closed. " +
	"Pulling past the top always brings it back."

// DetailScreen shows a long text for a single feed item. It has its own scroll view,
// so opening it moves the bar to a fresh content view.
type DetailScreen struct {
	item   FeedItem
	body   string
	scroll *ScrollView
	inset  float64
	width  float64
}

func NewDetailScreen(item FeedItem, width, height, inset float64) *DetailScreen {
	return &DetailScreen{
		item:   item,
		body:   strings.TrimSpace(strings.Repeat(detailParagraph+" ", 12)),
		scroll: NewScrollView(height, height),
		inset:  inset,
		width:  width,
	}
}

func (ds *DetailScreen) Name() string { return "Detail: " + ds.item.Title }
func (ds *DetailScreen) ScrollView() *ScrollView { return ds.scroll }
func (ds *DetailScreen) OnExit() {}

// OnEnter measures the body so the scroll view knows how tall the content is.
func (ds *DetailScreen) OnEnter() {
	textW := ds.width - 2*SectionPadding
	ds.scroll.ContentHeight = ds.inset + FontSizeTitle*2 + WrappedHeight(ds.body, textW, FontSizeBody) + SectionPadding
}

func (ds *DetailScreen) Update(in Input) (*ScreenTransition, error) {
	if in.Back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	ds.scroll.HandleInput(in.ScrollUp, in.ScrollDown, in.PageUp, in.PageDown)
	ds.scroll.Update()
	return nil, nil
}

func (ds *DetailScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)
	y := ds.inset - ds.scroll.ScrollY
	DrawText(dst, ds.item.Title, SectionPadding, y+8, FontSizeTitle, ColorPrimary)
	DrawTextWrapped(dst, ds.body, SectionPadding, y+FontSizeTitle*2, ds.width-2*SectionPadding, FontSizeBody, ColorText)
}
