package navbar

import "time"

// fakeView is a ContentView driven directly by tests.
type fakeView struct {
	offset    float64
	observers map[int]func(float64)
	nextID    int

	content, viewport float64
}

func newFakeView(offset float64) *fakeView {
	return &fakeView{offset: offset, observers: make(map[int]func(float64))}
}

func (v *fakeView) ContentOffset() float64 { return v.offset }

func (v *fakeView) ObserveOffset(fn func(float64)) func() {
	id := v.nextID
	v.nextID++
	v.observers[id] = fn
	return func() { delete(v.observers, id) }
}

func (v *fakeView) scrollTo(offset float64) {
	v.offset = offset
	for _, fn := range v.observers {
		fn(offset)
	}
}

// sizedView adds Extent to fakeView.
type sizedView struct {
	*fakeView
}

func (v sizedView) Extent() (float64, float64) { return v.content, v.viewport }

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
