package icon

import (
	"image"
	"testing"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("got %d images, want 2", len(imgs))
	}
	for i, want := range []int{64, 32} {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("image %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
	}
}

func TestGenerateDrawsBar(t *testing.T) {
	img := Generate()[0].(*image.RGBA)
	// top center is covered by the bar, which is mostly the primary blue
	c := img.RGBAAt(32, 2)
	if c.B <= c.R {
		t.Errorf("pixel under the bar = %+v, expected blue tint", c)
	}
	// corners are outside the rounded background
	if a := img.RGBAAt(0, 63).A; a != 0 {
		t.Errorf("corner alpha = %d, want transparent", a)
	}
}
