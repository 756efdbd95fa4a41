package icon

import (
	"image"
	"image/color"
)

var (
	primary = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	darkBG  = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	rowCol  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	barCol  = color.NRGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xB0}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a list of rows with a bar half slid off the top.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s-1, s-1, s*0.16, darkBG)

	for i := 0; i < 4; i++ {
		y := s*0.30 + float64(i)*s*0.17
		fillRoundedRect(img, s*0.14, y, s*0.72, s*0.11, s*0.03, rowCol)
	}

	// receding bar
	fillRoundedRect(img, s*0.08, -s*0.06, s*0.84, s*0.24, s*0.05, barCol)
	fillRoundedRect(img, s*0.36, s*0.06, s*0.28, s*0.04, s*0.02, primary)

	return img
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := max(int(yf), 0); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := max(int(xf), 0); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if inRoundedRect(float64(x), float64(y), xf, yf, wf, hf, r) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func inRoundedRect(fx, fy, xf, yf, wf, hf, r float64) bool {
	var cx, cy float64
	switch {
	case fx < xf+r:
		cx = xf + r
	case fx > xf+wf-r:
		cx = xf + wf - r
	default:
		return true
	}
	switch {
	case fy < yf+r:
		cy = yf + r
	case fy > yf+hf-r:
		cy = yf + hf - r
	default:
		return true
	}
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= r*r
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA() // premultiplied
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	nr := r0 + uint32(existing.R)*257*inv/0xFFFF
	ng := g0 + uint32(existing.G)*257*inv/0xFFFF
	nb := b0 + uint32(existing.B)*257*inv/0xFFFF
	na := a0 + uint32(existing.A)*257*inv/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: uint8(na >> 8),
	})
}
