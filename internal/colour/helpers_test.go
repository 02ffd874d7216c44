package colour

import (
	"image"
	"image/color"
)

// blocks builds a w x h image split into equal vertical stripes, one per colour.
func blocks(w, h int, colours ...RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stripe := w / len(colours)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := min(x/stripe, len(colours)-1)
			c := colours[idx]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// gradient builds a deterministic image covering a broad range of hues,
// saturations and values.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x * y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func containsColour(colours []RGB, want RGB) bool {
	for _, c := range colours {
		if c == want {
			return true
		}
	}
	return false
}
