package colour

import (
	"image"
)

// Mask marks which pixels of an image pass the saturation/brightness filter.
type Mask struct {
	Width, Height int
	bits          []bool
	count         int
}

// Count returns the number of pixels that passed.
func (m *Mask) Count() int {
	return m.count
}

// BuildMask keeps pixels whose 8-bit saturation is strictly greater than saturation
// and whose value is strictly greater than brightness.
func BuildMask(img image.Image, saturation, brightness int) *Mask {
	bounds := img.Bounds()
	m := &Mask{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		bits:   make([]bool, bounds.Dx()*bounds.Dy()),
	}

	eachPixel(img, func(i int, rgb RGB) {
		hsv := ToHSV8(rgb)
		if int(hsv.S) > saturation && int(hsv.V) > brightness {
			m.bits[i] = true
			m.count++
		}
	})
	return m
}

// FilterPixels returns the pixels selected by mask in row-major order.
func FilterPixels(img image.Image, mask *Mask) []RGB {
	out := make([]RGB, 0, mask.Count())
	eachPixel(img, func(i int, rgb RGB) {
		if mask.bits[i] {
			out = append(out, rgb)
		}
	})
	return out
}

// eachPixel visits every pixel in row-major order with its linear index.
// *image.RGBA is read directly from Pix.
func eachPixel(img image.Image, fn func(i int, rgb RGB)) {
	bounds := img.Bounds()
	w := bounds.Dx()

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < bounds.Dy(); y++ {
			row := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				o := row + x*4
				fn(y*w+x, RGB{R: rgba.Pix[o], G: rgba.Pix[o+1], B: rgba.Pix[o+2]})
			}
		}
		return
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			fn((y-bounds.Min.Y)*w+(x-bounds.Min.X), ToRGB(img.At(x, y)))
		}
	}
}
