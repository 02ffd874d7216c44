package image

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

// Resample selects the interpolation kernel used when scaling an image.
type Resample string

const (
	// ResampleNearest copies the nearest source pixel and never invents new colours.
	ResampleNearest Resample = "nearest"
	// ResampleBilinear blends the four nearest source pixels.
	ResampleBilinear Resample = "bilinear"
	// ResampleCatmullRom is a bicubic kernel; the default.
	ResampleCatmullRom Resample = "catmullrom"
)

// ValidResamples returns the supported resample modes.
func ValidResamples() []Resample {
	return []Resample{ResampleNearest, ResampleBilinear, ResampleCatmullRom}
}

// ParseResample converts a string to a Resample mode.
func ParseResample(s string) (Resample, error) {
	r := Resample(s)
	if slices.Contains(ValidResamples(), r) {
		return r, nil
	}
	return "", fmt.Errorf("invalid resample mode: %s (valid: nearest, bilinear, catmullrom)", s)
}

func (r Resample) scaler() draw.Scaler {
	switch r {
	case ResampleNearest:
		return draw.NearestNeighbor
	case ResampleBilinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

// Resize scales img to exactly width x height and returns an opaque RGBA canvas.
// Transparent areas are flattened onto black, which matches dropping the alpha channel
// of premultiplied pixel data.
func Resize(img image.Image, width, height int, mode Resample) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	mode.scaler().Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
