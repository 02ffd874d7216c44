package image

import (
	"image"
	"image/color"
	"testing"
)

func TestResizeDimensions(t *testing.T) {
	src := solid(37, 11, color.RGBA{G: 255, A: 255})

	for _, mode := range ValidResamples() {
		t.Run(string(mode), func(t *testing.T) {
			dst := Resize(src, 600, 400, mode)
			if dst.Bounds() != image.Rect(0, 0, 600, 400) {
				t.Fatalf("Bounds = %v, want 600x400", dst.Bounds())
			}
			// A uniform source stays uniform regardless of kernel.
			for _, p := range []image.Point{{0, 0}, {299, 199}, {599, 399}} {
				got := dst.RGBAAt(p.X, p.Y)
				if got != (color.RGBA{G: 255, A: 255}) {
					t.Errorf("pixel %v = %+v, want pure green", p, got)
				}
			}
		})
	}
}

func TestResizeNearestKeepsPalette(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{B: 255, A: 255})

	dst := Resize(src, 60, 40, ResampleNearest)
	seen := map[color.RGBA]bool{}
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			seen[dst.RGBAAt(x, y)] = true
		}
	}
	if len(seen) != 2 {
		t.Errorf("nearest resize produced %d colours, want 2", len(seen))
	}
}

func TestResizeFlattensTransparency(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	dst := Resize(src, 4, 4, ResampleNearest)
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("transparent pixel = %+v, want opaque black", got)
	}
}

func TestParseResample(t *testing.T) {
	if _, err := ParseResample("lanczos"); err == nil {
		t.Error("Expected error for unknown resample mode")
	}
	got, err := ParseResample("bilinear")
	if err != nil || got != ResampleBilinear {
		t.Errorf("ParseResample(bilinear) = %q, %v", got, err)
	}
}
