package colour

import (
	"math"
)

// Black and White are the two candidate text colours.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	return 0.2126*gammaCorrect(float64(c.R)/255.0) +
		0.7152*gammaCorrect(float64(c.G)/255.0) +
		0.0722*gammaCorrect(float64(c.B)/255.0)
}

func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two colours,
// from 1 (identical) to 21 (black on white).
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// PerceivedLuminance is the Rec. 601 luma of c scaled to [0, 1].
func PerceivedLuminance(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// TextColour picks white text for dark backgrounds and black text otherwise.
func TextColour(bg RGB) RGB {
	if PerceivedLuminance(bg) < 0.5 {
		return White
	}
	return Black
}

// TextColourName is TextColour as "white" or "black".
func TextColourName(bg RGB) string {
	if TextColour(bg) == White {
		return "white"
	}
	return "black"
}
