package colour

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Complementary inverts each channel.
func Complementary(c RGB) RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Analogous returns the colours 30 degrees either side of c on the HSL wheel.
func Analogous(c RGB) (RGB, RGB) {
	return rotateHue(c, 30), rotateHue(c, -30)
}

// Triadic returns the colours 120 degrees either side of c on the HSL wheel.
func Triadic(c RGB) (RGB, RGB) {
	return rotateHue(c, 120), rotateHue(c, -120)
}

// rotateHue keeps lightness and saturation and shifts hue by degrees.
func rotateHue(c RGB, degrees float64) RGB {
	h, s, l := c.toColorful().Hsl()
	return fromColorful(colorful.Hsl(normaliseHue(h+degrees), s, l))
}

// HarmonySet bundles the colour-theory relations of a base colour.
type HarmonySet struct {
	Base          RGB    `json:"base"`
	Complementary RGB    `json:"complementary"`
	Analogous     [2]RGB `json:"analogous"`
	Triadic       [2]RGB `json:"triadic"`
}

// Harmony computes every relation for base.
func Harmony(base RGB) HarmonySet {
	a1, a2 := Analogous(base)
	t1, t2 := Triadic(base)
	return HarmonySet{
		Base:          base,
		Complementary: Complementary(base),
		Analogous:     [2]RGB{a1, a2},
		Triadic:       [2]RGB{t1, t2},
	}
}

// Variants flattens the set into labelled colours, base first.
func (h HarmonySet) Variants() []Variant {
	return []Variant{
		{Label: "Primary", Colour: h.Base},
		{Label: "Complementary", Colour: h.Complementary},
		{Label: "Analogous +30°", Colour: h.Analogous[0]},
		{Label: "Analogous -30°", Colour: h.Analogous[1]},
		{Label: "Triadic +120°", Colour: h.Triadic[0]},
		{Label: "Triadic -120°", Colour: h.Triadic[1]},
	}
}
