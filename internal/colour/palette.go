// Package colour provides dominant colour extraction, colour-space helpers and
// colour-theory relations.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Triple returns the components as "r, g, b".
func (rgb RGB) Triple() string {
	return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color; the colour is always opaque.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// packed returns the colour as a 24-bit integer, used for ordering and set keys.
func (rgb RGB) packed() uint32 {
	return uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Palette is an ordered set of representative colours.
// Weights, when present, hold the share of filtered pixels each colour represents.
type Palette struct {
	Colours []RGB
	Weights []float64
	// Inertia is the within-cluster sum of squared distances of the winning clustering run.
	Inertia float64
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Weight returns the weight of colour i, or 0 when weights are unknown.
func (p *Palette) Weight(i int) float64 {
	if i < 0 || i >= len(p.Weights) {
		return 0
	}
	return p.Weights[i]
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex    string  `json:"hex"`
	RGB    RGB     `json:"rgb"`
	Weight float64 `json:"weight,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Inertia float64      `json:"inertia,omitempty"`
	Colours []ColourJSON `json:"colours"`
}

// JSON returns the serialisable form of the palette.
func (p *Palette) JSON() PaletteJSON {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{Hex: c.Hex(), RGB: c, Weight: p.Weight(i)}
	}
	return PaletteJSON{Count: len(p.Colours), Inertia: p.Inertia, Colours: colours}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.JSON(), "", "  ")
}
