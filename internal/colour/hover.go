package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultHoverOptions is the number of lighter/darker pairs generated by default.
const DefaultHoverOptions = 3

// hoverStep is the HSV saturation and value delta applied per option.
const hoverStep = 0.05

// Variant is a derived colour with a human-readable label.
type Variant struct {
	Label  string `json:"label"`
	Colour RGB    `json:"colour"`
}

// HoverVariants returns options lighter/darker pairs for base, ordered
// lighter-1, darker-1, lighter-2, darker-2 and so on.
// Step i raises HSV saturation and value by 5*i percent, clamped to [0, 1],
// then lowers the lightened values by the same amount for the darker variant.
// Darker variants therefore only fall below base once lightening has clamped.
func HoverVariants(base RGB, options int) ([]Variant, error) {
	if options < 1 {
		return nil, fmt.Errorf("%w: hover options must be at least 1, got %d", ErrInvalidParameter, options)
	}

	h, s, v := base.toColorful().Hsv()
	variants := make([]Variant, 0, options*2)
	for i := 1; i <= options; i++ {
		f := float64(i) * hoverStep
		pct := int(math.Round(f * 100))

		ls, lv := math.Min(s+f, 1), math.Min(v+f, 1)
		lighter := colorful.Hsv(h, ls, lv)
		variants = append(variants, Variant{
			Label:  fmt.Sprintf("Lighter by %d%%", pct),
			Colour: fromColorful(lighter),
		})

		darker := colorful.Hsv(h, math.Max(ls-f, 0), math.Max(lv-f, 0))
		variants = append(variants, Variant{
			Label:  fmt.Sprintf("Darker by %d%%", pct),
			Colour: fromColorful(darker),
		})
	}
	return variants, nil
}
