package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColour parses "#rrggbb", "rrggbb", "#rgb" or a comma-separated "r, g, b" triple.
func ParseColour(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("%w: colour cannot be empty", ErrInvalidParameter)
	}

	if strings.Contains(s, ",") {
		return parseTriple(s)
	}

	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: invalid hex colour %q: want 3 or 6 digits", ErrInvalidParameter, s)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: invalid hex colour %q: %w", ErrInvalidParameter, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func parseTriple(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: expected three components in %q", ErrInvalidParameter, s)
	}
	var vals [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: component %q is not an integer", ErrInvalidParameter, part)
		}
		if n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("%w: component %d out of range [0, 255]", ErrInvalidParameter, n)
		}
		vals[i] = uint8(n)
	}
	return RGB{R: vals[0], G: vals[1], B: vals[2]}, nil
}

// toColorful converts to go-colorful's float representation.
func (rgb RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// fromColorful converts back to 8-bit by truncation, not rounding.
func fromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{
		R: truncate255(c.R),
		G: truncate255(c.G),
		B: truncate255(c.B),
	}
}

func truncate255(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Floor(v*255))))
}

// normaliseHue wraps a hue in degrees into [0, 360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
