package colour

import (
	"fmt"
	"image"
)

// Tier is a named pair of saturation/brightness thresholds.
type Tier struct {
	Name       string `json:"name"`
	Saturation int    `json:"saturation"`
	Brightness int    `json:"brightness"`
}

// DefaultTiers returns high, medium and unfiltered tiers, strictest first.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "High Saturation & Brightness", Saturation: 100, Brightness: 100},
		{Name: "Medium Saturation & Brightness", Saturation: 50, Brightness: 50},
		{Name: "All Pixels", Saturation: 0, Brightness: 0},
	}
}

// TierResult is the outcome of extracting one tier.
// Exactly one of Palette and Err is set.
type TierResult struct {
	Tier    Tier
	Palette *Palette
	Err     error
}

// ExtractTiers resizes img once and extracts a palette per tier.
// Invalid configuration or tier thresholds fail the whole call; an empty or
// too-small filtered set only fails its own tier.
func ExtractTiers(img image.Image, config DominantConfig, tiers []Tier) ([]TierResult, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: at least one tier is required", ErrInvalidParameter)
	}
	for _, t := range tiers {
		if err := validateThresholds(t.Saturation, t.Brightness); err != nil {
			return nil, fmt.Errorf("tier %q: %w", t.Name, err)
		}
	}

	e, err := NewDominantExtractor(config)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrInvalidParameter)
	}

	canvas := e.canvas(img)
	results := make([]TierResult, len(tiers))
	for i, t := range tiers {
		palette, err := e.extractCanvas(canvas, t.Saturation, t.Brightness)
		if err != nil {
			e.logger.Warn("tier produced no palette", "tier", t.Name, "error", err)
		}
		results[i] = TierResult{Tier: t, Palette: palette, Err: err}
	}
	return results, nil
}
