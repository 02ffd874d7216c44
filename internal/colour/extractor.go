package colour

import (
	"errors"
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	imageio "github.com/jmylchreest/swatch/internal/image"
)

const (
	// DefaultCanvasWidth and DefaultCanvasHeight bound the cost of extraction
	// regardless of source resolution.
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 400

	// DefaultColourCount is the number of dominant colours extracted by default.
	DefaultColourCount = 5
	// DefaultThreshold is the default saturation and brightness cut-off.
	DefaultThreshold = 100

	// MaxColourCount caps the number of clusters that may be requested.
	MaxColourCount = 256
)

// DominantConfig holds configuration for dominant colour extraction.
type DominantConfig struct {
	// Count is the number of colours to return.
	Count int
	// SaturationThreshold and BrightnessThreshold are on the 0-255 scale;
	// a pixel is kept only when both its saturation and value exceed them.
	SaturationThreshold int
	BrightnessThreshold int

	// Seed drives k-means++ initialisation; equal seeds give equal palettes.
	Seed int64

	// Width and Height are the canvas the image is resized to before filtering.
	Width, Height int
	Resample      imageio.Resample

	MaxIterations int
	Tolerance     float64
	Restarts      int

	Logger hclog.Logger
}

// DefaultDominantConfig returns the default extractor configuration.
func DefaultDominantConfig() DominantConfig {
	return DominantConfig{
		Count:               DefaultColourCount,
		SaturationThreshold: DefaultThreshold,
		BrightnessThreshold: DefaultThreshold,
		Width:               DefaultCanvasWidth,
		Height:              DefaultCanvasHeight,
		Resample:            imageio.ResampleCatmullRom,
		MaxIterations:       defaultMaxIterations,
		Tolerance:           defaultTolerance,
		Restarts:            defaultRestarts,
	}
}

// Validate checks the configuration. Every failure wraps ErrInvalidParameter.
func (c DominantConfig) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidParameter, c.Count)
	}
	if c.Count > MaxColourCount {
		return fmt.Errorf("%w: colour count too large: %d (maximum: %d)", ErrInvalidParameter, c.Count, MaxColourCount)
	}
	if err := validateThresholds(c.SaturationThreshold, c.BrightnessThreshold); err != nil {
		return err
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: canvas must be at least 1x1, got %dx%d", ErrInvalidParameter, c.Width, c.Height)
	}
	if _, err := imageio.ParseResample(string(c.Resample)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidParameter, c.MaxIterations)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must not be negative, got %g", ErrInvalidParameter, c.Tolerance)
	}
	if c.Restarts < 1 {
		return fmt.Errorf("%w: restarts must be at least 1, got %d", ErrInvalidParameter, c.Restarts)
	}
	return nil
}

func validateThresholds(saturation, brightness int) error {
	if saturation < 0 || saturation > 255 {
		return fmt.Errorf("%w: saturation threshold %d outside [0, 255]", ErrInvalidParameter, saturation)
	}
	if brightness < 0 || brightness > 255 {
		return fmt.Errorf("%w: brightness threshold %d outside [0, 255]", ErrInvalidParameter, brightness)
	}
	return nil
}

// DominantExtractor extracts the dominant colours of an image.
type DominantExtractor struct {
	config DominantConfig
	logger hclog.Logger
}

// NewDominantExtractor validates config and returns an extractor.
func NewDominantExtractor(config DominantConfig) (*DominantExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &DominantExtractor{config: config, logger: logger}, nil
}

// Extract resizes img to the canvas, filters it and clusters the survivors.
func (e *DominantExtractor) Extract(img image.Image) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrInvalidParameter)
	}
	return e.extractCanvas(e.canvas(img), e.config.SaturationThreshold, e.config.BrightnessThreshold)
}

// canvas resizes img to the configured dimensions.
func (e *DominantExtractor) canvas(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	e.logger.Debug("resizing image", "from", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"to", fmt.Sprintf("%dx%d", e.config.Width, e.config.Height), "resample", e.config.Resample)
	return imageio.Resize(img, e.config.Width, e.config.Height, e.config.Resample)
}

func (e *DominantExtractor) extractCanvas(canvas *image.RGBA, saturation, brightness int) (*Palette, error) {
	mask := BuildMask(canvas, saturation, brightness)
	e.logger.Debug("pixel mask built", "saturation", saturation, "brightness", brightness,
		"kept", mask.Count(), "total", mask.Width*mask.Height)
	if mask.Count() == 0 {
		return nil, fmt.Errorf("%w (saturation > %d, brightness > %d)", ErrEmptyInput, saturation, brightness)
	}

	pixels := FilterPixels(canvas, mask)
	km := NewKMeans(e.config.Seed).
		WithMaxIterations(e.config.MaxIterations).
		WithTolerance(e.config.Tolerance).
		WithRestarts(e.config.Restarts).
		WithLogger(e.logger)

	palette, err := km.Cluster(pixels, e.config.Count)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("extraction complete", "count", palette.Len(), "colours", palette.ToHex(), "inertia", palette.Inertia)
	return palette, nil
}

// ExtractDominant is a convenience wrapper around NewDominantExtractor and Extract.
func ExtractDominant(img image.Image, config DominantConfig) (*Palette, error) {
	e, err := NewDominantExtractor(config)
	if err != nil {
		return nil, err
	}
	return e.Extract(img)
}

// ExtractDominantFile loads path with loader and extracts its dominant colours.
// Parameters are validated before the file is touched. Load failures wrap
// imageio.ErrImageLoad.
func ExtractDominantFile(path string, config DominantConfig, loader imageio.Loader) (*Palette, error) {
	e, err := NewDominantExtractor(config)
	if err != nil {
		return nil, err
	}
	if loader == nil {
		loader = imageio.NewFileLoader()
	}
	img, err := loader.Load(path)
	if err != nil {
		if !errors.Is(err, imageio.ErrImageLoad) {
			err = fmt.Errorf("%w: %w", imageio.ErrImageLoad, err)
		}
		return nil, err
	}
	return e.Extract(img)
}
