package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/remote"
	"github.com/jmylchreest/swatch/internal/seed"
)

type extractOptions struct {
	colours       int
	saturation    int
	brightness    int
	tiers         bool
	seedMode      string
	seedValue     int64
	resample      string
	restarts      int
	maxIterations int
	format        string
	output        string
	preview       bool

	cache        bool
	cacheDir     string
	timeout      time.Duration
	allowPrivate bool
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image|url>",
		Short: "Extract dominant colours from an image",
		Long: `Extract the dominant colours of an image with k-means clustering.

The image is resized to 600x400, pixels whose HSV saturation or brightness
do not exceed the thresholds (0-255) are discarded, and the survivors are
clustered into the requested number of colours.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

The image may also be an https URL. Downloads are decoded in memory unless
--cache (the user cache directory) or --cache-dir (or SWATCH_CACHE_DIR)
is given.

Examples:
  # Five dominant colours of vivid pixels
  swatch extract photo.jpg

  # Eight colours from every pixel, as JSON
  swatch extract -c 8 -s 0 -b 0 -f json photo.jpg

  # High, medium and unfiltered palettes side by side
  swatch extract --tiers --preview photo.jpg

  # Reproduce a run exactly
  swatch extract --seed 42 photo.jpg

  # Remote image
  swatch extract https://example.com/photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") && !cmd.Flags().Changed("seed-mode") {
				opts.seedMode = string(seed.ModeManual)
			}
			return runExtract(cmd, root, opts, args[0])
		},
	}

	cfg := root.config
	cmd.Flags().IntVarP(&opts.colours, "colours", "c", cfg.Colours, "number of colours to extract (1-256)")
	cmd.Flags().IntVarP(&opts.saturation, "saturation", "s", cfg.Saturation, "minimum saturation, exclusive (0-255)")
	cmd.Flags().IntVarP(&opts.brightness, "brightness", "b", cfg.Brightness, "minimum brightness, exclusive (0-255)")
	cmd.Flags().BoolVar(&opts.tiers, "tiers", false, "extract high, medium and unfiltered palettes (ignores -s/-b)")
	cmd.Flags().StringVar(&opts.seedMode, "seed-mode", cfg.SeedMode, "clustering seed mode (content, filepath, manual, random)")
	cmd.Flags().Int64Var(&opts.seedValue, "seed", 0, "clustering seed (implies --seed-mode manual)")
	cmd.Flags().StringVar(&opts.resample, "resample", cfg.Resample, "resize kernel (nearest, bilinear, catmullrom)")
	cmd.Flags().IntVar(&opts.restarts, "restarts", 1, "number of k-means initialisations; the best is kept")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", 300, "maximum k-means iterations per initialisation")
	addFormatFlag(cmd.Flags(), &opts.format, "hex", "hex", "rgb", "json", "table")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches in terminal")
	cmd.Flags().BoolVar(&opts.cache, "cache", false, "cache downloaded images in the user cache directory")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", cfg.CacheDir, "cache downloaded images in this directory")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", remote.DefaultTimeout, "timeout for downloading remote images")
	cmd.Flags().BoolVar(&opts.allowPrivate, "allow-private-hosts", false, "allow plain http and private addresses for remote images")

	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, imagePath string) error {
	logger := root.logger.Named("extract")

	mode, err := seed.ParseMode(opts.seedMode)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	resample, err := image.ParseResample(opts.resample)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	config := colour.DefaultDominantConfig()
	config.Count = opts.colours
	config.SaturationThreshold = opts.saturation
	config.BrightnessThreshold = opts.brightness
	config.Resample = resample
	config.Restarts = opts.restarts
	config.MaxIterations = opts.maxIterations
	config.Logger = logger
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var loader image.Loader = image.NewFileLoader()
	if remote.IsURL(imagePath) {
		if err := remote.ValidateURL(imagePath, opts.allowPrivate); err != nil {
			return fmt.Errorf("invalid image URL: %w", err)
		}
		cacheDir := opts.cacheDir
		if opts.cache && cacheDir == "" {
			if cacheDir, err = remote.DefaultCacheDir(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
		}
		loader = remote.NewLoader(cmd.Context(),
			remote.WithFetchOptions(remote.FetchOptions{Timeout: opts.timeout, AllowPrivateHosts: opts.allowPrivate}),
			remote.WithCacheDir(cacheDir),
			remote.WithLogger(logger),
		)
	} else if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	seedConfig := seed.Config{Mode: mode}
	if mode == seed.ModeManual {
		seedConfig.Value = &opts.seedValue
	}
	config.Seed, err = seed.Calculate(img, imagePath, seedConfig)
	if err != nil {
		return fmt.Errorf("failed to resolve seed: %w", err)
	}
	logger.Debug("seed resolved", "mode", mode, "seed", config.Seed)

	var results []colour.TierResult
	if opts.tiers {
		results, err = colour.ExtractTiers(img, config, colour.DefaultTiers())
		if err != nil {
			return fmt.Errorf("failed to extract colours: %w", err)
		}
	} else {
		palette, err := colour.ExtractDominant(img, config)
		if err != nil {
			if isEmptyInput(err) {
				return fmt.Errorf("failed to extract colours: %w (try lowering --saturation or --brightness)", err)
			}
			return fmt.Errorf("failed to extract colours: %w", err)
		}
		results = []colour.TierResult{{
			Tier:    colour.Tier{Name: "Dominant colours", Saturation: opts.saturation, Brightness: opts.brightness},
			Palette: palette,
		}}
	}

	out := cmd.OutOrStdout()
	painter := root.painter(out, opts.preview && opts.output == "")

	var output string
	if opts.format == "json" {
		output, err = extractJSON(imagePath, config.Seed, results, opts.tiers)
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
	} else {
		output = formatTiers(results, opts.format, painter, opts.tiers)
	}

	if opts.output != "" {
		logger.Debug("writing output", "path", opts.output)
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil { // #nosec G306 - palette output is not sensitive
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !root.quiet {
			logger.Info("palette written", "path", opts.output)
		}
		return nil
	}

	fmt.Fprint(out, output)
	return nil
}

// formatTiers renders one block per tier; headers are only written when
// more than one tier was requested.
func formatTiers(results []colour.TierResult, format string, painter *colour.Painter, withHeaders bool) string {
	var b strings.Builder
	for i, r := range results {
		if withHeaders {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "# %s (saturation > %d, brightness > %d)\n", r.Tier.Name, r.Tier.Saturation, r.Tier.Brightness)
		}
		if r.Err != nil {
			fmt.Fprintf(&b, "# no palette: %s\n", r.Err)
			continue
		}
		b.WriteString(formatPalette(r.Palette, format, painter))
	}
	return b.String()
}

// formatPalette formats a palette as hex, rgb or a table.
func formatPalette(palette *colour.Palette, format string, painter *colour.Painter) string {
	var b strings.Builder
	switch format {
	case "rgb":
		for _, c := range palette.Colours {
			if painter.Enabled() {
				b.WriteString(painter.Block(c, swatchWidth) + "  ")
			}
			b.WriteString(c.String() + "\n")
		}
	case "table":
		headers := []string{"#", "Hex", "RGB", "Weight"}
		if painter.Enabled() {
			headers = append([]string{"Swatch"}, headers...)
		}
		table := NewTable(headers)
		for i, c := range palette.Colours {
			row := []string{fmt.Sprintf("%d", i+1), c.Hex(), c.Triple(), fmt.Sprintf("%.1f%%", palette.Weight(i)*100)}
			if painter.Enabled() {
				row = append([]string{painter.Swatch(c, c.Hex(), swatchWidth+1)}, row...)
			}
			table.AddRow(row)
		}
		b.WriteString(table.Render())
	default:
		for _, c := range palette.Colours {
			b.WriteString(painter.Label(c, swatchWidth) + "\n")
		}
	}
	return b.String()
}

// tierJSON is the JSON form of one tier.
type tierJSON struct {
	colour.Tier
	Palette *colour.PaletteJSON `json:"palette,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// extractJSON returns the bare palette for single extractions and an
// envelope with every tier otherwise.
func extractJSON(imagePath string, seedValue int64, results []colour.TierResult, tiers bool) (string, error) {
	if !tiers {
		data, err := results[0].Palette.ToJSON()
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}

	entries := make([]tierJSON, len(results))
	for i, r := range results {
		entries[i] = tierJSON{Tier: r.Tier}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
			continue
		}
		p := r.Palette.JSON()
		entries[i].Palette = &p
	}
	payload := struct {
		Image string     `json:"image"`
		Seed  int64      `json:"seed"`
		Tiers []tierJSON `json:"tiers"`
	}{Image: imagePath, Seed: seedValue, Tiers: entries}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// isEmptyInput reports whether err is a filtered-set failure the user can fix
// by relaxing thresholds.
func isEmptyInput(err error) bool {
	return errors.Is(err, colour.ErrEmptyInput)
}
