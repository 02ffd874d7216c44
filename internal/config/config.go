// Package config resolves swatch defaults from the environment.
//
// Precedence is flags > environment > built-in defaults; this package covers
// the last two and the CLI applies flags on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvColours    = "SWATCH_COLOURS"
	EnvSaturation = "SWATCH_SATURATION"
	EnvBrightness = "SWATCH_BRIGHTNESS"
	EnvSeedMode   = "SWATCH_SEED_MODE"
	EnvResample   = "SWATCH_RESAMPLE"
	EnvNoColour   = "SWATCH_NO_COLOUR"
	EnvCacheDir   = "SWATCH_CACHE_DIR"
	// NO_COLOR is honoured as well, see https://no-color.org.
	EnvNoColor = "NO_COLOR"
)

// Config holds defaults for CLI flags.
type Config struct {
	Colours    int
	Saturation int
	Brightness int
	SeedMode   string
	Resample   string
	NoColour   bool
	// CacheDir enables caching of downloaded images when non-empty.
	CacheDir string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Colours:    5,
		Saturation: 100,
		Brightness: 100,
		SeedMode:   "content",
		Resample:   "catmullrom",
	}
}

// Load reads envFiles (if they exist) into the process environment without
// overriding variables that are already set, then applies the environment
// to the defaults. With no files given, ".env" in the working directory is tried.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies environment values from lookup to the defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvColours, &cfg.Colours},
		{EnvSaturation, &cfg.Saturation},
		{EnvBrightness, &cfg.Brightness},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s=%q: %w", e.key, v, err)
		}
		*e.dst = n
	}

	if v, ok := lookup(EnvSeedMode); ok && v != "" {
		cfg.SeedMode = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvResample); ok && v != "" {
		cfg.Resample = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvCacheDir); ok && v != "" {
		cfg.CacheDir = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvNoColour); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s=%q: %w", EnvNoColour, v, err)
		}
		cfg.NoColour = b
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		cfg.NoColour = true
	}

	return cfg, nil
}
