// Package seed resolves the random seed used to initialise k-means clustering,
// so that extraction is reproducible unless a random seed is explicitly requested.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
)

// Mode determines how the seed is derived.
type Mode string

const (
	// ModeContent hashes the image pixels (default, stable for identical images).
	ModeContent Mode = "content"
	// ModeFilepath hashes the absolute file path.
	ModeFilepath Mode = "filepath"
	// ModeManual uses a caller-supplied value.
	ModeManual Mode = "manual"
	// ModeRandom varies on every run.
	ModeRandom Mode = "random"
)

// Config holds configuration for seed resolution.
type Config struct {
	Mode  Mode
	Value *int64 // only read in ModeManual
}

// Calculate resolves the seed for an image according to config.
// img is required for ModeContent and imagePath for ModeFilepath.
func Calculate(img image.Image, imagePath string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent, "":
		if img == nil {
			return 0, fmt.Errorf("image is required for content-based seed mode")
		}
		return ContentSeed(img), nil
	case ModeFilepath:
		if imagePath == "" {
			return 0, fmt.Errorf("image path is required for filepath-based seed mode")
		}
		return FilepathSeed(imagePath), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return rand.Int64(), nil // #nosec G404 -- non-deterministic by request
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the image dimensions and a sampled pixel grid.
// The grid holds roughly 100x100 samples regardless of resolution.
func ContentSeed(img image.Image) int64 {
	bounds := img.Bounds()
	hasher := sha256.New()

	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions are non-negative
	binary.LittleEndian.PutUint32(dims[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions are non-negative
	hasher.Write(dims[:])

	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	var px [4]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			px[0], px[1], px[2], px[3] = byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8)
			hasher.Write(px[:])
		}
	}

	return sumToSeed(hasher.Sum(nil))
}

// FilepathSeed hashes the absolute form of imagePath. URLs are hashed as given.
func FilepathSeed(imagePath string) int64 {
	absPath := imagePath
	if !strings.Contains(imagePath, "://") {
		if abs, err := filepath.Abs(imagePath); err == nil {
			absPath = abs
		}
	}
	sum := sha256.Sum256([]byte(absPath))
	return sumToSeed(sum[:])
}

func sumToSeed(sum []byte) int64 {
	return int64(binary.LittleEndian.Uint64(sum[:8])) // #nosec G115 -- bit reinterpretation is intended
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeFilepath, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, filepath, manual, random)", s)
}
