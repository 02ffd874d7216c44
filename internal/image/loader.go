// Package image provides utilities for loading and resampling images.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// ErrImageLoad is returned (wrapped) whenever an image cannot be read or decoded.
var ErrImageLoad = errors.New("image load failed")

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: image path cannot be empty", ErrImageLoad)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: image file not found: %s", ErrImageLoad, path)
		}
		return nil, fmt.Errorf("%w: failed to stat image file: %w", ErrImageLoad, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: path is a directory, not a file: %s", ErrImageLoad, path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image file: %w", ErrImageLoad, err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode decodes an image from r in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image (format: %s): %w", ErrImageLoad, format, err)
	}
	return img, nil
}

// ValidateImagePath checks that path points to a readable file in a supported format.
// Only the image header is decoded.
func ValidateImagePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: image path cannot be empty", ErrImageLoad)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: image file not found: %s", ErrImageLoad, path)
		}
		return fmt.Errorf("%w: failed to access image path: %w", ErrImageLoad, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: path is a directory, not a file: %s", ErrImageLoad, path)
	}

	if _, _, err := GetImageDimensions(path); err != nil {
		if !IsImageFile(path) {
			return fmt.Errorf("%w (supported extensions: %s)", err, strings.Join(SupportedImageExtensions(), ", "))
		}
		return err
	}
	return nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// IsImageFile checks if a file has a supported image extension.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// GetImageDimensions returns the width and height of an image without fully loading it.
func GetImageDimensions(path string) (width, height int, err error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return 0, 0, fmt.Errorf("%w: failed to open image: %w", ErrImageLoad, err)
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: failed to decode image config: %w", ErrImageLoad, err)
	}

	return config.Width, config.Height, nil
}
