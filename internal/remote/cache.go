package remote

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// CacheOptions configures image caching behaviour.
type CacheOptions struct {
	// Dir is the directory where images are cached.
	Dir string

	// AllowOverwrite re-downloads images that are already cached.
	AllowOverwrite bool

	Fetch FetchOptions
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "swatch", "images"), nil
	}
	return filepath.Join(cacheDir, "swatch", "images"), nil
}

// cacheFilename derives a stable filename from a URL: the first 16 bytes of
// its SHA-256 in hex plus the extension of the URL path.
func cacheFilename(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))

	ext := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(parsed.Path))
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}

	return fmt.Sprintf("%x%s", sum[:16], ext)
}

// DownloadAndCache downloads a remote image into opts.Dir and returns the
// local path. An existing cached copy is reused unless AllowOverwrite is set.
func DownloadAndCache(ctx context.Context, rawURL string, opts CacheOptions) (string, error) {
	if err := ValidateURL(rawURL, opts.Fetch.AllowPrivateHosts); err != nil {
		return "", err
	}

	cacheDir := opts.Dir
	if cacheDir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return "", err
		}
		cacheDir = defaultDir
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil { // #nosec G301 - cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	cachedPath := filepath.Join(cacheDir, cacheFilename(rawURL))

	if !opts.AllowOverwrite {
		if _, err := os.Stat(cachedPath); err == nil {
			return cachedPath, nil
		}
	}

	data, err := Fetch(ctx, rawURL, opts.Fetch)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	if err := os.WriteFile(cachedPath, data, 0o644); err != nil { // #nosec G306 - cached images are not sensitive
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}

	return cachedPath, nil
}
