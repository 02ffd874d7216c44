package remote

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	imageio "github.com/jmylchreest/swatch/internal/image"
)

// Loader loads images from http(s) URLs. It satisfies imageio.Loader.
type Loader struct {
	ctx      context.Context
	fetch    FetchOptions
	cacheDir string
	logger   hclog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFetchOptions sets the HTTP options used for downloads.
func WithFetchOptions(opts FetchOptions) LoaderOption {
	return func(l *Loader) { l.fetch = opts }
}

// WithCacheDir stores downloads in dir and reuses them on later loads.
// Without it images are decoded in memory and nothing is written to disk.
func WithCacheDir(dir string) LoaderOption {
	return func(l *Loader) { l.cacheDir = dir }
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader returns a Loader bound to ctx.
func NewLoader(ctx context.Context, opts ...LoaderOption) *Loader {
	l := &Loader{ctx: ctx, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load downloads and decodes the image at rawURL. Errors wrap
// imageio.ErrImageLoad.
func (l *Loader) Load(rawURL string) (image.Image, error) {
	if l.cacheDir != "" {
		path, err := DownloadAndCache(l.ctx, rawURL, CacheOptions{Dir: l.cacheDir, Fetch: l.fetch})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", imageio.ErrImageLoad, err)
		}
		l.logger.Debug("using cached image", "url", rawURL, "path", path)
		return imageio.NewFileLoader().Load(path)
	}

	data, err := Fetch(l.ctx, rawURL, l.fetch)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to download image: %w", imageio.ErrImageLoad, err)
	}
	l.logger.Debug("downloaded image", "url", rawURL, "bytes", len(data))
	return imageio.Decode(bytes.NewReader(data))
}
