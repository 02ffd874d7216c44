package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the CLI logger: debug with --verbose, errors only with
// --quiet, info otherwise.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
	})
}
