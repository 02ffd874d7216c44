package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// swatchWidth is the width in cells of preview swatches.
const swatchWidth = 8

// formatValue is an output format flag restricted to a fixed set of names.
type formatValue struct {
	value   *string
	allowed []string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(p *string, def string, allowed ...string) *formatValue {
	*p = def
	return &formatValue{value: p, allowed: allowed}
}

func (f *formatValue) String() string { return *f.value }

func (f *formatValue) Set(s string) error {
	if !slices.Contains(f.allowed, s) {
		return fmt.Errorf("unsupported format: %s (supported: %s)", s, strings.Join(f.allowed, ", "))
	}
	*f.value = s
	return nil
}

func (f *formatValue) Type() string { return "format" }

// addFormatFlag registers -f/--format on flags.
func addFormatFlag(flags *pflag.FlagSet, p *string, def string, allowed ...string) {
	usage := fmt.Sprintf("output format (%s)", strings.Join(allowed, ", "))
	flags.VarP(newFormatValue(p, def, allowed...), "format", "f", usage)
}
