package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

type hoverOptions struct {
	options int
	format  string
	preview bool
}

func newHoverCmd(root *rootOptions) *cobra.Command {
	opts := &hoverOptions{}

	cmd := &cobra.Command{
		Use:   "hover <colour>",
		Short: "Generate lighter and darker hover variants of a colour",
		Long: `Generate hover-state variants of a base colour.

Each step raises (lighter) or lowers (darker) HSV saturation and value by a
further 5%. The recommended text colour for the base is printed as well.

The colour may be given as #rrggbb, rrggbb, #rgb or "r, g, b".

Examples:
  swatch hover '#0a0a23'
  swatch hover 10, 10, 35
  swatch hover -n 5 --preview 3498db`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHover(cmd, root, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().IntVarP(&opts.options, "options", "n", colour.DefaultHoverOptions, "number of lighter/darker pairs")
	addFormatFlag(cmd.Flags(), &opts.format, "table", "table", "hex", "json")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches in terminal")

	return cmd
}

func runHover(cmd *cobra.Command, root *rootOptions, opts *hoverOptions, input string) error {
	base, err := colour.ParseColour(input)
	if err != nil {
		return err
	}
	variants, err := colour.HoverVariants(base, opts.options)
	if err != nil {
		return err
	}
	root.logger.Named("hover").Debug("generated hover variants", "base", base.Hex(), "count", len(variants))

	out := cmd.OutOrStdout()
	textColour := colour.TextColourName(base)

	switch opts.format {
	case "json":
		data, err := json.MarshalIndent(struct {
			Base       colour.RGB       `json:"base"`
			Hex        string           `json:"hex"`
			TextColour string           `json:"text_colour"`
			Variants   []colour.Variant `json:"variants"`
		}{Base: base, Hex: base.Hex(), TextColour: textColour, Variants: variants}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "hex":
		fmt.Fprintf(out, "Base Colour: %s\n", base.Hex())
		hexes := make([]string, len(variants))
		for i, v := range variants {
			hexes[i] = v.Colour.Hex()
		}
		fmt.Fprintf(out, "Hover Colours: %s\n", strings.Join(hexes, " "))
		fmt.Fprintf(out, "Text Colour: %s\n", textColour)
	default:
		all := append([]colour.Variant{{Label: "Base Colour", Colour: base}}, variants...)
		fmt.Fprint(out, variantTable(all, root.painter(out, opts.preview), true))
		fmt.Fprintf(out, "\nText Colour: %s\n", textColour)
	}
	return nil
}

// variantTable renders labelled colours; withContrast adds the WCAG contrast
// of the recommended text colour against each swatch.
func variantTable(variants []colour.Variant, painter *colour.Painter, withContrast bool) string {
	headers := []string{"Name", "Hex", "RGB"}
	if withContrast {
		headers = append(headers, "Text", "Contrast")
	}
	if painter.Enabled() {
		headers = append([]string{"Swatch"}, headers...)
	}

	table := NewTable(headers)
	for _, v := range variants {
		c := v.Colour
		row := []string{v.Label, c.Hex(), c.Triple()}
		if withContrast {
			text := colour.TextColour(c)
			row = append(row, colour.TextColourName(c), fmt.Sprintf("%.2f:1", colour.ContrastRatio(c, text)))
		}
		if painter.Enabled() {
			row = append([]string{painter.Swatch(c, "Aa", swatchWidth)}, row...)
		}
		table.AddRow(row)
	}
	return table.Render()
}
