package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

type harmonyOptions struct {
	format  string
	preview bool
}

func newHarmonyCmd(root *rootOptions) *cobra.Command {
	opts := &harmonyOptions{}

	cmd := &cobra.Command{
		Use:     "harmony <colour>",
		Aliases: []string{"relations"},
		Short:   "Show complementary, analogous and triadic colours",
		Long: `Compute colour-theory relations of a base colour.

  complementary  every RGB channel inverted
  analogous      hue rotated by +/-30 degrees
  triadic        hue rotated by +/-120 degrees

Examples:
  swatch harmony '#3498db'
  swatch harmony --preview 52,152,219
  swatch harmony -f json 3498db`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarmony(cmd, root, opts, strings.Join(args, " "))
		},
	}

	addFormatFlag(cmd.Flags(), &opts.format, "table", "table", "hex", "json")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches in terminal")

	return cmd
}

func runHarmony(cmd *cobra.Command, root *rootOptions, opts *harmonyOptions, input string) error {
	base, err := colour.ParseColour(input)
	if err != nil {
		return err
	}
	set := colour.Harmony(base)
	root.logger.Named("harmony").Debug("computed relations", "base", base.Hex())

	out := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "hex":
		for _, v := range set.Variants() {
			fmt.Fprintf(out, "%-16s %s\n", v.Label+":", v.Colour.Hex())
		}
	default:
		fmt.Fprint(out, variantTable(set.Variants(), root.painter(out, opts.preview), false))
	}
	return nil
}
