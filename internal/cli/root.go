// Package cli provides the command-line interface for swatch.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/version"
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	verbose  bool
	quiet    bool
	noColour bool

	config    config.Config
	configErr error
	logger    hclog.Logger
}

// NewRootCmd builds a fresh command tree. Each call is independent, so tests
// can execute commands without sharing flag state.
func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	opts := &rootOptions{config: cfg, configErr: err, logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Colour toolkit: dominant colours, hover states and harmonies",
		Long: `swatch extracts dominant colours from photographs, derives hover-state
variants from a base colour, and computes colour-theory relations.

Results are printed as hex or RGB values, JSON, or true-colour swatches
when writing to a terminal.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configErr != nil {
				return fmt.Errorf("invalid configuration: %w", opts.configErr)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", cfg.NoColour, "disable colour swatches")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newHoverCmd(opts))
	rootCmd.AddCommand(newHarmonyCmd(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// painter returns a swatch painter for w honouring --no-colour.
func (o *rootOptions) painter(w io.Writer, preview bool) *colour.Painter {
	return colour.NewPainter(w, preview && !o.noColour)
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			data, err := json.MarshalIndent(version.GetInfo(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to convert to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
