package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"colorkit/internal/ui"
)

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "colorkit",
		Short: "WCAG contrast checks and color palettes",
		Long: `colorkit checks foreground/background pairs against the WCAG 2.x
contrast thresholds and derives monochromatic, analogous, complementary and
triadic palettes from a base color.

Colors are given as #RGB or #RRGGBB hex strings.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				ui.SetLogOutput(io.Discard)
				return
			}
			ui.EmitBanner(app.Version)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress banner and status output")

	rootCmd.AddCommand(newContrastCmd(app))
	rootCmd.AddCommand(newPaletteCmd(app))
	rootCmd.AddCommand(newConvertCmd(app))
	rootCmd.AddCommand(newVersionCmd(app))

	return rootCmd
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the colorkit version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "colorkit %s\n", app.Version)
			return err
		},
	}
}
