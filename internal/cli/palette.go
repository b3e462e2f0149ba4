package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"colorkit/internal/config"
	"colorkit/internal/export"
	"colorkit/internal/palette"
	"colorkit/internal/ui"
)

func newPaletteCmd(app *App) *cobra.Command {
	var (
		typeName string
		format   string
		copyN    int
		copyAll  bool
	)

	cmd := &cobra.Command{
		Use:   "palette <base>",
		Short: "Generate a palette from a base color",
		Long: `Generate a monochromatic, analogous, complementary or triadic palette.
The base color is always the first entry.

Examples:
  colorkit palette "#3366cc"
  colorkit palette "#f00" --type triadic --format css
  colorkit palette "#3366cc" -t analogous --copy 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := palette.ParseType(typeName)
			if err != nil {
				app.Metrics.ObserveInvalid("palette")
				return err
			}
			if !config.ValidFormat(format) {
				return fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
			}

			p, err := palette.New(args[0], typ)
			if err != nil {
				app.Metrics.ObserveInvalid("palette")
				return err
			}
			if copyN < 0 || copyN > len(p.Colors) {
				return fmt.Errorf("--copy must be between 1 and %d, got %d", len(p.Colors), copyN)
			}
			app.Metrics.ObservePalette(typ)
			if app.Config.Env.Verbose() {
				logPalette(p)
			}

			out := cmd.OutOrStdout()
			if format == "text" {
				err = writeString(out, ui.RenderPalette(p, app.Config.SwatchWidth))
			} else {
				err = export.EncodePalette(out, format, p)
			}
			if err != nil {
				return err
			}

			switch {
			case copyAll:
				app.copyText(strings.Join(p.Colors, "\n"), "palette")
			case copyN > 0:
				app.copyText(p.Colors[copyN-1], p.Colors[copyN-1])
			case format == "text":
				ui.PrintFooter("Copy a color with --copy N, or all of them with --copy-all")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", app.Config.Palette, "Palette type: monochromatic, analogous, complementary, triadic")
	cmd.Flags().StringVarP(&format, "format", "f", app.Config.Format, "Output format: text, json, yaml, css")
	cmd.Flags().IntVar(&copyN, "copy", 0, "Copy the Nth color (1-based) to the clipboard")
	cmd.Flags().BoolVar(&copyAll, "copy-all", false, "Copy every color, one per line, to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("copy", "copy-all")

	return cmd
}

func logPalette(p palette.Palette) {
	ui.LogGroup(p.Type.String() + " palette")
	ui.LogGroupItem("base", p.Base)
	ui.LogGroupItem("id", p.Fingerprint())
	ui.LogGroupEnd()
	for i, hex := range p.Colors {
		ui.LogColor(fmt.Sprintf("color %d", i+1), hex)
	}
}
