package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"colorkit/internal/codec"
	"colorkit/internal/contrast"
	"colorkit/internal/export"
	"colorkit/internal/ui"
)

func newContrastCmd(app *App) *cobra.Command {
	var (
		format string
		sample string
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast ratio of two colors",
		Long: `Compute the WCAG 2.x contrast ratio between a foreground and a
background color and report AA/AAA compliance for normal and large text.

Examples:
  colorkit contrast "#333" "#fff"
  colorkit contrast "#767676" "#ffffff" --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := contrast.Check(args[0], args[1])
			if err != nil {
				app.Metrics.ObserveInvalid("contrast")
				return err
			}
			app.Metrics.ObserveContrast(res)
			if app.Config.Env.Verbose() {
				ui.LogSection("Relative luminance")
				ui.LogMetric("foreground", luminance(res.Foreground), "")
				ui.LogMetric("background", luminance(res.Background), "")
			}
			if !res.AA {
				ui.InfoNote(adviceFor(res))
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeString(out, ui.RenderContrast(res, sample))
			case "json", "yaml":
				return export.Encode(out, format, export.NewContrastDoc(res))
			}
			return fmt.Errorf("%w: %q (contrast supports text, json, yaml)", export.ErrUnknownFormat, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", textOr(app.Config.Format), "Output format: text, json, yaml")
	cmd.Flags().StringVar(&sample, "sample", app.Config.PreviewText, "Sample text for the preview line")

	return cmd
}

// textOr keeps css, which only palettes support, from becoming the contrast default.
func textOr(format string) string {
	if format == "css" {
		return "text"
	}
	return format
}

func luminance(hex string) string {
	c := codec.HexToRGB(hex)
	return strconv.FormatFloat(contrast.Luminance(c.R, c.G, c.B), 'f', 4, 64)
}

func adviceFor(res contrast.Result) string {
	if res.AALarge {
		return fmt.Sprintf("%s only passes for large text (18pt, or 14pt bold). Normal text needs at least %s.",
			res.Formatted(), contrast.FormatRatio(contrast.MinAA))
	}
	return fmt.Sprintf("%s fails every WCAG level. Large text needs at least %s, normal text %s.",
		res.Formatted(), contrast.FormatRatio(contrast.MinAALarge), contrast.FormatRatio(contrast.MinAA))
}
