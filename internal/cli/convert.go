package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"colorkit/internal/codec"
	"colorkit/internal/contrast"
	"colorkit/internal/export"
	"colorkit/internal/ui"
)

func newConvertCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <hex>",
		Short: "Show a color as hex, RGB and HSL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := codec.ParseHex(args[0])
			if err != nil {
				app.Metrics.ObserveInvalid("convert")
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeString(out, ui.RenderConversion(hex))
			case "json", "yaml":
				return export.Encode(out, format, export.SwatchDoc{
					Hex:  hex,
					RGB:  codec.HexToRGB(hex),
					HSL:  codec.HexToHSL(hex),
					Text: contrast.TextColor(hex),
				})
			}
			return fmt.Errorf("%w: %q (convert supports text, json, yaml)", export.ErrUnknownFormat, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", textOr(app.Config.Format), "Output format: text, json, yaml")

	return cmd
}
