package ui

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"colorkit/internal/codec"
	"colorkit/internal/contrast"
	"colorkit/internal/palette"
)

var titleCase = cases.Title(language.English)

// RenderContrast renders a preview, the ratio and the compliance table.
func RenderContrast(res contrast.Result, sample string) string {
	var b strings.Builder

	b.WriteString(Preview(res.Foreground, res.Background, sample) + "\n\n")
	fmt.Fprintf(&b, "%s %s  %s\n\n",
		Muted("Contrast ratio:"),
		ratioStyle(res.Ratio)("%s", res.Formatted()),
		Muted("(%s on %s)", strings.ToUpper(res.Foreground), strings.ToUpper(res.Background)))

	levels := res.Levels()
	rows := make([][]string, 0, len(levels))
	for _, lvl := range levels {
		rows = append(rows, []string{
			lvl.Label,
			strconv.FormatFloat(lvl.Min, 'f', 1, 64) + ":1",
			PassFail(lvl.Pass),
		})
	}
	b.WriteString(RenderTable(RenderTableOptions{
		Columns: []TableColumn{
			{Header: "Level"},
			{Header: "Minimum", Align: AlignRight},
			{Header: "Result", Align: AlignCenter},
		},
		Rows: rows,
	}))

	fmt.Fprintf(&b, "%s %s\n", Muted("See"), FormatDocsLink(DocContrastMinimum, "WCAG 1.4.3 Contrast (Minimum)"))
	return b.String()
}

func ratioStyle(ratio float64) func(string, ...interface{}) string {
	switch {
	case ratio >= contrast.MinAAA:
		return Success
	case ratio >= contrast.MinAALarge:
		return Warn
	default:
		return Error
	}
}

// RenderPalette renders swatches followed by a table of color values.
func RenderPalette(p palette.Palette, swatchWidth int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n\n",
		Heading("%s palette", titleCase.String(p.Type.String())),
		Muted("from"),
		Code("%s", strings.ToUpper(p.Base)))
	b.WriteString(SwatchRow(p.Colors, swatchWidth) + "\n\n")

	rows := make([][]string, 0, len(p.Colors))
	for i, hex := range p.Colors {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strings.ToUpper(hex),
			codec.HexToRGB(hex).String(),
			codec.HexToHSL(hex).String(),
			contrast.FormatRatio(contrast.Ratio(hex, contrast.TextColor(hex))),
		})
	}
	b.WriteString(RenderTable(RenderTableOptions{
		Columns: []TableColumn{
			{Header: "#", Align: AlignRight},
			{Header: "Hex"},
			{Header: "RGB"},
			{Header: "HSL"},
			{Header: "Label contrast", Align: AlignRight},
		},
		Rows: rows,
	}))

	fmt.Fprintf(&b, "%s %s\n", Muted("id"), AccentBright("%s", p.Fingerprint()))
	return b.String()
}

// RenderConversion renders one color in every notation.
func RenderConversion(hex string) string {
	rgb := codec.HexToRGB(hex)
	hsl := codec.HexToHSL(hex)
	lum := contrast.Luminance(rgb.R, rgb.G, rgb.B)

	rows := [][]string{
		{"Swatch", Swatch(hex, 11)},
		{"Hex", Code("%s", strings.ToUpper(hex))},
		{"RGB", rgb.String()},
		{"HSL", hsl.String()},
		{"Luminance", strconv.FormatFloat(lum, 'f', 4, 64)},
		{"On white", contrast.FormatRatio(contrast.Ratio(hex, "#ffffff"))},
		{"On black", contrast.FormatRatio(contrast.Ratio(hex, "#000000"))},
	}
	return RenderTable(RenderTableOptions{
		Columns: []TableColumn{{Header: "Notation"}, {Header: "Value"}},
		Rows:    rows,
		Border:  BorderNone,
	})
}
