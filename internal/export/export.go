// Package export encodes palettes and contrast reports for other tools.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"colorkit/internal/codec"
	"colorkit/internal/contrast"
	"colorkit/internal/palette"
)

// ErrUnknownFormat is returned for formats this package cannot encode.
var ErrUnknownFormat = errors.New("unknown export format")

// SwatchDoc describes one palette entry.
type SwatchDoc struct {
	Hex  string    `json:"hex"`
	RGB  codec.RGB `json:"rgb"`
	HSL  codec.HSL `json:"hsl"`
	Text string    `json:"text"`
}

// PaletteDoc is the exported form of a palette.
type PaletteDoc struct {
	ID     string      `json:"id"`
	Type   string      `json:"type"`
	Base   string      `json:"base"`
	Colors []SwatchDoc `json:"colors"`
}

// ContrastDoc is the exported form of a contrast check.
type ContrastDoc struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Formatted  string  `json:"formatted"`
	contrast.Compliance
}

// NewPaletteDoc expands p with per-color RGB, HSL and label text color.
func NewPaletteDoc(p palette.Palette) PaletteDoc {
	doc := PaletteDoc{
		ID:     p.Fingerprint(),
		Type:   p.Type.String(),
		Base:   p.Base,
		Colors: make([]SwatchDoc, 0, len(p.Colors)),
	}
	for _, hex := range p.Colors {
		doc.Colors = append(doc.Colors, SwatchDoc{
			Hex:  hex,
			RGB:  codec.HexToRGB(hex),
			HSL:  codec.HexToHSL(hex),
			Text: contrast.TextColor(hex),
		})
	}
	return doc
}

// NewContrastDoc flattens a contrast result.
func NewContrastDoc(res contrast.Result) ContrastDoc {
	return ContrastDoc{
		Foreground: res.Foreground,
		Background: res.Background,
		Ratio:      res.Ratio,
		Formatted:  res.Formatted(),
		Compliance: res.Compliance,
	}
}

// Encode writes v as json or yaml.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// EncodePalette writes p as json, yaml or css custom properties.
func EncodePalette(w io.Writer, format string, p palette.Palette) error {
	if format == "css" {
		_, err := io.WriteString(w, CSS(p))
		return err
	}
	return Encode(w, format, NewPaletteDoc(p))
}

// CSS renders p as a :root block of custom properties.
func CSS(p palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* colorkit %s palette %s */\n", p.Type, p.Fingerprint())
	b.WriteString(":root {\n")
	for i, hex := range p.Colors {
		fmt.Fprintf(&b, "  --colorkit-%s-%d: %s;\n", p.Type, i+1, hex)
	}
	b.WriteString("}\n")
	return b.String()
}
