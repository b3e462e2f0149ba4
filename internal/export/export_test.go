package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"sigs.k8s.io/yaml"

	"colorkit/internal/contrast"
	"colorkit/internal/palette"
)

func mustPalette(t *testing.T, base string, typ palette.Type) palette.Palette {
	t.Helper()
	p, err := palette.New(base, typ)
	if err != nil {
		t.Fatalf("palette.New(%s, %s): %v", base, typ, err)
	}
	return p
}

func TestEncodePaletteJSON(t *testing.T) {
	p := mustPalette(t, "#3366CC", palette.Monochromatic)

	var buf bytes.Buffer
	if err := EncodePalette(&buf, "json", p); err != nil {
		t.Fatalf("EncodePalette: %v", err)
	}

	var doc PaletteDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if doc.ID != p.Fingerprint() {
		t.Errorf("ID = %q, want %q", doc.ID, p.Fingerprint())
	}
	if doc.Type != "monochromatic" || doc.Base != "#3366cc" {
		t.Errorf("unexpected header %+v", doc)
	}
	if len(doc.Colors) != 5 {
		t.Fatalf("got %d colors, want 5", len(doc.Colors))
	}
	first := doc.Colors[0]
	if first.RGB.R != 51 || first.RGB.G != 102 || first.RGB.B != 204 {
		t.Errorf("unexpected rgb %+v", first.RGB)
	}
	if first.HSL.H != 220 || first.Text != "#ffffff" {
		t.Errorf("unexpected swatch %+v", first)
	}
}

func TestEncodePaletteYAML(t *testing.T) {
	p := mustPalette(t, "#ff0000", palette.Triadic)

	var buf bytes.Buffer
	if err := EncodePalette(&buf, "yaml", p); err != nil {
		t.Fatalf("EncodePalette: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "type: triadic") {
		t.Errorf("yaml missing type:\n%s", out)
	}

	var doc PaletteDoc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if len(doc.Colors) != 6 || doc.Colors[1].Hex != "#00ff00" {
		t.Errorf("unexpected colors %+v", doc.Colors)
	}
}

func TestCSS(t *testing.T) {
	p := mustPalette(t, "#ff0000", palette.Complementary)
	css := CSS(p)

	if !strings.HasPrefix(css, "/* colorkit complementary palette "+p.Fingerprint()+" */") {
		t.Errorf("unexpected header:\n%s", css)
	}
	for i, hex := range p.Colors {
		line := "--colorkit-complementary-" + string(rune('1'+i)) + ": " + hex + ";"
		if !strings.Contains(css, line) {
			t.Errorf("css missing %q", line)
		}
	}
}

func TestEncodeContrast(t *testing.T) {
	res, err := contrast.Check("#000000", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, "json", NewContrastDoc(res)); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["formatted"] != "21.00:1" {
		t.Errorf("formatted = %v", got["formatted"])
	}
	for _, key := range []string{"aa", "aa_large", "aaa", "aaa_large"} {
		if got[key] != true {
			t.Errorf("%s = %v, want true", key, got[key])
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	p := mustPalette(t, "#ff0000", palette.Analogous)
	if err := EncodePalette(&bytes.Buffer{}, "xml", p); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
