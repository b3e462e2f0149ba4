package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"colorkit/internal/contrast"
	"colorkit/internal/palette"
)

func TestObserveContrast(t *testing.T) {
	m := New()

	res, err := contrast.Check("#000000", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	m.ObserveContrast(res)

	res, err = contrast.Check("#777777", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	m.ObserveContrast(res)

	if got := testutil.ToFloat64(m.ContrastChecks.WithLabelValues("AAA (Normal Text)", "pass")); got != 1 {
		t.Errorf("AAA pass = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ContrastChecks.WithLabelValues("AAA (Normal Text)", "fail")); got != 1 {
		t.Errorf("AAA fail = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ContrastChecks.WithLabelValues("AA (Large Text)", "pass")); got != 2 {
		t.Errorf("AA large pass = %v, want 2", got)
	}
}

func TestObservePaletteAndInvalid(t *testing.T) {
	m := New()
	m.ObservePalette(palette.Triadic)
	m.ObservePalette(palette.Triadic)
	m.ObservePalette(palette.Analogous)
	m.ObserveInvalid("contrast")
	m.ObserveClipboard(nil)
	m.ObserveClipboard(errors.New("no clipboard"))

	if got := testutil.ToFloat64(m.PalettesGenerated.WithLabelValues("triadic")); got != 2 {
		t.Errorf("triadic = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.InvalidInput.WithLabelValues("contrast")); got != 1 {
		t.Errorf("invalid contrast = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ClipboardWrites.WithLabelValues("fail")); got != 1 {
		t.Errorf("clipboard fail = %v, want 1", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObservePalette(palette.Complementary)

	path := filepath.Join(t.TempDir(), "colorkit.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `colorkit_palettes_generated_total{type="complementary"} 1`) {
		t.Errorf("textfile missing palette counter:\n%s", data)
	}
}

func TestGatherer(t *testing.T) {
	m := New()
	m.ObservePalette(palette.Monochromatic)
	m.ObservePalette(palette.Triadic)

	count, err := testutil.GatherAndCount(m.Gatherer(), "colorkit_palettes_generated_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if count != 2 {
		t.Errorf("palette series = %d, want 2", count)
	}

	// Vectors with no observations export no series.
	count, err = testutil.GatherAndCount(m.Gatherer(), "colorkit_invalid_input_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if count != 0 {
		t.Errorf("invalid input series = %d, want 0", count)
	}
}

func TestSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveInvalid("palette")
	if got := testutil.ToFloat64(b.InvalidInput.WithLabelValues("palette")); got != 0 {
		t.Errorf("registries should be independent, got %v", got)
	}
}
