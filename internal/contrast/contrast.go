// Package contrast implements WCAG 2.x relative luminance, contrast ratio and
// compliance thresholds.
package contrast

import (
	"fmt"
	"math"

	"colorkit/internal/codec"
)

// WCAG 2.x minimum ratios.
const (
	MinAA       = 4.5
	MinAALarge  = 3.0
	MinAAA      = 7.0
	MinAAALarge = 4.5
)

// Compliance reports which WCAG levels a ratio satisfies.
type Compliance struct {
	AA       bool `json:"aa"`
	AALarge  bool `json:"aa_large"`
	AAA      bool `json:"aaa"`
	AAALarge bool `json:"aaa_large"`
}

// Level is one labelled row of a Compliance.
type Level struct {
	Label string
	Min   float64
	Pass  bool
}

// Result is the outcome of checking a foreground/background pair.
type Result struct {
	Foreground string
	Background string
	Ratio      float64
	Compliance
}

// Luminance returns the relative luminance of an sRGB color, in [0, 1].
func Luminance(r, g, b int) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func linearize(channel int) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio between two 6-digit hex colors, in [1, 21].
// The order of the arguments does not matter.
func Ratio(fg, bg string) float64 {
	l1 := hexLuminance(fg)
	l2 := hexLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func hexLuminance(hex string) float64 {
	c := codec.HexToRGB(hex)
	return Luminance(c.R, c.G, c.B)
}

// CheckCompliance thresholds ratio against the WCAG levels.
func CheckCompliance(ratio float64) Compliance {
	return Compliance{
		AA:       ratio >= MinAA,
		AALarge:  ratio >= MinAALarge,
		AAA:      ratio >= MinAAA,
		AAALarge: ratio >= MinAAALarge,
	}
}

// FormatRatio renders ratio as "N.NN:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// Check validates both colors and returns the ratio with its compliance.
func Check(fg, bg string) (Result, error) {
	fgHex, err := codec.ParseHex(fg)
	if err != nil {
		return Result{}, fmt.Errorf("foreground: %w", err)
	}
	bgHex, err := codec.ParseHex(bg)
	if err != nil {
		return Result{}, fmt.Errorf("background: %w", err)
	}

	ratio := Ratio(fgHex, bgHex)
	return Result{
		Foreground: fgHex,
		Background: bgHex,
		Ratio:      ratio,
		Compliance: CheckCompliance(ratio),
	}, nil
}

// Formatted returns the ratio as "N.NN:1".
func (r Result) Formatted() string {
	return FormatRatio(r.Ratio)
}

// Levels lists the four checks in display order.
func (c Compliance) Levels() []Level {
	return []Level{
		{Label: "AA (Normal Text)", Min: MinAA, Pass: c.AA},
		{Label: "AA (Large Text)", Min: MinAALarge, Pass: c.AALarge},
		{Label: "AAA (Normal Text)", Min: MinAAA, Pass: c.AAA},
		{Label: "AAA (Large Text)", Min: MinAAALarge, Pass: c.AAALarge},
	}
}

// IsLight reports whether a swatch of hex needs dark text.
func IsLight(hex string) bool {
	return hexLuminance(hex) > 0.5
}

// TextColor picks black or white label text for a swatch of hex.
func TextColor(hex string) string {
	if IsLight(hex) {
		return "#000000"
	}
	return "#ffffff"
}
