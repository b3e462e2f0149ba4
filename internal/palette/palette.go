// Package palette derives color-theory palettes from a base color.
package palette

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"colorkit/internal/codec"
)

// ErrUnknownType is returned when a palette type name is not recognised.
var ErrUnknownType = errors.New("unknown palette type")

// Type selects a palette generation strategy.
type Type int

const (
	Monochromatic Type = iota
	Analogous
	Complementary
	Triadic
)

var typeNames = map[Type]string{
	Monochromatic: "monochromatic",
	Analogous:     "analogous",
	Complementary: "complementary",
	Triadic:       "triadic",
}

// Types returns every supported type in declaration order.
func Types() []Type {
	return []Type{Monochromatic, Analogous, Complementary, Triadic}
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a case-insensitive name to its Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types() {
		if typeNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Palette is an ordered set of colors whose first entry is the base.
type Palette struct {
	Type   Type
	Base   string
	Colors []string
}

// New validates base and t, then generates the palette.
func New(base string, t Type) (Palette, error) {
	canonical, err := codec.ParseHex(base)
	if err != nil {
		return Palette{}, err
	}
	if _, ok := typeNames[t]; !ok {
		return Palette{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return Palette{Type: t, Base: canonical, Colors: Generate(canonical, t)}, nil
}

// Generate builds the palette for a valid base color. An unknown type yields nil.
func Generate(baseHex string, t Type) []string {
	base := codec.Canonical(baseHex)
	hsl := codec.HexToHSL(base)

	switch t {
	case Monochromatic:
		return monochromatic(base, hsl)
	case Analogous:
		return analogous(base, hsl)
	case Complementary:
		return complementary(base, hsl)
	case Triadic:
		return triadic(base, hsl)
	}
	return nil
}

func monochromatic(base string, c codec.HSL) []string {
	colors := []string{base}
	for i := 1; i <= 2; i++ {
		colors = append(colors, codec.HSLToHex(c.H, c.S, lighten(c.L, i*15)))
	}
	for i := 1; i <= 2; i++ {
		colors = append(colors, codec.HSLToHex(c.H, c.S, darken(c.L, i*15)))
	}
	return colors
}

func analogous(base string, c codec.HSL) []string {
	return []string{
		base,
		codec.HSLToHex(rotate(c.H, 30), c.S, c.L),
		codec.HSLToHex(rotate(c.H, 60), c.S, c.L),
		codec.HSLToHex(rotate(c.H, -30), c.S, c.L),
		codec.HSLToHex(rotate(c.H, -60), c.S, c.L),
	}
}

func complementary(base string, c codec.HSL) []string {
	return []string{
		base,
		codec.HSLToHex(rotate(c.H, 180), c.S, c.L),
		codec.HSLToHex(rotate(c.H, 150), c.S, c.L),
		codec.HSLToHex(rotate(c.H, 210), c.S, c.L),
		codec.HSLToHex(c.H, c.S, lighten(c.L, 20)),
		codec.HSLToHex(c.H, c.S, darken(c.L, 20)),
	}
}

func triadic(base string, c codec.HSL) []string {
	second, third := rotate(c.H, 120), rotate(c.H, 240)
	light := lighten(c.L, 15)
	return []string{
		base,
		codec.HSLToHex(second, c.S, c.L),
		codec.HSLToHex(third, c.S, c.L),
		codec.HSLToHex(c.H, c.S, light),
		codec.HSLToHex(second, c.S, light),
		codec.HSLToHex(third, c.S, light),
	}
}

// rotate moves hue by delta degrees, wrapping into [0, 360).
func rotate(hue, delta int) int {
	return (hue + delta + 360) % 360
}

func lighten(l, delta int) int {
	return min(100, l+delta)
}

func darken(l, delta int) int {
	return max(0, l-delta)
}

// Fingerprint identifies the palette by its type and colors.
func (p Palette) Fingerprint() string {
	sum := blake2b.Sum256([]byte(p.Type.String() + ":" + strings.Join(p.Colors, ",")))
	return hex.EncodeToString(sum[:8])
}
