package ui

import (
	"github.com/fatih/color"

	"colorkit/internal/codec"
)

var CLI_PALETTE = struct {
	// Primary accent colors
	Accent       string // #7D56F4 - Primary brand color
	AccentBright string // #9B7BFF - Highlighted/active state
	AccentDim    string // #5B3CC4 - Muted accent

	// Semantic colors
	Info    string // #00A3CC - Informational messages
	Success string // #2FBF71 - Passing checks
	Warn    string // #FFB020 - Warnings
	Error   string // #E23D2D - Failing checks

	// Neutral
	Muted string // #8B7F77 - Secondary text, hints, metadata
}{
	Accent:       "#7D56F4",
	AccentBright: "#9B7BFF",
	AccentDim:    "#5B3CC4",
	Info:         "#00A3CC",
	Success:      "#2FBF71",
	Warn:         "#FFB020",
	Error:        "#E23D2D",
	Muted:        "#8B7F77",
}

// HexColor returns a 24-bit foreground style for a valid hex color.
func HexColor(hex string, attrs ...color.Attribute) *color.Color {
	c := codec.HexToRGB(codec.NormalizeHex(hex))
	return color.RGB(c.R, c.G, c.B).Add(attrs...)
}

// HexBgColor returns a 24-bit background style for a valid hex color.
func HexBgColor(hex string) *color.Color {
	c := codec.HexToRGB(codec.NormalizeHex(hex))
	return color.BgRGB(c.R, c.G, c.B)
}
