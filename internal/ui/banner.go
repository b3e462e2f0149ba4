package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"colorkit/internal/palette"
)

// Glyphs in the "ANSI Shadow" figlet style, six rows each.
var glyphs = map[rune][]string{
	'C': {" ██████╗", "██╔════╝", "██║     ", "██║     ", "╚██████╗", " ╚═════╝"},
	'O': {" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
	'L': {"██╗     ", "██║     ", "██║     ", "██║     ", "███████╗", "╚══════╝"},
	'R': {"██████╗ ", "██╔══██╗", "██████╔╝", "██╔══██╗", "██║  ██║", "╚═╝  ╚═╝"},
	'K': {"██╗  ██╗", "██║ ██╔╝", "█████╔╝ ", "██╔═██╗ ", "██║  ██╗", "╚═╝  ╚═╝"},
	'I': {"██╗", "██║", "██║", "██║", "██║", "╚═╝"},
	'T': {"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "},
}

const bannerWord = "COLORKIT"

var bannerEmitted = false

// bannerGradient orders the analogous palette of the accent color by hue so
// the word sweeps across the wheel.
func bannerGradient() []string {
	colors := palette.Generate(CLI_PALETTE.Accent, palette.Analogous)
	// base, +30, +60, -30, -60 -> -60, -30, base, +30, +60
	return []string{colors[4], colors[3], colors[0], colors[1], colors[2]}
}

// FormatBannerArt returns the ASCII banner, one gradient color per letter
func FormatBannerArt() string {
	rich := IsRich()
	gradient := bannerGradient()
	letters := []rune(bannerWord)

	rows := make([]string, 6)
	for i, ch := range letters {
		glyph := glyphs[ch]
		hex := gradient[i*len(gradient)/len(letters)]
		for r := range rows {
			if rich {
				rows[r] += HexColor(hex).Sprint(glyph[r])
			} else {
				rows[r] += glyph[r]
			}
		}
	}
	return strings.Join(rows, "\n")
}

// FormatBannerLine returns the version/tagline line
func FormatBannerLine(version, tagline string) string {
	title := "◆ COLORKIT"

	if IsRich() {
		return fmt.Sprintf("%s %s %s %s",
			Heading(title),
			Info(version),
			Muted("—"),
			AccentDim(tagline))
	}
	return fmt.Sprintf("%s %s — %s", title, version, tagline)
}

// EmitBanner displays the banner once, and only on an interactive terminal
func EmitBanner(version string) {
	if bannerEmitted || !isTTY() {
		return
	}

	logf("\n%s\n\n%s\n\n", FormatBannerArt(), FormatBannerLine(version, FormatTagline(PickTagline())))
	bannerEmitted = true
}

// isTTY checks if stderr is a terminal
func isTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
