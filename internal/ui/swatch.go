package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"colorkit/internal/contrast"
)

// lipgloss picks the terminal's color profile, so swatches degrade to 256 or
// 16 colors (or plain text) where truecolor is unavailable.

// Swatch renders a block filled with hex, labelled with the uppercase hex in
// whichever of black or white reads better on it.
func Swatch(hex string, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(contrast.TextColor(hex))).
		Width(width).
		Align(lipgloss.Center).
		Render(strings.ToUpper(hex))
}

// SwatchRow renders swatches side by side with 1-based indexes underneath.
func SwatchRow(colors []string, width int) string {
	blocks := make([]string, 0, len(colors)*2)
	indexes := make([]string, 0, len(colors))
	for i, hex := range colors {
		if i > 0 {
			blocks = append(blocks, " ")
		}
		blocks = append(blocks, Swatch(hex, width))
		indexes = append(indexes, PadCenter(strconv.Itoa(i+1), width))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	return row + "\n" + Muted("%s", strings.Join(indexes, " "))
}

// Preview renders sample text in fg on bg.
func Preview(fg, bg, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 2).
		Render(text)
}
