package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI escape code patterns
var (
	// SGR (Select Graphic Rendition) codes: ESC[...m
	ansiSGRPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	// OSC-8 hyperlink codes: ESC]8;;...ESC\ or ESC]8;;ESC\
	osc8Pattern = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\|\x1b\]8;;\x1b\\`)
)

// StripAnsi removes all ANSI escape codes from a string
func StripAnsi(input string) string {
	result := osc8Pattern.ReplaceAllString(input, "")
	return ansiSGRPattern.ReplaceAllString(result, "")
}

// VisibleWidth returns the display width of a string, ignoring ANSI codes.
// Wide runes (CJK, most emoji) count as two cells.
func VisibleWidth(input string) int {
	return lipgloss.Width(StripAnsi(input))
}

// PadRight pads a string to a minimum visible width (content on the left)
func PadRight(input string, width int) string {
	return input + spaces(width-VisibleWidth(input))
}

// PadLeft pads a string to a minimum visible width (content on the right)
func PadLeft(input string, width int) string {
	return spaces(width-VisibleWidth(input)) + input
}

// PadCenter centers a string within a given width
func PadCenter(input string, width int) string {
	pad := width - VisibleWidth(input)
	if pad <= 0 {
		return input
	}
	left := pad / 2
	return spaces(left) + input + spaces(pad-left)
}

// spaces returns a string of n spaces
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
