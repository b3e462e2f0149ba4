package ui

import (
	"os"
	"strconv"
	"strings"
)

// Note displays a boxed message with optional title on the status output
func Note(message string, title string) {
	logf("%s", FormatNote(message, title))
}

// FormatNote returns the boxed message without printing it
func FormatNote(message string, title string) string {
	lines := strings.Split(WrapNoteMessage(message, 80), "\n")

	inner := 0
	for _, line := range lines {
		inner = max(inner, VisibleWidth(line))
	}
	inner = max(inner, VisibleWidth(title)+4)
	boxWidth := inner + 2

	var b strings.Builder
	b.WriteString("\n")
	if title != "" {
		styledTitle := title
		if IsRich() {
			styledTitle = Heading("%s", title)
		}
		b.WriteString(Muted(boxTopLeft+strings.Repeat(boxHorizontal, 2)) + " " + styledTitle + " " +
			Muted(strings.Repeat(boxHorizontal, boxWidth-4-VisibleWidth(title))+boxTopRight) + "\n")
	} else {
		b.WriteString(Muted(boxTopLeft+strings.Repeat(boxHorizontal, boxWidth)+boxTopRight) + "\n")
	}

	for _, line := range lines {
		b.WriteString(Muted(boxVertical) + " " + PadRight(line, inner) + " " + Muted(boxVertical) + "\n")
	}

	b.WriteString(Muted(boxBottomLeft+strings.Repeat(boxHorizontal, boxWidth)+boxBottomRight) + "\n")
	return b.String()
}

// WrapNoteMessage wraps text to fit within terminal width
func WrapNoteMessage(message string, maxWidth int) string {
	columns := 80
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		columns = n
	}

	width := min(columns-10, maxWidth)
	width = max(width, 40)

	var out []string
	for _, line := range strings.Split(message, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line to width
func wrapLine(line string, maxWidth int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if VisibleWidth(candidate) <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// InfoNote displays an info-styled note
func InfoNote(message string) {
	Note(message, "ℹ Info")
}

// WarningNote displays a warning-styled note
func WarningNote(message string) {
	Note(message, "⚠ Warning")
}

// ErrorNote displays an error-styled note on the error output
func ErrorNote(message string) {
	errf("%s", FormatNote(message, "✗ Error"))
}
