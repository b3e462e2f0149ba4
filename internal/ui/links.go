package ui

import (
	"fmt"
	"os"
	"strings"
)

// DOCS_ROOT is the base URL for WCAG reference links
const DOCS_ROOT = "https://www.w3.org/WAI/WCAG21/Understanding"

// Understanding documents for the contrast success criteria.
const (
	DocContrastMinimum  = "/contrast-minimum.html"
	DocContrastEnhanced = "/contrast-enhanced.html"
)

// SupportsHyperlinks checks if the terminal supports OSC-8 hyperlinks
func SupportsHyperlinks() bool {
	termProgram := os.Getenv("TERM_PROGRAM")

	if strings.Contains(termProgram, "iTerm") ||
		strings.Contains(termProgram, "WezTerm") ||
		strings.Contains(termProgram, "vscode") ||
		os.Getenv("WT_SESSION") != "" { // Windows Terminal
		return true
	}

	return strings.Contains(os.Getenv("TERM"), "xterm-256color")
}

// FormatTerminalLink creates an OSC-8 hyperlink if supported
// Falls back to "label (url)" format if not supported
func FormatTerminalLink(label, url string) string {
	if !IsRich() || !SupportsHyperlinks() {
		return fmt.Sprintf("%s (%s)", label, url)
	}

	// OSC-8 format: ESC ] 8 ; ; URL ST text ESC ] 8 ; ; ST
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, label)
}

// FormatDocsLink creates a documentation link
func FormatDocsLink(path, label string) string {
	url := path
	if !strings.HasPrefix(path, "http") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		url = DOCS_ROOT + path
	}

	if label == "" {
		label = url
	}

	return FormatTerminalLink(label, url)
}
