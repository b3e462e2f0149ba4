package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	// Primary colors
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)

	// Accent colors
	clrPrimary = color.New(color.FgMagenta, color.Bold)
	clrAccent  = color.New(color.FgCyan, color.Bold)

	// Status colors
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Status output goes to stderr so rendered results on stdout stay pipeable.
var (
	logMu    sync.Mutex
	logOut   io.Writer = os.Stderr
	logDebug bool
	logClock = time.Now

	// errOut is separate so errors survive a silenced status log.
	errOut io.Writer = os.Stderr
)

// SetLogOutput redirects status output, returning the previous writer.
func SetLogOutput(w io.Writer) io.Writer {
	logMu.Lock()
	defer logMu.Unlock()
	prev := logOut
	logOut = w
	return prev
}

// SetErrorOutput redirects error notes, returning the previous writer.
func SetErrorOutput(w io.Writer) io.Writer {
	logMu.Lock()
	defer logMu.Unlock()
	prev := errOut
	errOut = w
	return prev
}

// SetDebug enables or disables "debug" status lines.
func SetDebug(enabled bool) {
	logMu.Lock()
	logDebug = enabled
	logMu.Unlock()
}

func logf(format string, a ...interface{}) {
	logMu.Lock()
	defer logMu.Unlock()
	fmt.Fprintf(logOut, format, a...)
}

func errf(format string, a ...interface{}) {
	logMu.Lock()
	defer logMu.Unlock()
	fmt.Fprintf(errOut, format, a...)
}

func timestamp() string {
	return clrDim.Sprint(logClock().Format("15:04:05"))
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	case "debug":
		logMu.Lock()
		enabled := logDebug
		logMu.Unlock()
		if !enabled {
			return
		}
		icon = clrDim.Sprint("·")
		styledMsg = clrDim.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	logf("%s  %s  %s\n", timestamp(), icon, styledMsg)
}

// LogSection creates a section header
func LogSection(title string) {
	rule := 50 - VisibleWidth(title)
	if rule < 2 {
		rule = 2
	}
	logf("\n%s %s %s\n",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", rule)))
}

// LogGroup starts a grouped block of messages
func LogGroup(title string) {
	rule := 50 - VisibleWidth(title)
	if rule < 2 {
		rule = 2
	}
	logf("\n%s%s %s %s%s\n",
		clrDim.Sprint(boxTopLeft),
		clrDim.Sprint(strings.Repeat(boxHorizontal, 2)),
		clrPrimary.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, rule)),
		clrDim.Sprint(boxTopRight))
}

// LogGroupEnd closes a grouped block
func LogGroupEnd() {
	logf("%s\n\n", clrDim.Sprint(boxBottomLeft+strings.Repeat(boxHorizontal, 56)+boxBottomRight))
}

// LogGroupItem logs an item within a group
func LogGroupItem(label, value string) {
	logf("%s  %s %s\n",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value))
}

// LogColor logs a color value next to a small chip of that color
func LogColor(label, hex string) {
	chip := "  "
	if IsRich() {
		chip = HexBgColor(hex).Sprint("  ")
	}
	logf("%s  %s  %s %s\n", timestamp(), chip, clrSubtle.Sprint(label), clrAccent.Sprint(hex))
}

// LogMetric displays a metric value
func LogMetric(name string, value interface{}, unit string) {
	logf("%s  %s  %s: %s %s\n",
		timestamp(),
		clrDim.Sprint("◈"),
		clrSubtle.Sprint(name),
		clrAccent.Sprintf("%v", value),
		clrDim.Sprint(unit))
}

// PrintFooter displays a dim footer message
func PrintFooter(message string) {
	logf("\n  %s %s\n", clrDim.Sprint("▸"), clrDim.Sprint(message))
}
