package ui

import (
	"math/rand"
	"strings"
	"time"
)

// Default tagline fallback
const defaultTagline = "Contrast checks and palettes for the terminal"

// Tagline pool with personality
var taglines = []string{
	defaultTagline,
	"Because #777 on white almost made it",
	"Twenty-one shades of ratio",
	"Complementary, never condescending",
	"Your palette, minus the guesswork",
	"Readable by design, not by luck",
	"Spinning the color wheel since boot",
	"WCAG-approved vibes only",
}

// Date-specific taglines
var holidayTaglines = []taglineRule{
	{month: 12, day: 25, tagline: "🎄 Red and green: check your contrast!"},
	{month: 10, day: 31, tagline: "🎃 Orange on black passes AAA. Spooky."},
	{month: 2, day: 14, tagline: "💘 #ff69b4 and friends"},
	{month: 1, day: 1, tagline: "🎉 New year, new palette"},
}

type taglineRule struct {
	month   int
	day     int
	tagline string
}

// PickTagline returns a random tagline, considering holidays
func PickTagline() string {
	return pickTaglineAt(time.Now())
}

func pickTaglineAt(now time.Time) string {
	for _, rule := range holidayTaglines {
		if rule.month == int(now.Month()) && rule.day == now.Day() {
			return rule.tagline
		}
	}

	if len(taglines) == 0 {
		return defaultTagline
	}

	r := rand.New(rand.NewSource(now.UnixNano()))
	return taglines[r.Intn(len(taglines))]
}

// FormatTagline wraps a tagline with optional styling
func FormatTagline(tagline string) string {
	if !IsRich() {
		return tagline
	}
	for _, rule := range holidayTaglines {
		if strings.HasPrefix(tagline, rule.tagline[:4]) {
			return tagline // Keep emojis as-is
		}
	}
	return AccentDim(tagline)
}
