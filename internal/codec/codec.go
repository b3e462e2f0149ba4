// Package codec converts colors between hex, RGB and HSL notation.
//
// The conversion functions follow a precondition contract: callers validate
// input with IsValidHex (or use ParseHex) before handing it over. Malformed
// input never panics, it just produces meaningless output.
package codec

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for anything that is not #RGB or #RRGGBB.
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// RGB holds three 8-bit channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees and saturation/lightness in percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// IsValidHex reports whether s is '#' followed by exactly 3 or 6 hex digits.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// NormalizeHex expands the 3-digit shorthand to 6 digits. Case is preserved.
func NormalizeHex(s string) string {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}
	return "#" + hex
}

// Canonical returns the 6-digit lowercase form of a valid hex color.
func Canonical(hex string) string {
	return strings.ToLower(NormalizeHex(hex))
}

// ParseHex validates s and returns its canonical form.
func ParseHex(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidHex(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Canonical(trimmed), nil
}

// HexToRGB parses a 6-digit hex color. A pair that fails to parse yields 0.
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	return RGB{
		R: parsePair(hex, 0),
		G: parsePair(hex, 2),
		B: parsePair(hex, 4),
	}
}

func parsePair(hex string, offset int) int {
	if len(hex) < offset+2 {
		return 0
	}
	v, err := strconv.ParseUint(hex[offset:offset+2], 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}

// RGBToHex formats the channels as #rrggbb. Channels must already be in 0..255.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexToHSL converts a 6-digit hex color to rounded HSL.
func HexToHSL(hex string) HSL {
	rgb := HexToRGB(hex)
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2

	var h, s float64
	if maxVal != minVal {
		d := maxVal - minVal
		if l > 0.5 {
			s = d / (2 - maxVal - minVal)
		} else {
			s = d / (maxVal + minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: roundHalfUp(h*360) % 360,
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}
}

// HSLToHex converts hue (degrees) and saturation/lightness (percent) to #rrggbb.
func HSLToHex(h, s, l int) string {
	hf := float64(h) / 360
	sf := float64(s) / 100
	lf := float64(l) / 100

	var r, g, b float64
	if sf == 0 {
		r, g, b = lf, lf, lf
	} else {
		var q float64
		if lf < 0.5 {
			q = lf * (1 + sf)
		} else {
			q = lf + sf - lf*sf
		}
		p := 2*lf - q

		r = hueToRGB(p, q, hf+1.0/3)
		g = hueToRGB(p, q, hf)
		b = hueToRGB(p, q, hf-1.0/3)
	}

	return RGBToHex(roundHalfUp(r*255), roundHalfUp(g*255), roundHalfUp(b*255))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Hex returns the #rrggbb form of c.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the #rrggbb form of c.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}
