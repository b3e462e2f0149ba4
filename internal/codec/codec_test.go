package codec

import (
	"errors"
	"testing"
)

func TestIsValidHex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#abc", true},
		{"#ABC", true},
		{"#aabbcc", true},
		{"#3366CC", true},
		{"#12345", false},
		{"#1234567", false},
		{"abc", false},
		{"aabbcc", false},
		{"#ggg", false},
		{"", false},
		{"#", false},
		{" #abc", false},
	}
	for _, tt := range tests {
		if got := IsValidHex(tt.in); got != tt.want {
			t.Errorf("IsValidHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#abc", "#aabbcc"},
		{"#ABC", "#AABBCC"},
		{"abc", "#aabbcc"},
		{"#3366cc", "#3366cc"},
		{"3366CC", "#3366CC"},
	}
	for _, tt := range tests {
		if got := NormalizeHex(tt.in); got != tt.want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("  #F0a ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#ff00aa" {
		t.Errorf("ParseHex = %q, want #ff00aa", got)
	}

	for _, bad := range []string{"", "red", "#12345", "#zzzzzz", "3366cc"} {
		if _, err := ParseHex(bad); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", bad, err)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#000000", RGB{0, 0, 0}},
		{"#ffffff", RGB{255, 255, 255}},
		{"#FF0000", RGB{255, 0, 0}},
		{"#3366cc", RGB{51, 102, 204}},
		{"1a2b3c", RGB{26, 43, 60}},
		{"#zz0000", RGB{0, 0, 0}},
		{"#ff", RGB{255, 0, 0}},
	}
	for _, tt := range tests {
		if got := HexToRGB(tt.in); got != tt.want {
			t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#ffffff"},
		{1, 2, 3, "#010203"},
		{51, 102, 204, "#3366cc"},
	}
	for _, tt := range tests {
		if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBToHex(%d, %d, %d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestHexRGBRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 51 {
				hex := RGBToHex(r, g, b)
				if got := HexToRGB(hex).Hex(); got != hex {
					t.Fatalf("round trip %q -> %q", hex, got)
				}
			}
		}
	}
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		in   string
		want HSL
	}{
		{"#000000", HSL{0, 0, 0}},
		{"#ffffff", HSL{0, 0, 100}},
		{"#808080", HSL{0, 0, 50}},
		{"#ff0000", HSL{0, 100, 50}},
		{"#00ff00", HSL{120, 100, 50}},
		{"#0000ff", HSL{240, 100, 50}},
		{"#3366cc", HSL{220, 60, 50}},
		{"#336699", HSL{210, 50, 40}},
		{"#ff00ff", HSL{300, 100, 50}},
	}
	for _, tt := range tests {
		if got := HexToHSL(tt.in); got != tt.want {
			t.Errorf("HexToHSL(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexToHSLHueBelow360(t *testing.T) {
	// Hue 359.76 rounds up to 360 and must wrap to 0.
	got := HexToHSL("#ff0001")
	if got.H != 0 {
		t.Errorf("HexToHSL(#ff0001).H = %d, want 0", got.H)
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		h, s, l int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{0, 0, 100, "#ffffff"},
		{0, 100, 50, "#ff0000"},
		{120, 100, 50, "#00ff00"},
		{240, 100, 50, "#0000ff"},
		{180, 100, 50, "#00ffff"},
		{220, 60, 50, "#3366cc"},
		{210, 50, 40, "#336699"},
		{0, 0, 50, "#808080"},
	}
	for _, tt := range tests {
		if got := HSLToHex(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("HSLToHex(%d, %d, %d) = %q, want %q", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

// Integer HSL quantizes away detail: across the full hex space a round trip
// can drift by up to 4 per channel. Colors whose HSL is exact stay within 1.
func TestHSLRoundTripWithinTolerance(t *testing.T) {
	colors := []string{
		"#000000", "#ffffff", "#808080", "#ff0000", "#00ff00", "#0000ff",
		"#ffff00", "#00ffff", "#ff00ff", "#3366cc", "#336699",
	}
	for _, hex := range colors {
		want := HexToRGB(hex)
		got := HexToRGB(HexToHSL(hex).Hex())
		if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || absDiff(got.B, want.B) > 1 {
			t.Errorf("HSL round trip of %s = %s", hex, got.Hex())
		}
	}
}

func TestStringers(t *testing.T) {
	if got := (RGB{51, 102, 204}).String(); got != "rgb(51, 102, 204)" {
		t.Errorf("RGB.String() = %q", got)
	}
	if got := (HSL{220, 60, 50}).String(); got != "hsl(220, 60%, 50%)" {
		t.Errorf("HSL.String() = %q", got)
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
