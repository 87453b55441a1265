package core

import (
	"fmt"
	"strings"
)

// Color is a 24-bit RGB colour used for fills and text.
type Color struct {
	R, G, B uint8
}

// RGB creates a colour from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colours for game elements.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorRed   = Color{255, 0, 0}
	ColorGray  = Color{128, 128, 128}
	ColorBlue  = Color{0, 50, 200}
	ColorRust  = Color{200, 50, 0}
)

// Hex returns the colour in "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return c, nil
}

// MarshalText encodes the colour as "#rrggbb" so it reads naturally in
// YAML and TOML files.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a "#rrggbb" string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
