// Package color holds the colour values rules can assign to a notification:
// a single RGBA Color and an ordered Gradient of colours.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA colour with channels in [0,1].
type Color struct {
	colorful.Color
	A float64
}

// Parse reads "#rgb", "#rrggbb" or "#rrggbbaa" (case-insensitive).
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q must start with '#'", s)
	}

	alpha := 1.0
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q has an invalid alpha channel", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return Color{}, fmt.Errorf("color %q must have 3, 6 or 8 hex digits", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{Color: c, A: alpha}, nil
}

// MustParse is Parse for literals; it panics on malformed input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders "#rrggbb" for opaque colours and "#rrggbbaa" otherwise.
func (c Color) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(c.A*255)))
}

// Equal compares the colours as they would be rendered.
func (c Color) Equal(o Color) bool {
	return c.String() == o.String()
}

// MarshalText lets encoders (toml, yaml) write colours as hex strings.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
