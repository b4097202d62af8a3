package color

import (
	"fmt"
	"strings"
)

// Gradient is an ordered list of colours; a single entry is a flat colour.
type Gradient []Color

// ParseGradient reads colours separated by commas and/or whitespace.
func ParseGradient(s string) (Gradient, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("gradient %q has no colors", s)
	}

	g := make(Gradient, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		g = append(g, c)
	}
	return g, nil
}

func (g Gradient) String() string {
	parts := make([]string, len(g))
	for i, c := range g {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether both gradients hold the same colours in order.
func (g Gradient) Equal(o Gradient) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if !g[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy; nil stays nil.
func (g Gradient) Clone() Gradient {
	if g == nil {
		return nil
	}
	return append(Gradient(nil), g...)
}
