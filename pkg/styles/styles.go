// Package styles defines the visual styling for notifyrules' terminal output.
//
// Styles have semantic names and adaptive colors that adjust to light and
// dark terminal themes. The built-in sheet is the embedded styles.yaml; a
// user sheet with the same layout replaces it through Use.
package styles

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color: one hex value per terminal background.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one named style. Foreground and Background name entries of
// the sheet's color table, not raw hex values.
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config is the YAML layout of a style sheet.
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Sheet is a parsed style sheet.
type Sheet struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	mu      sync.RWMutex
	current = builtin()
)

func builtin() *Sheet {
	s, err := Parse(embeddedStyles)
	if err != nil {
		return &Sheet{
			colors: map[string]lipgloss.AdaptiveColor{},
			styles: map[string]lipgloss.Style{},
		}
	}
	return s
}

// Parse reads a sheet from YAML. A style referring to an undefined color is
// an error.
func Parse(data []byte) (*Sheet, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse style sheet")
	}

	s := &Sheet{
		colors: make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors)),
		styles: make(map[string]lipgloss.Style, len(cfg.Styles)),
	}
	for name, def := range cfg.Colors {
		s.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range cfg.Styles {
		style, err := s.build(def)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "style %q", name).
				WithDetail("style", name)
		}
		s.styles[name] = style
	}
	return s, nil
}

// Load reads a sheet from a YAML file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read style sheet %s", path).
			WithDetail("path", path)
	}
	return Parse(data)
}

func (s *Sheet) build(def StyleDef) (lipgloss.Style, error) {
	style := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		Underline(def.Underline)

	if def.Foreground != "" {
		c, ok := s.colors[def.Foreground]
		if !ok {
			return style, errors.Newf(errors.ErrNotFound, "undefined color %q", def.Foreground)
		}
		style = style.Foreground(c)
	}
	if def.Background != "" {
		c, ok := s.colors[def.Background]
		if !ok {
			return style, errors.Newf(errors.ErrNotFound, "undefined color %q", def.Background)
		}
		style = style.Background(c)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return style, nil
}

// Style returns the named style, or an empty style if the sheet lacks it.
func (s *Sheet) Style(name string) lipgloss.Style {
	if style, ok := s.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether the sheet defines name.
func (s *Sheet) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// Names lists the sheet's style names, sorted.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders text with the named style.
func (s *Sheet) Render(name, text string) string {
	return s.Style(name).Render(text)
}

// Use makes s the sheet behind the package-level helpers. Nil restores the
// built-in sheet.
func Use(s *Sheet) {
	if s == nil {
		s = builtin()
	}
	mu.Lock()
	current = s
	mu.Unlock()
}

// Current returns the active sheet.
func Current() *Sheet {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GetStyle returns the named style from the active sheet.
func GetStyle(name string) lipgloss.Style {
	return Current().Style(name)
}

// Render renders text with the named style from the active sheet.
func Render(name, text string) string {
	return Current().Render(name, text)
}

// Swatch renders text on a block of c, so a color value can be previewed
// next to its hex code.
func Swatch(c color.Color, text string) string {
	fg := "#000000"
	if l, _, _ := c.Lab(); l < 0.5 {
		fg = "#ffffff"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String()[:7])).
		Foreground(lipgloss.Color(fg)).
		Render(text)
}
