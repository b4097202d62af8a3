package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// Renderer formats raw topic content for the terminal. format is the topic
// file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content as-is.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through untouched.
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty", "ascii"),
	// "auto", or a path to a JSON style file.
	Style string
	// Width wraps output at this column; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer picks the auto-detected style on a terminal and the
// plain "notty" style otherwise, so piped help stays free of escape codes.
func NewGlamourRenderer(tty bool) *GlamourRenderer {
	style := "notty"
	if tty {
		style = "auto"
	}
	return &GlamourRenderer{Style: style}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log.Debug().Err(err).Str("style", r.Style).Msg("Falling back to plain topic output")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		log.Debug().Err(err).Msg("Falling back to plain topic output")
		return content
	}
	return rendered
}
