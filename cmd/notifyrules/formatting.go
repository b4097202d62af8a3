package notifyrules

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/notifyrules/pkg/paths"
	"github.com/arthur-debert/notifyrules/pkg/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var boldStyle = lipgloss.NewStyle().Bold(true)

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold returns the string in bold when stdout is a terminal
func formatBold(s string) string {
	if !isTerminal() {
		return s
	}
	return boldStyle.Render(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}

// applyUserStyles swaps in the user's style sheet when one exists.
func applyUserStyles() {
	path := paths.StylesFile()
	if _, err := os.Stat(path); err != nil {
		return
	}
	sheet, err := styles.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Ignoring style sheet")
		return
	}
	styles.Use(sheet)
	log.Debug().Str("path", path).Msg("Loaded style sheet")
}
