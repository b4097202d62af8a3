package notifyrules

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/arthur-debert/notifyrules/pkg/rules"
	"github.com/arthur-debert/notifyrules/pkg/styles"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// renderFields prints the field registry as an aligned table.
func renderFields(w io.Writer, fields []rules.Field) error {
	header := fmt.Sprintf("%-4s %-24s %-9s %-10s %s", "#", "FIELD", "KIND", "GROUP", "WRITES")
	if _, err := fmt.Fprintln(w, styles.Render("Column", header)); err != nil {
		return err
	}

	for _, f := range fields {
		style := "Filter"
		if f.Group == rules.GroupModifying {
			style = "Modifier"
		}
		target := f.Target
		if target == "" {
			target = "-"
		}
		row := fmt.Sprintf("%-4d %s %-9s %-10s %s",
			f.ID,
			styles.Render(style, fmt.Sprintf("%-24s", f.Name)),
			f.Kind,
			f.Group,
			target,
		)
		if f.Enum != nil {
			row += styles.Render("Muted", " ("+strings.Join(f.Enum.Names(), "|")+")")
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// renderRule prints a rule as a header followed by "key = value" lines.
func renderRule(w io.Writer, r *rules.Rule) {
	fmt.Fprintln(w, styles.Render("RuleName", "["+r.Name+"]"))
	for _, p := range rules.Describe(r)[1:] {
		f, _ := rules.Fields.Lookup(p.Key)
		style := "Modifier"
		if f.Group == rules.GroupFilter {
			style = "Filter"
		}
		value := p.Value
		if c, ok := f.Value(r).(color.Color); ok && isTerminal() {
			value += " " + styles.Swatch(c, "   ")
		}
		fmt.Fprintf(w, "%s = %s\n", styles.Render(style, p.Key), value)
	}
}

// notificationDocument flattens n into plain values for TOML or YAML output.
func notificationDocument(n *notification.Notification) map[string]interface{} {
	highlight := make([]string, len(n.Colors.Highlight))
	for i, c := range n.Colors.Highlight {
		highlight[i] = c.String()
	}
	scripts := n.Scripts
	if scripts == nil {
		scripts = []string{}
	}

	doc := map[string]interface{}{
		"appname":                n.AppName,
		"summary":                n.Summary,
		"body":                   n.Body,
		"icon":                   n.Icon,
		"category":               n.Category,
		"stack_tag":              n.StackTag,
		"desktop_entry":          n.DesktopEntry,
		"urgency":                n.Urgency.String(),
		"transient":              n.Transient,
		"dbus_timeout":           n.DBusTimeout.String(),
		"timeout":                n.Timeout.String(),
		"default_action_name":    n.DefaultActionName,
		"markup":                 n.Markup.String(),
		"history_ignore":         n.HistoryIgnore,
		"skip_display":           n.SkipDisplay,
		"word_wrap":              n.WordWrap,
		"ellipsize":              n.Ellipsize.String(),
		"alignment":              n.Alignment.String(),
		"hide_text":              n.HideText,
		"icon_position":          n.IconPosition.String(),
		"min_icon_size":          n.MinIconSize,
		"max_icon_size":          n.MaxIconSize,
		"override_pause_level":   n.OverridePauseLevel,
		"format":                 n.Format,
		"scripts":                scripts,
		"script_mouse_forward":   n.ScriptMouseForward,
		"script_mouse_back":      n.ScriptMouseBack,
		"fullscreen":             n.Fullscreen.String(),
		"progress_bar_alignment": n.ProgressBarAlignment.String(),
		"colors": map[string]interface{}{
			"foreground": n.Colors.FG.String(),
			"background": n.Colors.BG.String(),
			"frame":      n.Colors.Frame.String(),
			"highlight":  highlight,
		},
	}

	if len(n.Origins) > 0 {
		origins := make(map[string]interface{}, len(n.Origins))
		for field, o := range n.Origins {
			origins[field] = map[string]interface{}{
				"rule":     o.Rule,
				"rules":    o.Rules,
				"original": fmt.Sprint(o.Original),
			}
		}
		doc["origins"] = origins
	}
	return doc
}

// writeMetrics prints everything gathered from g in the Prometheus text
// exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
