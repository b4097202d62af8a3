// Package notification defines the notification record the rule engine reads
// and rewrites. The daemon owns these values; rules only borrow them while
// matching and applying.
package notification

import (
	"time"

	"github.com/arthur-debert/notifyrules/pkg/color"
)

// Colors is the palette a notification is drawn with.
type Colors struct {
	FG        color.Color    `toml:"foreground" yaml:"foreground"`
	BG        color.Color    `toml:"background" yaml:"background"`
	Frame     color.Color    `toml:"frame" yaml:"frame"`
	Highlight color.Gradient `toml:"highlight" yaml:"highlight"`
}

// Notification is one message as received over D-Bus plus the presentation
// attributes rules may override.
type Notification struct {
	ID uint32 `toml:"id" yaml:"id"`

	// Fields rules filter on.
	AppName      string  `toml:"appname" yaml:"appname"`
	Summary      string  `toml:"summary" yaml:"summary"`
	Body         string  `toml:"body" yaml:"body"`
	Icon         string  `toml:"icon" yaml:"icon"`
	Category     string  `toml:"category" yaml:"category"`
	StackTag     string  `toml:"stack_tag" yaml:"stack_tag"`
	DesktopEntry string  `toml:"desktop_entry" yaml:"desktop_entry"`
	Urgency      Urgency `toml:"urgency" yaml:"urgency"`
	Transient    bool    `toml:"transient" yaml:"transient"`
	// DBusTimeout is the expiry the client asked for; negative means the
	// client left it to the server, zero means never expire.
	DBusTimeout time.Duration `toml:"dbus_timeout" yaml:"dbus_timeout"`

	// Presentation attributes rules may override.
	Timeout              time.Duration `toml:"timeout" yaml:"timeout"`
	DefaultActionName    string        `toml:"default_action_name" yaml:"default_action_name"`
	Markup               Markup        `toml:"markup" yaml:"markup"`
	HistoryIgnore        bool          `toml:"history_ignore" yaml:"history_ignore"`
	SkipDisplay          bool          `toml:"skip_display" yaml:"skip_display"`
	WordWrap             bool          `toml:"word_wrap" yaml:"word_wrap"`
	Ellipsize            Ellipsize     `toml:"ellipsize" yaml:"ellipsize"`
	Alignment            Alignment     `toml:"alignment" yaml:"alignment"`
	HideText             bool          `toml:"hide_text" yaml:"hide_text"`
	IconPosition         IconPosition  `toml:"icon_position" yaml:"icon_position"`
	MinIconSize          int           `toml:"min_icon_size" yaml:"min_icon_size"`
	MaxIconSize          int           `toml:"max_icon_size" yaml:"max_icon_size"`
	OverridePauseLevel   int           `toml:"override_pause_level" yaml:"override_pause_level"`
	Colors               Colors        `toml:"colors" yaml:"colors"`
	Format               string        `toml:"format" yaml:"format"`
	Scripts              []string      `toml:"scripts" yaml:"scripts"`
	// ScriptMouseForward and ScriptMouseBack run on the extra mouse buttons.
	ScriptMouseForward   string        `toml:"script_mouse_forward" yaml:"script_mouse_forward"`
	ScriptMouseBack      string        `toml:"script_mouse_back" yaml:"script_mouse_back"`
	Fullscreen           Fullscreen    `toml:"fullscreen" yaml:"fullscreen"`
	ProgressBarAlignment Alignment     `toml:"progress_bar_alignment" yaml:"progress_bar_alignment"`

	// Origins records which rule set which field, filled only by saved
	// rule applications.
	Origins Origins `toml:"-" yaml:"-"`
}

// New returns a notification with the daemon's baseline presentation.
func New(appName, summary, body string) *Notification {
	return &Notification{
		AppName:     appName,
		Summary:     summary,
		Body:        body,
		Urgency:     UrgencyNormal,
		DBusTimeout: -1,
		Timeout:     10 * time.Second,
		Markup:      MarkupNo,
		WordWrap:    true,
		Ellipsize:   EllipsizeMiddle,
		Alignment:   AlignLeft,
		MaxIconSize: 128,
	}
}
