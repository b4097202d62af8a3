package notification

import (
	"fmt"
	"strings"
)

// Urgency is the freedesktop urgency level of a notification.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Markup controls how the body text is interpreted.
type Markup int

const (
	MarkupNo Markup = iota
	MarkupStrip
	MarkupFull
)

// Alignment is the horizontal placement of text or the progress bar.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Ellipsize selects where overlong lines are cut.
type Ellipsize int

const (
	EllipsizeStart Ellipsize = iota
	EllipsizeMiddle
	EllipsizeEnd
)

// IconPosition places the icon relative to the text.
type IconPosition int

const (
	IconLeft IconPosition = iota
	IconRight
	IconTop
	IconOff
)

// Fullscreen decides what happens to the notification while a fullscreen
// window has focus.
type Fullscreen int

const (
	FullscreenShow Fullscreen = iota
	FullscreenDelay
	FullscreenPushback
)

// EnumSet is the bidirectional name table of one enum type. Names are the
// config spellings; lookup is case-insensitive.
type EnumSet struct {
	Type  string
	names []string
}

func newEnumSet(typ string, names ...string) *EnumSet {
	return &EnumSet{Type: typ, names: names}
}

var (
	UrgencyNames      = newEnumSet("urgency", "low", "normal", "critical")
	MarkupNames       = newEnumSet("markup", "no", "strip", "full")
	AlignmentNames    = newEnumSet("alignment", "left", "center", "right")
	EllipsizeNames    = newEnumSet("ellipsize", "start", "middle", "end")
	IconPositionNames = newEnumSet("icon_position", "left", "right", "top", "off")
	FullscreenNames   = newEnumSet("fullscreen", "show", "delay", "pushback")
)

// Parse maps a name to its ordinal.
func (e *EnumSet) Parse(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range e.names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q (want one of %s)", e.Type, s, strings.Join(e.names, ", "))
}

// Name maps an ordinal back to its name.
func (e *EnumSet) Name(v int) string {
	if v < 0 || v >= len(e.names) {
		return fmt.Sprintf("%s(%d)", e.Type, v)
	}
	return e.names[v]
}

// Names lists the valid spellings in ordinal order.
func (e *EnumSet) Names() []string {
	return append([]string(nil), e.names...)
}

func (u Urgency) String() string      { return UrgencyNames.Name(int(u)) }
func (m Markup) String() string       { return MarkupNames.Name(int(m)) }
func (a Alignment) String() string    { return AlignmentNames.Name(int(a)) }
func (e Ellipsize) String() string    { return EllipsizeNames.Name(int(e)) }
func (p IconPosition) String() string { return IconPositionNames.Name(int(p)) }
func (f Fullscreen) String() string   { return FullscreenNames.Name(int(f)) }

func (u Urgency) MarshalText() ([]byte, error)      { return []byte(u.String()), nil }
func (m Markup) MarshalText() ([]byte, error)       { return []byte(m.String()), nil }
func (a Alignment) MarshalText() ([]byte, error)    { return []byte(a.String()), nil }
func (e Ellipsize) MarshalText() ([]byte, error)    { return []byte(e.String()), nil }
func (p IconPosition) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (f Fullscreen) MarshalText() ([]byte, error)   { return []byte(f.String()), nil }
