package rules

import (
	"slices"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/tidwall/match"
)

type note = notification.Notification

// fieldTable declares every rule field in its fixed order. Filters come
// first; the modifying range runs from timeout to set_stack_tag.
func fieldTable() []Field {
	return []Field{
		// filters
		filterField("appname", KindString, func(r *Rule) **string { return &r.Filter.AppName },
			func(n *note) string { return n.AppName }, globMatch),
		filterField("summary", KindString, func(r *Rule) **string { return &r.Filter.Summary },
			func(n *note) string { return n.Summary }, equal[string]),
		filterField("body", KindString, func(r *Rule) **string { return &r.Filter.Body },
			func(n *note) string { return n.Body }, equal[string]),
		filterField("icon", KindString, func(r *Rule) **string { return &r.Filter.Icon },
			func(n *note) string { return n.Icon }, equal[string]),
		filterField("category", KindString, func(r *Rule) **string { return &r.Filter.Category },
			func(n *note) string { return n.Category }, equal[string]),
		filterField("stack_tag", KindString, func(r *Rule) **string { return &r.Filter.StackTag },
			func(n *note) string { return n.StackTag }, equal[string]),
		filterField("desktop_entry", KindString, func(r *Rule) **string { return &r.Filter.DesktopEntry },
			func(n *note) string { return n.DesktopEntry }, equal[string]),
		enumFilter("msg_urgency", notification.UrgencyNames, func(r *Rule) **notification.Urgency { return &r.Filter.MsgUrgency },
			func(n *note) notification.Urgency { return n.Urgency }),
		filterField("match_dbus_timeout", KindInt64, func(r *Rule) **time.Duration { return &r.Filter.MatchDBusTimeout },
			func(n *note) time.Duration { return n.DBusTimeout }, equal[time.Duration]),
		filterField("match_transient", KindBool, func(r *Rule) **bool { return &r.Filter.MatchTransient },
			func(n *note) bool { return n.Transient }, equal[bool]),

		// modifying
		modifierField("timeout", KindInt64, "timeout", func(r *Rule) **time.Duration { return &r.Modify.Timeout },
			func(n *note) *time.Duration { return &n.Timeout }, replace[time.Duration]),
		modifierField("override_dbus_timeout", KindInt64, "timeout", func(r *Rule) **time.Duration { return &r.Modify.OverrideDBusTimeout },
			func(n *note) *time.Duration { return &n.Timeout }, replaceIfClientTimeout),
		enumModifier("urgency", notification.UrgencyNames, "urgency", func(r *Rule) **notification.Urgency { return &r.Modify.Urgency },
			func(n *note) *notification.Urgency { return &n.Urgency }),
		modifierField("action_name", KindString, "default_action_name", func(r *Rule) **string { return &r.Modify.ActionName },
			func(n *note) *string { return &n.DefaultActionName }, replace[string]),
		enumModifier("markup", notification.MarkupNames, "markup", func(r *Rule) **notification.Markup { return &r.Modify.Markup },
			func(n *note) *notification.Markup { return &n.Markup }),
		modifierField("history_ignore", KindBool, "history_ignore", func(r *Rule) **bool { return &r.Modify.HistoryIgnore },
			func(n *note) *bool { return &n.HistoryIgnore }, replace[bool]),
		modifierField("set_transient", KindBool, "transient", func(r *Rule) **bool { return &r.Modify.SetTransient },
			func(n *note) *bool { return &n.Transient }, replace[bool]),
		modifierField("skip_display", KindBool, "skip_display", func(r *Rule) **bool { return &r.Modify.SkipDisplay },
			func(n *note) *bool { return &n.SkipDisplay }, replace[bool]),
		modifierField("word_wrap", KindBool, "word_wrap", func(r *Rule) **bool { return &r.Modify.WordWrap },
			func(n *note) *bool { return &n.WordWrap }, replace[bool]),
		enumModifier("ellipsize", notification.EllipsizeNames, "ellipsize", func(r *Rule) **notification.Ellipsize { return &r.Modify.Ellipsize },
			func(n *note) *notification.Ellipsize { return &n.Ellipsize }),
		enumModifier("alignment", notification.AlignmentNames, "alignment", func(r *Rule) **notification.Alignment { return &r.Modify.Alignment },
			func(n *note) *notification.Alignment { return &n.Alignment }),
		modifierField("hide_text", KindBool, "hide_text", func(r *Rule) **bool { return &r.Modify.HideText },
			func(n *note) *bool { return &n.HideText }, replace[bool]),
		enumModifier("icon_position", notification.IconPositionNames, "icon_position", func(r *Rule) **notification.IconPosition { return &r.Modify.IconPosition },
			func(n *note) *notification.IconPosition { return &n.IconPosition }),
		modifierField("min_icon_size", KindInt, "min_icon_size", func(r *Rule) **int { return &r.Modify.MinIconSize },
			func(n *note) *int { return &n.MinIconSize }, replace[int]),
		modifierField("max_icon_size", KindInt, "max_icon_size", func(r *Rule) **int { return &r.Modify.MaxIconSize },
			func(n *note) *int { return &n.MaxIconSize }, replace[int]),
		modifierField("override_pause_level", KindInt, "override_pause_level", func(r *Rule) **int { return &r.Modify.OverridePauseLevel },
			func(n *note) *int { return &n.OverridePauseLevel }, replace[int]),
		modifierField("new_icon", KindString, "icon", func(r *Rule) **string { return &r.Modify.NewIcon },
			func(n *note) *string { return &n.Icon }, replace[string]),
		modifierField("default_icon", KindString, "icon", func(r *Rule) **string { return &r.Modify.DefaultIcon },
			func(n *note) *string { return &n.Icon }, replaceIfEmpty),
		modifierField("foreground", KindColor, "colors.foreground", func(r *Rule) **color.Color { return &r.Modify.FG },
			func(n *note) *color.Color { return &n.Colors.FG }, replace[color.Color]),
		modifierField("background", KindColor, "colors.background", func(r *Rule) **color.Color { return &r.Modify.BG },
			func(n *note) *color.Color { return &n.Colors.BG }, replace[color.Color]),
		modifierField("highlight", KindGradient, "colors.highlight", func(r *Rule) **color.Gradient { return &r.Modify.Highlight },
			func(n *note) *color.Gradient { return &n.Colors.Highlight }, replaceGradient),
		modifierField("frame_color", KindColor, "colors.frame", func(r *Rule) **color.Color { return &r.Modify.FrameColor },
			func(n *note) *color.Color { return &n.Colors.Frame }, replace[color.Color]),
		modifierField("set_category", KindString, "category", func(r *Rule) **string { return &r.Modify.SetCategory },
			func(n *note) *string { return &n.Category }, replace[string]),
		modifierField("format", KindString, "format", func(r *Rule) **string { return &r.Modify.Format },
			func(n *note) *string { return &n.Format }, replace[string]),
		modifierField("script", KindString, "scripts", func(r *Rule) **string { return &r.Modify.Script },
			func(n *note) *[]string { return &n.Scripts }, appendUnique),
		modifierField("script_mouse_forward", KindString, "script_mouse_forward", func(r *Rule) **string { return &r.Modify.ScriptMouseForward },
			func(n *note) *string { return &n.ScriptMouseForward }, replace[string]),
		modifierField("script_mouse_back", KindString, "script_mouse_back", func(r *Rule) **string { return &r.Modify.ScriptMouseBack },
			func(n *note) *string { return &n.ScriptMouseBack }, replace[string]),
		enumModifier("fullscreen", notification.FullscreenNames, "fullscreen", func(r *Rule) **notification.Fullscreen { return &r.Modify.Fullscreen },
			func(n *note) *notification.Fullscreen { return &n.Fullscreen }),
		enabledField(),
		enumModifier("progress_bar_alignment", notification.AlignmentNames, "progress_bar_alignment", func(r *Rule) **notification.Alignment { return &r.Modify.ProgressBarAlignment },
			func(n *note) *notification.Alignment { return &n.ProgressBarAlignment }),
		modifierField("set_stack_tag", KindString, "stack_tag", func(r *Rule) **string { return &r.Modify.SetStackTag },
			func(n *note) *string { return &n.StackTag }, replace[string]),
	}
}

// bindSlot wires the rule-side accessors of f to slot.
func bindSlot[T any](f *Field, slot func(*Rule) **T) {
	f.isSet = func(r *Rule) bool { return *slot(r) != nil }
	f.value = func(r *Rule) any {
		if p := *slot(r); p != nil {
			return *p
		}
		return nil
	}
	f.assign = func(r *Rule, v any) {
		t := v.(T)
		*slot(r) = &t
	}
	f.reset = func(r *Rule) { *slot(r) = nil }
}

// bindEnumSlot is bindSlot for enum fields, which are also assigned from the
// plain ordinal produced by EnumSet.Parse.
func bindEnumSlot[T ~int](f *Field, slot func(*Rule) **T) {
	bindSlot(f, slot)
	f.assign = func(r *Rule, v any) {
		var t T
		switch x := v.(type) {
		case int:
			t = T(x)
		default:
			t = x.(T)
		}
		*slot(r) = &t
	}
}

func filterField[T any](name string, kind Kind, slot func(*Rule) **T,
	source func(*note) T, eq func(want, got T) bool) Field {
	f := Field{Name: name, Kind: kind, Group: GroupFilter}
	bindSlot(&f, slot)
	f.match = func(r *Rule, n *note) bool {
		return eq(**slot(r), source(n))
	}
	return f
}

func enumFilter[T ~int](name string, enum *notification.EnumSet, slot func(*Rule) **T,
	source func(*note) T) Field {
	f := filterField(name, KindEnum, slot, source, equal[T])
	f.Enum = enum
	bindEnumSlot(&f, slot)
	return f
}

func modifierField[T, U any](name string, kind Kind, target string, slot func(*Rule) **T,
	dst func(*note) *U, merge func(v T, dst *U, n *note) bool) Field {
	f := Field{Name: name, Kind: kind, Group: GroupModifying, Target: target}
	bindSlot(&f, slot)
	f.apply = func(r *Rule, n *note) bool {
		return merge(**slot(r), dst(n), n)
	}
	f.snapshot = func(n *note) any { return cloneValue(*dst(n)) }
	f.restore = func(n *note, v any) { *dst(n) = v.(U) }
	return f
}

func enumModifier[T ~int](name string, enum *notification.EnumSet, target string, slot func(*Rule) **T,
	dst func(*note) *T) Field {
	f := modifierField(name, KindEnum, target, slot, dst, replace[T])
	f.Enum = enum
	bindEnumSlot(&f, slot)
	return f
}

// enabledField is bound like any modifier but only ever touches the rule.
func enabledField() Field {
	return Field{
		Name:   "enabled",
		Kind:   KindBool,
		Group:  GroupModifying,
		isSet:  func(*Rule) bool { return true },
		value:  func(r *Rule) any { return r.Enabled },
		assign: func(r *Rule, v any) { r.Enabled = v.(bool) },
		reset:  func(r *Rule) { r.Enabled = true },
	}
}

func equal[T comparable](want, got T) bool {
	return want == got
}

// globMatch supports '*' and '?' wildcards.
func globMatch(pattern, s string) bool {
	return match.Match(s, pattern)
}

func replace[T any](v T, dst *T, _ *note) bool {
	*dst = v
	return true
}

// replaceIfClientTimeout only overrides expiries the client asked for.
func replaceIfClientTimeout(v time.Duration, dst *time.Duration, n *note) bool {
	if n.DBusTimeout <= 0 {
		return false
	}
	*dst = v
	return true
}

func replaceIfEmpty(v string, dst *string, _ *note) bool {
	if *dst != "" {
		return false
	}
	*dst = v
	return true
}

func replaceGradient(v color.Gradient, dst *color.Gradient, _ *note) bool {
	*dst = v.Clone()
	return true
}

func appendUnique(v string, dst *[]string, _ *note) bool {
	if slices.Contains(*dst, v) {
		return false
	}
	*dst = append(*dst, v)
	return true
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case color.Gradient:
		return x.Clone()
	case []string:
		if x == nil {
			return x
		}
		return slices.Clone(x)
	default:
		return v
	}
}
