// Package rules matches notifications against user-defined rules and applies
// the overrides of every matching rule.
//
// # Fields
//
// A rule is a flat set of typed fields split into two groups:
//
//   - filter fields (appname, summary, body, icon, category, stack_tag,
//     desktop_entry, msg_urgency, match_dbus_timeout, match_transient)
//     decide whether the rule matches;
//   - modifying fields (timeout ... set_stack_tag) are written into the
//     notification when it does.
//
// Each field is described once in the Registry. Matching, applying, binding
// config values and printing all walk that table instead of naming fields
// one by one, and a field's group follows from its position alone.
//
// # Matching
//
// A rule matches when it is enabled and every filter it sets agrees with the
// notification. appname is a glob ('*', '?'); the other string filters are
// exact and case-sensitive; match_dbus_timeout must equal the timeout the
// client sent.
//
// # Applying
//
// Rules apply in declaration order and are not exclusive: every matching rule
// writes its overrides, so the last rule to set a field wins.
//
//	[[rule]]
//	name = "spotify"
//	appname = "Spotify*"
//	timeout = "5s"
//	new_icon = "spotify"
//
// default_icon only fills an empty icon, override_dbus_timeout only replaces
// timeouts the client asked for, and script appends to the notification's
// script list once.
//
// ApplyAll is a single pass: each rule is matched against the notification as
// earlier rules left it, and a later rule's writes are never seen by an
// earlier rule's filters. Running ApplyAll again is only a no-op when no rule
// writes an attribute that an earlier rule filters on. With a rule "a"
// filtering category = "c" followed by a rule "b" setting set_category = "c",
// "a" misses on the first pass and matches on the second.
//
// # Reserved sections
//
// urgency_low, urgency_normal and urgency_critical are rules whose msg_urgency
// filter comes from the name. NewSectionBuilder offers no filter setters, the
// binder rejects filter keys for them, and the Store refuses one whose filters
// were assigned directly (see Rule.Validate).
package rules
