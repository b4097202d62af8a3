package rules

import "github.com/arthur-debert/notifyrules/pkg/notification"

// Matches reports whether r applies to n under the default field registry.
func Matches(r *Rule, n *notification.Notification) bool {
	return Fields.Matches(r, n)
}

// Matches evaluates every filter of r against n in declared order. Unset
// filters impose nothing; a disabled or nil rule never matches. appname is a
// glob pattern, every other string filter is an exact, case-sensitive match
// and match_dbus_timeout requires the client timeout to be equal.
func (reg *Registry) Matches(r *Rule, n *notification.Notification) bool {
	if r == nil || !r.Enabled {
		return false
	}
	for i := range reg.filters() {
		f := &reg.fields[i]
		if f.isSet(r) && !f.match(r, n) {
			return false
		}
	}
	return true
}
