package rules

import "github.com/arthur-debert/notifyrules/pkg/notification"

// Apply writes the overrides of r into n under the default field registry.
func Apply(r *Rule, n *notification.Notification, save bool) {
	Fields.Apply(r, n, save)
}

// Revert undoes every saved override on n under the default field registry.
func Revert(n *notification.Notification) {
	Fields.Revert(n)
}

// Apply writes each set modifying field of r into n, in declared order. The
// caller is expected to have checked Matches. When save is true the write is
// also recorded in n.Origins; the resulting values are the same either way.
// It returns the number of attributes written.
func (reg *Registry) Apply(r *Rule, n *notification.Notification, save bool) int {
	return reg.apply(r, n, save, nil)
}

func (reg *Registry) apply(r *Rule, n *notification.Notification, save bool, observe func(*Field)) int {
	if r == nil {
		return 0
	}

	written := 0
	mods := reg.modifiers()
	for i := range mods {
		f := &mods[i]
		if f.apply == nil || !f.isSet(r) {
			continue
		}

		var original any
		if save {
			original = f.snapshot(n)
		}
		if !f.apply(r, n) {
			continue
		}

		written++
		if save {
			n.Origins.Record(f.Target, r.Name, original)
		}
		if observe != nil {
			observe(f)
		}
	}
	return written
}

// Revert restores every attribute recorded in n.Origins to its pre-rule value
// and clears the ledger.
func (reg *Registry) Revert(n *notification.Notification) {
	if len(n.Origins) == 0 {
		return
	}
	for _, f := range reg.modifiers() {
		if f.restore == nil {
			continue
		}
		if origin, ok := n.Origins.Lookup(f.Target); ok {
			f.restore(n, origin.Original)
		}
	}
	n.Origins = nil
}
