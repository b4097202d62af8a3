package rules

import (
	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/arthur-debert/notifyrules/pkg/notification"
)

// Section is a reserved rule name whose filters are implied by the name.
type Section string

const (
	SectionUrgencyLow      Section = "urgency_low"
	SectionUrgencyNormal   Section = "urgency_normal"
	SectionUrgencyCritical Section = "urgency_critical"
)

// Sections lists the reserved sections in the order they are loaded.
var Sections = []Section{SectionUrgencyLow, SectionUrgencyNormal, SectionUrgencyCritical}

var sectionSeeds = map[Section]func(*Filter){
	SectionUrgencyLow:      seedUrgency(notification.UrgencyLow),
	SectionUrgencyNormal:   seedUrgency(notification.UrgencyNormal),
	SectionUrgencyCritical: seedUrgency(notification.UrgencyCritical),
}

func seedUrgency(u notification.Urgency) func(*Filter) {
	return func(f *Filter) {
		f.MsgUrgency = Ptr(u)
	}
}

// LookupSection reports whether name is a reserved section.
func LookupSection(name string) (Section, bool) {
	s := Section(name)
	_, ok := sectionSeeds[s]
	return s, ok
}

// Validate reports a reserved-section rule whose filters differ from the ones
// its section implies. Ordinary rules are always valid.
func (r *Rule) Validate() error {
	s, ok := r.Section()
	if !ok {
		return nil
	}
	seed := NewSectionBuilder(s).Build()
	for _, f := range Fields.filters() {
		if f.isSet(r) != f.isSet(seed) || f.value(r) != f.value(seed) {
			return errors.Newf(errors.ErrSealedFilter, "rule %q: filter %q of a reserved section was modified", r.Name, f.Name).
				WithDetail("rule", r.Name).
				WithDetail("field", f.Name)
		}
	}
	return nil
}
