package rules

import (
	"fmt"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/notification"
)

// Filter holds the predicates of a rule. A nil field matches anything.
type Filter struct {
	AppName          *string
	Summary          *string
	Body             *string
	Icon             *string
	Category         *string
	StackTag         *string
	DesktopEntry     *string
	MsgUrgency       *notification.Urgency
	MatchDBusTimeout *time.Duration
	MatchTransient   *bool
}

// Modify holds the overrides of a rule. A nil field leaves the notification
// untouched.
type Modify struct {
	Timeout              *time.Duration
	OverrideDBusTimeout  *time.Duration
	Urgency              *notification.Urgency
	ActionName           *string
	Markup               *notification.Markup
	HistoryIgnore        *bool
	SetTransient         *bool
	SkipDisplay          *bool
	WordWrap             *bool
	Ellipsize            *notification.Ellipsize
	Alignment            *notification.Alignment
	HideText             *bool
	IconPosition         *notification.IconPosition
	MinIconSize          *int
	MaxIconSize          *int
	OverridePauseLevel   *int
	NewIcon              *string
	DefaultIcon          *string
	FG                   *color.Color
	BG                   *color.Color
	Highlight            *color.Gradient
	FrameColor           *color.Color
	SetCategory          *string
	Format               *string
	Script               *string
	ScriptMouseForward   *string
	ScriptMouseBack      *string
	Fullscreen           *notification.Fullscreen
	ProgressBarAlignment *notification.Alignment
	SetStackTag          *string
}

// Rule is a named set of filters plus the overrides applied on a match.
//
// Filter stays exported for ordinary rules. A Sealed rule's filters are
// implied by its section and must not be assigned; Store.Add and
// Store.Replace reject one whose filters no longer match the section.
type Rule struct {
	Name    string
	Enabled bool
	Filter  Filter
	Modify  Modify

	// section is set for rules built from a reserved section name; their
	// filters are fixed at construction.
	section Section
}

// Ptr returns a pointer to v, for filling Filter and Modify literals.
func Ptr[T any](v T) *T {
	return &v
}

// New allocates an enabled rule with every field unset. Reserved section
// names get their implied filters; callers must not add filters to those.
func New(name string) *Rule {
	if s, ok := LookupSection(name); ok {
		return NewSectionBuilder(s).Build()
	}
	return &Rule{Name: name, Enabled: true}
}

// Section returns the reserved section the rule was built from, if any.
func (r *Rule) Section() (Section, bool) {
	return r.section, r.section != ""
}

// Sealed reports whether the rule's filters are fixed.
func (r *Rule) Sealed() bool {
	return r.section != ""
}

// Free drops every value the rule owns. Safe on nil and on a freed rule.
func (r *Rule) Free() {
	if r == nil {
		return
	}
	*r = Rule{}
}

// Clone returns a deep copy of r.
func (r *Rule) Clone() *Rule {
	if r == nil {
		return nil
	}
	c := &Rule{Name: r.Name, Enabled: r.Enabled, section: r.section}
	for _, f := range Fields.fields {
		if f.isSet(r) {
			f.assign(c, cloneValue(f.value(r)))
		}
	}
	return c
}

func (r *Rule) String() string {
	if r == nil {
		return "<nil rule>"
	}
	return fmt.Sprintf("rule %q", r.Name)
}

// Builder assembles an ordinary rule: both filters and overrides may be set.
type Builder struct {
	rule *Rule
}

// NewBuilder starts a rule called name. Reserved section names must go
// through NewSectionBuilder; passing one here panics.
func NewBuilder(name string) *Builder {
	if _, ok := LookupSection(name); ok {
		panic(fmt.Sprintf("rules: %q is a reserved section, use NewSectionBuilder", name))
	}
	return &Builder{rule: &Rule{Name: name, Enabled: true}}
}

// Filter replaces the rule's filters.
func (b *Builder) Filter(f Filter) *Builder {
	b.rule.Filter = f
	return b
}

// Modify replaces the rule's overrides.
func (b *Builder) Modify(m Modify) *Builder {
	b.rule.Modify = m
	return b
}

// Enabled sets whether the rule takes part in matching.
func (b *Builder) Enabled(enabled bool) *Builder {
	b.rule.Enabled = enabled
	return b
}

// Build returns the finished rule.
func (b *Builder) Build() *Rule {
	return b.rule
}

// SectionBuilder assembles a reserved-section rule. Its filters are seeded
// from the section and it offers no way to change them.
type SectionBuilder struct {
	rule *Rule
}

// NewSectionBuilder starts the rule for s with its implied filters.
func NewSectionBuilder(s Section) *SectionBuilder {
	seed, ok := sectionSeeds[s]
	if !ok {
		panic(fmt.Sprintf("rules: %q is not a reserved section", string(s)))
	}
	r := &Rule{Name: string(s), Enabled: true, section: s}
	seed(&r.Filter)
	return &SectionBuilder{rule: r}
}

// Modify replaces the rule's overrides.
func (b *SectionBuilder) Modify(m Modify) *SectionBuilder {
	b.rule.Modify = m
	return b
}

// Enabled sets whether the rule takes part in matching.
func (b *SectionBuilder) Enabled(enabled bool) *SectionBuilder {
	b.rule.Enabled = enabled
	return b
}

// Build returns the finished rule.
func (b *SectionBuilder) Build() *Rule {
	return b.rule
}
