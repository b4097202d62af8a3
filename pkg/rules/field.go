package rules

import (
	"fmt"

	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/arthur-debert/notifyrules/pkg/registry"
)

// Kind is the semantic type of a rule field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindInt64
	KindBool
	KindEnum
	KindColor
	KindGradient
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt64:
		return "time"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindColor:
		return "color"
	case KindGradient:
		return "gradient"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Group says whether a field decides if a rule matches or what it changes.
type Group int

const (
	GroupInvalid Group = iota
	GroupFilter
	GroupModifying
)

func (g Group) String() string {
	switch g {
	case GroupFilter:
		return "filter"
	case GroupModifying:
		return "modifying"
	default:
		return "invalid"
	}
}

// FieldID is the stable identity of a field: its position in the registry.
type FieldID int

// Field describes one rule field. The unexported closures give typed access
// to the rule value and, for modifying fields, to the notification attribute
// it overrides.
type Field struct {
	ID    FieldID
	Name  string
	Kind  Kind
	Group Group
	// Enum lists the accepted names of a KindEnum field.
	Enum *notification.EnumSet
	// Target names the notification attribute a modifying field writes.
	// Empty for filters and for rule-only fields.
	Target string

	isSet  func(*Rule) bool
	value  func(*Rule) any
	assign func(*Rule, any)
	reset  func(*Rule)

	match func(*Rule, *notification.Notification) bool

	apply    func(*Rule, *notification.Notification) bool
	snapshot func(*notification.Notification) any
	restore  func(*notification.Notification, any)
}

// IsSet reports whether r carries a value for this field.
func (f Field) IsSet(r *Rule) bool { return f.isSet(r) }

// Value returns the value r holds for this field, or nil when unset.
func (f Field) Value(r *Rule) any { return f.value(r) }

// Registry is the ordered table of rule fields. All filter fields precede all
// modifying fields; "appname" is the first filter, "timeout" the first
// modifier and "set_stack_tag" the last.
type Registry struct {
	fields []Field
	names  registry.Registry[FieldID]

	firstModifying FieldID
	endModifying   FieldID
}

// Fields is the process-wide field registry.
var Fields = NewRegistry()

// NewRegistry builds the field table. Every call returns an identical,
// independent table. It panics if the table breaks its positional layout.
func NewRegistry() *Registry {
	reg := &Registry{
		fields: fieldTable(),
		names:  registry.New[FieldID](),
	}

	reg.firstModifying = -1
	for i := range reg.fields {
		f := &reg.fields[i]
		f.ID = FieldID(i)
		registry.MustRegister(reg.names, f.Name, f.ID)

		if f.Group == GroupModifying && reg.firstModifying < 0 {
			reg.firstModifying = f.ID
		}
		if f.Group == GroupFilter && reg.firstModifying >= 0 {
			panic(fmt.Sprintf("rules: filter field %q declared after the first modifying field", f.Name))
		}
	}
	reg.endModifying = FieldID(len(reg.fields))

	switch {
	case len(reg.fields) == 0 || reg.fields[0].Name != "appname":
		panic("rules: the first filter field must be appname")
	case reg.firstModifying < 0 || reg.fields[reg.firstModifying].Name != "timeout":
		panic("rules: the first modifying field must be timeout")
	case reg.fields[reg.endModifying-1].Name != "set_stack_tag":
		panic("rules: the last modifying field must be set_stack_tag")
	}

	return reg
}

func (reg *Registry) valid(id FieldID) bool {
	return id >= 0 && int(id) < len(reg.fields)
}

// IsFilter reports whether id falls in the filter range.
func (reg *Registry) IsFilter(id FieldID) bool {
	return id >= 0 && id < reg.firstModifying
}

// IsModifying reports whether id falls in the modifying range.
func (reg *Registry) IsModifying(id FieldID) bool {
	return id >= reg.firstModifying && id < reg.endModifying
}

// Classify returns the group of id by position alone. An out-of-range id is a
// programming error and panics.
func (reg *Registry) Classify(id FieldID) Group {
	if !reg.valid(id) {
		panic(fmt.Sprintf("rules: field id %d out of range [0,%d)", id, len(reg.fields)))
	}
	if reg.IsModifying(id) {
		return GroupModifying
	}
	return GroupFilter
}

// Describe returns the descriptor of id. It panics on an out-of-range id.
func (reg *Registry) Describe(id FieldID) Field {
	if !reg.valid(id) {
		panic(fmt.Sprintf("rules: field id %d out of range [0,%d)", id, len(reg.fields)))
	}
	return reg.fields[id]
}

// Lookup finds a field by its config key.
func (reg *Registry) Lookup(name string) (Field, bool) {
	id, ok := reg.names.Lookup(name)
	if !ok {
		return Field{}, false
	}
	return reg.fields[id], true
}

// All returns every descriptor in declared order.
func (reg *Registry) All() []Field {
	return append([]Field(nil), reg.fields...)
}

// Filters returns the filter descriptors in declared order.
func (reg *Registry) Filters() []Field {
	return append([]Field(nil), reg.filters()...)
}

// Modifiers returns the modifying descriptors in declared order.
func (reg *Registry) Modifiers() []Field {
	return append([]Field(nil), reg.modifiers()...)
}

// Len is the number of fields.
func (reg *Registry) Len() int { return len(reg.fields) }

func (reg *Registry) filters() []Field {
	return reg.fields[:reg.firstModifying]
}

func (reg *Registry) modifiers() []Field {
	return reg.fields[reg.firstModifying:reg.endModifying]
}
