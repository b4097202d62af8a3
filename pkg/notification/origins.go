package notification

// Origin is the provenance of one overridden field.
type Origin struct {
	// Rule is the last rule that wrote the field.
	Rule string
	// Rules lists every rule that wrote the field, in application order.
	Rules []string
	// Original is the field value before any rule touched it.
	Original any
}

// Origins maps a field name to its provenance.
type Origins map[string]*Origin

// Record notes that rule wrote field. original is kept only on the first
// write so it always holds the pre-rule value.
func (o *Origins) Record(field, rule string, original any) {
	if *o == nil {
		*o = make(Origins)
	}
	entry, ok := (*o)[field]
	if !ok {
		entry = &Origin{Original: original}
		(*o)[field] = entry
	}
	entry.Rule = rule
	entry.Rules = append(entry.Rules, rule)
}

// Lookup returns the provenance of field, if any rule wrote it.
func (o Origins) Lookup(field string) (*Origin, bool) {
	entry, ok := o[field]
	return entry, ok
}
