package rules

import (
	"fmt"
	"io"
	"strconv"
)

// Pair is one rendered field of a rule.
type Pair struct {
	Key   string
	Value string
}

// Describe renders the name, the enabled flag and every set field of r in
// registry order.
func Describe(r *Rule) []Pair {
	return Fields.DescribeRule(r)
}

// DescribeRule renders r using this registry's field order.
func (reg *Registry) DescribeRule(r *Rule) []Pair {
	pairs := []Pair{{Key: "name", Value: r.Name}}
	for _, f := range reg.fields {
		if !f.isSet(r) {
			continue
		}
		pairs = append(pairs, Pair{Key: f.Name, Value: FormatValue(f, f.value(r))})
	}
	return pairs
}

// Print writes r as "key = value" lines.
func Print(w io.Writer, r *Rule) error {
	for _, p := range Fields.DescribeRule(r) {
		if _, err := fmt.Fprintf(w, "%s = %s\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// FormatValue renders v the way the config file would spell it.
func FormatValue(f Field, v any) string {
	switch f.Kind {
	case KindString:
		return strconv.Quote(v.(string))
	default:
		return fmt.Sprint(v)
	}
}
