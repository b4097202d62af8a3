package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/errors"
)

// Triple is one raw setting handed over by the config loader.
type Triple struct {
	Rule  string
	Field string
	Value string
}

// Bind parses raw for the field called name and stores it in r, using the
// default field registry.
func Bind(r *Rule, name, raw string) error {
	return Fields.Bind(r, name, raw)
}

// Bind parses raw for the field called name and stores it in r. Filters on a
// reserved-section rule are rejected.
func (reg *Registry) Bind(r *Rule, name, raw string) error {
	f, ok := reg.Lookup(name)
	if !ok {
		return errors.Newf(errors.ErrUnknownField, "rule %q: unknown field %q", r.Name, name).
			WithDetail("rule", r.Name).
			WithDetail("field", name)
	}

	if f.Group == GroupFilter && r.Sealed() {
		return errors.Newf(errors.ErrSealedFilter, "rule %q: filter %q cannot be set on a reserved section", r.Name, name).
			WithDetail("rule", r.Name).
			WithDetail("field", name)
	}

	v, err := ParseValue(f, raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFieldValue, "rule %q: invalid %s", r.Name, name).
			WithDetail("rule", r.Name).
			WithDetail("field", name).
			WithDetail("value", raw)
	}

	f.assign(r, v)
	return nil
}

// BindAll builds rules from triples. Rules are created in order of first
// appearance; a rule's triples need not be contiguous.
func (reg *Registry) BindAll(triples []Triple) ([]*Rule, error) {
	var ordered []*Rule
	byName := make(map[string]*Rule)

	for _, t := range triples {
		r, ok := byName[t.Rule]
		if !ok {
			if t.Rule == "" {
				return nil, errors.New(errors.ErrInvalidInput, "rule name cannot be empty")
			}
			r = New(t.Rule)
			byName[t.Rule] = r
			ordered = append(ordered, r)
		}
		if err := reg.Bind(r, t.Field, t.Value); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// ParseValue converts raw into the Go value held by fields of f's kind.
func ParseValue(f Field, raw string) (any, error) {
	switch f.Kind {
	case KindString:
		return raw, nil
	case KindInt:
		return strconv.Atoi(strings.TrimSpace(raw))
	case KindInt64:
		return ParseTime(raw)
	case KindBool:
		return ParseBool(raw)
	case KindEnum:
		return f.Enum.Parse(raw)
	case KindColor:
		return color.Parse(raw)
	case KindGradient:
		return color.ParseGradient(raw)
	default:
		return nil, fmt.Errorf("field %s has unsupported kind %s", f.Name, f.Kind)
	}
}

const (
	maxSeconds = math.MaxInt64 / int64(time.Second)
	minSeconds = math.MinInt64 / int64(time.Second)
)

// ParseTime reads a Go duration ("5s", "250ms") or a bare number of seconds.
func ParseTime(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if secs > maxSeconds || secs < minSeconds {
			return 0, fmt.Errorf("time %q out of range", raw)
		}
		return time.Duration(secs) * time.Second, nil
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(secs, 0) && !math.IsNaN(secs) {
		ns := secs * float64(time.Second)
		// float64(MaxInt64) rounds up to 2^63, so the bound is exclusive.
		if ns >= math.MaxInt64 || ns < math.MinInt64 {
			return 0, fmt.Errorf("time %q out of range", raw)
		}
		return time.Duration(ns), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", raw)
	}
	return d, nil
}

// ParseBool accepts the strconv spellings plus yes/no and on/off.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", raw)
	}
	return b, nil
}
