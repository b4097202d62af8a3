package config

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/arthur-debert/notifyrules/pkg/logging"
	"github.com/arthur-debert/notifyrules/pkg/rules"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

// Config is a loaded rule file.
type Config struct {
	// Path is the file that was read, empty when only defaults applied.
	Path     string
	Global   Global
	Sections map[rules.Section]map[string]interface{}
	Rules    []RuleConfig
}

// Global holds the [global] table.
type Global struct {
	Verbosity int `koanf:"verbosity"`
	// Disable names rules that are loaded but never match.
	Disable []string `koanf:"disable"`
}

// RuleConfig is one [[rule]] entry.
type RuleConfig struct {
	Name   string
	Fields map[string]interface{}
}

func (c *Config) readSections(k *koanf.Koanf) error {
	c.Sections = make(map[rules.Section]map[string]interface{})
	for _, key := range slices.Sorted(maps.Keys(k.Raw())) {
		if key == "global" || key == "rule" {
			continue
		}
		s, ok := rules.LookupSection(key)
		if !ok {
			return errors.Newf(errors.ErrConfigValid, "unknown section %q", key).
				WithDetail("section", key)
		}
		c.Sections[s] = k.Cut(key).Raw()
	}
	return nil
}

func (c *Config) readRules(raw interface{}) error {
	var entries []map[string]interface{}
	switch v := raw.(type) {
	case nil:
		return nil
	case []map[string]interface{}:
		entries = v
	case []interface{}:
		for i, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				return errors.Newf(errors.ErrConfigValid, "rule #%d is not a table", i+1)
			}
			entries = append(entries, m)
		}
	default:
		return errors.New(errors.ErrConfigValid, "rule must be an array of tables")
	}

	seen := make(map[string]bool)
	for s := range c.Sections {
		seen[string(s)] = true
	}
	for i, m := range entries {
		name, _ := m["name"].(string)
		if name == "" {
			return errors.Newf(errors.ErrConfigValid, "rule #%d has no name", i+1)
		}
		if seen[name] {
			return errors.Newf(errors.ErrConfigValid, "rule %q is defined twice", name).
				WithDetail("rule", name)
		}
		seen[name] = true

		fields := make(map[string]interface{}, len(m)-1)
		for key, v := range m {
			if key != "name" {
				fields[key] = v
			}
		}
		c.Rules = append(c.Rules, RuleConfig{Name: name, Fields: fields})
	}
	return nil
}

// Names returns every rule name in evaluation order.
func (c *Config) Names() []string {
	var names []string
	for _, s := range rules.Sections {
		if _, ok := c.Sections[s]; ok {
			names = append(names, string(s))
		}
	}
	for _, rc := range c.Rules {
		names = append(names, rc.Name)
	}
	return names
}

// Triples flattens the config into binding triples: urgency sections first,
// then [[rule]] entries, each rule's keys in field registry order.
func (c *Config) Triples() ([]rules.Triple, error) {
	var out []rules.Triple
	for _, s := range rules.Sections {
		fields, ok := c.Sections[s]
		if !ok {
			continue
		}
		t, err := triplesFor(string(s), fields)
		if err != nil {
			return nil, err
		}
		out = append(out, t...)
	}
	for _, rc := range c.Rules {
		t, err := triplesFor(rc.Name, rc.Fields)
		if err != nil {
			return nil, err
		}
		out = append(out, t...)
	}

	known := c.Names()
	for _, name := range c.Global.Disable {
		if !slices.Contains(known, name) {
			logger := logging.GetLogger("config")
			logger.Warn().Str("rule", name).Msg("Cannot disable unknown rule")
			continue
		}
		out = append(out, rules.Triple{Rule: name, Field: "enabled", Value: "false"})
	}
	return out, nil
}

func triplesFor(rule string, fields map[string]interface{}) ([]rules.Triple, error) {
	keys := slices.Collect(maps.Keys(fields))
	slices.SortFunc(keys, func(a, b string) int {
		fa, okA := rules.Fields.Lookup(a)
		fb, okB := rules.Fields.Lookup(b)
		switch {
		case okA && okB:
			return int(fa.ID) - int(fb.ID)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})

	out := make([]rules.Triple, 0, len(keys))
	for _, key := range keys {
		raw, err := stringify(fields[key])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "rule %q: cannot read %s", rule, key).
				WithDetail("rule", rule).
				WithDetail("field", key)
		}
		out = append(out, rules.Triple{Rule: rule, Field: key, Value: raw})
	}
	return out, nil
}

// stringify turns a parsed TOML/YAML scalar or list back into the raw text
// the field parsers expect. Lists become comma separated.
func stringify(v interface{}) (string, error) {
	var s string
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			boolToStringHookFunc(),
			sliceToStringHookFunc(", "),
		),
	})
	if err != nil {
		return "", err
	}
	if err := dec.Decode(v); err != nil {
		return "", err
	}
	return s, nil
}

func boolToStringHookFunc() mapstructure.DecodeHookFuncKind {
	return func(f reflect.Kind, t reflect.Kind, data interface{}) (interface{}, error) {
		if f == reflect.Bool && t == reflect.String {
			return strconv.FormatBool(data.(bool)), nil
		}
		return data, nil
	}
}

func sliceToStringHookFunc(sep string) mapstructure.DecodeHookFuncKind {
	return func(f reflect.Kind, t reflect.Kind, data interface{}) (interface{}, error) {
		if f != reflect.Slice || t != reflect.String {
			return data, nil
		}
		items := reflect.ValueOf(data)
		parts := make([]string, items.Len())
		for i := range parts {
			item := items.Index(i).Interface()
			if _, ok := item.(map[string]interface{}); ok {
				return nil, fmt.Errorf("nested tables are not allowed in a list")
			}
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep), nil
	}
}
