package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/arthur-debert/notifyrules/pkg/rules"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "toml", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s).
			WithDetail("format", s)
	}
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
	}
}

// Dump writes rs back out in the rule file layout, so the output can be
// loaded again.
func Dump(w io.Writer, rs []*rules.Rule, format Format) error {
	return Encode(w, format, Document(rs))
}

// Document builds the rule file tree for rs: reserved sections as tables,
// everything else under "rule". Implied section filters and enabled = true
// are left out.
func Document(rs []*rules.Rule) map[string]interface{} {
	doc := make(map[string]interface{})
	var entries []map[string]interface{}

	for _, r := range rs {
		fields := make(map[string]interface{})
		for _, f := range rules.Fields.All() {
			if !f.IsSet(r) || (r.Sealed() && f.Group == rules.GroupFilter) {
				continue
			}
			if f.Name == "enabled" && r.Enabled {
				continue
			}
			fields[f.Name] = plain(f.Value(r))
		}

		if r.Sealed() {
			doc[r.Name] = fields
			continue
		}
		fields["name"] = r.Name
		entries = append(entries, fields)
	}

	if len(entries) > 0 {
		doc["rule"] = entries
	}
	return doc
}

// plain converts a field value to something both encoders write as text the
// field parsers read back.
func plain(v interface{}) interface{} {
	switch x := v.(type) {
	case time.Duration:
		return x.String()
	case color.Gradient:
		out := make([]string, len(x))
		for i, c := range x {
			out[i] = c.String()
		}
		return out
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}
