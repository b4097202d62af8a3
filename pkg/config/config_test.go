// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp files
// PURPOSE: Test triple generation, store building, reload and dumping

package config

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/arthur-debert/notifyrules/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriples(t *testing.T) {
	cfg, err := Load(writeFile(t, "rules.toml", sampleTOML))
	require.NoError(t, err)

	triples, err := cfg.Triples()
	require.NoError(t, err)

	var spotify []rules.Triple
	for _, tr := range triples {
		if tr.Rule == "spotify" {
			spotify = append(spotify, tr)
		}
	}
	// registry order, not file order
	assert.Equal(t, []rules.Triple{
		{Rule: "spotify", Field: "appname", Value: "Spotify*"},
		{Rule: "spotify", Field: "timeout", Value: "2"},
		{Rule: "spotify", Field: "new_icon", Value: "spotify"},
	}, spotify)

	assert.Equal(t, "urgency_low", triples[0].Rule)
	assert.Equal(t, rules.Triple{Rule: "noisy", Field: "enabled", Value: "false"}, triples[len(triples)-1])
}

func TestTriplesSkipsUnknownDisabledRule(t *testing.T) {
	cfg := &Config{Global: Global{Disable: []string{"ghost"}}}
	triples, err := cfg.Triples()
	require.NoError(t, err)
	assert.Empty(t, triples)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"Spotify*", "Spotify*"},
		{int64(5), "5"},
		{5, "5"},
		{1.5, "1.5"},
		{true, "true"},
		{false, "false"},
		{[]interface{}{"#000000", "#ffffff"}, "#000000, #ffffff"},
	}
	for _, tt := range tests {
		got, err := stringify(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := stringify(map[string]interface{}{"a": 1})
	assert.Error(t, err)
}

func TestBuildStore(t *testing.T) {
	cfg, err := Load(writeFile(t, "rules.toml", sampleTOML))
	require.NoError(t, err)

	s, err := BuildStore(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())

	noisy, ok := s.Get("noisy")
	require.True(t, ok)
	assert.False(t, noisy.Enabled)

	n := notification.New("Spotify", "Now playing", "")
	matched := s.Trace(n)

	assert.Equal(t, []string{"urgency_normal", "spotify"}, matched)
	assert.Equal(t, 2*time.Second, n.Timeout)
	assert.Equal(t, "spotify", n.Icon)
	assert.Equal(t, "#285577", n.Colors.BG.String())
	origin, ok := n.Origins.Lookup("timeout")
	require.True(t, ok)
	assert.Equal(t, []string{"urgency_normal", "spotify"}, origin.Rules)
}

func TestBuildStoreBindErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"unknown field", "[[rule]]\nname = \"a\"\ncolour = \"red\"\n", errors.ErrUnknownField},
		{"bad value", "[[rule]]\nname = \"a\"\ntimeout = \"soon\"\n", errors.ErrFieldValue},
		{"filter in a section", "[urgency_low]\nappname = \"x\"\n", errors.ErrSealedFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, "rules.toml", tt.content))
			require.NoError(t, err)

			_, err = BuildStore(cfg)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestReload(t *testing.T) {
	path := writeFile(t, "rules.toml", sampleTOML)
	cfg, err := Load(path)
	require.NoError(t, err)
	s, err := BuildStore(cfg)
	require.NoError(t, err)

	// a broken file keeps the current rules
	require.NoError(t, os.WriteFile(path, []byte("[[rule]]\nname = \"a\"\nnope = 1\n"), 0644))
	require.Error(t, Reload(s, path))
	assert.Equal(t, 5, s.Len())
	_, ok := s.Get("spotify")
	assert.True(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("[[rule]]\nname = \"only\"\nformat = \"%s\"\n"), 0644))
	require.NoError(t, Reload(s, path))
	assert.Equal(t, 4, s.Len())
	_, ok = s.Get("spotify")
	assert.False(t, ok)

	// an out-of-range timeout is a bind error, not a wrapped duration
	require.NoError(t, os.WriteFile(path, []byte("[[rule]]\nname = \"big\"\ntimeout = 10000000000\n"), 0644))
	err = Reload(s, path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFieldValue))
	assert.Equal(t, 4, s.Len())
	_, ok = s.Get("only")
	assert.True(t, ok)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDocument(t *testing.T) {
	cfg, err := Load(writeFile(t, "rules.toml", sampleTOML))
	require.NoError(t, err)
	rs, err := Bind(cfg)
	require.NoError(t, err)

	doc := Document(rs)

	critical := doc["urgency_critical"].(map[string]interface{})
	assert.NotContains(t, critical, "msg_urgency")
	assert.Equal(t, "0s", critical["timeout"])

	entries := doc["rule"].([]map[string]interface{})
	require.Len(t, entries, 2)
	assert.Equal(t, "spotify", entries[0]["name"])
	assert.NotContains(t, entries[0], "enabled")
	assert.Equal(t, false, entries[1]["enabled"])
}

func TestDumpRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			cfg, err := Load(writeFile(t, "rules.yaml", sampleYAML))
			require.NoError(t, err)
			before, err := Bind(cfg)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Dump(&buf, before, format))

			cfg, err = Load(writeFile(t, "dumped."+string(format), buf.String()))
			require.NoError(t, err)
			after, err := Bind(cfg)
			require.NoError(t, err)

			require.Len(t, after, len(before))
			for i := range before {
				assert.Equal(t, rules.Describe(before[i]), rules.Describe(after[i]))
			}
		})
	}
}
