package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"matching.md":       {Data: []byte("# Matching\n\nFilters are ANDed.")},
		"option-config.txt": {Data: []byte("Path of the rule file")},
		"sections.txxt":     {Data: []byte("Urgency sections")},
		"ignore.json":       {Data: []byte("{}")},
		"nested/order.txt":  {Data: []byte("Later rules win")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"matching", true, "# Matching\n\nFilters are ANDed."},
			{"order", true, "Later rules win"},
			{"config", true, "Path of the rule file"},
			{"--config", true, "Path of the rule file"},
			{"sections", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"sections"}, tm.ListTopics())
	})
}

func TestListTopicsSorted(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())
	assert.Equal(t, []string{"matching", "option-config", "order"}, tm.ListTopics())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	if format != ".md" {
		return content
	}
	return strings.ToUpper(content)
}

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "check", Short: "Validate things", Run: func(*cobra.Command, []string) {}})
	require.NoError(t, InitializeWithOptions(root, testFS(), opts))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic list", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "General topics:")
		assert.Contains(t, out.String(), "  matching")
		assert.Contains(t, out.String(), "  --config")
		assert.Contains(t, out.String(), "Use 'app help <topic>'")
	})

	t.Run("topic through renderer", func(t *testing.T) {
		root, out := newRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "matching"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# MATCHING\n\nFILTERS ARE ANDED.", out.String())
	})

	t.Run("plain text topic", func(t *testing.T) {
		root, out := newRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "order"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Later rules win", out.String())
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "check"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Validate things")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestGlamourRendererLeavesTextAlone(t *testing.T) {
	r := NewGlamourRenderer(false)
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
	assert.Contains(t, r.Render("# Title\n\nbody", ".md"), "Title")
}
