package rules

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	r := NewBuilder("spotify").
		Filter(Filter{AppName: Ptr("Spotify*")}).
		Modify(Modify{
			Timeout:   Ptr(5 * time.Second),
			Urgency:   Ptr(notification.UrgencyLow),
			BG:        Ptr(color.MustParse("#101010")),
			Highlight: Ptr(color.Gradient{color.MustParse("#000000"), color.MustParse("#ffffff")}),
		}).
		Build()

	assert.Equal(t, []Pair{
		{"name", "spotify"},
		{"appname", `"Spotify*"`},
		{"timeout", "5s"},
		{"urgency", "low"},
		{"background", "#101010"},
		{"highlight", "#000000, #ffffff"},
		{"enabled", "true"},
	}, Describe(r))
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, New("urgency_critical")))

	assert.Equal(t, "name = urgency_critical\nmsg_urgency = critical\nenabled = true\n", buf.String())
}

func TestDescribedValuesBindBack(t *testing.T) {
	r := everything()
	back := New(r.Name)
	for _, p := range Describe(r)[1:] {
		raw := p.Value
		if f, _ := Fields.Lookup(p.Key); f.Kind == KindString {
			var err error
			raw, err = strconv.Unquote(raw)
			require.NoError(t, err)
		}
		require.NoError(t, Bind(back, p.Key, raw), p.Key)
	}
	assert.Equal(t, Describe(r), Describe(back))
}
