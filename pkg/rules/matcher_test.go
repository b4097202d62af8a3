// pkg/rules/matcher_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test filter evaluation of rules against notifications

package rules

import (
	"testing"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/stretchr/testify/assert"
)

func testNote() *notification.Notification {
	n := notification.New("Spotify Connect", "Now playing", "Some song")
	n.Icon = "spotify-client"
	n.Category = "x-media"
	n.StackTag = "media"
	n.DesktopEntry = "spotify"
	n.DBusTimeout = 3 * time.Second
	return n
}

func TestMatchesFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"no filters matches everything", Filter{}, true},
		{"appname glob", Filter{AppName: Ptr("Spotify*")}, true},
		{"appname single char wildcard", Filter{AppName: Ptr("Spotify?Connect")}, true},
		{"appname exact text is not a prefix match", Filter{AppName: Ptr("Spotify")}, false},
		{"appname exact full match", Filter{AppName: Ptr("Spotify Connect")}, true},
		{"summary exact", Filter{Summary: Ptr("Now playing")}, true},
		{"summary is case sensitive", Filter{Summary: Ptr("now playing")}, false},
		{"summary has no glob", Filter{Summary: Ptr("Now*")}, false},
		{"body", Filter{Body: Ptr("Some song")}, true},
		{"icon", Filter{Icon: Ptr("spotify-client")}, true},
		{"category mismatch", Filter{Category: Ptr("im.received")}, false},
		{"stack tag", Filter{StackTag: Ptr("media")}, true},
		{"desktop entry", Filter{DesktopEntry: Ptr("spotify")}, true},
		{"urgency equal", Filter{MsgUrgency: Ptr(notification.UrgencyNormal)}, true},
		{"urgency differs", Filter{MsgUrgency: Ptr(notification.UrgencyCritical)}, false},
		{"dbus timeout equal", Filter{MatchDBusTimeout: Ptr(3 * time.Second)}, true},
		{"dbus timeout larger threshold does not match", Filter{MatchDBusTimeout: Ptr(5 * time.Second)}, false},
		{"dbus timeout smaller threshold does not match", Filter{MatchDBusTimeout: Ptr(time.Second)}, false},
		{"transient", Filter{MatchTransient: Ptr(false)}, true},
		{"transient mismatch", Filter{MatchTransient: Ptr(true)}, false},
		{"all filters must agree", Filter{AppName: Ptr("Spotify*"), Category: Ptr("im.received")}, false},
		{"several agreeing filters", Filter{AppName: Ptr("*Connect"), Body: Ptr("Some song"), StackTag: Ptr("media")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBuilder("r").Filter(tt.filter).Build()
			assert.Equal(t, tt.want, Matches(r, testNote()))
		})
	}
}

func TestDisabledRuleNeverMatches(t *testing.T) {
	filters := []Filter{
		{},
		{AppName: Ptr("*")},
		{AppName: Ptr("Spotify Connect"), Summary: Ptr("Now playing")},
	}
	for _, f := range filters {
		r := NewBuilder("off").Filter(f).Enabled(false).Build()
		assert.False(t, Matches(r, testNote()))
		assert.False(t, Matches(r, notification.New("", "", "")))
	}
}

func TestMatchesNilRule(t *testing.T) {
	assert.False(t, Matches(nil, testNote()))
}

func TestMatchesEmptyNotificationValue(t *testing.T) {
	n := testNote()
	n.Category = ""

	assert.False(t, Matches(NewBuilder("r").Filter(Filter{Category: Ptr("x-media")}).Build(), n))
	assert.True(t, Matches(NewBuilder("r").Filter(Filter{Category: Ptr("")}).Build(), n))

	n.AppName = ""
	assert.True(t, Matches(NewBuilder("r").Filter(Filter{AppName: Ptr("*")}).Build(), n))
}

func TestReservedSectionMatchesItsUrgency(t *testing.T) {
	n := testNote()
	n.Urgency = notification.UrgencyCritical

	assert.True(t, Matches(New("urgency_critical"), n))
	assert.False(t, Matches(New("urgency_low"), n))
	assert.False(t, Matches(New("urgency_normal"), n))
}

func TestMatchesHasNoSideEffects(t *testing.T) {
	n := testNote()
	before := *n
	r := NewBuilder("r").Filter(Filter{AppName: Ptr("Spotify*")}).Modify(Modify{Timeout: Ptr(time.Second)}).Build()

	assert.True(t, Matches(r, n))
	assert.Equal(t, before, *n)
}
