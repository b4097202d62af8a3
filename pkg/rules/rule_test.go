package rules

import (
	"testing"
	"time"

	"github.com/arthur-debert/notifyrules/pkg/color"
	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New("spotify")
	assert.Equal(t, "spotify", r.Name)
	assert.True(t, r.Enabled)
	assert.False(t, r.Sealed())
	assert.Equal(t, Filter{}, r.Filter)
	assert.Equal(t, Modify{}, r.Modify)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New("plain").Validate())
	assert.NoError(t, NewBuilder("plain").Filter(Filter{Body: Ptr("x")}).Build().Validate())
	assert.NoError(t, NewSectionBuilder(SectionUrgencyLow).Modify(Modify{Format: Ptr("%s")}).Build().Validate())

	r := New("urgency_low")
	r.Filter.MatchTransient = Ptr(true)
	assert.Error(t, r.Validate())
}

func TestNewSeedsReservedSections(t *testing.T) {
	tests := []struct {
		section Section
		want    notification.Urgency
	}{
		{SectionUrgencyLow, notification.UrgencyLow},
		{SectionUrgencyNormal, notification.UrgencyNormal},
		{SectionUrgencyCritical, notification.UrgencyCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			r := New(string(tt.section))
			require.NotNil(t, r.Filter.MsgUrgency)
			assert.Equal(t, tt.want, *r.Filter.MsgUrgency)
			assert.True(t, r.Sealed())

			s, ok := r.Section()
			assert.True(t, ok)
			assert.Equal(t, tt.section, s)
		})
	}
}

func TestBuilders(t *testing.T) {
	r := NewBuilder("spotify").
		Filter(Filter{AppName: Ptr("Spotify")}).
		Modify(Modify{Timeout: Ptr(5 * time.Second)}).
		Enabled(false).
		Build()

	assert.Equal(t, "Spotify", *r.Filter.AppName)
	assert.Equal(t, 5*time.Second, *r.Modify.Timeout)
	assert.False(t, r.Enabled)

	crit := NewSectionBuilder(SectionUrgencyCritical).
		Modify(Modify{Timeout: Ptr(time.Duration(0))}).
		Build()
	assert.Equal(t, notification.UrgencyCritical, *crit.Filter.MsgUrgency)
	assert.Equal(t, time.Duration(0), *crit.Modify.Timeout)

	assert.Panics(t, func() { NewBuilder("urgency_low") })
	assert.Panics(t, func() { NewSectionBuilder(Section("spotify")) })
}

func TestFree(t *testing.T) {
	var nilRule *Rule
	assert.NotPanics(t, func() { nilRule.Free() })

	r := NewBuilder("x").Modify(Modify{Format: Ptr("%s")}).Build()
	r.Free()
	assert.Nil(t, r.Modify.Format)
	assert.NotPanics(t, func() { r.Free() })
}

func TestClone(t *testing.T) {
	r := NewBuilder("x").
		Filter(Filter{AppName: Ptr("a*")}).
		Modify(Modify{
			Highlight: Ptr(color.Gradient{color.MustParse("#111111")}),
			Urgency:   Ptr(notification.UrgencyLow),
		}).
		Build()

	c := r.Clone()
	assert.Equal(t, r.Name, c.Name)
	assert.Equal(t, *r.Filter.AppName, *c.Filter.AppName)
	assert.Equal(t, notification.UrgencyLow, *c.Modify.Urgency)

	*c.Filter.AppName = "b*"
	(*c.Modify.Highlight)[0] = color.MustParse("#222222")
	assert.Equal(t, "a*", *r.Filter.AppName)
	assert.Equal(t, "#111111", (*r.Modify.Highlight)[0].String())

	sealed := New("urgency_low").Clone()
	assert.True(t, sealed.Sealed())

	var nilRule *Rule
	assert.Nil(t, nilRule.Clone())
}
