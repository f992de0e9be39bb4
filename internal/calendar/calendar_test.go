package calendar

import (
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"

	"fete/internal/party"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		eventKey string
		want     string
	}{
		{"default base", "", "abc-123", "http://evt.to/abc-123"},
		{"custom base", "https://cal.example", "k", "https://cal.example/k"},
		{"trailing slash trimmed", "https://cal.example/", "k", "https://cal.example/k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Link(tt.base, tt.eventKey))
		})
	}
}

func TestExportICS(t *testing.T) {
	t.Run("dated party round-trips through ical", func(t *testing.T) {
		p := party.New("Housewarming", party.Providers{})
		p.SetDate(time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, p.SetStartTime("19:00"))
		require.NoError(t, p.SetEndTime("23:00"))

		it, err := party.NewRecipeItem("11403", "Gimlet", "", []string{"gin"}, "Shake.")
		require.NoError(t, err)
		_, err = p.Cocktails().HandleItemClick(it, party.ActionAdd)
		require.NoError(t, err)

		out, err := ExportICS([]*party.Party{p}, "")
		require.NoError(t, err)

		cal, err := ical.ParseCalendar(strings.NewReader(out))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 1)

		summary := events[0].GetProperty(ical.ComponentPropertySummary)
		require.NotNil(t, summary)
		assert.Equal(t, "Housewarming", summary.Value)

		uid := events[0].GetProperty(ical.ComponentPropertyUniqueId)
		require.NotNil(t, uid)
		assert.Equal(t, p.EventKey(), uid.Value)

		start, err := events[0].GetStartAt()
		require.NoError(t, err)
		assert.Equal(t, 19, start.Hour())
	})

	t.Run("undated parties are skipped", func(t *testing.T) {
		dated := party.New("Dated", party.Providers{})
		dated.SetDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		undated := party.New("Undated", party.Providers{})

		out, err := ExportICS([]*party.Party{dated, undated}, "")
		require.NoError(t, err)

		cal, err := ical.ParseCalendar(strings.NewReader(out))
		require.NoError(t, err)
		assert.Len(t, cal.Events(), 1)
	})

	t.Run("nothing to export is an error", func(t *testing.T) {
		undated := party.New("Undated", party.Providers{})
		_, err := ExportICS([]*party.Party{undated}, "")
		assert.Error(t, err)
	})
}
