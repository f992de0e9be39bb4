// Package calendar builds the external "add to calendar" links and the
// ICS export for parties.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"fete/internal/log"
	"fete/internal/party"
)

// DefaultLinkBase is the calendar service parties link out to.
const DefaultLinkBase = "http://evt.to"

// prodID identifies this exporter in generated calendars.
const prodID = "-//fete//party planner//EN"

// ErrNothingToExport is returned when no party carries a date.
var ErrNothingToExport = errors.New("no dated parties to export")

// Link builds the shareable calendar URL for an event key. An empty
// base uses DefaultLinkBase.
func Link(base, eventKey string) string {
	if base == "" {
		base = DefaultLinkBase
	}
	return strings.TrimSuffix(base, "/") + "/" + eventKey
}

// ExportICS serializes the given parties as an iCalendar document. One
// VEVENT per party; parties without a date are skipped since they
// cannot be anchored on a calendar.
func ExportICS(parties []*party.Party, linkBase string) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	exported := 0
	for _, p := range parties {
		date, ok := p.Date()
		if !ok {
			log.Debug(log.CatCalendar, "skipping undated party", "title", p.Title())
			continue
		}

		start := date
		if t, ok := p.StartTime(); ok {
			start = t.OnDate(date)
		}
		end := start.Add(time.Hour)
		if t, ok := p.EndTime(); ok {
			end = t.OnDate(date)
		}

		event := cal.AddEvent(p.EventKey())
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(p.Title())
		event.SetURL(Link(linkBase, p.EventKey()))
		event.SetDescription(describeSelections(p))
		exported++
	}

	if exported == 0 {
		return "", ErrNothingToExport
	}

	log.Info(log.CatCalendar, "exported parties", "count", exported)
	return cal.Serialize(), nil
}

// describeSelections summarizes the party's picks for the event body.
func describeSelections(p *party.Party) string {
	var lines []string
	for _, cat := range party.Categories() {
		items := p.Collection(cat).SelectedItems()
		if len(items) == 0 {
			continue
		}
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name())
		}
		lines = append(lines, fmt.Sprintf("%s: %s", cat, strings.Join(names, ", ")))
	}
	return strings.Join(lines, "\n")
}
