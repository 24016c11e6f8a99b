// Package export serializes a calendar's events to iCalendar text for
// consumption by external calendar clients.
package export

import (
	ics "github.com/arran4/golang-ical"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

const prodID = "-//MultiCalendar//EN"

// ICS renders the events as one VCALENDAR. Event ids become UIDs, the
// status enum maps onto CLASS, and the location detail (when present) wins
// over the bare physical/online tag.
func ICS(events []domain.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		ev := cal.AddEvent(e.ID)
		ev.SetSummary(e.Subject)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if loc := locationText(e); loc != "" {
			ev.SetLocation(loc)
		}
		switch e.Status {
		case domain.StatusPrivate:
			ev.SetProperty(ics.ComponentProperty(ics.PropertyClass), "PRIVATE")
		case domain.StatusPublic:
			ev.SetProperty(ics.ComponentProperty(ics.PropertyClass), "PUBLIC")
		}
	}
	return cal.Serialize()
}

func locationText(e domain.Event) string {
	if e.LocationDetail != "" {
		return e.LocationDetail
	}
	return string(e.Location)
}
