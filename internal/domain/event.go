package domain

import "time"

// Layouts accepted by the engine and its collaborators (command/HTTP layers).
const (
	DateTimeLayout = "2006-01-02T15:04"
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
)

// Event is one concrete occurrence on a calendar, standalone or generated
// from a Series. The ID is assigned at creation and never changes; every
// other field is mutated only through the store's edit engine.
type Event struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Description    string    `json:"description,omitempty"`
	Location       Location  `json:"location,omitempty"`
	LocationDetail string    `json:"location_detail,omitempty"`
	Status         Status    `json:"status,omitempty"`
	SeriesID       string    `json:"series_id,omitempty"`
}

// EventKey is the identity under which two events count as duplicates.
// Only subject/start/end participate; all other fields may repeat freely.
type EventKey struct {
	Subject string
	Start   int64
	End     int64
}

func (e *Event) Key() EventKey {
	return EventKey{Subject: e.Subject, Start: e.Start.UnixNano(), End: e.End.UnixNano()}
}

// Duration of the occurrence. Zero-duration events are legal and occupy
// exactly their start instant.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// OccupiesAt reports whether the event makes the instant busy under the
// half-open [start, end) rule. A zero-duration event occupies its single
// instant.
func (e *Event) OccupiesAt(t time.Time) bool {
	if e.Start.Equal(e.End) {
		return t.Equal(e.Start)
	}
	return !t.Before(e.Start) && t.Before(e.End)
}

// Overlaps reports whether the event intersects the half-open range
// [from, to).
func (e *Event) Overlaps(from, to time.Time) bool {
	if e.Start.Equal(e.End) {
		return !e.Start.Before(from) && e.Start.Before(to)
	}
	return e.Start.Before(to) && e.End.After(from)
}
