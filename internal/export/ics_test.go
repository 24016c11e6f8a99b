package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

func TestICS_SerializesEvents(t *testing.T) {
	start := time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)
	out := ICS([]domain.Event{
		{
			ID:          "ev-1",
			Subject:     "Meeting",
			Start:       start,
			End:         start.Add(time.Hour),
			Description: "quarterly review",
			Status:      domain.StatusPrivate,
			Location:    domain.LocationOnline,
		},
	})

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "UID:ev-1")
	assert.Contains(t, out, "SUMMARY:Meeting")
	assert.Contains(t, out, "DESCRIPTION:quarterly review")
	assert.Contains(t, out, "CLASS:PRIVATE")
	assert.Contains(t, out, "LOCATION:online")
	assert.Contains(t, out, "END:VCALENDAR")
}

func TestICS_LocationDetailWins(t *testing.T) {
	start := time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)
	out := ICS([]domain.Event{
		{
			ID:             "ev-2",
			Subject:        "Offsite",
			Start:          start,
			End:            start.Add(time.Hour),
			Location:       domain.LocationPhysical,
			LocationDetail: "Building 7",
		},
	})

	assert.Contains(t, out, "LOCATION:Building 7")
	assert.False(t, strings.Contains(out, "LOCATION:physical"))
}

func TestICS_EmptyCalendar(t *testing.T) {
	out := ICS(nil)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
