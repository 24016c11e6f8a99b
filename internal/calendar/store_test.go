package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(time.UTC, newTestLogger(t))
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(domain.DateTimeLayout, value, time.UTC)
	require.NoError(t, err)
	return ts
}

func TestStore_CreateEvent_Success(t *testing.T) {
	s := newTestStore(t)

	e, err := s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Meeting", e.Subject)
	assert.Empty(t, e.SeriesID)

	events := s.EventsOn(at(t, "2025-06-05T00:00"))
	require.Len(t, events, 1)
	assert.Equal(t, e.ID, events[0].ID)
}

func TestStore_CreateEvent_Duplicate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	require.NoError(t, err)

	_, err = s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

	// Same times under a different subject are not duplicates.
	_, err = s.CreateEvent("Other", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	assert.NoError(t, err)
}

func TestStore_CreateEvent_InvalidRange(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateEvent("Meeting", at(t, "2025-06-05T10:00"), at(t, "2025-06-05T09:00"))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestStore_CreateEvent_EmptySubject(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateEvent("  ", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStore_CreateAllDayEvent_Defaults(t *testing.T) {
	s := newTestStore(t)

	e, err := s.CreateAllDayEvent("Conference", at(t, "2025-06-05T00:00"))

	require.NoError(t, err)
	assert.Equal(t, at(t, "2025-06-05T08:00"), e.Start)
	assert.Equal(t, at(t, "2025-06-05T17:00"), e.End)
}

func TestStore_MultiDayEvent_IndexedUnderEveryDay(t *testing.T) {
	s := newTestStore(t)

	e, err := s.CreateEvent("Offsite", at(t, "2025-06-05T18:00"), at(t, "2025-06-07T12:00"))
	require.NoError(t, err)

	for _, day := range []string{"2025-06-05T00:00", "2025-06-06T00:00", "2025-06-07T00:00"} {
		events := s.EventsOn(at(t, day))
		require.Len(t, events, 1, "day %s", day)
		assert.Equal(t, e.ID, events[0].ID)
	}
	assert.Empty(t, s.EventsOn(at(t, "2025-06-08T00:00")))
}

func TestStore_EventsInRange_DeduplicatesAndFilters(t *testing.T) {
	s := newTestStore(t)

	spanning, err := s.CreateEvent("Offsite", at(t, "2025-06-05T18:00"), at(t, "2025-06-07T12:00"))
	require.NoError(t, err)
	_, err = s.CreateEvent("Early", at(t, "2025-06-05T08:00"), at(t, "2025-06-05T09:00"))
	require.NoError(t, err)

	events, err := s.EventsInRange(at(t, "2025-06-05T10:00"), at(t, "2025-06-08T00:00"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, spanning.ID, events[0].ID)
}

func TestStore_EventsInRange_HalfOpenBoundaries(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	require.NoError(t, err)

	// Range starting exactly at the event's end does not include it.
	events, err := s.EventsInRange(at(t, "2025-06-05T10:00"), at(t, "2025-06-05T12:00"))
	require.NoError(t, err)
	assert.Empty(t, events)

	// Range ending exactly at the event's start does not include it.
	events, err = s.EventsInRange(at(t, "2025-06-05T08:00"), at(t, "2025-06-05T09:00"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStore_EventsInRange_InvalidRange(t *testing.T) {
	s := newTestStore(t)

	_, err := s.EventsInRange(at(t, "2025-06-06T00:00"), at(t, "2025-06-05T00:00"))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestStore_IsBusyAt_HalfOpenRule(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	require.NoError(t, err)

	assert.True(t, s.IsBusyAt(at(t, "2025-06-05T09:00")))
	assert.True(t, s.IsBusyAt(at(t, "2025-06-05T09:59")))
	assert.False(t, s.IsBusyAt(at(t, "2025-06-05T10:00")))
	assert.False(t, s.IsBusyAt(at(t, "2025-06-05T08:59")))
}

func TestStore_IsBusyAt_ZeroDurationEvent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateEvent("Ping", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T09:00"))
	require.NoError(t, err)

	assert.True(t, s.IsBusyAt(at(t, "2025-06-05T09:00")))
	assert.False(t, s.IsBusyAt(at(t, "2025-06-05T09:01")))
}

func TestStore_FindBySubjectAndStart_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	e, err := s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	require.NoError(t, err)
	_, err = s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T11:00"))
	require.NoError(t, err)

	matches := s.FindBySubjectAndStart("mEEting", at(t, "2025-06-05T09:00"))
	assert.Len(t, matches, 2)

	narrowed := s.FindByDetails("meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	require.Len(t, narrowed, 1)
	assert.Equal(t, e.ID, narrowed[0].ID)
}

func TestStore_EventByID(t *testing.T) {
	s := newTestStore(t)

	e, err := s.CreateEvent("Meeting", at(t, "2025-06-05T09:00"), at(t, "2025-06-05T10:00"))
	require.NoError(t, err)

	got, err := s.EventByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	_, err = s.EventByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
