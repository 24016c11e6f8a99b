package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

func standupInput(t *testing.T) domain.CreateSeriesInput {
	t.Helper()
	return domain.CreateSeriesInput{
		Subject:    "Standup",
		StartClock: 9 * time.Hour,
		EndClock:   9*time.Hour + 15*time.Minute,
		Weekdays:   []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		StartDate:  at(t, "2025-06-02T00:00"),
		Count:      5,
	}
}

func TestCreateSeries_CountTermination(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	wantStarts := []string{
		"2025-06-02T09:00", // Mon
		"2025-06-04T09:00", // Wed
		"2025-06-06T09:00", // Fri
		"2025-06-09T09:00", // Mon
		"2025-06-11T09:00", // Wed
	}
	all := s.Events()
	require.Len(t, all, 5)
	for i, want := range wantStarts {
		assert.Equal(t, at(t, want), all[i].Start)
		assert.Equal(t, at(t, want).Add(15*time.Minute), all[i].End)
		assert.Equal(t, sr.ID, all[i].SeriesID)
	}
}

func TestCreateSeries_EndDateInclusive(t *testing.T) {
	s := newTestStore(t)

	in := standupInput(t)
	in.Count = 0
	in.EndDate = at(t, "2025-06-06T00:00") // a Friday in the weekday set

	_, err := s.CreateSeries(in)
	require.NoError(t, err)

	all := s.Events()
	require.Len(t, all, 3)
	assert.Equal(t, at(t, "2025-06-06T09:00"), all[2].Start)
}

func TestCreateSeries_SkipsDaysOutsideWeekdaySet(t *testing.T) {
	s := newTestStore(t)

	in := standupInput(t)
	in.Weekdays = []time.Weekday{time.Tuesday}
	in.Count = 2
	// Anchor is a Monday; the first occurrence must be the next Tuesday.
	_, err := s.CreateSeries(in)
	require.NoError(t, err)

	all := s.Events()
	require.Len(t, all, 2)
	assert.Equal(t, at(t, "2025-06-03T09:00"), all[0].Start)
	assert.Equal(t, at(t, "2025-06-10T09:00"), all[1].Start)
}

func TestCreateSeries_Validation(t *testing.T) {
	s := newTestStore(t)

	in := standupInput(t)
	in.Weekdays = nil
	_, err := s.CreateSeries(in)
	assert.ErrorIs(t, err, domain.ErrInvalidSeries)

	in = standupInput(t)
	in.Count = 0 // neither termination condition
	_, err = s.CreateSeries(in)
	assert.ErrorIs(t, err, domain.ErrInvalidSeries)

	in = standupInput(t)
	in.EndDate = at(t, "2025-06-30T00:00") // both termination conditions
	_, err = s.CreateSeries(in)
	assert.ErrorIs(t, err, domain.ErrInvalidSeries)

	in = standupInput(t)
	in.StartClock = 23 * time.Hour
	in.EndClock = 25 * time.Hour // crosses midnight
	_, err = s.CreateSeries(in)
	assert.ErrorIs(t, err, domain.ErrInvalidSeries)

	in = standupInput(t)
	in.EndClock = 8 * time.Hour // ends before it starts
	_, err = s.CreateSeries(in)
	assert.ErrorIs(t, err, domain.ErrInvalidSeries)
}

func TestCreateSeries_DuplicateAbortsWholeInsert(t *testing.T) {
	s := newTestStore(t)

	// Occupy the slot of the third occurrence.
	_, err := s.CreateEvent("Standup", at(t, "2025-06-06T09:00"), at(t, "2025-06-06T09:15"))
	require.NoError(t, err)

	_, err = s.CreateSeries(standupInput(t))
	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

	// Nothing from the failed series insert may remain.
	all := s.Events()
	require.Len(t, all, 1)
	assert.Empty(t, all[0].SeriesID)
}

func TestStore_SeriesByID(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	got, err := s.SeriesByID(sr.ID)
	require.NoError(t, err)
	assert.Equal(t, sr.Subject, got.Subject)
	assert.Equal(t, sr.Duration, got.Duration)

	_, err = s.SeriesByID("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditSeries_Subject(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	require.NoError(t, s.EditSeries(sr.ID, domain.PropertySubject, "Daily"))

	for _, e := range s.Events() {
		assert.Equal(t, "Daily", e.Subject)
	}
	got, err := s.SeriesByID(sr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Daily", got.Subject)
}

func TestEditSeries_UnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.EditSeries("missing", domain.PropertySubject, "X"))
	assert.NoError(t, s.EditSeriesFromDate("missing", domain.PropertySubject, "X", at(t, "2025-06-02T00:00")))
}

func TestEditSeries_EndRecomputesDuration(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	require.NoError(t, s.EditSeries(sr.ID, domain.PropertyEnd, "09:45"))

	for _, e := range s.Events() {
		assert.Equal(t, 45*time.Minute, e.Duration())
	}
	got, err := s.SeriesByID(sr.ID)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, got.Duration)
}

func TestEditSeries_EndBeforeStartIsSpanError(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	err = s.EditSeries(sr.ID, domain.PropertyEnd, "08:00")
	assert.ErrorIs(t, err, domain.ErrSeriesSpan)

	// Members are untouched after the rejected edit.
	for _, e := range s.Events() {
		assert.Equal(t, 15*time.Minute, e.Duration())
	}
}

func TestEditSeries_StartKeepsEndFixed(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	require.NoError(t, s.EditSeries(sr.ID, domain.PropertyStart, "08:30"))

	for _, e := range s.Events() {
		assert.Equal(t, 8*time.Hour+30*time.Minute, domain.ClockOf(e.Start))
		assert.Equal(t, 9*time.Hour+15*time.Minute, domain.ClockOf(e.End))
	}
	got, err := s.SeriesByID(sr.ID)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, got.Duration)
}

func TestEditSeries_StartAfterEndRejected(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	err = s.EditSeries(sr.ID, domain.PropertyStart, "10:00")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestEditSeries_DetachedMemberIsLeftAlone(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	members := s.FindBySubjectAndStart("Standup", at(t, "2025-06-04T09:00"))
	require.Len(t, members, 1)
	_, err = s.EditEvent(members[0].ID, domain.PropertyStart, "2025-06-04T10:00")
	require.NoError(t, err)

	require.NoError(t, s.EditSeries(sr.ID, domain.PropertySubject, "Daily"))

	detached, err := s.EventByID(members[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Standup", detached.Subject)
}

func TestEditSeriesFromDate_OnlyLaterMembersChange(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	require.NoError(t, s.EditSeriesFromDate(sr.ID, domain.PropertyEnd, "10:00", at(t, "2025-06-06T09:00")))

	all := s.Events()
	require.Len(t, all, 5)
	assert.Equal(t, 15*time.Minute, all[0].Duration()) // 06-02
	assert.Equal(t, 15*time.Minute, all[1].Duration()) // 06-04
	assert.Equal(t, 55*time.Minute, all[2].Duration()) // 06-06
	assert.Equal(t, 55*time.Minute, all[3].Duration()) // 06-09
	assert.Equal(t, 55*time.Minute, all[4].Duration()) // 06-11
}

func TestEditSeriesFromDate_NoMembersForward(t *testing.T) {
	s := newTestStore(t)

	sr, err := s.CreateSeries(standupInput(t))
	require.NoError(t, err)

	require.NoError(t, s.EditSeriesFromDate(sr.ID, domain.PropertyEnd, "10:00", at(t, "2025-07-01T00:00")))

	for _, e := range s.Events() {
		assert.Equal(t, 15*time.Minute, e.Duration())
	}
}
