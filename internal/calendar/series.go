package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

// CreateSeries validates the pattern, expands it into occurrences and inserts
// them all-or-nothing: every occurrence is checked against the uniqueness set
// (and against its siblings) before the first one is stored, so a duplicate
// leaves the store untouched.
func (s *Store) CreateSeries(in domain.CreateSeriesInput) (domain.Series, error) {
	if in.Subject == "" {
		return domain.Series{}, fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}

	sr := domain.Series{
		ID:             uuid.New().String(),
		Subject:        in.Subject,
		StartClock:     in.StartClock,
		Duration:       in.EndClock - in.StartClock,
		Weekdays:       in.Weekdays,
		StartDate:      domain.Midnight(in.StartDate),
		EndDate:        in.EndDate,
		Count:          in.Count,
		Description:    in.Description,
		Location:       in.Location,
		LocationDetail: in.LocationDetail,
		Status:         in.Status,
	}
	if !in.EndDate.IsZero() {
		sr.EndDate = domain.Midnight(in.EndDate)
	}
	if err := sr.Validate(); err != nil {
		return domain.Series{}, err
	}

	starts, err := s.expandStarts(&sr)
	if err != nil {
		return domain.Series{}, err
	}

	events := make([]*domain.Event, 0, len(starts))
	for _, start := range starts {
		end := start.Add(sr.Duration)
		// Guard each occurrence again: a DST transition can stretch the
		// wall-clock span even when the pattern itself validated.
		if !domain.SameDay(start, end) {
			return domain.Series{}, fmt.Errorf("%w: occurrence on %s", domain.ErrSeriesSpan, start.Format(domain.DateLayout))
		}
		events = append(events, &domain.Event{
			ID:             uuid.New().String(),
			Subject:        sr.Subject,
			Start:          start,
			End:            end,
			Description:    sr.Description,
			Location:       sr.Location,
			LocationDetail: sr.LocationDetail,
			Status:         sr.Status,
			SeriesID:       sr.ID,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[domain.EventKey]bool, len(events))
	for _, e := range events {
		key := e.Key()
		if seen[key] {
			return domain.Series{}, domain.ErrDuplicateEvent
		}
		if _, ok := s.unique[key]; ok {
			return domain.Series{}, domain.ErrDuplicateEvent
		}
		seen[key] = true
	}
	for _, e := range events {
		if err := s.insertLocked(e); err != nil {
			// Unreachable after the pre-check; kept so a future index
			// change cannot silently half-insert.
			return domain.Series{}, err
		}
	}
	s.series[sr.ID] = &sr

	s.log.Info("series created",
		logger.String("series_id", sr.ID),
		logger.String("subject", sr.Subject),
		logger.Int("occurrences", len(events)),
	)
	return sr, nil
}

// expandStarts walks the recurrence pattern into concrete occurrence start
// times. The weekly rule carries exactly one termination condition, so the
// walk is finite by construction.
func (s *Store) expandStarts(sr *domain.Series) ([]time.Time, error) {
	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   domain.OnDay(sr.StartDate, sr.StartClock),
		Byweekday: rruleWeekdays(sr.Weekdays),
	}
	if sr.Count > 0 {
		opt.Count = sr.Count
	} else {
		// UNTIL is inclusive; anchoring it at the start clock keeps an
		// occurrence landing exactly on the end date.
		opt.Until = domain.OnDay(sr.EndDate, sr.StartClock)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSeries, err)
	}
	return rule.All(), nil
}

func rruleWeekdays(days []time.Weekday) []rrule.Weekday {
	out := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		switch d {
		case time.Monday:
			out = append(out, rrule.MO)
		case time.Tuesday:
			out = append(out, rrule.TU)
		case time.Wednesday:
			out = append(out, rrule.WE)
		case time.Thursday:
			out = append(out, rrule.TH)
		case time.Friday:
			out = append(out, rrule.FR)
		case time.Saturday:
			out = append(out, rrule.SA)
		case time.Sunday:
			out = append(out, rrule.SU)
		}
	}
	return out
}

// EditSeries changes the pattern and applies the equivalent change to every
// member occurrence still attached to it. Unknown series ids are a no-op.
//
// start and end values are times of day (HH:MM), recomputed against each
// member's own date. Editing start keeps each member's end fixed; editing
// end recomputes the shared duration and fails with ErrSeriesSpan when the
// new span would cross midnight.
func (s *Store) EditSeries(seriesID string, prop domain.Property, value string) error {
	return s.editSeriesMembers(seriesID, prop, value, time.Time{})
}

// EditSeriesFromDate is EditSeries restricted to members starting at or
// after from; earlier occurrences keep their old values. A zero from edits
// the whole series. No-op when the series is unknown or no member matches.
func (s *Store) EditSeriesFromDate(seriesID string, prop domain.Property, value string, from time.Time) error {
	return s.editSeriesMembers(seriesID, prop, value, from)
}

func (s *Store) editSeriesMembers(seriesID string, prop domain.Property, value string, from time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr, ok := s.series[seriesID]
	if !ok {
		return nil
	}

	members := s.membersLocked(seriesID, from)
	if len(members) == 0 && !from.IsZero() {
		// "From this occurrence forward" with nothing forward of it.
		return nil
	}

	switch prop {
	case domain.PropertySubject:
		if value == "" {
			return fmt.Errorf("%w: subject is required", domain.ErrValidation)
		}
		for _, m := range members {
			if err := s.resubjectLocked(m, value); err != nil {
				return err
			}
		}
		sr.Subject = value

	case domain.PropertyStart:
		clock, err := domain.ParseClock(value)
		if err != nil {
			return err
		}
		// The end time of day stays put, so the duration absorbs the move.
		endClock := sr.EndClock()
		if clock > endClock {
			return domain.ErrInvalidRange
		}
		for _, m := range members {
			if err := s.rescheduleLocked(m, domain.OnDay(m.Start, clock), m.End); err != nil {
				return err
			}
		}
		sr.Duration = endClock - clock
		sr.StartClock = clock

	case domain.PropertyEnd:
		clock, err := domain.ParseClock(value)
		if err != nil {
			return err
		}
		duration := clock - sr.StartClock
		if duration < 0 || sr.StartClock+duration > 24*time.Hour {
			return domain.ErrSeriesSpan
		}
		for _, m := range members {
			if err := s.rescheduleLocked(m, m.Start, domain.OnDay(m.Start, clock)); err != nil {
				return err
			}
		}
		sr.Duration = duration

	case domain.PropertyDescription:
		for _, m := range members {
			m.Description = value
		}
		sr.Description = value

	case domain.PropertyLocation:
		loc, err := domain.ParseLocation(value)
		if err != nil {
			return err
		}
		for _, m := range members {
			m.Location = loc
		}
		sr.Location = loc

	case domain.PropertyStatus:
		st, err := domain.ParseStatus(value)
		if err != nil {
			return err
		}
		for _, m := range members {
			m.Status = st
		}
		sr.Status = st

	default:
		return fmt.Errorf("%w: property %q", domain.ErrInvalidEnum, prop)
	}

	s.log.Info("series edited",
		logger.String("series_id", seriesID),
		logger.String("property", string(prop)),
		logger.Int("members", len(members)),
	)
	return nil
}

// membersLocked gathers the attached occurrences starting at-or-after from
// (all of them when from is zero), ordered by start time.
func (s *Store) membersLocked(seriesID string, from time.Time) []*domain.Event {
	var out []*domain.Event
	for _, e := range s.byID {
		if e.SeriesID != seriesID {
			continue
		}
		if !from.IsZero() && e.Start.Before(from) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
