package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

// EditEvent changes one property of a stored event. The event leaves the
// uniqueness set, mutates, and is re-admitted; if re-admission would collide
// with a different event, every field (series membership included) is
// restored and ErrConflictingEvent comes back. Changing start or end
// detaches the event from its series.
func (s *Store) EditEvent(id string, prop domain.Property, value string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}

	prev := *e
	delete(s.unique, e.Key())

	restore := func() {
		*e = prev
		s.unique[e.Key()] = e.ID
	}

	if err := s.applyProperty(e, prop, value); err != nil {
		restore()
		return domain.Event{}, err
	}
	if e.Start.After(e.End) {
		restore()
		return domain.Event{}, domain.ErrInvalidRange
	}
	if _, taken := s.unique[e.Key()]; taken {
		restore()
		return domain.Event{}, domain.ErrConflictingEvent
	}
	s.unique[e.Key()] = e.ID

	if !e.Start.Equal(prev.Start) || !e.End.Equal(prev.End) {
		s.unindexDaysLocked(e.ID, prev.Start, prev.End)
		s.indexDaysLocked(e)
	}

	s.log.Debug("event edited",
		logger.String("event_id", e.ID),
		logger.String("property", string(prop)),
	)
	return *e, nil
}

func (s *Store) applyProperty(e *domain.Event, prop domain.Property, value string) error {
	switch prop {
	case domain.PropertySubject:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: subject is required", domain.ErrValidation)
		}
		e.Subject = value
	case domain.PropertyStart:
		t, err := s.parseDateTime(value)
		if err != nil {
			return err
		}
		e.Start = t
		e.SeriesID = "" // rescheduled occurrences go standalone
	case domain.PropertyEnd:
		t, err := s.parseDateTime(value)
		if err != nil {
			return err
		}
		e.End = t
		e.SeriesID = ""
	case domain.PropertyDescription:
		e.Description = value
	case domain.PropertyLocation:
		loc, err := domain.ParseLocation(value)
		if err != nil {
			return err
		}
		e.Location = loc
	case domain.PropertyStatus:
		st, err := domain.ParseStatus(value)
		if err != nil {
			return err
		}
		e.Status = st
	default:
		return fmt.Errorf("%w: property %q", domain.ErrInvalidEnum, prop)
	}
	return nil
}

func (s *Store) parseDateTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateTimeLayout, strings.TrimSpace(value), s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date-time %q (want YYYY-MM-DDThh:mm)", domain.ErrValidation, value)
	}
	return t, nil
}

// rescheduleLocked moves a series member to new times without detaching it.
// Used by series-level edits only; single-event edits detach instead.
func (s *Store) rescheduleLocked(e *domain.Event, newStart, newEnd time.Time) error {
	prev := *e
	delete(s.unique, e.Key())

	e.Start = newStart
	e.End = newEnd
	if e.Start.After(e.End) {
		*e = prev
		s.unique[e.Key()] = e.ID
		return domain.ErrInvalidRange
	}
	if _, taken := s.unique[e.Key()]; taken {
		*e = prev
		s.unique[e.Key()] = e.ID
		return domain.ErrConflictingEvent
	}
	s.unique[e.Key()] = e.ID

	s.unindexDaysLocked(e.ID, prev.Start, prev.End)
	s.indexDaysLocked(e)
	return nil
}

// resubjectLocked renames a series member, keeping membership.
func (s *Store) resubjectLocked(e *domain.Event, subject string) error {
	prev := *e
	delete(s.unique, e.Key())

	e.Subject = subject
	if _, taken := s.unique[e.Key()]; taken {
		*e = prev
		s.unique[e.Key()] = e.ID
		return domain.ErrConflictingEvent
	}
	s.unique[e.Key()] = e.ID
	return nil
}
