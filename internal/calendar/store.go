package calendar

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

// Defaults applied when an event is created without explicit times
// (the "all day" convenience form).
const (
	allDayStartClock = 8 * time.Hour
	allDayEndClock   = 17 * time.Hour
)

// Store is the in-memory event store for a single calendar. It owns three
// structures that must always agree on membership: a per-day bucket index
// (an event appears under every calendar day it touches), the uniqueness
// set over (subject, start, end), and the id lookup. A registry of series
// patterns lives alongside them.
//
// Edits are remove-then-reinsert sequences, so a single mutex guards every
// operation; no intermediate state is observable.
type Store struct {
	mu     sync.Mutex
	loc    *time.Location
	byDay  map[string]map[string]*domain.Event // day key -> event id -> event
	unique map[domain.EventKey]string          // duplicate identity -> event id
	byID   map[string]*domain.Event
	series map[string]*domain.Series
	log    logger.Logger
}

func NewStore(loc *time.Location, log logger.Logger) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		loc:    loc,
		byDay:  make(map[string]map[string]*domain.Event),
		unique: make(map[domain.EventKey]string),
		byID:   make(map[string]*domain.Event),
		series: make(map[string]*domain.Series),
		log:    log,
	}
}

// Location is the zone in which this calendar interprets wall-clock text.
func (s *Store) Location() *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc
}

// SetLocation changes the calendar's zone. Stored events keep their
// instants; only future parsing and copy conversions observe the change.
func (s *Store) SetLocation(loc *time.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loc = loc
}

// CreateEvent adds a standalone event and returns it with its new id.
func (s *Store) CreateEvent(subject string, start, end time.Time) (domain.Event, error) {
	return s.Add(domain.Event{Subject: subject, Start: start, End: end})
}

// CreateAllDayEvent adds a standalone event spanning the conventional
// working day (08:00 to 17:00) of day's calendar date.
func (s *Store) CreateAllDayEvent(subject string, day time.Time) (domain.Event, error) {
	return s.Add(domain.Event{
		Subject: subject,
		Start:   domain.OnDay(day, allDayStartClock),
		End:     domain.OnDay(day, allDayEndClock),
	})
}

// Add validates and inserts a prebuilt event, assigning an id when the
// caller did not. Used directly by the cross-calendar copy operations.
func (s *Store) Add(e domain.Event) (domain.Event, error) {
	if strings.TrimSpace(e.Subject) == "" {
		return domain.Event{}, fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}
	if e.Start.After(e.End) {
		return domain.Event{}, domain.ErrInvalidRange
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertLocked(&e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

// EventsOn lists the events indexed under date's calendar day, ordered by
// start time.
func (s *Store) EventsOn(date time.Time) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortEvents(s.eventsOnLocked(date))
}

// EventsInRange lists events whose [start, end) interval overlaps
// [from, to). Events spanning several days are reported once.
func (s *Store) EventsInRange(from, to time.Time) ([]domain.Event, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var out []domain.Event
	for day := domain.Midnight(from); !day.After(to); day = day.AddDate(0, 0, 1) {
		for _, e := range s.byDay[dayKey(day)] {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			if e.Overlaps(from, to) {
				out = append(out, *e)
			}
		}
	}
	return sortEvents(out), nil
}

// FindBySubjectAndStart matches on case-insensitive subject and exact start.
func (s *Store) FindBySubjectAndStart(subject string, start time.Time) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Event
	for _, e := range s.byDay[dayKey(start)] {
		if strings.EqualFold(e.Subject, subject) && e.Start.Equal(start) {
			out = append(out, *e)
		}
	}
	return sortEvents(out)
}

// FindByDetails additionally requires an exact end match.
func (s *Store) FindByDetails(subject string, start, end time.Time) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Event
	for _, e := range s.byDay[dayKey(start)] {
		if strings.EqualFold(e.Subject, subject) && e.Start.Equal(start) && e.End.Equal(end) {
			out = append(out, *e)
		}
	}
	return sortEvents(out)
}

// IsBusyAt reports whether any event occupies the instant. Occupancy is
// half-open: the end instant itself is free unless the event has zero
// duration.
func (s *Store) IsBusyAt(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.byDay[dayKey(t)] {
		if e.OccupiesAt(t) {
			return true
		}
	}
	return false
}

// EventByID returns a copy of the stored event.
func (s *Store) EventByID(id string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}
	return *e, nil
}

// SeriesByID returns a copy of the stored series pattern.
func (s *Store) SeriesByID(id string) (domain.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr, ok := s.series[id]
	if !ok {
		return domain.Series{}, domain.ErrNotFound
	}
	return *sr, nil
}

// Events returns every stored event, ordered by start time.
func (s *Store) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Event, 0, len(s.byID))
	for _, e := range s.byID {
		out = append(out, *e)
	}
	return sortEvents(out)
}

// --- locked internals ---

func (s *Store) eventsOnLocked(date time.Time) []domain.Event {
	bucket := s.byDay[dayKey(date)]
	out := make([]domain.Event, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, *e)
	}
	return out
}

// insertLocked adds the event to all three structures, or to none.
func (s *Store) insertLocked(e *domain.Event) error {
	if _, ok := s.unique[e.Key()]; ok {
		return domain.ErrDuplicateEvent
	}
	s.unique[e.Key()] = e.ID
	s.byID[e.ID] = e
	s.indexDaysLocked(e)
	return nil
}

func (s *Store) indexDaysLocked(e *domain.Event) {
	for _, key := range spannedDays(e.Start, e.End) {
		bucket := s.byDay[key]
		if bucket == nil {
			bucket = make(map[string]*domain.Event)
			s.byDay[key] = bucket
		}
		bucket[e.ID] = e
	}
}

func (s *Store) unindexDaysLocked(id string, start, end time.Time) {
	for _, key := range spannedDays(start, end) {
		delete(s.byDay[key], id)
		if len(s.byDay[key]) == 0 {
			delete(s.byDay, key)
		}
	}
}

func dayKey(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// spannedDays lists the day keys from start's date to end's date inclusive.
func spannedDays(start, end time.Time) []string {
	var keys []string
	last := dayKey(end)
	for day := domain.Midnight(start); ; day = day.AddDate(0, 0, 1) {
		key := dayKey(day)
		keys = append(keys, key)
		if key == last {
			return keys
		}
	}
}

func sortEvents(events []domain.Event) []domain.Event {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		if events[i].Subject != events[j].Subject {
			return events[i].Subject < events[j].Subject
		}
		return events[i].ID < events[j].ID
	})
	return events
}
