package coordinator

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/calendar"
	"github.com/akarev0/MultiCalendar/internal/domain"
)

// Calendar pairs one event store with its display name and zone.
type Calendar struct {
	Name  string
	Store *calendar.Store
}

// Coordinator holds the named calendars and the active-calendar selection,
// and implements the cross-calendar copy operations. It composes stores
// through their public contract only.
type Coordinator struct {
	mu        sync.Mutex
	calendars map[string]*Calendar // keyed by lowercase name
	active    string               // lowercase name, empty when none selected
	log       logger.Logger
}

func New(log logger.Logger) *Coordinator {
	return &Coordinator{
		calendars: make(map[string]*Calendar),
		log:       log,
	}
}

// CreateCalendar registers a new calendar under a unique name with an IANA
// timezone.
func (c *Coordinator) CreateCalendar(name, timezone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: calendar name is required", domain.ErrValidation)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("%w: unknown timezone %q", domain.ErrValidation, timezone)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := c.calendars[key]; ok {
		return fmt.Errorf("%w: calendar %q already exists", domain.ErrValidation, name)
	}
	c.calendars[key] = &Calendar{Name: name, Store: calendar.NewStore(loc, c.log)}
	c.log.Info("calendar created",
		logger.String("name", name),
		logger.String("timezone", timezone),
	)
	return nil
}

// RenameCalendar moves a calendar to a new unique name, keeping its store.
func (c *Coordinator) RenameCalendar(name, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: calendar name is required", domain.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(name)
	cal, ok := c.calendars[key]
	if !ok {
		return domain.ErrCalendarNotFound
	}
	newKey := strings.ToLower(newName)
	if newKey != key {
		if _, taken := c.calendars[newKey]; taken {
			return fmt.Errorf("%w: calendar %q already exists", domain.ErrValidation, newName)
		}
		delete(c.calendars, key)
		c.calendars[newKey] = cal
		if c.active == key {
			c.active = newKey
		}
	}
	cal.Name = newName
	return nil
}

// RetimeCalendar changes a calendar's timezone. Stored events keep their
// instants; parsing and copy conversion pick up the new zone.
func (c *Coordinator) RetimeCalendar(name, timezone string) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("%w: unknown timezone %q", domain.ErrValidation, timezone)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cal, ok := c.calendars[strings.ToLower(name)]
	if !ok {
		return domain.ErrCalendarNotFound
	}
	cal.Store.SetLocation(loc)
	return nil
}

// Select makes the named calendar the active source for event operations.
func (c *Coordinator) Select(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := c.calendars[key]; !ok {
		return domain.ErrCalendarNotFound
	}
	c.active = key
	return nil
}

// Active returns the currently selected calendar.
func (c *Coordinator) Active() (*Calendar, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeLocked()
}

// Calendar resolves a calendar by name.
func (c *Coordinator) Calendar(name string) (*Calendar, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cal, ok := c.calendars[strings.ToLower(name)]
	if !ok {
		return nil, domain.ErrCalendarNotFound
	}
	return cal, nil
}

// CalendarInfo is the listing row for one calendar.
type CalendarInfo struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Active   bool   `json:"active"`
}

// List reports every calendar, sorted by name.
func (c *Coordinator) List() []CalendarInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CalendarInfo, 0, len(c.calendars))
	for key, cal := range c.calendars {
		out = append(out, CalendarInfo{
			Name:     cal.Name,
			Timezone: cal.Store.Location().String(),
			Active:   key == c.active,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Coordinator) activeLocked() (*Calendar, error) {
	if c.active == "" {
		return nil, domain.ErrNoActiveCalendar
	}
	cal, ok := c.calendars[c.active]
	if !ok {
		return nil, domain.ErrNoActiveCalendar
	}
	return cal, nil
}

// Upcoming lists events on the active calendar starting within the window
// [now, now+within), for the reminder scanner.
func (c *Coordinator) Upcoming(within time.Duration) ([]domain.Event, error) {
	cal, err := c.Active()
	if err != nil {
		return nil, err
	}
	now := time.Now().In(cal.Store.Location())
	events, err := cal.Store.EventsInRange(now, now.Add(within))
	if err != nil {
		return nil, err
	}
	// Only events actually starting inside the window; in-progress ones
	// already had their reminder.
	out := events[:0]
	for _, e := range events {
		if !e.Start.Before(now) {
			out = append(out, e)
		}
	}
	return out, nil
}

// source/target resolves the pair every copy operation needs.
func (c *Coordinator) sourceTarget(targetName string) (*Calendar, *Calendar, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, err := c.activeLocked()
	if err != nil {
		return nil, nil, err
	}
	tgt, ok := c.calendars[strings.ToLower(targetName)]
	if !ok {
		return nil, nil, domain.ErrCalendarNotFound
	}
	return src, tgt, nil
}
