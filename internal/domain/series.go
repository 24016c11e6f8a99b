package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Series is a recurrence pattern: it remembers how its occurrences are laid
// out but never owns the generated events. Occurrences point back via
// Event.SeriesID; the member set is recovered by scanning the store.
type Series struct {
	ID             string         `json:"id"`
	Subject        string         `json:"subject"`
	StartClock     time.Duration  `json:"start_clock"` // offset from midnight
	Duration       time.Duration  `json:"duration"`
	Weekdays       []time.Weekday `json:"weekdays"`
	StartDate      time.Time      `json:"start_date"`
	EndDate        time.Time      `json:"end_date,omitempty"` // zero when count-terminated; inclusive
	Count          int            `json:"count,omitempty"`    // zero when date-terminated
	Description    string         `json:"description,omitempty"`
	Location       Location       `json:"location,omitempty"`
	LocationDetail string         `json:"location_detail,omitempty"`
	Status         Status         `json:"status,omitempty"`
}

// EndClock is the time-of-day at which each occurrence ends.
func (s *Series) EndClock() time.Duration {
	return s.StartClock + s.Duration
}

// Validate enforces the structural invariants: a non-empty weekday set,
// exactly one termination condition, and a duration that keeps every
// occurrence inside its calendar day.
func (s *Series) Validate() error {
	if len(s.Weekdays) == 0 {
		return fmt.Errorf("%w: at least one recurrence weekday is required", ErrInvalidSeries)
	}
	hasEnd := !s.EndDate.IsZero()
	hasCount := s.Count > 0
	if hasEnd == hasCount {
		return fmt.Errorf("%w: exactly one of end date or occurrence count must be set", ErrInvalidSeries)
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: end time is before start time", ErrInvalidSeries)
	}
	if s.EndClock() > 24*time.Hour {
		return fmt.Errorf("%w: occurrences would cross midnight", ErrInvalidSeries)
	}
	return nil
}

// CreateSeriesInput carries the parsed arguments for series creation.
// StartClock/EndClock are time-of-day offsets from midnight; StartDate and
// EndDate matter only for their calendar date. EndDate stays zero when the
// series terminates by Count.
type CreateSeriesInput struct {
	Subject        string
	StartClock     time.Duration
	EndClock       time.Duration
	Weekdays       []time.Weekday
	StartDate      time.Time
	EndDate        time.Time
	Count          int
	Description    string
	Location       Location
	LocationDetail string
	Status         Status
}

// ParseWeekdays reads a comma-separated weekday list. Both three-letter
// (MON..SUN) and the single-letter forms M,T,W,R,F,S,U are accepted,
// case-insensitively. Duplicates collapse.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool)
	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		wd, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToUpper(s) {
	case "MON", "M":
		return time.Monday, nil
	case "TUE", "T":
		return time.Tuesday, nil
	case "WED", "W":
		return time.Wednesday, nil
	case "THU", "R":
		return time.Thursday, nil
	case "FRI", "F":
		return time.Friday, nil
	case "SAT", "S":
		return time.Saturday, nil
	case "SUN", "U":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("%w: weekday %q", ErrInvalidEnum, s)
	}
}

// ParseClock reads a HH:MM time-of-day as an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: time of day %q (want HH:MM)", ErrValidation, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// FormatClock renders a time-of-day offset as HH:MM.
func FormatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// FormatWeekdays renders weekdays in the three-letter comma-separated form.
func FormatWeekdays(days []time.Weekday) string {
	names := map[time.Weekday]string{
		time.Monday:    "MON",
		time.Tuesday:   "TUE",
		time.Wednesday: "WED",
		time.Thursday:  "THU",
		time.Friday:    "FRI",
		time.Saturday:  "SAT",
		time.Sunday:    "SUN",
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, names[d])
	}
	return strings.Join(parts, ",")
}
