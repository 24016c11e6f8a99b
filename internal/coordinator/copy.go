package coordinator

import (
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/akarev0/MultiCalendar/internal/domain"
)

// CopyFailure records one event a batch copy could not place.
type CopyFailure struct {
	Subject string    `json:"subject"`
	Start   time.Time `json:"start"`
	Reason  string    `json:"reason"`
}

// CopyReport is the caller-visible outcome of a batch copy: what landed and
// what did not. Batches never abort on an individual failure, because later
// events are independent of earlier ones.
type CopyReport struct {
	Copied   []domain.Event `json:"copied"`
	Failures []CopyFailure  `json:"failures,omitempty"`
}

// CopyEvent copies exactly one event from the active calendar into the
// target at an explicit new start, preserving duration and every property
// except series membership: copies are always standalone.
func (c *Coordinator) CopyEvent(subject string, sourceStart time.Time, targetName string, targetStart time.Time) (domain.Event, error) {
	src, tgt, err := c.sourceTarget(targetName)
	if err != nil {
		return domain.Event{}, err
	}

	matches := src.Store.FindBySubjectAndStart(subject, sourceStart)
	switch {
	case len(matches) == 0:
		return domain.Event{}, domain.ErrNotFound
	case len(matches) > 1:
		return domain.Event{}, domain.ErrAmbiguousMatch
	}

	copied := retarget(matches[0], targetStart, targetStart.Add(matches[0].Duration()))
	return tgt.Store.Add(copied)
}

// CopyEventsOnDate copies every event indexed under sourceDate in the active
// calendar onto targetDate in the target calendar. Wall-clock times go
// through the source zone to the instant and out in the target zone; an
// event whose converted end lands on a later local date than its converted
// start rolls the end past targetDate by the same number of days.
func (c *Coordinator) CopyEventsOnDate(sourceDate time.Time, targetName string, targetDate time.Time) (CopyReport, error) {
	src, tgt, err := c.sourceTarget(targetName)
	if err != nil {
		return CopyReport{}, err
	}

	tgtLoc := tgt.Store.Location()
	targetDay := domain.Midnight(targetDate.In(tgtLoc))

	var report CopyReport
	for _, e := range src.Store.EventsOn(sourceDate) {
		localStart := e.Start.In(tgtLoc)
		localEnd := e.End.In(tgtLoc)

		newStart := domain.OnDay(targetDay, domain.ClockOf(localStart))
		endDay := targetDay.AddDate(0, 0, domain.DaysBetween(localStart, localEnd))
		newEnd := domain.OnDay(endDay, domain.ClockOf(localEnd))

		c.record(&report, tgt, retarget(e, newStart, newEnd))
	}
	return report, nil
}

// CopyEventsBetweenDates copies every event overlapping [startDate, endDate]
// in the active calendar, shifted by the constant day offset
// targetStartDate - startDate. Time-of-day is preserved; the wall clock is
// converted into the target zone first when the zones differ.
func (c *Coordinator) CopyEventsBetweenDates(startDate, endDate time.Time, targetName string, targetStartDate time.Time) (CopyReport, error) {
	if startDate.After(endDate) {
		return CopyReport{}, domain.ErrInvalidRange
	}
	src, tgt, err := c.sourceTarget(targetName)
	if err != nil {
		return CopyReport{}, err
	}

	from := domain.Midnight(startDate)
	to := domain.Midnight(endDate).AddDate(0, 0, 1) // end date inclusive
	events, err := src.Store.EventsInRange(from, to)
	if err != nil {
		return CopyReport{}, err
	}

	srcLoc := src.Store.Location()
	tgtLoc := tgt.Store.Location()
	offset := domain.DaysBetween(startDate, targetStartDate)

	var report CopyReport
	for _, e := range events {
		start, end := e.Start, e.End
		if srcLoc.String() != tgtLoc.String() {
			start = start.In(tgtLoc)
			end = end.In(tgtLoc)
		}
		newStart := domain.OnDay(start.AddDate(0, 0, offset), domain.ClockOf(start))
		newEnd := domain.OnDay(end.AddDate(0, 0, offset), domain.ClockOf(end))

		c.record(&report, tgt, retarget(e, newStart, newEnd))
	}
	return report, nil
}

// record attempts one insert and folds the outcome into the report.
func (c *Coordinator) record(report *CopyReport, tgt *Calendar, e domain.Event) {
	created, err := tgt.Store.Add(e)
	if err != nil {
		c.log.Warn("copy skipped event",
			logger.String("subject", e.Subject),
			logger.String("target", tgt.Name),
			logger.String("reason", err.Error()),
		)
		report.Failures = append(report.Failures, CopyFailure{
			Subject: e.Subject,
			Start:   e.Start,
			Reason:  err.Error(),
		})
		return
	}
	report.Copied = append(report.Copied, created)
}

// retarget rebuilds an event at new times with a fresh identity and no
// series membership.
func retarget(e domain.Event, start, end time.Time) domain.Event {
	return domain.Event{
		Subject:        e.Subject,
		Start:          start,
		End:            end,
		Description:    e.Description,
		Location:       e.Location,
		LocationDetail: e.LocationDetail,
		Status:         e.Status,
	}
}
