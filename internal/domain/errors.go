package domain

import "errors"

var (
	ErrInvalidRange     = errors.New("start must not be after end")
	ErrDuplicateEvent   = errors.New("an event with the same subject, start and end already exists")
	ErrConflictingEvent = errors.New("edit collides with an existing event")
	ErrNotFound         = errors.New("event not found")
	ErrAmbiguousMatch   = errors.New("more than one event matches")
)

var (
	ErrInvalidSeries = errors.New("invalid series definition")
	ErrSeriesSpan    = errors.New("series occurrence crosses a day boundary")
)

var (
	ErrNoActiveCalendar = errors.New("no active calendar selected")
	ErrCalendarNotFound = errors.New("calendar not found")
)

var (
	ErrInvalidEnum = errors.New("invalid enum value")
	ErrValidation  = errors.New("validation error")
)
