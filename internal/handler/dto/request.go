package dto

type CreateCalendarRequest struct {
	Name     string `json:"name" binding:"required"`
	Timezone string `json:"timezone" binding:"required"`
}

type EditCalendarRequest struct {
	Property string `json:"property" binding:"required,oneof=name timezone"`
	Value    string `json:"value" binding:"required"`
}

// CreateEventRequest creates a single event on the active calendar. Either
// start+end or date must be given; the date-only form is the all-day
// convenience (08:00-17:00).
type CreateEventRequest struct {
	Subject string `json:"subject" binding:"required"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Date    string `json:"date"`
}

type CreateSeriesRequest struct {
	Subject        string `json:"subject" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	Weekdays       string `json:"weekdays" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date"`
	Count          int    `json:"count"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	LocationDetail string `json:"location_detail"`
	Status         string `json:"status"`
}

type EditEventRequest struct {
	Property string `json:"property" binding:"required"`
	Value    string `json:"value"`
}

// EditSeriesRequest edits a series pattern and its members. With From set
// (a date-time), only members starting at-or-after it change.
type EditSeriesRequest struct {
	Property string `json:"property" binding:"required"`
	Value    string `json:"value"`
	From     string `json:"from"`
}

type CopyEventRequest struct {
	Subject        string `json:"subject" binding:"required"`
	SourceStart    string `json:"source_start" binding:"required"`
	TargetCalendar string `json:"target_calendar" binding:"required"`
	TargetStart    string `json:"target_start" binding:"required"`
}

type CopyDayRequest struct {
	SourceDate     string `json:"source_date" binding:"required"`
	TargetCalendar string `json:"target_calendar" binding:"required"`
	TargetDate     string `json:"target_date" binding:"required"`
}

type CopyRangeRequest struct {
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	TargetCalendar  string `json:"target_calendar" binding:"required"`
	TargetStartDate string `json:"target_start_date" binding:"required"`
}
