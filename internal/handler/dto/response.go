package dto

import (
	"github.com/akarev0/MultiCalendar/internal/coordinator"
	"github.com/akarev0/MultiCalendar/internal/domain"
)

type EventResponse struct {
	ID             string `json:"id"`
	Subject        string `json:"subject"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location"`
	LocationDetail string `json:"location_detail,omitempty"`
	Status         string `json:"status"`
	SeriesID       string `json:"series_id,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Subject:        e.Subject,
		Start:          e.Start.Format(domain.DateTimeLayout),
		End:            e.End.Format(domain.DateTimeLayout),
		Description:    e.Description,
		Location:       string(e.Location),
		LocationDetail: e.LocationDetail,
		Status:         string(e.Status),
		SeriesID:       e.SeriesID,
	}
}

func ToEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, ToEventResponse(&events[i]))
	}
	return out
}

type SeriesResponse struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Weekdays  string `json:"weekdays"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Count     int    `json:"count,omitempty"`
}

func ToSeriesResponse(s *domain.Series) SeriesResponse {
	resp := SeriesResponse{
		ID:        s.ID,
		Subject:   s.Subject,
		StartTime: domain.FormatClock(s.StartClock),
		EndTime:   domain.FormatClock(s.EndClock()),
		Weekdays:  domain.FormatWeekdays(s.Weekdays),
		StartDate: s.StartDate.Format(domain.DateLayout),
		Count:     s.Count,
	}
	if !s.EndDate.IsZero() {
		resp.EndDate = s.EndDate.Format(domain.DateLayout)
	}
	return resp
}

type CalendarResponse struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Active   bool   `json:"active"`
}

func ToCalendarResponse(info coordinator.CalendarInfo) CalendarResponse {
	return CalendarResponse{
		Name:     info.Name,
		Timezone: info.Timezone,
		Active:   info.Active,
	}
}

type CopyFailureResponse struct {
	Subject string `json:"subject"`
	Start   string `json:"start"`
	Reason  string `json:"reason"`
}

type CopyReportResponse struct {
	Copied   []EventResponse       `json:"copied"`
	Failures []CopyFailureResponse `json:"failures,omitempty"`
}

func ToCopyReportResponse(report coordinator.CopyReport) CopyReportResponse {
	resp := CopyReportResponse{Copied: make([]EventResponse, 0, len(report.Copied))}
	for i := range report.Copied {
		resp.Copied = append(resp.Copied, ToEventResponse(&report.Copied[i]))
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, CopyFailureResponse{
			Subject: f.Subject,
			Start:   f.Start.Format(domain.DateTimeLayout),
			Reason:  f.Reason,
		})
	}
	return resp
}

type BusyResponse struct {
	Busy bool `json:"busy"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
