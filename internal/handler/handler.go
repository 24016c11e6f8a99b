package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/akarev0/MultiCalendar/internal/coordinator"
	"github.com/akarev0/MultiCalendar/internal/domain"
	"github.com/akarev0/MultiCalendar/internal/export"
	"github.com/akarev0/MultiCalendar/internal/handler/dto"
)

type Handler struct {
	coord *coordinator.Coordinator
}

func NewHandler(coord *coordinator.Coordinator) *Handler {
	return &Handler{coord: coord}
}

// Calendars

func (h *Handler) CreateCalendar(c *ginext.Context) {
	var req dto.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.coord.CreateCalendar(req.Name, req.Timezone); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"name": req.Name})
}

func (h *Handler) ListCalendars(c *ginext.Context) {
	infos := h.coord.List()

	resp := make([]dto.CalendarResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, dto.ToCalendarResponse(info))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) EditCalendar(c *ginext.Context) {
	name := c.Param("name")

	var req dto.EditCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var err error
	switch req.Property {
	case "name":
		err = h.coord.RenameCalendar(name, req.Value)
	case "timezone":
		err = h.coord.RetimeCalendar(name, req.Value)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) SelectCalendar(c *ginext.Context) {
	if err := h.coord.Select(c.Param("name")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "selected"})
}

func (h *Handler) ExportCalendar(c *ginext.Context) {
	cal, err := h.coord.Calendar(c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(export.ICS(cal.Store.Events())))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	var event domain.Event
	switch {
	case req.Date != "":
		day, err := h.parseDate(cal, req.Date)
		if err != nil {
			h.handleError(c, err)
			return
		}
		event, err = cal.Store.CreateAllDayEvent(req.Subject, day)
		if err != nil {
			h.handleError(c, err)
			return
		}
	case req.Start != "" && req.End != "":
		start, err := h.parseDateTime(cal, req.Start)
		if err != nil {
			h.handleError(c, err)
			return
		}
		end, err := h.parseDateTime(cal, req.End)
		if err != nil {
			h.handleError(c, err)
			return
		}
		event, err = cal.Store.CreateEvent(req.Subject, start, end)
		if err != nil {
			h.handleError(c, err)
			return
		}
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "either start and end, or date, must be provided",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(&event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	if date := c.Query("date"); date != "" {
		day, err := h.parseDate(cal, date)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToEventResponses(cal.Store.EventsOn(day)))
		return
	}

	from, err := h.parseDateTime(cal, c.Query("from"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	to, err := h.parseDateTime(cal, c.Query("to"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	events, err := cal.Store.EventsInRange(from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) CheckBusy(c *ginext.Context) {
	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	at, err := h.parseDateTime(cal, c.Query("at"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BusyResponse{Busy: cal.Store.IsBusyAt(at)})
}

func (h *Handler) FindEvents(c *ginext.Context) {
	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	subject := c.Query("subject")
	start, err := h.parseDateTime(cal, c.Query("start"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	var events []domain.Event
	if endValue := c.Query("end"); endValue != "" {
		end, err := h.parseDateTime(cal, endValue)
		if err != nil {
			h.handleError(c, err)
			return
		}
		events = cal.Store.FindByDetails(subject, start, end)
	} else {
		events = cal.Store.FindBySubjectAndStart(subject, start)
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) EditEvent(c *ginext.Context) {
	var req dto.EditEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	prop, err := domain.ParseProperty(req.Property)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := cal.Store.EditEvent(c.Param("id"), prop, req.Value)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(&event))
}

// Series

func (h *Handler) CreateSeries(c *ginext.Context) {
	var req dto.CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	input, err := h.seriesInput(cal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	series, err := cal.Store.CreateSeries(input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSeriesResponse(&series))
}

func (h *Handler) GetSeries(c *ginext.Context) {
	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	series, err := cal.Store.SeriesByID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSeriesResponse(&series))
}

func (h *Handler) EditSeries(c *ginext.Context) {
	var req dto.EditSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cal, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}

	prop, err := domain.ParseProperty(req.Property)
	if err != nil {
		h.handleError(c, err)
		return
	}

	id := c.Param("id")
	if req.From != "" {
		from, err := h.parseDateTime(cal, req.From)
		if err != nil {
			h.handleError(c, err)
			return
		}
		err = cal.Store.EditSeriesFromDate(id, prop, req.Value, from)
		if err != nil {
			h.handleError(c, err)
			return
		}
	} else if err := cal.Store.EditSeries(id, prop, req.Value); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

// Copies

func (h *Handler) CopyEvent(c *ginext.Context) {
	var req dto.CopyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	src, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}
	tgt, err := h.coord.Calendar(req.TargetCalendar)
	if err != nil {
		h.handleError(c, err)
		return
	}

	sourceStart, err := h.parseDateTime(src, req.SourceStart)
	if err != nil {
		h.handleError(c, err)
		return
	}
	targetStart, err := h.parseDateTime(tgt, req.TargetStart)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.coord.CopyEvent(req.Subject, sourceStart, req.TargetCalendar, targetStart)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(&event))
}

func (h *Handler) CopyDay(c *ginext.Context) {
	var req dto.CopyDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	src, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}
	tgt, err := h.coord.Calendar(req.TargetCalendar)
	if err != nil {
		h.handleError(c, err)
		return
	}

	sourceDate, err := h.parseDate(src, req.SourceDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	targetDate, err := h.parseDate(tgt, req.TargetDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	report, err := h.coord.CopyEventsOnDate(sourceDate, req.TargetCalendar, targetDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCopyReportResponse(report))
}

func (h *Handler) CopyRange(c *ginext.Context) {
	var req dto.CopyRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	src, err := h.coord.Active()
	if err != nil {
		h.handleError(c, err)
		return
	}
	tgt, err := h.coord.Calendar(req.TargetCalendar)
	if err != nil {
		h.handleError(c, err)
		return
	}

	startDate, err := h.parseDate(src, req.StartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	endDate, err := h.parseDate(src, req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	targetStartDate, err := h.parseDate(tgt, req.TargetStartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	report, err := h.coord.CopyEventsBetweenDates(startDate, endDate, req.TargetCalendar, targetStartDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCopyReportResponse(report))
}

func (h *Handler) seriesInput(cal *coordinator.Calendar, req dto.CreateSeriesRequest) (domain.CreateSeriesInput, error) {
	startClock, err := domain.ParseClock(req.StartTime)
	if err != nil {
		return domain.CreateSeriesInput{}, err
	}
	endClock, err := domain.ParseClock(req.EndTime)
	if err != nil {
		return domain.CreateSeriesInput{}, err
	}
	weekdays, err := domain.ParseWeekdays(req.Weekdays)
	if err != nil {
		return domain.CreateSeriesInput{}, err
	}
	startDate, err := h.parseDate(cal, req.StartDate)
	if err != nil {
		return domain.CreateSeriesInput{}, err
	}

	input := domain.CreateSeriesInput{
		Subject:        req.Subject,
		StartClock:     startClock,
		EndClock:       endClock,
		Weekdays:       weekdays,
		StartDate:      startDate,
		Count:          req.Count,
		Description:    req.Description,
		LocationDetail: req.LocationDetail,
	}
	if req.EndDate != "" {
		input.EndDate, err = h.parseDate(cal, req.EndDate)
		if err != nil {
			return domain.CreateSeriesInput{}, err
		}
	}
	if req.Location != "" {
		input.Location, err = domain.ParseLocation(req.Location)
		if err != nil {
			return domain.CreateSeriesInput{}, err
		}
	}
	if req.Status != "" {
		input.Status, err = domain.ParseStatus(req.Status)
		if err != nil {
			return domain.CreateSeriesInput{}, err
		}
	}
	return input, nil
}

// parseDateTime reads a local date-time in the calendar's zone.
func (h *Handler) parseDateTime(cal *coordinator.Calendar, value string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateTimeLayout, value, cal.Store.Location())
	if err != nil {
		return time.Time{}, domain.ErrValidation
	}
	return t, nil
}

// parseDate reads a calendar date as midnight in the calendar's zone, so
// downstream day anchoring lands on the requested civil date.
func (h *Handler) parseDate(cal *coordinator.Calendar, value string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateLayout, value, cal.Store.Location())
	if err != nil {
		return time.Time{}, domain.ErrValidation
	}
	return t, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCalendarNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateEvent),
		errors.Is(err, domain.ErrConflictingEvent),
		errors.Is(err, domain.ErrAmbiguousMatch),
		errors.Is(err, domain.ErrNoActiveCalendar):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidSeries),
		errors.Is(err, domain.ErrSeriesSpan),
		errors.Is(err, domain.ErrInvalidEnum):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
