package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCalendar(c *ginext.Context)
	ListCalendars(c *ginext.Context)
	EditCalendar(c *ginext.Context)
	SelectCalendar(c *ginext.Context)
	ExportCalendar(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CheckBusy(c *ginext.Context)
	FindEvents(c *ginext.Context)
	EditEvent(c *ginext.Context)
	CreateSeries(c *ginext.Context)
	GetSeries(c *ginext.Context)
	EditSeries(c *ginext.Context)
	CopyEvent(c *ginext.Context)
	CopyDay(c *ginext.Context)
	CopyRange(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Calendars
		api.POST("/calendars", h.CreateCalendar)
		api.GET("/calendars", h.ListCalendars)
		api.PATCH("/calendars/:name", h.EditCalendar)
		api.POST("/calendars/:name/select", h.SelectCalendar)
		api.GET("/calendars/:name/export.ics", h.ExportCalendar)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/busy", h.CheckBusy)
		api.GET("/events/find", h.FindEvents)
		api.PATCH("/events/:id", h.EditEvent)

		// Series
		api.POST("/events/series", h.CreateSeries)
		api.GET("/series/:id", h.GetSeries)
		api.PATCH("/series/:id", h.EditSeries)

		// Copies
		api.POST("/copy/event", h.CopyEvent)
		api.POST("/copy/day", h.CopyDay)
		api.POST("/copy/range", h.CopyRange)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
