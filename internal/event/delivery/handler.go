package delivery

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"planner-backend/internal/event/domain"
	"planner-backend/internal/event/usecase"

	"github.com/gin-gonic/gin"
)

// maxImportSize caps an uploaded .ics body.
const maxImportSize = 2 << 20

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventUsecase usecase.EventUsecase
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventUsecase usecase.EventUsecase) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
	}
}

// GetEvents returns the authenticated user's events
// GET /api/events?date=&from=&to=&category=&completed=&q=
func (h *EventHandler) GetEvents(c *gin.Context) {
	userID := c.GetString("userID")

	var query usecase.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.eventUsecase.ListEvents(userID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEventByID returns a specific event
// GET /api/events/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	event, err := h.eventUsecase.GetEvent(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent creates a new event
// POST /api/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventUsecase.CreateEvent(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent updates an existing event. PUT and PATCH both apply only
// the fields present in the body.
// PUT|PATCH /api/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID := c.GetString("userID")
	eventID := c.Param("id")

	var updates usecase.EventUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventUsecase.UpdateEvent(userID, eventID, updates)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes an event
// DELETE /api/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventUsecase.DeleteEvent(c.GetString("userID"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportEvents downloads all events as an iCalendar file
// GET /api/events/export
func (h *EventHandler) ExportEvents(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.eventUsecase.ExportICS(c.GetString("userID"), &buf); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// ImportEvents creates events from an iCalendar body
// POST /api/events/import
func (h *EventHandler) ImportEvents(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	events, err := h.eventUsecase.ImportICS(c.GetString("userID"), body)
	if err != nil {
		respondError(c, err)
		return
	}

	if events == nil {
		events = []*domain.Event{}
	}
	c.JSON(http.StatusCreated, gin.H{
		"imported": len(events),
		"events":   events,
	})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[EventHandler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
