package usecase

import (
	"context"
	"io"

	"planner-backend/internal/event/domain"
)

// EventUsecase defines the interface for event business logic
type EventUsecase interface {
	// ListEvents returns the user's events matching the query
	ListEvents(userID string, query ListQuery) ([]*domain.Event, error)

	// GetEvent retrieves one of the user's events
	GetEvent(userID, eventID string) (*domain.Event, error)

	CreateEvent(userID string, req EventCreateRequest) (*domain.Event, error)

	// UpdateEvent applies only the fields set in updates
	UpdateEvent(userID, eventID string, updates EventUpdateRequest) (*domain.Event, error)

	DeleteEvent(userID, eventID string) error

	// ExportICS writes all of the user's events as an iCalendar feed
	ExportICS(userID string, w io.Writer) error

	// ImportICS creates one event per timed VEVENT in r, all or nothing
	ImportICS(userID string, r io.Reader) ([]*domain.Event, error)
}

// ChatUsecase turns free text into a stored event
type ChatUsecase interface {
	CreateEventFromQuery(ctx context.Context, userID, query string) (*domain.Event, error)
}

// Extractor returns the raw model reply for a free text description
type Extractor interface {
	Extract(ctx context.Context, query string) (string, error)
}

// ListQuery holds the raw list filters from the query string
type ListQuery struct {
	Date      string `form:"date"`
	From      string `form:"from"`
	To        string `form:"to"`
	Category  string `form:"category"`
	Completed string `form:"completed"`
	Search    string `form:"q"`
}

// EventCreateRequest represents the request body for creating an event
type EventCreateRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required,clock"`
	EndTime   string  `json:"end_time" binding:"required,clock"`
	Category  string  `json:"category" binding:"omitempty,oneof=work personal meeting other"`
	Completed bool    `json:"completed"`
	Color     *string `json:"color" binding:"omitempty,max=20"`
}

// EventUpdateRequest represents the fields that can be updated
type EventUpdateRequest struct {
	Title     *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty" binding:"omitempty,clock"`
	EndTime   *string `json:"end_time,omitempty" binding:"omitempty,clock"`
	Category  *string `json:"category,omitempty" binding:"omitempty,oneof=work personal meeting other"`
	Completed *bool   `json:"completed,omitempty"`
	Color     *string `json:"color,omitempty" binding:"omitempty,max=20"`
}
