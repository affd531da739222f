package repository

import (
	"planner-backend/internal/event/domain"
	"planner-backend/pkg/datatypes"
)

// EventFilter narrows a user's event list. Nil fields are ignored.
type EventFilter struct {
	Date      *datatypes.Date
	From      *datatypes.Date
	To        *datatypes.Date
	Category  *domain.Category
	Completed *bool
}

// EventRepository defines the interface for event data access.
// Every read and write is scoped to the owning user.
type EventRepository interface {
	// Create inserts a single event
	Create(event *domain.Event) error

	// CreateBatch inserts all events in one transaction, or none of them
	CreateBatch(events []*domain.Event) error

	// FindByID returns nil when the event does not exist or belongs to someone else
	FindByID(userID, id string) (*domain.Event, error)

	// FindByUserID lists a user's events ordered by date, then start time
	FindByUserID(userID string, filter EventFilter) ([]*domain.Event, error)

	Update(event *domain.Event) error

	// Delete reports whether a row was removed
	Delete(userID, id string) (bool, error)
}
