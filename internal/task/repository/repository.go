package repository

import "planner-backend/internal/task/domain"

// TaskFilter narrows a user's task list. Nil fields are ignored.
type TaskFilter struct {
	Tag       *domain.Tag
	Completed *bool
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID returns nil when the task is missing or owned by another user
	FindByID(userID, id string) (*domain.Task, error)

	// FindByUserID finds all tasks for a user ordered by due date
	FindByUserID(userID string, filter TaskFilter) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete reports whether a task was removed
	Delete(userID, id string) (bool, error)
}
