package usecase

import (
	"errors"

	"planner-backend/internal/task/domain"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidInput = errors.New("invalid input")
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a task owned by userID
	CreateTask(userID string, req TaskCreateRequest) (*domain.Task, error)

	// GetTaskByID retrieves one of the user's tasks
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks retrieves the user's tasks matching the query
	GetUserTasks(userID string, query ListQuery) ([]*domain.Task, error)

	// UpdateTask updates an existing task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error
}

// ListQuery holds the raw list filters from the query string
type ListQuery struct {
	Tag       string `form:"tag"`
	Completed string `form:"completed"`
	Search    string `form:"q"`
}

// TaskCreateRequest represents the request body for creating a task
type TaskCreateRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	DueDate   string `json:"due_date" binding:"required"`
	Duration  string `json:"duration" binding:"required,max=10"`
	Tag       string `json:"tag" binding:"omitempty,oneof='Due soon' Inbox"`
	Completed bool   `json:"completed"`
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title     *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	DueDate   *string `json:"due_date,omitempty"`
	Duration  *string `json:"duration,omitempty" binding:"omitempty,max=10"`
	Tag       *string `json:"tag,omitempty" binding:"omitempty,oneof='Due soon' Inbox"`
	Completed *bool   `json:"completed,omitempty"`
}
