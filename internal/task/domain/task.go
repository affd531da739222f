package domain

import (
	"errors"
	"time"

	"planner-backend/pkg/datatypes"

	"gorm.io/gorm"
)

// Tag groups tasks on the board
type Tag string

const (
	TagDueSoon Tag = "Due soon"
	TagInbox   Tag = "Inbox"
)

func (t Tag) Valid() bool {
	return t == TagDueSoon || t == TagInbox
}

const MaxDurationLength = 10

// Task represents a to-do item with a due date and an estimated duration
type Task struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"-" gorm:"index;not null"`
	Title     string         `json:"title" gorm:"size:200;not null"`
	DueDate   datatypes.Date `json:"due_date" gorm:"not null;index"`
	Duration  string         `json:"duration" gorm:"size:10;not null"` // e.g. "2h", "30m", "1h 30m"
	Tag       Tag            `json:"tag" gorm:"size:20;default:Inbox"`
	Completed bool           `json:"completed" gorm:"default:false"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

var (
	ErrOwnerRequired   = errors.New("task owner is required")
	ErrTitleRequired   = errors.New("title is required")
	ErrDueDateRequired = errors.New("due_date is required")
	ErrDurationTooLong = errors.New("duration must be at most 10 characters")
	ErrUnknownTag      = errors.New(`tag must be "Due soon" or "Inbox"`)
)

func (t *Task) Validate() error {
	switch {
	case t.UserID == "":
		return ErrOwnerRequired
	case t.Title == "":
		return ErrTitleRequired
	case t.DueDate.IsZero():
		return ErrDueDateRequired
	case len(t.Duration) > MaxDurationLength:
		return ErrDurationTooLong
	case t.Tag != "" && !t.Tag.Valid():
		return ErrUnknownTag
	}
	return nil
}

func (t *Task) BeforeSave(tx *gorm.DB) error {
	return t.Validate()
}
