package domain

import (
	"errors"
	"time"

	"planner-backend/pkg/datatypes"

	"gorm.io/gorm"
)

// Category classifies an event
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryMeeting  Category = "meeting"
	CategoryOther    Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryMeeting, CategoryOther:
		return true
	}
	return false
}

const (
	MaxTitleLength = 200
	MaxTimeLength  = 5
	MaxColorLength = 20
)

// Event is a calendar entry owned by a single user
type Event struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"-" gorm:"index;not null"`
	Title     string         `json:"title" gorm:"size:200;not null"`
	Date      datatypes.Date `json:"date" gorm:"not null;index"`
	StartTime string         `json:"start_time" gorm:"size:5;not null"`
	EndTime   string         `json:"end_time" gorm:"size:5;not null"`
	Category  Category       `json:"category" gorm:"size:20;default:work"`
	Completed bool           `json:"completed" gorm:"default:false"`
	Color     *string        `json:"color" gorm:"size:20"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

var (
	ErrOwnerRequired     = errors.New("event owner is required")
	ErrTitleRequired     = errors.New("title is required")
	ErrDateRequired      = errors.New("date is required")
	ErrStartTimeRequired = errors.New("start_time is required")
	ErrEndTimeRequired   = errors.New("end_time is required")
	ErrTimeTooLong       = errors.New("times must be at most 5 characters")
)

// Validate checks the rules every stored event must satisfy. An empty
// title is allowed here; request input is checked for it separately.
func (e *Event) Validate() error {
	switch {
	case e.UserID == "":
		return ErrOwnerRequired
	case e.Date.IsZero():
		return ErrDateRequired
	case e.StartTime == "":
		return ErrStartTimeRequired
	case e.EndTime == "":
		return ErrEndTimeRequired
	case len(e.StartTime) > MaxTimeLength || len(e.EndTime) > MaxTimeLength:
		return ErrTimeTooLong
	}
	return nil
}

// BeforeSave runs Validate on every insert and full save.
func (e *Event) BeforeSave(tx *gorm.DB) error {
	return e.Validate()
}

// ExtractionResult holds the fields pulled out of a model reply. Nil
// pointers mean the model left the field out.
type ExtractionResult struct {
	Title     string
	Date      *string
	StartTime *string
	EndTime   *string
}
