package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultTheme   = "dark"
	MaxThemeLength = 20
)

// Owner is the public part of the user a profile belongs to
type Owner struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile stores per-user preferences. Each user has at most one.
type Profile struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"-" gorm:"uniqueIndex;not null"`
	User            *Owner    `json:"user" gorm:"-"`
	ThemePreference string    `json:"theme_preference" gorm:"size:20;default:dark"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

var ErrThemeTooLong = errors.New("theme_preference must be at most 20 characters")

func (p *Profile) BeforeSave(tx *gorm.DB) error {
	if p.UserID == "" {
		return errors.New("profile owner is required")
	}
	if len(p.ThemePreference) > MaxThemeLength {
		return ErrThemeTooLong
	}
	return nil
}
