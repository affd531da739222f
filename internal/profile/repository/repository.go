package repository

import (
	"errors"
	"time"

	"planner-backend/internal/profile/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	Create(profile *domain.Profile) error

	// FindByUserID returns the user's profile with its owner filled in, or nil
	FindByUserID(userID string) (*domain.Profile, error)

	Update(profile *domain.Profile) error

	// Delete reports whether a profile was removed
	Delete(userID, id string) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of profileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// NewProfile builds an unsaved profile with default preferences.
func NewProfile(userID string) *domain.Profile {
	now := time.Now()
	return &domain.Profile{
		ID:              uuid.New().String(),
		UserID:          userID,
		ThemePreference: domain.DefaultTheme,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (r *profileRepository) Create(profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.ThemePreference == "" {
		profile.ThemePreference = domain.DefaultTheme
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	if err := r.db.Create(profile).Error; err != nil {
		return err
	}
	return r.loadOwner(profile)
}

func (r *profileRepository) FindByUserID(userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadOwner(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *domain.Profile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Model(profile).Updates(map[string]interface{}{
		"theme_preference": profile.ThemePreference,
		"updated_at":       profile.UpdatedAt,
	}).Error
}

func (r *profileRepository) Delete(userID, id string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Profile{})
	return result.RowsAffected > 0, result.Error
}

// loadOwner reads the owner's public fields from the users table.
func (r *profileRepository) loadOwner(profile *domain.Profile) error {
	var owner domain.Owner
	err := r.db.Table("users").
		Select("id, username, email, first_name, last_name").
		Where("id = ?", profile.UserID).
		Take(&owner).Error
	if err != nil {
		return err
	}
	profile.User = &owner
	return nil
}
