package usecase

import (
	"errors"

	"planner-backend/internal/profile/domain"
	"planner-backend/internal/profile/repository"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists for this user")
)

// ProfileUsecase defines the interface for profile business logic
type ProfileUsecase interface {
	// ListProfiles returns the caller's profile, if any, as a list
	ListProfiles(userID string) ([]*domain.Profile, error)
	GetProfile(userID, profileID string) (*domain.Profile, error)
	CreateProfile(userID string, req ProfileRequest) (*domain.Profile, error)
	UpdateProfile(userID, profileID string, req ProfileRequest) (*domain.Profile, error)
	DeleteProfile(userID, profileID string) error
}

// ProfileRequest is the body for creating or updating a profile
type ProfileRequest struct {
	ThemePreference *string `json:"theme_preference" binding:"omitempty,max=20"`
}

type profileUsecase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUsecase(profileRepo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) ListProfiles(userID string) ([]*domain.Profile, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []*domain.Profile{}, nil
	}
	return []*domain.Profile{profile}, nil
}

func (u *profileUsecase) GetProfile(userID, profileID string) (*domain.Profile, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID != profileID {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (u *profileUsecase) CreateProfile(userID string, req ProfileRequest) (*domain.Profile, error) {
	existing, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := repository.NewProfile(userID)
	if req.ThemePreference != nil && *req.ThemePreference != "" {
		profile.ThemePreference = *req.ThemePreference
	}
	if err := u.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(userID, profileID string, req ProfileRequest) (*domain.Profile, error) {
	profile, err := u.GetProfile(userID, profileID)
	if err != nil {
		return nil, err
	}

	if req.ThemePreference != nil {
		if len(*req.ThemePreference) > domain.MaxThemeLength {
			return nil, domain.ErrThemeTooLong
		}
		profile.ThemePreference = *req.ThemePreference
	}

	if err := u.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) DeleteProfile(userID, profileID string) error {
	deleted, err := u.profileRepo.Delete(userID, profileID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProfileNotFound
	}
	return nil
}
