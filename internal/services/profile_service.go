package services

import (
	"strings"

	"github.com/vorathons/memory-mate/internal/domain"
	apperrors "github.com/vorathons/memory-mate/internal/errors"
	"github.com/vorathons/memory-mate/internal/logger"
	"github.com/vorathons/memory-mate/internal/store"
)

// ProfileService manages the singleton patient profile.
type ProfileService struct {
	profile *store.ProfileStore
}

func NewProfileService(profile *store.ProfileStore) *ProfileService {
	return &ProfileService{profile: profile}
}

func (s *ProfileService) Get() domain.UserData {
	return s.profile.Get()
}

// Update replaces the profile wholesale. Name is required and the blood
// type must be one of A/B/O/AB.
func (s *ProfileService) Update(data domain.UserData) error {
	if strings.TrimSpace(data.Name) == "" {
		return apperrors.NewValidationError("profile name is required")
	}
	if !domain.ValidBloodType(data.BloodType) {
		return apperrors.NewValidationError("unknown blood type")
	}

	s.profile.Replace(data)
	logger.Info("Profile updated", "name", data.Name)
	return nil
}
