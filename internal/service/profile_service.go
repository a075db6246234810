package service

import (
	"errors"

	"github.com/tradejournal/internal/config"
	"github.com/tradejournal/internal/events"
	"github.com/tradejournal/internal/models"
	"github.com/tradejournal/internal/repository"
)

// ProfileService handles journal profile operations
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	hub         *events.Hub
	cfg         config.JournalConfig
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo *repository.ProfileRepository, hub *events.Hub, cfg config.JournalConfig) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		hub:         hub,
		cfg:         cfg,
	}
}

// GetOrCreate returns the user's profile, creating it with the configured
// journal defaults on first access.
func (s *ProfileService) GetOrCreate(userID uint, email, fullName string) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, err
	}

	profile = &models.UserProfile{
		UserID:             userID,
		Email:              email,
		FullName:           fullName,
		AccountBalance:     s.cfg.DefaultBalance,
		DefaultRiskPercent: s.cfg.DefaultRiskPercent,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	FullName           *string  `json:"full_name" binding:"omitempty,max=100"`
	AccountBalance     *float64 `json:"account_balance" binding:"omitempty,gt=0"`
	DefaultRiskPercent *float64 `json:"default_risk_percent" binding:"omitempty,gt=0,lte=100"`
}

// Update applies a profile patch
func (s *ProfileService) Update(userID uint, req *UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.AccountBalance != nil {
		profile.AccountBalance = *req.AccountBalance
	}
	if req.DefaultRiskPercent != nil {
		profile.DefaultRiskPercent = *req.DefaultRiskPercent
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}

	s.hub.Publish(events.Event{Type: events.EventProfileUpdated, UserID: userID, Payload: profile})

	return profile, nil
}
