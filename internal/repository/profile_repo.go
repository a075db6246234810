package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tradejournal/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository handles user profile data access
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

// GetByUserID retrieves the profile for a user
func (r *ProfileRepository) GetByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	result := r.db.Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}
	return &profile, nil
}

// Update updates a profile
func (r *ProfileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
