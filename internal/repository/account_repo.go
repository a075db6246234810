package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tradejournal/internal/models"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository handles named trading account data access
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetByIDAndUserID retrieves an account by id, scoped to its owner
func (r *AccountRepository) GetByIDAndUserID(id string, userID uint) (*models.Account, error) {
	var account models.Account
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, result.Error
	}
	return &account, nil
}

// GetByUserID retrieves all accounts for a user, oldest first
func (r *AccountRepository) GetByUserID(userID uint) ([]models.Account, error) {
	var accounts []models.Account
	result := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts)
	return accounts, result.Error
}

// Update updates an account
func (r *AccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}

// Delete soft deletes an account, scoped to its owner
func (r *AccountRepository) Delete(id string, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Account{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
