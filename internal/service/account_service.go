package service

import (
	"github.com/tradejournal/internal/models"
	"github.com/tradejournal/internal/repository"
)

// AccountService handles named trading account operations
type AccountService struct {
	accountRepo *repository.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccountRequest represents the create account request
type CreateAccountRequest struct {
	AccountName string  `json:"account_name" binding:"required,min=1,max=100"`
	Balance     float64 `json:"balance" binding:"omitempty,gte=0"`
}

// CreateAccount creates a named account for the user
func (s *AccountService) CreateAccount(userID uint, req *CreateAccountRequest) (*models.Account, error) {
	account := &models.Account{
		UserID:      userID,
		AccountName: req.AccountName,
		Balance:     req.Balance,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccounts retrieves all accounts for a user
func (s *AccountService) GetAccounts(userID uint) ([]models.Account, error) {
	return s.accountRepo.GetByUserID(userID)
}

// UpdateAccountRequest represents an account patch
type UpdateAccountRequest struct {
	AccountName *string  `json:"account_name" binding:"omitempty,min=1,max=100"`
	Balance     *float64 `json:"balance" binding:"omitempty,gte=0"`
}

// UpdateAccount applies an account patch
func (s *AccountService) UpdateAccount(userID uint, id string, req *UpdateAccountRequest) (*models.Account, error) {
	account, err := s.accountRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.AccountName != nil {
		account.AccountName = *req.AccountName
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes a named account
func (s *AccountService) DeleteAccount(userID uint, id string) error {
	return s.accountRepo.Delete(id, userID)
}
