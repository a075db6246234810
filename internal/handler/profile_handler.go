package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tradejournal/internal/middleware"
	"github.com/tradejournal/internal/repository"
	"github.com/tradejournal/internal/service"
	"github.com/tradejournal/pkg/response"
)

// ProfileHandler handles profile and named account API requests
type ProfileHandler struct {
	profileService *service.ProfileService
	accountService *service.AccountService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService, accountService *service.AccountService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		accountService: accountService,
	}
}

// GetProfile returns the user's journal profile, creating it on first use
// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	email := middleware.GetEmail(c)

	profile, err := h.profileService.GetOrCreate(userID, email, "")
	if err != nil {
		response.InternalError(c, "failed to load profile")
		return
	}

	response.Success(c, profile)
}

// UpdateProfile applies a profile patch
// PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Update(userID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			response.NotFound(c, "profile not found")
			return
		}
		response.InternalError(c, "failed to update profile")
		return
	}

	response.Success(c, profile)
}

// ListAccounts returns the user's named accounts
// GET /api/v1/accounts
func (h *ProfileHandler) ListAccounts(c *gin.Context) {
	userID := middleware.GetUserID(c)

	accounts, err := h.accountService.GetAccounts(userID)
	if err != nil {
		response.InternalError(c, "failed to list accounts")
		return
	}

	response.Success(c, accounts)
}

// CreateAccount creates a named account
// POST /api/v1/accounts
func (h *ProfileHandler) CreateAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(userID, &req)
	if err != nil {
		response.InternalError(c, "failed to create account")
		return
	}

	response.Created(c, account)
}

// UpdateAccount applies an account patch
// PUT /api/v1/accounts/:id
func (h *ProfileHandler) UpdateAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req service.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(userID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.NotFound(c, "account not found")
			return
		}
		response.InternalError(c, "failed to update account")
		return
	}

	response.Success(c, account)
}

// DeleteAccount removes a named account
// DELETE /api/v1/accounts/:id
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	if err := h.accountService.DeleteAccount(userID, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.NotFound(c, "account not found")
			return
		}
		response.InternalError(c, "failed to delete account")
		return
	}

	response.Success(c, gin.H{"deleted": id})
}

// RegisterRoutes registers profile and account routes behind auth
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	profile := rg.Group("/profile", authMiddleware)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}

	accounts := rg.Group("/accounts", authMiddleware)
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
	}
}
