package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tradejournal/internal/journal"
	"github.com/tradejournal/internal/middleware"
	"github.com/tradejournal/internal/repository"
	"github.com/tradejournal/internal/service"
	"github.com/tradejournal/pkg/response"
)

// JournalHandler handles trade journal API requests
type JournalHandler struct {
	journalService *service.JournalService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// CreateTrade handles trade creation
// POST /api/v1/trades
func (h *JournalHandler) CreateTrade(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.journalService.CreateTrade(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, journal.ErrInvalidInput) || errors.Is(err, service.ErrInvalidTradeDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create trade")
		return
	}

	response.Created(c, trade)
}

// ListTrades handles paginated trade listing
// GET /api/v1/trades?page=1&page_size=50
func (h *JournalHandler) ListTrades(c *gin.Context) {
	userID := middleware.GetUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	trades, total, err := h.journalService.ListTrades(userID, page, pageSize)
	if err != nil {
		response.InternalError(c, "failed to list trades")
		return
	}

	response.SuccessPaginated(c, trades, total, page, pageSize)
}

// UpdateTrade handles trade patching
// PUT /api/v1/trades/:id
func (h *JournalHandler) UpdateTrade(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req service.UpdateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.journalService.UpdateTrade(c.Request.Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrTradeNotFound) {
			response.NotFound(c, "trade not found")
			return
		}
		if errors.Is(err, service.ErrInvalidTradeDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to update trade")
		return
	}

	response.Success(c, trade)
}

// DeleteTrade handles trade deletion
// DELETE /api/v1/trades/:id
func (h *JournalHandler) DeleteTrade(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	if err := h.journalService.DeleteTrade(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrTradeNotFound) {
			response.NotFound(c, "trade not found")
			return
		}
		response.InternalError(c, "failed to delete trade")
		return
	}

	response.Success(c, gin.H{"deleted": id})
}

// ExportCSV streams the user's trades as a CSV download
// GET /api/v1/trades/export
func (h *JournalHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetUserID(c)

	filename := fmt.Sprintf("trading-journal-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.journalService.ExportCSV(userID, c.Writer); err != nil {
		response.InternalError(c, "failed to export trades")
		return
	}
}

// ImportCSV reads a CSV upload and reports imported and skipped row counts
// POST /api/v1/trades/import
func (h *JournalHandler) ImportCSV(c *gin.Context) {
	userID := middleware.GetUserID(c)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing csv file upload")
		return
	}
	defer file.Close()

	report, err := h.journalService.ImportCSV(c.Request.Context(), userID, file)
	if err != nil {
		response.InternalError(c, "failed to import trades")
		return
	}

	response.Success(c, report)
}

// RegisterRoutes registers journal routes behind auth
func (h *JournalHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	trades := rg.Group("/trades", authMiddleware)
	{
		trades.GET("", h.ListTrades)
		trades.POST("", h.CreateTrade)
		trades.GET("/export", h.ExportCSV)
		trades.POST("/import", h.ImportCSV)
		trades.PUT("/:id", h.UpdateTrade)
		trades.DELETE("/:id", h.DeleteTrade)
	}
}
