package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tradejournal/internal/journal"
	"github.com/tradejournal/internal/middleware"
	"github.com/tradejournal/internal/service"
	"github.com/tradejournal/pkg/response"
)

// StatsHandler handles statistics API requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// parseDisplayMode reads the mode query parameter; anything other than
// "RR" falls back to currency.
func parseDisplayMode(c *gin.Context) journal.DisplayMode {
	if c.Query("mode") == string(journal.DisplayModeRisk) {
		return journal.DisplayModeRisk
	}
	return journal.DisplayModeCurrency
}

// Summary returns the scalar performance metrics
// GET /api/v1/stats/summary?mode=$|RR
func (h *StatsHandler) Summary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	mode := parseDisplayMode(c)

	summary, err := h.statsService.Summary(c.Request.Context(), userID, mode)
	if err != nil {
		response.InternalError(c, "failed to compute summary")
		return
	}

	response.Success(c, summary)
}

// Calendar returns the month projection
// GET /api/v1/stats/calendar?year=2025&month=3&mode=$|RR
func (h *StatsHandler) Calendar(c *gin.Context) {
	userID := middleware.GetUserID(c)
	mode := parseDisplayMode(c)

	now := time.Now().UTC()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 1970 || year > 9999 {
		response.BadRequest(c, "invalid year")
		return
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.BadRequest(c, "invalid month")
		return
	}

	view, err := h.statsService.Calendar(c.Request.Context(), userID, year, time.Month(monthNum), mode)
	if err != nil {
		response.InternalError(c, "failed to project calendar")
		return
	}

	response.Success(c, view)
}

// RegisterRoutes registers stats routes behind auth
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	stats := rg.Group("/stats", authMiddleware)
	{
		stats.GET("/summary", h.Summary)
		stats.GET("/calendar", h.Calendar)
	}
}
