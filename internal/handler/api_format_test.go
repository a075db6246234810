package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradejournal/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Envelope mirrors the standard API response wrapper
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// SummaryPayload mirrors the /stats/summary data shape
type SummaryPayload struct {
	TotalTrades   int     `json:"total_trades"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
	TotalProfit   float64 `json:"total_profit"`
	TotalProfitRR float64 `json:"total_profit_rr"`
	AvgWin        float64 `json:"avg_win"`
	AvgLoss       float64 `json:"avg_loss"`
	ProfitFactor  float64 `json:"profit_factor"`
}

// ImportReportPayload mirrors the /trades/import data shape
type ImportReportPayload struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// PaginatedPayload mirrors the paginated list data shape
type PaginatedPayload struct {
	Items      json.RawMessage `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// newMockRouter serves canned journal payloads through the real response
// helpers so the wire format under test is the one production emits.
func newMockRouter() *gin.Engine {
	router := gin.New()

	router.GET("/api/v1/stats/summary", func(c *gin.Context) {
		response.Success(c, gin.H{
			"total_trades":    4,
			"wins":            3,
			"losses":          1,
			"win_rate":        75.0,
			"total_profit":    2500.0,
			"total_profit_rr": 3.5,
			"avg_win":         1000.0,
			"avg_loss":        500.0,
			"profit_factor":   6.0,
		})
	})

	router.GET("/api/v1/trades", func(c *gin.Context) {
		response.SuccessPaginated(c, []gin.H{
			{"id": "0d4cf011-9f51-4a14-b7a6-3e2d2f9df1cf", "pair": "EURUSD", "profit_usd": 2000.0},
		}, 101, 1, 50)
	})

	router.POST("/api/v1/trades/import", func(c *gin.Context) {
		response.Success(c, gin.H{"imported": 9, "skipped": 2})
	})

	router.POST("/api/v1/trades", func(c *gin.Context) {
		response.BadRequest(c, "invalid input: pair is required")
	})

	router.GET("/api/v1/profile", func(c *gin.Context) {
		response.Unauthorized(c, "missing authorization header")
	})

	router.DELETE("/api/v1/trades/missing", func(c *gin.Context) {
		response.NotFound(c, "trade not found")
	})

	return router
}

// TestSummaryResponseFormat tests the stats summary response shape
func TestSummaryResponseFormat(t *testing.T) {
	router := newMockRouter()

	req, _ := http.NewRequest("GET", "/api/v1/stats/summary?mode=$", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var env Envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, 0, env.Code, "Code should be 0 for success")
	assert.Equal(t, "success", env.Message)

	var summary SummaryPayload
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 4, summary.TotalTrades)
	assert.Equal(t, 75.0, summary.WinRate, "Win rate should be a percentage")
	assert.Equal(t, 6.0, summary.ProfitFactor)
}

// TestTradeListResponseFormat tests the paginated trade list shape
func TestTradeListResponseFormat(t *testing.T) {
	router := newMockRouter()

	req, _ := http.NewRequest("GET", "/api/v1/trades?page=1&page_size=50", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 0, env.Code)

	var page PaginatedPayload
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(101), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PageSize)
	assert.Equal(t, 3, page.TotalPages, "101 items at page size 50 should be 3 pages")
}

// TestImportReportResponseFormat tests the CSV import report shape
func TestImportReportResponseFormat(t *testing.T) {
	router := newMockRouter()

	req, _ := http.NewRequest("POST", "/api/v1/trades/import", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var report ImportReportPayload
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, 9, report.Imported)
	assert.Equal(t, 2, report.Skipped, "Skipped rows should be reported, not dropped silently")
}

// TestErrorResponseFormat tests the error envelope across status codes
func TestErrorResponseFormat(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		path    string
		status  int
		code    int
		message string
	}{
		{
			name:    "Bad Request",
			method:  "POST",
			path:    "/api/v1/trades",
			status:  http.StatusBadRequest,
			code:    -1,
			message: "invalid input: pair is required",
		},
		{
			name:    "Unauthorized",
			method:  "GET",
			path:    "/api/v1/profile",
			status:  http.StatusUnauthorized,
			code:    -1001,
			message: "missing authorization header",
		},
		{
			name:    "Not Found",
			method:  "DELETE",
			path:    "/api/v1/trades/missing",
			status:  http.StatusNotFound,
			code:    -1003,
			message: "trade not found",
		},
	}

	router := newMockRouter()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)

			var env Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tc.code, env.Code)
			assert.Equal(t, tc.message, env.Message)
			assert.Nil(t, env.Data, "Error responses should carry no data")
		})
	}
}

// TestCreateTradeRequestFormat tests create request required-field validation
func TestCreateTradeRequestFormat(t *testing.T) {
	testCases := []struct {
		name  string
		body  map[string]interface{}
		valid bool
	}{
		{
			name: "Valid Detailed Entry",
			body: map[string]interface{}{
				"pair":            "EURUSD",
				"entry_method":    "detailed",
				"trade_date":      "2025-03-10",
				"account_balance": 100000.0,
				"entry_price":     1.1,
				"exit_price":      1.11,
				"stop_loss":       1.095,
				"risk_percent":    1.0,
			},
			valid: true,
		},
		{
			name: "Valid Simple Entry",
			body: map[string]interface{}{
				"pair":            "GBPJPY",
				"entry_method":    "simple",
				"trade_date":      "2025-03-11",
				"account_balance": 50000.0,
				"rr_value":        2.5,
			},
			valid: true,
		},
		{
			name: "Missing Pair",
			body: map[string]interface{}{
				"entry_method":    "simple",
				"trade_date":      "2025-03-11",
				"account_balance": 50000.0,
				"rr_value":        1.0,
			},
			valid: false,
		},
		{
			name: "Missing Trade Date",
			body: map[string]interface{}{
				"pair":            "EURUSD",
				"entry_method":    "simple",
				"account_balance": 50000.0,
				"rr_value":        1.0,
			},
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requiredFields := []string{"pair", "entry_method", "trade_date", "account_balance"}
			valid := true
			for _, field := range requiredFields {
				if _, ok := tc.body[field]; !ok {
					valid = false
					break
				}
			}
			assert.Equal(t, tc.valid, valid, "Validation result mismatch")
		})
	}
}
