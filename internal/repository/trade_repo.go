package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tradejournal/internal/models"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
)

// TradeRepository handles trade data access
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create creates a new trade
func (r *TradeRepository) Create(trade *models.Trade) error {
	return r.db.Create(trade).Error
}

// CreateBatch creates trades in a single transaction, used by CSV import
func (r *TradeRepository) CreateBatch(trades []models.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	return r.db.Create(&trades).Error
}

// GetByID retrieves a trade by id, scoped to its owner
func (r *TradeRepository) GetByID(userID uint, id string) (*models.Trade, error) {
	var trade models.Trade
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&trade)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTradeNotFound
		}
		return nil, result.Error
	}
	return &trade, nil
}

// GetByUserID retrieves all trades for a user, newest trade date first
func (r *TradeRepository) GetByUserID(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("user_id = ?", userID).Order("trade_date DESC").Find(&trades)
	return trades, result.Error
}

// GetByUserIDPaginated retrieves trades with pagination
func (r *TradeRepository) GetByUserIDPaginated(userID uint, page, pageSize int) ([]models.Trade, int64, error) {
	var trades []models.Trade
	var total int64

	if err := r.db.Model(&models.Trade{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := r.db.Where("user_id = ?", userID).
		Order("trade_date DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&trades)

	return trades, total, result.Error
}

// GetByDateRange retrieves trades whose date falls within [start, end]
func (r *TradeRepository) GetByDateRange(userID uint, start, end time.Time) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("user_id = ? AND trade_date >= ? AND trade_date <= ?", userID, start, end).
		Order("trade_date ASC").
		Find(&trades)
	return trades, result.Error
}

// Update updates a trade
func (r *TradeRepository) Update(trade *models.Trade) error {
	return r.db.Save(trade).Error
}

// Delete removes a trade, scoped to its owner
func (r *TradeRepository) Delete(userID uint, id string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Trade{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTradeNotFound
	}
	return nil
}

// CountByUserID counts trades for a user
func (r *TradeRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trade{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
