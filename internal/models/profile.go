package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile holds the per-user journal defaults used to pre-populate new
// trade forms. AccountBalance and DefaultRiskPercent move whenever a new
// trade declares a different balance or risk; existing trades keep their
// own snapshots.
type UserProfile struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Email              string    `gorm:"size:100;not null" json:"email"`
	FullName           string    `gorm:"size:100" json:"full_name"`
	AccountBalance     float64   `gorm:"type:decimal(20,8);not null" json:"account_balance"`
	DefaultRiskPercent float64   `gorm:"type:decimal(10,4);not null" json:"default_risk_percent"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName specifies the table name for UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}

// BeforeCreate assigns an opaque id when none was set
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
