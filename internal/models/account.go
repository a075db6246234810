package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents a named trading account a user journals against
type Account struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	AccountName string         `gorm:"size:100;not null" json:"account_name"`
	Balance     float64        `gorm:"type:decimal(20,8);default:0" json:"balance"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Account model
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate assigns an opaque id when none was set
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
