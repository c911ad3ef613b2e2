package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category subdivides a user's monthly budget. Names are stored lowercase so
// the per-user unique index doubles as the case-insensitive name check.
type Category struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name" json:"userId"`
	Name           string          `gorm:"size:255;not null;uniqueIndex:idx_categories_user_name" json:"name"`
	CategoryBudget decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"categoryBudget"`
	Color          string          `gorm:"size:32;not null" json:"color"`
	IsDark         bool            `gorm:"not null" json:"isDark"`
	Month          int             `gorm:"not null;index" json:"month"`
	Year           int             `gorm:"not null;index" json:"year"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
