package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spend event logged against a category. Month and year
// are resolved at creation time and never recomputed; the matching Report
// row is incremented in the same transaction that inserts the expense.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"size:512" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Month       int             `gorm:"not null;index" json:"month"`
	Year        int             `gorm:"not null;index" json:"year"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
