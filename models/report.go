package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report is the derived running total of spend for one
// (user, category, month, year) key. A row is created zero-initialized
// together with its category and is only ever mutated through the SQL-level
// increment in the expense transaction, so TotalAmountSpent always equals
// the sum of the expenses sharing its key.
type Report struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_reports_key" json:"userId"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_reports_key" json:"categoryId"`
	Month            int             `gorm:"not null;uniqueIndex:idx_reports_key" json:"month"`
	Year             int             `gorm:"not null;uniqueIndex:idx_reports_key" json:"year"`
	TotalAmountSpent decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"totalAmountSpent"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
