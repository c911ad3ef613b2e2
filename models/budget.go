package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending limit for one (owner, month, year) bucket. The
// owner is either a user or a group, never both; at most one budget may
// exist per owner and period (pre-write existence check plus the composite
// unique indexes below, which Postgres does not apply across NULL owners).
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	UserID    *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_budgets_user_period" json:"userId,omitempty"`
	GroupID   *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_budgets_group_period" json:"groupId,omitempty"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Month     int             `gorm:"not null;uniqueIndex:idx_budgets_user_period;uniqueIndex:idx_budgets_group_period" json:"month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_budgets_user_period;uniqueIndex:idx_budgets_group_period" json:"year"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
