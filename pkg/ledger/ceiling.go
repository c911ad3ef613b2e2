package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"be04/models"
)

// ValidateCategoryCeiling checks that adding a category with the proposed
// ceiling keeps the sum of all ceilings for (user, period) within the
// period's budget. Read-only; persists nothing.
//
// This standalone form is advisory: two concurrent callers can both pass it.
// The category coordinator repeats the check inside its transaction with the
// budget row locked, which is what actually enforces the invariant.
func ValidateCategoryCeiling(ctx context.Context, db *gorm.DB, userID uuid.UUID, p Period, proposed decimal.Decimal) error {
	return checkCeiling(db.WithContext(ctx), userID, p, proposed, false)
}

// validateCeilingLocked is the in-transaction variant: it takes a FOR UPDATE
// lock on the budget row, serializing concurrent category creation for the
// same (user, period) across all server processes.
func validateCeilingLocked(tx *gorm.DB, userID uuid.UUID, p Period, proposed decimal.Decimal) error {
	return checkCeiling(tx, userID, p, proposed, true)
}

func checkCeiling(q *gorm.DB, userID uuid.UUID, p Period, proposed decimal.Decimal, lock bool) error {
	budgetQ := q
	if lock {
		budgetQ = budgetQ.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var budget models.Budget
	err := budgetQ.Where("user_id = ? AND month = ? AND year = ?", userID, p.Month, p.Year).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Errf(KindPrecondition, "No budget exists for this period. Please create a budget first")
	}
	if err != nil {
		return Errf(KindInternal, "Something went wrong while validating the category budget")
	}

	var sum decimal.Decimal
	row := q.Model(&models.Category{}).
		Where("user_id = ? AND month = ? AND year = ?", userID, p.Month, p.Year).
		Select("COALESCE(SUM(category_budget), 0)").
		Row()
	if err := row.Scan(&sum); err != nil {
		return Errf(KindInternal, "Something went wrong while validating the category budget")
	}

	if sum.Add(proposed).GreaterThan(budget.Amount) {
		return Errf(KindCapacityExceeded, "Category budgets would exceed the budget for this period")
	}
	return nil
}

// isUniqueViolation reports whether err looks like a unique-constraint
// failure. String matching keeps this independent of the driver in use.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "UNIQUE constraint")
}
