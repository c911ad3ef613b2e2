package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"be04/models"
)

// ExpenseInput is the payload for logging an expense.
type ExpenseInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Amount      decimal.Decimal
}

var errReportRowMissing = errors.New("report row missing for expense key")

// AddExpenseWithLedger inserts an expense and increments its report
// aggregate as one atomic unit. The increment is a single SQL update
// (total = total + amount), never a read-modify-write, so concurrent
// insertions against the same (user, category, period) serialize at the row
// without lost updates. If no report row matches the key the whole
// transaction aborts: an expense must never exist without its aggregate.
func AddExpenseWithLedger(ctx context.Context, db *gorm.DB, userID uuid.UUID, in ExpenseInput, p Period) (*models.Expense, error) {
	var expense models.Expense
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expense = models.Expense{
			UserID:      userID,
			CategoryID:  in.CategoryID,
			Name:        strings.ToLower(strings.TrimSpace(in.Name)),
			Description: in.Description,
			Amount:      in.Amount,
			Month:       p.Month,
			Year:        p.Year,
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Report{}).
			Where("user_id = ? AND category_id = ? AND month = ? AND year = ?",
				userID, in.CategoryID, p.Month, p.Year).
			UpdateColumn("total_amount_spent", gorm.Expr("total_amount_spent + ?", in.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errReportRowMissing
		}
		return nil
	})
	if err != nil {
		return nil, Errf(KindInternal, "Failed to add expense. Please try again.")
	}
	return &expense, nil
}

// ListExpenses returns one page of the user's expenses for the period,
// newest first.
func ListExpenses(ctx context.Context, db *gorm.DB, userID uuid.UUID, p Period, page, limit int) ([]models.Expense, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	var expenses []models.Expense
	err := db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, p.Month, p.Year).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&expenses).Error
	if err != nil {
		return nil, Errf(KindInternal, "Something went wrong while fetching expenses")
	}
	return expenses, nil
}
