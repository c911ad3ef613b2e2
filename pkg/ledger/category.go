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

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name           string
	CategoryBudget decimal.Decimal
	Color          string
	IsDark         bool
}

// CreateCategoryWithLedger creates a category together with its
// zero-initialized report row as one atomic unit. The ceiling check runs
// inside the transaction with the period's budget row locked, so two
// concurrent creations for the same (user, period) cannot jointly overshoot
// the budget. Either both rows become visible or neither does.
func CreateCategoryWithLedger(ctx context.Context, db *gorm.DB, userID uuid.UUID, in CategoryInput, p Period) (*models.Category, error) {
	db = db.WithContext(ctx)
	name := strings.ToLower(strings.TrimSpace(in.Name))
	if name == "" {
		return nil, Errf(KindValidation, "name is missing. Please fill all the mandatory fields")
	}

	// Names are stored lowercase, so equality here is case-insensitive.
	var existing models.Category
	if err := db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error; err == nil {
		return nil, Errf(KindConflict, "%s category already exist", name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Errf(KindInternal, "Failed to create category. Please try again.")
	}

	var category models.Category
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := validateCeilingLocked(tx, userID, p, in.CategoryBudget); err != nil {
			return err
		}
		category = models.Category{
			UserID:         userID,
			Name:           name,
			CategoryBudget: in.CategoryBudget,
			Color:          in.Color,
			IsDark:         in.IsDark,
			Month:          p.Month,
			Year:           p.Year,
		}
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
		report := models.Report{
			UserID:           userID,
			CategoryID:       category.ID,
			Month:            p.Month,
			Year:             p.Year,
			TotalAmountSpent: decimal.Zero,
		}
		return tx.Create(&report).Error
	})
	if err != nil {
		var le *Error
		if errors.As(err, &le) {
			return nil, le
		}
		if isUniqueViolation(err) {
			// Lost the race with a concurrent creation of the same name.
			return nil, Errf(KindConflict, "%s category already exist", name)
		}
		return nil, Errf(KindInternal, "Failed to create category. Please try again.")
	}
	return &category, nil
}
