package ledger

import (
	"context"
	"errors"
	"math"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"be04/models"
)

// CreateBudget creates the budget for (scope, period). At most one budget
// may exist per owner and period; a pre-write existence check surfaces the
// duplicate as a ConflictError before anything is written.
func CreateBudget(ctx context.Context, db *gorm.DB, scope Scope, amount decimal.Decimal, p Period) (*models.Budget, error) {
	db = db.WithContext(ctx)

	var existing models.Budget
	err := scope.apply(db.Where("month = ? AND year = ?", p.Month, p.Year)).First(&existing).Error
	if err == nil {
		owner := "user"
		if scope.ForGroupScope() {
			owner = "group"
		}
		return nil, Errf(KindConflict, "Budget for this month of this %s already exist", owner)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Errf(KindInternal, "Something went wrong while creating the budget")
	}

	b := models.Budget{
		UserID:  scope.userID,
		GroupID: scope.groupID,
		Amount:  amount,
		Month:   p.Month,
		Year:    p.Year,
	}
	if err := db.Create(&b).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, Errf(KindConflict, "Budget for this month already exist")
		}
		return nil, Errf(KindInternal, "Something went wrong while creating the budget")
	}
	return &b, nil
}

// CurrentBudget returns the budget for (scope, period).
func CurrentBudget(ctx context.Context, db *gorm.DB, scope Scope, p Period) (*models.Budget, error) {
	var b models.Budget
	err := scope.apply(db.WithContext(ctx).Where("month = ? AND year = ?", p.Month, p.Year)).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Errf(KindNotFound, "No budget found! Please create one")
	}
	if err != nil {
		return nil, Errf(KindInternal, "Something went wrong while fetching the budget")
	}
	return &b, nil
}

// ListBudgets returns one page of budgets matching the filter, newest period
// first, together with the total count for pagination.
func ListBudgets(ctx context.Context, db *gorm.DB, f *RangeFilter, page, limit int) ([]models.Budget, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	db = db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Budget{}).Scopes(f.Scope()).Count(&total).Error; err != nil {
		return nil, 0, Errf(KindInternal, "Something went wrong while fetching budgets")
	}

	var budgets []models.Budget
	err := db.Model(&models.Budget{}).Scopes(f.Scope()).
		Order("year DESC, month DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&budgets).Error
	if err != nil {
		return nil, 0, Errf(KindInternal, "Something went wrong while fetching budgets")
	}
	return budgets, total, nil
}

// TotalPages converts a row count into a page count for the given limit.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
