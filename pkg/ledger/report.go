package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"be04/models"
)

// MonthlyReport is the roll-up of all of a user's report rows for one
// period.
type MonthlyReport struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalAmountSpent decimal.Decimal `json:"totalAmountSpent"`
}

// MonthlyReports returns one page of per-period spend totals for the user,
// newest period first. Plain read, no transaction: reads are not required
// to observe in-flight writes.
func MonthlyReports(ctx context.Context, db *gorm.DB, userID uuid.UUID, page, limit int) ([]MonthlyReport, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	var reports []MonthlyReport
	err := db.WithContext(ctx).Model(&models.Report{}).
		Select("month, year, SUM(total_amount_spent) AS total_amount_spent").
		Where("user_id = ?", userID).
		Group("month, year").
		Order("year DESC, month DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&reports).Error
	if err != nil {
		return nil, Errf(KindInternal, "Something went wrong while fetching reports")
	}
	return reports, nil
}

// CategorySpend is one category's aggregate for a period, with the category
// descriptor attached for display.
type CategorySpend struct {
	CategoryID       uuid.UUID       `json:"categoryId"`
	CategoryName     string          `json:"categoryName"`
	CategoryBudget   decimal.Decimal `json:"categoryBudget"`
	Color            string          `json:"color"`
	IsDark           bool            `json:"isDark"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalAmountSpent decimal.Decimal `json:"totalAmountSpent"`
}

// CategorySpendByPeriod returns the user's per-category spend for one
// period.
func CategorySpendByPeriod(ctx context.Context, db *gorm.DB, userID uuid.UUID, p Period) ([]CategorySpend, error) {
	var out []CategorySpend
	err := db.WithContext(ctx).Table("reports").
		Select("categories.id AS category_id, categories.name AS category_name, categories.category_budget, categories.color, categories.is_dark, reports.month, reports.year, reports.total_amount_spent").
		Joins("JOIN categories ON categories.id = reports.category_id").
		Where("reports.user_id = ? AND reports.month = ? AND reports.year = ?", userID, p.Month, p.Year).
		Scan(&out).Error
	if err != nil {
		return nil, Errf(KindInternal, "Something went wrong while fetching category expenses")
	}
	return out, nil
}
