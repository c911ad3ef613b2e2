package main

import (
	"net/http"
	"strconv"
	"time"

	"be04/pkg/ledger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// parseDate accepts RFC3339 or a bare YYYY-MM-DD date.
func parseDate(s string) (*time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}

// intQuery parses an optional integer query parameter. The bool result is
// false when the parameter is present but not a number.
func intQuery(c *gin.Context, name string) (*int, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func pageQuery(c *gin.Context, defaultLimit int) (page, limit int) {
	page, limit = 1, defaultLimit
	if p, ok := intQuery(c, "page"); ok && p != nil && *p > 0 {
		page = *p
	}
	if l, ok := intQuery(c, "limit"); ok && l != nil && *l > 0 {
		limit = *l
	}
	return page, limit
}

// budgetScope resolves the ownership scope of a budget request: the caller's
// user scope, or a group scope when forGroup is set.
func budgetScope(c *gin.Context, forGroup bool, groupID string) (ledger.Scope, bool) {
	if forGroup {
		if groupID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is missing"})
			return ledger.Scope{}, false
		}
		gid, err := uuid.Parse(groupID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is not a valid id"})
			return ledger.Scope{}, false
		}
		return ledger.ForGroup(gid), true
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return ledger.Scope{}, false
	}
	return ledger.ForUser(userID), true
}

func createBudgetHandler(c *gin.Context) {
	var req struct {
		Amount   *decimal.Decimal `json:"amount"`
		Date     string           `json:"date"`
		ForGroup bool             `json:"forGroup"`
		GroupID  string           `json:"groupId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := ledger.RequireFields(ledger.EntityBudget, func(f string) bool {
		switch f {
		case "amount":
			return req.Amount != nil
		case "date":
			return req.Date != ""
		}
		return false
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	scope, ok := budgetScope(c, req.ForGroup, req.GroupID)
	if !ok {
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is not a valid date"})
		return
	}
	period := ledger.ResolvePeriod(date, time.Now())

	budget, err := ledger.CreateBudget(c.Request.Context(), db, scope, *req.Amount, period)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

func listBudgetsHandler(c *gin.Context) {
	forGroup := c.Query("forGroup") == "true"
	scope, ok := budgetScope(c, forGroup, c.Query("groupId"))
	if !ok {
		return
	}

	var in ledger.RangeInput
	var valid bool
	if in.StartMonth, valid = intQuery(c, "startMonth"); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startMonth is not a number"})
		return
	}
	if in.StartYear, valid = intQuery(c, "startYear"); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startYear is not a number"})
		return
	}
	if in.EndMonth, valid = intQuery(c, "endMonth"); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endMonth is not a number"})
		return
	}
	if in.EndYear, valid = intQuery(c, "endYear"); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endYear is not a number"})
		return
	}

	filter, err := ledger.BuildRangeFilter(scope, in)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	page, limit := pageQuery(c, 6)
	budgets, total, err := ledger.ListBudgets(c.Request.Context(), db, filter, page, limit)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":       page,
		"limit":      limit,
		"totalCount": total,
		"totalPages": ledger.TotalPages(total, limit),
		"budgets":    budgets,
	})
}

func currentBudgetHandler(c *gin.Context) {
	forGroup := c.Query("forGroup") == "true"
	scope, ok := budgetScope(c, forGroup, c.Query("groupId"))
	if !ok {
		return
	}
	period := ledger.ResolvePeriod(nil, time.Now())
	budget, err := ledger.CurrentBudget(c.Request.Context(), db, scope, period)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

func createCategoryHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Name           string           `json:"name"`
		CategoryBudget *decimal.Decimal `json:"categoryBudget"`
		Color          string           `json:"color"`
		IsDark         *bool            `json:"isDark"`
		Date           string           `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := ledger.RequireFields(ledger.EntityCategory, func(f string) bool {
		switch f {
		case "name":
			return req.Name != ""
		case "categoryBudget":
			return req.CategoryBudget != nil
		case "color":
			return req.Color != ""
		case "isDark":
			return req.IsDark != nil
		}
		return false
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	var date *time.Time
	if req.Date != "" {
		if date, ok = parseDate(req.Date); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is not a valid date"})
			return
		}
	}
	period := ledger.ResolvePeriod(date, time.Now())

	category, err := ledger.CreateCategoryWithLedger(c.Request.Context(), db, userID, ledger.CategoryInput{
		Name:           req.Name,
		CategoryBudget: *req.CategoryBudget,
		Color:          req.Color,
		IsDark:         *req.IsDark,
	}, period)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func addExpenseHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		CategoryID  string           `json:"categoryId"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Amount      *decimal.Decimal `json:"amount"`
		Date        string           `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := ledger.RequireFields(ledger.EntityExpense, func(f string) bool {
		switch f {
		case "categoryId":
			return req.CategoryID != ""
		case "name":
			return req.Name != ""
		case "amount":
			return req.Amount != nil
		}
		return false
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId is not a valid id"})
		return
	}
	var date *time.Time
	if req.Date != "" {
		if date, ok = parseDate(req.Date); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is not a valid date"})
			return
		}
	}
	period := ledger.ResolvePeriod(date, time.Now())

	expense, err := ledger.AddExpenseWithLedger(c.Request.Context(), db, userID, ledger.ExpenseInput{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      *req.Amount,
	}, period)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func listExpensesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	period := ledger.ResolvePeriod(nil, time.Now())
	page, limit := pageQuery(c, 10)
	expenses, err := ledger.ListExpenses(c.Request.Context(), db, userID, period, page, limit)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func categorySpendHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	period := ledger.ResolvePeriod(nil, time.Now())
	spend, err := ledger.CategorySpendByPeriod(c.Request.Context(), db, userID, period)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, spend)
}

func reportsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	page, limit := pageQuery(c, 6)
	reports, err := ledger.MonthlyReports(c.Request.Context(), db, userID, page, limit)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
