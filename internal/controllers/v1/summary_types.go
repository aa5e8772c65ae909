package v1

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Name  string          `json:"name" example:"Groceries"` // Name of the category
	Total decimal.Decimal `json:"total" example:"180.62"`   // Summed amount for the category
}

// newCategoryTotals returns the API v1 representation of a breakdown.
//
// The order of the engine result is preserved: largest total first, ties on
// the category name.
func newCategoryTotals(totals []models.CategoryTotal) []CategoryTotal {
	data := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		data = append(data, CategoryTotal{Name: t.Name, Total: t.Total})
	}

	return data
}

// Summary is the month-to-date report for the authenticated user.
type Summary struct {
	From             time.Time       `json:"from" example:"2024-03-01T00:00:00Z"`  // Start of the reporting period
	To               time.Time       `json:"to" example:"2024-03-22T00:00:00Z"`    // End of the reporting period, exclusive
	IncomeTotal      decimal.Decimal `json:"incomeTotal" example:"2317.34"`        // Sum of all income in the period
	ExpenseTotal     decimal.Decimal `json:"expenseTotal" example:"1180.62"`       // Sum of all expenses in the period
	Net              decimal.Decimal `json:"net" example:"1136.72"`                // Income minus expenses
	IncomeBreakdown  []CategoryTotal `json:"incomeBreakdown"`                      // Income per category
	ExpenseBreakdown []CategoryTotal `json:"expenseBreakdown"`                     // Expenses per category
	CurrentTotal     decimal.Decimal `json:"currentTotal" example:"3497.96"`       // Sum over all transactions in the period
	TrendPercent     decimal.Decimal `json:"trendPercent" example:"-25"`           // Change against the full previous month, in percent
}

// newSummary returns the API v1 representation of the report.
func newSummary(model models.Summary) Summary {
	return Summary{
		From:             model.From,
		To:               model.To,
		IncomeTotal:      model.IncomeTotal,
		ExpenseTotal:     model.ExpenseTotal,
		Net:              model.Net,
		IncomeBreakdown:  newCategoryTotals(model.IncomeBreakdown),
		ExpenseBreakdown: newCategoryTotals(model.ExpenseBreakdown),
		CurrentTotal:     model.CurrentTotal,
		TrendPercent:     model.TrendPercent,
	}
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"parsing time \"22\" as \"2006-01-02\": cannot parse \"22\" as \"2006\""` // The error, if any occurred
	Data  *Summary `json:"data"`                                                                                   // The summary
}

// Month is the report over one full calendar month for the authenticated user.
type Month struct {
	Month            types.Month     `json:"month" example:"2024-03-01T00:00:00Z"` // The calendar month
	IncomeTotal      decimal.Decimal `json:"incomeTotal" example:"2317.34"`        // Sum of all income in the month
	ExpenseTotal     decimal.Decimal `json:"expenseTotal" example:"1180.62"`       // Sum of all expenses in the month
	Net              decimal.Decimal `json:"net" example:"1136.72"`                // Income minus expenses
	IncomeBreakdown  []CategoryTotal `json:"incomeBreakdown"`                      // Income per category
	ExpenseBreakdown []CategoryTotal `json:"expenseBreakdown"`                     // Expenses per category
}

// newMonth returns the API v1 representation of the report.
func newMonth(model models.MonthSummary) Month {
	return Month{
		Month:            model.Month,
		IncomeTotal:      model.IncomeTotal,
		ExpenseTotal:     model.ExpenseTotal,
		Net:              model.Net,
		IncomeBreakdown:  newCategoryTotals(model.IncomeBreakdown),
		ExpenseBreakdown: newCategoryTotals(model.ExpenseBreakdown),
	}
}

type MonthResponse struct {
	Error *string `json:"error" example:"parsing time \"2024\" as \"2006-01\": cannot parse \"\" as \"-\""` // The error, if any occurred
	Data  *Month  `json:"data"`                                                                             // The monthly report
}
