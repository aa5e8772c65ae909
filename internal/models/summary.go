package models

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal is the summed amount of one category over a period.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// Summary is the month-to-date projection for one user, compared against the
// full previous calendar month.
type Summary struct {
	From             time.Time
	To               time.Time // exclusive
	IncomeTotal      decimal.Decimal
	ExpenseTotal     decimal.Decimal
	Net              decimal.Decimal
	IncomeBreakdown  []CategoryTotal
	ExpenseBreakdown []CategoryTotal
	CurrentTotal     decimal.Decimal // sum over all alive transactions in the period
	TrendPercent     decimal.Decimal
}

// MonthSummary is the projection over one full calendar month for one user.
// Unlike Summary it carries no trend.
type MonthSummary struct {
	Month            types.Month
	IncomeTotal      decimal.Decimal
	ExpenseTotal     decimal.Decimal
	Net              decimal.Decimal
	IncomeBreakdown  []CategoryTotal
	ExpenseBreakdown []CategoryTotal
}

// TransactionTotal returns the sum of all alive transactions of one type that
// the user owns with a date in [from, to).
//
// When no transactions match, the sum is zero, never an error.
func TransactionTotal(db *gorm.DB, userID uuid.UUID, txType TransactionType, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("transactions").
		Select("SUM(amount)").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ? AND deleted_at IS NULL", userID, txType, from, to).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing %s transactions failed: %w", txType, err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// PeriodTotal returns the sum of all alive transactions of the user in
// [from, to), regardless of type. This is the metric the trend compares
// between periods.
func PeriodTotal(db *gorm.DB, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("transactions").
		Select("SUM(amount)").
		Where("user_id = ? AND date >= ? AND date < ? AND deleted_at IS NULL", userID, from, to).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing transactions failed: %w", err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// CategoryTotals groups the user's alive transactions of one type in [from, to)
// by category name and sums the amounts per group.
//
// Groups are ordered by descending total; ties break on ascending category
// name so the result is deterministic.
func CategoryTotals(db *gorm.DB, userID uuid.UUID, txType TransactionType, from, to time.Time) ([]CategoryTotal, error) {
	rows, err := db.Table("transactions").
		Select("categories.name AS name, SUM(transactions.amount) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ? AND transactions.date >= ? AND transactions.date < ? AND transactions.deleted_at IS NULL", userID, txType, from, to).
		Group("categories.name").
		Order("total DESC, categories.name ASC").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("grouping %s transactions failed: %w", txType, err)
	}
	defer rows.Close()

	totals := make([]CategoryTotal, 0)
	for rows.Next() {
		var t CategoryTotal
		err = rows.Scan(&t.Name, &t.Total)
		if err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// TrendPercent computes the percentage change between the totals of two
// comparable periods.
//
// A zero baseline never divides: growth from zero is flat +100, zero to zero
// is 0.
func TrendPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return decimal.NewFromInt(100)
	}

	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}

// ComputeSummary produces the month-to-date summary for the month of the
// reference date.
//
// The current period is [first of the month, reference date] inclusive; the
// comparison baseline for the trend is the full previous calendar month.
func ComputeSummary(db *gorm.DB, userID uuid.UUID, reference time.Time) (Summary, error) {
	month := types.MonthOf(reference)
	monthStart, _ := month.Range()

	// Half-open interval that covers the reference date completely
	refDay := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
	from, to := monthStart, refDay.AddDate(0, 0, 1)

	s := Summary{
		From: from,
		To:   to,
	}

	var err error
	s.IncomeTotal, err = TransactionTotal(db, userID, TypeIncome, from, to)
	if err != nil {
		return Summary{}, err
	}

	s.ExpenseTotal, err = TransactionTotal(db, userID, TypeExpense, from, to)
	if err != nil {
		return Summary{}, err
	}

	s.Net = s.IncomeTotal.Sub(s.ExpenseTotal)

	s.IncomeBreakdown, err = CategoryTotals(db, userID, TypeIncome, from, to)
	if err != nil {
		return Summary{}, err
	}

	s.ExpenseBreakdown, err = CategoryTotals(db, userID, TypeExpense, from, to)
	if err != nil {
		return Summary{}, err
	}

	s.CurrentTotal, err = PeriodTotal(db, userID, from, to)
	if err != nil {
		return Summary{}, err
	}

	prevFrom, prevTo := month.Previous().Range()
	previousTotal, err := PeriodTotal(db, userID, prevFrom, prevTo)
	if err != nil {
		return Summary{}, err
	}

	s.TrendPercent = TrendPercent(s.CurrentTotal, previousTotal)

	return s, nil
}

// ComputeMonth produces the summary over one full calendar month.
func ComputeMonth(db *gorm.DB, userID uuid.UUID, month types.Month) (MonthSummary, error) {
	from, to := month.Range()

	s := MonthSummary{
		Month: month,
	}

	var err error
	s.IncomeTotal, err = TransactionTotal(db, userID, TypeIncome, from, to)
	if err != nil {
		return MonthSummary{}, err
	}

	s.ExpenseTotal, err = TransactionTotal(db, userID, TypeExpense, from, to)
	if err != nil {
		return MonthSummary{}, err
	}

	s.Net = s.IncomeTotal.Sub(s.ExpenseTotal)

	s.IncomeBreakdown, err = CategoryTotals(db, userID, TypeIncome, from, to)
	if err != nil {
		return MonthSummary{}, err
	}

	s.ExpenseBreakdown, err = CategoryTotals(db, userID, TypeExpense, from, to)
	if err != nil {
		return MonthSummary{}, err
	}

	return s, nil
}
