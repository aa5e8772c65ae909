package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// TransactionTypes lists all valid transaction types.
var TransactionTypes = []TransactionType{TypeIncome, TypeExpense}

// Transaction represents a single money movement of a user.
//
// A transaction is alive as long as its DeletedAt timestamp is unset. Deleting
// through the default scope only sets the timestamp, the row stays in place so
// that administrators can restore or purge it.
type Transaction struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	User       User
	CategoryID uuid.UUID `gorm:"index"`
	Category   Category  `gorm:"constraint:OnDelete:RESTRICT"`
	Type       TransactionType
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date       time.Time       // Calendar date of the movement. Time of day is ignored.
	Note       string
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave validates the transaction and normalizes its fields
//
//   - the amount must be positive
//   - the date must not be in the future and is truncated to the day in UTC
//   - the type must be a known TransactionType
//   - whitespace is trimmed from the note
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if !slices.Contains(TransactionTypes, t.Type) {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	}
	t.Date = time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)

	// Compare dates, not instants: a transaction for today is valid at any
	// time of the day
	now := time.Now().In(time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if t.Date.After(today) {
		return ErrTransactionDateFuture
	}

	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// BeforeCreate verifies references to other resources.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	err := t.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	return t.checkIntegrity(tx)
}

// BeforeUpdate verifies the state of the transaction before
// committing an update to the database.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	// Single-column updates carry a map, not a resource
	toSave, ok := tx.Statement.Dest.(Transaction)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("CategoryID") {
		err := tx.First(&Category{}, toSave.CategoryID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("UserID") {
		err := tx.First(&User{}, toSave.UserID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the referenced user and category exist.
func (t *Transaction) checkIntegrity(tx *gorm.DB) error {
	err := tx.First(&User{}, t.UserID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, t.CategoryID).Error
}
