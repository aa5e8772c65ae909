package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{Active: true})

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromFloat(-1.5)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&models.Transaction{
				UserID:     user.ID,
				CategoryID: category.ID,
				Type:       models.TypeExpense,
				Amount:     tt.amount,
			}).Error

			assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNotPositive)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{Active: true})

	err := models.DB.Create(&models.Transaction{
		UserID:     user.ID,
		CategoryID: category.ID,
		Type:       "TRANSFER",
		Amount:     decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionDateFuture() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{Active: true})

	err := models.DB.Create(&models.Transaction{
		UserID:     user.ID,
		CategoryID: category.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(10),
		Date:       time.Now().In(time.UTC).AddDate(0, 0, 1),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionDateFuture)
}

func (suite *TestSuiteStandard) TestTransactionDateToday() {
	// A transaction for today is valid at any time of the day
	transaction := suite.createTestTransaction(models.Transaction{
		Date: time.Now().In(time.UTC),
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
	assert.Equal(suite.T(), 0, transaction.Date.Hour())
}

func (suite *TestSuiteStandard) TestTransactionDateTruncated() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := suite.createTestTransaction(models.Transaction{
		Date: time.Date(2024, 3, 21, 18, 43, 0, 0, tz),
	})

	assert.True(suite.T(), transaction.Date.Equal(date(2024, 3, 21)), "Date is %s", transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionDateDefault() {
	transaction := suite.createTestTransaction(models.Transaction{})

	now := time.Now().In(time.UTC)
	assert.True(suite.T(), transaction.Date.Equal(date(now.Year(), now.Month(), now.Day())))
}

func (suite *TestSuiteStandard) TestTransactionNoteTrimmed() {
	transaction := suite.createTestTransaction(models.Transaction{Note: "  Lunch "})
	assert.Equal(suite.T(), "Lunch", transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionCategoryMustExist() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Transaction{
		UserID:     user.ID,
		CategoryID: uuid.New(),
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionUserMustExist() {
	category := suite.createTestCategory(models.Category{Active: true})

	err := models.DB.Create(&models.Transaction{
		UserID:     uuid.New(),
		CategoryID: category.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionSoftDelete() {
	transaction := suite.createTestTransaction(models.Transaction{})

	err := models.DB.Delete(&transaction).Error
	assert.Nil(suite.T(), err)

	// The default scope does not see the transaction anymore
	var count int64
	_ = models.DB.Model(&models.Transaction{}).Count(&count).Error
	assert.Equal(suite.T(), int64(0), count)

	// The row is still there
	var unscoped models.Transaction
	err = models.DB.Unscoped().First(&unscoped, transaction.ID).Error
	assert.Nil(suite.T(), err)
	assert.NotNil(suite.T(), unscoped.DeletedAt)
}
