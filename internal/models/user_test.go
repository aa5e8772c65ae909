package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserNormalization() {
	user := suite.createTestUser(models.User{
		Username: "  morre ",
		Email:    " Morre@Example.COM ",
	})

	assert.Equal(suite.T(), "morre", user.Username)
	assert.Equal(suite.T(), "morre@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserUsernameTaken() {
	_ = suite.createTestUser(models.User{Username: "morre", Email: "morre@example.com"})

	err := models.DB.Create(&models.User{
		Username:     "morre",
		Email:        "other@example.com",
		PasswordHash: "not-a-real-hash",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrUsernameTaken)
}

func (suite *TestSuiteStandard) TestUserEmailTaken() {
	_ = suite.createTestUser(models.User{Username: "morre", Email: "morre@example.com"})

	err := models.DB.Create(&models.User{
		Username:     "other",
		Email:        "morre@example.com",
		PasswordHash: "not-a-real-hash",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEmailTaken)
}

func (suite *TestSuiteStandard) TestUserEmailCaseInsensitive() {
	_ = suite.createTestUser(models.User{Username: "morre", Email: "morre@example.com"})

	// Normalization lowercases the email before the uniqueness check
	err := models.DB.Create(&models.User{
		Username:     "other",
		Email:        "MORRE@example.com",
		PasswordHash: "not-a-real-hash",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEmailTaken)
}
