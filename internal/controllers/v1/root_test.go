package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "http://example.com/v1/auth", response.Links.Auth)
	assert.Equal(suite.T(), "http://example.com/v1/categories", response.Links.Categories)
	assert.Equal(suite.T(), "http://example.com/v1/months", response.Links.Months)
	assert.Equal(suite.T(), "http://example.com/v1/summary", response.Links.Summary)
	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCleanup() {
	_, headers := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	_ = suite.createTestTransaction(v1.TransactionEditable{CategoryID: category.ID}, headers)

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// No resources remain, not even soft-deleted ones
	for name, model := range map[string]any{
		"Transaction": &models.Transaction{},
		"Category":    &models.Category{},
		"User":        &models.User{},
	} {
		var count int64
		suite.Require().Nil(models.DB.Unscoped().Model(model).Count(&count).Error)
		assert.Equal(suite.T(), int64(0), count, "%s resources remain", name)
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	_, adminHeaders := suite.createTestUser(true)

	tests := []struct {
		name  string
		query string
	}{
		{"No confirmation", ""},
		{"Wrong confirmation", "confirm=yes-please-delete-my-data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, "http://example.com/v1?"+tt.query, nil, adminHeaders)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupRequiresAdmin() {
	_, headers := suite.createTestUser(false)

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
