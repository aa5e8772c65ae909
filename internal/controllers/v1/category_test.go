package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Food & Drink"})

	assert.Equal(suite.T(), "Food & Drink", category.Name)
	assert.Equal(suite.T(), "food-drink", category.Code)
	assert.True(suite.T(), category.Active)
}

func (suite *TestSuiteStandard) TestCategoryCreateRequiresAdmin() {
	_, headers := suite.createTestUser(false)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "Nope"}}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestCategoryList() {
	_, headers := suite.createTestUser(false)

	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Transport"})

	inactive := false
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Retired", Active: &inactive})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Inactive categories are hidden, the list is ordered by name
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Name)
	assert.Equal(suite.T(), "Transport", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryListInactive() {
	_, headers := suite.createTestUser(false)

	inactive := false
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Retired", Active: &inactive})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?active=false", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Retired", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoryGet() {
	_, headers := suite.createTestUser(false)
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/"+category.ID.String(), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), category.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestCategoryGetFails() {
	_, headers := suite.createTestUser(false)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
		{"No category", "4e743e94-6a4b-44d6-aba5-d77c87103223", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories/"+tt.id, nil, headers)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	_, adminHeaders := suite.createTestUser(true)
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	inactive := false
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/categories/"+category.ID.String(), map[string]any{
		"active": inactive,
	}, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.False(suite.T(), response.Data.Active)
	assert.Equal(suite.T(), "Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryUpdateRequiresAdmin() {
	_, headers := suite.createTestUser(false)
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/categories/"+category.ID.String(), map[string]any{
		"name": "Hijacked",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	_, adminHeaders := suite.createTestUser(true)
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/"+category.ID.String(), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/"+category.ID.String(), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDeleteReferenced() {
	_, headers := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(10),
	}, headers)

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/"+category.ID.String(), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), response.Error, "cannot be deleted while transactions reference it")
}

func (suite *TestSuiteStandard) TestCategoryOptions() {
	_, headers := suite.createTestUser(false)
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
