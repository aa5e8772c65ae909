package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAdminTransactionsRequireAdmin() {
	_, headers := suite.createTestUser(false)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/admin/transactions", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestAdminTransactionsList() {
	user, headers := suite.createTestUser(false)
	otherUser, otherHeaders := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	_ = suite.createTestTransaction(v1.TransactionEditable{Note: "Alive"}, headers)
	deleted := suite.createTestTransaction(v1.TransactionEditable{Note: "Deleted"}, headers)
	_ = suite.createTestTransaction(v1.TransactionEditable{Note: "Other user"}, otherHeaders)

	recorder := test.Request(suite.T(), http.MethodDelete, deleted.Links.Self, nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All transactions", "", 3},
		{"Only deleted", "deleted=true", 1},
		{"Only alive", "deleted=false", 2},
		{"By user", "user=" + user.ID.String(), 2},
		{"By user, only alive", "user=" + user.ID.String() + "&deleted=false", 1},
		{"By other user", "user=" + otherUser.ID.String(), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/admin/transactions?"+tt.query, nil, adminHeaders)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAdminTransactionRestore() {
	_, headers := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	transaction := suite.createTestTransaction(v1.TransactionEditable{Note: "Oops"}, headers)

	recorder := test.Request(suite.T(), http.MethodDelete, transaction.Links.Self, nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/admin/transactions/%s/restore", transaction.ID), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	assert.Nil(suite.T(), response.Data.DeletedAt)

	// The owner sees the transaction again
	recorder = test.Request(suite.T(), http.MethodGet, transaction.Links.Self, nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAdminTransactionRestoreAlive() {
	_, headers := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	transaction := suite.createTestTransaction(v1.TransactionEditable{}, headers)

	// Restoring a transaction that is not deleted is a no-op
	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/admin/transactions/%s/restore", transaction.ID), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAdminTransactionPurge() {
	_, headers := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	transaction := suite.createTestTransaction(v1.TransactionEditable{}, headers)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/admin/transactions/%s", transaction.ID), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The row is gone for good
	var count int64
	suite.Require().Nil(models.DB.Unscoped().Model(&models.Transaction{}).Where("id = ?", transaction.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/admin/transactions/%s", transaction.ID), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAdminTransactionPurgeDeleted() {
	_, headers := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	transaction := suite.createTestTransaction(v1.TransactionEditable{}, headers)

	recorder := test.Request(suite.T(), http.MethodDelete, transaction.Links.Self, nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Soft-deleted transactions can be purged as well
	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/admin/transactions/%s", transaction.ID), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestAdminTransactionOptions() {
	_, headers := suite.createTestUser(false)
	_, adminHeaders := suite.createTestUser(true)

	transaction := suite.createTestTransaction(v1.TransactionEditable{}, headers)

	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/admin/transactions", nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/admin/transactions/%s", transaction.ID), nil, adminHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "POST, DELETE", recorder.Header().Get("allow"))
}
