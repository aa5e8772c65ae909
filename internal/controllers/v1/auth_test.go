package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Username: "morre",
		Email:    "morre@example.com",
		Password: "correct-horse-bs",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), "morre", response.Data.Username)
	assert.Equal(suite.T(), "morre@example.com", response.Data.Email)
	assert.False(suite.T(), response.Data.Admin)
}

func (suite *TestSuiteStandard) TestRegisterFails() {
	_ = suite.registerTestUser("morre", "morre@example.com")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ "username": 2 }`, http.StatusBadRequest},
		{"Password too short", v1.RegisterEditable{Username: "short", Email: "short@example.com", Password: "short"}, http.StatusBadRequest},
		{"Username taken", v1.RegisterEditable{Username: "morre", Email: "new@example.com", Password: "correct-horse-bs"}, http.StatusBadRequest},
		{"Email taken", v1.RegisterEditable{Username: "new", Email: "morre@example.com", Password: "correct-horse-bs"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// registerTestUser registers a user with the default test password.
func (suite *TestSuiteStandard) registerTestUser(username, email string) v1.User {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Username: username,
		Email:    email,
		Password: "correct-horse-bs",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestLogin() {
	_ = suite.registerTestUser("morre", "morre@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Username: "morre",
		Password: "correct-horse-bs",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().NotEmpty(response.Data.Token)

	// The token authenticates its user
	me := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + response.Data.Token,
	})
	test.AssertHTTPStatus(suite.T(), &me, http.StatusOK)

	var meResponse v1.UserResponse
	test.DecodeResponse(suite.T(), &me, &meResponse)
	suite.Require().NotNil(meResponse.Data)
	assert.Equal(suite.T(), "morre", meResponse.Data.Username)
}

func (suite *TestSuiteStandard) TestLoginFails() {
	_ = suite.registerTestUser("morre", "morre@example.com")

	tests := []struct {
		name string
		body v1.LoginEditable
	}{
		{"Wrong password", v1.LoginEditable{Username: "morre", Password: "wrong-password-x"}},
		{"Unknown user", v1.LoginEditable{Username: "nobody", Password: "correct-horse-bs"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)

			var response v1.LoginResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestMeUnauthenticated() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"No header", nil},
		{"No bearer prefix", map[string]string{"Authorization": "token"}},
		{"Garbage token", map[string]string{"Authorization": "Bearer garbage"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/auth/me", nil, tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestMeDeletedUser() {
	user, headers := suite.createTestUser(false)

	suite.Require().Nil(models.DB.Unscoped().Delete(&user).Error)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/me", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
