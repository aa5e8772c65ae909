package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type RegisterEditable struct {
	Username string `json:"username" example:"morre"`             // Name the user logs in with
	Email    string `json:"email" example:"morre@example.com"`    // Email address of the user
	Password string `json:"password" example:"correct-horse-bs"` // Password, at least 8 characters
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/auth/me"` // The user itself
}

// User is the representation of a User in API v1.
//
// The password hash is never part of the representation.
type User struct {
	models.DefaultModel
	Username string    `json:"username" example:"morre"`
	Email    string    `json:"email" example:"morre@example.com"`
	Admin    bool      `json:"admin" example:"false"`
	Links    UserLinks `json:"links"`
}

// newUser returns the API v1 representation of the resource
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.ContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
		Email:        model.Email,
		Admin:        model.Admin,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/auth/me", url),
		},
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"the username is already in use"` // The error, if any occurred
	Data  *User   `json:"data"`                                          // The User data
}

type LoginEditable struct {
	Username string `json:"username" example:"morre"`
	Password string `json:"password" example:"correct-horse-bs"`
}

type Token struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiJ9.e30.ZRrHA1JJJW8opsbCGfG_HACGpVUMN_a9IV7pAx_Zmeo"` // Bearer token for the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2024-03-21T18:43:00.271152Z"`                                      // Time at which the token expires
}

type LoginResponse struct {
	Error *string `json:"error" example:"the username or password is incorrect"` // The error, if any occurred
	Data  *Token  `json:"data"`                                                  // The token, if login was successful
}
