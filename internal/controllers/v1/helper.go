package v1

import (
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// requestUser returns the authenticated user for the request.
//
// It must only be called from handlers behind the authentication middleware,
// which guarantees that a user is set in the context.
func requestUser(c *gin.Context) models.User {
	return c.MustGet(string(models.ContextUser)).(models.User)
}
