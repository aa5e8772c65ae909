package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/auth"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the unauthenticated auth routes with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, issuer *auth.Issuer) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", RegisterUser)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login(issuer))
}

// RegisterMeRoutes registers the routes for the authenticated user with
// the RouterGroup that is passed. The group must be behind the
// authentication middleware.
func RegisterMeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMe)
	r.GET("", GetMe)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/me [options]
// @Security		Bearer
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Register user
// @Description	Creates a new user account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func RegisterUser(c *gin.Context) {
	var editable RegisterEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		Username:     editable.Username,
		Email:        editable.Email,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// Login returns the handler that exchanges credentials for a bearer token.
//
//	@Summary		Log in
//	@Description	Verifies the credentials and returns a bearer token for the user
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	LoginResponse
//	@Failure		400			{object}	LoginResponse
//	@Failure		401			{object}	LoginResponse
//	@Failure		500			{object}	LoginResponse
//	@Param			credentials	body		LoginEditable	true	"Credentials"
//	@Router			/v1/auth/login [post]
func Login(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable LoginEditable

		err := httputil.BindData(c, &editable)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), LoginResponse{
				Error: &s,
			})
			return
		}

		// A missing user and a wrong password are indistinguishable in the
		// response so that usernames cannot be probed
		var user models.User
		err = models.DB.First(&user, "username = ?", editable.Username).Error
		if err != nil || !auth.CheckPassword(user.PasswordHash, editable.Password) {
			s := errLoginFailed.Error()
			c.JSON(http.StatusUnauthorized, LoginResponse{
				Error: &s,
			})
			return
		}

		token, expiresAt, err := issuer.Issue(user.ID)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusInternalServerError, LoginResponse{
				Error: &s,
			})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{Data: &Token{
			Token:     token,
			ExpiresAt: expiresAt,
		}})
	}
}

// @Summary		Get the authenticated user
// @Description	Returns the user the bearer token belongs to
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/auth/me [get]
// @Security		Bearer
func GetMe(c *gin.Context) {
	data := newUser(c, requestUser(c))
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
