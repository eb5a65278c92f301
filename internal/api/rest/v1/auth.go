package v1

import (
	"net/http"
	"strings"

	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// Authenticate resolves the Authorization header to a user through HTTP
// Basic or a bearer token and stores it on the context.
func Authenticate(auth users.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, credentials, _ := strings.Cut(header, " ")

		var (
			user *users.User
			err  error
		)
		switch {
		case strings.EqualFold(scheme, "Basic"):
			username, password, ok := ctx.Request.BasicAuth()
			if !ok {
				abortWithError(ctx, apperr.Unauthorized("Basic", "Incorrect username or password"))
				return
			}
			user, err = auth.AuthenticateBasic(ctx.Request.Context(), username, password)
		case strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(credentials) != "":
			user, err = auth.AuthenticateToken(ctx.Request.Context(), strings.TrimSpace(credentials))
		default:
			abortWithError(ctx, apperr.Unauthorized("Basic", "Not authenticated"))
			return
		}
		if err != nil {
			abortWithError(ctx, err)
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user stored by Authenticate
func CurrentUser(ctx *gin.Context) (*users.User, bool) {
	value, ok := ctx.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*users.User)
	return user, ok
}

// UserHandler serves the token and current-user endpoints
type UserHandler interface {
	Token(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type userHandler struct {
	auth users.AuthService
}

// NewUserHandler creates a UserHandler
func NewUserHandler(auth users.AuthService) UserHandler {
	return &userHandler{auth: auth}
}

// Token exchanges a username and password for a bearer token.
func (h *userHandler) Token(ctx *gin.Context) {
	var req TokenRequest
	if err := ctx.ShouldBind(&req); err != nil {
		abortWithError(ctx, bindingError(err))
		return
	}

	token, err := h.auth.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{AccessToken: token.AccessToken, TokenType: token.TokenType})
}

func (h *userHandler) Me(ctx *gin.Context) {
	user, ok := CurrentUser(ctx)
	if !ok {
		abortWithError(ctx, apperr.Unauthorized("Basic", "Not authenticated"))
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}
