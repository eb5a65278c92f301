//go:build unit
// +build unit

package app

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAlice(t *testing.T, services *TestServices) *users.User {
	t.Helper()
	user, err := services.AuthService.Register(context.Background(), &users.Credentials{Username: "alice", Password: "wonderland"})
	require.NoError(t, err)
	return user
}

func TestAuthService_Register(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	user := registerAlice(t, services)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "wonderland", user.PasswordHash)

	_, err := services.AuthService.Register(context.Background(), &users.Credentials{Username: "alice", Password: "another-one"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = services.AuthService.Register(context.Background(), &users.Credentials{Username: "bob", Password: "short"})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = services.AuthService.Register(context.Background(), &users.Credentials{Username: "bob", Password: strings.Repeat("ü", 40)})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestAuthService_AuthenticateBasic(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	registerAlice(t, services)
	ctx := context.Background()

	user, err := services.AuthService.AuthenticateBasic(ctx, "alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	for _, tc := range []struct{ username, password string }{
		{"alice", "looking-glass"},
		{"mallory", "wonderland"},
	} {
		_, err := services.AuthService.AuthenticateBasic(ctx, tc.username, tc.password)
		appErr := requireStatus(t, err, http.StatusUnauthorized)
		assert.Equal(t, "Incorrect username or password", appErr.Detail)
		assert.Equal(t, "Basic", appErr.Headers["WWW-Authenticate"])
	}
}

func TestAuthService_LoginAndAuthenticateToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	registerAlice(t, services)
	ctx := context.Background()

	token, err := services.AuthService.Login(ctx, "alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	user, err := services.AuthService.AuthenticateToken(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = services.AuthService.Login(ctx, "alice", "nope")
	appErr := requireStatus(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Bearer", appErr.Headers["WWW-Authenticate"])

	_, err = services.AuthService.AuthenticateToken(ctx, token.AccessToken+"x")
	appErr = requireStatus(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Bearer", appErr.Headers["WWW-Authenticate"])
}

func TestAuthService_TokenForDeletedUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	token, _, err := services.Issuer.Issue("ghost")
	require.NoError(t, err)

	_, err = services.AuthService.AuthenticateToken(context.Background(), token)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestAuthService_IssueToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	registerAlice(t, services)

	token, err := services.AuthService.IssueToken(context.Background(), "alice")
	require.NoError(t, err)

	subject, err := services.Issuer.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, err = services.AuthService.IssueToken(context.Background(), "nobody")
	requireStatus(t, err, http.StatusNotFound)
}
