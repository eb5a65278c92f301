//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate_Basic(t *testing.T) {
	tr := newTestRouter(t)
	tr.auth.On("AuthenticateBasic", mock.Anything, testUsername, "wrong").
		Return(nil, apperr.Unauthorized("Basic", "Incorrect username or password"))

	w := tr.serve(authenticated(httptest.NewRequest(http.MethodGet, "/users/me", nil)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"alice"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.SetBasicAuth(testUsername, "wrong")
	w = tr.serve(req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Basic", w.Header().Get("WWW-Authenticate"))

	var body ErrorResponse
	testutil.DecodeJSON(t, w, &body)
	assert.Equal(t, "Incorrect username or password", body.Detail)
}

func TestAuthenticate_MalformedBasic(t *testing.T) {
	tr := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Basic not-base64!")
	w := tr.serve(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	tr.auth.AssertNotCalled(t, "AuthenticateBasic", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticate_Bearer(t *testing.T) {
	tr := newTestRouter(t)
	tr.auth.On("AuthenticateToken", mock.Anything, "good-token").Return(&users.User{ID: 2, Username: "bob"}, nil)
	tr.auth.On("AuthenticateToken", mock.Anything, "expired").
		Return(nil, apperr.Unauthorized("Bearer", "Could not validate credentials"))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := tr.serve(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"username":"bob"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w = tr.serve(req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestUserHandler_Token(t *testing.T) {
	tr := newTestRouter(t)
	token := &users.Token{AccessToken: "signed", TokenType: users.TokenTypeBearer, ExpiresAt: time.Now().Add(time.Hour)}
	tr.auth.On("Login", mock.Anything, testUsername, testPassword).Return(token, nil)
	tr.auth.On("Login", mock.Anything, testUsername, "wrong").
		Return(nil, apperr.Unauthorized("Bearer", "Incorrect username or password"))

	t.Run("json", func(t *testing.T) {
		body := map[string]string{"username": testUsername, "password": testPassword}
		w := tr.serve(testutil.NewJSONRequest(t, http.MethodPost, "/auth/token", body))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"access_token":"signed","token_type":"bearer"}`, w.Body.String())
	})

	t.Run("form", func(t *testing.T) {
		form := url.Values{"username": {testUsername}, "password": {testPassword}}
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := tr.serve(req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		body := map[string]string{"username": testUsername, "password": "wrong"}
		w := tr.serve(testutil.NewJSONRequest(t, http.MethodPost, "/auth/token", body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("missing password", func(t *testing.T) {
		w := tr.serve(testutil.NewJSONRequest(t, http.MethodPost, "/auth/token", map[string]string{"username": testUsername}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
