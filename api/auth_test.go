package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbenmachich/portfolio-site-backend/database/mock"
)

func TestLogin(t *testing.T) {
	router := newTestRouter(t, mock.NewMocks())

	t.Run("correct password issues token and session cookie", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"password": testAdminPassword,
		}, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody[map[string]string](t, recorder)
		assert.NotEmpty(t, body["token"])

		var session *http.Cookie
		for _, cookie := range recorder.Result().Cookies() {
			if cookie.Name == "admin_session" {
				session = cookie
			}
		}
		require.NotNil(t, session, "session cookie not set")
		assert.Equal(t, body["token"], session.Value)
		assert.True(t, session.HttpOnly)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
			"password": "not-the-password",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing password is a bad request", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{}, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAccessGate(t *testing.T) {
	router := newTestRouter(t, mock.NewMocks())

	t.Run("mutating route without token is unauthorized", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/messages", nil, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/messages", nil, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/messages", nil, adminToken(t, -time.Hour))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid bearer token is admitted", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/messages", nil, adminToken(t, time.Hour))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("valid session cookie is admitted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
		req.AddCookie(&http.Cookie{Name: "admin_session", Value: adminToken(t, time.Hour)})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("public reads need no token", func(t *testing.T) {
		for _, path := range []string{"/api/projects", "/api/experiences", "/api/announcements", "/api/hero"} {
			recorder := doJSON(t, router, http.MethodGet, path, nil, "")
			assert.Equal(t, http.StatusOK, recorder.Code, path)
		}
	})
}
