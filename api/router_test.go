package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wbenmachich/portfolio-site-backend/api"
	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/database/mock"
	"github.com/wbenmachich/portfolio-site-backend/services"
)

const (
	testJWTSecret     = "test-secret"
	testAdminPassword = "correct-horse-battery-staple"
	testAdminEmail    = "admin@example.test"
	testSiteOwner     = "Test Owner"
)

func newTestRouter(t *testing.T, m *mock.Mocks) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	db := database.NewWithRepos(m.Projects, m.Experiences, m.Announcements, m.Hero, m.Messages)
	notifier := services.NewContactNotifier(m.Mailer, testAdminEmail, testSiteOwner)

	return api.NewRouter(db, m.Images, notifier, api.WithConfig(map[string]string{
		"JWT_SECRET":          testJWTSecret,
		"ADMIN_PASSWORD_HASH": string(hash),
		"ACCEPTED_ORIGINS":    "*",
	}))
}

// adminToken signs a session token the way the login handler does.
func adminToken(t *testing.T, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// doMultipart builds a multipart form with text fields and fake image files
// keyed by form field name.
func doMultipart(t *testing.T, router http.Handler, method, path string, fields map[string]string, files map[string][]string, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}
