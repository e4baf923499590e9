package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wbenmachich/portfolio-site-backend/database/mock"
	"github.com/wbenmachich/portfolio-site-backend/models"
)

func TestGetAllMessages(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Messages.Stored = []*models.Message{
		{ID: primitive.NewObjectID(), Name: "First", Email: "a@b.c", Message: "hi", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: primitive.NewObjectID(), Name: "Second", Email: "a@b.c", Message: "hi again", CreatedAt: time.Now()},
	}
	router := newTestRouter(t, mocks)

	recorder := doJSON(t, router, http.MethodGet, "/api/messages", nil, adminToken(t, time.Hour))
	require.Equal(t, http.StatusOK, recorder.Code)

	messages := decodeBody[[]models.Message](t, recorder)
	require.Len(t, messages, 2)
	assert.Equal(t, "Second", messages[0].Name, "newest first")
}

func TestCreateMessage(t *testing.T) {
	t.Run("inserts without email side effects", func(t *testing.T) {
		mocks := mock.NewMocks()
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPost, "/api/messages", map[string]string{
			"name":    "Manual Entry",
			"email":   "entry@example.test",
			"message": "typed in by the admin",
		}, adminToken(t, time.Hour))
		require.Equal(t, http.StatusCreated, recorder.Code)

		assert.Len(t, mocks.Messages.Stored, 1)
		assert.Empty(t, mocks.Mailer.SentEmails())
	})

	t.Run("rejects an invalid payload", func(t *testing.T) {
		router := newTestRouter(t, mock.NewMocks())

		recorder := doJSON(t, router, http.MethodPost, "/api/messages", map[string]string{
			"name": "No Email",
		}, adminToken(t, time.Hour))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSetMessageRead(t *testing.T) {
	t.Run("toggles only the addressed message", func(t *testing.T) {
		mocks := mock.NewMocks()
		target := &models.Message{ID: primitive.NewObjectID(), Name: "A", Email: "a@b.c", Message: "m"}
		other := &models.Message{ID: primitive.NewObjectID(), Name: "B", Email: "a@b.c", Message: "m"}
		mocks.Messages.Stored = []*models.Message{target, other}
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPut, "/api/messages", map[string]any{
			"id":   target.ID.Hex(),
			"read": true,
		}, adminToken(t, time.Hour))
		require.Equal(t, http.StatusOK, recorder.Code)

		message := decodeBody[models.Message](t, recorder)
		assert.True(t, message.Read)
		assert.True(t, mocks.Messages.Stored[0].Read)
		assert.False(t, mocks.Messages.Stored[1].Read)
	})

	t.Run("can mark a message unread again", func(t *testing.T) {
		mocks := mock.NewMocks()
		target := &models.Message{ID: primitive.NewObjectID(), Name: "A", Email: "a@b.c", Message: "m", Read: true}
		mocks.Messages.Stored = []*models.Message{target}
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPut, "/api/messages", map[string]any{
			"id":   target.ID.Hex(),
			"read": false,
		}, adminToken(t, time.Hour))
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.False(t, mocks.Messages.Stored[0].Read)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		router := newTestRouter(t, mock.NewMocks())

		recorder := doJSON(t, router, http.MethodPut, "/api/messages", map[string]any{
			"id":   primitive.NewObjectID().Hex(),
			"read": true,
		}, adminToken(t, time.Hour))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed id is a bad request", func(t *testing.T) {
		router := newTestRouter(t, mock.NewMocks())

		recorder := doJSON(t, router, http.MethodPut, "/api/messages", map[string]any{
			"id":   "nope",
			"read": true,
		}, adminToken(t, time.Hour))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, mock.NewMocks())

	recorder := doJSON(t, router, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody[map[string]string](t, recorder)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["uptime"])
}
