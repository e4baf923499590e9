package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbenmachich/portfolio-site-backend/database/mock"
)

func TestSubmitContact(t *testing.T) {
	t.Run("stores the message and notifies both parties", func(t *testing.T) {
		mocks := mock.NewMocks()
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
			"name":    "Sam Visitor",
			"email":   "sam@example.test",
			"message": "I'd like to collaborate.",
		}, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody[map[string]string](t, recorder)
		assert.Equal(t, "Message sent successfully", body["message"])
		assert.NotEmpty(t, body["id"])

		require.Len(t, mocks.Messages.Stored, 1)
		stored := mocks.Messages.Stored[0]
		assert.Equal(t, "Sam Visitor", stored.Name)
		assert.False(t, stored.Read)

		sent := mocks.Mailer.SentEmails()
		require.Len(t, sent, 2)
		recipients := map[string]bool{}
		for _, email := range sent {
			require.Len(t, email.Recipients, 1)
			recipients[email.Recipients[0]] = true
		}
		assert.True(t, recipients[testAdminEmail], "admin alert sent")
		assert.True(t, recipients["sam@example.test"], "sender acknowledgment sent")
	})

	t.Run("missing name fails before any write", func(t *testing.T) {
		mocks := mock.NewMocks()
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
			"email":   "sam@example.test",
			"message": "hello",
		}, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, mocks.Messages.Stored)
		assert.Empty(t, mocks.Mailer.SentEmails())
	})

	t.Run("invalid email address is rejected", func(t *testing.T) {
		mocks := mock.NewMocks()
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
			"name":    "Sam",
			"email":   "not-an-address",
			"message": "hello",
		}, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, mocks.Messages.Stored)
	})

	t.Run("email delivery failure still succeeds", func(t *testing.T) {
		mocks := mock.NewMocks()
		mocks.Mailer.SendErr = errors.New("smtp relay down")
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
			"name":    "Sam Visitor",
			"email":   "sam@example.test",
			"message": "hello",
		}, "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, mocks.Messages.Stored, 1, "message committed before delivery")
	})

	t.Run("database failure is fatal", func(t *testing.T) {
		mocks := mock.NewMocks()
		mocks.Messages.AddErr = errors.New("write concern failed")
		router := newTestRouter(t, mocks)

		recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
			"name":    "Sam Visitor",
			"email":   "sam@example.test",
			"message": "hello",
		}, "")
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Empty(t, mocks.Mailer.SentEmails(), "no notification without a committed message")
	})
}
