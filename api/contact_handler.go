package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/errs"
	"github.com/wbenmachich/portfolio-site-backend/models"
	"github.com/wbenmachich/portfolio-site-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo database.MessageRepo
	notifier    *services.ContactNotifier
	validate    *validator.Validate
}

func newContactHandler(messageRepo database.MessageRepo, notifier *services.ContactNotifier, validate *validator.Validate) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		notifier:    notifier,
		validate:    validate,
	}
}

// submitContact handles the public contact form. Validation failures stop
// before any database write; the database write is the source of truth and
// email delivery after it is best-effort.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.Message
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}
		if err := h.validate.Struct(message); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		message.Read = false
		message.CreatedAt = time.Now().UTC()

		if err := h.messageRepo.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		if err := h.notifier.Notify(r.Context(), message.Name, message.Email, message.Message); err != nil {
			h.logger.Error().Err(err).Str("messageID", message.ID.Hex()).Msg("Contact notification delivery failed")
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Message sent successfully",
			"id":      message.ID.Hex(),
		})
	}
}
