package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/errs"
	"github.com/wbenmachich/portfolio-site-backend/models"
)

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo database.MessageRepo
	validate    *validator.Validate
}

func newMessageHandler(messageRepo database.MessageRepo, validate *validator.Validate) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		validate:    validate,
	}
}

// getAllMessages returns the admin inbox, newest first
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}
		if messages == nil {
			messages = []*models.Message{}
		}

		h.responder.WriteJSON(w, messages)
	}
}

// createMessage inserts a message directly, without the contact-form email
// side effects. Used by the admin dashboard.
func (h messageHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.Message
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("message", err))
			return
		}
		if err := h.validate.Struct(message); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		message.ID = primitive.NilObjectID
		message.Read = false
		message.CreatedAt = time.Now().UTC()

		if err := h.messageRepo.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

// setMessageRead toggles the read flag for one message by id
func (h messageHandler) setMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID   string `json:"id" validate:"required"`
			Read bool   `json:"read"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("message", err))
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid message id"))
			return
		}

		message, err := h.messageRepo.SetRead(r.Context(), id, req.Read)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}
