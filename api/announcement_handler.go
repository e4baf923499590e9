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

type announcementHandler struct {
	responder        Responder
	logger           zerolog.Logger
	announcementRepo database.AnnouncementRepo
	validate         *validator.Validate
}

func newAnnouncementHandler(announcementRepo database.AnnouncementRepo, validate *validator.Validate) announcementHandler {
	logger := log.With().Str("handlerName", "announcementHandler").Logger()

	return announcementHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		announcementRepo: announcementRepo,
		validate:         validate,
	}
}

// getActiveAnnouncement returns the most recently created active
// announcement, or JSON null when none is active. Side-effect free.
func (h announcementHandler) getActiveAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcement, err := h.announcementRepo.FindActive(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "announcement", err))
			return
		}

		h.responder.WriteJSON(w, announcement)
	}
}

// createAnnouncement deactivates every existing announcement, then inserts
// the new one as active, so exactly one record stays active afterward.
func (h announcementHandler) createAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text" validate:"required"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("announcement", err))
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		if err := h.announcementRepo.DeactivateAll(r.Context()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("deactivate", "announcements", err))
			return
		}

		announcement := models.Announcement{
			Text:      req.Text,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.announcementRepo.Add(r.Context(), &announcement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "announcement", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, announcement)
	}
}

// updateAnnouncement edits an announcement by id in place. The active flag
// only changes when the payload supplies it.
func (h announcementHandler) updateAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID       string `json:"id" validate:"required"`
			Text     string `json:"text" validate:"required"`
			IsActive *bool  `json:"isActive"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("announcement", err))
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid announcement id"))
			return
		}

		announcement, err := h.announcementRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "announcement", err))
			return
		}
		if announcement == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("announcement not found"))
			return
		}

		announcement.Text = req.Text
		if req.IsActive != nil {
			announcement.IsActive = *req.IsActive
		}

		// An update that leaves the record active deactivates everything
		// else first, same as create, so at most one record stays active.
		if announcement.IsActive {
			if err := h.announcementRepo.DeactivateAll(r.Context()); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("deactivate", "announcements", err))
				return
			}
		}

		if err := h.announcementRepo.Update(r.Context(), announcement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "announcement", err))
			return
		}

		h.responder.WriteJSON(w, announcement)
	}
}

// deleteAnnouncement removes an announcement by id. Deleting the only
// active record returns the site to the no-active-announcement state.
func (h announcementHandler) deleteAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id" validate:"required"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("announcement", err))
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		id, err := primitive.ObjectIDFromHex(req.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid announcement id"))
			return
		}

		announcement, err := h.announcementRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "announcement", err))
			return
		}
		if announcement == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("announcement not found"))
			return
		}

		if err := h.announcementRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "announcement", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "announcement deleted successfully",
		})
	}
}
