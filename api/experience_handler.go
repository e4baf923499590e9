package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/errs"
	"github.com/wbenmachich/portfolio-site-backend/models"
)

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo database.ExperienceRepo
	validate       *validator.Validate
}

func newExperienceHandler(experienceRepo database.ExperienceRepo, validate *validator.Validate) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
		validate:       validate,
	}
}

// getAllExperiences returns all experiences sorted by display order
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}
		if experiences == nil {
			experiences = []*models.Experience{}
		}

		h.responder.WriteJSON(w, experiences)
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experience, err := h.decodeExperience(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience.ID = primitive.NilObjectID
		experience.CreatedAt = time.Now().UTC()

		if err := h.experienceRepo.Add(r.Context(), experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, experience)
	}
}

func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, ok := h.findExperience(w, r)
		if !ok {
			return
		}

		experience, err := h.decodeExperience(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience.ID = existing.ID
		experience.CreatedAt = existing.CreatedAt

		if err := h.experienceRepo.Update(r.Context(), experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, ok := h.findExperience(w, r)
		if !ok {
			return
		}

		// Order values of remaining entries are left untouched; gaps in the
		// display sequence are part of the contract.
		if err := h.experienceRepo.Delete(r.Context(), existing.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience deleted successfully",
		})
	}
}

func (h experienceHandler) findExperience(w http.ResponseWriter, r *http.Request) (*models.Experience, bool) {
	experienceIDStr := chi.URLParam(r, "experienceID")
	if experienceIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing experienceID"))
		return nil, false
	}

	experienceID, err := primitive.ObjectIDFromHex(experienceIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
		return nil, false
	}

	experience, err := h.experienceRepo.FindByID(r.Context(), experienceID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
		return nil, false
	}
	if experience == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
		return nil, false
	}

	return experience, true
}

// decodeExperience parses and validates the JSON body shared by create and
// update. Blank responsibility/technology entries are dropped rather than
// rejected; the admin form submits trailing empty rows.
func (h experienceHandler) decodeExperience(r *http.Request) (*models.Experience, error) {
	var experience models.Experience
	if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
		return nil, errs.NewMalformedPayloadError("experience", err)
	}

	if err := h.validate.Struct(experience); err != nil {
		return nil, validationError(err)
	}

	experience.Responsibilities = dropBlank(experience.Responsibilities)
	experience.Technologies = dropBlank(experience.Technologies)

	return &experience, nil
}

func dropBlank(entries []string) []string {
	kept := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			kept = append(kept, entry)
		}
	}
	return kept
}
