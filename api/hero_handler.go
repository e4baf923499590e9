package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/errs"
	"github.com/wbenmachich/portfolio-site-backend/models"
	"github.com/wbenmachich/portfolio-site-backend/services"
)

type heroHandler struct {
	responder Responder
	logger    zerolog.Logger
	heroRepo  database.HeroRepo
	images    services.ImageStore
}

func newHeroHandler(heroRepo database.HeroRepo, images services.ImageStore) heroHandler {
	logger := log.With().Str("handlerName", "heroHandler").Logger()

	return heroHandler{
		responder: NewResponder(logger),
		logger:    logger,
		heroRepo:  heroRepo,
		images:    images,
	}
}

// getHero returns the hero-section singleton. A missing record degrades to
// the placeholder image rather than erroring, so the public page always
// renders.
func (h heroHandler) getHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hero, err := h.heroRepo.Find(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "hero section", err))
			return
		}
		if hero == nil {
			hero = &models.HeroSection{Image: models.DefaultHeroImage}
		}

		h.responder.WriteJSON(w, hero)
	}
}

// upsertHero updates the singleton with only the fields present in the
// multipart form, creating the record on first use. An uploaded image file
// replaces the stored image URL; absent fields stay untouched.
func (h heroHandler) upsertHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		fields := map[string]string{}
		for _, key := range []string{"name", "title", "description"} {
			if value := r.FormValue(key); value != "" {
				fields[key] = value
			}
		}

		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			fh := files[0]
			f, err := fh.Open()
			if err != nil {
				h.responder.WriteError(w, errs.NewUploadError(fh.Filename, err))
				return
			}
			defer f.Close()

			url, err := h.images.Upload(r.Context(), "hero", fh.Filename, fh.Header.Get("Content-Type"), f)
			if err != nil {
				h.responder.WriteError(w, errs.NewUploadError(fh.Filename, err))
				return
			}
			fields["image"] = url
		}

		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no hero fields supplied"))
			return
		}

		hero, err := h.heroRepo.Upsert(r.Context(), fields)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "hero section", err))
			return
		}

		h.responder.WriteJSON(w, hero)
	}
}
