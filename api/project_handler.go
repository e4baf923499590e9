package api

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/errs"
	"github.com/wbenmachich/portfolio-site-backend/models"
	"github.com/wbenmachich/portfolio-site-backend/services"
)

// maxUploadBytes bounds the multipart payload of project and hero forms.
const maxUploadBytes = 32 << 20

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo database.ProjectRepo
	images      services.ImageStore
}

func newProjectHandler(projectRepo database.ProjectRepo, images services.ImageStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		images:      images,
	}
}

// getAllProjects retrieves all projects, newest first
// @Summary Get all projects
// @Description Retrieves all projects from the database, newest first
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves detailed information about a specific project by ID
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.findProject(w, r)
		if !ok {
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project from the admin multipart form
// @Summary Create project
// @Description Creates a new project with 1-6 uploaded images and a chosen primary image
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Upload or persistence failure"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		input, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("images"))
			return
		}
		if len(files) > models.MaxProjectImages {
			h.responder.WriteError(w, errs.NewInvalidFieldError("images", "at most 6 images per project"))
			return
		}

		// Uploads run sequentially; each produces an independent remote URL.
		var projectImages []models.ProjectImage
		for _, fh := range files {
			url, err := h.uploadImage(r, fh)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			projectImages = append(projectImages, models.ProjectImage{URL: url})
		}

		now := time.Now().UTC()
		project := models.Project{
			Title:           input.title,
			Description:     input.description,
			Images:          models.MarkPrimary(projectImages, input.primaryIndex),
			Github:          input.github,
			Playstore:       input.playstore,
			Tags:            input.tags,
			BackgroundColor: input.backgroundColor,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject merges retained and newly uploaded images and re-derives
// the primary image from a single index spanning both, retained first
// @Summary Update project
// @Description Updates a project, replacing its image list with retained plus newly uploaded images
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, ok := h.findProject(w, r)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		input, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var retained []models.ProjectImage
		if raw := r.FormValue("existingImages"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &retained); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("existingImages", "must be a JSON array of images"))
				return
			}
		}

		images := make([]models.ProjectImage, 0, len(retained))
		for _, img := range retained {
			images = append(images, models.ProjectImage{URL: img.URL})
		}

		newFiles := r.MultipartForm.File["newImages"]
		if len(images)+len(newFiles) > models.MaxProjectImages {
			h.responder.WriteError(w, errs.NewInvalidFieldError("newImages", "at most 6 images per project"))
			return
		}

		for _, fh := range newFiles {
			url, err := h.uploadImage(r, fh)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			images = append(images, models.ProjectImage{URL: url})
		}

		project := models.Project{
			ID:              existing.ID,
			Title:           input.title,
			Description:     input.description,
			Images:          models.MarkPrimary(images, input.primaryIndex),
			Github:          input.github,
			Playstore:       input.playstore,
			Tags:            input.tags,
			BackgroundColor: input.backgroundColor,
			CreatedAt:       existing.CreatedAt,
			UpdatedAt:       time.Now().UTC(),
		}

		if err := h.projectRepo.Update(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project and best-effort removes its stored images
// @Summary Delete project
// @Description Deletes a project; image-store cleanup failures are logged, never fatal
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.findProject(w, r)
		if !ok {
			return
		}

		// Best-effort cleanup: every image gets a deletion attempt, failures
		// leave orphaned remote assets and are only logged.
		failed := 0
		for _, img := range project.Images {
			if err := h.images.Delete(r.Context(), img.URL); err != nil {
				failed++
				h.logger.Warn().Err(err).Str("url", img.URL).Msg("Failed to delete project image from store")
			}
		}
		if failed > 0 {
			h.logger.Warn().
				Int("failed", failed).
				Int("total", len(project.Images)).
				Str("projectID", project.ID.Hex()).
				Msg("Project image cleanup incomplete")
		}

		if err := h.projectRepo.Delete(r.Context(), project.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project and associated images deleted successfully",
		})
	}
}

// findProject resolves the projectID URL parameter to a record, writing the
// 400/404/500 response itself when resolution fails.
func (h projectHandler) findProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return nil, false
	}

	projectID, err := primitive.ObjectIDFromHex(projectIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return nil, false
	}

	project, err := h.projectRepo.FindByID(r.Context(), projectID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
		return nil, false
	}
	if project == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
		return nil, false
	}

	return project, true
}

type projectFormInput struct {
	title           string
	description     string
	github          string
	playstore       string
	tags            []string
	backgroundColor string
	primaryIndex    int
}

// parseProjectForm validates the shared text fields of the create and
// update multipart forms. A missing or unparsable primaryImageIndex yields
// -1, which marks no image primary.
func parseProjectForm(r *http.Request) (projectFormInput, error) {
	input := projectFormInput{
		title:           r.FormValue("title"),
		description:     r.FormValue("description"),
		github:          r.FormValue("github"),
		playstore:       r.FormValue("playstore"),
		backgroundColor: r.FormValue("backgroundColor"),
		tags:            []string{},
		primaryIndex:    -1,
	}

	if input.title == "" {
		return input, errs.NewMissingRequiredFieldError("title")
	}
	if input.description == "" {
		return input, errs.NewMissingRequiredFieldError("description")
	}
	if input.backgroundColor == "" {
		input.backgroundColor = models.DefaultBackgroundColor
	}

	if raw := r.FormValue("tags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.tags); err != nil {
			return input, errs.NewInvalidFieldError("tags", "must be a JSON array of strings")
		}
	}

	if raw := r.FormValue("primaryImageIndex"); raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil {
			input.primaryIndex = idx
		}
	}

	return input, nil
}

// uploadImage streams one multipart file to the image store. Upload
// failures on the create/update path are fatal to the request.
func (h projectHandler) uploadImage(r *http.Request, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", errs.NewUploadError(fh.Filename, err)
	}
	defer f.Close()

	url, err := h.images.Upload(r.Context(), "portfolio", fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		return "", errs.NewUploadError(fh.Filename, err)
	}
	return url, nil
}
