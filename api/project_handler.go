package api

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/errs"
	"github.com/3d-debian/portfolio-backend/models"
)

// allDigits decides whether a /projects path token is a numeric id or a
// category name.
var allDigits = regexp.MustCompile(`^\d+$`)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo database.ProjectRepo
}

func newProjectHandler(projectRepo database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Description Retrieves every portfolio project
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves one project by id, or filters by category when the
// path token is not numeric ("all" short-circuits to the full list)
// @Summary Get project by id or category
// @Description Numeric token looks up one project; any other token filters by category
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project id or category name"
// @Success 200 {object} models.Project "Project details, or a list when filtering"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		param := chi.URLParam(r, "projectID")
		if param == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		if allDigits.MatchString(param) {
			projectID, err := strconv.Atoi(param)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
				return
			}

			project, err := h.projectRepo.FindByID(projectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
				return
			}
			if project == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}

			h.responder.WriteJSON(w, project)
			return
		}

		var projects []models.Project
		var err error
		if param == "all" {
			projects, err = h.projectRepo.FindAll()
		} else {
			projects, err = h.projectRepo.FindByCategory(param)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Validates the payload and creates a new project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.InsertProject true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertProject
		if err := decodeAndValidate(r, &insert); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.Add(insert)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject replaces all mutable fields of an existing project
// @Summary Update project
// @Description Validates the payload and replaces the project's mutable fields
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body models.InsertProject true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /api/projects/{projectID} [patch]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := strconv.Atoi(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		var insert models.InsertProject
		if err := decodeAndValidate(r, &insert); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.Update(projectID, insert)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by id
// @Summary Delete project
// @Description Removes a project. Ids are never reused afterwards
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := strconv.Atoi(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		deleted, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
