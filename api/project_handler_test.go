package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3d-debian/portfolio-backend/models"
)

func TestGetAllProjectsReturnsSeed(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeBody[[]models.Project](t, rec)
	require.Len(t, projects, 6)
	assert.Equal(t, 1, projects[0].ID)
	assert.Equal(t, "Parking Management System", projects[0].Title)
}

func TestCreateProjectAssignsNextID(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodPost, "/api/projects", map[string]any{
		"title":       "X",
		"description": "10+ chars..",
		"category":    "web",
		"imageUrl":    "https://a",
		"tags":        []string{"a", "b"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Six seeded projects precede this one; optional URLs come back as
	// explicit nulls.
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.Contains(t, rec.Body.String(), `"liveUrl":null`)
	assert.Contains(t, rec.Body.String(), `"codeUrl":null`)

	project := decodeBody[models.Project](t, rec)
	assert.Equal(t, 7, project.ID)
	assert.Equal(t, []string{"a", "b"}, []string(project.Tags))
}

func TestCreateProjectReportsEveryViolation(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodPost, "/api/projects", map[string]any{
		"title":       "",
		"description": "short",
		"category":    "sculpture",
		"imageUrl":    "not a url",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	fields := violationFields(t, rec)
	assert.ElementsMatch(t, []string{"title", "description", "category", "imageUrl"}, fields)
}

func TestCreateProjectRejectsNonJSONContentType(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader("title=X"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestGetProjectByIDAndCategory(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodGet, "/api/projects/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	project := decodeBody[models.Project](t, rec)
	assert.Equal(t, 1, project.ID)

	// Non-numeric token filters by category
	rec = doRequest(router, http.MethodGet, "/api/projects/web", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	webProjects := decodeBody[[]models.Project](t, rec)
	require.NotEmpty(t, webProjects)
	for _, p := range webProjects {
		assert.Equal(t, models.CategoryWeb, p.Category)
	}

	// "all" short-circuits to the full list
	rec = doRequest(router, http.MethodGet, "/api/projects/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Project](t, rec), 6)

	// Unknown category is an empty list, not an error
	rec = doRequest(router, http.MethodGet, "/api/projects/sculpture", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Project](t, rec), 0)

	rec = doRequest(router, http.MethodGet, "/api/projects/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProject(t *testing.T) {
	router := newTestRouter(nil)

	payload := map[string]any{
		"title":       "Renamed",
		"description": "A fully replaced description",
		"category":    "app",
		"imageUrl":    "https://img.example.com/x.png",
		"tags":        []string{"Go"},
	}

	rec := doRequest(router, http.MethodPatch, "/api/projects/1", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	project := decodeBody[models.Project](t, rec)
	assert.Equal(t, 1, project.ID)
	assert.Equal(t, "Renamed", project.Title)
	// Optional URLs the payload omitted are cleared, not preserved
	assert.Nil(t, project.LiveURL)
	assert.Nil(t, project.CodeURL)

	rec = doRequest(router, http.MethodPatch, "/api/projects/999", payload)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProjectThenGetReturns404(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodDelete, "/api/projects/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/projects/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Second delete of the same id reports not found
	rec = doRequest(router, http.MethodDelete, "/api/projects/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
