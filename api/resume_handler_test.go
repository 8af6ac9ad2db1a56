package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3d-debian/portfolio-backend/models"
)

func validResumePayload() map[string]any {
	return map[string]any{
		"name":            "Recruiter",
		"email":           "recruiter@example.com",
		"projectBrief":    "Full redesign of our company marketing site.",
		"projectCategory": "web",
		"budgetRange":     "$1000-$5000",
		"resumeUrl":       "https://files.example.com/resumes/abc.pdf",
	}
}

func TestCreateResume(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodPost, "/api/resumes", validResumePayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	resume := decodeBody[models.Resume](t, rec)
	assert.Equal(t, 1, resume.ID)
	assert.Equal(t, "https://files.example.com/resumes/abc.pdf", resume.ResumeURL)
	assert.False(t, resume.CreatedAt.IsZero())
}

func TestCreateResumeRejectsBadURL(t *testing.T) {
	router := newTestRouter(nil)

	payload := validResumePayload()
	payload["resumeUrl"] = "not-a-url"

	rec := doRequest(router, http.MethodPost, "/api/resumes", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, violationFields(t, rec), "resumeUrl")
}

func TestGetAllResumes(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodPost, "/api/resumes", validResumePayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/resumes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resumes := decodeBody[[]models.Resume](t, rec)
	require.Len(t, resumes, 1)
	assert.Equal(t, "Recruiter", resumes[0].Name)
}
