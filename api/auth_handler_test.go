package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/models"
	"github.com/3d-debian/portfolio-backend/services"
)

// newEnforcedRouter builds a router with admin credentials configured, so the
// admin gate actually requires a session token.
func newEnforcedRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db := database.NewMemory()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = db.UserRepo().Add(models.InsertUser{Username: "admin", Password: string(hash)})
	require.NoError(t, err)

	cfg := map[string]string{
		"ADMIN_USERNAME": "admin",
		"ADMIN_PASSWORD": "correct-horse-battery",
		"JWT_SECRET":     "test-secret",
	}

	deps := Deps{DB: db, Mailer: services.NewMailer(nil)}
	return newRouter(deps, withConfig(cfg), withStartupTime(time.Now()))
}

func loginFor(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(router, http.MethodPost, "/api/auth/login", map[string]any{
		"username": username,
		"password": password,
	})
}

func TestLoginReturnsToken(t *testing.T) {
	router := newEnforcedRouter(t)

	rec := loginFor(t, router, "admin", "correct-horse-battery")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newEnforcedRouter(t)

	rec := loginFor(t, router, "admin", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = loginFor(t, router, "nobody", "correct-horse-battery")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEnforcedAdminRoutesRequireToken(t *testing.T) {
	router := newEnforcedRouter(t)

	rec := doRequest(router, http.MethodDelete, "/api/projects/1", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = loginFor(t, router, "admin", "correct-horse-battery")
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody[struct {
		Token string `json:"token"`
	}](t, rec).Token

	rec = doAuthRequest(router, http.MethodDelete, "/api/projects/1", nil, token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEnforcedAdminReviewListingRequiresToken(t *testing.T) {
	router := newEnforcedRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/reviews?admin=true", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The public listing stays open.
	rec = doRequest(router, http.MethodGet, "/api/reviews", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = loginFor(t, router, "admin", "correct-horse-battery")
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody[struct {
		Token string `json:"token"`
	}](t, rec).Token

	rec = doAuthRequest(router, http.MethodGet, "/api/reviews?admin=true", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEnforcedGateRejectsGarbageToken(t *testing.T) {
	router := newEnforcedRouter(t)

	rec := doAuthRequest(router, http.MethodDelete, "/api/projects/1", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
