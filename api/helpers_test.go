package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/services"
)

// newTestRouter builds the real router over a fresh seeded memory store. An
// empty config means no admin credentials, so the admin gate runs open.
func newTestRouter(cfg map[string]string) *chi.Mux {
	if cfg == nil {
		cfg = map[string]string{}
	}

	deps := Deps{
		DB:     database.NewMemory(),
		Mailer: services.NewMailer(nil),
	}
	return newRouter(deps, withConfig(cfg), withStartupTime(time.Now()))
}

func doRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	return doAuthRequest(router, method, path, body, "")
}

func doAuthRequest(router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// violationFields extracts the field names from an error response's
// violations list.
func violationFields(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()

	var resp struct {
		Violations []struct {
			Field string `json:"field"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	fields := make([]string, 0, len(resp.Violations))
	for _, v := range resp.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}
