package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3d-debian/portfolio-backend/models"
)

func TestCreateMessage(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodPost, "/api/messages", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Project inquiry",
		"message": "I would like to discuss a new web project with you.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	msg := decodeBody[models.Message](t, rec)
	assert.Equal(t, 1, msg.ID)
	assert.Equal(t, "Project inquiry", msg.Subject)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestCreateMessageReportsEveryViolation(t *testing.T) {
	router := newTestRouter(nil)

	rec := doRequest(router, http.MethodPost, "/api/messages", map[string]any{
		"name":    "",
		"email":   "not-an-email",
		"subject": "",
		"message": "short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	fields := violationFields(t, rec)
	assert.ElementsMatch(t, []string{"name", "email", "subject", "message"}, fields)
}

func TestGetAllMessages(t *testing.T) {
	router := newTestRouter(nil)

	for _, subject := range []string{"First", "Second"} {
		rec := doRequest(router, http.MethodPost, "/api/messages", map[string]any{
			"name":    "Visitor",
			"email":   "visitor@example.com",
			"subject": subject,
			"message": "A message body long enough to pass validation.",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(router, http.MethodGet, "/api/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	messages := decodeBody[[]models.Message](t, rec)
	require.Len(t, messages, 2)
	assert.Equal(t, "First", messages[0].Subject)
	assert.Equal(t, "Second", messages[1].Subject)
}
