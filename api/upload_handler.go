package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/errs"
	"github.com/3d-debian/portfolio-backend/services"
)

// maxResumeSize caps resume uploads at 10MB.
const maxResumeSize = 10 << 20

type uploadHandler struct {
	responder   Responder
	logger      zerolog.Logger
	objectStore *services.ObjectStore
}

func newUploadHandler(objectStore *services.ObjectStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		objectStore: objectStore,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// uploadResume accepts one multipart file field named "file", stores it in
// object storage and returns the URL the client then submits with the resume
// form. Upload retries are the client's concern; the server holds no partial
// state.
func (h uploadHandler) uploadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.objectStore == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "object storage not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)
		if err := r.ParseMultipartForm(maxResumeSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError([]errs.FieldViolation{{
				Field:   "file",
				Rule:    "required",
				Message: "is required",
			}}))
			return
		}
		defer file.Close()

		url, err := h.objectStore.Upload(r.Context(), header.Filename, file, header.Size)
		if err != nil {
			h.responder.WriteError(w, errs.NewUpstreamError("object storage", err))
			return
		}

		h.logger.Info().Str("filename", header.Filename).Str("url", url).Msg("Resume uploaded")
		h.responder.WriteJSONStatus(w, http.StatusCreated, uploadResponse{URL: url})
	}
}
