package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/models"
)

type resumeHandler struct {
	responder  Responder
	logger     zerolog.Logger
	resumeRepo database.ResumeRepo
}

func newResumeHandler(resumeRepo database.ResumeRepo) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		resumeRepo: resumeRepo,
	}
}

// createResume stores a hire-me submission. The resume file itself is already
// in object storage by this point; only its URL arrives here.
func (h resumeHandler) createResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertResume
		if err := decodeAndValidate(r, &insert); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		resume, err := h.resumeRepo.Add(insert)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "resume", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, resume)
	}
}

// getAllResumes lists every submission for the admin panel.
func (h resumeHandler) getAllResumes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumes, err := h.resumeRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "resumes", err))
			return
		}

		h.responder.WriteJSON(w, resumes)
	}
}
