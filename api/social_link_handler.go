package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/errs"
	"github.com/3d-debian/portfolio-backend/models"
)

type socialLinkHandler struct {
	responder      Responder
	logger         zerolog.Logger
	socialLinkRepo database.SocialLinkRepo
}

func newSocialLinkHandler(socialLinkRepo database.SocialLinkRepo) socialLinkHandler {
	logger := log.With().Str("handlerName", "socialLinkHandler").Logger()

	return socialLinkHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		socialLinkRepo: socialLinkRepo,
	}
}

// getSocialLinks returns the singleton set of social profile links.
func (h socialLinkHandler) getSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.socialLinkRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social links", err))
			return
		}
		if links == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("social links not found"))
			return
		}

		h.responder.WriteJSON(w, links)
	}
}

// updateSocialLinks overwrites the singleton. However many times it is
// called, exactly one record remains.
func (h socialLinkHandler) updateSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertSocialLink
		if err := decodeAndValidate(r, &insert); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		links, err := h.socialLinkRepo.Update(insert)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "social links", err))
			return
		}

		h.responder.WriteJSON(w, links)
	}
}
