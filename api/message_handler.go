package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/models"
	"github.com/3d-debian/portfolio-backend/services"
)

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo database.MessageRepo
	mailer      services.Mailer
}

func newMessageHandler(messageRepo database.MessageRepo, mailer services.Mailer) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		mailer:      mailer,
	}
}

// createMessage stores a contact-form submission and notifies the site owner.
func (h messageHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertMessage
		if err := decodeAndValidate(r, &insert); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.Add(insert)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		go h.mailer.Notify(
			fmt.Sprintf("New contact message: %s", message.Subject),
			fmt.Sprintf("From %s (%s):\n\n%s", message.Name, message.Email, message.Message),
		)

		h.responder.WriteJSONStatus(w, http.StatusCreated, message)
	}
}

// getAllMessages lists every contact message for the admin panel.
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}
