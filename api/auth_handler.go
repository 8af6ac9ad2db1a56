package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/3d-debian/portfolio-backend/auth"
	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  database.UserRepo
	jwtSecret []byte
}

func newAuthHandler(userRepo database.UserRepo, jwtSecret []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// login exchanges admin credentials for a session token. Credential
// mismatches and unknown usernames produce the same 401 on purpose.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := auth.Sign(h.jwtSecret, user.ID, user.Username, auth.DefaultTTL)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign session token", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Token:    token,
			Username: user.Username,
		})
	}
}
