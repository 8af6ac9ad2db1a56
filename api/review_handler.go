package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/3d-debian/portfolio-backend/database"
	"github.com/3d-debian/portfolio-backend/errs"
	"github.com/3d-debian/portfolio-backend/models"
	"github.com/3d-debian/portfolio-backend/services"
)

type reviewHandler struct {
	responder  Responder
	logger     zerolog.Logger
	reviewRepo database.ReviewRepo
	auth       authMiddleware
	mailer     services.Mailer
}

func newReviewHandler(reviewRepo database.ReviewRepo, auth authMiddleware, mailer services.Mailer) reviewHandler {
	logger := log.With().Str("handlerName", "reviewHandler").Logger()

	return reviewHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		reviewRepo: reviewRepo,
		auth:       auth,
		mailer:     mailer,
	}
}

// getReviews lists reviews: approved only for the public, every review for
// the admin view (?admin=true)
// @Summary Get reviews
// @Description Approved reviews for the public site; all reviews with ?admin=true
// @Tags Reviews
// @Produce json
// @Param admin query bool false "Return unapproved reviews as well"
// @Success 200 {array} models.Review "List of reviews"
// @Failure 401 {object} ErrorResponse "Unauthorized - admin view requires a session token"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching reviews"
// @Router /api/reviews [get]
func (h reviewHandler) getReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isAdmin := r.URL.Query().Get("admin") == "true"
		if isAdmin && !h.auth.authorized(r) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("admin token required"))
			return
		}

		var reviews []models.Review
		var err error
		if isAdmin {
			reviews, err = h.reviewRepo.FindAll()
		} else {
			reviews, err = h.reviewRepo.FindApproved()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "reviews", err))
			return
		}

		h.responder.WriteJSON(w, reviews)
	}
}

// createReview submits a review. It starts unapproved no matter what the
// payload says
// @Summary Submit review
// @Description Validates the payload and stores an unapproved review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body models.InsertReview true "Review data"
// @Success 201 {object} models.Review "Created review"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid review data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating review"
// @Router /api/reviews [post]
func (h reviewHandler) createReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var insert models.InsertReview
		if err := decodeAndValidate(r, &insert); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		review, err := h.reviewRepo.Add(insert)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "review", err))
			return
		}

		go h.mailer.Notify(
			fmt.Sprintf("New review from %s", review.Name),
			fmt.Sprintf("%s (%s) rated %d/5:\n\n%s", review.Name, review.Email, review.Rating, review.Comment),
		)

		h.responder.WriteJSONStatus(w, http.StatusCreated, review)
	}
}

// approveReview marks a review as approved without touching its other fields
// @Summary Approve review
// @Tags Reviews
// @Produce json
// @Param reviewID path int true "Review ID"
// @Success 200 {object} models.Review "Approved review"
// @Failure 404 {object} ErrorResponse "Not Found - Review not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error approving review"
// @Router /api/reviews/{reviewID}/approve [patch]
func (h reviewHandler) approveReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := strconv.Atoi(chi.URLParam(r, "reviewID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid reviewID"))
			return
		}

		review, err := h.reviewRepo.Approve(reviewID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("approve", "review", err))
			return
		}
		if review == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("review not found"))
			return
		}

		h.responder.WriteJSON(w, review)
	}
}

// deleteReview deletes a review by id
// @Summary Delete review
// @Tags Reviews
// @Produce json
// @Param reviewID path int true "Review ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not Found - Review not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting review"
// @Router /api/reviews/{reviewID} [delete]
func (h reviewHandler) deleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := strconv.Atoi(chi.URLParam(r, "reviewID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid reviewID"))
			return
		}

		deleted, err := h.reviewRepo.Delete(reviewID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "review", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("review not found"))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
