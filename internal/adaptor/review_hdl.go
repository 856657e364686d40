package adaptor

import (
	"net/http"

	"backend-games/internal/dto/request"
	"backend-games/internal/usecase"
	"backend-games/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/reviews?category&sort_by&order
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	req := request.ListReviewsFromQuery(r.URL.Query())

	reviews, err := h.service.ListReviews(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "reviews", reviews)
}

// GetReview handles GET /api/reviews/{review_id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "review_id")
	if err != nil {
		respondError(w, r, h.log, err, "get review")
		return
	}

	review, err := h.service.GetReview(r.Context(), reviewID)
	if err != nil {
		respondError(w, r, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "review", review)
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := decodeBody(r, h.log, &req); err != nil {
		respondError(w, r, h.log, err, "create review")
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		respondError(w, r, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "review", review)
}

// UpdateVotes handles PATCH /api/reviews/{review_id}
func (h *ReviewHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "review_id")
	if err != nil {
		respondError(w, r, h.log, err, "update review votes")
		return
	}

	var req request.VotesRequest
	if err := decodeBody(r, h.log, &req); err != nil {
		respondError(w, r, h.log, err, "update review votes")
		return
	}

	review, err := h.service.UpdateVotes(r.Context(), reviewID, req)
	if err != nil {
		respondError(w, r, h.log, err, "update review votes")
		return
	}

	utils.ResponseSuccess(w, "review", review)
}

// ListComments handles GET /api/reviews/{review_id}/comments
func (h *ReviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "review_id")
	if err != nil {
		respondError(w, r, h.log, err, "list comments")
		return
	}

	comments, err := h.service.ListComments(r.Context(), reviewID)
	if err != nil {
		respondError(w, r, h.log, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, "comments", comments)
}

// AddComment handles POST /api/reviews/{review_id}/comments
func (h *ReviewHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "review_id")
	if err != nil {
		respondError(w, r, h.log, err, "add comment")
		return
	}

	var req request.CreateCommentRequest
	if err := decodeBody(r, h.log, &req); err != nil {
		respondError(w, r, h.log, err, "add comment")
		return
	}

	comment, err := h.service.AddComment(r.Context(), reviewID, req)
	if err != nil {
		respondError(w, r, h.log, err, "add comment")
		return
	}

	utils.ResponseCreated(w, "comment", comment)
}
