package adaptor

import (
	"net/http"

	"backend-games/internal/dto/request"
	"backend-games/internal/usecase"
	"backend-games/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// UpdateVotes handles PATCH /api/comments/{comment_id}
func (h *CommentHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "comment_id")
	if err != nil {
		respondError(w, r, h.log, err, "update comment votes")
		return
	}

	var req request.VotesRequest
	if err := decodeBody(r, h.log, &req); err != nil {
		respondError(w, r, h.log, err, "update comment votes")
		return
	}

	comment, err := h.service.UpdateVotes(r.Context(), commentID, req)
	if err != nil {
		respondError(w, r, h.log, err, "update comment votes")
		return
	}

	utils.ResponseSuccess(w, "comment", comment)
}

// DeleteComment handles DELETE /api/comments/{comment_id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "comment_id")
	if err != nil {
		respondError(w, r, h.log, err, "delete comment")
		return
	}

	if err := h.service.DeleteComment(r.Context(), commentID); err != nil {
		respondError(w, r, h.log, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}
