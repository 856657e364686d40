package response

import (
	"time"

	"backend-games/internal/data/entity"
)

type CommentResponse struct {
	CommentID int       `json:"comment_id"`
	ReviewID  int       `json:"review_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		CommentID: comment.CommentID,
		ReviewID:  comment.ReviewID,
		Author:    comment.Author,
		Body:      comment.Body,
		Votes:     comment.Votes,
		CreatedAt: comment.CreatedAt,
	}
}

func CommentsToResponse(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, CommentToResponse(comment))
	}
	return out
}
