package response

import (
	"time"

	"backend-games/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID     int       `json:"review_id"`
	Owner        string    `json:"owner"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Designer     string    `json:"designer"`
	ReviewBody   string    `json:"review_body"`
	ReviewImgURL string    `json:"review_img_url"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count,string"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:     review.ReviewID,
		Owner:        review.Owner,
		Title:        review.Title,
		Category:     review.Category,
		Designer:     review.Designer,
		ReviewBody:   review.ReviewBody,
		ReviewImgURL: review.ReviewImgURL,
		CreatedAt:    review.CreatedAt,
		Votes:        review.Votes,
		CommentCount: review.CommentCount,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, ReviewToResponse(review))
	}
	return out
}
