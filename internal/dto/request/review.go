package request

import (
	"net/url"
)

// ListReviewsRequest carries the raw listing query. Empty values mean "not given".
type ListReviewsRequest struct {
	Category string
	SortBy   string
	Order    string
}

// ListReviewsFromQuery reads the listing keys and ignores everything else.
func ListReviewsFromQuery(query url.Values) ListReviewsRequest {
	return ListReviewsRequest{
		Category: query.Get("category"),
		SortBy:   query.Get("sort_by"),
		Order:    query.Get("order"),
	}
}

type CreateReviewRequest struct {
	Owner        string `json:"owner" validate:"required"`
	Title        string `json:"title" validate:"required"`
	ReviewBody   string `json:"review_body" validate:"required"`
	Designer     string `json:"designer" validate:"required"`
	Category     string `json:"category" validate:"required"`
	ReviewImgURL string `json:"review_img_url" validate:"omitempty,url"`
}
