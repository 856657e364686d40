package repository

import (
	"fmt"
	"strings"
)

// ReviewSortColumn is one of the columns the reviews listing may be ordered by.
// The zero value sorts by created_at.
type ReviewSortColumn int

const (
	SortByCreatedAt ReviewSortColumn = iota
	SortByReviewID
	SortByOwner
	SortByTitle
	SortByCategory
	SortByReviewImgURL
	SortByVotes
	SortByDesigner
	SortByCommentCount
)

var reviewSortColumns = map[string]ReviewSortColumn{
	"created_at":     SortByCreatedAt,
	"review_id":      SortByReviewID,
	"owner":          SortByOwner,
	"title":          SortByTitle,
	"category":       SortByCategory,
	"review_img_url": SortByReviewImgURL,
	"votes":          SortByVotes,
	"designer":       SortByDesigner,
	"comment_count":  SortByCommentCount,
}

// SQL text for each column; the only place ORDER BY tokens come from.
var reviewSortTokens = [...]string{
	SortByCreatedAt:    "reviews.created_at",
	SortByReviewID:     "reviews.review_id",
	SortByOwner:        "reviews.owner",
	SortByTitle:        "reviews.title",
	SortByCategory:     "reviews.category",
	SortByReviewImgURL: "reviews.review_img_url",
	SortByVotes:        "reviews.votes",
	SortByDesigner:     "reviews.designer",
	SortByCommentCount: "comment_count",
}

// ParseReviewSortColumn reports false for anything outside the whitelist.
func ParseReviewSortColumn(name string) (ReviewSortColumn, bool) {
	column, ok := reviewSortColumns[name]
	return column, ok
}

func (c ReviewSortColumn) token() string {
	if c < 0 || int(c) >= len(reviewSortTokens) {
		return reviewSortTokens[SortByCreatedAt]
	}
	return reviewSortTokens[c]
}

// SortDirection orders the listing; the zero value is descending.
type SortDirection int

const (
	Descending SortDirection = iota
	Ascending
)

// ParseSortDirection accepts exactly "asc" or "desc".
func ParseSortDirection(name string) (SortDirection, bool) {
	switch name {
	case "asc":
		return Ascending, true
	case "desc":
		return Descending, true
	}
	return Descending, false
}

func (d SortDirection) token() string {
	if d == Ascending {
		return "ASC"
	}
	return "DESC"
}

// ReviewFilter describes a reviews listing. A nil Category lists every category.
type ReviewFilter struct {
	Category *string
	SortBy   ReviewSortColumn
	Order    SortDirection
}

const reviewListSelect = `
		SELECT reviews.review_id, reviews.owner, reviews.title, reviews.category,
			reviews.designer, reviews.review_body, reviews.review_img_url,
			reviews.created_at, reviews.votes,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM reviews
		LEFT JOIN comments ON comments.review_id = reviews.review_id`

// buildListReviewsQuery returns the listing SQL and its positional args.
// Category is always bound as a parameter; ORDER BY is rendered from the
// fixed token tables above.
func buildListReviewsQuery(filter ReviewFilter) (string, []any) {
	var query strings.Builder
	args := make([]any, 0, 1)

	query.WriteString(reviewListSelect)

	if filter.Category != nil {
		args = append(args, *filter.Category)
		fmt.Fprintf(&query, "\n\t\tWHERE reviews.category = $%d", len(args))
	}

	query.WriteString("\n\t\tGROUP BY reviews.review_id")
	fmt.Fprintf(&query, "\n\t\tORDER BY %s %s, reviews.review_id ASC", filter.SortBy.token(), filter.Order.token())

	return query.String(), args
}
