package repository

import (
	"context"
	"errors"
	"fmt"

	"backend-games/internal/data/entity"
	"backend-games/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	FindByID(ctx context.Context, id int) (*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	IncrementVotes(ctx context.Context, id int, delta int) (*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ReviewID,
		&review.Owner,
		&review.Title,
		&review.Category,
		&review.Designer,
		&review.ReviewBody,
		&review.ReviewImgURL,
		&review.CreatedAt,
		&review.Votes,
		&review.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error) {
	query, args := buildListReviewsQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int("sort_by", int(filter.SortBy)),
			zap.Int("order", int(filter.Order)),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int) (*entity.Review, error) {
	query := `
		SELECT reviews.review_id, reviews.owner, reviews.title, reviews.category,
			reviews.designer, reviews.review_body, reviews.review_img_url,
			reviews.created_at, reviews.votes,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM reviews
		LEFT JOIN comments ON comments.review_id = reviews.review_id
		WHERE reviews.review_id = $1
		GROUP BY reviews.review_id
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return review, nil
}

// Create inserts a review; an empty ReviewImgURL leaves the column default in place.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	columns := "owner, title, category, designer, review_body"
	values := "$1, $2, $3, $4, $5"
	args := []any{review.Owner, review.Title, review.Category, review.Designer, review.ReviewBody}

	if review.ReviewImgURL != "" {
		args = append(args, review.ReviewImgURL)
		columns += ", review_img_url"
		values += fmt.Sprintf(", $%d", len(args))
	}

	query := `
		INSERT INTO reviews (` + columns + `)
		VALUES (` + values + `)
		RETURNING review_id, owner, title, category, designer, review_body,
			review_img_url, created_at, votes, 0 AS comment_count
	`

	created, err := scanReview(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("owner", review.Owner),
			zap.String("category", review.Category),
		)
		return nil, fmt.Errorf("create review by %s: %w", review.Owner, err)
	}

	return created, nil
}

// IncrementVotes adds delta to the stored vote count and returns the updated row.
func (r *reviewRepository) IncrementVotes(ctx context.Context, id int, delta int) (*entity.Review, error) {
	query := `
		UPDATE reviews
		SET votes = votes + $1
		WHERE review_id = $2
		RETURNING review_id, owner, title, category, designer, review_body,
			review_img_url, created_at, votes,
			(SELECT COUNT(*)::INT FROM comments WHERE comments.review_id = reviews.review_id) AS comment_count
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, delta, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update review votes",
			zap.Error(err),
			zap.Int("review_id", id),
			zap.Int("inc_votes", delta),
		)
		return nil, fmt.Errorf("update votes for review %d: %w", id, err)
	}

	return review, nil
}
