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

type CommentRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Comment, error)
	FindByReviewID(ctx context.Context, reviewID int) ([]*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	IncrementVotes(ctx context.Context, id int, delta int) (*entity.Comment, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

const commentColumns = `comment_id, review_id, author, body, votes, created_at`

func scanComment(row rowScanner) (*entity.Comment, error) {
	var comment entity.Comment
	err := row.Scan(
		&comment.CommentID,
		&comment.ReviewID,
		&comment.Author,
		&comment.Body,
		&comment.Votes,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int) (*entity.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment by ID",
			zap.Error(err),
			zap.Int("comment_id", id),
		)
		return nil, fmt.Errorf("find comment by ID %d: %w", id, err)
	}

	return comment, nil
}

// FindByReviewID returns the review's comments, newest first.
func (r *commentRepository) FindByReviewID(ctx context.Context, reviewID int) ([]*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`

	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		r.log.Error("Failed to find comments by review ID",
			zap.Error(err),
			zap.Int("review_id", reviewID),
		)
		return nil, fmt.Errorf("find comments by review ID %d: %w", reviewID, err)
	}
	defer rows.Close()

	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	query := `
		INSERT INTO comments (review_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	created, err := scanComment(r.db.QueryRow(ctx, query, comment.ReviewID, comment.Author, comment.Body))
	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int("review_id", comment.ReviewID),
			zap.String("author", comment.Author),
		)
		return nil, fmt.Errorf("create comment on review %d: %w", comment.ReviewID, err)
	}

	return created, nil
}

func (r *commentRepository) IncrementVotes(ctx context.Context, id int, delta int) (*entity.Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRow(ctx, query, delta, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update comment votes",
			zap.Error(err),
			zap.Int("comment_id", id),
			zap.Int("inc_votes", delta),
		)
		return nil, fmt.Errorf("update votes for comment %d: %w", id, err)
	}

	return comment, nil
}

// Delete reports whether a row was removed.
func (r *commentRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int("comment_id", id),
		)
		return false, fmt.Errorf("delete comment %d: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}
