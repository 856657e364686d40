package seed

import (
	"context"
	"errors"
	"fmt"

	"backend-games/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type insertedReview struct {
	ID    int
	Title string
}

// Seeder replaces table contents with a dataset inside one transaction.
type Seeder struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeeder(db database.PgxIface, log *zap.Logger) *Seeder {
	return &Seeder{
		db:  db,
		log: log.With(zap.String("component", "seeder")),
	}
}

// Seed truncates every table, resets the serial counters and inserts data.
func (s *Seeder) Seed(ctx context.Context, data *Dataset) (err error) {
	if data == nil {
		return errors.New("dataset is required")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.log.Error("Failed to roll back seed", zap.Error(rbErr))
			}
		}
	}()

	if _, err = tx.Exec(ctx, `TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	for _, c := range data.Categories {
		if _, err = tx.Exec(ctx,
			`INSERT INTO categories (slug, description) VALUES ($1, $2)`,
			c.Slug, c.Description,
		); err != nil {
			return fmt.Errorf("insert category %q: %w", c.Slug, err)
		}
	}

	for _, u := range data.Users {
		if _, err = tx.Exec(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.Username, u.Name, u.AvatarURL,
		); err != nil {
			return fmt.Errorf("insert user %q: %w", u.Username, err)
		}
	}

	inserted := make([]insertedReview, 0, len(data.Reviews))
	for _, r := range data.Reviews {
		var id int
		if err = tx.QueryRow(ctx, `
			INSERT INTO reviews (title, designer, owner, review_img_url, review_body, category, created_at, votes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING review_id`,
			r.Title, r.Designer, r.Owner, r.ReviewImgURL, r.ReviewBody, r.Category, fromMillis(r.CreatedAt), r.Votes,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert review %q: %w", r.Title, err)
		}
		inserted = append(inserted, insertedReview{ID: id, Title: r.Title})
	}

	comments, err := resolveComments(data.Comments, reviewIDsByTitle(inserted))
	if err != nil {
		return err
	}

	for _, c := range comments {
		if _, err = tx.Exec(ctx, `
			INSERT INTO comments (review_id, author, body, votes, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			c.ReviewID, c.Author, c.Body, c.Votes, c.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert comment on review %d: %w", c.ReviewID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	s.log.Info("Database seeded",
		zap.Int("categories", len(data.Categories)),
		zap.Int("users", len(data.Users)),
		zap.Int("reviews", len(data.Reviews)),
		zap.Int("comments", len(comments)),
	)
	return nil
}
