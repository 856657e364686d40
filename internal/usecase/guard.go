package usecase

import (
	"context"
	"fmt"

	"backend-games/internal/data/entity"
	"backend-games/internal/data/repository"
	"backend-games/pkg/apperror"
)

// Existence guards. Each runs a read-only lookup and turns a missing row into
// the matching 404 rejection; storage failures pass through wrapped.

func CategoryExists(ctx context.Context, repo repository.CategoryRepository, slug string) (*entity.Category, error) {
	category, err := repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check category %q: %w", slug, err)
	}
	if category == nil {
		return nil, apperror.ErrCategoryNotFound
	}
	return category, nil
}

func ReviewExists(ctx context.Context, repo repository.ReviewRepository, id int) (*entity.Review, error) {
	review, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check review %d: %w", id, err)
	}
	if review == nil {
		return nil, apperror.ErrReviewNotFound
	}
	return review, nil
}

func CommentExists(ctx context.Context, repo repository.CommentRepository, id int) (*entity.Comment, error) {
	comment, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check comment %d: %w", id, err)
	}
	if comment == nil {
		return nil, apperror.ErrCommentNotFound
	}
	return comment, nil
}

func UserExists(ctx context.Context, repo repository.UserRepository, username string) (*entity.User, error) {
	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check user %q: %w", username, err)
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	return user, nil
}
