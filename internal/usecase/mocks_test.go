package usecase

import (
	"context"

	"backend-games/internal/data/entity"
	"backend-games/internal/data/repository"
)

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

type mockCategoryRepo struct {
	findAllFn    func(ctx context.Context) ([]*entity.Category, error)
	findBySlugFn func(ctx context.Context, slug string) (*entity.Category, error)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}

type mockReviewRepo struct {
	findAllFn        func(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error)
	findByIDFn       func(ctx context.Context, id int) (*entity.Review, error)
	createFn         func(ctx context.Context, review *entity.Review) (*entity.Review, error)
	incrementVotesFn func(ctx context.Context, id int, delta int) (*entity.Review, error)
}

func (m *mockReviewRepo) FindAll(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return []*entity.Review{}, nil
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id int) (*entity.Review, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if m.createFn != nil {
		return m.createFn(ctx, review)
	}
	return review, nil
}

func (m *mockReviewRepo) IncrementVotes(ctx context.Context, id int, delta int) (*entity.Review, error) {
	if m.incrementVotesFn != nil {
		return m.incrementVotesFn(ctx, id, delta)
	}
	return nil, nil
}

type mockCommentRepo struct {
	findByIDFn       func(ctx context.Context, id int) (*entity.Comment, error)
	findByReviewIDFn func(ctx context.Context, reviewID int) ([]*entity.Comment, error)
	createFn         func(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	incrementVotesFn func(ctx context.Context, id int, delta int) (*entity.Comment, error)
	deleteFn         func(ctx context.Context, id int) (bool, error)
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id int) (*entity.Comment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepo) FindByReviewID(ctx context.Context, reviewID int) ([]*entity.Comment, error) {
	if m.findByReviewIDFn != nil {
		return m.findByReviewIDFn(ctx, reviewID)
	}
	return []*entity.Comment{}, nil
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepo) IncrementVotes(ctx context.Context, id int, delta int) (*entity.Comment, error) {
	if m.incrementVotesFn != nil {
		return m.incrementVotesFn(ctx, id, delta)
	}
	return nil, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

type mockUserRepo struct {
	findAllFn        func(ctx context.Context) ([]*entity.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

func newTestRepository(category *mockCategoryRepo, review *mockReviewRepo, comment *mockCommentRepo, user *mockUserRepo) *repository.Repository {
	if category == nil {
		category = &mockCategoryRepo{}
	}
	if review == nil {
		review = &mockReviewRepo{}
	}
	if comment == nil {
		comment = &mockCommentRepo{}
	}
	if user == nil {
		user = &mockUserRepo{}
	}
	return &repository.Repository{Category: category, Review: review, Comment: comment, User: user}
}
