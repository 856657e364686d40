package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"backend-games/internal/data/entity"
	"backend-games/internal/data/repository"
	"backend-games/internal/dto/request"
	"backend-games/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func existingCategory(slug string) *mockCategoryRepo {
	return &mockCategoryRepo{
		findBySlugFn: func(_ context.Context, s string) (*entity.Category, error) {
			if s == slug {
				return &entity.Category{Slug: slug}, nil
			}
			return nil, nil
		},
	}
}

func existingReview(id int) *mockReviewRepo {
	return &mockReviewRepo{
		findByIDFn: func(_ context.Context, got int) (*entity.Review, error) {
			if got == id {
				return &entity.Review{ReviewID: id, Votes: 1}, nil
			}
			return nil, nil
		},
	}
}

func TestListReviews_ValidationOrder(t *testing.T) {
	ctx := context.Background()
	var called bool
	reviews := &mockReviewRepo{
		findAllFn: func(context.Context, repository.ReviewFilter) ([]*entity.Review, error) {
			called = true
			return []*entity.Review{}, nil
		},
	}
	svc := NewReviewService(newTestRepository(existingCategory("dexterity"), reviews, nil, nil), zap.NewNop())

	tests := []struct {
		name    string
		req     request.ListReviewsRequest
		wantErr error
	}{
		{"invalid sort wins over everything", request.ListReviewsRequest{SortBy: "bananas", Order: "sideways", Category: "nope"}, apperror.ErrInvalidSort},
		{"invalid order wins over category", request.ListReviewsRequest{Order: "sideways", Category: "nope"}, apperror.ErrInvalidOrder},
		{"unknown category", request.ListReviewsRequest{Category: "nope"}, apperror.ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			_, err := svc.ListReviews(ctx, tt.req)
			assert.Equal(t, tt.wantErr, err)
			assert.False(t, called, "listing must not run after a rejection")
		})
	}
}

func TestListReviews_BuildsFilter(t *testing.T) {
	ctx := context.Background()
	var got repository.ReviewFilter
	reviews := &mockReviewRepo{
		findAllFn: func(_ context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
			got = filter
			return []*entity.Review{{ReviewID: 2, CommentCount: 3}}, nil
		},
	}
	svc := NewReviewService(newTestRepository(existingCategory("dexterity"), reviews, nil, nil), zap.NewNop())

	t.Run("defaults", func(t *testing.T) {
		out, err := svc.ListReviews(ctx, request.ListReviewsRequest{})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, repository.SortByCreatedAt, got.SortBy)
		assert.Equal(t, repository.Descending, got.Order)
		assert.Nil(t, got.Category)
	})

	t.Run("explicit values", func(t *testing.T) {
		_, err := svc.ListReviews(ctx, request.ListReviewsRequest{SortBy: "votes", Order: "asc", Category: "dexterity"})
		require.NoError(t, err)
		assert.Equal(t, repository.SortByVotes, got.SortBy)
		assert.Equal(t, repository.Ascending, got.Order)
		require.NotNil(t, got.Category)
		assert.Equal(t, "dexterity", *got.Category)
	})
}

func TestGetReview(t *testing.T) {
	svc := NewReviewService(newTestRepository(nil, existingReview(1), nil, nil), zap.NewNop())

	review, err := svc.GetReview(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, review.ReviewID)

	_, err = svc.GetReview(context.Background(), 88888888)
	assert.Equal(t, apperror.ErrReviewNotFound, err)
}

func TestUpdateReviewVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("payload checked before the guard", func(t *testing.T) {
		guarded := false
		reviews := &mockReviewRepo{
			findByIDFn: func(context.Context, int) (*entity.Review, error) {
				guarded = true
				return nil, nil
			},
		}
		svc := NewReviewService(newTestRepository(nil, reviews, nil, nil), zap.NewNop())

		_, err := svc.UpdateVotes(ctx, 999, request.VotesRequest{})
		assert.Equal(t, apperror.ErrMissingVotesField, err)
		assert.False(t, guarded)
	})

	t.Run("missing review is 404 and never updated", func(t *testing.T) {
		reviews := existingReview(1)
		reviews.incrementVotesFn = func(context.Context, int, int) (*entity.Review, error) {
			t.Fatal("update must not run")
			return nil, nil
		}
		svc := NewReviewService(newTestRepository(nil, reviews, nil, nil), zap.NewNop())

		_, err := svc.UpdateVotes(ctx, 999, request.VotesRequest{IncVotes: float64(1)})
		assert.Equal(t, apperror.ErrReviewNotFound, err)
	})

	t.Run("adds delta", func(t *testing.T) {
		reviews := existingReview(1)
		reviews.incrementVotesFn = func(_ context.Context, id int, delta int) (*entity.Review, error) {
			return &entity.Review{ReviewID: id, Votes: 1 + delta}, nil
		}
		svc := NewReviewService(newTestRepository(nil, reviews, nil, nil), zap.NewNop())

		review, err := svc.UpdateVotes(ctx, 1, request.VotesRequest{IncVotes: float64(15)})
		require.NoError(t, err)
		assert.Equal(t, 16, review.Votes)
	})
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	valid := request.CreateReviewRequest{
		Owner:      "mallionaire",
		Title:      "Catan",
		ReviewBody: "Sheep for wood",
		Designer:   "Klaus Teuber",
		Category:   "euro game",
	}

	t.Run("validation failure is 400", func(t *testing.T) {
		svc := NewReviewService(newTestRepository(nil, nil, nil, nil), zap.NewNop())

		req := valid
		req.Title = ""
		_, err := svc.CreateReview(ctx, &req)

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "title: This field is required", appErr.Message)
	})

	t.Run("unknown category is 404", func(t *testing.T) {
		svc := NewReviewService(newTestRepository(existingCategory("dexterity"), nil, nil, nil), zap.NewNop())

		req := valid
		_, err := svc.CreateReview(ctx, &req)
		assert.Equal(t, apperror.ErrCategoryNotFound, err)
	})

	t.Run("storage error is wrapped", func(t *testing.T) {
		boom := errors.New("insert failed")
		reviews := &mockReviewRepo{
			createFn: func(context.Context, *entity.Review) (*entity.Review, error) { return nil, boom },
		}
		svc := NewReviewService(newTestRepository(existingCategory("euro game"), reviews, nil, nil), zap.NewNop())

		req := valid
		_, err := svc.CreateReview(ctx, &req)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("created with zero comments", func(t *testing.T) {
		reviews := &mockReviewRepo{
			createFn: func(_ context.Context, review *entity.Review) (*entity.Review, error) {
				created := *review
				created.ReviewID = 14
				return &created, nil
			},
		}
		svc := NewReviewService(newTestRepository(existingCategory("euro game"), reviews, nil, nil), zap.NewNop())

		req := valid
		review, err := svc.CreateReview(ctx, &req)
		require.NoError(t, err)
		assert.Equal(t, 14, review.ReviewID)

		out, err := json.Marshal(review)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"comment_count":"0"`)
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(newTestRepository(nil, existingReview(1), nil, nil), zap.NewNop())

	comments, err := svc.ListComments(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)

	_, err = svc.ListComments(ctx, 999)
	assert.Equal(t, apperror.ErrReviewNotFound, err)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields before review lookup", func(t *testing.T) {
		svc := NewReviewService(newTestRepository(nil, existingReview(1), nil, nil), zap.NewNop())

		_, err := svc.AddComment(ctx, 999, request.CreateCommentRequest{Username: "mallionaire"})
		assert.Equal(t, apperror.ErrMissingFields, err)
	})

	t.Run("wrong types", func(t *testing.T) {
		svc := NewReviewService(newTestRepository(nil, existingReview(1), nil, nil), zap.NewNop())

		_, err := svc.AddComment(ctx, 1, request.CreateCommentRequest{Username: float64(1), Body: "hi"})
		assert.Equal(t, apperror.ErrTypeMismatch, err)
	})

	t.Run("unknown review", func(t *testing.T) {
		svc := NewReviewService(newTestRepository(nil, existingReview(1), nil, nil), zap.NewNop())

		_, err := svc.AddComment(ctx, 999, request.CreateCommentRequest{Username: "mallionaire", Body: "hi"})
		assert.Equal(t, apperror.ErrReviewNotFound, err)
	})

	t.Run("inserted with zero votes", func(t *testing.T) {
		var inserted *entity.Comment
		comments := &mockCommentRepo{
			createFn: func(_ context.Context, comment *entity.Comment) (*entity.Comment, error) {
				inserted = comment
				created := *comment
				created.CommentID = 7
				return &created, nil
			},
		}
		svc := NewReviewService(newTestRepository(nil, existingReview(1), comments, nil), zap.NewNop())

		comment, err := svc.AddComment(ctx, 1, request.CreateCommentRequest{Username: "mallionaire", Body: "hi"})
		require.NoError(t, err)
		assert.Equal(t, 7, comment.CommentID)
		assert.Equal(t, 0, comment.Votes)
		assert.Equal(t, 1, inserted.ReviewID)
		assert.Equal(t, "mallionaire", inserted.Author)
	})
}
