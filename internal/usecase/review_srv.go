package usecase

import (
	"context"
	"fmt"

	"backend-games/internal/data/entity"
	"backend-games/internal/data/repository"
	"backend-games/internal/dto/request"
	"backend-games/internal/dto/response"
	"backend-games/pkg/apperror"
	"backend-games/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	ListReviews(ctx context.Context, req request.ListReviewsRequest) ([]response.ReviewResponse, error)
	GetReview(ctx context.Context, reviewID int) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateVotes(ctx context.Context, reviewID int, req request.VotesRequest) (*response.ReviewResponse, error)

	// Comments nested under a review
	ListComments(ctx context.Context, reviewID int) ([]response.CommentResponse, error)
	AddComment(ctx context.Context, reviewID int, req request.CreateCommentRequest) (*response.CommentResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// ListReviews validates sort_by, then order, then the category, and stops at
// the first failure.
func (s *reviewService) ListReviews(ctx context.Context, req request.ListReviewsRequest) ([]response.ReviewResponse, error) {
	filter := repository.ReviewFilter{
		SortBy: repository.SortByCreatedAt,
		Order:  repository.Descending,
	}

	if req.SortBy != "" {
		column, ok := repository.ParseReviewSortColumn(req.SortBy)
		if !ok {
			return nil, apperror.ErrInvalidSort
		}
		filter.SortBy = column
	}

	if req.Order != "" {
		order, ok := repository.ParseSortDirection(req.Order)
		if !ok {
			return nil, apperror.ErrInvalidOrder
		}
		filter.Order = order
	}

	if req.Category != "" {
		if _, err := CategoryExists(ctx, s.repo.Category, req.Category); err != nil {
			return nil, err
		}
		filter.Category = &req.Category
	}

	reviews, err := s.repo.Review.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID int) (*response.ReviewResponse, error) {
	review, err := ReviewExists(ctx, s.repo.Review, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperror.BadRequest(utils.FormatValidationErrors(errs))
	}

	if _, err := CategoryExists(ctx, s.repo.Category, req.Category); err != nil {
		return nil, err
	}

	// An unknown owner surfaces as a foreign key violation
	review, err := s.repo.Review.Create(ctx, &entity.Review{
		Owner:        req.Owner,
		Title:        req.Title,
		Category:     req.Category,
		Designer:     req.Designer,
		ReviewBody:   req.ReviewBody,
		ReviewImgURL: req.ReviewImgURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int("review_id", review.ReviewID),
		zap.String("owner", review.Owner),
		zap.String("category", review.Category),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateVotes(ctx context.Context, reviewID int, req request.VotesRequest) (*response.ReviewResponse, error) {
	delta, err := req.Delta()
	if err != nil {
		return nil, err
	}

	if _, err := ReviewExists(ctx, s.repo.Review, reviewID); err != nil {
		return nil, err
	}

	review, err := s.repo.Review.IncrementVotes(ctx, reviewID, delta)
	if err != nil {
		return nil, fmt.Errorf("update review votes: %w", err)
	}
	// Removed between the guard and the update
	if review == nil {
		return nil, apperror.ErrReviewNotFound
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListComments(ctx context.Context, reviewID int) ([]response.CommentResponse, error) {
	if _, err := ReviewExists(ctx, s.repo.Review, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return response.CommentsToResponse(comments), nil
}

func (s *reviewService) AddComment(ctx context.Context, reviewID int, req request.CreateCommentRequest) (*response.CommentResponse, error) {
	username, body, err := req.Fields()
	if err != nil {
		return nil, err
	}

	if _, err := ReviewExists(ctx, s.repo.Review, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.repo.Comment.Create(ctx, &entity.Comment{
		ReviewID: reviewID,
		Author:   username,
		Body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.Int("comment_id", comment.CommentID),
		zap.Int("review_id", reviewID),
		zap.String("author", username),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}
