package usecase

import (
	"context"
	"fmt"

	"backend-games/internal/data/repository"
	"backend-games/internal/dto/request"
	"backend-games/internal/dto/response"
	"backend-games/pkg/apperror"

	"go.uber.org/zap"
)

type CommentService interface {
	UpdateVotes(ctx context.Context, commentID int, req request.VotesRequest) (*response.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID int) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	log         *zap.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, log *zap.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		log:         log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) UpdateVotes(ctx context.Context, commentID int, req request.VotesRequest) (*response.CommentResponse, error) {
	delta, err := req.Delta()
	if err != nil {
		return nil, err
	}

	if _, err := CommentExists(ctx, s.commentRepo, commentID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.IncrementVotes(ctx, commentID, delta)
	if err != nil {
		return nil, fmt.Errorf("update comment votes: %w", err)
	}
	if comment == nil {
		return nil, apperror.ErrCommentNotFound
	}

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int) error {
	if _, err := CommentExists(ctx, s.commentRepo, commentID); err != nil {
		return err
	}

	deleted, err := s.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !deleted {
		return apperror.ErrCommentNotFound
	}

	s.log.Info("Comment deleted", zap.Int("comment_id", commentID))
	return nil
}
