package usecase

import (
	"fmt"

	"backend-games/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	API      APIService
	Category CategoryService
	Review   ReviewService
	Comment  CommentService
	User     UserService
}

func NewService(repo *repository.Repository, log *zap.Logger) (*Service, error) {
	api, err := NewAPIService()
	if err != nil {
		return nil, fmt.Errorf("init api service: %w", err)
	}

	return &Service{
		API:      api,
		Category: NewCategoryService(repo.Category, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo.Comment, log),
		User:     NewUserService(repo.User, log),
	}, nil
}
