package usecase

import (
	"context"
	"fmt"

	"backend-games/internal/data/repository"
	"backend-games/internal/dto/response"

	"go.uber.org/zap"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return response.CategoriesToResponse(categories), nil
}
