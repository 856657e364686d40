package usecase

import (
	"context"
	"fmt"

	"backend-games/internal/data/repository"
	"backend-games/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUser(ctx context.Context, username string) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return response.UsersToResponse(users), nil
}

func (us *userService) GetUser(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := UserExists(ctx, us.userRepo, username)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
