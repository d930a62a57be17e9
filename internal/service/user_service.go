package service

import (
	"context"

	"socialnet/internal/models"
	"socialnet/internal/repository"
)

type UserService interface {
	ListUsers(ctx context.Context, actorID int64) ([]models.UserWithConnections, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers возвращает справочник пользователей без самого актора
func (s *userService) ListUsers(ctx context.Context, actorID int64) ([]models.UserWithConnections, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	return s.userRepo.ListUsersExcept(ctx, actorID)
}
