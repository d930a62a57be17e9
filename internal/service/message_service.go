package service

import (
	"context"

	"socialnet/internal/models"
	"socialnet/internal/repository"
)

type MessageService interface {
	SendMessage(ctx context.Context, actorID, toID int64, content string) (int64, error)
	GetConversation(ctx context.Context, actorID, otherID int64) ([]models.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *messageService) SendMessage(ctx context.Context, actorID, toID int64, content string) (int64, error) {
	if actorID == 0 {
		return 0, ErrUnauthenticated
	}

	// получатель должен существовать
	if _, err := s.userRepo.GetUserByID(ctx, toID); err != nil {
		return 0, err
	}

	return s.messageRepo.Create(ctx, actorID, toID, content)
}

func (s *messageService) GetConversation(ctx context.Context, actorID, otherID int64) ([]models.Message, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	return s.messageRepo.GetConversation(ctx, actorID, otherID)
}
