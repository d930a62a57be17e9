package service

import (
	"errors"

	"socialnet/internal/config"
	"socialnet/internal/repository"
	"socialnet/internal/storage"
)

var (
	// ErrUnauthenticated - личность запроса не установлена
	ErrUnauthenticated = errors.New("требуется аутентификация")
	// ErrForbidden - личность установлена, но не владеет ресурсом
	ErrForbidden = errors.New("доступ запрещен")
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	User    UserService
	Message MessageService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, rep.Session, cfg),
		Post:    NewPostService(rep.Post, rep.Like, storage),
		Comment: NewCommentService(rep.Comment, rep.Post),
		User:    NewUserService(rep.User),
		Message: NewMessageService(rep.Message, rep.User),
		Tables:  NewTablesService(rep.Tables),
	}
}
