package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"socialnet/internal/config"
	"socialnet/internal/middleware"
	"socialnet/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	UserService    service.UserService
	MessageService service.MessageService
	TablesService  service.TablesService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PostService:    service.Post,
		CommentService: service.Comment,
		UserService:    service.User,
		MessageService: service.Message,
		TablesService:  service.Tables,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

// actingUser возвращает личность запроса: сначала сессия из контекста, затем
// явный user_id из тела или параметров запроса. 0 означает "не аутентифицирован".
// Вызывается один раз на обработчик, результат передается в сервис явно.
func (h *Handlers) actingUser(r *http.Request, fallbackID int64) int64 {
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		return userID
	}
	return fallbackID
}
