package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"socialnet/internal/models"
)

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("запись не найдена")
	// ErrDuplicate - нарушение уникальности (username, пара лайка)
	ErrDuplicate = errors.New("запись уже существует")
)

// isUniqueViolation проверяет код ошибки Postgres 23505
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// isForeignKeyViolation проверяет код ошибки Postgres 23503
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) (int64, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	ListUsersExcept(ctx context.Context, userID int64) ([]models.UserWithConnections, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetFeed(ctx context.Context) ([]models.FeedPost, error)
	Update(ctx context.Context, postID int64, text string, media *string) error
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (int64, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.FeedComment, error)
}

type LikeRepository interface {
	TogglePostLike(ctx context.Context, postID, userID int64) (bool, error)
	CountForPost(ctx context.Context, postID int64) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, fromID, toID int64, content string) (int64, error)
	GetConversation(ctx context.Context, userID, otherID int64) ([]models.Message, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Like    LikeRepository
	Message MessageRepository
	Session SessionRepository
	Tables  TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Like:    NewLikeRepository(db),
		Message: NewMessageRepository(db),
		Session: NewSessionRepository(db),
		Tables:  NewTablesRepository(db),
	}
}
