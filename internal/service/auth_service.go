package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"socialnet/internal/config"
	"socialnet/internal/models"
	"socialnet/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (int64, error) {
	// быстрая предварительная проверка, настоящая гарантия -
	// уникальный индекс на username
	existingUser, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil && existingUser != nil {
		return 0, repository.ErrDuplicate
	}

	userID, err := s.userRepo.CreateUser(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, repository.ErrDuplicate
		}
		return 0, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return userID, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(s.cfg.SessionDuration),
	}

	err = s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	token, err := s.signSessionToken(session)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации токена сессии: %w", err)
	}

	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	session, err := s.ResolveSession(ctx, token)
	if err != nil {
		// битый, просроченный или уже отозванный токен равен отсутствию
		// сессии - завершать нечего
		return repository.ErrNotFound
	}

	err = s.sessionRepo.Delete(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}

	return nil
}

// ResolveSession проверяет подпись токена и наличие строки сессии. Строка в
// sessions - источник истины: logout удаляет ее, после чего токен мертв
// независимо от exp.
func (s *authService) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !parsed.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	sessionID, ok := claims["sid"].(string)
	if !ok {
		return nil, fmt.Errorf("в токене отсутствует id сессии")
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("сессия не найдена или отозвана: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("сессия истекла")
	}

	return session, nil
}

func (s *authService) signSessionToken(session *models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID,
		"userId":   session.UserID,
		"username": session.Username,
		"exp":      session.ExpiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}
