package test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"socialnet/internal/models"
	"socialnet/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (int64, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, actorID int64, text string, media *service.MediaUpload) (int64, error) {
	args := m.Called(ctx, actorID, text, media)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) GetFeed(ctx context.Context) ([]models.FeedPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedPost), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, actorID, postID int64, text string, media *service.MediaUpload) error {
	args := m.Called(ctx, actorID, postID, text, media)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, actorID, postID int64) error {
	args := m.Called(ctx, actorID, postID)
	return args.Error(0)
}

func (m *MockPostService) ToggleLike(ctx context.Context, actorID, postID int64) (bool, int64, error) {
	args := m.Called(ctx, actorID, postID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, actorID, postID int64, text string) (int64, error) {
	args := m.Called(ctx, actorID, postID, text)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentService) ListComments(ctx context.Context, postID int64) ([]models.FeedComment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedComment), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context, actorID int64) ([]models.UserWithConnections, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserWithConnections), args.Error(1)
}

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) SendMessage(ctx context.Context, actorID, toID int64, content string) (int64, error) {
	args := m.Called(ctx, actorID, toID, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageService) GetConversation(ctx context.Context, actorID, otherID int64) ([]models.Message, error) {
	args := m.Called(ctx, actorID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesBD(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
