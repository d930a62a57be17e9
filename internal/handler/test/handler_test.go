package test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"socialnet/internal/config"
	handlers "socialnet/internal/handler"
	"socialnet/internal/middleware"
)

type testServices struct {
	auth    *MockAuthService
	post    *MockPostService
	comment *MockCommentService
	user    *MockUserService
	message *MockMessageService
	tables  *MockTablesService
}

func createTestHandler() (*handlers.Handlers, *testServices) {
	cfg := &config.Config{
		SessionSecret:   "test-secret-key",
		SessionDuration: 24 * time.Hour,
		ServerPort:      3000,
		MaxUploadSize:   10 * 1024 * 1024,
	}

	services := &testServices{
		auth:    new(MockAuthService),
		post:    new(MockPostService),
		comment: new(MockCommentService),
		user:    new(MockUserService),
		message: new(MockMessageService),
		tables:  new(MockTablesService),
	}

	return &handlers.Handlers{
		AuthService:    services.auth,
		PostService:    services.post,
		CommentService: services.comment,
		UserService:    services.user,
		MessageService: services.message,
		TablesService:  services.tables,
		Cfg:            cfg,
		Validate:       validator.New(),
	}, services
}

// withIdentity эмулирует успешный SessionMiddleware
func withIdentity(ctx context.Context, userID int64, username string) context.Context {
	return middleware.WithIdentity(ctx, userID, username)
}

// assertJSONError проверяет JSON-ответ с ошибкой
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// assertJSONMessage проверяет успешный JSON-ответ с полем message
func assertJSONMessage(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, expectedMessage, response["message"])
}
