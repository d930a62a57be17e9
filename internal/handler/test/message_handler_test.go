package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"socialnet/internal/models"
	"socialnet/internal/repository"
	"socialnet/internal/service"
)

func TestSendMessage_Success(t *testing.T) {
	handler, services := createTestHandler()

	services.message.On("SendMessage", mock.Anything, int64(1), int64(2), "hi").
		Return(int64(100), nil)

	body, _ := json.Marshal(map[string]interface{}{"to_id": 2, "content": "hi"})

	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	req = req.WithContext(withIdentity(req.Context(), 1, "alice"))
	rr := httptest.NewRecorder()

	handler.SendMessage(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "Message sent", response["message"])
	assert.Equal(t, float64(100), response["messageId"])
}

func TestSendMessage_Unauthenticated(t *testing.T) {
	handler, services := createTestHandler()

	services.message.On("SendMessage", mock.Anything, int64(0), int64(2), "hi").
		Return(int64(0), service.ErrUnauthenticated)

	body, _ := json.Marshal(map[string]interface{}{"to_id": 2, "content": "hi"})

	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.SendMessage(rr, req)

	assertJSONError(t, rr, http.StatusUnauthorized, "Not authenticated")
}

func TestSendMessage_RecipientNotFound(t *testing.T) {
	handler, services := createTestHandler()

	services.message.On("SendMessage", mock.Anything, int64(1), int64(999), "hi").
		Return(int64(0), repository.ErrNotFound)

	body, _ := json.Marshal(map[string]interface{}{"to_id": 999, "content": "hi"})

	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	req = req.WithContext(withIdentity(req.Context(), 1, "alice"))
	rr := httptest.NewRecorder()

	handler.SendMessage(rr, req)

	assertJSONError(t, rr, http.StatusNotFound, "User not found")
}

func TestSendMessage_FallbackFromID(t *testing.T) {
	// без сессии отправитель берется из явного поля from_id
	handler, services := createTestHandler()

	services.message.On("SendMessage", mock.Anything, int64(7), int64(2), "hi").
		Return(int64(101), nil)

	body, _ := json.Marshal(map[string]interface{}{"to_id": 2, "content": "hi", "from_id": 7})

	req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.SendMessage(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	services.message.AssertExpectations(t)
}

func TestGetConversation_Success(t *testing.T) {
	handler, services := createTestHandler()

	services.message.On("GetConversation", mock.Anything, int64(1), int64(2)).
		Return([]models.Message{
			{ID: 1, FromID: 1, ToID: 2, Content: "hi", FromUsername: "alice", ToUsername: "bob"},
			{ID: 2, FromID: 2, ToID: 1, Content: "hello", FromUsername: "bob", ToUsername: "alice"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/messages/2", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "2"})
	req = req.WithContext(withIdentity(req.Context(), 1, "alice"))
	rr := httptest.NewRecorder()

	handler.GetConversation(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var messages []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "hi", messages[0]["content"])
	assert.Equal(t, "alice", messages[0]["from_username"])
	assert.Equal(t, "hello", messages[1]["content"])
}

func TestGetConversation_Unauthenticated(t *testing.T) {
	handler, services := createTestHandler()

	services.message.On("GetConversation", mock.Anything, int64(0), int64(2)).
		Return(nil, service.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/messages/2", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "2"})
	rr := httptest.NewRecorder()

	handler.GetConversation(rr, req)

	assertJSONError(t, rr, http.StatusUnauthorized, "Not authenticated")
}
