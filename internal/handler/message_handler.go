package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"socialnet/internal/repository"
	"socialnet/internal/service"
)

type SendMessageRequest struct {
	ToID    int64  `json:"to_id" validate:"required"`
	Content string `json:"content" validate:"required"`
	FromID  int64  `json:"from_id"`
}

type SendMessageResponse struct {
	Message   string `json:"message"`
	MessageID int64  `json:"messageId"`
}

func (h *Handlers) GetConversation(w http.ResponseWriter, r *http.Request) {
	otherID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный id пользователя", http.StatusBadRequest)
		return
	}

	// явный user_id для запросов без сессии передается параметром запроса
	fallbackID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	actorID := h.actingUser(r, fallbackID)

	messages, err := h.MessageService.GetConversation(r.Context(), actorID, otherID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, messages, http.StatusOK)
}

func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	actorID := h.actingUser(r, req.FromID)

	messageID, err := h.MessageService.SendMessage(r.Context(), actorID, req.ToID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
		} else if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "User not found", http.StatusNotFound)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, SendMessageResponse{Message: "Message sent", MessageID: messageID}, http.StatusOK)
}
