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

type CreateCommentRequest struct {
	PostID  int64  `json:"post_id" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  int64  `json:"user_id"`
}

type CreateCommentResponse struct {
	Message   string `json:"message"`
	CommentID int64  `json:"commentId"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["postId"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный id поста", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), postID)
	if err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	actorID := h.actingUser(r, req.UserID)

	commentID, err := h.CommentService.CreateComment(r.Context(), actorID, req.PostID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
		} else if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, CreateCommentResponse{Message: "Comment added", CommentID: commentID}, http.StatusOK)
}
