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

type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  int64  `json:"postId"`
}

type ToggleLikeResponse struct {
	Message    string `json:"message"`
	LikesCount int64  `json:"likesCount"`
}

// parseMediaUpload достает необязательный файл "media" из multipart-формы
func (h *Handlers) parseMediaUpload(r *http.Request) (*service.MediaUpload, func(), error) {
	file, header, err := r.FormFile("media")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	media := &service.MediaUpload{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	}

	return media, func() { file.Close() }, nil
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		return
	}

	content := r.FormValue("content")
	fallbackID, _ := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	actorID := h.actingUser(r, fallbackID)

	media, closeMedia, err := h.parseMediaUpload(r)
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer closeMedia()

	postID, err := h.PostService.CreatePost(r.Context(), actorID, content, media)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, CreatePostResponse{Message: "Post created", PostID: postID}, http.StatusOK)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetFeed(r.Context())
	if err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный id поста", http.StatusBadRequest)
		return
	}

	// необязательное тело с явным user_id для запросов без сессии
	var req struct {
		UserID int64 `json:"user_id"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	actorID := h.actingUser(r, req.UserID)

	liked, likesCount, err := h.PostService.ToggleLike(r.Context(), actorID, postID)
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

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}

	WriteJSON(w, ToggleLikeResponse{Message: message, LikesCount: likesCount}, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный id поста", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
		return
	}

	content := r.FormValue("content")
	fallbackID, _ := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	actorID := h.actingUser(r, fallbackID)

	media, closeMedia, err := h.parseMediaUpload(r)
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer closeMedia()

	err = h.PostService.UpdatePost(r.Context(), actorID, postID, content, media)
	if err != nil {
		// порядок проверок в сервисе: аутентификация, существование, владение
		if errors.Is(err, service.ErrUnauthenticated) {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
		} else if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else if errors.Is(err, service.ErrForbidden) {
			WriteError(w, "Not authorized to edit this post", http.StatusForbidden)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post updated successfully"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный id поста", http.StatusBadRequest)
		return
	}

	var req struct {
		UserID int64 `json:"user_id"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	actorID := h.actingUser(r, req.UserID)

	err = h.PostService.DeletePost(r.Context(), actorID, postID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
		} else if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else if errors.Is(err, service.ErrForbidden) {
			WriteError(w, "Not authorized to delete this post", http.StatusForbidden)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted successfully"}, http.StatusOK)
}
