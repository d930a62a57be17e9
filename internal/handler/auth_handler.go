package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"socialnet/internal/middleware"
	"socialnet/internal/repository"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type SigninResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	userID, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			WriteError(w, "Username already exists", http.StatusBadRequest)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, SignupResponse{Message: "User registered", UserID: userID}, http.StatusOK)
}

func (h *Handlers) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, "Invalid username or password", http.StatusBadRequest)
		return
	}

	// токен сессии уходит клиенту в httpOnly cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.Cfg.SessionDuration / time.Second),
	})

	response := SigninResponse{
		Message: "Signed in",
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
		},
	}

	WriteJSON(w, response, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		err = h.AuthService.Logout(r.Context(), cookie.Value)
		// уже отозванная или просроченная сессия считается завершенной
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Could not log out", http.StatusInternalServerError)
			return
		}
	}

	// гасим cookie в любом случае
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	WriteJSON(w, MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}
