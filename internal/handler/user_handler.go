package handlers

import (
	"errors"
	"net/http"

	"socialnet/internal/service"
)

// GetUsers возвращает справочник пользователей без самого актора. Явного
// user_id здесь нет: справочник доступен только по сессии.
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	actorID := h.actingUser(r, 0)

	users, err := h.UserService.ListUsers(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			WriteError(w, "Not authenticated", http.StatusUnauthorized)
		} else {
			WriteError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, users, http.StatusOK)
}
