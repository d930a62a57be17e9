package handlers

import (
	"net/http"
)

type TablesResponse struct {
	CountTables int `json:"countTables"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, MessageResponse{Message: "Social network API"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesBD(r.Context())
	if err != nil {
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, TablesResponse{CountTables: count}, http.StatusOK)
}
