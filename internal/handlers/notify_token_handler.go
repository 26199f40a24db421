package handlers

import (
	"encoding/json"
	"net/http"

	"rentalBack/internal/services"
)

// NotifyTokenHandler registers and removes FCM device tokens. Routes are only
// mounted when push is configured.
type NotifyTokenHandler struct {
	Push *services.PushService
}

func (h *NotifyTokenHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int    `json:"user_id"`
		Token  string `json:"token"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID <= 0 || req.Token == "" {
		writeError(w, http.StatusBadRequest, "user_id and token are required")
		return
	}

	if err := h.Push.RegisterToken(r.Context(), req.UserID, req.Token); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to register token")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *NotifyTokenHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(":token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "Missing token")
		return
	}

	if err := h.Push.UnregisterToken(r.Context(), token); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete token")
		return
	}

	w.WriteHeader(http.StatusOK)
}
