package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"rentalBack/internal/models"
	"rentalBack/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.RentalID <= 0 || req.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "rental_id and user_id are required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message cannot be blank")
		return
	}
	if len(req.Message) > models.MaxMessageLen {
		writeError(w, http.StatusBadRequest, "Message is too long")
		return
	}

	_, err := h.Service.CreateMessage(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrRentalNotFound) || errors.Is(err, models.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("CreateMessage error: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not send the message. Please try again later.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Message sent successfully"})
}
