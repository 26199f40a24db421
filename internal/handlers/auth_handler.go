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

type AuthHandler struct {
	Service *services.AuthService
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	token, err := h.Service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Register error: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not register the user. Please try again later.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.Service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.Printf("Login error: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not log in. Please try again later.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.TokenResponse{Token: token})
}

// Me returns the persisted user behind the authenticated principal.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := r.Context().Value("user_email").(string)
	if !ok || email == "" {
		writeError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	user, err := h.Service.CurrentUser(r.Context(), email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Me error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.ToDTO())
}
