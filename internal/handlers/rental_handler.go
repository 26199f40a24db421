package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"rentalBack/internal/models"
	"rentalBack/internal/services"
)

type RentalHandler struct {
	Service *services.RentalService
}

func (h *RentalHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.Service.GetRentalsWithDTOs(r.Context())
	if err != nil {
		log.Printf("GetRentals error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch rentals")
		return
	}

	if rentals == nil {
		rentals = []models.RentalDTO{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.RentalListResponse{Rentals: rentals})
}

func (h *RentalHandler) GetRentalByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "Missing rental ID")
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "ID must be greater than 0")
		return
	}

	rental, err := h.Service.FindRentalDTOByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRentalNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("GetRentalByID error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch rental")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rental)
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20) // 32MB
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	rental, ok := parseRentalForm(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		writeError(w, http.StatusBadRequest, "picture is required")
		return
	}
	defer file.Close()

	email, ok := r.Context().Value("user_email").(string)
	if !ok || email == "" {
		writeError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	picture := services.PictureUpload{File: file, Size: header.Size, Filename: header.Filename}

	created, err := h.Service.CreateRental(r.Context(), rental, picture, email)
	if err != nil {
		if errors.Is(err, models.ErrOwnerNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("CreateRental error: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not create the rental")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.ApiStandardResponse{
		Success: true,
		Message: "Rental created successfully!",
		Data:    map[string]int{"rentalId": created.ID},
	})
}

func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "Missing rental ID")
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "ID must be greater than 0")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	update, ok := parseRentalForm(w, r)
	if !ok {
		return
	}

	var picture *services.PictureUpload
	if file, header, err := r.FormFile("picture"); err == nil {
		defer file.Close()
		picture = &services.PictureUpload{File: file, Size: header.Size, Filename: header.Filename}
	}

	email, ok := r.Context().Value("user_email").(string)
	if !ok || email == "" {
		writeError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	_, err = h.Service.UpdateRental(r.Context(), id, update, picture, email)
	if err != nil {
		// Ownership violations surface as 404 with the same shape as a
		// missing rental, never a 403.
		if errors.Is(err, models.ErrRentalNotFound) ||
			errors.Is(err, models.ErrOwnerNotFound) ||
			errors.Is(err, models.ErrNotRentalOwner) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("UpdateRental error: %v", err)
		writeError(w, http.StatusInternalServerError, "Error updating rental")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ApiStandardResponse{
		Success: true,
		Message: "Rental updated successfully!",
	})
}

// parseRentalForm validates the shared multipart fields of create and update.
// On failure it writes the 400 response itself and returns ok=false.
func parseRentalForm(w http.ResponseWriter, r *http.Request) (models.Rental, bool) {
	var rental models.Rental

	rental.Name = strings.TrimSpace(r.FormValue("name"))
	if rental.Name == "" {
		writeError(w, http.StatusBadRequest, "name must not be blank")
		return models.Rental{}, false
	}

	surface, err := strconv.Atoi(strings.TrimSpace(r.FormValue("surface")))
	if err != nil || surface <= 0 {
		writeError(w, http.StatusBadRequest, "surface must be a positive number")
		return models.Rental{}, false
	}
	rental.Surface = surface

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil || price <= 0 {
		writeError(w, http.StatusBadRequest, "price must be a positive number")
		return models.Rental{}, false
	}
	rental.Price = price

	rental.Description = strings.TrimSpace(r.FormValue("description"))
	if rental.Description == "" {
		writeError(w, http.StatusBadRequest, "description must not be blank")
		return models.Rental{}, false
	}

	return rental, true
}
