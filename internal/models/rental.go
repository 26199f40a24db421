package models

import "time"

type Rental struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Surface     int        `json:"surface"`
	Price       float64    `json:"price"`
	Picture     string     `json:"picture"`
	Description string     `json:"description"`
	OwnerID     int        `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type RentalDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Surface     int     `json:"surface"`
	Price       float64 `json:"price"`
	Picture     string  `json:"picture"`
	Description string  `json:"description"`
	OwnerID     int     `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (r Rental) ToDTO() RentalDTO {
	dto := RentalDTO{
		ID:          r.ID,
		Name:        r.Name,
		Surface:     r.Surface,
		Price:       r.Price,
		Picture:     r.Picture,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if r.UpdatedAt != nil {
		dto.UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}

type RentalListResponse struct {
	Rentals []RentalDTO `json:"rentals"`
}

// ApiStandardResponse wraps mutation results the way the rental endpoints
// report them: a message plus an optional data payload.
type ApiStandardResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
