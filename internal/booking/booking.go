package booking

import (
	"time"

	"github.com/google/uuid"
)

// Request is the raw, untrusted payload from POST /api/book. Dates stay
// strings until validation so an unparseable value can be rejected instead
// of silently becoming a zero time.
type Request struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CarModel   string `json:"carModel"`
	Phone      string `json:"phone"`
	PickupDate string `json:"pickupDate,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`
}

// Booking is the persisted entity. ID and CreatedAt are assigned by the
// repository at insert time and never change afterwards.
type Booking struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CarModel   string    `json:"carModel"`
	Phone      string    `json:"phone"`
	PickupDate time.Time `json:"pickupDate"`
	ReturnDate time.Time `json:"returnDate"`
	CreatedAt  time.Time `json:"createdAt"`
}
