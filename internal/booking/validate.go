package booking

import (
	"fmt"
	"strings"
	"time"
)

// Kind tags a validation failure so callers can branch without parsing
// the human-readable message.
type Kind string

const (
	KindMissingField       Kind = "missing_field"
	KindInvalidDate        Kind = "invalid_date"
	KindPickupInPast       Kind = "pickup_in_past"
	KindReturnBeforePickup Kind = "return_before_pickup"
)

// ValidationError is a client-caused rejection; Message is safe to return
// verbatim in a 400 response.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(kind Kind, msg string) error {
	return &ValidationError{Kind: kind, Message: msg}
}

// Validate normalizes a raw request into a Booking ready for persistence.
// It is a pure function of (req, now): dates default relative to now
// (pickup -> now, return -> pickup + 24h) and the past-pickup check floors
// now to the start of its calendar day in now's location.
func Validate(req Request, now time.Time) (Booking, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	carModel := strings.TrimSpace(req.CarModel)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || carModel == "" || phone == "" {
		return Booking{}, invalid(KindMissingField, "Name, email, car model, and phone are required.")
	}

	pickup := now
	if s := strings.TrimSpace(req.PickupDate); s != "" {
		t, err := parseDate(s, now.Location())
		if err != nil {
			return Booking{}, invalid(KindInvalidDate, fmt.Sprintf("Invalid pickup date %q.", s))
		}
		pickup = t
	}

	ret := pickup.Add(24 * time.Hour)
	if s := strings.TrimSpace(req.ReturnDate); s != "" {
		t, err := parseDate(s, now.Location())
		if err != nil {
			return Booking{}, invalid(KindInvalidDate, fmt.Sprintf("Invalid return date %q.", s))
		}
		ret = t
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if pickup.Before(startOfToday) {
		return Booking{}, invalid(KindPickupInPast, "Pickup date cannot be in the past.")
	}
	// Equal pickup and return is accepted; only a strictly earlier return fails.
	if pickup.After(ret) {
		return Booking{}, invalid(KindReturnBeforePickup, "Return date must be after pickup date.")
	}

	return Booking{
		Name:       name,
		Email:      email,
		CarModel:   carModel,
		Phone:      phone,
		PickupDate: pickup,
		ReturnDate: ret,
	}, nil
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates, the two
// shapes the booking form sends. Date-only values land at local midnight so
// a "today" pickup passes the start-of-day floor.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}
