package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Store persists validated bookings. The repository assigns identity and
// the creation timestamp.
type Store interface {
	Create(ctx context.Context, b Booking) (Booking, error)
}

// Notifier delivers a confirmation for a stored booking.
type Notifier interface {
	Send(ctx context.Context, b Booking) error
}

const defaultNotifyTimeout = 10 * time.Second

// Service runs one booking submission end to end: validate, persist,
// then notify best-effort.
type Service struct {
	store         Store
	notifier      Notifier
	notifyTimeout time.Duration

	now func() time.Time
}

// NewService wires a Service. notifier may be nil, in which case
// confirmations are skipped entirely.
func NewService(store Store, notifier Notifier, notifyTimeout time.Duration) *Service {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &Service{
		store:         store,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		now:           time.Now,
	}
}

// Submit validates and persists one booking request. A *ValidationError
// return means the client sent bad input and nothing was written. Any other
// error means the save failed; no confirmation is attempted in that case.
// A failed confirmation is logged and swallowed: the booking is already
// durable, so the caller still gets it back as confirmed.
func (s *Service) Submit(ctx context.Context, req Request) (Booking, error) {
	normalized, err := Validate(req, s.now())
	if err != nil {
		return Booking{}, err
	}

	saved, err := s.store.Create(ctx, normalized)
	if err != nil {
		return Booking{}, fmt.Errorf("save booking: %w", err)
	}

	if s.notifier != nil {
		// Bounded so a slow mail server cannot stall the response.
		nctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()
		if err := s.notifier.Send(nctx, saved); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"booking_id": saved.ID,
				"email":      saved.Email,
			}).Warn("confirmation email failed")
		}
	}

	return saved, nil
}
