// Package mail sends booking confirmations over SMTP.
package mail

import (
	"context"
	"fmt"

	"github.com/example/gowheels/internal/booking"
	"gopkg.in/gomail.v2"
)

const subject = "Your Booking Is Confirmed - Go Wheels"

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a Mailer. Port 465 gets implicit TLS from gomail.
func New(host string, port int, username, password string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

// Send delivers the confirmation email for a stored booking. The SMTP dial
// runs in its own goroutine so the caller's context deadline is honored
// even while the transport is blocked.
func (m *Mailer) Send(ctx context.Context, b booking.Booking) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", b.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", confirmationBody(b))

	errc := make(chan error, 1)
	go func() { errc <- m.dialer.DialAndSend(msg) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("send confirmation: %w", err)
		}
		return nil
	}
}

func confirmationBody(b booking.Booking) string {
	const dateFmt = "Mon Jan 2 2006"
	return fmt.Sprintf(`<h2>Booking Confirmed</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Car Model:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Pickup Date:</strong> %s</p>
<p><strong>Return Date:</strong> %s</p>
<p>Best Regards,<br><strong>Go Wheels Team</strong></p>`,
		b.Name, b.CarModel, b.Phone,
		b.PickupDate.Format(dateFmt), b.ReturnDate.Format(dateFmt))
}
