package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Querier is the slice of pgx used by the repository. Both *pgxpool.Pool
// and pgxmock satisfy it.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Repo struct{ db Querier }

func NewRepo(db Querier) *Repo { return &Repo{db: db} }

// Create inserts a booking, assigning its ID here and letting the database
// stamp created_at.
func (r *Repo) Create(ctx context.Context, b Booking) (Booking, error) {
	b.ID = uuid.New()
	err := r.db.QueryRow(ctx, `
INSERT INTO bookings (id, name, email, car_model, phone, pickup_date, return_date)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING created_at`,
		b.ID, b.Name, b.Email, b.CarModel, b.Phone, b.PickupDate, b.ReturnDate,
	).Scan(&b.CreatedAt)
	if err != nil {
		return Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}

// List returns the most recent bookings, newest first.
func (r *Repo) List(ctx context.Context, limit int) ([]Booking, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, name, email, car_model, phone, pickup_date, return_date, created_at
FROM bookings
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.CarModel, &b.Phone, &b.PickupDate, &b.ReturnDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
