package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type reservationRepository struct {
	db DB
}

func NewReservationRepository(db DB) interfaces.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (name, phone, email, date, time, guests, special_requests, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		res.Name, res.Phone, res.Email, res.Date, res.Time, res.Guests,
		res.SpecialRequests, res.Status, res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int) (*domain.Reservation, error) {
	query := `
		SELECT id, name, phone, email, date, time, guests, special_requests, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`
	var res domain.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.Name, &res.Phone, &res.Email, &res.Date, &res.Time,
		&res.Guests, &res.SpecialRequests, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "reservation", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	return &res, nil
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	query := `
		SELECT id, name, phone, email, date, time, guests, special_requests, status, created_at, updated_at
		FROM reservations
		ORDER BY date, time
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Phone, &res.Email, &res.Date, &res.Time,
			&res.Guests, &res.SpecialRequests, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, &res)
	}
	return reservations, rows.Err()
}

// UpdateStatus has the same compare-and-set contract as order status
// updates: zero rows affected means a concurrent transition won.
func (r *reservationRepository) UpdateStatus(ctx context.Context, reservationID int, from, to domain.ReservationStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, to, reservationID, from)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.ConflictError{
			Message: fmt.Sprintf("reservation %d status changed concurrently", reservationID),
		}
	}
	return nil
}
