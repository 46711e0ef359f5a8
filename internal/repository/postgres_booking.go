package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selimvural/popcorn-palace/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create persists the booking in a single insert. The unique constraint on
// (showtime_id, seat_number) makes the existence-check-then-insert atomic:
// of two concurrent attempts for the same seat exactly one commits, the other
// gets ErrSeatAlreadyBooked. A foreign key violation means the showtime was
// deleted between the caller's existence check and the insert.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, showtime_id, seat_number, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		booking.ID,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID,
	).Scan(&booking.CreatedAt)

	switch {
	case err == nil:
		return nil
	case isPgError(err, pgerrcode.UniqueViolation):
		return domain.ErrSeatAlreadyBooked
	case isPgError(err, pgerrcode.ForeignKeyViolation):
		return domain.ErrRecordNotFound
	default:
		return err
	}
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `
		SELECT booking_id, showtime_id, seat_number, user_id, created_at
		FROM bookings
		WHERE booking_id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ShowtimeID,
		&booking.SeatNumber,
		&booking.UserID,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetAllByUserId(ctx context.Context, userId string) ([]*domain.Booking, error) {
	query := `
		SELECT booking_id, showtime_id, seat_number, user_id, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.ShowtimeID,
			&booking.SeatNumber,
			&booking.UserID,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, &booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
