package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking holds a single seat for a showtime. A booking is either active or
// gone: cancellation deletes the row, which frees the seat immediately.
type Booking struct {
	ID         uuid.UUID
	ShowtimeID int64
	SeatNumber int
	UserID     string
	CreatedAt  time.Time
}

type BookingRepository interface {
	// Create inserts the booking, relying on the storage-level uniqueness of
	// (showtime_id, seat_number) so that concurrent attempts for the same
	// seat resolve to exactly one winner.
	Create(ctx context.Context, booking *Booking) error

	GetById(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetAllByUserId(ctx context.Context, userId string) ([]*Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
