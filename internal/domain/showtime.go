package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Showtime occupies the half-open interval [StartTime, EndTime) in a theater.
// Two showtimes in the same theater must never overlap; showtimes that touch
// at an endpoint are allowed so theaters can schedule back-to-back screenings.
type Showtime struct {
	ID         int64
	MovieTitle string
	Theater    string
	StartTime  time.Time
	EndTime    time.Time
	Price      decimal.Decimal
}

// Overlaps reports whether the two showtimes intersect in time. The half-open
// test treats s.EndTime == other.StartTime as no overlap.
func (s *Showtime) Overlaps(other *Showtime) bool {
	return s.StartTime.Before(other.EndTime) && s.EndTime.After(other.StartTime)
}

type ShowtimeRepository interface {
	GetAll(ctx context.Context) ([]*Showtime, error)
	GetById(ctx context.Context, id int64) (*Showtime, error)
	GetByMovieAndTheater(ctx context.Context, movieTitle, theater string) ([]*Showtime, error)

	// Create and Update perform the overlap check and the write atomically
	// with respect to other concurrent calls targeting the same theater.
	Create(ctx context.Context, showtime *Showtime) error
	Update(ctx context.Context, showtime *Showtime) error

	Delete(ctx context.Context, id int64) error
}
