package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/selimvural/popcorn-palace/internal/domain"
)

// BookingService owns seat uniqueness and the reservation lifecycle. Seat
// contention is resolved by the storage-level unique constraint, so two
// simultaneous attempts for the same seat yield exactly one winner.
type BookingService struct {
	bookingRepo  domain.BookingRepository
	showtimeRepo domain.ShowtimeRepository
}

func NewBookingService(bookingRepo domain.BookingRepository, showtimeRepo domain.ShowtimeRepository) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		showtimeRepo: showtimeRepo,
	}
}

// Book reserves a seat for a showtime under a freshly generated booking ID.
func (s *BookingService) Book(ctx context.Context, showtimeId int64, seatNumber int, userId string) (*domain.Booking, error) {
	if seatNumber <= 0 || strings.TrimSpace(userId) == "" {
		return nil, domain.ErrInvalidData
	}

	if _, err := s.showtimeRepo.GetById(ctx, showtimeId); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:         uuid.New(),
		ShowtimeID: showtimeId,
		SeatNumber: seatNumber,
		UserID:     userId,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// Cancel deletes the booking outright, freeing the seat immediately. There
// is no soft-cancelled state: cancelling twice yields ErrRecordNotFound on
// the second call.
func (s *BookingService) Cancel(ctx context.Context, bookingId uuid.UUID) error {
	return s.bookingRepo.Delete(ctx, bookingId)
}

func (s *BookingService) GetById(ctx context.Context, bookingId uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetById(ctx, bookingId)
}

func (s *BookingService) GetAllByUserId(ctx context.Context, userId string) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAllByUserId(ctx, userId)
}
