package service

import (
	"context"

	"github.com/selimvural/popcorn-palace/internal/domain"
)

// ScheduleService owns showtime interval validation and overlap detection.
// The overlap check itself runs at the storage boundary so that concurrent
// adds and updates against the same theater cannot both observe "no overlap"
// and commit.
type ScheduleService struct {
	showtimeRepo domain.ShowtimeRepository
}

func NewScheduleService(showtimeRepo domain.ShowtimeRepository) *ScheduleService {
	return &ScheduleService{
		showtimeRepo: showtimeRepo,
	}
}

func (s *ScheduleService) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	return s.showtimeRepo.GetAll(ctx)
}

func (s *ScheduleService) GetById(ctx context.Context, id int64) (*domain.Showtime, error) {
	return s.showtimeRepo.GetById(ctx, id)
}

func (s *ScheduleService) GetByMovieAndTheater(
	ctx context.Context,
	movieTitle, theater string) ([]*domain.Showtime, error) {

	return s.showtimeRepo.GetByMovieAndTheater(ctx, movieTitle, theater)
}

// Add validates the interval ordering and persists the showtime. A
// scheduling conflict is a normal outcome under contention, not a fault.
func (s *ScheduleService) Add(ctx context.Context, showtime *domain.Showtime) (*domain.Showtime, error) {
	if err := validateInterval(showtime); err != nil {
		return nil, err
	}

	showtime.Price = showtime.Price.Round(2)

	if err := s.showtimeRepo.Create(ctx, showtime); err != nil {
		return nil, err
	}

	return showtime, nil
}

// Update replaces the stored fields of an existing showtime and re-validates
// it against all other showtimes in the same theater. On conflict the stored
// record is left unchanged.
func (s *ScheduleService) Update(ctx context.Context, id int64, updated *domain.Showtime) (*domain.Showtime, error) {
	existing, err := s.showtimeRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.MovieTitle = updated.MovieTitle
	existing.Theater = updated.Theater
	existing.StartTime = updated.StartTime
	existing.EndTime = updated.EndTime
	existing.Price = updated.Price.Round(2)

	if err := validateInterval(existing); err != nil {
		return nil, err
	}

	if err := s.showtimeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete removes the showtime; its bookings are cancelled with it.
func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	return s.showtimeRepo.Delete(ctx, id)
}

func validateInterval(showtime *domain.Showtime) error {
	if !showtime.EndTime.After(showtime.StartTime) {
		return domain.ErrInvalidInterval
	}

	return nil
}
