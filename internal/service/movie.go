package service

import (
	"context"

	"github.com/selimvural/popcorn-palace/internal/domain"
)

type MovieService struct {
	movieRepo domain.MovieRepository
}

func NewMovieService(movieRepo domain.MovieRepository) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
	}
}

func (s *MovieService) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return s.movieRepo.GetAll(ctx)
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return s.movieRepo.GetByTitle(ctx, title)
}

func (s *MovieService) Add(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if movie.Title == "" {
		return nil, domain.ErrInvalidData
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

// Update rewrites the catalog entry identified by title; the title itself is
// the lookup key and does not change.
func (s *MovieService) Update(ctx context.Context, title string, updated *domain.Movie) (*domain.Movie, error) {
	updated.Title = title

	if err := s.movieRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *MovieService) Delete(ctx context.Context, title string) error {
	return s.movieRepo.Delete(ctx, title)
}
