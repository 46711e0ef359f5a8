package mocks

import (
	"context"

	"github.com/selimvural/popcorn-palace/internal/domain"
)

type MockShowtimeRepo struct {
	GetAllFunc               func(ctx context.Context) ([]*domain.Showtime, error)
	GetByIdFunc              func(ctx context.Context, id int64) (*domain.Showtime, error)
	GetByMovieAndTheaterFunc func(ctx context.Context, movieTitle, theater string) ([]*domain.Showtime, error)
	CreateFunc               func(ctx context.Context, showtime *domain.Showtime) error
	UpdateFunc               func(ctx context.Context, showtime *domain.Showtime) error
	DeleteFunc               func(ctx context.Context, id int64) error
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int64) (*domain.Showtime, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowtimeRepo) GetByMovieAndTheater(
	ctx context.Context,
	movieTitle, theater string) ([]*domain.Showtime, error) {

	return m.GetByMovieAndTheaterFunc(ctx, movieTitle, theater)
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime) error {
	return m.UpdateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}
