package domain

import "context"

type Movie struct {
	ID          int64
	Title       string
	Genre       string
	Duration    int
	Rating      float64
	ReleaseYear int
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, title string) error
}
