package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/selimvural/popcorn-palace/internal/domain"
)

type MockBookingRepo struct {
	CreateFunc         func(ctx context.Context, booking *domain.Booking) error
	GetByIdFunc        func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetAllByUserIdFunc func(ctx context.Context, userId string) ([]*domain.Booking, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetAllByUserId(ctx context.Context, userId string) ([]*domain.Booking, error) {
	return m.GetAllByUserIdFunc(ctx, userId)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
