// Package api holds the request and response types exchanged over the HTTP
// boundary. Domain errors are mapped onto ErrorResponse by the handlers.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type MovieRequest struct {
	Title       string  `json:"title" validate:"required"`
	Genre       string  `json:"genre" validate:"required"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	ReleaseYear int     `json:"releaseYear" validate:"required,gte=1900"`
}

type MovieResponse struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
}

type ShowtimeRequest struct {
	MovieTitle string          `json:"movieTitle" validate:"required"`
	Theater    string          `json:"theater" validate:"required"`
	StartTime  time.Time       `json:"startTime" validate:"required"`
	EndTime    time.Time       `json:"endTime" validate:"required"`
	Price      decimal.Decimal `json:"price" validate:"positive_price"`
}

type ShowtimeResponse struct {
	Id         int64           `json:"id"`
	MovieTitle string          `json:"movieTitle"`
	Theater    string          `json:"theater"`
	StartTime  time.Time       `json:"startTime"`
	EndTime    time.Time       `json:"endTime"`
	Price      decimal.Decimal `json:"price"`
}

type BookingRequest struct {
	ShowtimeId int64  `json:"showtimeId" validate:"required,gt=0"`
	SeatNumber int    `json:"seatNumber" validate:"required,gt=0"`
	UserId     string `json:"userId" validate:"required"`
}

type BookingResponse struct {
	BookingId  uuid.UUID `json:"bookingId"`
	ShowtimeId int64     `json:"showtimeId"`
	SeatNumber int       `json:"seatNumber"`
	UserId     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}
