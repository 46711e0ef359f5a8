package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidData         = errors.New("invalid data provided")
	ErrInvalidInterval     = errors.New("end time must be after start time")
	ErrOverlappingShowtime = errors.New("an overlapping showtime exists in the same theater")
	ErrSeatAlreadyBooked   = errors.New("seat is already booked for this showtime")
	ErrDuplicateMovie      = errors.New("a movie with the same details already exists")
)
