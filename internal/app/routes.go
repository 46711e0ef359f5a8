package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Post("/", app.CreateMovie)
		r.Get("/{title}", app.GetMovieByTitle)
		r.Put("/{title}", app.UpdateMovie)
		r.Delete("/{title}", app.DeleteMovie)
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/", app.GetShowtimes)
		r.Post("/", app.CreateShowtime)
		r.Get("/{id}", app.GetShowtimeById)
		r.Put("/{id}", app.UpdateShowtime)
		r.Delete("/{id}", app.DeleteShowtime)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/{bookingId}", app.GetBookingById)
		r.Delete("/{bookingId}", app.CancelBooking)
		r.Get("/user/{userId}", app.GetBookingsByUser)
	})

	return r
}
