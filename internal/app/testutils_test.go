package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/selimvural/popcorn-palace/api"
	"github.com/selimvural/popcorn-palace/internal/domain"
	"github.com/selimvural/popcorn-palace/internal/service"
	"github.com/selimvural/popcorn-palace/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withScheduleService(repo domain.ShowtimeRepository) func(*Application) {
	return func(app *Application) {
		app.schedule = service.NewScheduleService(repo)
	}
}

func withBookingService(bookingRepo domain.BookingRepository, showtimeRepo domain.ShowtimeRepository) func(*Application) {
	return func(app *Application) {
		app.bookings = service.NewBookingService(bookingRepo, showtimeRepo)
	}
}

func withMovieService(repo domain.MovieRepository) func(*Application) {
	return func(app *Application) {
		app.movies = service.NewMovieService(repo)
	}
}

func executeRequest(t *testing.T, app *Application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	app.Routes().ServeHTTP(w, r)

	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return v
}

func checkErrorMessage(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	if want == "" {
		return
	}

	resp := decodeResponse[api.ErrorResponse](t, w)
	if resp.Message != want {
		t.Errorf("error message = %q, want %q", resp.Message, want)
	}
}

func ptr[T any](v T) *T {
	return &v
}
