package app

import (
	"errors"
	"net/http"

	"github.com/selimvural/popcorn-palace/api"
	"github.com/selimvural/popcorn-palace/internal/domain"
)

func (app *Application) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	var (
		movieTitle = r.URL.Query().Get("movie")
		theater    = r.URL.Query().Get("theater")

		showtimes []*domain.Showtime
		err       error
	)

	if movieTitle != "" && theater != "" {
		showtimes, err = app.schedule.GetByMovieAndTheater(r.Context(), movieTitle, theater)
	} else {
		showtimes, err = app.schedule.GetAll(r.Context())
	}

	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		resp[i] = toShowtimeResponse(showtime)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimeById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.schedule.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req api.ShowtimeRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.schedule.Add(r.Context(), toShowtime(req))
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.ShowtimeRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.schedule.Update(r.Context(), id, toShowtime(req))
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.schedule.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) showtimeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrInvalidInterval):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, domain.ErrOverlappingShowtime):
		app.conflictResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtime(req api.ShowtimeRequest) *domain.Showtime {
	return &domain.Showtime{
		MovieTitle: req.MovieTitle,
		Theater:    req.Theater,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Price:      req.Price,
	}
}

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:         showtime.ID,
		MovieTitle: showtime.MovieTitle,
		Theater:    showtime.Theater,
		StartTime:  showtime.StartTime,
		EndTime:    showtime.EndTime,
		Price:      showtime.Price,
	}
}
