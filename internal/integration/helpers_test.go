package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/selimvural/popcorn-palace/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *BaseSuite) do(method, path string, body any) *http.Response {
	s.T().Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.server.Client().Do(req)
	s.Require().NoError(err)

	return res
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	t.Helper()

	defer res.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}

func showtimeAt(theater string, start, end time.Time) api.ShowtimeRequest {
	return api.ShowtimeRequest{
		MovieTitle: "Dune",
		Theater:    theater,
		StartTime:  start,
		EndTime:    end,
		Price:      decimal.RequireFromString("12.50"),
	}
}

// mustCreateShowtime creates a showtime over HTTP and returns its identity.
func (s *BaseSuite) mustCreateShowtime(req api.ShowtimeRequest) api.ShowtimeResponse {
	s.T().Helper()

	res := s.do(http.MethodPost, "/showtimes", req)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	return decodeBody[api.ShowtimeResponse](s.T(), res)
}

func bookingPath(id fmt.Stringer) string {
	return "/bookings/" + id.String()
}
