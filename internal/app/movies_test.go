package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinetix/api"
	"cinetix/internal/domain"
	"cinetix/internal/mocks"
)

func TestGetMoviesHandler(t *testing.T) {
	released := time.Now().AddDate(0, 0, -30)
	upcoming := time.Now().AddDate(0, 0, 30)

	app := newTestApplication(func(a *application) {
		a.movieService = &mocks.MockMovieService{
			GetMoviesFunc: func(ctx context.Context) ([]domain.Movie, error) {
				return []domain.Movie{
					{ID: 1, Title: "Dune", Genre: "Sci-Fi", Duration: 155, ReleaseDate: released},
					{ID: 2, Title: "Dune Part Three", Genre: "Sci-Fi", Duration: 150, ReleaseDate: upcoming},
				}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/movies", nil)

	app.GetMovies(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.MovieListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	require.Len(t, resp.Movies, 2)
	assert.Equal(t, api.NowShowing, resp.Movies[0].Status)
	assert.Equal(t, api.ComingSoon, resp.Movies[1].Status)
	assert.Equal(t, released.Format(time.DateOnly), resp.Movies[0].ReleaseDate)
}

func TestGetMovieByIdHandler(t *testing.T) {
	app := newTestApplication(func(a *application) {
		a.movieService = &mocks.MockMovieService{
			GetMovieByIDFunc: func(ctx context.Context, movieID int) (*domain.Movie, error) {
				if movieID != 1 {
					return nil, domain.ErrRecordNotFound
				}
				return &domain.Movie{ID: 1, Title: "Dune", Rating: 8.1}, nil
			},
		}
	})

	t.Run("returns the movie detail", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodGet, "/movies/1", nil)
		r = withUrlParam(r, "movieId", "1")

		app.GetMovieById(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.MovieDetailResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Dune", resp.Title)
		assert.Equal(t, 8.1, resp.Rating)
	})

	t.Run("unknown movie is not found", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodGet, "/movies/99", nil)
		r = withUrlParam(r, "movieId", "99")

		app.GetMovieById(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed movie id is a bad request", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodGet, "/movies/abc", nil)
		r = withUrlParam(r, "movieId", "abc")

		app.GetMovieById(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		checkErrorResponse(t, w, http.StatusBadRequest, "movie ID must be a positive integer")
	})
}

func TestGetMovieShowtimesHandler(t *testing.T) {
	start := time.Date(2026, time.August, 29, 19, 30, 0, 0, time.UTC)

	app := newTestApplication(func(a *application) {
		a.movieService = &mocks.MockMovieService{
			GetSchedulesByMovieFunc: func(ctx context.Context, movieID int) ([]domain.Schedule, error) {
				return []domain.Schedule{
					{ID: 7, MovieID: movieID, TheaterID: 2, RoomID: 4, StartTime: start, Price: decimal.NewFromFloat(12.50)},
				}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/movies/1/showtimes", nil)
	r = withUrlParam(r, "movieId", "1")

	app.GetMovieShowtimes(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ShowtimeListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, 1, resp.MovieId)
	require.Len(t, resp.Showtimes, 1)
	assert.Equal(t, 7, resp.Showtimes[0].Id)
	assert.Equal(t, 4, resp.Showtimes[0].RoomId)
	assert.Equal(t, start.Format(time.RFC3339), resp.Showtimes[0].StartTime)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(resp.Showtimes[0].Price))
}
