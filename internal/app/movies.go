package app

import (
	"errors"
	"net/http"
	"time"

	"cinetix/api"
	"cinetix/internal/domain"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieService.GetMovies(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieSummaries(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovieById(w http.ResponseWriter, r *http.Request) {
	movieId, ok := urlParamInt(r, "movieId")
	if !ok {
		app.badRequestResponse(w, r, errors.New("movie ID must be a positive integer"))
		return
	}

	movie, err := app.movieService.GetMovieByID(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.upstreamErrorResponse(w, r, err)
		}

		return
	}

	resp := toMovieDetail(movie)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovieShowtimes(w http.ResponseWriter, r *http.Request) {
	movieId, ok := urlParamInt(r, "movieId")
	if !ok {
		app.badRequestResponse(w, r, errors.New("movie ID must be a positive integer"))
		return
	}

	schedules, err := app.movieService.GetSchedulesByMovie(r.Context(), movieId)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	showtimes := make([]api.Showtime, len(schedules))
	for i, schedule := range schedules {
		showtimes[i] = api.Showtime{
			Id:        schedule.ID,
			TheaterId: schedule.TheaterID,
			RoomId:    schedule.RoomID,
			StartTime: schedule.StartTime.Format(time.RFC3339),
			Price:     schedule.Price,
		}
	}

	resp := api.ShowtimeListResponse{
		MovieId:   movieId,
		Showtimes: showtimes,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSummaries(movies []domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))
	today := time.Now().Truncate(24 * time.Hour)

	for i, movie := range movies {
		summary := api.MovieSummary{
			Id:          movie.ID,
			Title:       movie.Title,
			Genre:       movie.Genre,
			Duration:    movie.Duration,
			PosterUrl:   movie.PosterUrl,
			ReleaseDate: movie.ReleaseDate.Format(time.DateOnly),
		}

		if movie.ReleaseDate.After(today) {
			summary.Status = api.ComingSoon
		} else {
			summary.Status = api.NowShowing
		}

		summaries[i] = summary
	}

	return summaries
}

func toMovieDetail(movie *domain.Movie) api.MovieDetailResponse {
	if movie == nil {
		return api.MovieDetailResponse{}
	}

	return api.MovieDetailResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Rating:      movie.Rating,
		PosterUrl:   movie.PosterUrl,
		ReleaseDate: movie.ReleaseDate.Format(time.DateOnly),
	}
}
