package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"`
	Rating      float64   `json:"rating"`
	PosterUrl   string    `json:"posterUrl"`
	ReleaseDate time.Time `json:"releaseDate"`
}

// Schedule is a single showtime of a movie in a room. Price is the per-seat
// base price set by the back office; it may be zero for legacy rows, in which
// case checkout falls back to the configured default.
type Schedule struct {
	ID        int             `json:"id"`
	MovieID   int             `json:"movieId"`
	TheaterID int             `json:"theaterId"`
	RoomID    int             `json:"roomId"`
	StartTime time.Time       `json:"startTime"`
	Price     decimal.Decimal `json:"price"`
}

type MovieService interface {
	GetMovies(ctx context.Context) ([]Movie, error)
	GetMovieByID(ctx context.Context, movieID int) (*Movie, error)
	GetSchedulesByMovie(ctx context.Context, movieID int) ([]Schedule, error)
}
