package backend

import (
	"context"
	"errors"
	"fmt"

	"cinetix/internal/domain"
)

var (
	_ domain.MovieService      = (*Client)(nil)
	_ domain.TheaterService    = (*Client)(nil)
	_ domain.ConcessionService = (*Client)(nil)
	_ domain.SeatService       = (*Client)(nil)
	_ domain.TicketService     = (*Client)(nil)
	_ domain.AuthService       = (*Client)(nil)
)

func (c *Client) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie

	if err := c.get(ctx, "get movies", "/movie", &movies); err != nil {
		return nil, err
	}

	return movies, nil
}

func (c *Client) GetMovieByID(ctx context.Context, movieID int) (*domain.Movie, error) {
	var movie domain.Movie

	err := c.get(ctx, "get movie", fmt.Sprintf("/movie/%d", movieID), &movie)
	if err != nil {
		var backendErr *Error
		if errors.As(err, &backendErr) && backendErr.StatusCode == 404 {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (c *Client) GetSchedulesByMovie(ctx context.Context, movieID int) ([]domain.Schedule, error) {
	var schedules []domain.Schedule

	err := c.get(ctx, "get movie schedules", fmt.Sprintf("/MovieSchedule/GetByMovieId/%d", movieID), &schedules)
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

func (c *Client) GetTheaters(ctx context.Context) ([]domain.Theater, error) {
	var theaters []domain.Theater

	if err := c.get(ctx, "get theaters", "/theaters", &theaters); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (c *Client) GetActiveTheaters(ctx context.Context) ([]domain.Theater, error) {
	var theaters []domain.Theater

	if err := c.get(ctx, "get active theaters", "/theaters/active", &theaters); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (c *Client) GetProducts(ctx context.Context) ([]domain.ConcessionItem, error) {
	var items []domain.ConcessionItem

	if err := c.get(ctx, "get products", "/product", &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) GetSeatsByRoom(ctx context.Context, roomID int) ([]domain.Seat, error) {
	var seats []domain.Seat

	err := c.get(ctx, "get seats", fmt.Sprintf("/seat/GetByRoomId/%d", roomID), &seats)
	if err != nil {
		return nil, err
	}

	return seats, nil
}

func (c *Client) GetTicketsByUser(ctx context.Context, userID int) ([]domain.Ticket, error) {
	var tickets []domain.Ticket

	err := c.get(ctx, "get user tickets", fmt.Sprintf("/userticket/GetByUserId/%d", userID), &tickets)
	if err != nil {
		return nil, err
	}

	return tickets, nil
}
