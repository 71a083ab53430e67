package mocks

import (
	"context"

	"cinetix/internal/domain"
)

type MockMovieService struct {
	GetMoviesFunc           func(ctx context.Context) ([]domain.Movie, error)
	GetMovieByIDFunc        func(ctx context.Context, movieID int) (*domain.Movie, error)
	GetSchedulesByMovieFunc func(ctx context.Context, movieID int) ([]domain.Schedule, error)
}

func (m *MockMovieService) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	return m.GetMoviesFunc(ctx)
}

func (m *MockMovieService) GetMovieByID(ctx context.Context, movieID int) (*domain.Movie, error) {
	return m.GetMovieByIDFunc(ctx, movieID)
}

func (m *MockMovieService) GetSchedulesByMovie(ctx context.Context, movieID int) ([]domain.Schedule, error) {
	return m.GetSchedulesByMovieFunc(ctx, movieID)
}

type MockTheaterService struct {
	GetTheatersFunc       func(ctx context.Context) ([]domain.Theater, error)
	GetActiveTheatersFunc func(ctx context.Context) ([]domain.Theater, error)
}

func (m *MockTheaterService) GetTheaters(ctx context.Context) ([]domain.Theater, error) {
	return m.GetTheatersFunc(ctx)
}

func (m *MockTheaterService) GetActiveTheaters(ctx context.Context) ([]domain.Theater, error) {
	return m.GetActiveTheatersFunc(ctx)
}

type MockSeatService struct {
	GetSeatsByRoomFunc func(ctx context.Context, roomID int) ([]domain.Seat, error)
}

func (m *MockSeatService) GetSeatsByRoom(ctx context.Context, roomID int) ([]domain.Seat, error) {
	return m.GetSeatsByRoomFunc(ctx, roomID)
}

type MockConcessionService struct {
	GetProductsFunc func(ctx context.Context) ([]domain.ConcessionItem, error)
}

func (m *MockConcessionService) GetProducts(ctx context.Context) ([]domain.ConcessionItem, error) {
	return m.GetProductsFunc(ctx)
}

type MockAuthService struct {
	LoginFunc    func(ctx context.Context, username, password string) (*domain.User, error)
	RegisterFunc func(ctx context.Context, registration domain.Registration) (*domain.User, error)
	LogoutFunc   func(ctx context.Context) error
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return m.LoginFunc(ctx, username, password)
}

func (m *MockAuthService) Register(ctx context.Context, registration domain.Registration) (*domain.User, error) {
	return m.RegisterFunc(ctx, registration)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return m.LogoutFunc(ctx)
}

type MockTicketService struct {
	GetTicketsByUserFunc func(ctx context.Context, userID int) ([]domain.Ticket, error)
}

func (m *MockTicketService) GetTicketsByUser(ctx context.Context, userID int) ([]domain.Ticket, error) {
	return m.GetTicketsByUserFunc(ctx, userID)
}
