package domain

import "context"

type Theater struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Active  bool   `json:"isActive"`
}

type TheaterService interface {
	GetTheaters(ctx context.Context) ([]Theater, error)
	GetActiveTheaters(ctx context.Context) ([]Theater, error)
}
