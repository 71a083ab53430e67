package domain

import (
	"context"
	"time"
)

// User is the single client-local record kept by this gateway: written into
// the session on login, cleared on logout or upstream auth failure. The
// upstream backend owns the account itself, including credential storage.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type Registration struct {
	Username string
	Email    string
	FullName string
	Password string
}

type Ticket struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	ScheduleID int       `json:"scheduleId"`
	MovieTitle string    `json:"movieTitle"`
	Seat       string    `json:"seat"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*User, error)
	Register(ctx context.Context, registration Registration) (*User, error)
	Logout(ctx context.Context) error
}

type TicketService interface {
	GetTicketsByUser(ctx context.Context, userID int) ([]Ticket, error)
}
