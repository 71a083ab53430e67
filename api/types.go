// Package api holds the request and response types of the gateway's HTTP
// surface. They are deliberately separate from the domain types: the wire
// shapes are a contract with the storefront clients and evolve on their own.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type MovieSummary struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Duration    int    `json:"duration"`
	PosterUrl   string `json:"posterUrl"`
	ReleaseDate string `json:"releaseDate"`
	Status      string `json:"status"`
}

const (
	NowShowing = "NOW_SHOWING"
	ComingSoon = "COMING_SOON"
)

type MovieListResponse struct {
	Movies []MovieSummary `json:"movies"`
}

type MovieDetailResponse struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"rating"`
	PosterUrl   string  `json:"posterUrl"`
	ReleaseDate string  `json:"releaseDate"`
}

type Showtime struct {
	Id        int             `json:"id"`
	TheaterId int             `json:"theaterId"`
	RoomId    int             `json:"roomId"`
	StartTime string          `json:"startTime"`
	Price     decimal.Decimal `json:"price"`
}

type ShowtimeListResponse struct {
	MovieId   int        `json:"movieId"`
	Showtimes []Showtime `json:"showtimes"`
}

type Theater struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Active  bool   `json:"isActive"`
}

type TheaterListResponse struct {
	Theaters []Theater `json:"theaters"`
}

type Seat struct {
	Id        int    `json:"id"`
	Row       string `json:"row"`
	Number    int    `json:"number"`
	XPosition int    `json:"xPosition"`
	YPosition int    `json:"yPosition"`
	Available bool   `json:"isAvailable"`
	Selected  bool   `json:"isSelected"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	RoomId   int       `json:"roomId"`
	Fallback bool      `json:"fallback"`
	SeatRows []SeatRow `json:"seatRows"`
}

type ToggleSeatRequest struct {
	RoomId int `json:"roomId" validate:"required,gt=0"`
	SeatId int `json:"seatId" validate:"required,gt=0"`
}

type SelectionResponse struct {
	Seats []Seat `json:"seats"`
	Count int    `json:"count"`
}

type ConcessionItem struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type ConcessionListResponse struct {
	Items []ConcessionItem `json:"items"`
}

type CartLine struct {
	Id       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	Lines   []CartLine  `json:"lines"`
	Pending map[int]int `json:"pending"`
	Total   string      `json:"total"`
}

type AdjustPendingRequest struct {
	ProductId int `json:"productId" validate:"required,gt=0"`
	Delta     int `json:"delta" validate:"required"`
}

type CommitItemRequest struct {
	ProductId int `json:"productId" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	MovieId     int    `json:"movieId"`
	ScheduleId  int    `json:"scheduleId"`
	MovieTitle  string `json:"movieTitle"`
	TheaterName string `json:"theaterName"`
	Showtime    string `json:"showtime"`
}

type OrderResponse struct {
	Status          string     `json:"status"`
	MovieTitle      string     `json:"movieTitle"`
	TheaterName     string     `json:"theaterName"`
	Showtime        string     `json:"showtime"`
	ScheduleId      int        `json:"scheduleId"`
	Seats           []Seat     `json:"seats"`
	Concessions     []CartLine `json:"concessions"`
	TicketTotal     string     `json:"ticketTotal"`
	ConcessionTotal string     `json:"concessionTotal"`
	FinalTotal      string     `json:"finalTotal"`
}

type ConfirmationSeat struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
}

type ConfirmationItem struct {
	Id       int `json:"id"`
	Quantity int `json:"quantity"`
}

type ConfirmationResponse struct {
	OrderRef   string             `json:"orderRef"`
	ScheduleId int                `json:"scheduleId"`
	Seats      []ConfirmationSeat `json:"seats"`
	Items      []ConfirmationItem `json:"items"`
	Total      string             `json:"total"`
	IssuedAt   time.Time          `json:"issuedAt"`
	Status     string             `json:"status"`
	QrCodePng  string             `json:"qrCodePng"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=30"`
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"fullName" validate:"required"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type UserResponse struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type Ticket struct {
	Id         int    `json:"id"`
	ScheduleId int    `json:"scheduleId"`
	MovieTitle string `json:"movieTitle"`
	Seat       string `json:"seat"`
	CreatedAt  string `json:"createdAt"`
}

type TicketListResponse struct {
	Tickets []Ticket `json:"tickets"`
}
